package scoring_test

import (
	"errors"
	"testing"

	"github.com/okian/huddle/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSchemaLookup(t *testing.T) {
	Convey("Given the default point-value schema", t, func() {
		schema := scoring.Default()

		Convey("When looking up a priced statistic", func() {
			pts, err := schema.Lookup(scoring.CategoryOffense, "rushing_touchdown")

			Convey("Then it should return the point value", func() {
				So(err, ShouldBeNil)
				So(pts, ShouldEqual, 6)
			})
		})

		Convey("When looking up a negative-value statistic", func() {
			pts, err := schema.Lookup(scoring.CategoryOffense, "interception")

			Convey("Then the penalty carries its sign", func() {
				So(err, ShouldBeNil)
				So(pts, ShouldEqual, -2)
			})
		})

		Convey("When the category is unknown", func() {
			_, err := schema.Lookup("IDP", "tackle")

			Convey("Then it should fail with a typed category error", func() {
				So(errors.Is(err, scoring.ErrUnknownCategory), ShouldBeTrue)
			})
		})

		Convey("When the statistic is unknown within a known category", func() {
			_, err := schema.Lookup(scoring.CategoryKicker, "tackle")

			Convey("Then it should fail with a typed statistic error", func() {
				So(errors.Is(err, scoring.ErrUnknownStatistic), ShouldBeTrue)
			})
		})

		Convey("Then the schema defines the three standard categories", func() {
			So(schema.Categories(), ShouldHaveLength, 3)
		})
	})
}

func TestSchemaOptions(t *testing.T) {
	Convey("Given a schema built from explicit categories", t, func() {
		schema := scoring.NewSchema(
			scoring.WithCategory(scoring.CategoryOffense, map[string]float64{
				"reception": 1, // full PPR
			}),
		)

		Convey("When looking up the overridden value", func() {
			pts, err := schema.Lookup(scoring.CategoryOffense, "reception")

			Convey("Then it should reflect the override", func() {
				So(err, ShouldBeNil)
				So(pts, ShouldEqual, 1)
			})
		})

		Convey("When reading a category back", func() {
			values, err := schema.Category(scoring.CategoryOffense)
			So(err, ShouldBeNil)

			Convey("Then mutating the copy does not touch the schema", func() {
				values["reception"] = 99
				pts, err := schema.Lookup(scoring.CategoryOffense, "reception")
				So(err, ShouldBeNil)
				So(pts, ShouldEqual, 1)
			})
		})

		Convey("When a category was never configured", func() {
			_, err := schema.Category(scoring.CategoryDefense)

			Convey("Then it should fail with a typed category error", func() {
				So(errors.Is(err, scoring.ErrUnknownCategory), ShouldBeTrue)
			})
		})
	})

	Convey("Given an empty schema", t, func() {
		schema := scoring.NewSchema()

		Convey("Then every lookup fails", func() {
			_, err := schema.Lookup(scoring.CategoryOffense, "reception")
			So(errors.Is(err, scoring.ErrUnknownCategory), ShouldBeTrue)
		})
	})
}
