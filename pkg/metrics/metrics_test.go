package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDraftMetrics(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When recording draft activity", func() {
			before := testutil.ToFloat64(picksTotal)
			RecordPick()
			RecordPick()
			RecordUndo()
			RecordReset()
			RecordFailedPick()

			Convey("Then the counters reflect it", func() {
				So(testutil.ToFloat64(picksTotal), ShouldEqual, before+2)
				So(testutil.ToFloat64(undosTotal), ShouldBeGreaterThanOrEqualTo, 1)
				So(testutil.ToFloat64(resetsTotal), ShouldBeGreaterThanOrEqualTo, 1)
				So(testutil.ToFloat64(failedPicksTotal), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When updating the remaining-pick gauge", func() {
			UpdateRemainingPicks(42)

			Convey("Then the gauge holds the value", func() {
				So(testutil.ToFloat64(remainingPicks), ShouldEqual, 42)
			})
		})

		Convey("When counting roster operations by kind", func() {
			before := testutil.ToFloat64(rosterOps.WithLabelValues("move"))
			RecordRosterOperation("move")

			Convey("Then the labeled counter increments", func() {
				So(testutil.ToFloat64(rosterOps.WithLabelValues("move")), ShouldEqual, before+1)
			})
		})

		Convey("Then the registry is available for embedding hosts", func() {
			So(Registry(), ShouldNotBeNil)
		})
	})
}
