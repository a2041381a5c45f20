package draft_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/huddle/internal/domain/draft"
	"github.com/okian/huddle/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func testSchema() *roster.Schema {
	schema, err := roster.NewSchema(roster.ESPNLayout(), map[string]int{
		"QB": 1, "RB": 2, "WR": 2, "TE": 1,
		"FLEX": 1, "D/ST": 1, "K": 1, "BN": 6, "IR": 1,
	})
	So(err, ShouldBeNil)
	return schema
}

func testRosters(n int) []*roster.Roster {
	schema := testSchema()
	out := make([]*roster.Roster, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, roster.New(schema, roster.WithName(fmt.Sprintf("Team %d", i+1))))
	}
	return out
}

func TestDraftConstruction(t *testing.T) {
	Convey("Given rosters and a round count", t, func() {
		Convey("When building a draft with no rosters", func() {
			_, err := draft.New(nil, 3)

			Convey("Then it should fail", func() {
				So(errors.Is(err, draft.ErrNoRosters), ShouldBeTrue)
			})
		})

		Convey("When building a draft with a non-positive round count", func() {
			_, err := draft.New(testRosters(2), 0)

			Convey("Then it should fail", func() {
				So(errors.Is(err, draft.ErrInvalidRounds), ShouldBeTrue)
			})
		})

		Convey("When building a valid draft", func() {
			d, err := draft.New(testRosters(4), 3)

			Convey("Then the cursor starts at pick 1 of round 1", func() {
				So(err, ShouldBeNil)
				So(d.Volume(), ShouldEqual, 12)
				So(d.Completed(), ShouldEqual, 0)

				next, ok := d.Peek()
				So(ok, ShouldBeTrue)
				So(next, ShouldResemble, draft.Pick{Round: 1, Overall: 1})
			})
		})
	})
}

func TestDraftSnakeOrder(t *testing.T) {
	Convey("Given a 3-round draft over 4 teams", t, func() {
		rosters := testRosters(4)
		d, err := draft.New(rosters, 3)
		So(err, ShouldBeNil)

		Convey("Then picks 1-4 run through the teams in roster order", func() {
			for i := 0; i < 4; i++ {
				team, err := d.Team(i + 1)
				So(err, ShouldBeNil)
				So(team, ShouldEqual, rosters[i])
			}
		})

		Convey("Then picks 5-8 run through the teams in reverse", func() {
			for i := 0; i < 4; i++ {
				team, err := d.Team(5 + i)
				So(err, ShouldBeNil)
				So(team, ShouldEqual, rosters[3-i])
			}
		})

		Convey("Then picks 9-12 run forward again", func() {
			for i := 0; i < 4; i++ {
				team, err := d.Team(9 + i)
				So(err, ShouldBeNil)
				So(team, ShouldEqual, rosters[i])
			}
		})

		Convey("Then round resolution matches ceil(pick/teams)", func() {
			round, err := d.Round(1)
			So(err, ShouldBeNil)
			So(round, ShouldEqual, 1)

			round, err = d.Round(4)
			So(err, ShouldBeNil)
			So(round, ShouldEqual, 1)

			round, err = d.Round(5)
			So(err, ShouldBeNil)
			So(round, ShouldEqual, 2)

			round, err = d.Round(12)
			So(err, ShouldBeNil)
			So(round, ShouldEqual, 3)
		})

		Convey("Then out-of-range picks fail", func() {
			_, err := d.Round(0)
			So(errors.Is(err, draft.ErrPickOutOfRange), ShouldBeTrue)

			_, err = d.Round(13)
			So(errors.Is(err, draft.ErrPickOutOfRange), ShouldBeTrue)

			_, err = d.Team(13)
			So(errors.Is(err, draft.ErrPickOutOfRange), ShouldBeTrue)
		})
	})
}

func TestDraftPushPop(t *testing.T) {
	Convey("Given a 2-round draft over 2 teams", t, func() {
		rosters := testRosters(2)
		d, err := draft.New(rosters, 2)
		So(err, ShouldBeNil)

		Convey("When pushing four players", func() {
			players := []roster.Player{
				roster.NewPlayer("QB", false),
				roster.NewPlayer("RB", false),
				roster.NewPlayer("WR", false),
				roster.NewPlayer("TE", false),
			}
			for _, p := range players {
				_, err := d.Push(p)
				So(err, ShouldBeNil)
			}

			Convey("Then the grid fills (1,A), (1,B), (2,B), (2,A) in that order", func() {
				So(d.Result(1, 0).ID, ShouldEqual, players[0].ID)
				So(d.Result(1, 1).ID, ShouldEqual, players[1].ID)
				So(d.Result(2, 1).ID, ShouldEqual, players[2].ID)
				So(d.Result(2, 0).ID, ShouldEqual, players[3].ID)
			})

			Convey("And peek reports exhaustion", func() {
				_, ok := d.Peek()
				So(ok, ShouldBeFalse)
			})

			Convey("And a further push fails as complete", func() {
				_, err := d.Push(roster.NewPlayer("K", false))
				So(errors.Is(err, draft.ErrDraftComplete), ShouldBeTrue)
			})

			Convey("And popping returns the players in reverse order", func() {
				for i := len(players) - 1; i >= 0; i-- {
					popped, err := d.Pop()
					So(err, ShouldBeNil)
					So(popped.ID, ShouldEqual, players[i].ID)
				}

				Convey("And the draft is back at its initial state", func() {
					So(d.Completed(), ShouldEqual, 0)
					next, ok := d.Peek()
					So(ok, ShouldBeTrue)
					So(next, ShouldResemble, draft.Pick{Round: 1, Overall: 1})
					for round := 1; round <= 2; round++ {
						for team := 0; team < 2; team++ {
							So(d.Result(round, team), ShouldBeNil)
						}
					}
					for _, r := range rosters {
						So(r.Players(), ShouldBeEmpty)
					}
				})
			})
		})

		Convey("When popping before any pick was made", func() {
			_, err := d.Pop()

			Convey("Then there is nothing to undo", func() {
				So(errors.Is(err, draft.ErrNothingToUndo), ShouldBeTrue)
			})
		})

		Convey("When a popped pick is pushed again", func() {
			first := roster.NewPlayer("QB", false)
			pick, err := d.Push(first)
			So(err, ShouldBeNil)

			_, err = d.Pop()
			So(err, ShouldBeNil)

			second := roster.NewPlayer("RB", false)
			repick, err := d.Push(second)

			Convey("Then the same pick number is consumed again", func() {
				So(err, ShouldBeNil)
				So(repick, ShouldResemble, pick)
			})
		})
	})
}

func TestDraftPlacementFailure(t *testing.T) {
	Convey("Given a one-team draft whose roster only seats a quarterback", t, func() {
		schema, err := roster.NewSchema(roster.ESPNLayout(), map[string]int{
			"QB": 1, "RB": 0, "WR": 0, "TE": 0,
			"FLEX": 0, "D/ST": 0, "K": 0, "BN": 0, "IR": 0,
		})
		So(err, ShouldBeNil)
		team := roster.New(schema, roster.WithName("Solo"))
		d, err := draft.New([]*roster.Roster{team}, 3)
		So(err, ShouldBeNil)

		Convey("When the lone slot is taken and another QB is pushed", func() {
			_, err := d.Push(roster.NewPlayer("QB", false))
			So(err, ShouldBeNil)
			before, ok := d.Peek()
			So(ok, ShouldBeTrue)

			_, err = d.Push(roster.NewPlayer("QB", false))

			Convey("Then the pick fails and the cursor does not advance", func() {
				So(errors.Is(err, draft.ErrNoOpenSlot), ShouldBeTrue)
				after, ok := d.Peek()
				So(ok, ShouldBeTrue)
				So(after, ShouldResemble, before)
				So(d.Completed(), ShouldEqual, 1)
			})
		})
	})
}

func TestDraftReset(t *testing.T) {
	Convey("Given a draft with a few picks made", t, func() {
		rosters := testRosters(2)
		d, err := draft.New(rosters, 2)
		So(err, ShouldBeNil)

		_, err = d.Push(roster.NewPlayer("QB", false))
		So(err, ShouldBeNil)
		_, err = d.Push(roster.NewPlayer("RB", false))
		So(err, ShouldBeNil)

		Convey("When resetting", func() {
			d.Reset()

			Convey("Then the grid and count clear and the cursor returns to pick 1", func() {
				So(d.Completed(), ShouldEqual, 0)
				next, ok := d.Peek()
				So(ok, ShouldBeTrue)
				So(next, ShouldResemble, draft.Pick{Round: 1, Overall: 1})
				So(d.Result(1, 0), ShouldBeNil)
				So(d.Result(1, 1), ShouldBeNil)
			})

			Convey("And resetting again changes nothing", func() {
				d.Reset()
				So(d.Completed(), ShouldEqual, 0)
				next, ok := d.Peek()
				So(ok, ShouldBeTrue)
				So(next, ShouldResemble, draft.Pick{Round: 1, Overall: 1})
			})
		})
	})
}
