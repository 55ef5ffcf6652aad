package registry_test

import (
	"context"
	"testing"

	registry "github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStoreTeams(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := registry.NewMemStore()
		ctx := context.Background()

		Convey("When adding a team", func() {
			err := s.AddTeam(ctx, registry.Team{ID: "sharks", Name: "Sharks", Side: model.SideHome})

			Convey("Then it resolves by id and by side", func() {
				So(err, ShouldBeNil)

				team, err := s.Team(ctx, "sharks")
				So(err, ShouldBeNil)
				So(team.Name, ShouldEqual, "Sharks")

				bySide, err := s.TeamBySide(ctx, model.SideHome)
				So(err, ShouldBeNil)
				So(bySide.ID, ShouldEqual, model.TeamID("sharks"))
			})

			Convey("And adding the same id again fails", func() {
				err := s.AddTeam(ctx, registry.Team{ID: "sharks", Side: model.SideAway})
				So(err, ShouldWrap, registry.ErrDuplicateID)
			})

			Convey("And a second team on the same side fails", func() {
				err := s.AddTeam(ctx, registry.Team{ID: "wolves", Side: model.SideHome})
				So(err, ShouldWrap, registry.ErrSideTaken)
			})
		})

		Convey("When resolving an unknown team", func() {
			_, err := s.Team(ctx, "ghosts")

			Convey("Then the lookup wraps the not-found kind", func() {
				So(err, ShouldWrap, registry.ErrNotFound)
			})
		})

		Convey("When resolving an unoccupied side", func() {
			_, err := s.TeamBySide(ctx, model.SideAway)

			Convey("Then the lookup fails", func() {
				So(err, ShouldWrap, registry.ErrNotFound)
			})
		})
	})
}

func TestMemStorePlayers(t *testing.T) {
	Convey("Given a store with one team", t, func() {
		s := registry.NewMemStore()
		ctx := context.Background()
		So(s.AddTeam(ctx, registry.Team{ID: "sharks", Side: model.SideHome}), ShouldBeNil)

		Convey("When adding players", func() {
			p1 := registry.Player{ID: "qb", TeamID: "sharks", Position: model.Quarterback}
			p2 := registry.Player{ID: "rb", TeamID: "sharks", Position: model.RunningBack}
			So(s.AddPlayer(ctx, p1), ShouldBeNil)
			So(s.AddPlayer(ctx, p2), ShouldBeNil)

			Convey("Then players resolve by id", func() {
				got, err := s.Player(ctx, "qb")
				So(err, ShouldBeNil)
				So(got.Position, ShouldEqual, model.Quarterback)
			})

			Convey("And the roster lists them in registration order", func() {
				roster, err := s.PlayersFor(ctx, "sharks")
				So(err, ShouldBeNil)
				So(len(roster), ShouldEqual, 2)
				So(roster[0].ID, ShouldEqual, model.PlayerID("qb"))
				So(roster[1].ID, ShouldEqual, model.PlayerID("rb"))
			})

			Convey("And a duplicate player id fails", func() {
				So(s.AddPlayer(ctx, p1), ShouldWrap, registry.ErrDuplicateID)
			})
		})

		Convey("When adding a player to an unknown team", func() {
			err := s.AddPlayer(ctx, registry.Player{ID: "stray", TeamID: "ghosts"})

			Convey("Then the add fails", func() {
				So(err, ShouldWrap, registry.ErrNotFound)
			})
		})

		Convey("When listing players for an unknown team", func() {
			_, err := s.PlayersFor(ctx, "ghosts")

			Convey("Then the lookup fails", func() {
				So(err, ShouldWrap, registry.ErrNotFound)
			})
		})
	})
}

func TestMemStoreCoaches(t *testing.T) {
	Convey("Given a store with one team", t, func() {
		s := registry.NewMemStore()
		ctx := context.Background()
		So(s.AddTeam(ctx, registry.Team{ID: "sharks", Side: model.SideHome}), ShouldBeNil)

		Convey("When assigning a coach", func() {
			So(s.SetCoach(ctx, registry.Coach{ID: "c1", TeamID: "sharks", Leadership: 80}), ShouldBeNil)

			Convey("Then the coach resolves by id", func() {
				c, err := s.Coach(ctx, "c1")
				So(err, ShouldBeNil)
				So(c.Leadership, ShouldEqual, 80)
			})

			Convey("And a replacement removes the previous assignment", func() {
				So(s.SetCoach(ctx, registry.Coach{ID: "c2", TeamID: "sharks", Leadership: 60}), ShouldBeNil)

				_, err := s.Coach(ctx, "c1")
				So(err, ShouldWrap, registry.ErrNotFound)

				c, err := s.Coach(ctx, "c2")
				So(err, ShouldBeNil)
				So(c.Leadership, ShouldEqual, 60)
			})
		})

		Convey("When assigning a coach to an unknown team", func() {
			err := s.SetCoach(ctx, registry.Coach{ID: "c1", TeamID: "ghosts"})

			Convey("Then the assignment fails", func() {
				So(err, ShouldWrap, registry.ErrNotFound)
			})
		})
	})
}

func TestMemStoreStadium(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := registry.NewMemStore()
		ctx := context.Background()

		Convey("When no stadium is set", func() {
			_, err := s.Stadium(ctx)

			Convey("Then the lookup reports the missing venue", func() {
				So(err, ShouldWrap, registry.ErrNoStadium)
			})
		})

		Convey("When setting the stadium", func() {
			So(s.SetStadium(ctx, registry.Stadium{ID: "bowl", Capacity: 64000, HomeFieldAdvantage: 1.15}), ShouldBeNil)

			Convey("Then it resolves with its fields intact", func() {
				st, err := s.Stadium(ctx)
				So(err, ShouldBeNil)
				So(st.Capacity, ShouldEqual, 64000)
				So(st.HomeFieldAdvantage, ShouldEqual, 1.15)
			})
		})
	})
}

func TestGameClock(t *testing.T) {
	Convey("Given a fresh game clock", t, func() {
		c := registry.NewGameClock()

		Convey("Then it starts at the top of the first quarter", func() {
			So(c.Quarter(), ShouldEqual, 1)
			So(c.Remaining(), ShouldEqual, 900.0)
			So(c.Finished(), ShouldBeFalse)
		})

		Convey("When ticking within a quarter", func() {
			c.Tick(300)

			Convey("Then remaining time drops", func() {
				So(c.Quarter(), ShouldEqual, 1)
				So(c.Remaining(), ShouldEqual, 600.0)
			})
		})

		Convey("When ticking across a quarter boundary", func() {
			c.Tick(1000)

			Convey("Then the quarter rolls over with the remainder", func() {
				So(c.Quarter(), ShouldEqual, 2)
				So(c.Remaining(), ShouldEqual, 800.0)
			})
		})

		Convey("When ticking past regulation", func() {
			c.Tick(10000)

			Convey("Then the clock stops at the end of the fourth quarter", func() {
				So(c.Quarter(), ShouldEqual, 4)
				So(c.Remaining(), ShouldEqual, 0.0)
				So(c.Finished(), ShouldBeTrue)
			})
		})

		Convey("When positioning the clock directly", func() {
			c.SetTime(4, 120)

			Convey("Then the reading reflects the position", func() {
				So(c.Quarter(), ShouldEqual, 4)
				So(c.Remaining(), ShouldEqual, 120.0)
			})
		})

		Convey("When positioning with out-of-range values", func() {
			c.SetTime(0, 5000)

			Convey("Then values are clamped", func() {
				So(c.Quarter(), ShouldEqual, 1)
				So(c.Remaining(), ShouldEqual, 900.0)
			})
		})

		Convey("When scoring", func() {
			c.AddScore(true, 7)
			c.AddScore(false, 3)
			c.AddScore(true, 0)  // ignored
			c.AddScore(true, -6) // ignored

			Convey("Then scores and the difference track correctly", func() {
				home, away := c.Scores()
				So(home, ShouldEqual, 7)
				So(away, ShouldEqual, 3)
				So(c.ScoreDifference(), ShouldEqual, 4)
			})
		})

		Convey("When marking game flags", func() {
			c.SetFlags(true, true)

			Convey("Then both flags read back", func() {
				So(c.Rivalry(), ShouldBeTrue)
				So(c.Playoff(), ShouldBeTrue)
			})
		})
	})
}
