package scrimmage_test

import (
	"context"
	"sync"
	"testing"

	"github.com/okian/huddle/internal/adapters/registry"
	"github.com/okian/huddle/internal/domain/model"
	scrimmage "github.com/okian/huddle/internal/scrimmage"
	"github.com/okian/huddle/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// capturePublisher records published events in order.
type capturePublisher struct {
	mu     sync.Mutex
	events []model.GameEvent
}

func (p *capturePublisher) Publish(_ context.Context, e model.GameEvent) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return true
}

func (p *capturePublisher) all() []model.GameEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.GameEvent, len(p.events))
	copy(out, p.events)
	return out
}

func TestSeedSession(t *testing.T) {
	Convey("Given an empty store", t, func() {
		store := registry.NewMemStore()
		ctx := context.Background()

		Convey("When seeding the session", func() {
			session, err := scrimmage.SeedSession(ctx, store)

			Convey("Then both teams exist on their sides", func() {
				So(err, ShouldBeNil)

				home, err := store.TeamBySide(ctx, model.SideHome)
				So(err, ShouldBeNil)
				So(home.ID, ShouldEqual, session.HomeTeam)

				away, err := store.TeamBySide(ctx, model.SideAway)
				So(err, ShouldBeNil)
				So(away.ID, ShouldEqual, session.AwayTeam)
			})

			Convey("And each side has a full roster with one immune player", func() {
				for _, teamID := range []model.TeamID{session.HomeTeam, session.AwayTeam} {
					players, err := store.PlayersFor(ctx, teamID)
					So(err, ShouldBeNil)
					So(len(players), ShouldEqual, 10)

					immune := 0
					for _, p := range players {
						if p.MomentumImmune {
							immune++
							So(p.Position, ShouldEqual, model.Kicker)
						}
					}
					So(immune, ShouldEqual, 1)
				}
			})

			Convey("And the coaches resolve with distinct leadership", func() {
				home, err := store.Coach(ctx, session.HomeCoach)
				So(err, ShouldBeNil)
				away, err := store.Coach(ctx, session.AwayCoach)
				So(err, ShouldBeNil)
				So(home.Leadership, ShouldNotEqual, away.Leadership)
			})

			Convey("And the venue carries a home-field advantage", func() {
				st, err := store.Stadium(ctx)
				So(err, ShouldBeNil)
				So(st.Capacity, ShouldBeGreaterThan, 0)
				So(st.HomeFieldAdvantage, ShouldBeGreaterThan, 1.0)
			})
		})

		Convey("When seeding twice", func() {
			_, err := scrimmage.SeedSession(ctx, store)
			So(err, ShouldBeNil)

			_, err = scrimmage.SeedSession(ctx, store)

			Convey("Then the second seeding fails on duplicates", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestDriverGame(t *testing.T) {
	Convey("Given a seeded session and a capture publisher", t, func() {
		ctx := context.Background()
		store := registry.NewMemStore()
		session, err := scrimmage.SeedSession(ctx, store)
		So(err, ShouldBeNil)

		clock := registry.NewGameClock()
		pub := &capturePublisher{}

		Convey("When a full game runs", func() {
			d := scrimmage.NewDriver(session, clock, pub, nil, scrimmage.WithSeed(7))
			for d.Step(ctx) {
			}

			Convey("Then regulation ends", func() {
				So(clock.Finished(), ShouldBeTrue)
				So(d.Step(ctx), ShouldBeFalse)
			})

			Convey("And every event references a seeded team with a unique id", func() {
				events := pub.all()
				So(len(events), ShouldBeGreaterThan, 0)

				ids := make(map[string]struct{}, len(events))
				for _, e := range events {
					So(e.ActingTeam, ShouldBeIn, []model.TeamID{session.HomeTeam, session.AwayTeam})
					So(e.EventID, ShouldNotBeEmpty)
					_, dup := ids[e.EventID]
					So(dup, ShouldBeFalse)
					ids[e.EventID] = struct{}{}
				}
			})

			Convey("And event timestamps never run backwards", func() {
				events := pub.all()
				last := -1.0
				for _, e := range events {
					So(e.Timestamp, ShouldBeGreaterThanOrEqualTo, last)
					last = e.Timestamp
				}
			})
		})

		Convey("When two games run with the same seed", func() {
			d1 := scrimmage.NewDriver(session, registry.NewGameClock(), pub, nil, scrimmage.WithSeed(11))
			for d1.Step(ctx) {
			}
			first := pub.all()

			pub2 := &capturePublisher{}
			d2 := scrimmage.NewDriver(session, registry.NewGameClock(), pub2, nil, scrimmage.WithSeed(11))
			for d2.Step(ctx) {
			}
			second := pub2.all()

			Convey("Then the play-by-play matches kind for kind", func() {
				So(len(second), ShouldEqual, len(first))
				for i := range first {
					So(second[i].Kind, ShouldEqual, first[i].Kind)
					So(second[i].ActingTeam, ShouldEqual, first[i].ActingTeam)
				}
			})
		})

		Convey("When scoring plays land", func() {
			d := scrimmage.NewDriver(session, clock, pub, nil, scrimmage.WithSeed(3), scrimmage.WithEventOdds(1.0))
			for d.Step(ctx) {
			}

			Convey("Then the scoreboard reflects them", func() {
				expectedHome, expectedAway := 0, 0
				for _, e := range pub.all() {
					points := 0
					switch e.Kind {
					case model.Touchdown:
						points = 7
					case model.FieldGoal:
						points = 3
					case model.Safety:
						points = 2
					}
					if e.ActingTeam == session.HomeTeam {
						expectedHome += points
					} else {
						expectedAway += points
					}
				}
				home, away := clock.Scores()
				So(home, ShouldEqual, expectedHome)
				So(away, ShouldEqual, expectedAway)
			})
		})
	})
}
