package impact_test

import (
	"testing"

	impact "github.com/okian/huddle/internal/domain/impact"
	"github.com/okian/huddle/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// stubClock is a fixed game-state reading.
type stubClock struct {
	quarter   int
	remaining float64
	scoreDiff int
	rivalry   bool
	playoff   bool
}

func (c stubClock) Quarter() int         { return c.quarter }
func (c stubClock) Remaining() float64   { return c.remaining }
func (c stubClock) ScoreDifference() int { return c.scoreDiff }
func (c stubClock) Rivalry() bool        { return c.rivalry }
func (c stubClock) Playoff() bool        { return c.playoff }

func TestResolverWeights(t *testing.T) {
	Convey("Given a resolver with default weights", t, func() {
		r := impact.New()

		Convey("Then kinds order by crowd reaction strength", func() {
			So(r.Weight(model.Touchdown), ShouldBeGreaterThan, r.Weight(model.Interception))
			So(r.Weight(model.Interception), ShouldBeGreaterThan, r.Weight(model.Fumble))
			So(r.Weight(model.Fumble), ShouldBeGreaterThan, r.Weight(model.FieldGoal))
			So(r.Weight(model.FieldGoal), ShouldBeGreaterThan, r.Weight(model.Penalty))
			So(r.Weight(model.Penalty), ShouldBeGreaterThan, r.Weight(model.Safety))
		})

		Convey("When resolving with no clock", func() {
			res := r.Resolve(model.GameEvent{Kind: model.Touchdown}, nil)

			Convey("Then tension is the 1.0 baseline", func() {
				So(res.Tension, ShouldEqual, 1.0)
				So(res.Acting, ShouldEqual, 12.0)
			})
		})

		Convey("When overriding weights by name", func() {
			custom := impact.New(impact.WithEventWeights(map[string]float64{
				"touchdown": 20.0,
				"bogus":     5.0, // unknown names are ignored
			}))

			Convey("Then only recognized kinds change", func() {
				So(custom.Weight(model.Touchdown), ShouldEqual, 20.0)
				So(custom.Weight(model.Sack), ShouldEqual, 7.0)
			})
		})
	})
}

func TestResolverTension(t *testing.T) {
	Convey("Given a resolver and varied game contexts", t, func() {
		r := impact.New()
		e := model.GameEvent{Kind: model.FieldGoal}

		Convey("When the game is early and even", func() {
			res := r.Resolve(e, stubClock{quarter: 1, remaining: 800})

			Convey("Then tension stays at baseline", func() {
				So(res.Tension, ShouldEqual, 1.0)
			})
		})

		Convey("When the game is late and close", func() {
			res := r.Resolve(e, stubClock{quarter: 4, remaining: 120, scoreDiff: 3})

			Convey("Then the late-close bump applies", func() {
				So(res.Tension, ShouldEqual, 1.5)
			})
		})

		Convey("When the game is late but a blowout", func() {
			res := r.Resolve(e, stubClock{quarter: 4, remaining: 120, scoreDiff: 21})

			Convey("Then no late-close bump applies", func() {
				So(res.Tension, ShouldEqual, 1.0)
			})
		})

		Convey("When the game is a late, close rivalry", func() {
			res := r.Resolve(e, stubClock{quarter: 4, remaining: 120, scoreDiff: -7, rivalry: true})

			Convey("Then bumps stack additively", func() {
				So(res.Tension, ShouldAlmostEqual, 1.8, 1e-9)
			})
		})

		Convey("When every context bump applies", func() {
			res := r.Resolve(e, stubClock{quarter: 4, remaining: 60, scoreDiff: 0, rivalry: true, playoff: true})

			Convey("Then tension caps at the maximum", func() {
				So(res.Tension, ShouldEqual, 2.0)
			})
		})
	})
}

func TestResolverResult(t *testing.T) {
	Convey("Given a resolver", t, func() {
		r := impact.New()
		clock := stubClock{quarter: 2, remaining: 500}

		Convey("When resolving a touchdown", func() {
			res := r.Resolve(model.GameEvent{Kind: model.Touchdown}, clock)

			Convey("Then the opposing delta is the scaled negative", func() {
				So(res.Acting, ShouldEqual, 12.0)
				So(res.Opposing, ShouldAlmostEqual, -7.2, 1e-9)
				So(res.Opposing, ShouldEqual, -res.Acting*r.OpposingScale())
			})
		})

		Convey("When resolving an unknown kind", func() {
			res := r.Resolve(model.GameEvent{Kind: model.EventKind(99)}, clock)

			Convey("Then the default weight applies", func() {
				So(res.Acting, ShouldEqual, 3.0)
			})
		})

		Convey("When resolving the same inputs twice", func() {
			a := r.Resolve(model.GameEvent{Kind: model.Sack}, clock)
			b := r.Resolve(model.GameEvent{Kind: model.Sack}, clock)

			Convey("Then the results are identical", func() {
				So(a, ShouldResemble, b)
			})
		})

		Convey("When using a custom opposing scale", func() {
			custom := impact.New(impact.WithOpposingScale(0.25))
			res := custom.Resolve(model.GameEvent{Kind: model.Touchdown}, nil)

			Convey("Then the opposing delta shrinks", func() {
				So(res.Opposing, ShouldAlmostEqual, -3.0, 1e-9)
			})
		})
	})
}
