package codec_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestRoundTrip(t *testing.T) {
	convey.Convey("Given one value of every typed variant", t, func() {
		for _, ev := range samples() {
			name := fmt.Sprintf("%T/%s", ev, ev.Header().ID)
			raw := codec.Encode(ev)

			convey.Convey("Encoding then decoding "+name+" should be the identity", func() {
				got, err := codec.Decode(raw)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cmp.Diff(ev, got), convey.ShouldBeEmpty)
			})

			convey.Convey("Decoding "+name+" from JSON should give the same value", func() {
				data, err := json.Marshal(raw)
				convey.So(err, convey.ShouldBeNil)
				var wire model.RawEvent
				convey.So(json.Unmarshal(data, &wire), convey.ShouldBeNil)

				got, err := codec.Decode(wire)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cmp.Diff(ev, got), convey.ShouldBeEmpty)
			})

			convey.Convey("Re-encoding "+name+" should reproduce the record", func() {
				got, err := codec.Decode(raw)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cmp.Diff(raw, codec.Encode(got)), convey.ShouldBeEmpty)
			})
		}
	})
}

func TestHitScenario(t *testing.T) {
	convey.Convey("Given a hit record with one scorer", t, func() {
		raw := model.RawEvent{
			ID:          uuid.New(),
			Created:     created,
			Type:        model.TypeHit,
			Description: "Jessica Telephone hits a Triple!\nAlex Horne scores!",
			PlayerTags:  []uuid.UUID{jessica.ID, alex.ID},
			TeamTags:    []uuid.UUID{awayID, homeID},
			GameTags:    []uuid.UUID{gameID},
			Metadata:    model.Metadata{Play: model.Int64Ptr(42), SubPlay: model.Int64Ptr(-1)},
		}

		convey.Convey("When decoding it", func() {
			ev, err := codec.Decode(raw)
			convey.So(err, convey.ShouldBeNil)
			hit, ok := ev.(fed.Hit)
			convey.So(ok, convey.ShouldBeTrue)

			convey.Convey("Then the batter, bases and scorer should be read", func() {
				convey.So(hit.Batter, convey.ShouldResemble, jessica)
				convey.So(hit.NumBases, convey.ShouldEqual, 3)
				convey.So(hit.Scores, convey.ShouldResemble, []fed.ScoringPlayer{{ID: alex.ID, Name: "Alex Horne"}})
				convey.So(hit.Item, convey.ShouldBeNil)
			})

			convey.Convey("Then encoding should reproduce the record", func() {
				out := codec.Encode(hit)
				convey.So(out.Description, convey.ShouldEqual, raw.Description)
				convey.So(out.PlayerTags, convey.ShouldResemble, raw.PlayerTags)
				convey.So(out.TeamTags, convey.ShouldResemble, raw.TeamTags)
				convey.So(out.Children, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When a scorer id is missing", func() {
			raw.PlayerTags = raw.PlayerTags[:1]
			_, err := codec.Decode(raw)

			convey.Convey("Then it should fail with a tag count error", func() {
				var nt *codec.NotEnoughTags
				convey.So(errors.As(err, &nt), convey.ShouldBeTrue)
				convey.So(nt.Kind, convey.ShouldEqual, codec.TagPlayer)
				convey.So(nt.ExpectedAtLeast, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When there is an extra player id", func() {
			raw.PlayerTags = append(raw.PlayerTags, sosa.ID)
			_, err := codec.Decode(raw)

			convey.Convey("Then it should fail with a wrong tag count", func() {
				var wt *codec.WrongNumberOfTags
				convey.So(errors.As(err, &wt), convey.ShouldBeTrue)
				convey.So(wt.Expected, convey.ShouldEqual, 2)
				convey.So(wt.Actual, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When there is an unexpected child", func() {
			raw.Children = []model.RawEvent{{Type: model.TypeAddedMod}}
			_, err := codec.Decode(raw)
			convey.So(errors.Is(err, codec.ErrExtraChildren), convey.ShouldBeTrue)
		})

		convey.Convey("When the description has trailing text", func() {
			raw.Description += "\nSomething else happens."
			_, err := codec.Decode(raw)
			convey.So(errors.Is(err, codec.ErrDescriptionParse), convey.ShouldBeTrue)
		})
	})
}

func TestStolenBaseScenario(t *testing.T) {
	convey.Convey("Given a steal of second", t, func() {
		raw := model.RawEvent{
			Type:        model.TypeStolenBase,
			Description: "Elsa Low steals second base!",
			PlayerTags:  []uuid.UUID{elsa.ID},
			TeamTags:    []uuid.UUID{awayID, homeID},
			GameTags:    []uuid.UUID{gameID},
			Metadata:    model.Metadata{Play: model.Int64Ptr(7), SubPlay: model.Int64Ptr(-1)},
		}

		convey.Convey("Then it should decode as a plain steal", func() {
			ev, err := codec.Decode(raw)
			convey.So(err, convey.ShouldBeNil)
			sb := ev.(fed.StolenBase)
			convey.So(sb.Runner, convey.ShouldResemble, elsa)
			convey.So(sb.Base, convey.ShouldEqual, fed.BaseSecond)
			convey.So(sb.Blaserunning, convey.ShouldBeFalse)
			convey.So(sb.FreeRefill, convey.ShouldBeNil)
		})

		convey.Convey("When the runner scores with Blaserunning", func() {
			raw.Description += "\nElsa Low scores with Blaserunning!"

			convey.Convey("And the runner id repeats", func() {
				raw.PlayerTags = []uuid.UUID{elsa.ID, elsa.ID}
				ev, err := codec.Decode(raw)
				convey.So(err, convey.ShouldBeNil)
				convey.So(ev.(fed.StolenBase).Blaserunning, convey.ShouldBeTrue)
			})

			convey.Convey("And the second id differs", func() {
				raw.PlayerTags = []uuid.UUID{elsa.ID, sosa.ID}
				_, err := codec.Decode(raw)
				var eq *codec.ExpectedEqualTags
				convey.So(errors.As(err, &eq), convey.ShouldBeTrue)
				convey.So(eq.First, convey.ShouldEqual, elsa.ID)
				convey.So(eq.Second, convey.ShouldEqual, sosa.ID)
			})

			convey.Convey("And the second id is missing", func() {
				_, err := codec.Decode(raw)
				convey.So(errors.Is(err, codec.ErrNotEnoughTags), convey.ShouldBeTrue)
			})
		})
	})
}

func TestAlternationPrecedence(t *testing.T) {
	convey.Convey("Given a walk whose first line is a plain walk", t, func() {
		raw := model.RawEvent{
			Type:        model.TypeWalk,
			Description: "Alex Horne draws a walk.\nJaylen Hotdogfingers uses a Mind Trick!\nAlex Horne strikes out swinging.",
			PlayerTags:  []uuid.UUID{alex.ID, jaylen.ID},
			TeamTags:    []uuid.UUID{awayID, homeID},
			GameTags:    []uuid.UUID{gameID},
			Metadata:    model.Metadata{Play: model.Int64Ptr(7), SubPlay: model.Int64Ptr(-1)},
		}

		convey.Convey("Then the Mind Trick form should win", func() {
			ev, err := codec.Decode(raw)
			convey.So(err, convey.ShouldBeNil)
			mt, ok := ev.(fed.MindTrickStrikeout)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(mt.Pitcher, convey.ShouldResemble, jaylen)
			convey.So(mt.Kind, convey.ShouldEqual, fed.StrikeoutSwinging)
		})
	})
}

func TestNameWithPeriod(t *testing.T) {
	convey.Convey("Given a ground out to a fielder named with a period", t, func() {
		raw := model.RawEvent{
			Type:        model.TypeGroundOut,
			Description: "Alex Horne hit a ground out to Bar Jr..",
			PlayerTags:  []uuid.UUID{alex.ID, junior.ID},
			TeamTags:    []uuid.UUID{awayID, homeID},
			GameTags:    []uuid.UUID{gameID},
			Metadata:    model.Metadata{Play: model.Int64Ptr(7), SubPlay: model.Int64Ptr(-1)},
		}

		convey.Convey("Then the name should keep its period", func() {
			ev, err := codec.Decode(raw)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ev.(fed.GroundOut).Fielder.Name, convey.ShouldEqual, "Bar Jr.")
		})
	})
}

func TestUnhandled(t *testing.T) {
	convey.Convey("Given records without a recipe", t, func() {
		cases := []model.EventType{model.TypeWeatherChange, model.TypeAddedMod, model.EventType(9999), model.EventType(-3)}
		for _, typ := range cases {
			_, err := codec.Decode(model.RawEvent{Type: typ, Description: "whatever"})

			convey.Convey(fmt.Sprintf("Then %s should be reported as unhandled", typ), func() {
				var un *codec.UnhandledEventType
				convey.So(errors.As(err, &un), convey.ShouldBeTrue)
				convey.So(un.Type, convey.ShouldEqual, typ)
				convey.So(errors.Is(err, codec.ErrDescriptionParse), convey.ShouldBeFalse)
				convey.So(codec.KindOf(err), convey.ShouldEqual, "unhandled_event_type")
			})
		}
	})
}

func TestRegistry(t *testing.T) {
	convey.Convey("Given the default registry", t, func() {
		r := codec.Default()

		convey.Convey("Then every enumerated code should have an entry", func() {
			for _, typ := range model.KnownEventTypes() {
				convey.So(r.Registered(typ), convey.ShouldBeTrue)
			}
		})

		convey.Convey("Then every typed variant's code should be handled", func() {
			for _, ev := range samples() {
				convey.So(r.Handled(ev.Type()), convey.ShouldBeTrue)
			}
		})

		convey.Convey("Then mod lifecycle codes should stay unhandled", func() {
			convey.So(r.Handled(model.TypeAddedMod), convey.ShouldBeFalse)
			convey.So(r.Registered(model.TypeAddedMod), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a fresh registry", t, func() {
		r := codec.NewRegistry()

		convey.Convey("When a recipe is registered for an unhandled code", func() {
			r.Register(model.TypeWeatherChange, func(c *codec.Cursor) (fed.Event, error) {
				if _, err := c.Games.Next(); err != nil {
					return nil, err
				}
				return fed.PolarityShift{Envelope: c.Envelope()}, nil
			})

			convey.Convey("Then it should be used", func() {
				ev, err := r.Decode(model.RawEvent{Type: model.TypeWeatherChange, GameTags: []uuid.UUID{gameID}})
				convey.So(err, convey.ShouldBeNil)
				convey.So(ev, convey.ShouldHaveSameTypeAs, fed.PolarityShift{})
				convey.So(r.Handled(model.TypeWeatherChange), convey.ShouldBeTrue)
			})

			convey.Convey("Then marking it unhandled should not replace it", func() {
				r.Unhandled(model.TypeWeatherChange)
				convey.So(r.Handled(model.TypeWeatherChange), convey.ShouldBeTrue)
			})
		})

		convey.Convey("Then encoding a foreign value should panic", func() {
			convey.So(func() { r.Encode(foreign{}) }, convey.ShouldPanic)
		})
	})
}

type foreign struct{ fed.Envelope }

func (foreign) Type() model.EventType { return model.TypeVoicemail }
