package roundtrip_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	"github.com/smartystreets/goconvey/convey"
)

var (
	gameID = uuid.MustParse("0b8e5a3b-d4b0-4a77-a2f6-3a5a5c7f2a7c")
	awayID = uuid.MustParse("b63be8c2-576a-4d6e-8daf-814f8bcea96f")
	homeID = uuid.MustParse("adc5b394-8f76-416d-9ce9-813706877b84")
	alexID = uuid.MustParse("d8ee256f-e3d0-46cb-8c77-b1f88d8c9df9")
)

func hitRecord() model.RawEvent {
	return model.RawEvent{
		ID:          uuid.New(),
		Created:     time.Date(2021, 3, 1, 16, 0, 0, 0, time.UTC),
		Type:        model.TypeHitByPitch,
		Description: "Jaylen Hotdogfingers hits Alex Horne with a pitch! Alex Horne is now Unstable!",
		PlayerTags:  []uuid.UUID{uuid.New(), alexID},
		TeamTags:    []uuid.UUID{awayID, homeID},
		GameTags:    []uuid.UUID{gameID},
		Metadata:    model.Metadata{Play: model.Int64Ptr(12), SubPlay: model.Int64Ptr(-1)},
		Children: []model.RawEvent{{
			ID:          uuid.New(),
			Created:     time.Date(2021, 3, 1, 16, 0, 0, 5, time.UTC),
			Type:        model.TypeAddedMod,
			Description: "Alex Horne is now Unstable!",
			PlayerTags:  []uuid.UUID{alexID},
			TeamTags:    []uuid.UUID{},
			GameTags:    []uuid.UUID{gameID},
			Metadata: model.Metadata{
				Play:    model.Int64Ptr(12),
				SubPlay: model.Int64Ptr(0),
				Other:   map[string]any{"mod": "UNSTABLE", "type": json.Number("3")},
			},
		}},
	}
}

func TestCheck(t *testing.T) {
	convey.Convey("Given a record read from a corpus", t, func() {
		raw := hitRecord()

		convey.Convey("Then it should round-trip", func() {
			out := roundtrip.Check(raw)
			convey.So(out.Err, convey.ShouldBeNil)
			convey.So(out.Diff, convey.ShouldBeEmpty)
			convey.So(out.Status, convey.ShouldEqual, roundtrip.StatusOK)
			convey.So(out.ID, convey.ShouldEqual, raw.ID)
			convey.So(out.Failed(), convey.ShouldBeFalse)
		})

		convey.Convey("When the passthrough counters differ from what encode writes", func() {
			raw.Sim = "gamma10"
			raw.Children[0].Sim = "other"
			raw.Children[0].Category = 9

			convey.Convey("Then they should be ignored", func() {
				convey.So(roundtrip.Check(raw).Status, convey.ShouldEqual, roundtrip.StatusOK)
			})
		})

		convey.Convey("When the child carries extra metadata", func() {
			raw.Children[0].Metadata.Other["source"] = "mystery"

			convey.Convey("Then the diff should name it", func() {
				out := roundtrip.Check(raw)
				convey.So(out.Status, convey.ShouldEqual, roundtrip.StatusMismatch)
				convey.So(out.Diff, convey.ShouldContainSubstring, "source")
				convey.So(out.Failed(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the child has null team tags", func() {
			raw.Children[0].TeamTags = nil

			convey.Convey("Then empty and null should compare equal", func() {
				convey.So(roundtrip.Check(raw).Status, convey.ShouldEqual, roundtrip.StatusOK)
			})
		})

		convey.Convey("When the description is malformed", func() {
			raw.Description = "Jaylen Hotdogfingers hits Alex Horne with a pitch!"

			convey.Convey("Then it should be a decode error with a kind", func() {
				out := roundtrip.Check(raw)
				convey.So(out.Status, convey.ShouldEqual, roundtrip.StatusDecodeError)
				convey.So(out.ErrKind, convey.ShouldEqual, "description_parse")
				convey.So(out.Err, convey.ShouldNotBeNil)
			})
		})
	})

	convey.Convey("Given a record with an unhandled type code", t, func() {
		out := roundtrip.Check(model.RawEvent{ID: uuid.New(), Type: model.TypeWeatherChange})

		convey.Convey("Then it should be unhandled and not failed", func() {
			convey.So(out.Status, convey.ShouldEqual, roundtrip.StatusUnhandled)
			convey.So(out.ErrKind, convey.ShouldEqual, "unhandled_event_type")
			convey.So(out.Failed(), convey.ShouldBeFalse)
		})
	})

	convey.Convey("Given a custom registry", t, func() {
		reg := codec.NewRegistry()
		reg.Register(model.TypeWeatherChange, func(c *codec.Cursor) (fed.Event, error) {
			return fed.PolarityShift{Envelope: c.Envelope()}, nil
		})
		checker := roundtrip.NewChecker(reg)

		convey.Convey("Then a recipe that cannot rebuild its record should mismatch", func() {
			out := checker.Check(model.RawEvent{ID: uuid.New(), Type: model.TypeWeatherChange})
			convey.So(out.Status, convey.ShouldEqual, roundtrip.StatusMismatch)
			convey.So(out.Diff, convey.ShouldNotBeEmpty)
		})
	})
}

func TestDiff(t *testing.T) {
	convey.Convey("Given two records differing only in number representation", t, func() {
		a := model.RawEvent{Metadata: model.Metadata{Other: map[string]any{"n": int64(3), "f": 0.5}}}
		b := model.RawEvent{Metadata: model.Metadata{Other: map[string]any{"n": json.Number("3"), "f": json.Number("0.5")}}}
		convey.So(roundtrip.Diff(a, b), convey.ShouldBeEmpty)
	})

	convey.Convey("Given records with different tag order", t, func() {
		x, y := uuid.New(), uuid.New()
		a := model.RawEvent{PlayerTags: []uuid.UUID{x, y}}
		b := model.RawEvent{PlayerTags: []uuid.UUID{y, x}}
		convey.So(roundtrip.Diff(a, b), convey.ShouldNotBeEmpty)
	})
}
