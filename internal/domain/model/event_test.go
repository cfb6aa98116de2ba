package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	model "github.com/okian/feedcodec/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

const sampleRecord = `{
  "id": "5b1c3a1e-7d5a-4a3e-9e59-5d0f0ac1c001",
  "created": "2021-03-01T16:00:04.123Z",
  "type": 10,
  "category": 0,
  "description": "Jessica Telephone hits a Triple!\nAlex Horne scores!",
  "playerTags": ["083d09d4-7ed3-4100-b021-8fbe30dd43e8", "d8ee256f-e3d0-46cb-8c77-b1f88d8c9df9"],
  "teamTags": ["b63be8c2-576a-4d6e-8daf-814f8bcea96f", "adc5b394-8f76-416d-9ce9-813706877b84"],
  "gameTags": ["0b8e5a3b-d4b0-4a77-a2f6-3a5a5c7f2a7c"],
  "metadata": {"play": 42, "subPlay": -1, "weather": 7, "ratio": 0.5},
  "sim": "gamma10",
  "season": 11,
  "day": 3,
  "phase": 2,
  "tournament": -1,
  "nuts": 0
}`

func TestRawEventJSON(t *testing.T) {
	convey.Convey("Given a corpus record", t, func() {
		var ev model.RawEvent
		err := json.Unmarshal([]byte(sampleRecord), &ev)

		convey.Convey("Then it should decode every field", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(ev.ID, convey.ShouldEqual, uuid.MustParse("5b1c3a1e-7d5a-4a3e-9e59-5d0f0ac1c001"))
			convey.So(ev.Created.Equal(time.Date(2021, 3, 1, 16, 0, 4, 123000000, time.UTC)), convey.ShouldBeTrue)
			convey.So(ev.Type, convey.ShouldEqual, model.TypeHit)
			convey.So(ev.PlayerTags, convey.ShouldHaveLength, 2)
			convey.So(ev.TeamTags, convey.ShouldHaveLength, 2)
			convey.So(ev.GameTags, convey.ShouldHaveLength, 1)
			convey.So(ev.Sim, convey.ShouldEqual, "gamma10")
			convey.So(ev.Tournament, convey.ShouldEqual, -1)
			convey.So(ev.Children, convey.ShouldBeEmpty)
		})

		convey.Convey("Then play and subPlay should be lifted out of the blob", func() {
			convey.So(ev.Metadata.Play, convey.ShouldNotBeNil)
			convey.So(*ev.Metadata.Play, convey.ShouldEqual, 42)
			convey.So(ev.Metadata.SubPlay, convey.ShouldNotBeNil)
			convey.So(*ev.Metadata.SubPlay, convey.ShouldEqual, -1)
			convey.So(ev.Metadata.Other, convey.ShouldNotContainKey, "play")
			convey.So(ev.Metadata.Other, convey.ShouldNotContainKey, "subPlay")
		})

		convey.Convey("Then other numbers should be kept as json.Number", func() {
			convey.So(ev.Metadata.Other["weather"], convey.ShouldEqual, json.Number("7"))
			convey.So(ev.Metadata.Other["ratio"], convey.ShouldEqual, json.Number("0.5"))
		})

		convey.Convey("When encoding it again", func() {
			out, err := json.Marshal(ev)
			convey.So(err, convey.ShouldBeNil)

			var again model.RawEvent
			convey.So(json.Unmarshal(out, &again), convey.ShouldBeNil)

			convey.Convey("Then the metadata should survive", func() {
				convey.So(*again.Metadata.Play, convey.ShouldEqual, 42)
				convey.So(*again.Metadata.SubPlay, convey.ShouldEqual, -1)
				convey.So(again.Metadata.Other["weather"], convey.ShouldEqual, json.Number("7"))
				convey.So(again.Description, convey.ShouldEqual, ev.Description)
			})
		})
	})

	convey.Convey("Given metadata without the well-known keys", t, func() {
		var md model.Metadata
		err := json.Unmarshal([]byte(`{"mod": "SHELLED", "type": 0}`), &md)

		convey.Convey("Then the pointers should stay nil", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(md.Play, convey.ShouldBeNil)
			convey.So(md.SubPlay, convey.ShouldBeNil)
			convey.So(md.Other["mod"], convey.ShouldEqual, "SHELLED")
		})
	})

	convey.Convey("Given metadata with a null play", t, func() {
		var md model.Metadata
		err := json.Unmarshal([]byte(`{"play": null}`), &md)

		convey.Convey("Then it should be treated as absent", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(md.Play, convey.ShouldBeNil)
			convey.So(md.Other, convey.ShouldBeNil)
		})
	})

	convey.Convey("Given metadata with a non-numeric play", t, func() {
		var md model.Metadata
		err := json.Unmarshal([]byte(`{"play": "seven"}`), &md)

		convey.Convey("Then decoding should fail", func() {
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "play")
		})
	})
}

func TestEventType(t *testing.T) {
	convey.Convey("Given the event type enumeration", t, func() {
		convey.Convey("Then known codes should have names", func() {
			convey.So(model.TypeHit.String(), convey.ShouldEqual, "Hit")
			convey.So(model.TypeGameOver.String(), convey.ShouldEqual, "GameOver")
			convey.So(model.TypeHit.Known(), convey.ShouldBeTrue)
		})

		convey.Convey("Then unknown codes should print their number", func() {
			convey.So(model.EventType(9999).String(), convey.ShouldEqual, "EventType(9999)")
			convey.So(model.EventType(9999).Known(), convey.ShouldBeFalse)
		})

		convey.Convey("Then the known list should be sorted and complete", func() {
			known := model.KnownEventTypes()
			convey.So(len(known), convey.ShouldBeGreaterThan, 150)
			for i := 1; i < len(known); i++ {
				convey.So(known[i-1], convey.ShouldBeLessThan, known[i])
			}
			convey.So(known[0], convey.ShouldEqual, model.TypeLetsGo)
		})
	})
}
