package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	service "github.com/okian/feedcodec/internal/app"
	"github.com/okian/feedcodec/internal/config"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithLevel("error")); err != nil {
		panic(err)
	}
}

var (
	awayID = uuid.MustParse("b63be8c2-576a-4d6e-8daf-814f8bcea96f")
	homeID = uuid.MustParse("adc5b394-8f76-416d-9ce9-813706877b84")
)

func envelope() fed.Envelope {
	return fed.Envelope{ID: uuid.New(), Created: time.Date(2021, 3, 1, 16, 0, 0, 0, time.UTC), Sim: "gamma10", Season: 11}
}

// playBall returns an encoded record that round-trips.
func playBall() model.RawEvent {
	return codec.Encode(fed.PlayBall{
		Envelope: envelope(),
		Game:     fed.Game{ID: uuid.New(), Play: 1},
		Teams:    fed.Matchup{Away: awayID, Home: homeID},
	})
}

func halfInning(inning int64) model.RawEvent {
	return codec.Encode(fed.HalfInning{
		Envelope: envelope(),
		Game:     fed.Game{ID: uuid.New(), Play: 2},
		Top:      inning%2 == 0,
		Inning:   inning,
		Batting:  fed.Team{ID: homeID, Name: "Baltimore Crabs"},
	})
}

// broken returns a record whose description no recipe accepts.
func broken() model.RawEvent {
	r := playBall()
	r.Description = "Play ball?"
	return r
}

// waitChecked polls until the service has checked n records.
func waitChecked(svc *service.Service, n int64) service.Stats {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if st := svc.Stats(); st.Checked >= n {
			return st
		}
		time.Sleep(2 * time.Millisecond)
	}
	return svc.Stats()
}

func TestService_New(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(
			service.WithWorkerCount(3),
			service.WithQueueSize(50),
			service.WithDedupeSize(25),
		)

		Convey("Then it should report its configuration before starting", func() {
			st := svc.Stats()
			So(st.Started, ShouldBeFalse)
			So(st.Workers, ShouldEqual, 3)
			So(st.QueueCapacity, ShouldEqual, 50)
		})

		Convey("Then calls before Start should fail", func() {
			So(errors.Is(svc.Submit(context.Background(), playBall()), service.ErrNotStarted), ShouldBeTrue)
			_, err := svc.Summary(context.Background())
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
		})
	})

	Convey("Given options built from a config", t, func() {
		cfg := config.New()
		cfg.WorkerCount = 2
		cfg.QueueSize = 7
		svc := service.New(service.FromConfig(cfg)...)

		Convey("Then the service should use them", func() {
			So(svc.Stats().Workers, ShouldEqual, 2)
			So(svc.Stats().QueueCapacity, ShouldEqual, 7)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithWorkerCount(2))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("Then it should be marked as started", func() {
			So(svc.Stats().Started, ShouldBeTrue)
			So(svc.Start(ctx), ShouldBeNil)
		})

		Convey("When stopping and starting again", func() {
			svc.Stop()
			So(svc.Stats().Started, ShouldBeFalse)
			svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then it should accept records again", func() {
				So(svc.Submit(ctx, playBall()), ShouldBeNil)
				So(waitChecked(svc, 1).Checked, ShouldBeGreaterThanOrEqualTo, 1)
			})
		})
	})
}

func TestService_Submit(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New(service.WithWorkerCount(2))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When submitting records", func() {
			ok := playBall()
			So(svc.Submit(ctx, ok), ShouldBeNil)
			So(svc.Submit(ctx, broken()), ShouldBeNil)
			So(svc.Submit(ctx, model.RawEvent{ID: uuid.New(), Type: model.TypeWeatherChange}), ShouldBeNil)

			Convey("Then each should be checked and counted", func() {
				st := waitChecked(svc, 3)
				So(st.Checked, ShouldEqual, int64(3))
				So(st.OK, ShouldEqual, int64(1))
				So(st.DecodeErrors, ShouldEqual, int64(1))
				So(st.Unhandled, ShouldEqual, int64(1))
				So(st.DedupeSize, ShouldEqual, int64(3))
			})

			Convey("Then a resubmission should be a duplicate", func() {
				So(errors.Is(svc.Submit(ctx, ok), service.ErrDuplicate), ShouldBeTrue)
				So(svc.Stats().Duplicates, ShouldEqual, int64(1))
			})

			Convey("Then the store should list the failure", func() {
				waitChecked(svc, 3)
				failures, err := svc.Failures(ctx, 10)
				So(err, ShouldBeNil)
				So(failures, ShouldHaveLength, 1)
				So(failures[0].Kind, ShouldEqual, "unexpected_description")
			})
		})
	})
}
