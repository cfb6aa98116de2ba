package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	service "github.com/okian/feedcodec/internal/app"
	"github.com/okian/feedcodec/internal/adapters/corpus"
	"github.com/okian/feedcodec/internal/domain/codec"
	"github.com/okian/feedcodec/internal/domain/fed"
	"github.com/okian/feedcodec/internal/domain/model"
	"github.com/okian/feedcodec/internal/domain/roundtrip"
	. "github.com/smartystreets/goconvey/convey"
)

// jsonl renders records as a JSON lines corpus.
func jsonl(records ...model.RawEvent) string {
	var sb strings.Builder
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			panic(err)
		}
		sb.Write(b)
		sb.WriteByte('\n')
	}
	return sb.String()
}

type failingSource struct{}

func (failingSource) Name() string { return "missing" }

func (failingSource) Start(context.Context) (<-chan model.RawEvent, <-chan error, error) {
	return nil, nil, corpus.ErrOpenCorpus
}

func TestServiceValidate(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		svc := service.New(service.WithWorkerCount(4), service.WithQueueSize(8))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When validating a corpus of mixed records", func() {
			dup := playBall()
			input := jsonl(
				playBall(), halfInning(1), halfInning(2), dup, broken(),
				model.RawEvent{ID: uuid.New(), Type: model.TypeWeatherChange},
				dup,
			) + "{\"id\": 12}\n"
			rep, err := svc.Validate(ctx, corpus.NewReaderSource("mixed.jsonl", strings.NewReader(input)))

			Convey("Then the report should count every outcome", func() {
				So(err, ShouldBeNil)
				So(rep.Source, ShouldEqual, "mixed.jsonl")
				So(rep.Checked, ShouldEqual, 6)
				So(rep.OK, ShouldEqual, 4)
				So(rep.DecodeErrors, ShouldEqual, 1)
				So(rep.Unhandled, ShouldEqual, 1)
				So(rep.Duplicates, ShouldEqual, 1)
				So(rep.ParseErrors, ShouldEqual, 1)
				So(rep.Stopped, ShouldBeFalse)
				So(rep.Passed(), ShouldBeFalse)
				So(rep.Failures, ShouldHaveLength, 1)
				So(rep.Failures[0].ErrKind, ShouldEqual, "unexpected_description")
			})

			Convey("Then the store should hold a per-type summary", func() {
				sum, err := svc.Summary(ctx)
				So(err, ShouldBeNil)
				totals := map[model.EventType]int{}
				for _, row := range sum {
					totals[row.Type] = row.Total
				}
				So(totals[model.TypePlayBall], ShouldEqual, 3)
				So(totals[model.TypeHalfInning], ShouldEqual, 2)
				So(totals[model.TypeWeatherChange], ShouldEqual, 1)
			})

			Convey("Then the unreadable line should be stored", func() {
				pfs, err := svc.ParseFailures(ctx, "mixed.jsonl")
				So(err, ShouldBeNil)
				So(pfs, ShouldHaveLength, 1)
				So(pfs[0].Line, ShouldEqual, 8)
			})

			Convey("Then validating the same corpus again should skip every record", func() {
				again, err := svc.Validate(ctx, corpus.NewReaderSource("mixed.jsonl", strings.NewReader(input)))
				So(err, ShouldBeNil)
				So(again.Checked, ShouldEqual, 0)
				So(again.Duplicates, ShouldEqual, 7)
			})
		})

		Convey("When validating a clean JSON array corpus", func() {
			records := make([]model.RawEvent, 0, 50)
			for i := 0; i < 50; i++ {
				records = append(records, halfInning(int64(i%9+1)))
			}
			b, err := json.Marshal(records)
			So(err, ShouldBeNil)
			rep, err := svc.Validate(ctx, corpus.NewReaderSource("clean.json", strings.NewReader(string(b))))

			Convey("Then it should pass", func() {
				So(err, ShouldBeNil)
				So(rep.Checked, ShouldEqual, 50)
				So(rep.OK, ShouldEqual, 50)
				So(rep.Passed(), ShouldBeTrue)
				So(svc.Stats().Checked, ShouldEqual, int64(50))
			})
		})

		Convey("When the source cannot start", func() {
			_, err := svc.Validate(ctx, failingSource{})

			Convey("Then the error should surface", func() {
				So(errors.Is(err, corpus.ErrOpenCorpus), ShouldBeTrue)
			})
		})

		Convey("When the caller's context is already cancelled", func() {
			done, stop := context.WithCancel(ctx)
			stop()
			_, err := svc.Validate(done, corpus.NewReaderSource("x", strings.NewReader(jsonl(playBall()))))

			Convey("Then Validate should return the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestServiceStopOnFirstFailure(t *testing.T) {
	Convey("Given a service that stops at the first failure", t, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		svc := service.New(
			service.WithWorkerCount(1),
			service.WithQueueSize(1),
			service.WithStopOnFirstFailure(true),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		records := []model.RawEvent{broken()}
		for i := 0; i < 200; i++ {
			records = append(records, playBall())
		}

		Convey("When the corpus starts with a failure", func() {
			rep, err := svc.Validate(ctx, corpus.NewReaderSource("stop.jsonl", strings.NewReader(jsonl(records...))))

			Convey("Then the run should end early", func() {
				So(err, ShouldBeNil)
				So(rep.Stopped, ShouldBeTrue)
				So(rep.DecodeErrors, ShouldEqual, 1)
				So(rep.Checked, ShouldBeLessThan, len(records))
			})
		})
	})
}

func TestServiceCustomRegistry(t *testing.T) {
	Convey("Given a service whose registry cannot rebuild a record", t, func() {
		ctx := context.Background()
		reg := codec.NewRegistry()
		reg.Register(model.TypeWeatherChange, func(c *codec.Cursor) (fed.Event, error) {
			return fed.PolarityShift{Envelope: c.Envelope()}, nil
		})
		svc := service.New(service.WithWorkerCount(1), service.WithRegistry(reg))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When validating a record of that type", func() {
			rec := model.RawEvent{ID: uuid.New(), Type: model.TypeWeatherChange}
			rep, err := svc.Validate(ctx, corpus.NewReaderSource("x", strings.NewReader(jsonl(rec))))

			Convey("Then it should be a mismatch with a diff", func() {
				So(err, ShouldBeNil)
				So(rep.Mismatches, ShouldEqual, 1)
				So(rep.Failures[0].Status, ShouldEqual, roundtrip.StatusMismatch)
				So(rep.Failures[0].Diff, ShouldNotBeEmpty)
			})
		})
	})
}

func TestServicePersistentStore(t *testing.T) {
	Convey("Given a service with a store on disk", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "outcomes.sqlite")
		svc := service.New(service.WithWorkerCount(2), service.WithStorePath(path))
		So(svc.Start(ctx), ShouldBeNil)

		_, err := svc.Validate(ctx, corpus.NewReaderSource("x", strings.NewReader(jsonl(playBall(), broken()))))
		So(err, ShouldBeNil)
		svc.Stop()

		Convey("When a new service opens the same store", func() {
			next := service.New(service.WithStorePath(path))
			So(next.Start(ctx), ShouldBeNil)
			defer next.Stop()

			Convey("Then earlier outcomes should still be listed", func() {
				failures, err := next.Failures(ctx, 10)
				So(err, ShouldBeNil)
				So(failures, ShouldHaveLength, 1)
				sum, err := next.Summary(ctx)
				So(err, ShouldBeNil)
				So(sum, ShouldHaveLength, 1)
				So(sum[0].Total, ShouldEqual, 2)
			})
		})
	})
}
