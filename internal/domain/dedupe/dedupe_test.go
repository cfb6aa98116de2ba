package dedupe_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	dedupe "github.com/okian/feedcodec/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(n int) []uuid.UUID {
	out := make([]uuid.UUID, n)
	for i := range out {
		out[i] = uuid.New()
	}
	return out
}

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		ctx := context.Background()

		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("Then it should be empty", func() {
				So(d, ShouldNotBeNil)
				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording records", func() {
			d := dedupe.NewInMemoryDeduper()
			id := uuid.New()

			Convey("And the record is new", func() {
				seen := d.SeenAndRecord(ctx, id)

				Convey("Then it should return false and record it", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the record was already seen", func() {
				d.SeenAndRecord(ctx, id)
				seen := d.SeenAndRecord(ctx, id)

				Convey("Then it should return true", func() {
					So(seen, ShouldBeTrue)
					So(d.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the record is unrecorded", func() {
				d.SeenAndRecord(ctx, id)
				d.Unrecord(ctx, id)
				d.Unrecord(ctx, uuid.New())

				Convey("Then it should be accepted again", func() {
					So(d.Size(), ShouldEqual, 0)
					So(d.SeenAndRecord(ctx, id), ShouldBeFalse)
				})
			})
		})

		Convey("When using bounded mode with eviction", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))
			batch := ids(3)
			for _, id := range batch {
				d.SeenAndRecord(ctx, id)
			}

			Convey("And the oldest record is seen again before a new one arrives", func() {
				So(d.SeenAndRecord(ctx, batch[0]), ShouldBeTrue)
				d.SeenAndRecord(ctx, uuid.New())

				Convey("Then the least recently seen record should be evicted", func() {
					So(d.Size(), ShouldEqual, 3)
					So(d.SeenAndRecord(ctx, batch[0]), ShouldBeTrue)
					So(d.SeenAndRecord(ctx, batch[1]), ShouldBeFalse)
				})
			})
		})

		Convey("When using unbounded mode", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))
			for _, id := range ids(1000) {
				d.SeenAndRecord(ctx, id)
			}

			Convey("Then nothing should be evicted", func() {
				So(d.Size(), ShouldEqual, 1000)
			})
		})

		Convey("When using negative max size", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(-1))
			id := uuid.New()

			Convey("Then it should behave as unbounded", func() {
				So(d.SeenAndRecord(ctx, id), ShouldBeFalse)
				So(d.SeenAndRecord(ctx, id), ShouldBeTrue)
				d.Unrecord(ctx, id)
				So(d.Size(), ShouldEqual, 0)
			})
		})
	})
}

func TestDedupeConcurrency(t *testing.T) {
	Convey("Given a deduper with concurrent access", t, func() {
		ctx := context.Background()
		modes := []struct {
			name string
			d    dedupe.Deduper
		}{
			{"bounded", dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(10_000))},
			{"unbounded", dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))},
		}

		for _, mode := range modes {
			d := mode.d
			Convey("When goroutines race on the same ids in "+mode.name+" mode", func() {
				batch := ids(200)
				var (
					wg    sync.WaitGroup
					mu    sync.Mutex
					fresh int
				)
				for g := 0; g < 8; g++ {
					wg.Add(1)
					go func() {
						defer wg.Done()
						for _, id := range batch {
							if !d.SeenAndRecord(ctx, id) {
								mu.Lock()
								fresh++
								mu.Unlock()
							}
						}
					}()
				}
				wg.Wait()

				Convey("Then each id should be new exactly once", func() {
					So(fresh, ShouldEqual, len(batch))
					So(d.Size(), ShouldEqual, len(batch))
				})
			})
		}
	})
}
