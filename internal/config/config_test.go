package config_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/okian/feedcodec/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.QueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 100_000)
			convey.So(cfg.StorePath, convey.ShouldBeEmpty)
			convey.So(cfg.StopOnFirstFailure, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one bad field", t, func() {
		cases := []func(*config.Config){
			func(c *config.Config) { c.WorkerCount = 0 },
			func(c *config.Config) { c.QueueSize = -1 },
			func(c *config.Config) { c.DedupeSize = 0 },
			func(c *config.Config) { c.LogFormat = "xml" },
			func(c *config.Config) { c.LogLevel = "loud" },
		}

		convey.Convey("Then each should fail with ErrInvalidConfig", func() {
			for _, mutate := range cases {
				cfg := config.New()
				mutate(cfg)
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})
	})
}
