package logger_test

import (
	"context"
	"testing"

	"github.com/okian/versus/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When logging at each level", func() {
			log := logger.Get()
			ctx := context.Background()

			So(func() {
				log.Debug(ctx, "debug message", logger.String("k", "v"))
				log.Info(ctx, "info message", logger.Int("n", 1))
				log.Warn(ctx, "warn message", logger.Float64("f", 1.5))
				log.Error(ctx, "error message", logger.Any("x", struct{}{}))
			}, ShouldNotPanic)
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("fetcher")
			So(named, ShouldNotBeNil)
			So(func() {
				named.Info(context.Background(), "named message")
			}, ShouldNotPanic)
		})

		Convey("When setting the level from a string", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
