package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/sll-cli/sll/filesystem"
	"github.com/sll-cli/sll/key"
	"github.com/sll-cli/sll/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Log Setup", t, func() {
		Convey("Should be inert when writing is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
			So(func() { Info("ignored") }, ShouldNotPanic)
		})

		Convey("Should create a dated log file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			viper.Set(key.LogsJson, true)
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)

			Debugf("pushed %d", 1)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			data := lo.Must(filesystem.API().ReadFile(path))
			So(string(data), ShouldContainSubstring, "pushed 1")
		})
	})
}

func TestWith(t *testing.T) {
	Convey("With attaches fields", t, func() {
		entry := With(Fields{"op": "push", "len": 3})
		So(entry.Data["op"], ShouldEqual, "push")
		So(entry.Data["len"], ShouldEqual, 3)
	})
}
