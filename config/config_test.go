package config

import (
	"path/filepath"
	"testing"

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
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name, field := range Default {
				So(viper.Get(name), ShouldResemble, field.Value)
			}
		})

		Convey("Should read values from the config file", func() {
			path := filepath.Join(where.Config(), "sll.toml")
			err := filesystem.API().WriteFile(path, []byte("[render]\nlimit = 5\n"), 0o644)
			So(err, ShouldBeNil)

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.RenderLimit), ShouldEqual, 5)

			So(filesystem.API().Remove(path), ShouldBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("render.limit")
			So(result, ShouldEqual, "render_limit")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		field := Default[key.RenderLimit]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "SLL_RENDER_LIMIT")
		})

		Convey("typeName follows the default value", func() {
			So(field.typeName(), ShouldEqual, "int")
			b := Default[key.LogsJson]
			So(b.typeName(), ShouldEqual, "bool")
		})

		Convey("MarshalJSON includes the default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"key":"render.limit"`)
			So(string(data), ShouldContainSubstring, `"type":"int"`)
		})
	})
}
