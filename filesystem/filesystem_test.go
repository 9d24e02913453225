package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Reset(SetOsFs)

		Convey("It defaults to the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be kept in memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			So(API().WriteFile("/script.sll", []byte("push 1\n"), 0644), ShouldBeNil)
			data, err := API().ReadFile("/script.sll")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "push 1\n")
		})

		Convey("Use swaps in any afero backend", func() {
			mem := afero.NewMemMapFs()
			So(afero.WriteFile(mem, "/seeded", []byte("x"), 0644), ShouldBeNil)

			Use(afero.NewReadOnlyFs(mem))
			So(API().Name(), ShouldEqual, "ReadOnlyFilter")

			exists, err := API().Exists("/seeded")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
			So(API().WriteFile("/other", []byte("y"), 0644), ShouldNotBeNil)
		})
	})
}
