package pkg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFileOperate(t *testing.T) {
	convey.Convey("stdio paths", t, func() {
		convey.So(IsStdio(""), convey.ShouldBeTrue)
		convey.So(IsStdio("-"), convey.ShouldBeTrue)
		convey.So(IsStdio("doc.acon"), convey.ShouldBeFalse)

		data, err := ReadInput("-", strings.NewReader("k v"))
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "k v")

		var out bytes.Buffer
		convey.So(WriteOutput("", &out, []byte("x")), convey.ShouldBeNil)
		convey.So(out.String(), convey.ShouldEqual, "x")
	})

	convey.Convey("files", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.acon")

		exist, err := CheckFileExist(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(exist, convey.ShouldBeFalse)

		_, err = ReadInput(path, nil)
		convey.So(err, convey.ShouldNotBeNil)

		convey.So(WriteOutput(path, nil, []byte("k v\n")), convey.ShouldBeNil)
		data, err := ReadInput(path, nil)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(data), convey.ShouldEqual, "k v\n")

		info, err := os.Stat(path)
		convey.So(err, convey.ShouldBeNil)
		convey.So(info.Size(), convey.ShouldEqual, 4)
	})
}
