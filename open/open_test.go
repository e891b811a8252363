package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given stored source links", t, func() {
		Convey("A bare host gets https", func() {
			link, err := normalize("youtu.be/abc")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, "https://youtu.be/abc")
		})

		Convey("Full links are kept", func() {
			link, err := normalize(" https://www.youtube.com/watch?v=abc ")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, "https://www.youtube.com/watch?v=abc")
		})

		Convey("Other schemes and flags are refused", func() {
			for _, bad := range []string{"", "-x", "file:///etc/passwd", "javascript://x"} {
				_, err := normalize(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
