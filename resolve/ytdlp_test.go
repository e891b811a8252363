package resolve

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseOutput(t *testing.T) {
	Convey("Given yt-dlp output", t, func() {
		Convey("The first usable line wins", func() {
			out := "NA\tNA\tNA\nhttps://rr1.googlevideo.com/a\t213.0\tSome Song\nhttps://other\t1\tx\n"
			result, err := parseOutput(out)
			So(err, ShouldBeNil)
			So(result.StreamURL, ShouldEqual, "https://rr1.googlevideo.com/a")
			So(result.Title, ShouldEqual, "Some Song")
			So(result.Duration.MustGet(), ShouldEqual, 213*time.Second)
		})

		Convey("Live streams have no duration", func() {
			result, err := parseOutput("https://live/a\tNA\tRadio")
			So(err, ShouldBeNil)
			So(result.Duration.IsPresent(), ShouldBeFalse)
		})

		Convey("Tabs in the title stay in the title", func() {
			result, err := parseOutput("https://rr1.googlevideo.com/a\t95\tLive\tat the Hall\t2024")
			So(err, ShouldBeNil)
			So(result.Title, ShouldEqual, "Live\tat the Hall\t2024")
			So(result.Duration.MustGet(), ShouldEqual, 95*time.Second)
		})

		Convey("Empty output is an error", func() {
			_, err := parseOutput("\n")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFirstLine(t *testing.T) {
	Convey("firstLine keeps only the leading line", t, func() {
		So(firstLine("ERROR: Video unavailable\nmore"), ShouldEqual, "ERROR: Video unavailable")
		So(firstLine("  single  "), ShouldEqual, "single")
	})
}

func TestFunc(t *testing.T) {
	Convey("Func adapts closures and ResolutionError unwraps", t, func() {
		cause := errors.New("private video")
		r := Func(func(_ context.Context, u string) (Result, error) {
			return Result{}, &ResolutionError{URL: u, Err: cause}
		})

		_, err := r.Resolve(context.Background(), "https://youtu.be/x")
		So(errors.Is(err, cause), ShouldBeTrue)

		var resolution *ResolutionError
		So(errors.As(err, &resolution), ShouldBeTrue)
		So(resolution.URL, ShouldEqual, "https://youtu.be/x")
	})
}
