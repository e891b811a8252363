package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/key"
)

func TestTheme(t *testing.T) {
	Convey("Given the ui.theme setting", t, func() {
		Convey("light selects the light palette", func() {
			viper.Set(key.UITheme, "Light")
			So(Current().Name, ShouldEqual, "light")
		})

		Convey("Unknown names fall back to dark", func() {
			viper.Set(key.UITheme, "solarized")
			So(Current(), ShouldResemble, Dark)
		})

		Convey("Every listed theme resolves to itself", func() {
			for _, name := range Themes() {
				So(ThemeByName(name).Name, ShouldEqual, name)
			}
		})
	})

	Convey("Rendering keeps the text", t, func() {
		So(Dark.Title("ytplay"), ShouldContainSubstring, "ytplay")
		So(Tag(nil, nil)("x"), ShouldContainSubstring, "x")
	})
}
