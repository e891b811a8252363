package i18n

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	Convey("Given a configured language", t, func() {
		Convey("Regional variants select their base language", func() {
			So(Match("pl_PL"), ShouldEqual, language.Polish)
			So(Match("en-GB"), ShouldEqual, language.English)
		})

		Convey("Unknown or empty names fall back to English", func() {
			So(Match("xx"), ShouldEqual, language.English)
			So(Match(""), ShouldEqual, language.English)
		})

		Convey("Languages lists base codes", func() {
			So(Languages(), ShouldResemble, []string{"en", "pl"})
		})
	})
}

func TestTranslator(t *testing.T) {
	Convey("Given a Polish translator", t, func() {
		tr := New("pl")
		So(tr.Language(), ShouldEqual, "pl")

		Convey("Registered messages are translated with arguments", func() {
			So(tr.T(Added, "Song"), ShouldEqual, "Dodano Song")
			So(tr.T(Volume, 40), ShouldEqual, "głośność 40%")
		})

		Convey("Unknown keys are used as the format", func() {
			So(tr.T("raw %d", 1), ShouldEqual, "raw 1")
		})
	})

	Convey("Given an English translator", t, func() {
		tr := New("en")
		So(tr.T(ConfirmRemove, "Song"), ShouldEqual, "Remove Song? (y/n)")
	})

	Convey("Every message has a Polish text", t, func() {
		for _, e := range entries {
			So(e.pl, ShouldNotBeEmpty)
		}
	})
}
