package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/ytplay/ytplay/key"
)

func TestGet(t *testing.T) {
	Convey("Given the registered icons", t, func() {
		Convey("Every icon renders in every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Plain uses ASCII only", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Pause), ShouldEqual, "||")
			So(Get(Muted), ShouldEqual, "mute")
		})

		Convey("An unknown variant renders nothing", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Play), ShouldBeEmpty)
		})

		Convey("An unknown icon renders nothing", func() {
			viper.Set(key.IconsVariant, emoji)
			So(Get(Icon(-1)), ShouldBeEmpty)
		})
	})
}
