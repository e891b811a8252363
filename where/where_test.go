package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytplay/ytplay/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Directory functions create what they return", t, func() {
		for name, dir := range map[string]func() string{
			"Config": Config,
			"Cache":  Cache,
			"Logs":   Logs,
			"Temp":   Temp,
		} {
			Convey(name, func() {
				path := dir()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}
	})

	Convey("Data files live in their directories", t, func() {
		So(filepath.Dir(Playlist()), ShouldEqual, Config())
		So(filepath.Dir(MetadataCache()), ShouldEqual, Cache())
	})

	Convey("The config directory can be overridden", t, func() {
		t.Setenv(EnvConfigPath, "/custom/ytplay")
		So(Config(), ShouldEqual, "/custom/ytplay")
		So(Playlist(), ShouldEqual, filepath.Join("/custom/ytplay", "playlist.json"))
	})
}
