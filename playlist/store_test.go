package playlist

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/ytplay/ytplay/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

type memoryStorage struct {
	entries map[string]string
	saves   int
	failing error
}

func (m *memoryStorage) Load() (map[string]string, error) {
	return lo.Assign(m.entries), nil
}

func (m *memoryStorage) Save(entries map[string]string) error {
	if m.failing != nil {
		return m.failing
	}
	m.saves++
	m.entries = lo.Assign(entries)
	return nil
}

type brokenStorage struct{}

func (brokenStorage) Load() (map[string]string, error)  { return nil, errors.New("unexpected EOF") }
func (brokenStorage) Save(map[string]string) error { return nil }

const (
	urlA = "https://www.youtube.com/watch?v=aaaaaaaaaaa"
	urlB = "https://youtu.be/bbbbbbbbbbb"
	urlC = "youtube.com/watch?v=ccccccccccc"
)

func names(s *Store) []string {
	return lo.Map(s.List(), func(t Track, _ int) string { return t.Name })
}

func TestAdd(t *testing.T) {
	Convey("Given a playlist with two entries", t, func() {
		storage := &memoryStorage{entries: map[string]string{"Mozart": urlA, "Bach": urlB}}
		store := Open(storage)
		So(names(store), ShouldResemble, []string{"Bach", "Mozart"})

		Convey("Adding a new entry places it in sorted order exactly once", func() {
			track, err := store.Add("  Chopin ", urlC)
			So(err, ShouldBeNil)
			So(track.Name, ShouldEqual, "Chopin")
			So(names(store), ShouldResemble, []string{"Bach", "Chopin", "Mozart"})
			So(storage.saves, ShouldEqual, 1)
			So(storage.entries["Chopin"], ShouldEqual, urlC)
		})

		Convey("Adding a duplicate name is rejected without mutation", func() {
			_, err := store.Add("Bach", urlC)
			var dup *DuplicateNameError
			So(errors.As(err, &dup), ShouldBeTrue)
			So(errors.Is(err, ErrInvalid), ShouldBeTrue)
			So(names(store), ShouldResemble, []string{"Bach", "Mozart"})
			So(storage.saves, ShouldEqual, 0)
		})

		Convey("Adding a duplicate URL names the existing entry", func() {
			_, err := store.Add("Johann", urlB)
			var dup *DuplicateURLError
			So(errors.As(err, &dup), ShouldBeTrue)
			So(dup.Existing, ShouldEqual, "Bach")
			So(store.Len(), ShouldEqual, 2)
		})

		Convey("Malformed input is a validation error", func() {
			for _, c := range []struct{ name, url string }{
				{"", urlC},
				{"Liszt", ""},
				{"Liszt", "https://vimeo.com/123"},
				{string(make([]rune, DefaultMaxNameLength+1)), urlC},
			} {
				_, err := store.Add(c.name, c.url)
				var invalid *ValidationError
				So(errors.As(err, &invalid), ShouldBeTrue)
			}
			So(store.Len(), ShouldEqual, 2)
		})

		Convey("A failed save surfaces and leaves the playlist unchanged", func() {
			storage.failing = errors.New("disk full")
			_, err := store.Add("Chopin", urlC)

			var persist *PersistError
			So(errors.As(err, &persist), ShouldBeTrue)
			So(names(store), ShouldResemble, []string{"Bach", "Mozart"})
		})
	})
}

func TestRemove(t *testing.T) {
	Convey("Given a playlist with three entries", t, func() {
		storage := &memoryStorage{entries: map[string]string{"a": urlA, "b": urlB, "c": urlC}}
		store := Open(storage)

		Convey("Removing a valid position shrinks it by one", func() {
			removed, err := store.Remove(1)
			So(err, ShouldBeNil)
			So(removed.Name, ShouldEqual, "b")
			So(names(store), ShouldResemble, []string{"a", "c"})
			So(storage.entries, ShouldNotContainKey, "b")
		})

		Convey("Removing past the end fails and changes nothing", func() {
			_, err := store.Remove(3)
			var out *IndexOutOfRangeError
			So(errors.As(err, &out), ShouldBeTrue)
			So(out.Len, ShouldEqual, 3)
			So(store.Len(), ShouldEqual, 3)
			So(storage.saves, ShouldEqual, 0)
		})

		Convey("Negative positions are out of range", func() {
			_, err := store.Remove(-1)
			So(err, ShouldHaveSameTypeAs, &IndexOutOfRangeError{})
		})

		Convey("Removing by name", func() {
			_, err := store.RemoveByName("c")
			So(err, ShouldBeNil)
			So(names(store), ShouldResemble, []string{"a", "b"})

			_, err = store.RemoveByName("zzz")
			So(err, ShouldHaveSameTypeAs, &NotFoundError{})
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Given a playlist", t, func() {
		store := Open(&memoryStorage{entries: map[string]string{"Nocturne": urlA, "Prelude": urlB}})

		Convey("Resolve returns the entry at a position", func() {
			track, err := store.Resolve(1)
			So(err, ShouldBeNil)
			So(track, ShouldResemble, Track{Name: "Prelude", URL: urlB})

			_, err = store.Resolve(2)
			So(err, ShouldHaveSameTypeAs, &IndexOutOfRangeError{})
		})

		Convey("List is a copy", func() {
			list := store.List()
			list[0].Name = "changed"
			So(names(store)[0], ShouldEqual, "Nocturne")
		})

		Convey("FindByURL", func() {
			So(store.FindByURL(urlB).MustGet().Name, ShouldEqual, "Prelude")
			So(store.FindByURL(urlC).IsPresent(), ShouldBeFalse)
		})

		Convey("IndexOf", func() {
			So(store.IndexOf("Prelude").MustGet(), ShouldEqual, 1)
			So(store.IndexOf("Etude").IsPresent(), ShouldBeFalse)
		})

		Convey("Search ranks fuzzy matches", func() {
			found := store.Search("prl")
			So(len(found), ShouldEqual, 1)
			So(found[0].Name, ShouldEqual, "Prelude")
			So(len(store.Search("")), ShouldEqual, 2)
		})
	})
}

func TestPersistence(t *testing.T) {
	Convey("Given a file backed playlist", t, func() {
		filesystem.SetMemMapFs()
		path := "/config/playlist.json"

		store := Open(NewFileStorage(path))
		So(store.Len(), ShouldEqual, 0)

		lo.Must(store.Add("Zeta", urlA))
		lo.Must(store.Add("Alpha", urlB))

		Convey("Reloading yields the same sorted mapping", func() {
			reloaded := Open(NewFileStorage(path))
			So(reloaded.List(), ShouldResemble, store.List())
		})

		Convey("A read-only filesystem surfaces the write failure", func() {
			filesystem.SetReadOnly()
			_, err := store.Add("Gamma", urlC)
			So(err, ShouldHaveSameTypeAs, &PersistError{})
			So(store.Len(), ShouldEqual, 2)
		})

		Reset(filesystem.SetMemMapFs)
	})

	Convey("An unreadable playlist starts empty", t, func() {
		store := Open(brokenStorage{})
		So(store.Len(), ShouldEqual, 0)
	})

	Convey("A corrupt file starts empty and is overwritten on the next add", t, func() {
		filesystem.SetMemMapFs()
		path := "/config/corrupt.json"
		lo.Must0(filesystem.API().WriteFile(path, []byte("{not json"), 0o644))

		store := Open(NewFileStorage(path))
		So(store.Len(), ShouldEqual, 0)

		lo.Must(store.Add("Alpha", urlA))
		So(Open(NewFileStorage(path)).Len(), ShouldEqual, 1)
	})
}
