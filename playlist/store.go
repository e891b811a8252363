package playlist

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/log"
	"golang.org/x/exp/slices"
)

// DefaultMaxNameLength is used when no limit is configured.
const DefaultMaxNameLength = 100

// Store is the playlist. Every mutation is saved before it becomes visible.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	tracks  []Track
	maxName int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxNameLength limits entry names to n runes. Zero disables the limit.
func WithMaxNameLength(n int) Option {
	return func(s *Store) {
		s.maxName = n
	}
}

// Open loads the playlist from storage.
// A missing or unreadable file yields an empty playlist.
func Open(storage Storage, options ...Option) *Store {
	s := &Store{
		storage: storage,
		maxName: DefaultMaxNameLength,
	}
	for _, option := range options {
		option(s)
	}

	entries, err := storage.Load()
	if err != nil {
		log.Warnf("playlist unreadable, starting empty: %s", err)
		entries = nil
	}

	s.tracks = toTracks(entries)
	log.Infof("loaded %d playlist entries", len(s.tracks))
	return s
}

func toTracks(entries map[string]string) []Track {
	tracks := make([]Track, 0, len(entries))
	for name, url := range entries {
		tracks = append(tracks, Track{Name: name, URL: url})
	}
	sortTracks(tracks)
	return tracks
}

func sortTracks(tracks []Track) {
	slices.SortFunc(tracks, func(a, b Track) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func toEntries(tracks []Track) map[string]string {
	return lo.SliceToMap(tracks, func(t Track) (string, string) {
		return t.Name, t.URL
	})
}

// commit saves next and swaps it in only when the write succeeded.
func (s *Store) commit(next []Track) error {
	if err := s.storage.Save(toEntries(next)); err != nil {
		log.Errorf("save playlist: %s", err)
		return &PersistError{Err: err}
	}
	s.tracks = next
	return nil
}

// Add inserts a new entry. Name and URL are trimmed first.
func (s *Store) Add(name, url string) (Track, error) {
	name, url = strings.TrimSpace(name), strings.TrimSpace(url)
	if err := validate(name, url, s.maxName); err != nil {
		return Track{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tracks {
		if t.Name == name {
			return Track{}, &DuplicateNameError{Name: name}
		}
		if t.URL == url {
			return Track{}, &DuplicateURLError{URL: url, Existing: t.Name}
		}
	}

	track := Track{Name: name, URL: url}
	next := append(slices.Clone(s.tracks), track)
	sortTracks(next)

	if err := s.commit(next); err != nil {
		return Track{}, err
	}

	log.Infof("added %q to playlist", name)
	return track, nil
}

// Remove deletes the entry at position in sorted order.
func (s *Store) Remove(position int) (Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.tracks) {
		return Track{}, &IndexOutOfRangeError{Index: position, Len: len(s.tracks)}
	}

	removed := s.tracks[position]
	next := slices.Delete(slices.Clone(s.tracks), position, position+1)
	if err := s.commit(next); err != nil {
		return Track{}, err
	}

	log.Infof("removed %q from playlist", removed.Name)
	return removed, nil
}

// RemoveByName deletes the entry with the given name.
func (s *Store) RemoveByName(name string) (Track, error) {
	index, ok := s.IndexOf(name).Get()
	if !ok {
		return Track{}, &NotFoundError{Name: name}
	}
	return s.Remove(index)
}

// Resolve returns the entry at position.
func (s *Store) Resolve(position int) (Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if position < 0 || position >= len(s.tracks) {
		return Track{}, &IndexOutOfRangeError{Index: position, Len: len(s.tracks)}
	}
	return s.tracks[position], nil
}

// List returns a copy of all entries in sorted order.
func (s *Store) List() []Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tracks)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tracks)
}

// MaxNameLength is the longest name Add accepts.
func (s *Store) MaxNameLength() int {
	return s.maxName
}

// FindByURL returns the entry stored under url, if any.
func (s *Store) FindByURL(url string) mo.Option[Track] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url = strings.TrimSpace(url)
	track, ok := lo.Find(s.tracks, func(t Track) bool {
		return t.URL == url
	})
	if !ok {
		return mo.None[Track]()
	}
	return mo.Some(track)
}

// IndexOf returns the sorted position of the entry called name.
func (s *Store) IndexOf(name string) mo.Option[int] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, index, ok := lo.FindIndexOf(s.tracks, func(t Track) bool {
		return t.Name == name
	})
	if !ok {
		return mo.None[int]()
	}
	return mo.Some(index)
}

// Search returns entries whose name fuzzily matches query, best match first.
func (s *Store) Search(query string) []Track {
	tracks := s.List()
	if strings.TrimSpace(query) == "" {
		return tracks
	}

	names := lo.Map(tracks, func(t Track, _ int) string {
		return t.Name
	})

	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) Track {
		return tracks[r.OriginalIndex]
	})
}
