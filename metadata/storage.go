package metadata

import (
	"github.com/metafates/gache"
	"github.com/ytplay/ytplay/filesystem"
)

// Storage loads and saves the whole cache.
type Storage interface {
	Load() (map[string]Entry, error)
	Save(map[string]Entry) error
}

type fileStorage struct {
	cache *gache.Cache[map[string]Entry]
}

// NewFileStorage keeps the cache as JSON at path.
func NewFileStorage(path string) Storage {
	return &fileStorage{
		cache: gache.New[map[string]Entry](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *fileStorage) Load() (map[string]Entry, error) {
	entries, _, err := f.cache.Get()
	return entries, err
}

func (f *fileStorage) Save(entries map[string]Entry) error {
	return f.cache.Set(entries)
}
