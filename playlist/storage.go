package playlist

import (
	"github.com/metafates/gache"
	"github.com/ytplay/ytplay/filesystem"
)

// Storage loads and saves the whole name to URL mapping.
type Storage interface {
	Load() (map[string]string, error)
	Save(map[string]string) error
}

type fileStorage struct {
	cache *gache.Cache[map[string]string]
}

// NewFileStorage stores the playlist as a JSON object at path.
func NewFileStorage(path string) Storage {
	return &fileStorage{
		cache: gache.New[map[string]string](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (f *fileStorage) Load() (map[string]string, error) {
	entries, _, err := f.cache.Get()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return entries, nil
}

func (f *fileStorage) Save(entries map[string]string) error {
	return f.cache.Set(entries)
}
