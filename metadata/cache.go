// Package metadata memoizes stream resolution per source URL and keeps the results on disk.
package metadata

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/log"
	"github.com/ytplay/ytplay/resolve"
)

// Entry is one resolved source URL.
type Entry struct {
	SourceURL string  `json:"source_url"`
	StreamURL string  `json:"stream_url"`
	Title     string  `json:"title"`
	Duration  float64 `json:"duration,omitempty"`
}

// DurationHint returns the duration reported at resolution time, if any.
func (e Entry) DurationHint() mo.Option[time.Duration] {
	if e.Duration <= 0 {
		return mo.None[time.Duration]()
	}
	return mo.Some(time.Duration(e.Duration * float64(time.Second)))
}

// PersistError is returned alongside a valid entry when the cache file could not be written.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return "save metadata cache: " + e.Err.Error()
}

func (e *PersistError) Unwrap() error { return e.Err }

// Cache is a read-through cache in front of a resolve.Resolver.
// Entries never expire; failures are never stored.
type Cache struct {
	resolver resolve.Resolver
	storage  Storage

	mu      sync.RWMutex
	entries map[string]Entry

	// writeMu serializes durable writes; each write is a full snapshot.
	writeMu sync.Mutex
}

// New loads previously resolved entries from storage.
func New(resolver resolve.Resolver, storage Storage) *Cache {
	entries, err := storage.Load()
	if err != nil {
		log.Warnf("metadata cache unreadable, starting empty: %s", err)
	}
	if entries == nil {
		entries = make(map[string]Entry)
	}

	return &Cache{
		resolver: resolver,
		storage:  storage,
		entries:  entries,
	}
}

// Lookup returns the cached entry for sourceURL without resolving.
func (c *Cache) Lookup(sourceURL string) mo.Option[Entry] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[sourceURL]
	if !ok {
		return mo.None[Entry]()
	}
	return mo.Some(entry)
}

// Resolve returns the cached entry or resolves, stores and persists a new one.
// A *resolve.ResolutionError is returned when resolution fails.
// A *PersistError comes back together with a usable entry.
func (c *Cache) Resolve(ctx context.Context, sourceURL string) (Entry, error) {
	if entry, ok := c.Lookup(sourceURL).Get(); ok {
		log.Debugf("metadata cache hit for %s", sourceURL)
		return entry, nil
	}

	result, err := c.resolver.Resolve(ctx, sourceURL)
	if err != nil {
		var resolution *resolve.ResolutionError
		if !errors.As(err, &resolution) {
			err = &resolve.ResolutionError{URL: sourceURL, Err: err}
		}
		return Entry{}, err
	}

	entry := Entry{
		SourceURL: sourceURL,
		StreamURL: result.StreamURL,
		Title:     result.Title,
		Duration:  result.Duration.OrEmpty().Seconds(),
	}

	c.mu.Lock()
	c.entries[sourceURL] = entry
	c.mu.Unlock()

	if err := c.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

func (c *Cache) persist() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.RLock()
	snapshot := lo.Assign(c.entries)
	c.mu.RUnlock()

	if err := c.storage.Save(snapshot); err != nil {
		log.Errorf("save metadata cache: %s", err)
		return &PersistError{Err: err}
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every entry and persists the empty cache.
func (c *Cache) Clear() error {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	return c.persist()
}
