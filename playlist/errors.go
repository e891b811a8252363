package playlist

import (
	"errors"
	"fmt"
)

// ErrInvalid matches every error that rejects an entry before any state is touched.
var ErrInvalid = errors.New("invalid playlist entry")

// ValidationError rejects a malformed name or URL.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// DuplicateNameError is returned when an entry with the same name exists.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("name %q is already on the playlist", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrInvalid }

// DuplicateURLError is returned when the URL is already stored under another name.
type DuplicateURLError struct {
	URL      string
	Existing string
}

func (e *DuplicateURLError) Error() string {
	return fmt.Sprintf("url is already on the playlist as %q", e.Existing)
}

func (e *DuplicateURLError) Is(target error) bool { return target == ErrInvalid }

// IndexOutOfRangeError is returned for a position outside the playlist.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is out of range (playlist has %d entries)", e.Index, e.Len)
}

// NotFoundError is returned when a name does not match any entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no entry named %q", e.Name)
}

// PersistError wraps a failed write of the playlist file.
// The in-memory playlist is left untouched when it is returned.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return "save playlist: " + e.Err.Error()
}

func (e *PersistError) Unwrap() error { return e.Err }
