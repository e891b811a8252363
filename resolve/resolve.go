// Package resolve turns a video page URL into a playable audio stream.
package resolve

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"
)

// Result is what a successful resolution yields.
type Result struct {
	StreamURL string
	Title     string
	Duration  mo.Option[time.Duration]
}

// Resolver resolves a source URL. Implementations may block for seconds.
type Resolver interface {
	Resolve(ctx context.Context, sourceURL string) (Result, error)
}

// ResolutionError reports that a source URL could not be turned into a stream.
type ResolutionError struct {
	URL string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %s", e.URL, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Func adapts a plain function to Resolver.
type Func func(ctx context.Context, sourceURL string) (Result, error)

func (f Func) Resolve(ctx context.Context, sourceURL string) (Result, error) {
	return f(ctx, sourceURL)
}
