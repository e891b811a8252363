package resolve

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/samber/mo"
	"github.com/ytplay/ytplay/log"
)

// printTemplate asks yt-dlp for one tab separated line per selected format.
// The title goes last since it is the only field that may contain tabs.
const printTemplate = "%(url)s\t%(duration)s\t%(title)s"

// YtDlp resolves through the yt-dlp executable.
type YtDlp struct {
	Format  string
	Timeout time.Duration
}

// NewYtDlp returns a resolver that selects streams with the given format selector.
func NewYtDlp(format string, timeout time.Duration) *YtDlp {
	return &YtDlp{Format: format, Timeout: timeout}
}

func (y *YtDlp) Resolve(ctx context.Context, sourceURL string) (Result, error) {
	if y.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.Timeout)
		defer cancel()
	}

	started := time.Now()
	res, err := ytdlp.New().
		Format(y.Format).
		Print(printTemplate).
		NoPlaylist().
		NoWarnings().
		IgnoreConfig().
		Run(ctx, "--skip-download", sourceURL)
	if err != nil {
		if res != nil && res.Stderr != "" {
			err = errors.New(firstLine(res.Stderr))
		}
		return Result{}, &ResolutionError{URL: sourceURL, Err: err}
	}

	result, err := parseOutput(res.Stdout)
	if err != nil {
		return Result{}, &ResolutionError{URL: sourceURL, Err: err}
	}

	log.WithFields(log.Fields{
		"url":     sourceURL,
		"title":   result.Title,
		"elapsed": time.Since(started).String(),
	}).Info("resolved stream")

	return result, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func parseOutput(stdout string) (Result, error) {
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 || parts[0] == "" || parts[0] == "NA" {
			continue
		}

		result := Result{
			StreamURL: parts[0],
			Duration:  parseDuration(parts[1]),
			Title:     strings.TrimSpace(parts[2]),
		}
		if result.Title == "NA" {
			result.Title = ""
		}
		return result, nil
	}
	return Result{}, errors.New("yt-dlp printed no stream url")
}

func parseDuration(raw string) mo.Option[time.Duration] {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || seconds <= 0 {
		return mo.None[time.Duration]()
	}
	return mo.Some(time.Duration(seconds * float64(time.Second)))
}
