// Package playlist keeps the sorted name to URL mapping the player works from.
package playlist

import (
	"regexp"
	"strings"

	"github.com/ytplay/ytplay/constant"
)

// Track is an immutable playlist entry.
type Track struct {
	Name string `json:"name" jsonschema:"description=Unique display name"`
	URL  string `json:"url" jsonschema:"description=Source video page"`
}

var sourceURL = regexp.MustCompile(constant.SourceURLPattern)

// IsSourceURL reports whether u points at a supported video page.
func IsSourceURL(u string) bool {
	return sourceURL.MatchString(strings.TrimSpace(u))
}

func validate(name, url string, maxName int) error {
	switch {
	case name == "":
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	case maxName > 0 && len([]rune(name)) > maxName:
		return &ValidationError{Field: "name", Reason: "is too long"}
	case url == "":
		return &ValidationError{Field: "url", Reason: "must not be empty"}
	case !sourceURL.MatchString(url):
		return &ValidationError{Field: "url", Reason: "is not a supported video link"}
	}
	return nil
}
