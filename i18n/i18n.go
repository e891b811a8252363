// Package i18n translates the player's user facing strings.
//
// Messages are looked up by their English text. Languages are matched with
// golang.org/x/text/language so "pl-PL" or "pl_PL" select Polish.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var (
	supported = []language.Tag{language.English, language.Polish}
	matcher   = language.NewMatcher(supported)
	messages  = catalog.NewBuilder(catalog.Fallback(language.English))
)

func init() {
	for _, e := range entries {
		_ = messages.SetString(language.English, e.en, e.en)
		_ = messages.SetString(language.Polish, e.en, e.pl)
	}
}

// Languages returns the base codes accepted by ui.language.
func Languages() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		base, _ := tag.Base()
		codes[i] = base.String()
	}
	return codes
}

// Match returns the supported language closest to name, English when none is.
func Match(name string) language.Tag {
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	if name == "" {
		return language.English
	}
	_, index := language.MatchStrings(matcher, name)
	return supported[index]
}

// Translator renders messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the language closest to name.
func New(name string) *Translator {
	tag := Match(name)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Language returns the base code of the selected language.
func (t *Translator) Language() string {
	base, _ := t.tag.Base()
	return base.String()
}

// T formats the message registered under key. Unknown keys are used as the format.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
