package sidebar

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a locale root of the site and its language.
type Locale struct {
	Root string
	Tag  language.Tag
}

// Name returns the language name in the language itself, e.g. "English".
func (l Locale) Name() string {
	return display.Self.Name(l.Tag)
}

// DefaultLocales are the site locales: Chinese at the root, English under /en/.
func DefaultLocales() []Locale {
	return []Locale{
		{Root: "/", Tag: language.Chinese},
		{Root: "/en/", Tag: language.English},
	}
}

// LocaleFor returns the locale whose root is the longest prefix of prefix.
func LocaleFor(locales []Locale, prefix string) (Locale, bool) {
	var (
		best  Locale
		found bool
	)
	for _, l := range locales {
		if !strings.HasPrefix(prefix, l.Root) {
			continue
		}
		if !found || len(l.Root) > len(best.Root) {
			best, found = l, true
		}
	}
	return best, found
}
