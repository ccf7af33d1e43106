// Package i18n provides the localized text catalogues for the game.
// Catalogues are gettext .po files embedded in the binary; lookups use
// stable keys such as STATUS_DARK or MENU_START.
package i18n

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/lumen/internal/puzzle"
)

// DefaultLanguage is used when a requested locale has no catalogue.
const DefaultLanguage = "en"

//go:embed locales/*.po
var localeFS embed.FS

// Catalog resolves message keys for one language, falling back to English
// for keys the language does not translate.
type Catalog struct {
	lang     string
	po       *gotext.Po
	fallback *gotext.Po
}

// New returns the catalogue for lang ("de", "de_DE", "de-AT" all select
// German). Unknown languages get the English catalogue.
func New(lang string) *Catalog {
	fallback := loadPo(DefaultLanguage)

	code := normalize(lang)
	if code == DefaultLanguage {
		return &Catalog{lang: DefaultLanguage, po: fallback}
	}
	po := loadPo(code)
	if po == nil {
		return &Catalog{lang: DefaultLanguage, po: fallback}
	}
	return &Catalog{lang: code, po: po, fallback: fallback}
}

// Languages lists the embedded locales.
func Languages() []string {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return []string{DefaultLanguage}
	}
	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".po"); ok {
			langs = append(langs, name)
		}
	}
	sort.Strings(langs)
	return langs
}

// Lang returns the language the catalogue serves.
func (c *Catalog) Lang() string {
	return c.lang
}

// Get returns the text for key formatted with vars. Keys missing from every
// catalogue are returned as-is.
func (c *Catalog) Get(key string, vars ...any) string {
	text, ok := lookup(c.po, key)
	if !ok {
		text, ok = lookup(c.fallback, key)
	}
	if !ok {
		text = key
	}
	if len(vars) > 0 {
		return fmt.Sprintf(text, vars...)
	}
	return text
}

// Status returns the localized status line. Silent statuses yield "".
func (c *Catalog) Status(s puzzle.Status) string {
	key := s.Key()
	if key == "" {
		return ""
	}
	if text := c.Get(key); text != key {
		return text
	}
	return s.Message()
}

func lookup(po *gotext.Po, key string) (string, bool) {
	if po == nil {
		return "", false
	}
	text := po.Get(key)
	if text == "" || text == key {
		return "", false
	}
	return text, true
}

func loadPo(lang string) *gotext.Po {
	data, err := localeFS.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// normalize reduces locale strings like "de_DE.UTF-8" to "de".
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}
