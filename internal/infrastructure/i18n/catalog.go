// Package i18n resolves localization keys against embedded YAML catalogs.
package i18n

import (
	"gopkg.in/yaml.v3"

	"github.com/aido-sh/aido/assets"
	"github.com/aido-sh/aido/internal/ports"
)

const fallbackLanguage = "en"

// Catalog implements ports.Translator. Lookups fall back to the English
// catalog and finally to the key itself, so a missing key can never fail
// the flow.
type Catalog struct {
	strings  map[string]string
	fallback map[string]string
}

// Load builds the catalog for a language. Unknown languages silently get
// the fallback catalog.
func Load(language string) *Catalog {
	fallback := parseLocale(fallbackLanguage)
	strings := fallback
	if language != "" && language != fallbackLanguage {
		if parsed := parseLocale(language); parsed != nil {
			strings = parsed
		}
	}
	return &Catalog{strings: strings, fallback: fallback}
}

// Translate implements ports.Translator.
func (c *Catalog) Translate(key string) string {
	if value, ok := c.strings[key]; ok {
		return value
	}
	if value, ok := c.fallback[key]; ok {
		return value
	}
	return key
}

func parseLocale(language string) map[string]string {
	raw, err := assets.Locale(language)
	if err != nil {
		return nil
	}
	parsed := map[string]string{}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil
	}
	return parsed
}

var _ ports.Translator = (*Catalog)(nil)
