// Package assets embeds the default configuration, guardrail rules, and
// localization catalogs.
package assets

import (
	"embed"
	"fmt"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// DefaultGuardrailYAML contains the embedded default guardrail rules.
//
//go:embed defaults/guardrail.yaml
var DefaultGuardrailYAML []byte

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale returns the raw catalog for a language code.
func Locale(language string) ([]byte, error) {
	return localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", language))
}
