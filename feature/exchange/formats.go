package exchange

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Placeholder marks where the amount goes in a display template.
const Placeholder = "{}"

//go:embed formats.yaml
var formatsYAML []byte

// Formats maps a currency code to its display template, e.g. "EUR" -> "{}€".
type Formats map[string]string

var defaultFormats = sync.OnceValues(func() (Formats, error) {
	return ParseFormats(formatsYAML)
})

// DefaultFormats returns the embedded format table.
func DefaultFormats() (Formats, error) {
	return defaultFormats()
}

// ParseFormats decodes a YAML code-to-template table and validates every template.
func ParseFormats(data []byte) (Formats, error) {
	var formats Formats
	if err := yaml.Unmarshal(data, &formats); err != nil {
		return nil, fmt.Errorf("currency formats: %w", err)
	}
	for code, template := range formats {
		if err := validTemplate(template); err != nil {
			return nil, fmt.Errorf("currency formats: %s: %w", code, err)
		}
	}
	return formats, nil
}

// Template returns the display template for code.
func (f Formats) Template(code string) (string, bool) {
	t, ok := f[strings.ToUpper(code)]
	return t, ok
}

// Codes returns every code with a template, sorted.
func (f Formats) Codes() []string {
	codes := make([]string, 0, len(f))
	for code := range f {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func validTemplate(template string) error {
	if n := strings.Count(template, Placeholder); n != 1 {
		return fmt.Errorf("%w: %q has %d placeholders", ErrMalformedTemplate, template, n)
	}
	return nil
}
