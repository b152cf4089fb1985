package exchange

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormats(t *testing.T) {
	formats, err := DefaultFormats()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(formats), 150)
	for code, template := range formats {
		assert.Len(t, code, 3, "code %q", code)
		assert.Equal(t, strings.ToUpper(code), code)
		assert.Equal(t, 1, strings.Count(template, Placeholder), "template for %s", code)
	}

	usd, ok := formats.Template("usd")
	assert.True(t, ok)
	assert.Equal(t, "${}", usd)
}

func TestParseFormats_RejectsMalformedTemplate(t *testing.T) {
	_, err := ParseFormats([]byte("USD: \"${}\"\nEUR: \"{}{}€\"\n"))
	assert.ErrorIs(t, err, ErrMalformedTemplate)

	_, err = ParseFormats([]byte("JPY: \"¥\"\n"))
	assert.ErrorIs(t, err, ErrMalformedTemplate)
}

func TestFormats_Codes(t *testing.T) {
	f := Formats{"USD": "${}", "AUD": "A${}", "EUR": "{}€"}
	assert.Equal(t, []string{"AUD", "EUR", "USD"}, f.Codes())
}
