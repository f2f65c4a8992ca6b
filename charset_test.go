package linestruct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linestruct/linestruct"
)

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"plain text", "hello world"},
		{"field delimiter", "a¦b"},
		{"object brackets", "‹wrapped›"},
		{"array brackets", "«wrapped»"},
		{"enum pipe", "a|b"},
		{"escape character itself", "a⁊b"},
		{"all specials at once", "¦‹›«»|⁊"},
		{"trailing lone escape", "trailing⁊"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, linestruct.Unescape(linestruct.Escape(tt.in)))
		})
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "Special⁊¦Characters", linestruct.Escape("Special¦Characters"))
	assert.Equal(t, "a⁊|b", linestruct.Escape("a|b"))
	assert.Equal(t, "no specials here", linestruct.Escape("no specials here"))
}

func TestUnescapeTrailingEscape(t *testing.T) {
	assert.Equal(t, "abc⁊", linestruct.Unescape("abc⁊"))
}
