package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFontFamily(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "single family", value: "Inter", valid: true},
		{name: "fallback list", value: `"JetBrains Mono", monospace`, valid: true},
		{name: "empty", value: "  ", valid: false},
		{name: "newline", value: "Inter\nserif", valid: false},
		{name: "semicolon", value: "Inter; color: red", valid: false},
		{name: "closing brace", value: "x } body { display: none", valid: false},
		{name: "markup", value: "</style><script>", valid: false},
		{name: "backslash escape", value: `Inter\7d`, valid: false},
		{name: "too long", value: strings.Repeat("a", maxFontFamilyLen+1), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateFontFamily("font", tt.value)
			assert.Equal(t, tt.valid, len(errs) == 0, errs)
			assert.Equal(t, tt.valid, IsFontFamily(tt.value))
		})
	}
}
