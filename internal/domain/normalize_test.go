package domain

import (
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercased", "Bank", "bank"},
		{"trimmed", "  dog  ", "dog"},
		{"spaces collapsed", "give  up", "give up"},
		{"diacritics preserved", "Café", "café"},
		{"hyphen preserved", "mother-in-law", "mother-in-law"},
		{"apostrophe preserved", "o'clock", "o'clock"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
