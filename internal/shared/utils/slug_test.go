package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "My First Project", "my-first-project"},
		{"accented characters", "Año de Diseño", "ano-de-diseno"},
		{"special characters", "Hello, World! (v2)", "hello-world-v2"},
		{"consecutive spaces", "too   many   spaces", "too-many-spaces"},
		{"leading and trailing junk", "  --Edge Case--  ", "edge-case"},
		{"numbers kept", "Portfolio 2024", "portfolio-2024"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "nino", RemoveDiacritics("niño"))
	assert.Equal(t, "Sao Paulo", RemoveDiacritics("São Paulo"))
	assert.Equal(t, "unchanged", RemoveDiacritics("unchanged"))
}
