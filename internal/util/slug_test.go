package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Science Fiction", "science-fiction"},
		{"sci_fi", "sci-fi"},
		{"SCI-FI", "sci-fi"},
		{"  multi   word ", "multi-word"},
		{"--leading--", "leading"},
		{"Thriller!", "thriller"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
