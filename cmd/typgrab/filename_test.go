package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain title", "The Art of Doing Science", "the-art-of-doing-science.typ"},
		{"punctuation stripped", "What's Next? A Look Ahead!", "whats-next-a-look-ahead.typ"},
		{"unicode transliterated", "Über die Zukunft", "uber-die-zukunft.typ"},
		{"empty title falls back", "", "article.typ"},
		{"symbols only falls back", "???", "article.typ"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, OutputFilename(tt.title))
		})
	}
}
