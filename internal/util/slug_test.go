package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	slug := GenerateSlug("My Quiz!")
	assert.Regexp(t, `^my-quiz-[a-z0-9]{8}$`, slug)
}

func TestGenerateSlugUnique(t *testing.T) {
	assert.NotEqual(t, GenerateSlug("Same Title"), GenerateSlug("Same Title"))
}

func TestGenerateSlugEmptyBase(t *testing.T) {
	assert.Regexp(t, `^quiz-[a-z0-9]{8}$`, GenerateSlug("!!!"))
	assert.Regexp(t, `^quiz-[a-z0-9]{8}$`, GenerateSlug("测验"))
}

func TestSlugBase(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Quiz!", "my-quiz"},
		{"  Go -- Basics  ", "go-basics"},
		{"Chapter 3: Maps & Slices", "chapter-3-maps-slices"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugBase(tt.title))
		})
	}
}

func TestSlugBaseTruncates(t *testing.T) {
	base := SlugBase(strings.Repeat("ab ", 60))
	assert.LessOrEqual(t, len(base), SlugBaseMaxLen)
	assert.False(t, strings.HasSuffix(base, "-"))
}
