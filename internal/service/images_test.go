package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImagePassesStoredURLThrough(t *testing.T) {
	url := "https://cdn.example.com/products/f232.jpg"
	assert.Equal(t, url, ResolveImage(&url))
}

func TestResolveImageFallsBackToPlaceholder(t *testing.T) {
	empty := ""
	blank := "   "
	assert.Equal(t, PlaceholderImage, ResolveImage(nil))
	assert.Equal(t, PlaceholderImage, ResolveImage(&empty))
	assert.Equal(t, PlaceholderImage, ResolveImage(&blank))
}

func TestResolveImageIsIdempotent(t *testing.T) {
	resolved := ResolveImage(nil)
	assert.Equal(t, resolved, ResolveImage(&resolved))
	assert.True(t, strings.HasPrefix(resolved, "data:image/svg+xml;base64,"))
}
