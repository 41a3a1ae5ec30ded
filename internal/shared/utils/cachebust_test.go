package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheBust(t *testing.T) {
	plain := CacheBust("https://img.example.com/rice.jpg")
	assert.True(t, strings.HasPrefix(plain, "https://img.example.com/rice.jpg?t="))

	query := CacheBust("https://img.example.com/rice.jpg?w=300")
	assert.True(t, strings.HasPrefix(query, "https://img.example.com/rice.jpg?w=300&t="))

	// An existing token is not stripped; the new one is appended after it.
	twice := CacheBust(plain)
	assert.Equal(t, 2, strings.Count(twice, "t="))
}

func TestEnsureCacheBust(t *testing.T) {
	busted := EnsureCacheBust("https://img.example.com/rice.jpg")
	assert.Contains(t, busted, "?t=")

	// Already carries a token: unchanged.
	assert.Equal(t, busted, EnsureCacheBust(busted))

	// Empty input stays empty.
	assert.Equal(t, "", EnsureCacheBust(""))

	// The detection is a plain substring check, so any "t=" parameter
	// counts as a token.
	withParam := "https://img.example.com/rice.jpg?format=webp"
	assert.Equal(t, withParam, EnsureCacheBust(withParam))
}
