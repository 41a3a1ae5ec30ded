package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens  = regexp.MustCompile(`(^-|-$)`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// GenerateSlug derives a URL-safe product slug from a display name.
// "Test Rice" → "test-rice", "HDPE (Grade A)!" → "hdpe-grade-a"
func GenerateSlug(input string) string {
	// Step 1: Lowercase
	lower := strings.ToLower(input)

	// Step 2: Collapse every non-alphanumeric run to a single hyphen
	hyphenated := nonSlugChars.ReplaceAllString(lower, "-")

	// Step 3: Strip leading/trailing hyphens
	return edgeHyphens.ReplaceAllString(hyphenated, "")
}

// GenerateCategorySlug derives a category slug from its title.
// Categories only fold whitespace, punctuation is kept as-is.
// "Bromine Salt" → "bromine-salt"
func GenerateCategorySlug(title string) string {
	return whitespace.ReplaceAllString(strings.ToLower(title), "-")
}
