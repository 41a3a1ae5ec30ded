package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Test Rice", "test-rice"},
		{"punctuation collapses", "HDPE (Grade A)!", "hdpe-grade-a"},
		{"consecutive separators", "Premium   Basmati -- Rice", "premium-basmati-rice"},
		{"leading and trailing junk", "  !Calcium Bromide?  ", "calcium-bromide"},
		{"digits survive", "Soybean Oil 25kg", "soybean-oil-25kg"},
		{"already a slug", "jasmine-rice", "jasmine-rice"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.input))
		})
	}
}

func TestGenerateCategorySlug(t *testing.T) {
	// Category slugs keep punctuation; only whitespace folds.
	assert.Equal(t, "bromine-salt", GenerateCategorySlug("Bromine Salt"))
	assert.Equal(t, "grains-&-pulses", GenerateCategorySlug("Grains & Pulses"))
	assert.Equal(t, "rice", GenerateCategorySlug("RICE"))
}
