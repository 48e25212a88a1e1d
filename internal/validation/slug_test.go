package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name        string
		slug        string
		expectError bool
	}{
		{"Valid slug", "exploring-siquijor-by-motorcycle", false},
		{"Valid with digits", "top-5-routes", false},
		{"Too short", "ab", true},
		{"Uppercase rejected", "Exploring-Siquijor", true},
		{"Spaces rejected", "exploring siquijor", true},
		{"Leading hyphen", "-exploring", true},
		{"Trailing hyphen", "exploring-", true},
		{"Reserved route segment", "admin", true},
		{"Reserved route segment blog", "blog", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Exploring Siquijor by Motorcycle", "exploring-siquijor-by-motorcycle"},
		{"Scooter vs Underbone: Which Should You Rent?", "scooter-vs-underbone-which-should-you-rent"},
		{"  Rainy Season Riding  ", "rainy-season-riding"},
		{"Top 5 Routes!!!", "top-5-routes"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}
