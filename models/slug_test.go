package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "My New Project!", "my-new-project"},
		{"already a slug", "hillside-residence", "hillside-residence"},
		{"whitespace runs collapse", "  Coastal   Retreat  ", "coastal-retreat"},
		{"punctuation stripped", "Office & Studio: Phase #2", "office-studio-phase-2"},
		{"unicode stripped", "Café São Paulo", "caf-so-paulo"},
		{"hyphens preserved", "Mixed-Use Tower", "mixed-use-tower"},
		{"leading and trailing hyphens trimmed", "--Edge Case--", "edge-case"},
		{"empty input", "", ""},
		{"only punctuation", "???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	title := "Riverside Pavilion 2024"
	assert.Equal(t, Slugify(title), Slugify(title))
}

func TestSlugifyCharset(t *testing.T) {
	slug := Slugify("A wild Input! With\t tabs and\nnewlines -- and symbols @#$")
	for _, r := range slug {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "unexpected rune %q in slug %q", r, slug)
	}
}
