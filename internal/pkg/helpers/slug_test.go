package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	valid := []string{"go", "golang-basics", "calculus-2", "a-b-c", "100-days"}
	for _, s := range valid {
		assert.True(t, IsValidSlug(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "Golang", "two words", "trailing-", "-leading", "double--hyphen", "über", "slash/inside"}
	for _, s := range invalid {
		assert.False(t, IsValidSlug(s), "expected %q to be invalid", s)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Goroutines and Channels": "goroutines-and-channels",
		"  padded  ":              "padded",
		"C++ for Gophers!":        "c-for-gophers",
		"already-a-slug":          "already-a-slug",
		"Calculus II — Limits":    "calculus-ii-limits",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in))
	}
}

func TestSlugifyOutputIsValid(t *testing.T) {
	for _, in := range []string{"Hello, World!", "Go 1.22 Release Notes", "  What's New?  "} {
		assert.True(t, IsValidSlug(Slugify(in)), "Slugify(%q) produced an invalid slug", in)
	}
}
