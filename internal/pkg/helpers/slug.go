package helpers

import (
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenCollapse = regexp.MustCompile(`-{2,}`)
)

// IsValidSlug reports whether s is a well-formed URL slug: lowercase
// alphanumerics separated by single hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify derives a slug from free text. It does not guarantee
// uniqueness; that is the database's job.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = hyphenCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
