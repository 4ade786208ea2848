package lib

import (
	"regexp"

	"github.com/lithammer/shortuuid/v4"
)

// slugPattern matches the base57 shortuuid alphabet: no 0, O, 1, I or l, so
// slugs survive being read aloud or typed from a printed label.
var slugPattern = regexp.MustCompile(`^[2-9A-HJ-NP-Za-km-z]{22}$`)

// NewSlug returns a new public identifier for a product. 128 bits of
// randomness in a URL-safe alphabet; collisions are practically unreachable
// but the store still enforces uniqueness and the caller retries on
// ErrDuplicateSlug. Never call this for a product that already has a slug.
func NewSlug() string {
	return shortuuid.New()
}

// ValidSlug reports whether s looks like a slug we issued.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
