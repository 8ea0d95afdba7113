package utils

import (
	"crypto/rand"
	"regexp"
)

// Ad slugs are exactly 21 lowercase-alphanumeric characters, a storage-layer
// constraint enforced at the route boundary. Client-supplied slugs that fail
// the pattern are replaced server-side.

const slugLength = 21

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var slugPattern = regexp.MustCompile(`^[a-z0-9]{21}$`)

// IsValidSlug reports whether s satisfies the slug constraint.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// GenerateSlug returns a fresh random slug.
func GenerateSlug() string {
	b := make([]byte, slugLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; a fixed fallback
		// would collide, so panic loudly instead.
		panic("slug: rand.Read: " + err.Error())
	}
	out := make([]byte, slugLength)
	for i, v := range b {
		out[i] = slugAlphabet[int(v)%len(slugAlphabet)]
	}
	return string(out)
}
