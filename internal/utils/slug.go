package utils

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

var slugDisallowed = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// NewSlug derives a URL-safe post identifier from title. A random two-digit
// number (10..99) is appended before sanitizing, which makes collisions
// unlikely but not impossible; uniqueness is not checked.
func NewSlug(title string) string {
	return slugify(title + strconv.Itoa(rand.IntN(90)+10))
}

// slugify replaces spaces with hyphens, drops every character outside
// [a-zA-Z0-9-] and lowercases the result.
func slugify(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = slugDisallowed.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
