package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minUsernameLength = 7
	maxUsernameLength = 20
)

var usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateUsername checks candidate against the username rules in order
// and returns the first violation:
//  1. length between 7 and 20 characters
//  2. no whitespace
//  3. lowercase only
//  4. ASCII letters and digits only
func ValidateUsername(candidate string) error {
	if n := utf8.RuneCountInString(candidate); n < minUsernameLength || n > maxUsernameLength {
		return ErrUsernameLength
	}
	if strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return ErrUsernameSpace
	}
	if candidate != strings.ToLower(candidate) {
		return ErrUsernameCase
	}
	if !usernameCharset.MatchString(candidate) {
		return ErrUsernameCharset
	}
	return nil
}
