package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"valid", "johndoe1", nil},
		{"minimum length", "abcdefg", nil},
		{"maximum length", "abcdefghijklmnopqrst", nil},
		{"too short", "abc", ErrUsernameLength},
		{"too long", "abcdefghijklmnopqrstu", ErrUsernameLength},
		{"empty", "", ErrUsernameLength},
		{"contains space", "john doe", ErrUsernameSpace},
		{"contains tab", "john\tdoe", ErrUsernameSpace},
		{"uppercase", "JohnDoe1", ErrUsernameCase},
		{"punctuation", "john_doe", ErrUsernameCharset},
		{"non-ascii lowercase", "jöhndoe1", ErrUsernameCharset},
		{"length counted in characters", "ééééééé", ErrUsernameCharset},
		{"six characters", "abcdef", ErrUsernameLength},
		{"twenty-one characters", "abcdefghijklmnopqrstu", ErrUsernameLength},
		{"has space", "has space", ErrUsernameSpace},
		{"mixed case", "HasUpper", ErrUsernameCase},
		{"bang", "bad!char", ErrUsernameCharset},
		{"ten lowercase alphanumerics", "validname1", nil},
		// length is checked before whitespace and case
		{"short with space and uppercase", "A b", ErrUsernameLength},
		// whitespace is checked before case
		{"space and uppercase", "John Doe1", ErrUsernameSpace},
		// case is checked before charset
		{"uppercase and punctuation", "John_Doe1", ErrUsernameCase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.candidate)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
