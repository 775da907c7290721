package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "abc123", nil},
		{"valid with symbols", "p4ssword!", nil},
		{"too short", "a1b2c", ErrPasswordTooShort},
		{"no digit", "abcdef", ErrPasswordNeedsDigit},
		{"no lowercase", "ABC123", ErrPasswordNeedsLower},
		{"digits only", "123456", ErrPasswordNeedsLower},
		{"uppercase not required", "secret7", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
