// Package isbn validates, converts, hyphenates, and decomposes
// International Standard Book Numbers (ISBN-10 and ISBN-13).
//
// All operations are pure functions of their input and the static
// registration range table in pkg/rangedata.
package isbn

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidISBN is returned by every fallible operation in this package,
// whether the cause is a bad length, a wrong check digit, an unknown
// registration group, or an unresolvable registrant range.
var ErrInvalidISBN = errors.New("invalid isbn")

const (
	isbn10Length = 10
	isbn13Length = 13

	// hyphenatedLength is the length of a fully hyphenated ISBN-13
	// display string (13 digits plus 4 hyphens).
	hyphenatedLength = 17

	// gs1Bookland is the GS1 prefix shared by every ISBN-10; it is the
	// only prefix convertible back to a 10-digit form.
	gs1Bookland = "978"
)

// Normalize strips every character except ASCII digits and the uppercase
// letter X, which is only meaningful as an ISBN-10 check digit. Lowercase
// x is dropped, not folded, so a lowercase check digit fails validation.
// Normalize never errors; input with no significant characters yields the
// empty string, which fails downstream length checks.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == 'X' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
