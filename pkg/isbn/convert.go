package isbn

import (
	"strings"

	"github.com/pkg/errors"
)

// To13 converts a valid ISBN-10 to its ISBN-13 form by prepending the 978
// GS1 prefix and recomputing the check digit.
func To13(raw string) (string, error) {
	if !Valid(raw) {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	normalized := Normalize(raw)
	if len(normalized) != isbn10Length {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	body := gs1Bookland + normalized[:9]
	check, err := CheckDigit13(body)
	if err != nil {
		return "", err
	}
	return body + check, nil
}

// To10 converts a valid 978-prefixed ISBN-13 to its ISBN-10 form by
// dropping the GS1 prefix and recomputing the check digit. ISBNs under
// the 979 prefix have no ISBN-10 equivalent and are rejected.
func To10(raw string) (string, error) {
	if !Valid(raw) {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	normalized := Normalize(raw)
	if len(normalized) != isbn13Length || !strings.HasPrefix(normalized, gs1Bookland) {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	body := normalized[3:12]
	check, err := CheckDigit10(body)
	if err != nil {
		return "", err
	}
	return body + check, nil
}

// canonical13 returns the normalized 13-digit form of any valid ISBN,
// promoting 10-digit inputs through To13.
func canonical13(raw string) (string, error) {
	if !Valid(raw) {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	normalized := Normalize(raw)
	if len(normalized) == isbn10Length {
		return To13(normalized)
	}
	return normalized, nil
}
