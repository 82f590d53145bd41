package isbn

import (
	"strconv"

	"github.com/pkg/errors"
)

// CheckDigit10 computes the ISBN-10 check digit for the first nine digits
// of the normalized input. The normalized length may be anywhere in
// [8, 10], so a 9-digit body missing only its check digit is accepted.
// The result is a single decimal digit or "X" (for a remainder of 10).
func CheckDigit10(raw string) (string, error) {
	normalized := Normalize(raw)
	if len(normalized) < 8 || len(normalized) > isbn10Length {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	body := normalized
	if len(body) > 9 {
		body = body[:9]
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[i] - '0')
		if d < 0 || d > 9 {
			// X anywhere in the body is not a digit
			return "", errors.WithStack(ErrInvalidISBN)
		}
		sum += d * (10 - i)
	}

	check := (11 - sum%11) % 11
	if check == 10 {
		return "X", nil
	}
	return strconv.Itoa(check), nil
}

// CheckDigit13 computes the ISBN-13 check digit for the first twelve
// digits of the normalized input. The normalized length may be anywhere
// in [11, 13], so a 12-digit body missing only its check digit is
// accepted. The result is always a decimal digit, never "X".
func CheckDigit13(raw string) (string, error) {
	normalized := Normalize(raw)
	if len(normalized) < 11 || len(normalized) > isbn13Length {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	body := normalized
	if len(body) > 12 {
		body = body[:12]
	}

	sum := 0
	for i := 0; i < len(body); i++ {
		d := int(body[i] - '0')
		if d < 0 || d > 9 {
			return "", errors.WithStack(ErrInvalidISBN)
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}

	return strconv.Itoa((10 - sum%10) % 10), nil
}

// CheckDigitCorrect reports whether the final character of the normalized
// input equals the check digit recomputed from the preceding digits. Only
// normalized lengths of exactly 10 or 13 are considered; anything else is
// false.
func CheckDigitCorrect(raw string) bool {
	normalized := Normalize(raw)

	var check string
	var err error
	switch len(normalized) {
	case isbn10Length:
		check, err = CheckDigit10(normalized)
	case isbn13Length:
		check, err = CheckDigit13(normalized)
	default:
		return false
	}
	if err != nil {
		return false
	}

	return check == normalized[len(normalized)-1:]
}

// Valid reports whether the raw input is a well-formed ISBN: the raw
// string is 10, 13, or 17 characters long (unhyphenated or fully
// hyphenated), the normalized form is 10 or 13 characters, and the check
// digit holds.
func Valid(raw string) bool {
	switch len(raw) {
	case isbn10Length, isbn13Length, hyphenatedLength:
	default:
		return false
	}

	normalized := Normalize(raw)
	if len(normalized) != isbn10Length && len(normalized) != isbn13Length {
		return false
	}

	return CheckDigitCorrect(normalized)
}
