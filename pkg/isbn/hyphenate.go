package isbn

import (
	"strings"

	"github.com/pkg/errors"
)

// Hyphenate formats a valid ISBN with its canonical hyphen placement. A
// 13-digit input keeps its GS1 prefix ("978-85-359-0277-8"); a 10-digit
// input is resolved through its 13-digit form but displayed without the
// GS1 element and with its own check digit ("0-306-40615-2").
func Hyphenate(raw string) (string, error) {
	if !Valid(raw) {
		return "", errors.WithStack(ErrInvalidISBN)
	}

	normalized := Normalize(raw)
	parts, err := Parse(normalized)
	if err != nil {
		return "", err
	}

	if len(normalized) == isbn10Length {
		group := strings.TrimPrefix(parts.Prefix, gs1Bookland+"-")
		return strings.Join([]string{group, parts.Registrant, parts.Publication, normalized[9:]}, "-"), nil
	}

	// parts.Prefix already carries the GS1 hyphen.
	return strings.Join([]string{parts.Prefix, parts.Registrant, parts.Publication, parts.CheckDigit}, "-"), nil
}

// CorrectHyphens reports whether the input is a valid ISBN whose
// hyphenation already matches the canonical placement byte for byte.
func CorrectHyphens(raw string) bool {
	if !Valid(raw) {
		return false
	}

	hyphenated, err := Hyphenate(raw)
	if err != nil {
		return false
	}
	return hyphenated == raw
}
