package isbn

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/rangedata"
)

// Parts is the resolved identity of an ISBN-13. Concatenating the digits
// of Prefix (minus its hyphen), Registrant, Publication, and CheckDigit
// reproduces the canonical 13-digit form.
type Parts struct {
	Prefix      string `json:"prefix"`
	Registrant  string `json:"registrant_element"`
	Publication string `json:"publication_element"`
	CheckDigit  string `json:"check_digit"`
}

// Parse resolves a valid ISBN into its registration elements. A 10-digit
// input is promoted to its 13-digit form first. Resolution fails when the
// registration group is absent from the range table or no registrant
// range matches the body.
func Parse(raw string) (*Parts, error) {
	canonical, err := canonical13(raw)
	if err != nil {
		return nil, err
	}

	prefix, group, err := resolvePrefix(canonical)
	if err != nil {
		return nil, err
	}

	// One hyphen separates the GS1 element from the group digits.
	body := canonical[len(prefix)-1 : 12]

	registrant, err := resolveRegistrant(group, body)
	if err != nil {
		return nil, err
	}

	return &Parts{
		Prefix:      prefix,
		Registrant:  registrant,
		Publication: body[len(registrant):],
		CheckDigit:  canonical[12:],
	}, nil
}

// resolvePrefix grows a candidate key one digit at a time ("978-8",
// "978-85", ...) until it appears in the range table. The search is
// greedy and deterministic: the shortest registered key wins and the
// search never backtracks. The loop is bounded by the body length, so an
// ISBN outside every registered group fails cleanly.
func resolvePrefix(canonical string) (string, rangedata.Group, error) {
	gs1 := canonical[:3]
	body := canonical[3:12]

	for k := 1; k <= len(body); k++ {
		key := gs1 + "-" + body[:k]
		if group, ok := rangedata.Lookup(key); ok {
			return key, group, nil
		}
	}

	return "", rangedata.Group{}, errors.WithStack(ErrInvalidISBN)
}

// resolveRegistrant walks the group's ranges in table order. For a range
// of width w, the first w digits of the body are compared numerically
// against its bounds; the first containing range decides the registrant
// element. Ranges of different widths may overlap numerically, so the
// table order is load-bearing.
func resolveRegistrant(group rangedata.Group, body string) (string, error) {
	for _, r := range group.Ranges {
		w := len(r.Low)
		if w > len(body) {
			continue
		}

		candidate := body[:w]
		value, err := strconv.Atoi(candidate)
		if err != nil {
			return "", errors.WithStack(ErrInvalidISBN)
		}

		low, err := strconv.Atoi(r.Low)
		if err != nil {
			return "", errors.WithStack(err)
		}
		high, err := strconv.Atoi(r.High)
		if err != nil {
			return "", errors.WithStack(err)
		}

		if value >= low && value <= high {
			return candidate, nil
		}
	}

	return "", errors.WithStack(ErrInvalidISBN)
}

// Prefix returns the hyphenated registration-group prefix of a valid
// ISBN, e.g. "978-85".
func Prefix(raw string) (string, error) {
	parts, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return parts.Prefix, nil
}

// CheckDigit returns the check digit of the canonical 13-digit form.
func CheckDigit(raw string) (string, error) {
	canonical, err := canonical13(raw)
	if err != nil {
		return "", err
	}
	return canonical[12:], nil
}

// RegistrantElement returns the publisher-identifying element of a valid
// ISBN.
func RegistrantElement(raw string) (string, error) {
	parts, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return parts.Registrant, nil
}

// PublicationElement returns the title-identifying element of a valid
// ISBN.
func PublicationElement(raw string) (string, error) {
	parts, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return parts.Publication, nil
}

// PublisherZone returns the name of the registration group's national or
// language area, e.g. "Brazil".
func PublisherZone(raw string) (string, error) {
	canonical, err := canonical13(raw)
	if err != nil {
		return "", err
	}

	_, group, err := resolvePrefix(canonical)
	if err != nil {
		return "", err
	}
	return group.Name, nil
}
