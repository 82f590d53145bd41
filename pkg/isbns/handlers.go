package isbns

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shelfmark/shelfmark/pkg/errcodes"
	"github.com/shelfmark/shelfmark/pkg/isbn"
)

type handler struct{}

type retrieveResponse struct {
	Input              string  `json:"input"`
	ISBN13             string  `json:"isbn_13"`
	ISBN10             *string `json:"isbn_10"`
	Prefix             string  `json:"prefix"`
	RegistrantElement  string  `json:"registrant_element"`
	PublicationElement string  `json:"publication_element"`
	CheckDigit         string  `json:"check_digit"`
	PublisherZone      string  `json:"publisher_zone"`
	Hyphenated         string  `json:"hyphenated"`
}

func (h *handler) retrieve(c echo.Context) error {
	raw := c.Param("isbn")

	parts, err := isbn.Parse(raw)
	if err != nil {
		if errors.Is(err, isbn.ErrInvalidISBN) {
			return errcodes.InvalidISBN(raw)
		}
		return errors.WithStack(err)
	}

	canonical := isbn.Normalize(raw)
	if promoted, err := isbn.To13(raw); err == nil {
		canonical = promoted
	}

	zone, err := isbn.PublisherZone(canonical)
	if err != nil {
		return errors.WithStack(err)
	}

	hyphenated, err := isbn.Hyphenate(canonical)
	if err != nil {
		return errors.WithStack(err)
	}

	// 979-prefixed identifiers have no 10-digit form
	var isbn10 *string
	if demoted, err := isbn.To10(canonical); err == nil {
		isbn10 = &demoted
	}

	response := retrieveResponse{
		Input:              raw,
		ISBN13:             canonical,
		ISBN10:             isbn10,
		Prefix:             parts.Prefix,
		RegistrantElement:  parts.Registrant,
		PublicationElement: parts.Publication,
		CheckDigit:         parts.CheckDigit,
		PublisherZone:      zone,
		Hyphenated:         hyphenated,
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

type validateResponse struct {
	Input             string `json:"input"`
	Valid             bool   `json:"valid"`
	CheckDigitCorrect bool   `json:"check_digit_correct"`
	CorrectHyphens    bool   `json:"correct_hyphens"`
}

// validate never fails; every error condition reduces to false flags.
func (h *handler) validate(c echo.Context) error {
	raw := c.Param("isbn")

	response := validateResponse{
		Input:             raw,
		Valid:             isbn.Valid(raw),
		CheckDigitCorrect: isbn.CheckDigitCorrect(raw),
		CorrectHyphens:    isbn.CorrectHyphens(raw),
	}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

type convertResponse struct {
	Input string `json:"input"`
	ISBN  string `json:"isbn"`
}

func (h *handler) convert(c echo.Context) error {
	raw := c.Param("isbn")

	params := convertQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	var converted string
	var err error
	if params.To == "10" {
		converted, err = isbn.To10(raw)
	} else {
		converted, err = isbn.To13(raw)
	}
	if err != nil {
		if errors.Is(err, isbn.ErrInvalidISBN) {
			return errcodes.InvalidISBN(raw)
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, convertResponse{Input: raw, ISBN: converted}))
}

type hyphenateResponse struct {
	Input      string `json:"input"`
	Hyphenated string `json:"hyphenated"`
}

func (h *handler) hyphenate(c echo.Context) error {
	raw := c.Param("isbn")

	hyphenated, err := isbn.Hyphenate(raw)
	if err != nil {
		if errors.Is(err, isbn.ErrInvalidISBN) {
			return errcodes.InvalidISBN(raw)
		}
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, hyphenateResponse{Input: raw, Hyphenated: hyphenated}))
}
