package isbn

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit10(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{"nine digit body", "85-359-0277", "5", false},
		{"X check digit", "887385107", "X", false},
		{"full isbn10", "0306406152", "2", false},
		{"eight digits tolerated", "85359027", "8", false},
		{"too short", "12345", "", true},
		{"too long", "97883539027754", "", true},
		{"X inside body", "X12345678", "", true},
		{"no digits at all", "str", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := CheckDigit10(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidISBN))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, check)
		})
	}
}

func TestCheckDigit13(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
		wantErr  bool
	}{
		{"twelve digit body", "978-5-12345-678", "1", false},
		{"full isbn13", "9780316769488", "8", false},
		{"bookland body", "978-0-306-40615", "7", false},
		{"too short", "9780306", "", true},
		{"too long", "97803064061529999", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := CheckDigit13(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidISBN))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, check)
		})
	}
}

func TestCheckDigitCorrect(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"9788535902778", true},
		{"978-85-359-0277-8", true},
		{"0306406152", true},
		{"080442957X", true},
		{"9788535902779", false},
		{"0306406153", false},
		// lengths outside {10, 13} are never correct
		{"978853590277", false},
		{"97885359027781", false},
		{"str", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckDigitCorrect(tt.value))
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"978-5-12345-678-1", true},
		{"978-85-359-0277-8", true},
		{"9788535902778", true},
		{"85-359-0277-5", true},
		{"0306406152", true},
		{"080442957X", true},
		{"9791089123452", true},
		// missing check digit
		{"978-5-12345-678", false},
		{"85-359-0277", false},
		// wrong check digit
		{"9788535902779", false},
		// raw length must be 10, 13, or 17
		{"978-85-3590277-8", false},
		{"97-8853590277-8", false},
		// lowercase x check digit is stripped, shortening the form
		{"080442957x", false},
		{"str", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, Valid(tt.value))
		})
	}
}
