package domain

import (
	"github.com/pkg/errors"
)

const cepLength = 8

var ErrInvalidCep = errors.New("cep must contain exactly 8 digits")

// NormalizeCep strips every non-digit character and validates the result.
// "51110-160" and "51110160" normalize to the same value.
func NormalizeCep(raw string) (string, error) {
	digits := make([]byte, 0, cepLength)
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) != cepLength {
		return "", ErrInvalidCep
	}
	return string(digits), nil
}
