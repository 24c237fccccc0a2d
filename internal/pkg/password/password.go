package password

import (
	"errors"
	"unicode"
)

var (
	ErrTooShort      = errors.New("password must be at least 8 characters long")
	ErrMissingLetter = errors.New("password must contain a letter")
	ErrMissingDigit  = errors.New("password must contain a digit")
)

const MinLength = 8

// Check returns the first rule of the operator-account policy s breaks, or nil.
// Letters count only when ASCII.
func Check(s string) error {
	if len(s) < MinLength {
		return ErrTooShort
	}
	var letter, digit bool
	for _, r := range s {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	switch {
	case !letter:
		return ErrMissingLetter
	case !digit:
		return ErrMissingDigit
	}
	return nil
}
