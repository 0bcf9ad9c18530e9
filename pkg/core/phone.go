package core

import (
	"fmt"
	"strings"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// Phone is a validated phone number in its stored (normalized) form.
type Phone struct {
	value string
}

// NewPhone normalizes raw and validates it.
// Spaces, dashes, dots and parentheses are dropped; a single leading '+' is kept.
func NewPhone(raw string) (Phone, error) {
	raw = strings.TrimSpace(raw)

	var b strings.Builder
	digits := 0
	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
			digits++
		case c == '+' && i == 0:
			b.WriteRune(c)
		case c == ' ' || c == '-' || c == '.' || c == '(' || c == ')':
		default:
			return Phone{}, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidPhone, c, raw)
		}
	}

	if digits < minPhoneDigits || digits > maxPhoneDigits {
		return Phone{}, fmt.Errorf("%w: %q must have between %d and %d digits", ErrInvalidPhone, raw, minPhoneDigits, maxPhoneDigits)
	}

	return Phone{value: b.String()}, nil
}

// MustPhone is like NewPhone but panics on invalid input.
func MustPhone(raw string) Phone {
	p, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the stored form.
func (p Phone) Value() string { return p.value }

func (p Phone) String() string { return p.value }
