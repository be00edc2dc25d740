package dataset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseComplex parses a complex literal such as "1.5-2.3j", "(2+3i)" or
// "2.0+3.0".
//
// The test writes a negative imaginary part as "+-", so every "+-" is read as
// "-". A value with two terms is always real<sign>imag, with or without an
// imaginary unit. A single term is imaginary only when it carries the unit.
func ParseComplex(text string) (complex128, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "+-", "-")

	if len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	if s == "" {
		return 0, errors.Wrapf(ErrSyntax, "%q", text)
	}

	var unit bool
	switch s[len(s)-1] {
	case 'i', 'j', 'I', 'J':
		unit = true
		s = s[:len(s)-1]
	}

	split := splitIndex(s)

	if split < 0 && !unit {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "%q", text)
		}

		return complex(v, 0), nil
	}

	if split < 0 {
		v, err := parseImag(s)
		if err != nil {
			return 0, errors.Wrapf(ErrSyntax, "%q", text)
		}

		return complex(0, v), nil
	}

	re, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "%q", text)
	}

	var im float64
	if unit {
		im, err = parseImag(s[split:])
	} else {
		im, err = strconv.ParseFloat(s[split:], 64)
	}

	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "%q", text)
	}

	return complex(re, im), nil
}

// splitIndex finds the sign that starts the imaginary term, skipping a
// leading sign and exponent signs.
func splitIndex(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] != '+' && s[i] != '-' {
			continue
		}

		if prev := s[i-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return i
	}

	return -1
}

// parseImag parses the coefficient in front of an imaginary unit, where a
// bare sign or nothing at all means 1.
func parseImag(s string) (float64, error) {
	switch s {
	case "+", "":
		return 1, nil
	case "-":
		return -1, nil
	}

	return strconv.ParseFloat(s, 64)
}
