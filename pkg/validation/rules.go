// Package validation implements the registration-form validation engine:
// one pure function per field, a whole-record aggregator built on the same
// functions, and the glue that exposes the rules to Gin's validator.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	nameMinLen    = 2
	passwordMin   = 8
	messageMinLen = 10
	messageMaxLen = 500
	ageMin        = 18
	ageMax        = 120
	phoneMinDigit = 10
	phoneMaxDigit = 15
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Countries is the fixed set of recognized country names.
var Countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"Germany",
	"France",
	"Japan",
	"India",
	"Brazil",
	"Other",
}

// Name accepts trimmed names of length >= 2 made of letters and spaces.
func Name(raw string) error {
	s := strings.TrimSpace(raw)
	if len([]rune(s)) < nameMinLen {
		return errors.New("name must be at least 2 characters long")
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return errors.New("name must contain letters and spaces only")
		}
	}
	return nil
}

// Email accepts strings of the local@domain.tld shape.
func Email(raw string) error {
	if !emailRe.MatchString(strings.TrimSpace(raw)) {
		return errors.New("must be a valid email address")
	}
	return nil
}

// Phone accepts numbers whose digit count, after stripping common
// separators, falls in [10,15].
func Phone(raw string) error {
	digits := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '(' || r == ')' || r == '-' || r == '+' || r == '.':
			// separator, ignore
		default:
			return errors.New("phone may contain digits and separators only")
		}
	}
	if digits < phoneMinDigit || digits > phoneMaxDigit {
		return errors.New("phone must contain 10 to 15 digits")
	}
	return nil
}

// Age accepts integers in [18,120].
func Age(age int) error {
	if age < ageMin || age > ageMax {
		return errors.New("age must be between 18 and 120")
	}
	return nil
}

// Country accepts members of the recognized country list.
func Country(raw string) error {
	for _, c := range Countries {
		if raw == c {
			return nil
		}
	}
	return errors.New("country is not recognized")
}

// Password requires length >= 8 with at least one lowercase letter, one
// uppercase letter, one digit and one symbol.
func Password(raw string) error {
	if len(raw) < passwordMin {
		return errors.New("password must be at least 8 characters long")
	}
	var lower, upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return errors.New("password must contain lowercase, uppercase, digit and symbol")
	}
	return nil
}

// ConfirmPassword requires an exact match with the password.
func ConfirmPassword(password, confirm string) error {
	if confirm != password {
		return errors.New("passwords do not match")
	}
	return nil
}

// Website is optional; when present it must start with http:// or https://.
func Website(raw string) error {
	if raw == "" {
		return nil
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return errors.New("website must start with http:// or https://")
	}
	return nil
}

// Message accepts trimmed text of length in [10,500].
func Message(raw string) error {
	n := len([]rune(strings.TrimSpace(raw)))
	if n < messageMinLen {
		return errors.New("message must be at least 10 characters long")
	}
	if n > messageMaxLen {
		return errors.New("message must be at most 500 characters long")
	}
	return nil
}

// Agreement must be explicitly accepted.
func Agreement(agreed bool) error {
	if !agreed {
		return errors.New("you must accept the agreement")
	}
	return nil
}

// PasswordStrength classifies a password as weak, medium or strong for
// display purposes only; it never gates submission.
func PasswordStrength(raw string) string {
	score := 0
	if len(raw) >= passwordMin {
		score++
	}
	if len(raw) >= 12 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}
	switch {
	case score >= 5:
		return "strong"
	case score >= 3:
		return "medium"
	default:
		return "weak"
	}
}
