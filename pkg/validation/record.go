package validation

import (
	"errors"
	"strconv"
)

// SubmissionInput is the raw registration payload to validate. Password is
// the plain-text candidate; it never leaves this package.
type SubmissionInput struct {
	Name            string
	Email           string
	Phone           string
	Age             int
	Country         string
	Password        string
	ConfirmPassword string
	Website         string
	Message         string
	Agreement       bool
}

// CheckSubmission runs every field rule and returns a field→message map.
// All fields are checked (no fail-fast); an empty map means the record is
// accepted. Each entry comes from the same per-field function that backs
// single-field validation, so the two can never diverge.
func CheckSubmission(in SubmissionInput) map[string]string {
	out := make(map[string]string)
	add := func(field string, err error) {
		if err != nil {
			out[field] = err.Error()
		}
	}
	add("name", Name(in.Name))
	add("email", Email(in.Email))
	add("phone", Phone(in.Phone))
	add("age", Age(in.Age))
	add("country", Country(in.Country))
	add("password", Password(in.Password))
	add("confirmPassword", ConfirmPassword(in.Password, in.ConfirmPassword))
	add("website", Website(in.Website))
	add("message", Message(in.Message))
	add("agreement", Agreement(in.Agreement))
	return out
}

// Field validates a single field by name against its raw string value,
// dispatching to the same rule functions CheckSubmission uses. Numeric and
// boolean fields are parsed from their string form first.
func Field(name, raw string) error {
	switch name {
	case "name", "fullName":
		return Name(raw)
	case "email":
		return Email(raw)
	case "phone":
		return Phone(raw)
	case "age":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("age must be an integer")
		}
		return Age(n)
	case "country":
		return Country(raw)
	case "password":
		return Password(raw)
	case "website":
		return Website(raw)
	case "message":
		return Message(raw)
	case "agreement":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.New("agreement must be a boolean")
		}
		return Agreement(b)
	}
	return errors.New("unknown field: " + name)
}
