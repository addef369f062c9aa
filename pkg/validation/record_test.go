package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "(555) 123-4567",
		Age:             30,
		Country:         "Canada",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
		Website:         "https://example.com",
		Message:         "Hello, this is a valid message.",
		Agreement:       true,
	}
}

func TestCheckSubmission_Accepts(t *testing.T) {
	assert.Empty(t, CheckSubmission(validInput()))
}

func TestCheckSubmission_OptionalWebsite(t *testing.T) {
	in := validInput()
	in.Website = ""
	assert.Empty(t, CheckSubmission(in))
}

func TestCheckSubmission_CollectsAllErrors(t *testing.T) {
	// Every rule fails at once; the map reports them all, not just the first.
	in := SubmissionInput{
		Name:            "J",
		Email:           "not-an-email",
		Phone:           "123",
		Age:             12,
		Country:         "Atlantis",
		Password:        "weak",
		ConfirmPassword: "different",
		Website:         "example.com",
		Message:         "short",
		Agreement:       false,
	}
	details := CheckSubmission(in)
	require.Len(t, details, 10)
	for _, field := range []string{
		"name", "email", "phone", "age", "country",
		"password", "confirmPassword", "website", "message", "agreement",
	} {
		assert.Contains(t, details, field)
		assert.NotEmpty(t, details[field])
	}
}

func TestCheckSubmission_SingleFailure(t *testing.T) {
	in := validInput()
	in.Age = 17
	details := CheckSubmission(in)
	require.Len(t, details, 1)
	assert.Equal(t, "age must be between 18 and 120", details["age"])
}

func TestField_AgreesWithRuleFunctions(t *testing.T) {
	// The dispatcher must route to the same rules the aggregate uses.
	cases := []struct {
		field string
		value string
		ok    bool
	}{
		{"name", "Jane Doe", true},
		{"fullName", "Jane Doe", true},
		{"name", "J", false},
		{"email", "jane@example.com", true},
		{"email", "nope", false},
		{"phone", "5551234567", true},
		{"phone", "123", false},
		{"age", "30", true},
		{"age", "17", false},
		{"age", "thirty", false},
		{"country", "Japan", true},
		{"country", "Mars", false},
		{"password", "Str0ng!Pass", true},
		{"password", "weak", false},
		{"website", "", true},
		{"website", "https://x.dev", true},
		{"website", "x.dev", false},
		{"message", "long enough message", true},
		{"message", "nope", false},
		{"agreement", "true", true},
		{"agreement", "false", false},
		{"agreement", "maybe", false},
	}
	for _, tc := range cases {
		err := Field(tc.field, tc.value)
		if tc.ok {
			assert.NoError(t, err, "%s=%q", tc.field, tc.value)
		} else {
			assert.Error(t, err, "%s=%q", tc.field, tc.value)
		}
	}
}

func TestField_UnknownField(t *testing.T) {
	assert.Error(t, Field("favoriteColor", "blue"))
}
