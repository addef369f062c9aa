package entity

import (
	"time"
)

// Submission is a single registration-form record.
// PasswordHash holds the bcrypt hash of the submitted password; the plain
// password is write-only and the hash is never serialized.
//
// IDs are creation-time-derived tokens assigned by the store.
type Submission struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Age              int       `json:"age"`
	Country          string    `json:"country"`
	Website          string    `json:"website,omitempty"`
	Message          string    `json:"message"`
	Agreement        bool      `json:"agreement"`
	PasswordHash     string    `json:"-"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// SubmissionDraft is a caller-supplied record missing the store-assigned
// fields (id, registration date). PasswordHash must already be hashed by
// the caller before insert.
type SubmissionDraft struct {
	Name         string
	Email        string
	Phone        string
	Age          int
	Country      string
	Website      string
	Message      string
	Agreement    bool
	PasswordHash string
}
