package repository

import "github.com/formdesk/formdesk/internal/domain/entity"

// SubmissionRepository defines the interface for registration-record
// store operations.
type SubmissionRepository interface {
	// Insert assigns id and registration date and appends the record.
	// The duplicate-email check (case-insensitive) and the append happen
	// under one lock acquisition; a conflict returns ErrAlreadyExists and
	// a persistence failure returns ErrStorage with the append rolled back.
	Insert(draft entity.SubmissionDraft) (entity.Submission, error)
	// Get returns the record with the given id or ErrNotFound.
	Get(id string) (entity.Submission, error)
	// Delete removes the record, returning the removed value or ErrNotFound.
	Delete(id string) (entity.Submission, error)
	// DeleteAll clears the collection and returns how many records were removed.
	DeleteAll() int
	// List returns all records in insertion order.
	List() []entity.Submission
	// Recent returns the newest n records, newest first.
	Recent(n int) []entity.Submission
	// EmailExists reports whether a record with the given email exists
	// (case-insensitive). Advisory only: the authoritative check is Insert.
	EmailExists(email string) bool
}
