package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdesk/formdesk/internal/domain/entity"
	"github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/internal/infrastructure/kv"
)

func draft(email string) entity.SubmissionDraft {
	return entity.SubmissionDraft{
		Name:         "Jane Doe",
		Email:        email,
		Phone:        "5551234567",
		Age:          30,
		Country:      "Canada",
		Message:      "Hello, this is a valid message.",
		Agreement:    true,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
}

func TestSubmissionStore_InsertAssignsIDAndTimestamp(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)

	rec, err := s.Insert(draft("jane@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.RegistrationDate.IsZero())
	assert.Equal(t, "jane@example.com", rec.Email)
}

func TestSubmissionStore_UniqueIDs(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rec, err := s.Insert(draft(fmt.Sprintf("user%d@example.com", i)))
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestSubmissionStore_DuplicateEmailCaseInsensitive(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	_, err := s.Insert(draft("Jane@Example.com"))
	require.NoError(t, err)

	_, err = s.Insert(draft("jane@example.COM"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	assert.Equal(t, 1, s.Len())
}

func TestSubmissionStore_EmailExists(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	_, err := s.Insert(draft("jane@example.com"))
	require.NoError(t, err)

	assert.True(t, s.EmailExists("JANE@EXAMPLE.COM"))
	assert.False(t, s.EmailExists("john@example.com"))
}

func TestSubmissionStore_GetDeleteNotFound(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = s.Delete("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmissionStore_RecentNewestFirst(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	var inserted []entity.Submission
	for _, email := range []string{"a@x.co", "b@x.co", "c@x.co"} {
		rec, err := s.Insert(draft(email))
		require.NoError(t, err)
		inserted = append(inserted, rec)
	}

	recent := s.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, inserted[2].ID, recent[0].ID)
	assert.Equal(t, inserted[1].ID, recent[1].ID)

	// n larger than the collection returns everything, newest first.
	assert.Len(t, s.Recent(10), 3)
}

func TestSubmissionStore_DeleteAll(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	_, _ = s.Insert(draft("a@x.co"))
	_, _ = s.Insert(draft("b@x.co"))

	assert.Equal(t, 2, s.DeleteAll())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.DeleteAll())
}

func TestSubmissionStore_SnapshotRoundTrip(t *testing.T) {
	persist := kv.NewMemoryStore()
	key := "registration_form_data"

	s := NewSubmissionStore(persist, key, nil)
	rec, err := s.Insert(draft("jane@example.com"))
	require.NoError(t, err)

	// A fresh store seeded from the same port sees the record, hash included.
	reloaded := NewSubmissionStore(persist, key, nil)
	require.NoError(t, reloaded.LoadSnapshot(context.Background()))

	got, err := reloaded.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.PasswordHash, got.PasswordHash)
	assert.True(t, rec.RegistrationDate.Equal(got.RegistrationDate))

	// And the duplicate guard still holds after a reload.
	_, err = reloaded.Insert(draft("jane@example.com"))
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestSubmissionStore_InsertRollsBackOnSaveFailure(t *testing.T) {
	persist := kv.NewMemoryStore()
	persist.FailSaves = true
	persist.SaveErr = errors.New("quota exceeded")

	s := NewSubmissionStore(persist, "key", nil)
	_, err := s.Insert(draft("jane@example.com"))
	assert.ErrorIs(t, err, repository.ErrStorage)
	assert.Equal(t, 0, s.Len())

	// Once storage recovers the same record goes through.
	persist.FailSaves = false
	_, err = s.Insert(draft("jane@example.com"))
	assert.NoError(t, err)
}

func TestSubmissionStore_ListReturnsSnapshot(t *testing.T) {
	s := NewSubmissionStore(nil, "", nil)
	_, err := s.Insert(draft("jane@example.com"))
	require.NoError(t, err)

	got := s.List()
	got[0].Email = "mutated@example.com"

	assert.True(t, s.EmailExists("jane@example.com"))
	assert.False(t, s.EmailExists("mutated@example.com"))
}
