package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/internal/infrastructure/kv"
	"github.com/formdesk/formdesk/internal/infrastructure/memory"
	"github.com/formdesk/formdesk/pkg/helpers"
	"github.com/formdesk/formdesk/pkg/validation"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu     sync.Mutex
	events []any
	err    error
}

func (p *capturePublisher) PublishJSON(_ context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, body)
	return p.err
}

func validSubmission() validation.SubmissionInput {
	return validation.SubmissionInput{
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

func TestSubmissionService_SubmitInserts(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSubmissionStore(nil, "", nil)
	pub := &capturePublisher{}
	svc := NewSubmissionService(store, nil, pub)

	rec, details, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	assert.Empty(t, details)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 1, store.Len())

	// Password is stored hashed, never plain.
	assert.NotEqual(t, "Str0ng!Pass", rec.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(rec.PasswordHash, "Str0ng!Pass"))

	require.Len(t, pub.events, 1)
	ev, ok := pub.events[0].(AuditEvent)
	require.True(t, ok)
	assert.Equal(t, "submission", ev.Entity)
	assert.Equal(t, "created", ev.Action)
	assert.Equal(t, rec.ID, ev.ID)
}

func TestSubmissionService_SubmitRejectsInvalidWithoutMutation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSubmissionStore(nil, "", nil)
	svc := NewSubmissionService(store, nil, nil)

	in := validSubmission()
	in.Age = 12
	in.Email = "broken"

	_, details, err := svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Contains(t, details, "age")
	assert.Contains(t, details, "email")
	assert.Equal(t, 0, store.Len())
}

func TestSubmissionService_SubmitRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSubmissionStore(nil, "", nil)
	svc := NewSubmissionService(store, nil, nil)

	_, details, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	require.Empty(t, details)

	// Same email in a different case is still a duplicate; the store count
	// stays put.
	in := validSubmission()
	in.Email = "JANE@example.COM"
	_, details, err = svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": duplicateEmailMessage}, details)
	assert.Equal(t, 1, store.Len())
}

func TestSubmissionService_SubmitSurfacesStorageError(t *testing.T) {
	ctx := context.Background()
	persist := kv.NewMemoryStore()
	persist.FailSaves = true
	persist.SaveErr = errors.New("quota exceeded")
	store := memory.NewSubmissionStore(persist, "key", nil)
	svc := NewSubmissionService(store, nil, nil)

	_, details, err := svc.Submit(ctx, validSubmission())
	assert.Empty(t, details)
	assert.ErrorIs(t, err, repository.ErrStorage)
	assert.Equal(t, 0, store.Len())
}

func TestSubmissionService_DeleteAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSubmissionStore(nil, "", nil)
	pub := &capturePublisher{}
	svc := NewSubmissionService(store, nil, pub)

	rec, _, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), repository.ErrNotFound)

	in := validSubmission()
	in.Email = "second@example.com"
	_, _, err = svc.Submit(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.DeleteAll(ctx))
	assert.Empty(t, svc.List())
}
