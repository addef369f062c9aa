package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/formdesk/formdesk/internal/domain/entity"
	"github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/internal/infrastructure/kv"
)

// SubmissionStore keeps registration records in insertion order. When a
// persistence port is attached, the whole collection is written through to
// it under a fixed key after every mutation, mirroring how the browser
// client keeps its copy in localStorage.
type SubmissionStore struct {
	mu      sync.RWMutex
	records []entity.Submission
	persist kv.Store
	key     string
	logger  *logrus.Logger
}

// persistedSubmission is the serialized snapshot shape. Unlike the API
// representation it carries the password hash so records survive a reload.
type persistedSubmission struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Age              int       `json:"age"`
	Country          string    `json:"country"`
	Website          string    `json:"website,omitempty"`
	Message          string    `json:"message"`
	Agreement        bool      `json:"agreement"`
	PasswordHash     string    `json:"passwordHash,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// NewSubmissionStore builds a store. persist may be nil for a purely
// in-memory collection; key is the fixed snapshot key.
func NewSubmissionStore(persist kv.Store, key string, logger *logrus.Logger) *SubmissionStore {
	return &SubmissionStore{persist: persist, key: key, logger: logger}
}

// LoadSnapshot seeds the collection from the persistence port. Call once at
// startup, before the store is shared.
func (s *SubmissionStore) LoadSnapshot(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	b, found, err := s.persist.Load(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		return nil
	}
	var stored []persistedSubmission
	if err := json.Unmarshal(b, &stored); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
	for _, p := range stored {
		s.records = append(s.records, entity.Submission(p))
	}
	return nil
}

// newRecordID derives a unique token from the creation time plus a random
// suffix, so ids sort roughly by creation and never collide.
func newRecordID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + uuid.NewString()[:8]
}

func (s *SubmissionStore) Insert(draft entity.SubmissionDraft) (entity.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Duplicate check and append share this lock acquisition so no other
	// insert can interleave between them.
	lower := strings.ToLower(draft.Email)
	for i := range s.records {
		if strings.ToLower(s.records[i].Email) == lower {
			return entity.Submission{}, repository.ErrAlreadyExists
		}
	}

	rec := entity.Submission{
		ID:               newRecordID(),
		Name:             draft.Name,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Age:              draft.Age,
		Country:          draft.Country,
		Website:          draft.Website,
		Message:          draft.Message,
		Agreement:        draft.Agreement,
		PasswordHash:     draft.PasswordHash,
		RegistrationDate: time.Now().UTC(),
	}
	s.records = append(s.records, rec)

	if err := s.saveLocked(); err != nil {
		// Roll the append back so a failed save never leaves a record that
		// was reported as rejected.
		s.records = s.records[:len(s.records)-1]
		return entity.Submission{}, fmt.Errorf("%w: %v", repository.ErrStorage, err)
	}
	return rec, nil
}

func (s *SubmissionStore) Get(id string) (entity.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			return s.records[i], nil
		}
	}
	return entity.Submission{}, repository.ErrNotFound
}

func (s *SubmissionStore) Delete(id string) (entity.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			s.records = append(s.records[:i], s.records[i+1:]...)
			if err := s.saveLocked(); err != nil && s.logger != nil {
				s.logger.WithError(err).Warn("snapshot save failed after delete")
			}
			return rec, nil
		}
	}
	return entity.Submission{}, repository.ErrNotFound
}

func (s *SubmissionStore) DeleteAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	s.records = nil
	if s.persist != nil {
		if err := s.persist.Delete(context.Background(), s.key); err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("snapshot delete failed")
		}
	}
	return n
}

func (s *SubmissionStore) List() []entity.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Submission, len(s.records))
	copy(out, s.records)
	return out
}

func (s *SubmissionStore) Recent(n int) []entity.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.records) {
		n = len(s.records)
	}
	out := make([]entity.Submission, 0, n)
	for i := len(s.records) - 1; i >= len(s.records)-n; i-- {
		out = append(out, s.records[i])
	}
	return out
}

func (s *SubmissionStore) EmailExists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lower := strings.ToLower(email)
	for i := range s.records {
		if strings.ToLower(s.records[i].Email) == lower {
			return true
		}
	}
	return false
}

// Len reports the current number of records.
func (s *SubmissionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// saveLocked writes the snapshot through the persistence port. Callers must
// hold the write lock.
func (s *SubmissionStore) saveLocked() error {
	if s.persist == nil {
		return nil
	}
	stored := make([]persistedSubmission, len(s.records))
	for i, r := range s.records {
		stored[i] = persistedSubmission(r)
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return s.persist.Save(context.Background(), s.key, b)
}

var _ repository.SubmissionRepository = (*SubmissionStore)(nil)
