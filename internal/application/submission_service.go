package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/formdesk/formdesk/internal/domain/entity"
	repo "github.com/formdesk/formdesk/internal/domain/repository"
	"github.com/formdesk/formdesk/pkg/helpers"
	"github.com/formdesk/formdesk/pkg/validation"
)

const duplicateEmailMessage = "email is already registered"

// SubmissionService owns the validate-and-insert composite for registration
// records plus the read/delete operations over the store.
type SubmissionService struct {
	Repo   repo.SubmissionRepository
	Logger *logrus.Logger
	Events EventPublisher
}

func NewSubmissionService(r repo.SubmissionRepository, logger *logrus.Logger, events EventPublisher) *SubmissionService {
	return &SubmissionService{Repo: r, Logger: logger, Events: events}
}

// Submit runs whole-record validation and, only when the record is clean,
// hashes the password and inserts it. A non-empty details map means the
// record was rejected and nothing was mutated. The duplicate-email rule is
// checked twice: an advisory pass here so it aggregates with the other field
// errors, and the authoritative pass inside the store's Insert, which holds
// the lock across check and append.
func (s *SubmissionService) Submit(ctx context.Context, in validation.SubmissionInput) (entity.Submission, map[string]string, error) {
	details := validation.CheckSubmission(in)
	if _, taken := details["email"]; !taken && s.Repo.EmailExists(in.Email) {
		details["email"] = duplicateEmailMessage
	}
	if len(details) > 0 {
		return entity.Submission{}, details, nil
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return entity.Submission{}, nil, err
	}

	rec, err := s.Repo.Insert(entity.SubmissionDraft{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Age:          in.Age,
		Country:      in.Country,
		Website:      in.Website,
		Message:      in.Message,
		Agreement:    in.Agreement,
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrAlreadyExists) {
		// Lost the race against a concurrent insert of the same email.
		return entity.Submission{}, map[string]string{"email": duplicateEmailMessage}, nil
	}
	if err != nil {
		return entity.Submission{}, nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"record_id": rec.ID, "email": rec.Email}).Info("submission accepted")
	}
	publishAudit(ctx, s.Events, s.Logger, "submission", "created", rec.ID)
	return rec, nil, nil
}

func (s *SubmissionService) Get(id string) (entity.Submission, error) {
	return s.Repo.Get(id)
}

func (s *SubmissionService) List() []entity.Submission {
	return s.Repo.List()
}

func (s *SubmissionService) Recent(n int) []entity.Submission {
	return s.Repo.Recent(n)
}

func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.Delete(id); err != nil {
		return err
	}
	publishAudit(ctx, s.Events, s.Logger, "submission", "deleted", id)
	return nil
}

func (s *SubmissionService) DeleteAll(ctx context.Context) int {
	n := s.Repo.DeleteAll()
	publishAudit(ctx, s.Events, s.Logger, "submission", "cleared", "")
	return n
}
