package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/mapper"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

// ApplicationService is the application lifecycle manager: public submission,
// staff review, and the pending -> approved/rejected transitions. Approval
// copies the application into a new candidate inside one transaction, so a
// failed candidate insert rolls the status flip back.
type ApplicationService interface {
	Submit(ctx context.Context, in *mapper.ApplicationInput) (*model.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Application, error)
	List(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error)
	Approve(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	Reject(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationService struct {
	appRepo repository.ApplicationRepository
}

// NewApplicationService creates a new application lifecycle service.
func NewApplicationService(appRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{appRepo: appRepo}
}

// Submit stores a public submission. The stored status is always pending,
// whatever the submitter tried to set.
func (s *applicationService) Submit(ctx context.Context, in *mapper.ApplicationInput) (*model.Application, error) {
	application := in.ToModel()
	application.Status = model.ApplicationStatusPending
	if err := s.appRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return application, nil
}

func (s *applicationService) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

func (s *applicationService) List(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error) {
	if status != "" {
		return s.appRepo.ListByStatus(ctx, status)
	}
	return s.appRepo.List(ctx)
}

// Approve transitions a pending application to approved and materializes the
// candidate from its fields. Applications that are absent or no longer
// pending are treated as not found; the transition never re-triggers.
func (s *applicationService) Approve(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var candidate *model.Candidate

	err := s.appRepo.WithTransaction(ctx, func(ctx context.Context, apps repository.ApplicationRepository, candidates repository.CandidateRepository) error {
		application, err := apps.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrApplicationNotFound
			}
			return err
		}

		rows, err := apps.UpdateStatusFromPending(ctx, id, model.ApplicationStatusApproved)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperrors.ErrApplicationNotFound
		}

		candidate = application.ToCandidate()
		if err := candidates.Create(ctx, candidate); err != nil {
			return fmt.Errorf("create candidate from application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidate, nil
}

// Reject transitions a pending application to rejected. Like Approve, the
// guard requires the pending state: rejecting an already-decided application
// returns not found instead of silently overwriting its status.
func (s *applicationService) Reject(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	rows, err := s.appRepo.UpdateStatusFromPending(ctx, id, model.ApplicationStatusRejected)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.ErrApplicationNotFound
	}

	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return application, nil
}

// Delete removes an application regardless of status.
func (s *applicationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.appRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return err
	}
	return nil
}
