package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	ListByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// UpdateStatusFromPending flips the status only when the record is still
	// pending; the returned count is zero when the record is absent or has
	// already left the pending state.
	UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (int64, error)
	// WithTransaction executes fn with application and candidate repositories
	// bound to one database transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, apps ApplicationRepository, candidates CandidateRepository) error) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepository) UpdateStatusFromPending(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ? AND status = ?", id, model.ApplicationStatusPending).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *applicationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, apps ApplicationRepository, candidates CandidateRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &applicationRepository{db: tx}, &candidateRepository{db: tx})
	})
}
