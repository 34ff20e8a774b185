package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub/internal/model"
)

// CandidateRepository defines candidate persistence operations.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *model.Candidate) error
	Update(ctx context.Context, candidate *model.Candidate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	List(ctx context.Context) ([]model.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository.
func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Create(candidate).Error
}

func (r *candidateRepository) Update(ctx context.Context, candidate *model.Candidate) error {
	return r.db.WithContext(ctx).Save(candidate).Error
}

func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) List(ctx context.Context) ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Candidate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
