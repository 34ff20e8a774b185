package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub/internal/cache"
	apperrors "talenthub/internal/errors"
	"talenthub/internal/mapper"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

const candidateCacheTTL = 5 * time.Minute

// CandidateService handles talent pool registry operations.
type CandidateService interface {
	Create(ctx context.Context, in *mapper.CandidateInput) (*model.Candidate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	List(ctx context.Context) ([]model.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, patch *mapper.CandidatePatch) (*model.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type candidateService struct {
	repo  repository.CandidateRepository
	cache *cache.Client
}

// NewCandidateService creates a new candidate service.
func NewCandidateService(repo repository.CandidateRepository, cache *cache.Client) CandidateService {
	return &candidateService{repo: repo, cache: cache}
}

func (s *candidateService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("candidate:%s", id.String())
}

func (s *candidateService) Create(ctx context.Context, in *mapper.CandidateInput) (*model.Candidate, error) {
	candidate := in.ToModel()
	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Get retrieves a candidate by ID with caching.
func (s *candidateService) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Candidate
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(candidate); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, candidateCacheTTL)
	}
	return candidate, nil
}

func (s *candidateService) List(ctx context.Context) ([]model.Candidate, error) {
	return s.repo.List(ctx)
}

func (s *candidateService) Update(ctx context.Context, id uuid.UUID, patch *mapper.CandidatePatch) (*model.Candidate, error) {
	candidate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, err
	}

	patch.Apply(candidate)
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return candidate, nil
}

func (s *candidateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCandidateNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
