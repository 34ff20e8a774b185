package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/mapper"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

// ClientService handles client registry operations.
type ClientService interface {
	Create(ctx context.Context, in *mapper.ClientInput) (*model.Client, error)
	// CreateLead is the public lead-form path; the client lands with lead status.
	CreateLead(ctx context.Context, in *mapper.ClientInput) (*model.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, id uuid.UUID, patch *mapper.ClientPatch) (*model.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Create(ctx context.Context, in *mapper.ClientInput) (*model.Client, error) {
	client := in.ToModel(model.ClientStatusActive)
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) CreateLead(ctx context.Context, in *mapper.ClientInput) (*model.Client, error) {
	client := in.ToModel(model.ClientStatusLead)
	client.Status = model.ClientStatusLead
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, patch *mapper.ClientPatch) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}

	patch.Apply(client)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClientNotFound
		}
		return err
	}
	return nil
}
