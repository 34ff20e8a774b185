package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/mapper"
	"talenthub/internal/model"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *model.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestClientService_Create_DefaultsToActive(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Client")).Return(nil)

	svc := NewClientService(mockRepo)

	client, err := svc.Create(context.Background(), &mapper.ClientInput{
		Name:  "Acme BV",
		Email: "info@acme.example",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ClientStatusActive, client.Status)
	mockRepo.AssertExpectations(t)
}

func TestClientService_CreateLead_ForcesLeadStatus(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Client")).Return(nil)

	svc := NewClientService(mockRepo)

	// a submitted status is ignored on the public lead path
	client, err := svc.CreateLead(context.Background(), &mapper.ClientInput{
		Name:   "Acme BV",
		Email:  "info@acme.example",
		Status: "active",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ClientStatusLead, client.Status)
	mockRepo.AssertExpectations(t)
}

func TestClientService_Update(t *testing.T) {
	id := uuid.New()

	t.Run("merges patch onto stored record", func(t *testing.T) {
		mockRepo := new(MockClientRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Client{
			ID:     id,
			Name:   "Acme BV",
			Email:  "info@acme.example",
			Status: model.ClientStatusLead,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Client")).Return(nil)

		svc := NewClientService(mockRepo)

		status := "active"
		client, err := svc.Update(context.Background(), id, &mapper.ClientPatch{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, model.ClientStatusActive, client.Status)
		assert.Equal(t, "Acme BV", client.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockClientRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewClientService(mockRepo)

		status := "active"
		client, err := svc.Update(context.Background(), id, &mapper.ClientPatch{Status: &status})

		assert.ErrorIs(t, err, apperrors.ErrClientNotFound)
		assert.Nil(t, client)
	})
}

func TestClientService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockClientRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	svc := NewClientService(mockRepo)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), apperrors.ErrClientNotFound)
	mockRepo.AssertExpectations(t)
}
