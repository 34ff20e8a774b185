package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/mapper"
	"talenthub/internal/model"
)

// Tests run with a nil cache client, which behaves as an always-empty cache.

func TestCandidateService_Create_AppliesDefaults(t *testing.T) {
	mockRepo := new(MockCandidateRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Candidate")).Return(nil)

	svc := NewCandidateService(mockRepo, nil)

	candidate, err := svc.Create(context.Background(), &mapper.CandidateInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Skills:    mapper.StringList{"Go"},
	})

	assert.NoError(t, err)
	assert.Equal(t, model.CandidateStatusActive, candidate.Status)
	assert.Equal(t, model.AvailabilityNo, candidate.Availability)
	assert.Equal(t, pq.StringArray{"Go"}, candidate.Skills)
	mockRepo.AssertExpectations(t)
}

func TestCandidateService_Get_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockCandidateRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCandidateService(mockRepo, nil)

	candidate, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, apperrors.ErrCandidateNotFound)
	assert.Nil(t, candidate)
	mockRepo.AssertExpectations(t)
}

func TestCandidateService_Update_MergesPatch(t *testing.T) {
	id := uuid.New()
	stored := &model.Candidate{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Phone:     "123",
		Summary:   "QA engineer",
	}

	mockRepo := new(MockCandidateRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Candidate")).Return(nil)

	svc := NewCandidateService(mockRepo, nil)

	phone := "456"
	candidate, err := svc.Update(context.Background(), id, &mapper.CandidatePatch{Phone: &phone})

	assert.NoError(t, err)
	assert.Equal(t, "456", candidate.Phone)
	assert.Equal(t, "Jane", candidate.FirstName)
	assert.Equal(t, "QA engineer", candidate.Summary)
	mockRepo.AssertExpectations(t)
}

func TestCandidateService_Update_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockCandidateRepository)
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCandidateService(mockRepo, nil)

	phone := "456"
	candidate, err := svc.Update(context.Background(), id, &mapper.CandidatePatch{Phone: &phone})

	assert.ErrorIs(t, err, apperrors.ErrCandidateNotFound)
	assert.Nil(t, candidate)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCandidateService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	mockRepo := new(MockCandidateRepository)
	mockRepo.On("Delete", mock.Anything, id).Return(gorm.ErrRecordNotFound)

	svc := NewCandidateService(mockRepo, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), apperrors.ErrCandidateNotFound)
	mockRepo.AssertExpectations(t)
}
