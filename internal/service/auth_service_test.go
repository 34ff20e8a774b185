package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"talenthub/internal/auth"
	"talenthub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			role: model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "newuser").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "empty role defaults to user",
			role: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "newuser").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already taken",
			role: model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@x.com").Return(&model.User{Email: "new@x.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name: "username already taken",
			role: model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "newuser").Return(&model.User{Username: "newuser"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:          "unknown role rejected",
			role:          "superuser",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := svc.Register(context.Background(), "newuser", "new@x.com", "password123", "New", "User", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.True(t, user.MustChangePassword)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		setupMock     func(*testing.T, *MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "staff@x.com").Return(&model.User{
					ID:           1,
					Email:        "staff@x.com",
					PasswordHash: hashPassword(t, "password123"),
					Role:         model.RoleUser,
				}, nil)
				store.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "staff@x.com", auth.RefreshTokenExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			password: "password123",
			setupMock: func(t *testing.T, repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "staff@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong",
			setupMock: func(t *testing.T, repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "staff@x.com").Return(&model.User{
					ID:           1,
					Email:        "staff@x.com",
					PasswordHash: hashPassword(t, "password123"),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockStore := new(MockTokenStore)
			tt.setupMock(t, mockRepo, mockStore)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockStore)
			accessToken, refreshToken, user, err := svc.Login(context.Background(), "staff@x.com", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, "staff@x.com", user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token issues a new access token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "staff@x.com")
		assert.NoError(t, err)

		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:    1,
			Email: "staff@x.com",
			Role:  model.RoleAdmin,
		}, nil)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "staff@x.com", nil)

		svc := NewAuthService(mockRepo, jwtService, mockStore)
		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)

		claims, err := jwtService.ValidateToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, claims.Role)
		mockRepo.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "staff@x.com")
		assert.NoError(t, err)

		mockStore := new(MockTokenStore)
		mockStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		svc := NewAuthService(new(MockUserRepository), jwtService, mockStore)
		_, err = svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
		mockStore.AssertExpectations(t)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name            string
		currentPassword string
		setupMock       func(*testing.T, *MockUserRepository)
		expectedError   error
	}{
		{
			name:            "successful change clears must-change flag",
			currentPassword: "old-password",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:                 1,
					PasswordHash:       hashPassword(t, "old-password"),
					MustChangePassword: true,
				}, nil)
				m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return !u.MustChangePassword
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:            "wrong current password",
			currentPassword: "not-the-password",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: hashPassword(t, "old-password"),
				}, nil)
			},
			expectedError: ErrWrongPassword,
		},
		{
			name:            "unknown user",
			currentPassword: "old-password",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			err := svc.ChangePassword(context.Background(), 1, tt.currentPassword, "new-password")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
