package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"talenthub/internal/auth"
	"talenthub/internal/config"
	"talenthub/internal/handler"
	"talenthub/internal/metrics"
	"talenthub/internal/model"
	"talenthub/internal/router"
	"talenthub/internal/service"
)

const testSecret = "test-secret"

// stubUserRepo backs the admin surface with a fixed user list; everything
// else answers not found.
type stubUserRepo struct{}

func (stubUserRepo) Create(ctx context.Context, user *model.User) error { return nil }
func (stubUserRepo) Update(ctx context.Context, user *model.User) error { return nil }
func (stubUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) List(ctx context.Context) ([]model.User, error) {
	return []model.User{{ID: 1, Username: "admin", Email: "admin@x.com", Role: model.RoleAdmin}}, nil
}
func (stubUserRepo) Delete(ctx context.Context, id uint) error { return nil }

func setup(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:     testSecret,
		SessionSecret: "session-secret",
		UploadDir:     t.TempDir(),
	}

	sessionStore := auth.NewSessionStore(cfg.SessionSecret)
	userService := service.NewUserService(stubUserRepo{})

	e := echo.New()
	router.Register(
		e,
		cfg,
		metrics.NewCollector(),
		sessionStore,
		handler.NewAuthHandler(nil, userService, sessionStore),
		handler.NewUserHandler(userService),
		handler.NewClientHandler(nil),
		handler.NewCandidateHandler(nil, cfg.UploadDir),
		handler.NewApplicationHandler(nil),
		handler.NewUploadHandler(cfg.UploadDir),
	)
	return e
}

func accessToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.NewJWTService(testSecret).GenerateAccessToken(1, "staff@x.com", "Staff", role)
	assert.NoError(t, err)
	return token
}

func TestSecuredRoutes_RequireToken(t *testing.T) {
	e := setup(t)

	paths := []string{"/api/candidates", "/api/clients", "/api/applications", "/api/users"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestSecuredRoutes_RejectGarbageToken(t *testing.T) {
	e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutes_RejectNonAdmin(t *testing.T) {
	e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, model.RoleUser))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoutes_AllowAdmin(t *testing.T) {
	e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@x.com")
}

func TestPublicRoutes_NoTokenNeeded(t *testing.T) {
	e := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
