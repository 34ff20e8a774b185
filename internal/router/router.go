package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"

	"talenthub/internal/auth"
	"talenthub/internal/config"
	"talenthub/internal/errors"
	"talenthub/internal/handler"
	"talenthub/internal/metrics"
	"talenthub/internal/model"
)

const uploadBodyLimit = "5M"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	collector *metrics.Collector,
	sessionStore sessions.Store,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	clientHandler *handler.ClientHandler,
	candidateHandler *handler.CandidateHandler,
	applicationHandler *handler.ApplicationHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware(collector))
	e.Use(echo.WrapMiddleware(corsSettings().Handler))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(metrics.NewHandler(collector)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/applications/submit", applicationHandler.Submit)
	api.POST("/leads", clientHandler.CreateLead)

	// Secured routes (require JWT authentication; the session fallback runs
	// first so browser clients without the header still authenticate)
	secured := api.Group("",
		sessionTokenFallback(sessionStore),
		echojwt.WithConfig(echojwt.Config{
			SigningKey:  []byte(cfg.JWTSecret),
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			// missing and invalid tokens both answer 401; the default treats
			// a missing token as a 400
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHORIZED",
				})
			},
		}),
	)

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/change-password", authHandler.ChangePassword)

	// Client routes
	secured.GET("/clients", clientHandler.ListClients)
	secured.POST("/clients", clientHandler.CreateClient)
	secured.GET("/clients/:id", clientHandler.GetClient)
	secured.PUT("/clients/:id", clientHandler.UpdateClient)
	secured.DELETE("/clients/:id", clientHandler.DeleteClient)

	// Candidate routes
	secured.GET("/candidates", candidateHandler.ListCandidates)
	secured.POST("/candidates", candidateHandler.CreateCandidate)
	secured.GET("/candidates/:id", candidateHandler.GetCandidate)
	secured.PUT("/candidates/:id", candidateHandler.UpdateCandidate)
	secured.DELETE("/candidates/:id", candidateHandler.DeleteCandidate)
	secured.GET("/candidates/:id/resume", candidateHandler.ExportResume)

	// Application lifecycle routes
	secured.GET("/applications", applicationHandler.ListApplications)
	secured.GET("/applications/:id", applicationHandler.GetApplication)
	secured.POST("/applications/:id/approve", applicationHandler.Approve)
	secured.POST("/applications/:id/reject", applicationHandler.Reject)
	secured.DELETE("/applications/:id", applicationHandler.DeleteApplication)

	// Upload routes, size-limited
	uploads := secured.Group("/upload", middleware.BodyLimit(uploadBodyLimit))
	uploads.POST("/logo", uploadHandler.UploadLogo)
	uploads.POST("/template", uploadHandler.UploadTemplate)

	// Admin-only user management
	admin := secured.Group("", RequireAdmin)
	admin.POST("/auth/register", authHandler.Register)
	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/users/:id", userHandler.GetUser)
	admin.DELETE("/users/:id", userHandler.DeleteUser)
}

// RequireAdmin rejects authenticated requests whose identity lacks the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := auth.CurrentClaims(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "admin role required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// sessionTokenFallback promotes a token stored in the cookie session into the
// Authorization header when the header is absent.
func sessionTokenFallback(store sessions.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				if token, ok := auth.SessionToken(store, c.Request()); ok {
					c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)
				}
			}
			return next(c)
		}
	}
}

func corsSettings() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Authorization"},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
