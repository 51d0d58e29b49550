// Package httpapi wires the HTTP transport (Gin) to the user and exercise
// services, middleware and route handlers.
//
// Every failure, including unmatched routes and recovered panics, reaches
// the client through middleware.ErrorHandler as a plain-text body.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-exercise-tracker/docs"
	"github.com/tbourn/go-exercise-tracker/internal/config"
	"github.com/tbourn/go-exercise-tracker/internal/domain"
	"github.com/tbourn/go-exercise-tracker/internal/http/handlers"
	"github.com/tbourn/go-exercise-tracker/internal/http/middleware"
	"github.com/tbourn/go-exercise-tracker/internal/repo"
	"github.com/tbourn/go-exercise-tracker/internal/services"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// indexCSP allows the bundled front end (same-origin scripts and styles).
const indexCSP = "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

// userRepoShim adapts the repo free functions to services.UserRepo.
type userRepoShim struct{}

func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	return repo.CreateUser(ctx, db, username)
}

func (userRepoShim) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

func (userRepoShim) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return repo.ListUsers(ctx, db)
}

// exerciseRepoShim adapts the repo free functions to services.ExerciseRepo.
type exerciseRepoShim struct{}

func (exerciseRepoShim) CreateExercise(ctx context.Context, db *gorm.DB, e *domain.Exercise) error {
	return repo.CreateExercise(ctx, db, e)
}

func (exerciseRepoShim) ListExercises(ctx context.Context, db *gorm.DB, userID string, from, to time.Time, limit int) ([]domain.Exercise, error) {
	return repo.ListExercises(ctx, db, userID, from, to, limit)
}

// RegisterRoutes attaches all middleware and endpoints to r.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: access log and request-scoped logger
//  4. Metrics: sees the status ErrorHandler renders
//  5. gzip: wraps error bodies too
//  6. ErrorHandler: renders whatever the rest of the chain records
//  7. Recovery: panics become InternalError for ErrorHandler
//  8. Body size limit
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// Unsupported methods fall through to NoRoute and get a plain 404.
	r.HandleMethodNotAllowed = false
	// Trailing slashes are served directly instead of answered with a 301.
	r.RedirectTrailingSlash = false

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Recovery())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.Use(corsMiddleware(cfg.CORS))
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
		CSP:          indexCSP,
	}))

	r.GET("/health", health(db))

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	userSvc := services.NewUserService(db, userRepoShim{})
	exerciseSvc := services.NewExerciseService(db, userRepoShim{}, exerciseRepoShim{})
	h := handlers.New(userSvc, exerciseSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		handleBoth(api, http.MethodPost, "/new-user", h.CreateUser)
		handleBoth(api, http.MethodPost, "/add", h.AddExercise)
		handleBoth(api, http.MethodGet, "/log", h.ExerciseLog)
		handleBoth(api, http.MethodGet, "/users", h.ListUsers)
	}

	index := handlers.Index(cfg.IndexPath)
	r.GET("/", index)
	r.HEAD("/", index)
	r.NoRoute(handlers.NotFound(cfg.StaticDir))
}

// corsMiddleware allows every origin when none are configured, otherwise
// only the listed ones.
func corsMiddleware(c config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowedOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = c.AllowedOrigins
	}
	return cors.New(cc)
}

// health reports liveness plus a database ping.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			middleware.LoggerFrom(c).Error().Err(err).Msg("health: database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// handleBoth registers h for p with and without a trailing slash.
func handleBoth(g *gin.RouterGroup, method, p string, h gin.HandlerFunc) {
	g.Handle(method, p, h)
	g.Handle(method, p+"/", h)
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
