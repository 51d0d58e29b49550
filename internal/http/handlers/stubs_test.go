package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-exercise-tracker/internal/domain"
	"github.com/tbourn/go-exercise-tracker/internal/http/middleware"
	"github.com/tbourn/go-exercise-tracker/internal/services"
)

// ---------- flexible service stubs ----------

type stubUserSvc struct {
	create func(context.Context, string) (*domain.User, error)
	list   func(context.Context) ([]domain.User, error)
}

func (s stubUserSvc) Create(ctx context.Context, name string) (*domain.User, error) {
	if s.create != nil {
		return s.create(ctx, name)
	}
	return &domain.User{ID: "u1", Username: name}, nil
}

func (s stubUserSvc) List(ctx context.Context) ([]domain.User, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return []domain.User{}, nil
}

type stubExerciseSvc struct {
	add func(context.Context, services.AddExerciseInput) (*domain.User, *domain.Exercise, error)
	log func(context.Context, services.LogQuery) (*domain.User, []domain.Exercise, error)
}

func (s stubExerciseSvc) Add(ctx context.Context, in services.AddExerciseInput) (*domain.User, *domain.Exercise, error) {
	return s.add(ctx, in)
}

func (s stubExerciseSvc) Log(ctx context.Context, q services.LogQuery) (*domain.User, []domain.Exercise, error) {
	return s.log(ctx, q)
}

// newRouter mounts h behind the error normalizer, as the real router does.
func newRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/new-user", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.POST("/add", h.AddExercise)
	r.GET("/log", h.ExerciseLog)
	return r
}

func doJSON(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r http.Handler, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
