package handlers

import (
	"context"

	"github.com/tbourn/go-exercise-tracker/internal/domain"
	"github.com/tbourn/go-exercise-tracker/internal/services"
)

// UserService defines the user operations consumed by HTTP handlers.
type UserService interface {
	// Create registers a new user with a unique username.
	Create(ctx context.Context, username string) (*domain.User, error)
	// List returns every user record.
	List(ctx context.Context) ([]domain.User, error)
}

// ExerciseService defines the exercise operations consumed by HTTP handlers.
type ExerciseService interface {
	// Add logs an exercise and returns the owning user with the new record.
	Add(ctx context.Context, in services.AddExerciseInput) (*domain.User, *domain.Exercise, error)
	// Log returns a user's exercises filtered by date range and limit.
	Log(ctx context.Context, q services.LogQuery) (*domain.User, []domain.Exercise, error)
}

// Handlers groups the API endpoints. It depends only on service interfaces.
type Handlers struct {
	userSvc     UserService
	exerciseSvc ExerciseService
}

// New constructs Handlers bound to the given services.
func New(userSvc UserService, exerciseSvc ExerciseService) *Handlers {
	return &Handlers{userSvc: userSvc, exerciseSvc: exerciseSvc}
}
