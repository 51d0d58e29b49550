package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-exercise-tracker/internal/domain"
)

// ----- Fake repos -----

type fakeUserRepo struct {
	createName string
	createUser *domain.User
	createErr  error

	getID   string
	getUser *domain.User
	getErr  error
	getHits int

	listUsers []domain.User
	listErr   error
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	r.createName = username
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.createUser != nil {
		return r.createUser, nil
	}
	return &domain.User{ID: "u1", Username: username}, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	r.getID = id
	r.getHits++
	return r.getUser, r.getErr
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	return r.listUsers, r.listErr
}

type fakeExerciseRepo struct {
	created   []*domain.Exercise
	createErr error

	listUserID string
	listFrom   time.Time
	listTo     time.Time
	listLimit  int
	listItems  []domain.Exercise
	listErr    error
}

func (r *fakeExerciseRepo) CreateExercise(ctx context.Context, db *gorm.DB, e *domain.Exercise) error {
	if r.createErr != nil {
		return r.createErr
	}
	e.ID = "e1"
	r.created = append(r.created, e)
	return nil
}

func (r *fakeExerciseRepo) ListExercises(ctx context.Context, db *gorm.DB, userID string, from, to time.Time, limit int) ([]domain.Exercise, error) {
	r.listUserID, r.listFrom, r.listTo, r.listLimit = userID, from, to, limit
	return r.listItems, r.listErr
}
