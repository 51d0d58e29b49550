package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
	"github.com/tbourn/go-exercise-tracker/internal/domain"
	"github.com/tbourn/go-exercise-tracker/internal/repo"
)

// UserRepo defines the repository contract required by UserService and
// ExerciseService.
type UserRepo interface {
	// CreateUser inserts a user; repo.ErrDuplicate when the username is taken.
	CreateUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error)

	// GetUser fetches a user by id; repo.ErrNotFound when absent.
	GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error)

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error)
}

// UserService creates and lists users.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the user repository used by this service.
	Repo UserRepo
}

// NewUserService constructs a UserService.
func NewUserService(db *gorm.DB, r UserRepo) *UserService {
	return &UserService{DB: db, Repo: r}
}

// Create validates username and persists a new user.
//
// Errors:
//   - *apperr.ValidationError when the username is empty or too long
//   - *apperr.DuplicateKeyError ("Username taken") when it is already in use
//   - *apperr.InternalError for any other store failure
func (s *UserService) Create(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{Username: domain.NormalizeText(username)}
	if err := domain.ValidateUser(u); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateUser(ctx, s.DB, u.Username)
	switch {
	case err == nil:
		usersCreated.Inc()
		return created, nil
	case errors.Is(err, repo.ErrDuplicate):
		return nil, apperr.DuplicateKey(MsgUsernameTaken, err)
	default:
		return nil, apperr.Internal(err)
	}
}

// List returns all users as stored.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.Repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// lookup resolves a user id, mapping a miss to ErrUnknownUser.
func lookup(ctx context.Context, db *gorm.DB, r UserRepo, id string) (*domain.User, error) {
	if id == "" {
		return nil, ErrUnknownUser
	}
	u, err := r.GetUser(ctx, db, id)
	if err == nil {
		return u, nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUnknownUser
	}
	return nil, apperr.Internal(err)
}
