package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
	"github.com/tbourn/go-exercise-tracker/internal/domain"
	"github.com/tbourn/go-exercise-tracker/internal/utils"
)

const tracerName = "github.com/tbourn/go-exercise-tracker/internal/services"

// tracer resolves against the current global provider on every call so a
// provider installed after startup is honored.
func tracer() trace.Tracer { return otel.GetTracerProvider().Tracer(tracerName) }

// ExerciseRepo defines the repository contract required by ExerciseService.
type ExerciseRepo interface {
	// CreateExercise inserts e, assigning its ID.
	CreateExercise(ctx context.Context, db *gorm.DB, e *domain.Exercise) error

	// ListExercises returns a user's exercises dated within [from, to],
	// newest first, capped at limit when limit > 0.
	ListExercises(ctx context.Context, db *gorm.DB, userID string, from, to time.Time, limit int) ([]domain.Exercise, error)
}

// AddExerciseInput is the raw add-exercise request. Duration and Date stay
// strings so that parsing failures surface with the offending value.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// LogQuery is the raw exercise-log request.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// ExerciseService logs exercises against users and reads them back.
type ExerciseService struct {
	DB    *gorm.DB
	Users UserRepo
	Repo  ExerciseRepo

	// Now is the clock; tests pin it.
	Now func() time.Time
}

// NewExerciseService constructs an ExerciseService using the wall clock.
func NewExerciseService(db *gorm.DB, users UserRepo, r ExerciseRepo) *ExerciseService {
	return &ExerciseService{DB: db, Users: users, Repo: r, Now: time.Now}
}

func (s *ExerciseService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Add records an exercise for in.UserID and returns the owning user along
// with the stored exercise.
//
// An unknown user yields ErrUnknownUser before any field is checked. An
// empty or unparsable Date falls back to the current time.
func (s *ExerciseService) Add(ctx context.Context, in AddExerciseInput) (_ *domain.User, _ *domain.Exercise, err error) {
	ctx, span := tracer().Start(ctx, "ExerciseService.Add")
	defer func() { endSpan(span, err) }()

	u, err := lookup(ctx, s.DB, s.Users, strings.TrimSpace(in.UserID))
	if err != nil {
		return nil, nil, err
	}

	duration, err := domain.ParseDuration(in.Duration)
	if err != nil {
		return nil, nil, err
	}

	e := &domain.Exercise{
		UserID:      u.ID,
		Description: domain.NormalizeText(in.Description),
		Duration:    duration,
		Date:        utils.ParseDateDefault(in.Date, s.now()),
	}
	if err := domain.ValidateExercise(e); err != nil {
		return nil, nil, err
	}

	if err := s.Repo.CreateExercise(ctx, s.DB, e); err != nil {
		return nil, nil, apperr.Internal(err)
	}
	exercisesLogged.Inc()
	return u, e, nil
}

// Log returns the user and their exercises dated within [From, To], newest
// first. A missing or unparsable To means now, a missing or unparsable From
// means the Unix epoch, and a missing, invalid or non-positive Limit means
// no cap.
func (s *ExerciseService) Log(ctx context.Context, q LogQuery) (_ *domain.User, _ []domain.Exercise, err error) {
	ctx, span := tracer().Start(ctx, "ExerciseService.Log")
	defer func() { endSpan(span, err) }()

	u, err := lookup(ctx, s.DB, s.Users, strings.TrimSpace(q.UserID))
	if err != nil {
		logQueries.WithLabelValues("error").Inc()
		return nil, nil, err
	}

	from := utils.ParseDateDefault(q.From, time.Unix(0, 0).UTC())
	to := utils.ParseDateDefault(q.To, s.now())

	limit := utils.ParseLimit(q.Limit)
	span.SetAttributes(attribute.Int("exercise.log.limit", limit))

	items, err := s.Repo.ListExercises(ctx, s.DB, u.ID, from, to, limit)
	if err != nil {
		logQueries.WithLabelValues("error").Inc()
		return nil, nil, apperr.Internal(err)
	}
	logQueries.WithLabelValues("ok").Inc()
	span.SetAttributes(attribute.Int("exercise.log.count", len(items)))
	return u, items, nil
}

// endSpan marks server-side failures on span and ends it. Client errors stay
// unset so they do not count as span errors.
func endSpan(span trace.Span, err error) {
	if err != nil {
		var ie *apperr.InternalError
		if errors.As(err, &ie) {
			span.RecordError(apperr.Cause(err))
			span.SetStatus(codes.Error, "internal")
		}
	}
	span.End()
}
