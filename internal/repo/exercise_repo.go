package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-exercise-tracker/internal/domain"
)

// CreateExercise inserts e, assigning a UUID when e.ID is empty. Date and
// CreatedAt are stored in UTC.
func CreateExercise(ctx context.Context, db *gorm.DB, e *domain.Exercise) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.Date = e.Date.UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(e).Error
}

// ListExercises returns userID's exercises dated within [from, to] inclusive,
// newest first. A limit <= 0 returns every match.
func ListExercises(ctx context.Context, db *gorm.DB, userID string, from, to time.Time, limit int) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	q := db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.UTC(), to.UTC()).
		Order("date desc").
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// CountExercises returns the number of exercises logged by userID.
func CountExercises(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
