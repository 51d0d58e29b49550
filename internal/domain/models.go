// Package domain defines the persistence models for users and their logged
// exercises. These types are mapped with GORM and carry the declarative field
// constraints evaluated by Validate before every write.
package domain

import "time"

// Field limits enforced by the validation rules.
const (
	UsernameMaxLen    = 25
	DescriptionMaxLen = 20
	DurationMin       = 1
)

// User is an account that exercises are logged against. Users are created
// once and never mutated.
//
// Fields:
//   - ID: UUID primary key (char(36)), generated on creation.
//   - Username: display handle; unique across all users.
//   - CreatedAt: creation timestamp managed by GORM.
type User struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Username  string    `json:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username" validate:"required,max=25"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Exercise is a single logged activity.
//
// UserID references User.ID. The reference is checked by the service at
// creation time rather than by a database constraint.
type Exercise struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID      string    `json:"userId"      gorm:"type:char(36);not null;index:idx_user_exercises,priority:1" validate:"required"`
	Description string    `json:"description" gorm:"type:varchar(64);not null" validate:"required,max=20"`
	Duration    int       `json:"duration"    gorm:"not null" validate:"min=1"`
	Date        time.Time `json:"date"        gorm:"not null;index:idx_user_exercises,priority:2"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Exercise.
func (Exercise) TableName() string { return "exercises" }
