// Package services holds the business rules for users and their exercise
// logs. Services translate repository sentinels into apperr variants so the
// HTTP layer only ever sees classified errors.
package services

import (
	"net/http"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

// Client-facing messages for store-level failures.
const (
	MsgUsernameTaken = "Username taken"
	MsgUnknownUserID = "Unknown UserID"
)

// ErrUnknownUser is returned when an exercise references a user id that does
// not exist. It renders as 400, not 404: a bad reference is an input error.
var ErrUnknownUser = apperr.NotFound(http.StatusBadRequest, MsgUnknownUserID)
