package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-exercise-tracker/internal/services"
	"github.com/tbourn/go-exercise-tracker/internal/utils"
)

// AddExerciseRequest is the body of POST /add (JSON or form). Duration and
// Date accept JSON strings or numbers.
type AddExerciseRequest struct {
	UserID      FlexString `json:"userId" form:"userId" swaggertype:"string" example:"9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"`
	Description string     `json:"description" form:"description" example:"morning run"`
	Duration    FlexString `json:"duration" form:"duration" swaggertype:"string" example:"30"`
	Date        FlexString `json:"date" form:"date" swaggertype:"string" example:"2024-01-02"`
}

// AddExerciseResponse carries the owning user's id and username together
// with the stored exercise fields.
type AddExerciseResponse struct {
	ID          string `json:"id" example:"9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"`
	Username    string `json:"username" example:"alice"`
	Date        string `json:"date" example:"Tue Jan 02 2024"`
	Duration    int    `json:"duration" example:"30"`
	Description string `json:"description" example:"morning run"`
}

// LogEntry is one exercise in a log response.
type LogEntry struct {
	Description string `json:"description" example:"morning run"`
	Duration    int    `json:"duration" example:"30"`
	Date        string `json:"date" example:"Tue Jan 02 2024"`
}

// LogResponse is a user's exercise log, newest first.
type LogResponse struct {
	ID       string     `json:"id" example:"9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"`
	Username string     `json:"username" example:"alice"`
	Log      []LogEntry `json:"log"`
}

// AddExercise godoc
// @ID          addExercise
// @Summary     Log an exercise
// @Description Records an exercise for an existing user. An empty or invalid date means now.
// @Tags        Exercises
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body  body      handlers.AddExerciseRequest  true  "Exercise"
// @Success     200   {object}  handlers.AddExerciseResponse
// @Failure     400   {string}  string  "Unknown UserID | validation message"
// @Failure     500   {string}  string  "Internal Server Error"
// @Router      /add [post]
func (h *Handlers) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	u, e, err := h.exerciseSvc.Add(c.Request.Context(), services.AddExerciseInput{
		UserID:      string(req.UserID),
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        string(req.Date),
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, AddExerciseResponse{
		ID:          u.ID,
		Username:    u.Username,
		Date:        utils.FormatDate(e.Date),
		Duration:    e.Duration,
		Description: e.Description,
	})
}

// ExerciseLog godoc
// @ID          exerciseLog
// @Summary     Read a user's exercise log
// @Description Lists a user's exercises dated within [from, to], newest first.
// @Tags        Exercises
// @Produce     json
// @Param       userId  query     string  true   "User ID"
// @Param       from    query     string  false  "Lower bound (inclusive), e.g. 2024-01-01"
// @Param       to      query     string  false  "Upper bound (inclusive), defaults to now"
// @Param       limit   query     int     false  "Maximum number of entries"
// @Success     200     {object}  handlers.LogResponse
// @Failure     400     {string}  string  "Unknown UserID"
// @Failure     500     {string}  string  "Internal Server Error"
// @Router      /log [get]
func (h *Handlers) ExerciseLog(c *gin.Context) {
	u, items, err := h.exerciseSvc.Log(c.Request.Context(), services.LogQuery{
		UserID: c.Query("userId"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  c.Query("limit"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	entries := make([]LogEntry, 0, len(items))
	for _, e := range items {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        utils.FormatDate(e.Date),
		})
	}
	ok(c, http.StatusOK, LogResponse{ID: u.ID, Username: u.Username, Log: entries})
}
