package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewUserRequest is the body of POST /new-user (JSON or form).
type NewUserRequest struct {
	Username string `json:"username" form:"username" example:"alice"`
}

// NewUserResponse echoes the created user.
type NewUserResponse struct {
	Username string `json:"username" example:"alice"`
	ID       string `json:"id" example:"9f1c2a4e-7f43-4b57-8f7e-1d2c3b4a5e6f"`
}

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Description Registers a new user. Usernames are unique and at most 25 characters.
// @Tags        Users
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body  body      handlers.NewUserRequest  true  "New user"
// @Success     200   {object}  handlers.NewUserResponse
// @Failure     400   {string}  string  "Username taken | validation message"
// @Failure     500   {string}  string  "Internal Server Error"
// @Router      /new-user [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req NewUserRequest
	if err := bind(c, &req); err != nil {
		fail(c, err)
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), req.Username)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, NewUserResponse{Username: u.Username, ID: u.ID})
}

// ListUsers godoc
// @ID          listUsers
// @Summary     List users
// @Description Returns every user record as stored.
// @Tags        Users
// @Produce     json
// @Success     200  {array}   domain.User
// @Failure     500  {string}  string  "Internal Server Error"
// @Router      /users [get]
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, users)
}
