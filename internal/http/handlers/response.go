// Package handlers provides the HTTP handlers for the exercise tracker API.
//
// Handlers never write error bodies themselves. On failure they record the
// error with fail(), which aborts the chain; middleware.ErrorHandler then
// renders it as plain text. Successful responses are JSON.
package handlers

import (
	"github.com/gin-gonic/gin"
)

// fail records err on the context and aborts the handler chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ok writes a JSON success response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
