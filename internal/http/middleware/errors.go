package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

// plainText is the content type of every error response.
const plainText = "text/plain; charset=utf-8"

// ErrorHandler is the single place that turns failures into responses.
//
// Handlers record an error with c.Error and abort; after the chain returns,
// the last recorded error is classified by apperr.Render and written as a
// one-line plain-text body. 5xx causes are logged with the request logger and
// never sent to the client. Nothing is written when the response has already
// been committed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, msg := apperr.Render(err)

		if status >= http.StatusInternalServerError {
			LoggerFrom(c).Error().
				Err(apperr.Cause(err)).
				Int("status", status).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}
		c.Data(status, plainText, []byte(msg))
	}
}
