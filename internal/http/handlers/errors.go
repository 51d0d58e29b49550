package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

// ErrInvalidBody is reported when a request body cannot be decoded.
var ErrInvalidBody = apperr.Validation(apperr.FieldError{Field: "body", Message: "Invalid request body"})

// bind decodes a JSON or form body into dst according to Content-Type. An
// empty body leaves dst zero-valued so that field validation reports the
// missing values.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		return ErrInvalidBody
	}
	return nil
}

// FlexString accepts a JSON string, number or bool and keeps its text, so
// numeric fields can be sent either way and parsed later with the offending
// value at hand. In form bodies it behaves like a plain string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw.(type) {
	case nil:
		*f = ""
	case float64, bool:
		*f = FlexString(b)
	default:
		return errors.New("expected a scalar value")
	}
	return nil
}
