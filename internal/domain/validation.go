package domain

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

// messages maps "<json field>.<tag>" to the client-facing message.
var messages = map[string]string{
	"username.required":    "Path `username` is required.",
	"username.max":         "Username too long",
	"userId.required":      "Path `userId` is required.",
	"description.required": "Path `description` is required.",
	"description.max":      "Description too long",
	"duration.min":         "Duration too short",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages line up with the API.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateUser checks u against the User field constraints.
func ValidateUser(u *User) error { return check(u) }

// ValidateExercise checks e against the Exercise field constraints.
func ValidateExercise(e *Exercise) error { return check(e) }

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Internal(err)
	}
	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperr.Validation(fields...)
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("Path `%s` is invalid (%s).", fe.Field(), fe.Tag())
}

// NormalizeText returns s in Unicode NFC so that canonically equivalent
// inputs compare (and collide on unique indexes) as equal.
func NormalizeText(s string) string { return norm.NFC.String(s) }

// ParseDuration converts a raw duration input into whole minutes.
//
// An empty value is a missing required field. Integral floats such as "30.0"
// are accepted; anything else that is not a whole number is a cast failure.
// Range checks are left to ValidateExercise.
func ParseDuration(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.Validation(apperr.FieldError{
			Field:   "duration",
			Message: "Path `duration` is required.",
		})
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) &&
		f >= math.MinInt32 && f <= math.MaxInt32 {
		return int(f), nil
	}
	return 0, apperr.Validation(apperr.FieldError{
		Field:   "duration",
		Message: fmt.Sprintf("Cast to Number failed for value %q at path \"duration\"", raw),
	})
}
