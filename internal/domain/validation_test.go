package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/go-exercise-tracker/internal/apperr"
)

func firstMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr), "expected *apperr.ValidationError, got %T (%v)", err, err)
	return verr.Message()
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(&User{Username: "alice"}))
	assert.NoError(t, ValidateUser(&User{Username: strings.Repeat("a", UsernameMaxLen)}))

	assert.Equal(t, "Path `username` is required.", firstMessage(t, ValidateUser(&User{})))
	assert.Equal(t, "Username too long",
		firstMessage(t, ValidateUser(&User{Username: strings.Repeat("a", UsernameMaxLen+1)})))

	// Length is counted in characters, not bytes.
	assert.NoError(t, ValidateUser(&User{Username: strings.Repeat("é", UsernameMaxLen)}))
}

func TestValidateExercise(t *testing.T) {
	valid := Exercise{UserID: "u1", Description: "run", Duration: 30}
	assert.NoError(t, ValidateExercise(&valid))

	cases := []struct {
		name string
		mut  func(e *Exercise)
		want string
	}{
		{"missing user", func(e *Exercise) { e.UserID = "" }, "Path `userId` is required."},
		{"missing description", func(e *Exercise) { e.Description = "" }, "Path `description` is required."},
		{"long description", func(e *Exercise) { e.Description = strings.Repeat("d", DescriptionMaxLen+1) }, "Description too long"},
		{"zero duration", func(e *Exercise) { e.Duration = 0 }, "Duration too short"},
		{"negative duration", func(e *Exercise) { e.Duration = -5 }, "Duration too short"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := valid
			tc.mut(&e)
			err := ValidateExercise(&e)
			assert.Equal(t, tc.want, firstMessage(t, err))
			status, _ := apperr.Render(err)
			assert.Equal(t, 400, status)
		})
	}
}

func TestValidateExercise_ReportsEveryFailedField(t *testing.T) {
	err := ValidateExercise(&Exercise{})
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"userId", "description", "duration"}, fields)
}

func TestParseDuration(t *testing.T) {
	for in, want := range map[string]int{"30": 30, " 5 ": 5, "45.0": 45, "0": 0, "-3": -3} {
		got, err := ParseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDuration("")
	assert.Equal(t, "Path `duration` is required.", firstMessage(t, err))

	for _, in := range []string{"abc", "1.5", "NaN", "1e20"} {
		_, err := ParseDuration(in)
		assert.Contains(t, firstMessage(t, err), "Cast to Number failed", in)
	}
}

func TestNormalizeText(t *testing.T) {
	decomposed := "Jose\u0301"
	composed := "Jos\u00e9"
	assert.Equal(t, composed, NormalizeText(decomposed))
	assert.Equal(t, "plain", NormalizeText("plain"))
}
