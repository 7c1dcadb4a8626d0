package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), EINTERNAL},
		{"invalid", Invalid("register.submit", "bad"), EINVALID},
		{"forbidden", Forbidden("register.submit", "no"), EFORBIDDEN},
		{"wrapped", fmt.Errorf("outer: %w", Errorf(ENOTFOUND, "", "missing")), ENOTFOUND},
		{"validation", NewValidationError("register.submit", map[string]string{"email": "provide email"}), EINVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage_HidesInternalDetail(t *testing.T) {
	err := Internal(errors.New("template exploded"), "render", "render failed")

	assert.Equal(t, "An internal error occurred. Please try again later.", ErrorMessage(err))
	assert.Equal(t, "render", ErrorOp(err))
	assert.ErrorContains(t, err, "render failed")
	assert.Equal(t, "template exploded", errors.Unwrap(err).Error())
}

func TestErrorMessage_Validation(t *testing.T) {
	err := NewValidationError("register.submit", map[string]string{"password2": "passwords do not match"})

	assert.Equal(t, "Validation failed", ErrorMessage(err))
	assert.Equal(t, "register.submit", ErrorOp(err))
	assert.EqualError(t, err, "register.submit: validation failed")
}

func TestNewValidationError_EmptyFields(t *testing.T) {
	assert.Nil(t, NewValidationError("register.submit", nil))
	assert.Nil(t, NewValidationError("register.submit", map[string]string{}))
}
