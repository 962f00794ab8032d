package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{name: "not found error type", errType: ErrTypeNotFound, expected: "NOT_FOUND"},
		{name: "validation error type", errType: ErrTypeValidation, expected: "VALIDATION"},
		{name: "state error type", errType: ErrTypeState, expected: "STATE"},
		{name: "parsing error type", errType: ErrTypeParsing, expected: "PARSING"},
		{name: "storage error type", errType: ErrTypeStorage, expected: "STORAGE"},
		{name: "config error type", errType: ErrTypeConfig, expected: "CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeValidation,
				Message: "odd coordinate count",
			},
			wantMessage: "[VALIDATION] odd coordinate count",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeParsing,
				Message: "failed to read table",
				Cause:   fmt.Errorf("wrong number of fields"),
			},
			wantMessage: "[PARSING] failed to read table: wrong number of fields",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type: ErrTypeState,
			},
			wantMessage: "[STATE] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	appErr := NewStorageError("failed to open file", cause)

	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))
	assert.Nil(t, NewStateError("table not loaded").Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	appErr := &AppError{Type: ErrTypeValidation, Message: "count mismatch"}

	got := appErr.WithContext("expected", 2).WithContext("actual", 3)

	require.Same(t, appErr, got)
	assert.Equal(t, 2, got.Context["expected"])
	assert.Equal(t, 3, got.Context["actual"])
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("./missing.csv")

	assert.Equal(t, ErrTypeNotFound, err.Type)
	assert.Equal(t, "./missing.csv not found", err.Message)
	assert.Equal(t, "./missing.csv", err.Context["resource"])
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantMsg  string
		hasCause bool
	}{
		{name: "validation", err: NewAppValidationError("bad"), wantType: ErrTypeValidation, wantMsg: "bad"},
		{name: "state", err: NewStateError("not ready"), wantType: ErrTypeState, wantMsg: "not ready"},
		{name: "parsing", err: NewParsingError("bad cell", cause), wantType: ErrTypeParsing, wantMsg: "bad cell", hasCause: true},
		{name: "storage", err: NewStorageError("io", cause), wantType: ErrTypeStorage, wantMsg: "io", hasCause: true},
		{name: "config", err: NewConfigError("env", cause), wantType: ErrTypeConfig, wantMsg: "env", hasCause: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantMsg, tt.err.Message)
			assert.NotNil(t, tt.err.Context)
			if tt.hasCause {
				assert.Equal(t, cause, tt.err.Cause)
			} else {
				assert.Nil(t, tt.err.Cause)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("activity: %w", NewAppValidationError("odd coordinate count"))

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsState(NewStateError("x")))
	assert.True(t, IsParsing(NewParsingError("x", nil)))

	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
	assert.False(t, IsValidation(nil))
}
