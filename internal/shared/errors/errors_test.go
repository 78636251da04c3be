package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"bad request", NewBadRequestError("empty"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"rate limited", NewRateLimitedError("slow down"), ErrorTypeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_ErrorIncludesDetails(t *testing.T) {
	err := NewValidationError("Validation failed", "title is required")
	assert.Equal(t, "validation_error: Validation failed (title is required)", err.Error())
}

func TestKindHelpers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("update ticket: %w", NewNotFoundError("ticket not found"))

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.True(t, IsBadRequestError(NewBadRequestError("no fields")))
}

func TestAuthErrors(t *testing.T) {
	expired := NewTokenExpiredError("token")
	invalid := NewTokenInvalidError("token")
	creds := NewInvalidCredentialsError()

	assert.True(t, IsTokenExpiredError(expired))
	assert.False(t, IsTokenInvalidError(expired))
	assert.True(t, IsTokenInvalidError(invalid))

	for _, err := range []error{expired, invalid, creds} {
		assert.True(t, IsUnauthorizedError(err))
		require.NotNil(t, GetAppError(err))
	}

	assert.False(t, ShouldLogAuthError(creds))
	assert.True(t, ShouldLogAuthError(invalid))
	assert.True(t, ShouldLogAuthError(stderrors.New("plain")))
}

func TestPersistenceError(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("create ticket: %w", NewPersistenceError("insert", "ticket", cause))

	require.True(t, IsPersistenceError(err))
	pErr := GetPersistenceError(err)
	assert.Equal(t, "insert", pErr.Op)
	assert.Equal(t, "ticket", pErr.Entity)
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsAppError(err))
}

func TestCredentialAndSinkErrors(t *testing.T) {
	assert.True(t, IsCredentialFormatError(fmt.Errorf("login: %w", NewCredentialFormatError("bad salt"))))

	cause := stderrors.New("smtp down")
	sinkErr := NewSinkError("smtp", "a@x.com", cause)
	assert.True(t, IsSinkError(sinkErr))
	assert.ErrorIs(t, sinkErr, cause)
	assert.Contains(t, sinkErr.Error(), "a@x.com")
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, IsDuplicateError(nil))
	assert.True(t, IsDuplicateError(stderrors.New("Error 1062: Duplicate entry 'a@x.com' for key 'email'")))
	assert.True(t, IsDuplicateError(stderrors.New(`ERROR: duplicate key value violates unique constraint "users_email_key"`)))
	assert.True(t, IsDuplicateError(stderrors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(stderrors.New("syntax error")))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.False(t, IsForeignKeyError(nil))
	assert.True(t, IsForeignKeyError(stderrors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsForeignKeyError(stderrors.New(`ERROR: insert or update on table "comments" violates foreign key constraint "comments_ticket_id_fkey"`)))
	assert.True(t, IsForeignKeyError(stderrors.New("Cannot add or update a child row: a foreign key constraint fails")))
	assert.False(t, IsForeignKeyError(stderrors.New("UNIQUE constraint failed: users.email")))
}
