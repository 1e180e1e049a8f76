package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/booktracker/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestUsageError(t *testing.T) {
	t.Run("with usage", func(t *testing.T) {
		err := pkgerrors.NewUsageError("booktracker <file> <operation>", "missing arguments")
		assert.Equal(t, "missing arguments (usage: booktracker <file> <operation>)", err.Error())
		assert.True(t, pkgerrors.IsUsage(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("run: %w", pkgerrors.NewUsageError("", "bad"))
		assert.True(t, pkgerrors.IsUsage(wrapped))
		assert.False(t, pkgerrors.IsValidationError(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("invalid isbn", func(t *testing.T) {
		err := pkgerrors.NewInvalidISBNError("123")
		assert.Equal(t, "validation failed for field isbn: ISBN must be exactly 13 digits", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.True(t, pkgerrors.IsInvalidISBN(err))
		assert.False(t, pkgerrors.IsInvalidCopyCount(err))
	})

	t.Run("invalid copy count", func(t *testing.T) {
		base := errors.New("strconv failure")
		err := pkgerrors.NewInvalidCopyCountError("x", base)
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.True(t, pkgerrors.IsInvalidCopyCount(err))
		assert.False(t, pkgerrors.IsInvalidISBN(err))
		assert.ErrorIs(t, err, base)
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid record"}
		assert.Equal(t, "validation failed: invalid record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestMalformedEntryError(t *testing.T) {
	err := pkgerrors.NewMalformedEntryError("a:b", 2, 4)
	assert.Contains(t, err.Error(), `"a:b"`)
	assert.Contains(t, err.Error(), "got 2 fields, want 4")
	assert.True(t, pkgerrors.IsMalformedEntry(err))
	assert.False(t, pkgerrors.IsValidationError(err))
}

func TestIOError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := pkgerrors.NewIOError("read", "books.txt", os.ErrPermission)
		assert.Contains(t, err.Error(), "read of books.txt")
		assert.True(t, pkgerrors.IsIO(err))
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewIOError("write", "", errors.New("disk full"))
		assert.Equal(t, "IO error during write: disk full", err.Error())
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("open", "x", nil))
	})

	t.Run("wrap", func(t *testing.T) {
		err := pkgerrors.WrapIO("open", "x", os.ErrNotExist)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsIO(err))
	})
}

func TestDuplicateISBNError(t *testing.T) {
	err := pkgerrors.NewDuplicateISBNError("1234567890123", 2)
	assert.Equal(t, "ISBN 1234567890123 is shared by 2 records", err.Error())
	assert.True(t, pkgerrors.IsDuplicateISBN(err))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid isbn", pkgerrors.NewInvalidISBNError("1"), "InvalidISBN: ISBN must be exactly 13 digits"},
		{"malformed", pkgerrors.NewMalformedEntryError("a:b", 2, 4), "MalformedEntry: a:b"},
		{"duplicate", pkgerrors.NewDuplicateISBNError("1234567890123", 3), "DuplicateISBN: ISBN 1234567890123 is shared by 3 records"},
		{"usage", pkgerrors.NewUsageError("", "missing"), "UsageError: missing"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgerrors.Describe(tt.err))
		})
	}
}
