package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewLoadError("input file not found", nil),
			want: "[LOAD] input file not found",
		},
		{
			name: "with cause",
			err:  NewParsingError("malformed table", fmt.Errorf("record on line 3: wrong number of fields")),
			want: "[PARSING] malformed table: record on line 3: wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewExportError("write failed", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("run failed: %w", err), &appErr)
	assert.Equal(t, ErrTypeExport, appErr.Type)
}

func TestIsType(t *testing.T) {
	err := NewDurationError("bad duration", nil)
	wrapped := fmt.Errorf("render: %w", err)

	assert.True(t, IsType(wrapped, ErrTypeDuration))
	assert.False(t, IsType(wrapped, ErrTypeLoad))
	assert.False(t, IsType(errors.New("plain"), ErrTypeDuration))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewLoadError("input file not found", nil).
		WithContext("path", "netflix1.csv")

	assert.Equal(t, "netflix1.csv", err.Context["path"])
}
