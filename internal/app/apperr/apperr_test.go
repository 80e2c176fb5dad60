package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation_Message(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldError
		want   string
	}{
		{"no fields", nil, "one or more fields failed validation"},
		{"one field", []FieldError{{Field: "title", Message: "is required"}}, "title: is required"},
		{
			"several fields",
			[]FieldError{{Field: "title", Message: "is required"}, {Field: "base_price", Message: "must be greater than 0"}},
			"title: is required (and 1 more errors)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validation(tt.fields...)
			assert.Equal(t, KindValidation, err.Kind)
			assert.Equal(t, CodeValidation, err.Code)
			assert.Equal(t, tt.want, err.Message)
		})
	}
}

func TestIs_WrappedError(t *testing.T) {
	base := NotFound(CodeTierNotFound, "platform fee with ID %s not found", "abc")
	wrapped := fmt.Errorf("loading tier: %w", base)

	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindConflict))
	assert.True(t, HasCode(wrapped, CodeTierNotFound))
	assert.False(t, Is(errors.New("plain"), KindNotFound))

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "PLATFORM_FEE_NOT_FOUND: platform fee with ID abc not found", got.Error())
}

func TestErrorsIs_MatchesKindAndCode(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Conflict(CodeRangeOverlap, "overlap"))

	assert.True(t, errors.Is(err, &Error{Kind: KindConflict, Code: CodeRangeOverlap}))
	assert.False(t, errors.Is(err, &Error{Kind: KindConflict, Code: CodeTierNameExists}))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "invalid_state", KindInvalidState.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
