package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	id := uuid.MustParse("9f4e6cf3-0c8c-4a8f-9a3e-5a1f6f0a1b2c")

	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"string", NewString("Some text"), "Some text"},
		{"integer", NewInteger(1234), "1234"},
		{"decimal keeps scale", NewDecimal(decimal.RequireFromString("1234.560")), "1234.560"},
		{"boolean", NewBoolean(true), "true"},
		{"identifier", NewIdentifier(id), "9f4e6cf3-0c8c-4a8f-9a3e-5a1f6f0a1b2c"},
		{
			"date only",
			NewDate(time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)),
			"2025-05-12",
		},
		{
			"timestamp",
			NewDate(time.Date(2025, 5, 12, 13, 45, 10, 0, time.UTC)),
			"2025-05-12T13:45:10Z",
		},
		{
			"time only",
			NewDate(time.Date(0, 1, 1, 12, 35, 25, 0, time.UTC)),
			"12:35:25",
		},
		{"null renders empty", NewNull(KindInteger), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValue_Float64(t *testing.T) {
	t.Run("integer projects", func(t *testing.T) {
		f, err := NewInteger(5).Float64()
		require.NoError(t, err)
		assert.Equal(t, 5.0, f)
	})

	t.Run("decimal projects", func(t *testing.T) {
		f, err := NewDecimal(decimal.RequireFromString("2.5")).Float64()
		require.NoError(t, err)
		assert.Equal(t, 2.5, f)
	})

	t.Run("null projects to zero sentinel", func(t *testing.T) {
		f, err := NewNull(KindDecimal).Float64()
		require.NoError(t, err)
		assert.Zero(t, f)
	})

	t.Run("string does not project", func(t *testing.T) {
		_, err := NewString("x").Float64()
		assert.Error(t, err)
	})
}

func TestNewNull_KeepsDeclaredKind(t *testing.T) {
	for _, kind := range []Kind{KindString, KindInteger, KindDecimal, KindDate, KindBoolean, KindIdentifier} {
		v := NewNull(kind)
		assert.True(t, v.IsNull())
		assert.Equal(t, kind, v.Kind)
	}
}
