package dataparse

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"int32 range stays int32", "123", KindInt32},
		{"negative int32", "-42", KindInt32},
		{"beyond int32 range becomes int64", "9999999999", KindInt64},
		{"bool claims true before ints", "true", KindBool},
		{"bool is case-insensitive", "FALSE", KindBool},
		{"numeric one is not a bool", "1", KindInt32},
		{"uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", KindUUID},
		{"rfc3339 timestamp", "2026-03-01T18:30:00Z", KindTime},
		{"plain date", "2026-03-01", KindTime},
		{"fallback string", "not-a-date-or-guid-or-bool-or-number", KindString},
		{"empty string", "", KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, Parse(tt.in).Kind)
		})
	}
}

func TestParseValues(t *testing.T) {
	v := Parse("123")
	require.Equal(t, KindInt32, v.Kind)
	assert.Equal(t, int32(123), v.Int32)
	assert.Equal(t, int32(123), v.Interface())

	v = Parse("9999999999")
	require.Equal(t, KindInt64, v.Kind)
	assert.Equal(t, int64(9999999999), v.Int64)

	id := uuid.New()
	v = Parse(id.String())
	require.Equal(t, KindUUID, v.Kind)
	assert.Equal(t, id, v.UUID)

	v = Parse("2026-03-01T18:30:00Z")
	require.Equal(t, KindTime, v.Kind)
	assert.Equal(t, time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC), v.Time)

	v = Parse("hello world")
	require.Equal(t, KindString, v.Kind)
	assert.Equal(t, "hello world", v.Interface())
}

func TestParseNeverPanics(t *testing.T) {
	for _, s := range []string{"", " ", "{}", "NaN", "0x10", "--", "2026-13-99"} {
		assert.NotPanics(t, func() { Parse(s) })
	}
}
