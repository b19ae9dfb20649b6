package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeForDB(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC time",
			input:    time.Date(2025, 6, 23, 11, 20, 10, 0, time.UTC),
			expected: "2025-06-23T11:20:10Z",
		},
		{
			name:     "offset time is stored as UTC",
			input:    time.Date(2025, 6, 23, 12, 20, 10, 0, time.FixedZone("BST", 3600)),
			expected: "2025-06-23T11:20:10Z",
		},
		{
			name:     "sub-second precision is dropped",
			input:    time.Date(2025, 6, 23, 11, 20, 10, 890799237, time.UTC),
			expected: "2025-06-23T11:20:10Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimeForDB(tt.input))
		})
	}
}

func TestParseTimeFromDB(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "UTC",
			input:    "2025-06-23T11:20:10Z",
			expected: time.Date(2025, 6, 23, 11, 20, 10, 0, time.UTC),
		},
		{
			name:     "with offset",
			input:    "2025-06-23T12:20:10+01:00",
			expected: time.Date(2025, 6, 23, 11, 20, 10, 0, time.UTC),
		},
		{
			name:        "legacy go time string",
			input:       "2025-06-23 11:47:24.890799237 +0100 BST m=+0.002409088",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeFromDB(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestFormatTimeForDB_RoundTrip(t *testing.T) {
	original := normalizeTimestamp(time.Now())

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
