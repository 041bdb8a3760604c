package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDate_TextLayouts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"iso date-only resolves to midday", "2025-01-05",
			time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)},
		{"iso with time", "2025-01-05 14:30:00",
			time.Date(2025, 1, 5, 14, 30, 0, 0, time.Local)},
		{"iso with short time", "2025-01-05 14:30",
			time.Date(2025, 1, 5, 14, 30, 0, 0, time.Local)},
		{"slash date", "2025/01/05",
			time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)},
		{"dotted date", "2025.01.05",
			time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)},
		{"day-first dashes", "05-01-2025",
			time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)},
		{"midnight reinterpreted as midday", "2025-01-05 00:00:00",
			time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDate(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveDate_Serial(t *testing.T) {
	// Excel serial 45658 is 2025-01-01 under the 1900 date system.
	got, ok := ResolveDate(45658.0)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), got)

	// Fractional part carries the time of day.
	got, ok = ResolveDate(45658.5)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), got)

	got, ok = ResolveDate(45658.25)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 6, 0, 0, 0, time.Local), got)
}

func TestResolveDate_SerialRenderedAsText(t *testing.T) {
	// Raw workbook reads render serial cells as digit strings.
	got, ok := ResolveDate("45658")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local), got)
}

func TestResolveDate_TypedTime(t *testing.T) {
	in := time.Date(2025, 3, 10, 9, 15, 0, 0, time.Local)
	got, ok := ResolveDate(in)
	require.True(t, ok)
	assert.Equal(t, in, got)

	// Midnight means date-only.
	got, ok = ResolveDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local))
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local), got)
}

func TestResolveDate_Rejects(t *testing.T) {
	for name, input := range map[string]interface{}{
		"nil":              nil,
		"empty string":     "",
		"garbage":          "not a date",
		"zero serial":      0.0,
		"negative serial":  -5.0,
		"year too small":   "1999-12-31",
		"year too large":   "2101-01-01",
		"tiny serial year": 10.0,
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := ResolveDate(input)
			assert.False(t, ok)
		})
	}
}
