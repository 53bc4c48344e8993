package utils

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseDate(t *testing.T) {
	instant := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		input any
		want  *time.Time
	}{
		{"nil", nil, nil},
		{"nil string pointer", (*string)(nil), nil},
		{"instant passes through", instant, &instant},
		{"instant pointer passes through", &instant, &instant},
		{"day first", "25/12/2025", ptr(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))},
		{"day first single digits", "1/2/2024", ptr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))},
		{"day first via pointer", str("05/06/2023"), ptr(time.Date(2023, 6, 5, 0, 0, 0, 0, time.UTC))},
		{"iso with Z", "2025-12-25T10:00:00Z", ptr(time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC))},
		{"iso with offset", "2025-12-25T12:00:00+02:00", ptr(time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC))},
		{"iso fractional", "2025-12-25T10:00:00.250Z", ptr(time.Date(2025, 12, 25, 10, 0, 0, 250_000_000, time.UTC))},
		{"iso without offset is utc", "2025-12-25T10:00:00", ptr(time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC))},
		{"iso date only", "2025-12-25", ptr(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))},
		{"iso space separated", "2025-12-25 08:15:00", ptr(time.Date(2025, 12, 25, 8, 15, 0, 0, time.UTC))},
		{"iso basic offset", "2025-12-25T10:00:00+0300", ptr(time.Date(2025, 12, 25, 7, 0, 0, 0, time.UTC))},
		{"iso basic offset without seconds", "2025-12-25T10:00-0130", ptr(time.Date(2025, 12, 25, 11, 30, 0, 0, time.UTC))},
		{"iso hour only", "2025-12-25T10", ptr(time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC))},
		{"iso compact date", "20251225", ptr(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	inputs := []any{
		"",
		"tomorrow",
		"31/02/2025",
		"13/13/2025",
		"00/01/2025",
		"1/2",
		"1/2/3/4",
		"aa/bb/cccc",
		"2025-13-01",
		"25.12.2025",
		42,
		3.14,
		true,
	}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%v", in), func(t *testing.T) {
			got, err := ParseDate(in)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDateFormat))

			appErr := AsAppError(err)
			assert.Equal(t, KindValidation, appErr.Kind)
			assert.Equal(t, in, appErr.Context["input"])
		})
	}
}

func TestParseDateDayFirstToleratesSignsAndSpaces(t *testing.T) {
	want := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"+25/12/2025", " 25 / 12 / 2025", "25/+12/ 2025 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(*got), "%q parsed as %v", in, got)
	}

	_, err := ParseDate("-25/12/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseDateSlashFallsThroughToISO(t *testing.T) {
	// not a valid day/month/year, and not ISO either
	_, err := ParseDate("2025/12/25")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseDateDayFirstProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1, 9999).Draw(t, "year")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		day := rapid.IntRange(1, last).Draw(t, "day")
		padded := rapid.Bool().Draw(t, "padded")

		input := fmt.Sprintf("%d/%d/%d", day, month, year)
		if padded {
			input = fmt.Sprintf("%02d/%02d/%04d", day, month, year)
		}

		got, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", input, err)
		}
		if got.Day() != day || int(got.Month()) != month || got.Year() != year {
			t.Fatalf("ParseDate(%q) = %v", input, got)
		}
		if got.Location() != time.UTC {
			t.Fatalf("ParseDate(%q) not in UTC", input)
		}
	})
}

func TestParseDateNeverPanicsOnText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		got, err := ParseDate(s)
		if err == nil && got == nil {
			t.Fatalf("ParseDate(%q) returned neither a date nor an error", s)
		}
		if err != nil && !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("ParseDate(%q) unexpected error %v", s, err)
		}
	})
}

func ptr(t time.Time) *time.Time { return &t }
