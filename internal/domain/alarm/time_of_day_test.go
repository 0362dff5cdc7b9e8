package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseTimeOfDay_Valid checks accepted inputs, including the range boundaries.
func TestParseTimeOfDay_Valid(t *testing.T) {
	t.Parallel()

	cases := map[string]TimeOfDay{
		"00:00:00": MustTimeOfDay(0, 0, 0),
		"14:30:00": MustTimeOfDay(14, 30, 0),
		"09:05:07": MustTimeOfDay(9, 5, 7),
		"23:59:59": MustTimeOfDay(23, 59, 59),
		"19:00:59": MustTimeOfDay(19, 0, 59),
	}

	for input, want := range cases {
		got, err := ParseTimeOfDay(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
		require.Equal(t, input, got.String())
	}
}

// TestParseTimeOfDay_Invalid checks that anything but strict HH:MM:SS is rejected.
func TestParseTimeOfDay_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"25:00:00",
		"24:00:00",
		"12:60:00",
		"12:00:60",
		"1:00:00",
		"12:0:00",
		"12:00",
		"12:00:00:00",
		" 12:00:00",
		"12:00:00\n",
		"12-00-00",
		"+1:00:00",
		"ab:cd:ef",
		"１２:００:００",
	}

	for _, input := range inputs {
		_, err := ParseTimeOfDay(input)
		require.ErrorIs(t, err, ErrInvalidTimeFormat, "%q", input)
	}
}

// TestNewTimeOfDay_Range checks component validation.
func TestNewTimeOfDay_Range(t *testing.T) {
	t.Parallel()

	_, err := NewTimeOfDay(23, 59, 59)
	require.NoError(t, err)

	for _, c := range [][3]int{{-1, 0, 0}, {24, 0, 0}, {0, 60, 0}, {0, 0, 60}, {0, -1, 0}} {
		_, err = NewTimeOfDay(c[0], c[1], c[2])
		require.ErrorIs(t, err, ErrInvalidTimeFormat)
	}

	require.Panics(t, func() { MustTimeOfDay(24, 0, 0) })
}

// TestTimeOfDay_Matches verifies whole-second comparison, ignoring date and sub-seconds.
func TestTimeOfDay_Matches(t *testing.T) {
	t.Parallel()

	target := MustTimeOfDay(14, 30, 0)

	require.True(t, target.Matches(time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)))
	require.True(t, target.Matches(time.Date(1999, 12, 31, 14, 30, 0, 999_999_999, time.UTC)))
	require.False(t, target.Matches(time.Date(2024, 1, 2, 14, 29, 59, 999_999_999, time.UTC)))
	require.False(t, target.Matches(time.Date(2024, 1, 2, 14, 30, 1, 0, time.UTC)))
	require.False(t, target.Matches(time.Date(2024, 1, 2, 2, 30, 0, 0, time.UTC)))
}

// TestTimeOfDayFrom keeps the location of the input time.
func TestTimeOfDayFrom(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 5, 6, 7, 8, 9, 10, loc)

	got := TimeOfDayFrom(ts)
	require.Equal(t, 7, got.Hour())
	require.Equal(t, 8, got.Minute())
	require.Equal(t, 9, got.Second())
}
