package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sjamesmccarthy/hikerbikerwriter-sub000/internal/dates"
)

func TestParse(t *testing.T) {
	d, err := dates.Parse("2026-03-15")
	require.NoError(t, err)
	require.Equal(t, dates.LocalDate("2026-03-15"), d)

	_, err = dates.Parse("03/15/2026")
	require.Error(t, err)

	_, err = dates.Parse("2026-13-40")
	require.Error(t, err)
}

func TestToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 45, 0, 0, time.Local)
	require.Equal(t, dates.LocalDate("2026-03-15"), dates.Today(now))
}

func TestTimeAndZero(t *testing.T) {
	var zero dates.LocalDate
	require.True(t, zero.IsZero())
	require.True(t, zero.Time().IsZero())

	d := dates.LocalDate("2026-03-15")
	require.False(t, d.IsZero())
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), d.Time())
}

func TestDayBounds(t *testing.T) {
	d := dates.LocalDate("2026-03-15")
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), d.DayStart())
	require.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999000000, time.Local), d.DayEnd())
}

func TestDaysOpen(t *testing.T) {
	d := dates.LocalDate("2026-03-15")

	// Any elapsed time on the same day rounds up to 1.
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local)
	require.Equal(t, 1, d.DaysOpen(now))

	now = time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local)
	require.Equal(t, 4, d.DaysOpen(now))

	// Future dates count forward the same way.
	now = time.Date(2026, 3, 13, 9, 0, 0, 0, time.Local)
	require.Equal(t, 2, d.DaysOpen(now))
}
