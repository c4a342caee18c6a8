package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	t.Run("parses valid date", func(t *testing.T) {
		d, err := NewDateStringFromString("2025-10-15")

		require.NoError(t, err)
		assert.Equal(t, DateString("2025-10-15"), d)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"15-10-2025", "2025/10/15", "2025-13-01", "not-a-date", ""} {
			_, err := NewDateStringFromString(raw)
			assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", raw)
		}
	})
}

func TestDateString_Comparisons(t *testing.T) {
	a := DateString("2025-10-14")
	b := DateString("2025-10-15")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(DateString("2025-10-14")))
}

func TestDateString_Weekday(t *testing.T) {
	d := DateString("2025-10-13")

	weekday, err := d.Weekday()

	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekday)
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-10-30")

	shifted, err := d.AddDays(3)

	require.NoError(t, err)
	assert.Equal(t, DateString("2025-11-02"), shifted)
}

func TestDateString_Scan(t *testing.T) {
	t.Run("scans time.Time from date column", func(t *testing.T) {
		var d DateString
		err := d.Scan(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, DateString("2025-10-15"), d)
	})

	t.Run("scans string with trailing time part", func(t *testing.T) {
		var d DateString
		err := d.Scan("2025-10-15T00:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, DateString("2025-10-15"), d)
	})

	t.Run("nil resets to zero value", func(t *testing.T) {
		d := DateString("2025-10-15")
		err := d.Scan(nil)

		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})
}

func TestDateString_Value(t *testing.T) {
	t.Run("zero value stores NULL", func(t *testing.T) {
		v, err := DateString("").Value()

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("valid date stores time.Time", func(t *testing.T) {
		v, err := DateString("2025-10-15").Value()

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), v)
	})
}
