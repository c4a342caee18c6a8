package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("parses valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")

		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, raw := range []string{"9:30pm", "25:00", "10-00", ""} {
			_, err := NewTimeStringFromString(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", raw)
		}
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("shifts within the same day", func(t *testing.T) {
		shifted, err := TimeString("10:00").AddMinutes(60)

		require.NoError(t, err)
		assert.Equal(t, TimeString("11:00"), shifted)
	})

	t.Run("fails when crossing midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(60)

		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("scans postgres time column with seconds", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan("10:00:00")

		require.NoError(t, err)
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("scans time.Time", func(t *testing.T) {
		var ts TimeString
		err := ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("nil resets to zero value", func(t *testing.T) {
		ts := TimeString("10:00")
		err := ts.Scan(nil)

		require.NoError(t, err)
		assert.True(t, ts.IsZero())
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("zero value stores NULL", func(t *testing.T) {
		v, err := TimeString("").Value()

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("valid time stores string", func(t *testing.T) {
		v, err := TimeString("10:00").Value()

		require.NoError(t, err)
		assert.Equal(t, "10:00", v)
	})

	t.Run("garbage fails instead of storing", func(t *testing.T) {
		_, err := TimeString("banana").Value()

		assert.ErrorIs(t, err, ErrInvalidTimeString)
	})
}
