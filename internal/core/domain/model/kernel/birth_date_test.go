package kernel_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBirthDate(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	clock := kernel.ClockFunc(func() time.Time { return now })

	t.Run("should drop time of day", func(t *testing.T) {
		date, err := kernel.NewBirthDate(time.Date(1991, time.July, 5, 23, 59, 0, 0, time.UTC), clock)

		require.NoError(t, err)
		assert.Equal(t, time.Date(1991, time.July, 5, 0, 0, 0, 0, time.UTC), date.Date())
		assert.Equal(t, "05/07/1991", date.String())
	})

	t.Run("should accept today", func(t *testing.T) {
		_, err := kernel.NewBirthDate(now, clock)

		require.NoError(t, err)
	})

	t.Run("should reject future date", func(t *testing.T) {
		_, err := kernel.NewBirthDate(now.AddDate(0, 0, 1), clock)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fall back to system clock", func(t *testing.T) {
		date, err := kernel.NewBirthDate(time.Date(1991, time.July, 5, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		assert.Equal(t, "05/07/1991", date.String())

		_, err = kernel.NewBirthDate(time.Now().AddDate(1, 0, 0), nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero time", func(t *testing.T) {
		_, err := kernel.NewBirthDate(time.Time{}, clock)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBirthDate_Age(t *testing.T) {
	birth := time.Date(1991, time.July, 5, 0, 0, 0, 0, time.UTC)
	date, err := kernel.NewBirthDate(birth, kernel.SystemClock{})
	require.NoError(t, err)

	dayBefore := kernel.ClockFunc(func() time.Time { return time.Date(2024, time.July, 4, 12, 0, 0, 0, time.UTC) })
	birthday := kernel.ClockFunc(func() time.Time { return time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC) })

	assert.Equal(t, 32, date.Age(dayBefore))
	assert.Equal(t, 33, date.Age(birthday))
}
