package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsBusinessHours(t *testing.T) {
	// 2026-08-31 is a Monday.
	at := func(day, hour, min int) time.Time {
		return time.Date(2026, 8, day, hour, min, 0, 0, time.Local)
	}

	t.Run("weekday morning is open", func(t *testing.T) {
		assert.True(t, IsBusinessHours(at(31, 9, 0)))
	})

	t.Run("weekday opens at 8h sharp", func(t *testing.T) {
		assert.False(t, IsBusinessHours(at(31, 7, 59)))
		assert.True(t, IsBusinessHours(at(31, 8, 0)))
	})

	t.Run("weekday closes at 18h sharp", func(t *testing.T) {
		assert.True(t, IsBusinessHours(at(31, 17, 59)))
		assert.False(t, IsBusinessHours(at(31, 18, 0)))
	})

	t.Run("saturday closes at 14h", func(t *testing.T) {
		sat := time.Date(2026, 8, 29, 13, 59, 0, 0, time.Local)
		assert.True(t, IsBusinessHours(sat))
		assert.False(t, IsBusinessHours(sat.Add(time.Minute)))
	})

	t.Run("sunday is always closed", func(t *testing.T) {
		sun := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
		assert.False(t, IsBusinessHours(sun))
	})
}

func TestBusinessHoursStatus(t *testing.T) {
	open := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)
	closed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)

	assert.Equal(t, StatusOpen, BusinessHoursStatus(open))
	assert.Equal(t, StatusClosed, BusinessHoursStatus(closed))
}
