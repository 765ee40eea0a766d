package assigner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStartOfDay(t *testing.T) {
	assert.Equal(t, ts("2024-03-02 00:00"), StartOfDay(ts("2024-03-02 18:45")))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(ts("2024-03-02 09:00"), ts("2024-03-02 23:59")))
	assert.False(t, SameDay(ts("2024-03-02 23:59"), ts("2024-03-03 00:00")))
}

func TestWeekendOf(t *testing.T) {
	saturday := ts("2024-03-02 00:00")

	start, ok := WeekendOf(ts("2024-03-02 15:00"))
	assert.True(t, ok)
	assert.Equal(t, saturday, start)

	start, ok = WeekendOf(ts("2024-03-03 09:00"))
	assert.True(t, ok)
	assert.Equal(t, saturday, start)

	_, ok = WeekendOf(ts("2024-03-04 09:00"))
	assert.False(t, ok)
	_, ok = WeekendOf(ts("2024-03-01 09:00"))
	assert.False(t, ok)
}

func TestWeekendEnd(t *testing.T) {
	assert.Equal(t, ts("2024-03-04 00:00"), WeekendEnd(ts("2024-03-02 00:00")))
}

func TestISOWeekYearBoundary(t *testing.T) {
	year, week := ISOWeek(ts("2024-12-30 10:00"))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, week)
}
