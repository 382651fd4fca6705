package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedGame(start, end time.Time, startStack, endStack int64) *Game {
	return &Game{
		ID:         "g1",
		UserID:     1,
		GameType:   TypeRegular,
		BuyIn:      100,
		StartStack: startStack,
		EndStack:   &endStack,
		StartTime:  start,
		EndTime:    &end,
	}
}

func TestProfit(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := completedGame(start, start.Add(time.Hour), 100, 150)
	assert.Equal(t, int64(50), Profit(g))

	losing := completedGame(start, start.Add(time.Hour), 200, 120)
	assert.Equal(t, int64(-80), Profit(losing))
}

func TestProfit_ActiveGameIsZero(t *testing.T) {
	g := &Game{StartStack: 100, StartTime: time.Now()}
	assert.Equal(t, int64(0), Profit(g))
}

func TestDurationHours_Completed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 2, 30, 0, 0, time.UTC)
	g := completedGame(start, end, 100, 150)

	assert.Equal(t, 2.5, DurationHours(g, time.Now()))
}

func TestDurationHours_RoundsToTwoDecimals(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Minute) // 1.666... hours
	g := completedGame(start, end, 100, 150)

	assert.Equal(t, 1.67, DurationHours(g, time.Now()))
}

func TestDurationHours_ActiveUsesNow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g := &Game{StartTime: start}
	now := start.Add(45 * time.Minute)

	assert.Equal(t, 0.75, DurationHours(g, now))
}

func TestDurationHours_AbsoluteDifference(t *testing.T) {
	// A clock skew can put end before start; duration stays positive.
	start := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	g := completedGame(start, end, 100, 150)

	assert.Equal(t, 2.0, DurationHours(g, time.Now()))
}
