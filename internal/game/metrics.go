package game

import (
	"math"
	"time"
)

// Profit is the signed µBTC result of a completed game. It is zero for a
// game that has not resolved yet.
func Profit(g *Game) int64 {
	if !g.Completed() {
		return 0
	}
	return *g.EndStack - g.StartStack
}

// DurationHours reports the length of a game in hours with two decimals.
// For an active game the current time stands in for the end timestamp, so
// the value is a live elapsed reading and must be recomputed per poll.
func DurationHours(g *Game, now time.Time) float64 {
	end := now
	if g.EndTime != nil {
		end = *g.EndTime
	}
	diff := end.Sub(g.StartTime)
	if diff < 0 {
		diff = -diff
	}
	return round2(diff.Hours())
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
