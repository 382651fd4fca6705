package analytics

import (
	"math"
	"time"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
	"github.com/sebasquinv/PokerLedger/internal/game"
)

type WeekStats struct {
	TotalProfit   int64   `json:"totalProfit"`
	TotalHours    float64 `json:"totalHours"`
	ProfitPerHour int64   `json:"profitPerHour"`
}

type AnalyticsService struct {
	games game.GameRepository
}

func NewAnalyticsService(games game.GameRepository) *AnalyticsService {
	return &AnalyticsService{games: games}
}

// GetWeekStats aggregates completed games that ended since Monday 00:00
// local time. Hours are summed per game at two decimals and the total is
// reported at one; profit per hour rounds half up to a whole µBTC figure.
func (s *AnalyticsService) GetWeekStats(userID uint) (*WeekStats, error) {
	now := time.Now()
	games, err := s.games.GetCompletedGamesSince(userID, StartOfWeek(now))
	if err != nil {
		return nil, err
	}

	var totalProfit int64
	var totalHours float64
	for i := range games {
		totalProfit += game.Profit(&games[i])
		totalHours += game.DurationHours(&games[i], now)
	}
	totalHours = math.Round(totalHours*10) / 10

	var profitPerHour int64
	if totalHours > 0 {
		profitPerHour = int64(math.Round(float64(totalProfit) / totalHours))
	}

	return &WeekStats{
		TotalProfit:   totalProfit,
		TotalHours:    totalHours,
		ProfitPerHour: profitPerHour,
	}, nil
}

// GetChartSeries returns the completed games that ended within the last
// periodDays, oldest first. Aggregation for display is the chart's job;
// the ledger only hands over the ordered rows.
func (s *AnalyticsService) GetChartSeries(userID uint, periodDays int) ([]game.Game, error) {
	if periodDays <= 0 {
		return nil, apperrors.NewAppError(400, "periodDays must be greater than zero", nil)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -periodDays)
	return s.games.GetCompletedGamesBetween(userID, start, end)
}

// StartOfWeek is Monday 00:00:00 in the local timezone of t.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	diff := day - 1
	if day == 0 {
		diff = 6
	}
	monday := t.AddDate(0, 0, -diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
