package game

import (
	"errors"
	"time"
)

const (
	TypeRegular     = "regular"
	TypeProgressive = "progressive"
)

// Game is one tracked instance of play. Amounts are integers in µBTC.
// A game is active while EndTime and EndStack are both null; EndGame sets
// the pair together in a single update and the transition is one-shot.
type Game struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"userId"`
	GameType   string     `gorm:"not null" json:"gameType"`
	BuyIn      int64      `gorm:"not null" json:"buyIn"`
	StartStack int64      `gorm:"not null" json:"startStack"`
	EndStack   *int64     `json:"endStack"`
	StartTime  time.Time  `gorm:"not null" json:"startTime"`
	EndTime    *time.Time `gorm:"index" json:"endTime"`
}

func (g *Game) Completed() bool {
	return g.EndTime != nil && g.EndStack != nil
}

type StartGameRequest struct {
	GameType   string `json:"gameType"`
	BuyIn      int64  `json:"buyIn"`
	StartStack int64  `json:"startStack"`
}

func (r *StartGameRequest) Validate() error {
	if r.GameType != TypeRegular && r.GameType != TypeProgressive {
		return errors.New("gameType must be regular or progressive")
	}

	if r.BuyIn <= 0 {
		return errors.New("buyIn must be greater than zero")
	}

	if r.StartStack < 0 {
		return errors.New("startStack must not be negative")
	}

	return nil
}

type EndGameRequest struct {
	EndStack int64 `json:"endStack"`
}

// ActiveGameResponse decorates an active game with its live elapsed
// duration. The value is computed at response time and never stored.
type ActiveGameResponse struct {
	Game
	ElapsedHours float64 `json:"elapsedHours"`
}

type GamePageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type GamePage struct {
	Games []Game `json:"games"`
	Total int64  `json:"total"`
}
