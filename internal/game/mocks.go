package game

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateGame(userID uint, request *StartGameRequest) (*Game, error) {
	args := m.Called(userID, request)
	var g *Game
	if args.Get(0) != nil {
		g = args.Get(0).(*Game)
	}
	return g, args.Error(1)
}

func (m *MockGameRepository) EndGame(userID uint, gameID string, endStack int64) (int64, error) {
	args := m.Called(userID, gameID, endStack)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameRepository) GetActiveGames(userID uint) ([]Game, error) {
	args := m.Called(userID)
	var games []Game
	if args.Get(0) != nil {
		games = args.Get(0).([]Game)
	}
	return games, args.Error(1)
}

func (m *MockGameRepository) GetCompletedGames(userID uint, page, pageSize int) ([]Game, int64, error) {
	args := m.Called(userID, page, pageSize)
	var games []Game
	if args.Get(0) != nil {
		games = args.Get(0).([]Game)
	}
	return games, args.Get(1).(int64), args.Error(2)
}

func (m *MockGameRepository) GetCompletedGamesSince(userID uint, since time.Time) ([]Game, error) {
	args := m.Called(userID, since)
	var games []Game
	if args.Get(0) != nil {
		games = args.Get(0).([]Game)
	}
	return games, args.Error(1)
}

func (m *MockGameRepository) GetCompletedGamesBetween(userID uint, start, end time.Time) ([]Game, error) {
	args := m.Called(userID, start, end)
	var games []Game
	if args.Get(0) != nil {
		games = args.Get(0).([]Game)
	}
	return games, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(userID uint, eventType string, payload interface{}) {
	m.Called(userID, eventType, payload)
}
