package game

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sebasquinv/PokerLedger/internal/events"
)

func newTestGameService() (*GameService, *MockGameRepository, *MockPublisher) {
	mockRepo := &MockGameRepository{}
	mockPub := &MockPublisher{}
	return NewGameService(mockRepo, mockPub), mockRepo, mockPub
}

func TestGameService_StartGame_Success(t *testing.T) {
	service, mockRepo, mockPub := newTestGameService()

	request := &StartGameRequest{GameType: TypeRegular, BuyIn: 100, StartStack: 100}
	game := &Game{ID: "g1", UserID: 1, GameType: TypeRegular, BuyIn: 100, StartStack: 100, StartTime: time.Now()}
	mockRepo.On("CreateGame", uint(1), request).Return(game, nil)
	mockPub.On("Publish", uint(1), events.GameStarted, game).Return()

	result, err := service.StartGame(1, request)
	assert.NoError(t, err)
	assert.Equal(t, "g1", result.ID)
	assert.Nil(t, result.EndTime)
	assert.Nil(t, result.EndStack)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestGameService_StartGame_InvalidType(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	request := &StartGameRequest{GameType: "tournament", BuyIn: 100, StartStack: 100}

	result, err := service.StartGame(1, request)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gameType")
	mockRepo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}

func TestGameService_StartGame_InvalidBuyIn(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	request := &StartGameRequest{GameType: TypeProgressive, BuyIn: 0, StartStack: 100}

	_, err := service.StartGame(1, request)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "buyIn")
	mockRepo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}

func TestGameService_StartGame_NegativeStartStack(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	request := &StartGameRequest{GameType: TypeRegular, BuyIn: 100, StartStack: -1}

	_, err := service.StartGame(1, request)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "startStack")
	mockRepo.AssertNotCalled(t, "CreateGame", mock.Anything, mock.Anything)
}

func TestGameService_EndGame_Success(t *testing.T) {
	service, mockRepo, mockPub := newTestGameService()

	mockRepo.On("EndGame", uint(1), "g1", int64(150)).Return(int64(1), nil)
	mockPub.On("Publish", uint(1), events.GameEnded, "g1").Return()

	err := service.EndGame(1, "g1", &EndGameRequest{EndStack: 150})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestGameService_EndGame_NegativeEndStack(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	err := service.EndGame(1, "g1", &EndGameRequest{EndStack: -5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "endStack")
	mockRepo.AssertNotCalled(t, "EndGame", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_EndGame_AlreadyEnded(t *testing.T) {
	service, mockRepo, mockPub := newTestGameService()

	mockRepo.On("EndGame", uint(1), "g1", int64(150)).Return(int64(0), nil)

	err := service.EndGame(1, "g1", &EndGameRequest{EndStack: 150})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already ended")
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestGameService_EndGame_OtherUsersGame(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	// Ownership is enforced by the filtered update: someone else's game
	// matches zero rows, indistinguishable from a missing game.
	mockRepo.On("EndGame", uint(2), "g1", int64(150)).Return(int64(0), nil)

	err := service.EndGame(2, "g1", &EndGameRequest{EndStack: 150})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetActiveGames(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	games := []Game{
		{ID: "g2", UserID: 1, StartTime: time.Now().Add(-30 * time.Minute)},
		{ID: "g1", UserID: 1, StartTime: time.Now().Add(-2 * time.Hour)},
	}
	mockRepo.On("GetActiveGames", uint(1)).Return(games, nil)

	result, err := service.GetActiveGames(1)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "g2", result[0].ID)
	assert.InDelta(t, 0.5, result[0].ElapsedHours, 0.02)
	assert.InDelta(t, 2.0, result[1].ElapsedHours, 0.02)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetActiveGames_RoundTripAfterStart(t *testing.T) {
	service, mockRepo, mockPub := newTestGameService()

	request := &StartGameRequest{GameType: TypeRegular, BuyIn: 100, StartStack: 100}
	created := &Game{ID: "g1", UserID: 1, GameType: TypeRegular, BuyIn: 100, StartStack: 100, StartTime: time.Now()}
	mockRepo.On("CreateGame", uint(1), request).Return(created, nil)
	mockPub.On("Publish", uint(1), events.GameStarted, created).Return()
	mockRepo.On("GetActiveGames", uint(1)).Return([]Game{*created}, nil)

	_, err := service.StartGame(1, request)
	assert.NoError(t, err)

	active, err := service.GetActiveGames(1)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "g1", active[0].ID)
	assert.Nil(t, active[0].EndTime)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetGameHistory_Defaults(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	mockRepo.On("GetCompletedGames", uint(1), 0, DefaultPageSize).Return([]Game{}, int64(0), nil)

	page, err := service.GetGameHistory(1, &GamePageRequest{Page: -3, PageSize: 0})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetGameHistory_CapsPageSize(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	mockRepo.On("GetCompletedGames", uint(1), 1, MaxPageSize).Return([]Game{}, int64(0), nil)

	_, err := service.GetGameHistory(1, &GamePageRequest{Page: 1, PageSize: 5000})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetGameHistory_LastPartialPage(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	games := make([]Game, 5)
	mockRepo.On("GetCompletedGames", uint(1), 1, 25).Return(games, int64(30), nil)

	page, err := service.GetGameHistory(1, &GamePageRequest{Page: 1, PageSize: 25})
	assert.NoError(t, err)
	assert.Len(t, page.Games, 5)
	assert.Equal(t, int64(30), page.Total)
	mockRepo.AssertExpectations(t)
}

func TestGameService_GetGameHistory_Error(t *testing.T) {
	service, mockRepo, _ := newTestGameService()

	mockRepo.On("GetCompletedGames", uint(1), 0, 25).Return(nil, int64(0), errors.New("db down"))

	_, err := service.GetGameHistory(1, &GamePageRequest{Page: 0, PageSize: 25})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
