package game

import (
	"time"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
	"github.com/sebasquinv/PokerLedger/internal/events"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type GameService struct {
	repo      GameRepository
	publisher events.Publisher
}

func NewGameService(repo GameRepository, publisher events.Publisher) *GameService {
	return &GameService{repo: repo, publisher: publisher}
}

func (s *GameService) StartGame(userID uint, request *StartGameRequest) (*Game, error) {
	if err := request.Validate(); err != nil {
		return nil, apperrors.NewAppError(400, err.Error(), err)
	}

	game, err := s.repo.CreateGame(userID, request)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(userID, events.GameStarted, game)
	return game, nil
}

// EndGame resolves an active game. The conditional update affects zero
// rows when the game is already resolved, missing, or owned by another
// user; all three surface as the same conflict.
func (s *GameService) EndGame(userID uint, gameID string, request *EndGameRequest) error {
	if gameID == "" {
		return apperrors.NewAppError(400, "game id required", nil)
	}
	if request.EndStack < 0 {
		return apperrors.NewAppError(400, "endStack must not be negative", nil)
	}

	affected, err := s.repo.EndGame(userID, gameID, request.EndStack)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewAppError(409, "game already ended or not found", nil)
	}

	s.publisher.Publish(userID, events.GameEnded, gameID)
	return nil
}

func (s *GameService) GetActiveGames(userID uint) ([]ActiveGameResponse, error) {
	games, err := s.repo.GetActiveGames(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]ActiveGameResponse, 0, len(games))
	for _, g := range games {
		response = append(response, ActiveGameResponse{
			Game:         g,
			ElapsedHours: DurationHours(&g, now),
		})
	}
	return response, nil
}

func (s *GameService) GetGameHistory(userID uint, request *GamePageRequest) (*GamePage, error) {
	page := request.Page
	if page < 0 {
		page = 0
	}
	pageSize := request.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	games, total, err := s.repo.GetCompletedGames(userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &GamePage{Games: games, Total: total}, nil
}
