package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
)

type GameRepository interface {
	CreateGame(userID uint, request *StartGameRequest) (*Game, error)
	EndGame(userID uint, gameID string, endStack int64) (int64, error)
	GetActiveGames(userID uint) ([]Game, error)
	GetCompletedGames(userID uint, page, pageSize int) ([]Game, int64, error)
	GetCompletedGamesSince(userID uint, since time.Time) ([]Game, error)
	GetCompletedGamesBetween(userID uint, start, end time.Time) ([]Game, error)
}

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) CreateGame(userID uint, request *StartGameRequest) (*Game, error) {
	game := Game{
		ID:         uuid.New().String(),
		UserID:     userID,
		GameType:   request.GameType,
		BuyIn:      request.BuyIn,
		StartStack: request.StartStack,
		StartTime:  time.Now(),
	}

	if err := r.db.Create(&game).Error; err != nil {
		return nil, apperrors.NewAppError(500, "Error creating game", err)
	}

	return &game, nil
}

// EndGame sets end_stack and end_time together in one update. Filtering on
// end_time IS NULL keeps a closed game closed, and filtering on user_id
// makes a cross-user end affect zero rows instead of leaking anything.
func (r *GormGameRepository) EndGame(userID uint, gameID string, endStack int64) (int64, error) {
	now := time.Now()
	result := r.db.Model(&Game{}).
		Where("id = ? AND user_id = ? AND end_time IS NULL", gameID, userID).
		Updates(map[string]interface{}{
			"end_stack": endStack,
			"end_time":  now,
		})
	if result.Error != nil {
		return 0, apperrors.NewAppError(500, "Error ending game", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormGameRepository) GetActiveGames(userID uint) ([]Game, error) {
	games := []Game{}
	result := r.db.
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		Find(&games)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting active games", result.Error)
	}

	return games, nil
}

func (r *GormGameRepository) GetCompletedGames(userID uint, page, pageSize int) ([]Game, int64, error) {
	var total int64
	if err := r.db.Model(&Game{}).
		Where("user_id = ? AND end_time IS NOT NULL AND end_stack IS NOT NULL", userID).
		Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(500, "Error counting completed games", err)
	}

	games := []Game{}
	result := r.db.
		Where("user_id = ? AND end_time IS NOT NULL AND end_stack IS NOT NULL", userID).
		Order("end_time DESC").
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&games)
	if result.Error != nil {
		return nil, 0, apperrors.NewAppError(500, "Error getting completed games", result.Error)
	}

	return games, total, nil
}

func (r *GormGameRepository) GetCompletedGamesSince(userID uint, since time.Time) ([]Game, error) {
	games := []Game{}
	result := r.db.
		Where("user_id = ? AND end_time >= ? AND end_time IS NOT NULL AND end_stack IS NOT NULL", userID, since).
		Find(&games)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting games since", result.Error)
	}

	return games, nil
}

func (r *GormGameRepository) GetCompletedGamesBetween(userID uint, start, end time.Time) ([]Game, error) {
	games := []Game{}
	result := r.db.
		Where("user_id = ? AND end_time >= ? AND end_time <= ? AND end_stack IS NOT NULL", userID, start, end).
		Order("end_time ASC").
		Find(&games)
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "Error getting games for period", result.Error)
	}

	return games, nil
}
