package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
)

type SessionRepository interface {
	CreateSession(userID uint) (*Session, error)
	EndSession(userID uint, sessionID string) (int64, error)
	GetActiveSession(userID uint) (*Session, error)
}

type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) CreateSession(userID uint) (*Session, error) {
	session := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		StartTime: time.Now(),
	}

	if err := r.db.Create(&session).Error; err != nil {
		// The partial unique index rejects a second active session when
		// two starts race past the precondition check.
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, apperrors.NewAppError(409, "session already active", err)
		}
		return nil, apperrors.NewAppError(500, "Error creating session", err)
	}

	return &session, nil
}

func (r *GormSessionRepository) EndSession(userID uint, sessionID string) (int64, error) {
	now := time.Now()
	result := r.db.Model(&Session{}).
		Where("id = ? AND user_id = ? AND end_time IS NULL", sessionID, userID).
		Update("end_time", now)
	if result.Error != nil {
		return 0, apperrors.NewAppError(500, "Error ending session", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormSessionRepository) GetActiveSession(userID uint) (*Session, error) {
	var session Session
	result := r.db.
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "Error getting active session", result.Error)
	}

	return &session, nil
}
