package session

import (
	"github.com/sebasquinv/PokerLedger/internal/apperrors"
	"github.com/sebasquinv/PokerLedger/internal/events"
)

type SessionService struct {
	repo      SessionRepository
	publisher events.Publisher
}

func NewSessionService(repo SessionRepository, publisher events.Publisher) *SessionService {
	return &SessionService{repo: repo, publisher: publisher}
}

func (s *SessionService) StartSession(userID uint) (*Session, error) {
	active, err := s.repo.GetActiveSession(userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperrors.NewAppError(409, "session already active", nil)
	}

	session, err := s.repo.CreateSession(userID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(userID, events.SessionStarted, session)
	return session, nil
}

// EndSession closes the session exactly once. Ending a session that is
// already closed, missing, or owned by someone else affects zero rows and
// is reported as a conflict rather than silently rewriting the close time.
func (s *SessionService) EndSession(userID uint, sessionID string) error {
	affected, err := s.repo.EndSession(userID, sessionID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewAppError(409, "session already ended or not found", nil)
	}

	s.publisher.Publish(userID, events.SessionEnded, sessionID)
	return nil
}

func (s *SessionService) GetActiveSession(userID uint) (*Session, error) {
	return s.repo.GetActiveSession(userID)
}
