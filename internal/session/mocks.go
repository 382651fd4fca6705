package session

import (
	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(userID uint) (*Session, error) {
	args := m.Called(userID)
	var s *Session
	if args.Get(0) != nil {
		s = args.Get(0).(*Session)
	}
	return s, args.Error(1)
}

func (m *MockSessionRepository) EndSession(userID uint, sessionID string) (int64, error) {
	args := m.Called(userID, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) GetActiveSession(userID uint) (*Session, error) {
	args := m.Called(userID)
	var s *Session
	if args.Get(0) != nil {
		s = args.Get(0).(*Session)
	}
	return s, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(userID uint, eventType string, payload interface{}) {
	m.Called(userID, eventType, payload)
}
