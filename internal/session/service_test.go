package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sebasquinv/PokerLedger/internal/events"
)

func newTestSessionService() (*SessionService, *MockSessionRepository, *MockPublisher) {
	mockRepo := &MockSessionRepository{}
	mockPub := &MockPublisher{}
	return NewSessionService(mockRepo, mockPub), mockRepo, mockPub
}

func TestSessionService_StartSession_Success(t *testing.T) {
	service, mockRepo, mockPub := newTestSessionService()

	session := &Session{ID: "s1", UserID: 1, StartTime: time.Now()}
	mockRepo.On("GetActiveSession", uint(1)).Return(nil, nil)
	mockRepo.On("CreateSession", uint(1)).Return(session, nil)
	mockPub.On("Publish", uint(1), events.SessionStarted, session).Return()

	result, err := service.StartSession(1)
	assert.NoError(t, err)
	assert.Equal(t, "s1", result.ID)
	assert.Nil(t, result.EndTime)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestSessionService_StartSession_AlreadyActive(t *testing.T) {
	service, mockRepo, _ := newTestSessionService()

	active := &Session{ID: "s1", UserID: 1, StartTime: time.Now()}
	mockRepo.On("GetActiveSession", uint(1)).Return(active, nil)

	result, err := service.StartSession(1)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session already active")
	mockRepo.AssertNotCalled(t, "CreateSession", mock.Anything)
}

func TestSessionService_StartSession_RepositoryError(t *testing.T) {
	service, mockRepo, _ := newTestSessionService()

	mockRepo.On("GetActiveSession", uint(1)).Return(nil, errors.New("db down"))

	_, err := service.StartSession(1)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSessionService_EndSession_Success(t *testing.T) {
	service, mockRepo, mockPub := newTestSessionService()

	mockRepo.On("EndSession", uint(1), "s1").Return(int64(1), nil)
	mockPub.On("Publish", uint(1), events.SessionEnded, "s1").Return()

	err := service.EndSession(1, "s1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestSessionService_EndSession_AlreadyEnded(t *testing.T) {
	service, mockRepo, mockPub := newTestSessionService()

	mockRepo.On("EndSession", uint(1), "s1").Return(int64(0), nil)

	err := service.EndSession(1, "s1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already ended")
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_EndSession_OtherUser(t *testing.T) {
	service, mockRepo, _ := newTestSessionService()

	// The update filters on both session id and user id, so a cross-user
	// end affects zero rows and surfaces as the same conflict.
	mockRepo.On("EndSession", uint(2), "s1").Return(int64(0), nil)

	err := service.EndSession(2, "s1")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSessionService_GetActiveSession_None(t *testing.T) {
	service, mockRepo, _ := newTestSessionService()

	mockRepo.On("GetActiveSession", uint(1)).Return(nil, nil)

	session, err := service.GetActiveSession(1)
	assert.NoError(t, err)
	assert.Nil(t, session)
	mockRepo.AssertExpectations(t)
}
