package user

import (
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(username, password string) (*User, error) {
	args := m.Called(username, password)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) ValidateUser(username, password string) (*User, error) {
	args := m.Called(username, password)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) GetUser(id uint) (*User, error) {
	args := m.Called(id)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) UpsertProfile(userID uint, username, email string) error {
	args := m.Called(userID, username, email)
	return args.Error(0)
}

func (m *MockUserRepository) GetProfile(userID uint) (*Profile, error) {
	args := m.Called(userID)
	var p *Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*Profile)
	}
	return p, args.Error(1)
}
