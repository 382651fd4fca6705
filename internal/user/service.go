package user

import (
	"errors"
	"log"

	"github.com/sebasquinv/PokerLedger/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(user User, email string) (string, error) {
	if user.Username == "" {
		user.Username = DeriveUsername(email)
	}
	if user.Username == "" {
		return "", apperrors.NewAppError(400, "username or email required", nil)
	}

	userRetrieved, err := u.repo.CreateUser(user.Username, user.Password)
	if err != nil {
		return "", err
	}

	if err := u.repo.UpsertProfile(userRetrieved.ID, userRetrieved.Username, email); err != nil {
		return "", apperrors.NewAppError(500, "error creating profile", err)
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(user User) (string, error) {
	userRetrieved, err := u.repo.ValidateUser(user.Username, user.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	// Profile creation is lazy; a login from before profiles existed
	// backfills the row. Failure here must not block the login.
	if err := u.repo.UpsertProfile(userRetrieved.ID, userRetrieved.Username, ""); err != nil {
		log.Println("error upserting profile on login:", err)
	}

	token, errJWT := GenerateJWT(userRetrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetProfile(userID uint) (*ProfileResponse, error) {
	profile, err := u.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		userRetrieved, errUser := u.repo.GetUser(userID)
		if errUser != nil {
			return nil, errUser
		}
		if userRetrieved == nil {
			return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
		}
		if err := u.repo.UpsertProfile(userID, userRetrieved.Username, ""); err != nil {
			return nil, apperrors.NewAppError(500, "error creating profile", err)
		}
		profile, err = u.repo.GetProfile(userID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, apperrors.NewAppError(500, "profile not found after upsert", nil)
		}
	}

	response := &ProfileResponse{
		Username:  profile.Username,
		CreatedAt: profile.CreatedAt,
	}
	if profile.Email != nil {
		response.Email = *profile.Email
	}
	return response, nil
}
