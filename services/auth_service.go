package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

type AuthService struct {
	Repo *repository.UserRepository
}

func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{Repo: repo}
}

// Authenticate verifies credentials. The same message covers a missing
// user and a wrong password so login attempts cannot probe usernames.
func (s *AuthService) Authenticate(username, password string) (*entity.User, error) {
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Unauthenticated("invalid username or password")
		}
		return nil, errs.Persistence(err, "login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errs.Unauthenticated("invalid username or password")
	}
	return user, nil
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("user not found")
		}
		return errs.Persistence(err, "change password failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errs.Validation("current password is incorrect")
	}
	if len(newPassword) < 6 {
		return errs.Validation("new password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errs.Persistence(err, "change password failed")
	}
	if err := s.Repo.UpdatePassword(user.ID, string(hashed)); err != nil {
		return errs.Persistence(err, "change password failed")
	}
	return nil
}
