package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/policy"
	"backend/repository"
)

// defaultAdminUsername is the seeded account that can never be demoted or
// deleted, so the system always keeps one admin.
const defaultAdminUsername = "admin"

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

type CreateUserReq struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	CanManage bool   `json:"canManage"`
}

type UpdateUserReq struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	CanManage bool   `json:"canManage"`
}

func (s *UserService) List() ([]entity.User, error) {
	users, err := s.Repo.FindAll()
	if err != nil {
		return nil, errs.Persistence(err, "could not list users")
	}
	return users, nil
}

func (s *UserService) Create(req *CreateUserReq) (*entity.User, error) {
	if len(req.Username) < 3 {
		return nil, errs.Validation("username must be at least 3 characters")
	}
	if len(req.Password) < 6 {
		return nil, errs.Validation("password must be at least 6 characters")
	}
	if !policy.IsValidRole(req.Role) {
		return nil, errs.Validation("invalid role, must be: %s", strings.Join(policy.ValidRoles, ", "))
	}

	if _, err := s.Repo.FindByUsername(req.Username); err == nil {
		return nil, errs.Validation("username already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.Persistence(err, "could not create user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Persistence(err, "could not create user")
	}

	user := &entity.User{
		Username:  req.Username,
		Password:  string(hashed),
		Role:      req.Role,
		CanManage: req.Role == policy.RoleCashier && req.CanManage,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, errs.Persistence(err, "could not create user")
	}
	return user, nil
}

func (s *UserService) Update(id uint, req *UpdateUserReq) (*entity.User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user not found")
		}
		return nil, errs.Persistence(err, "could not update user")
	}

	if user.Username == defaultAdminUsername && req.Role != policy.RoleAdmin {
		return nil, errs.Validation("cannot change the default admin account role")
	}
	if !policy.IsValidRole(req.Role) {
		return nil, errs.Validation("invalid role, must be: %s", strings.Join(policy.ValidRoles, ", "))
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.Repo.FindByUsername(req.Username); err == nil {
			return nil, errs.Validation("username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Persistence(err, "could not update user")
		}
		user.Username = req.Username
	}

	user.Role = req.Role
	user.CanManage = req.Role == policy.RoleCashier && req.CanManage

	if err := s.Repo.Update(user); err != nil {
		return nil, errs.Persistence(err, "could not update user")
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("user not found")
		}
		return errs.Persistence(err, "could not delete user")
	}
	if user.Username == defaultAdminUsername {
		return errs.Validation("cannot delete the default admin account")
	}
	if err := s.Repo.Delete(id); err != nil {
		return errs.Persistence(err, "could not delete user")
	}
	return nil
}

func (s *UserService) ResetPassword(id uint, newPassword string) error {
	if len(newPassword) < 6 {
		return errs.Validation("password must be at least 6 characters")
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("user not found")
		}
		return errs.Persistence(err, "could not reset password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errs.Persistence(err, "could not reset password")
	}
	if err := s.Repo.UpdatePassword(id, string(hashed)); err != nil {
		return errs.Persistence(err, "could not reset password")
	}
	return nil
}
