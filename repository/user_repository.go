package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("username ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(user *entity.User) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username":   user.Username,
		"role":       user.Role,
		"can_manage": user.CanManage,
	}).Error
}

func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("password", hashed).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}
