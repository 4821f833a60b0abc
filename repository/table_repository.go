package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) FindAll() ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.DiningTable, error) {
	var table entity.DiningTable
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) Create(table *entity.DiningTable) error {
	return r.DB.Create(table).Error
}

func (r *TableRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.DiningTable{}).Where("id = ?", id).
		Update("status", status).Error
}
