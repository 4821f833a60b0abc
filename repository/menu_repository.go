package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ----- Menu items -----

func (r *MenuRepository) FindAllItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Category").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(item *entity.MenuItem) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":         item.Name,
		"description":  item.Description,
		"price":        item.Price,
		"half_price":   item.HalfPrice,
		"category_id":  item.CategoryID,
		"is_available": item.IsAvailable,
	}).Error
}

func (r *MenuRepository) UpdateItemAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("is_available", available).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// ----- Categories -----

func (r *MenuRepository) FindAllCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Order("name ASC").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.MenuCategory{}, id).Error
}
