package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{DB: db}
}

func (r *StockRepository) FindAll() ([]entity.StockItem, error) {
	var items []entity.StockItem
	err := r.DB.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *StockRepository) FindByID(id uint) (*entity.StockItem, error) {
	var item entity.StockItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *StockRepository) Create(item *entity.StockItem) error {
	return r.DB.Create(item).Error
}

func (r *StockRepository) Update(item *entity.StockItem) error {
	return r.DB.Model(&entity.StockItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":          item.Name,
		"category":      item.Category,
		"unit":          item.Unit,
		"reorder_level": item.ReorderLevel,
		"unit_price":    item.UnitPrice,
	}).Error
}

func (r *StockRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.StockItem{}, id).Error
}

// UpdateQuantity and CreateAdjustment run inside the caller's transaction
// so the new quantity and its audit row are all-or-nothing.

func (r *StockRepository) UpdateQuantity(tx *gorm.DB, id uint, qty int) error {
	return tx.Model(&entity.StockItem{}).Where("id = ?", id).Update("quantity", qty).Error
}

func (r *StockRepository) CreateAdjustment(tx *gorm.DB, adj *entity.StockAdjustment) error {
	return tx.Create(adj).Error
}

func (r *StockRepository) AdjustmentsForItem(itemID uint) ([]entity.StockAdjustment, error) {
	var adjs []entity.StockAdjustment
	err := r.DB.Where("stock_item_id = ?", itemID).
		Order("created_at DESC").
		Find(&adjs).Error
	return adjs, err
}

// FindLowStock lists items at or below the threshold; threshold < 0 means
// "each item's own reorder level".
func (r *StockRepository) FindLowStock(threshold int) ([]entity.StockItem, error) {
	var items []entity.StockItem
	q := r.DB.Order("quantity ASC")
	if threshold >= 0 {
		q = q.Where("quantity <= ?", threshold)
	} else {
		q = q.Where("quantity <= reorder_level")
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *StockRepository) DistinctCategories() ([]string, error) {
	var cats []string
	err := r.DB.Model(&entity.StockItem{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &cats).Error
	return cats, err
}
