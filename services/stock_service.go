package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

type StockService struct {
	DB   *gorm.DB
	Repo *repository.StockRepository
}

func NewStockService(db *gorm.DB, repo *repository.StockRepository) *StockService {
	return &StockService{DB: db, Repo: repo}
}

type StockItemReq struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	ReorderLevel int             `json:"reorderLevel"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

func (s *StockService) List() ([]entity.StockItem, error) {
	items, err := s.Repo.FindAll()
	if err != nil {
		return nil, errs.Persistence(err, "could not list stock items")
	}
	return items, nil
}

func (s *StockService) Get(id uint) (*entity.StockItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("stock item not found")
		}
		return nil, errs.Persistence(err, "could not load stock item")
	}
	return item, nil
}

func (s *StockService) Add(req *StockItemReq) (*entity.StockItem, error) {
	if req.Name == "" {
		return nil, errs.Validation("stock item must have a name")
	}
	if req.Quantity < 0 {
		return nil, errs.Validation("quantity cannot be negative")
	}
	if req.UnitPrice.IsNegative() {
		return nil, errs.Validation("unit price cannot be negative")
	}

	item := &entity.StockItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
	}
	if item.Category == "" {
		item.Category = "General"
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if item.ReorderLevel == 0 {
		item.ReorderLevel = 5
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, errs.Persistence(err, "could not create stock item")
	}
	return item, nil
}

// Update edits the descriptive fields. Quantity is deliberately not
// touched here; it only moves through AdjustQuantity so every change
// leaves an audit row.
func (s *StockService) Update(id uint, req *StockItemReq) (*entity.StockItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errs.Validation("stock item must have a name")
	}
	if req.UnitPrice.IsNegative() {
		return nil, errs.Validation("unit price cannot be negative")
	}

	item.Name = req.Name
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ReorderLevel > 0 {
		item.ReorderLevel = req.ReorderLevel
	}
	item.UnitPrice = req.UnitPrice

	if err := s.Repo.Update(item); err != nil {
		return nil, errs.Persistence(err, "could not update stock item")
	}
	return item, nil
}

func (s *StockService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return errs.Persistence(err, "could not delete stock item")
	}
	return nil
}

// AdjustQuantity applies a delta to an item's quantity. A delta that would
// go negative rejects the whole operation; on success the new quantity and
// its audit record commit together.
func (s *StockService) AdjustQuantity(id uint, delta int, reason string) (*entity.StockItem, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	newQty := item.Quantity + delta
	if newQty < 0 {
		return nil, errs.Validation("adjustment would result in negative quantity")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		adj := &entity.StockAdjustment{
			StockItemID: item.ID,
			PreviousQty: item.Quantity,
			Adjustment:  delta,
			NewQty:      newQty,
			Reason:      reason,
		}
		if err := s.Repo.CreateAdjustment(tx, adj); err != nil {
			return err
		}
		return s.Repo.UpdateQuantity(tx, item.ID, newQty)
	})
	if err != nil {
		return nil, errs.Persistence(err, "could not adjust stock quantity")
	}

	item.Quantity = newQty
	return item, nil
}

func (s *StockService) History(id uint) ([]entity.StockAdjustment, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	adjs, err := s.Repo.AdjustmentsForItem(id)
	if err != nil {
		return nil, errs.Persistence(err, "could not load adjustment history")
	}
	return adjs, nil
}

// LowStock lists items at or below threshold; pass a negative threshold to
// compare against each item's own reorder level.
func (s *StockService) LowStock(threshold int) ([]entity.StockItem, error) {
	items, err := s.Repo.FindLowStock(threshold)
	if err != nil {
		return nil, errs.Persistence(err, "could not list low stock")
	}
	return items, nil
}

func (s *StockService) Categories() ([]string, error) {
	cats, err := s.Repo.DistinctCategories()
	if err != nil {
		return nil, errs.Persistence(err, "could not list stock categories")
	}
	return cats, nil
}
