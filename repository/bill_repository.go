package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type BillRepository struct {
	DB *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{DB: db}
}

// Create methods take the transaction handle so the bill header and its
// items commit or roll back together.

func (r *BillRepository) CreateBill(tx *gorm.DB, bill *entity.Bill) error {
	return tx.Create(bill).Error
}

func (r *BillRepository) CreateBillItem(tx *gorm.DB, item *entity.BillItem) error {
	return tx.Create(item).Error
}

// BillFilters narrows List; zero values mean "no filter".
type BillFilters struct {
	From          time.Time
	To            time.Time
	PaymentMethod string
}

func (r *BillRepository) List(f BillFilters) ([]entity.Bill, error) {
	q := r.DB.Model(&entity.Bill{})
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}

	var bills []entity.Bill
	err := q.Order("created_at DESC").Find(&bills).Error
	return bills, err
}

// ListRange returns bills in [from, to) with their items preloaded, for
// the report aggregator.
func (r *BillRepository) ListRange(from, to time.Time) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.DB.
		Preload("Items").
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&bills).Error
	return bills, err
}

func (r *BillRepository) FindWithItems(id uint) (*entity.Bill, error) {
	var bill entity.Bill
	if err := r.DB.Preload("Items").First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *BillRepository) CountItemsForBill(billID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.BillItem{}).Where("bill_id = ?", billID).Count(&n).Error
	return n, err
}
