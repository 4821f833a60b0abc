package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillItem snapshots the menu item's name and price at billing time, so
// later catalog edits cannot change a historical bill.
type BillItem struct {
	gorm.Model
	BillID uint `gorm:"index;not null" json:"billId"`
	Bill   Bill `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Name      string          `gorm:"not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
}
