package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// Optional discounted unit price, selectable instead of Price.
	HalfPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"halfPrice,omitempty"`

	CategoryID *uint        `json:"categoryId,omitempty"`
	Category   MenuCategory `json:"-"` // preload when the name is needed

	IsAvailable bool `gorm:"not null;default:true" json:"isAvailable"`

	BillItems []BillItem `gorm:"foreignKey:MenuItemID" json:"-"`
}
