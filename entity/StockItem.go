package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StockItem struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null;default:General" json:"category"`

	// Never negative; mutated only through the adjustment operation.
	Quantity int `gorm:"not null;default:0" json:"quantity"`

	Unit         string          `gorm:"not null;default:pcs" json:"unit"`
	ReorderLevel int             `gorm:"not null;default:5" json:"reorderLevel"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unitPrice"`

	Adjustments []StockAdjustment `gorm:"foreignKey:StockItemID" json:"-"`
}
