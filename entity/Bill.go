package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

// Bill is immutable once created: the monetary fields are derived at commit
// time and never recomputed. Corrections go through a new bill, not an edit.
type Bill struct {
	gorm.Model
	TableID      *uint        `json:"tableId,omitempty"`
	Table        *DiningTable `json:"-"`
	CustomerName string       `json:"customerName"`

	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax"`
	Discount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	PaymentMethod string `gorm:"not null;default:cash" json:"paymentMethod"`
	Status        string `gorm:"not null;default:completed" json:"status"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}
