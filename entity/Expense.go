package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`

	// Expense date as YYYY-MM-DD; range queries compare lexicographically.
	Date string `gorm:"not null" json:"date"`

	Notes string `json:"notes"`
}
