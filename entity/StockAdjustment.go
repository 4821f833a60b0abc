package entity

import (
	"gorm.io/gorm"
)

// StockAdjustment is an append-only audit record. One row per quantity
// mutation, written in the same transaction as the update.
type StockAdjustment struct {
	gorm.Model
	StockItemID uint      `gorm:"index;not null" json:"stockItemId"`
	StockItem   StockItem `json:"-"`

	PreviousQty int    `gorm:"not null" json:"previousQty"`
	Adjustment  int    `gorm:"not null" json:"adjustment"`
	NewQty      int    `gorm:"not null" json:"newQty"`
	Reason      string `json:"reason"`
}
