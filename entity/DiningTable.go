package entity

import (
	"gorm.io/gorm"
)

const (
	TableFree     = "free"
	TableOccupied = "occupied"
	TableReserved = "reserved"
)

type DiningTable struct {
	gorm.Model
	Number   int    `gorm:"uniqueIndex;not null" json:"number"`
	Capacity int    `gorm:"not null;default:4" json:"capacity"`
	Status   string `gorm:"not null;default:free" json:"status"`

	Bills []Bill `gorm:"foreignKey:TableID" json:"-"`
}
