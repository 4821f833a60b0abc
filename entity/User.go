package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:staff" json:"role"`

	// Delegation flag, meaningful only while Role == "cashier".
	CanManage bool `gorm:"not null;default:false" json:"canManage"`
}
