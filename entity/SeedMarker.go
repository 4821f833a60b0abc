package entity

import (
	"gorm.io/gorm"
)

// SeedMarker records which seed steps already ran, keyed by a monotonically
// increasing version, so startup seeding is idempotent.
type SeedMarker struct {
	gorm.Model
	Version int `gorm:"uniqueIndex;not null" json:"version"`
}
