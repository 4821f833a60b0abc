package entity

import (
	"gorm.io/gorm"
)

// Attendance holds one row per employee per day; marking twice updates the
// existing row.
type Attendance struct {
	gorm.Model
	EmployeeID uint     `gorm:"uniqueIndex:idx_attendance_employee_date;not null" json:"employeeId"`
	Employee   Employee `json:"-"`

	Date   string `gorm:"uniqueIndex:idx_attendance_employee_date;not null" json:"date"`
	Status string `gorm:"not null;default:present" json:"status"`
	Notes  string `json:"notes"`
}
