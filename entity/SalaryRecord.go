package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalaryRecord struct {
	gorm.Model
	EmployeeID uint     `gorm:"index;not null" json:"employeeId"`
	Employee   Employee `json:"-"`

	// Name snapshot so payroll history survives employee edits.
	EmployeeName string          `gorm:"not null" json:"employeeName"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PayDate      string          `gorm:"not null" json:"payDate"`
	Notes        string          `json:"notes"`
}
