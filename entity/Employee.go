package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Name          string          `gorm:"not null" json:"name"`
	Position      string          `gorm:"not null;default:Staff" json:"position"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"monthlySalary"`
	HireDate      string          `gorm:"not null" json:"hireDate"`
	IsActive      bool            `gorm:"not null;default:true" json:"isActive"`

	SalaryRecords []SalaryRecord `gorm:"foreignKey:EmployeeID" json:"-"`
	Attendance    []Attendance   `gorm:"foreignKey:EmployeeID" json:"-"`
}
