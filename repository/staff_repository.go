package repository

import (
	"backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

// ----- Employees -----

func (r *StaffRepository) FindAllEmployees() ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.DB.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *StaffRepository) FindEmployeeByID(id uint) (*entity.Employee, error) {
	var employee entity.Employee
	if err := r.DB.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *StaffRepository) CreateEmployee(e *entity.Employee) error {
	return r.DB.Create(e).Error
}

func (r *StaffRepository) UpdateEmployee(e *entity.Employee) error {
	return r.DB.Model(&entity.Employee{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"name":           e.Name,
		"position":       e.Position,
		"phone":          e.Phone,
		"email":          e.Email,
		"monthly_salary": e.MonthlySalary,
		"hire_date":      e.HireDate,
		"is_active":      e.IsActive,
	}).Error
}

func (r *StaffRepository) DeleteEmployee(id uint) error {
	return r.DB.Delete(&entity.Employee{}, id).Error
}

// ----- Salary records -----

func (r *StaffRepository) CreateSalaryRecord(rec *entity.SalaryRecord) error {
	return r.DB.Create(rec).Error
}

func (r *StaffRepository) SalaryRecordsForEmployee(employeeID uint, from, to string) ([]entity.SalaryRecord, error) {
	q := r.DB.Where("employee_id = ?", employeeID)
	if from != "" {
		q = q.Where("pay_date >= ?", from)
	}
	if to != "" {
		q = q.Where("pay_date < ?", to)
	}

	var records []entity.SalaryRecord
	err := q.Order("pay_date DESC").Find(&records).Error
	return records, err
}

func (r *StaffRepository) AllSalaryRecords(from, to string) ([]entity.SalaryRecord, error) {
	q := r.DB.Model(&entity.SalaryRecord{})
	if from != "" {
		q = q.Where("pay_date >= ?", from)
	}
	if to != "" {
		q = q.Where("pay_date < ?", to)
	}

	var records []entity.SalaryRecord
	err := q.Order("pay_date DESC").Find(&records).Error
	return records, err
}

// ----- Attendance -----

// UpsertAttendance keeps one row per employee per day; re-marking updates
// the existing status and notes.
func (r *StaffRepository) UpsertAttendance(a *entity.Attendance) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
	}).Create(a).Error
}

func (r *StaffRepository) AttendanceInRange(from, to string, employeeID uint) ([]entity.Attendance, error) {
	q := r.DB.Model(&entity.Attendance{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date < ?", to)
	}
	if employeeID != 0 {
		q = q.Where("employee_id = ?", employeeID)
	}

	var rows []entity.Attendance
	err := q.Order("date DESC").Find(&rows).Error
	return rows, err
}
