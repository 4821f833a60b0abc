package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/repository"
)

type StaffService struct {
	Repo *repository.StaffRepository
}

func NewStaffService(repo *repository.StaffRepository) *StaffService {
	return &StaffService{Repo: repo}
}

type EmployeeReq struct {
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	HireDate      string          `json:"hireDate"`
	IsActive      *bool           `json:"isActive"`
}

func (s *StaffService) ListEmployees() ([]entity.Employee, error) {
	employees, err := s.Repo.FindAllEmployees()
	if err != nil {
		return nil, errs.Persistence(err, "could not list employees")
	}
	return employees, nil
}

func (s *StaffService) GetEmployee(id uint) (*entity.Employee, error) {
	employee, err := s.Repo.FindEmployeeByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("employee not found")
		}
		return nil, errs.Persistence(err, "could not load employee")
	}
	return employee, nil
}

func (s *StaffService) AddEmployee(req *EmployeeReq) (*entity.Employee, error) {
	if req.Name == "" {
		return nil, errs.Validation("employee must have a name")
	}
	if req.MonthlySalary.IsNegative() {
		return nil, errs.Validation("monthly salary cannot be negative")
	}

	employee := &entity.Employee{
		Name:          req.Name,
		Position:      req.Position,
		Phone:         req.Phone,
		Email:         req.Email,
		MonthlySalary: req.MonthlySalary,
		HireDate:      req.HireDate,
		IsActive:      true,
	}
	if employee.Position == "" {
		employee.Position = "Staff"
	}
	if employee.HireDate == "" {
		employee.HireDate = time.Now().Format("2006-01-02")
	}
	if err := s.Repo.CreateEmployee(employee); err != nil {
		return nil, errs.Persistence(err, "could not create employee")
	}
	return employee, nil
}

func (s *StaffService) UpdateEmployee(id uint, req *EmployeeReq) (*entity.Employee, error) {
	employee, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errs.Validation("employee must have a name")
	}
	if req.MonthlySalary.IsNegative() {
		return nil, errs.Validation("monthly salary cannot be negative")
	}

	employee.Name = req.Name
	if req.Position != "" {
		employee.Position = req.Position
	}
	employee.Phone = req.Phone
	employee.Email = req.Email
	employee.MonthlySalary = req.MonthlySalary
	if req.HireDate != "" {
		employee.HireDate = req.HireDate
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := s.Repo.UpdateEmployee(employee); err != nil {
		return nil, errs.Persistence(err, "could not update employee")
	}
	return employee, nil
}

func (s *StaffService) DeleteEmployee(id uint) error {
	if _, err := s.GetEmployee(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteEmployee(id); err != nil {
		return errs.Persistence(err, "could not delete employee")
	}
	return nil
}

// ----- Salary -----

type SalaryRecordReq struct {
	EmployeeID uint            `json:"employeeId"`
	Amount     decimal.Decimal `json:"amount"`
	PayDate    string          `json:"payDate"`
	Notes      string          `json:"notes"`
}

func (s *StaffService) AddSalaryRecord(req *SalaryRecordReq) (*entity.SalaryRecord, error) {
	employee, err := s.GetEmployee(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, errs.Validation("salary amount must be positive")
	}
	if req.PayDate == "" {
		return nil, errs.Validation("pay date is required")
	}

	record := &entity.SalaryRecord{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Amount:       req.Amount,
		PayDate:      req.PayDate,
		Notes:        req.Notes,
	}
	if err := s.Repo.CreateSalaryRecord(record); err != nil {
		return nil, errs.Persistence(err, "could not save salary record")
	}
	return record, nil
}

type SalaryHistory struct {
	Employee  *entity.Employee      `json:"employee"`
	Records   []entity.SalaryRecord `json:"records"`
	TotalPaid decimal.Decimal       `json:"totalPaid"`
}

func (s *StaffService) GetSalaryHistory(employeeID uint, from, to string) (*SalaryHistory, error) {
	employee, err := s.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	records, err := s.Repo.SalaryRecordsForEmployee(employeeID, from, to)
	if err != nil {
		return nil, errs.Persistence(err, "could not load salary history")
	}

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return &SalaryHistory{Employee: employee, Records: records, TotalPaid: total}, nil
}

// ----- Attendance -----

type AttendanceReq struct {
	EmployeeID uint   `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

func (s *StaffService) MarkAttendance(req *AttendanceReq) (*entity.Attendance, error) {
	if _, err := s.GetEmployee(req.EmployeeID); err != nil {
		return nil, err
	}

	row := &entity.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if row.Date == "" {
		row.Date = time.Now().Format("2006-01-02")
	}
	if row.Status == "" {
		row.Status = "present"
	}
	if err := s.Repo.UpsertAttendance(row); err != nil {
		return nil, errs.Persistence(err, "could not mark attendance")
	}
	return row, nil
}

func (s *StaffService) GetAttendance(from, to string, employeeID uint) ([]entity.Attendance, error) {
	rows, err := s.Repo.AttendanceInRange(from, to, employeeID)
	if err != nil {
		return nil, errs.Persistence(err, "could not load attendance")
	}
	return rows, nil
}
