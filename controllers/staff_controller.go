package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type StaffController struct {
	Service *services.StaffService
}

func NewStaffController(service *services.StaffService) *StaffController {
	return &StaffController{Service: service}
}

// GET /employees
func (ctl *StaffController) ListEmployees(c *gin.Context) {
	employees, err := ctl.Service.ListEmployees()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employees)
}

// GET /employees/:id
func (ctl *StaffController) GetEmployee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	employee, err := ctl.Service.GetEmployee(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employee)
}

// POST /employees
func (ctl *StaffController) CreateEmployee(c *gin.Context) {
	var req services.EmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	employee, err := ctl.Service.AddEmployee(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, employee)
}

// PATCH /employees/:id
func (ctl *StaffController) UpdateEmployee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.EmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	employee, err := ctl.Service.UpdateEmployee(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, employee)
}

// DELETE /employees/:id
func (ctl *StaffController) DeleteEmployee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.DeleteEmployee(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "employee deleted"})
}

// POST /salary-records
func (ctl *StaffController) AddSalaryRecord(c *gin.Context) {
	var req services.SalaryRecordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	record, err := ctl.Service.AddSalaryRecord(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, record)
}

// GET /employees/:id/salary?from=&to=
func (ctl *StaffController) SalaryHistory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	history, err := ctl.Service.GetSalaryHistory(uint(id), c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, history)
}

// POST /attendance
func (ctl *StaffController) MarkAttendance(c *gin.Context) {
	var req services.AttendanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	row, err := ctl.Service.MarkAttendance(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, row)
}

// GET /attendance?from=&to=&employeeId=
func (ctl *StaffController) GetAttendance(c *gin.Context) {
	var employeeID uint
	if v := c.Query("employeeId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "employeeId must be a number")
			return
		}
		employeeID = uint(n)
	}
	rows, err := ctl.Service.GetAttendance(c.Query("from"), c.Query("to"), employeeID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}
