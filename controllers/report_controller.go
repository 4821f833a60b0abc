package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{Service: service}
}

// GET /reports/dashboard?period=
func (ctl *ReportController) Dashboard(c *gin.Context) {
	stats, err := ctl.Service.Dashboard(c.DefaultQuery("period", "today"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /reports/sales?period=
func (ctl *ReportController) Sales(c *gin.Context) {
	report, err := ctl.Service.Sales(c.DefaultQuery("period", "today"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/expenses?period=
func (ctl *ReportController) Expenses(c *gin.Context) {
	report, err := ctl.Service.Expenses(c.DefaultQuery("period", "today"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/profit-loss?period=
func (ctl *ReportController) ProfitLoss(c *gin.Context) {
	report, err := ctl.Service.ProfitLoss(c.DefaultQuery("period", "today"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}

// GET /reports/staff?period=
func (ctl *ReportController) Staff(c *gin.Context) {
	report, err := ctl.Service.Staff(c.DefaultQuery("period", "today"), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, report)
}
