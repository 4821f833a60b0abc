package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/ws"
)

type BillingController struct {
	Service *services.BillingService
	Hub     *ws.Hub
}

func NewBillingController(service *services.BillingService, hub *ws.Hub) *BillingController {
	return &BillingController{Service: service, Hub: hub}
}

// POST /bills
func (ctl *BillingController) Create(c *gin.Context) {
	var req services.CreateBillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	bill, err := ctl.Service.CreateBill(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if ctl.Hub != nil {
		ctl.Hub.Publish(ws.EventBillCreated, gin.H{
			"billId": bill.ID,
			"total":  bill.Total,
			"items":  len(bill.Items),
		})
	}
	resp.Created(c, bill)
}

// GET /bills?from=&to=&paymentMethod=
func (ctl *BillingController) List(c *gin.Context) {
	var filters repository.BillFilters
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "from must be YYYY-MM-DD")
			return
		}
		filters.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "to must be YYYY-MM-DD")
			return
		}
		// Make the bound inclusive of the named day.
		filters.To = t.AddDate(0, 0, 1)
	}
	filters.PaymentMethod = c.Query("paymentMethod")

	bills, err := ctl.Service.List(filters)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bills)
}

// GET /bills/:id
func (ctl *BillingController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	bill, err := ctl.Service.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, bill)
}
