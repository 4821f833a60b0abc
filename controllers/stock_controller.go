package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
	"backend/ws"
)

type StockController struct {
	Service *services.StockService
	Hub     *ws.Hub
}

func NewStockController(service *services.StockService, hub *ws.Hub) *StockController {
	return &StockController{Service: service, Hub: hub}
}

// GET /stock
func (ctl *StockController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /stock/:id
func (ctl *StockController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /stock
func (ctl *StockController) Create(c *gin.Context) {
	var req services.StockItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	item, err := ctl.Service.Add(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /stock/:id
func (ctl *StockController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.StockItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	item, err := ctl.Service.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /stock/:id
func (ctl *StockController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "stock item deleted"})
}

type adjustStockReq struct {
	Adjustment int    `json:"adjustment"`
	Reason     string `json:"reason"`
}

// POST /stock/:id/adjust
func (ctl *StockController) Adjust(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req adjustStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	item, err := ctl.Service.AdjustQuantity(uint(id), req.Adjustment, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if ctl.Hub != nil && item.Quantity <= item.ReorderLevel {
		ctl.Hub.Publish(ws.EventStockLow, gin.H{
			"stockItemId":  item.ID,
			"name":         item.Name,
			"quantity":     item.Quantity,
			"reorderLevel": item.ReorderLevel,
		})
	}
	resp.OK(c, item)
}

// GET /stock/:id/history
func (ctl *StockController) History(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	history, err := ctl.Service.History(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, history)
}

// GET /stock/low?threshold=
func (ctl *StockController) Low(c *gin.Context) {
	threshold := -1
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			resp.BadRequest(c, "threshold must be a number")
			return
		}
		threshold = n
	}
	items, err := ctl.Service.LowStock(threshold)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /stock/categories
func (ctl *StockController) Categories(c *gin.Context) {
	categories, err := ctl.Service.Categories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}
