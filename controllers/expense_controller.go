package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type ExpenseController struct {
	Service *services.ExpenseService
}

func NewExpenseController(service *services.ExpenseService) *ExpenseController {
	return &ExpenseController{Service: service}
}

// GET /expenses?from=&to=
func (ctl *ExpenseController) List(c *gin.Context) {
	expenses, err := ctl.Service.List(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, expenses)
}

// GET /expenses/:id
func (ctl *ExpenseController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	expense, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, expense)
}

// POST /expenses
func (ctl *ExpenseController) Create(c *gin.Context) {
	var req services.ExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	expense, err := ctl.Service.Add(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, expense)
}

// PATCH /expenses/:id
func (ctl *ExpenseController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	expense, err := ctl.Service.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, expense)
}

// DELETE /expenses/:id
func (ctl *ExpenseController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "expense deleted"})
}

// GET /expenses/categories
func (ctl *ExpenseController) Categories(c *gin.Context) {
	categories, err := ctl.Service.Categories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /expenses/summary?from=&to=
func (ctl *ExpenseController) Summary(c *gin.Context) {
	summary, err := ctl.Service.Summary(c.Query("from"), c.Query("to"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, summary)
}
