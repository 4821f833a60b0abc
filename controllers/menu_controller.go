package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{Service: service}
}

// GET /menu/items
func (ctl *MenuController) ListItems(c *gin.Context) {
	items, err := ctl.Service.ListItems()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/items/:id
func (ctl *MenuController) GetItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Service.GetItem(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	item, err := ctl.Service.AddItem(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /menu/items/:id
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	item, err := ctl.Service.UpdateItem(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.DeleteItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}

// GET /menu/categories
func (ctl *MenuController) ListCategories(c *gin.Context) {
	categories, err := ctl.Service.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, categories)
}

type categoryReq struct {
	Name string `json:"name"`
}

// POST /menu/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	category, err := ctl.Service.AddCategory(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, category)
}
