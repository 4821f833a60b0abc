package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/entity"
	"backend/pkg/errs"
	"backend/pkg/resp"
	"backend/repository"
)

type TableController struct {
	Repo *repository.TableRepository
}

func NewTableController(repo *repository.TableRepository) *TableController {
	return &TableController{Repo: repo}
}

// GET /tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, errs.Persistence(err, "could not list tables"))
		return
	}
	resp.OK(c, tables)
}

type createTableReq struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

// POST /tables
func (ctl *TableController) Create(c *gin.Context) {
	var req createTableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	if req.Number <= 0 {
		resp.Error(c, errs.Validation("table number must be positive"))
		return
	}
	table := &entity.DiningTable{Number: req.Number, Capacity: req.Capacity}
	if table.Capacity <= 0 {
		table.Capacity = 4
	}
	if err := ctl.Repo.Create(table); err != nil {
		resp.Error(c, errs.Persistence(err, "could not create table"))
		return
	}
	resp.Created(c, table)
}

type tableStatusReq struct {
	Status string `json:"status"`
}

// PATCH /tables/:id/status
func (ctl *TableController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req tableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	switch req.Status {
	case entity.TableFree, entity.TableOccupied, entity.TableReserved:
	default:
		resp.Error(c, errs.Validation("unknown table status %q", req.Status))
		return
	}

	if _, err := ctl.Repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Error(c, errs.NotFound("table %d not found", id))
			return
		}
		resp.Error(c, errs.Persistence(err, "could not load table"))
		return
	}
	if err := ctl.Repo.UpdateStatus(uint(id), req.Status); err != nil {
		resp.Error(c, errs.Persistence(err, "could not update table status"))
		return
	}
	resp.OK(c, gin.H{"message": "table status updated"})
}
