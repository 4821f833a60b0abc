package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/services"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{Service: service}
}

// GET /users
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /users
func (ctl *UserController) Create(c *gin.Context) {
	var req services.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	user, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// PATCH /users/:id
func (ctl *UserController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	user, err := ctl.Service.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}

type resetPasswordReq struct {
	NewPassword string `json:"newPassword"`
}

// POST /users/:id/reset-password
func (ctl *UserController) ResetPassword(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	if err := ctl.Service.ResetPassword(uint(id), req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password reset"})
}
