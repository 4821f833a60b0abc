package controllers

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"backend/pkg/resp"
	"backend/policy"
	"backend/services"
	"backend/utils"
)

type AuthController struct {
	Service   *services.AuthService
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(service *services.AuthService, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Service: service, JWTSecret: secret, JWTTTL: ttl}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	user, err := ctl.Service.Authenticate(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, user.CanManage, ctl.JWTSecret, ctl.JWTTTL)
	if err != nil {
		resp.Fail(c, 500, "could not issue token")
		return
	}

	resp.OK(c, gin.H{
		"token":          token,
		"user":           user,
		"effectiveRoles": roleList(user.Role, user.CanManage),
	})
}

// GET /auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	session := utils.CurrentSession(c)
	if session == nil {
		resp.Unauthorized(c, "not logged in")
		return
	}
	resp.OK(c, gin.H{
		"id":             session.UserID,
		"username":       session.Username,
		"role":           session.Role,
		"canManage":      session.CanManage,
		"effectiveRoles": roleList(session.Role, session.CanManage),
	})
}

type changePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// POST /auth/change-password
func (ctl *AuthController) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}
	if err := ctl.Service.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}

// POST /auth/logout
//
// Tokens live in the shell; the server has nothing to revoke.
func (ctl *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

func roleList(role string, canManage bool) []string {
	set := policy.EffectiveRoles(role, canManage)
	roles := make([]string, 0, len(set))
	for r := range set {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}
