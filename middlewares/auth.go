package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"backend/pkg/resp"
	"backend/policy"
	"backend/utils"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// gates the command on the session's effective role set.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid or expired session")
			c.Abort()
			return
		}

		session := &policy.Session{
			UserID:    claims.UserID,
			Username:  claims.Username,
			Role:      claims.Role,
			CanManage: claims.CanManage,
		}
		utils.SetSession(c, session)

		if err := policy.Authorize(session, requiredRoles...); err != nil {
			resp.Error(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// WSAuthMiddleware accepts the token from the query string as well, since
// the shell's websocket client cannot set headers.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			h := c.GetHeader("Authorization")
			if strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		utils.SetSession(c, &policy.Session{
			UserID:    claims.UserID,
			Username:  claims.Username,
			Role:      claims.Role,
			CanManage: claims.CanManage,
		})
		c.Next()
	}
}
