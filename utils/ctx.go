package utils

import (
	"github.com/gin-gonic/gin"

	"backend/policy"
)

const sessionKey = "session"

// SetSession attaches the authenticated session to the request context.
func SetSession(c *gin.Context, s *policy.Session) {
	c.Set(sessionKey, s)
}

// CurrentSession returns the session threaded through the command, or nil
// when the request carried no valid token.
func CurrentSession(c *gin.Context) *policy.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*policy.Session); ok {
			return s
		}
	}
	return nil
}

func CurrentUserID(c *gin.Context) uint {
	if s := CurrentSession(c); s != nil {
		return s.UserID
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	if s := CurrentSession(c); s != nil {
		return s.Role
	}
	return ""
}
