package policy

import (
	"strings"

	"backend/pkg/errs"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleStaff   = "staff"
)

var ValidRoles = []string{RoleAdmin, RoleManager, RoleCashier, RoleStaff}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the authenticated identity threaded through every command.
type Session struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CanManage bool   `json:"canManage"`
}

// EffectiveRoles resolves the role hierarchy. canManage only elevates a
// cashier to manager-equivalent access; it has no meaning for other roles.
func EffectiveRoles(role string, canManage bool) map[string]bool {
	switch role {
	case RoleAdmin:
		return map[string]bool{RoleAdmin: true, RoleManager: true, RoleCashier: true, RoleStaff: true}
	case RoleManager:
		return map[string]bool{RoleManager: true, RoleCashier: true}
	case RoleCashier:
		if canManage {
			return map[string]bool{RoleCashier: true, RoleManager: true}
		}
		return map[string]bool{RoleCashier: true}
	default:
		return map[string]bool{role: true}
	}
}

// Authorize gates a command on the session's effective role set. A nil
// session fails as unauthenticated; an empty required list only demands a
// session.
func Authorize(session *Session, required ...string) error {
	if session == nil {
		return errs.Unauthenticated("authentication required")
	}
	if len(required) == 0 {
		return nil
	}
	effective := EffectiveRoles(session.Role, session.CanManage)
	for _, r := range required {
		if effective[r] {
			return nil
		}
	}
	return errs.Forbidden("access denied, required role: %s", strings.Join(required, " or "))
}
