package policy

import (
	"testing"

	"backend/pkg/errs"
)

func TestEffectiveRoles(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		canManage bool
		want      []string
		wantNot   []string
	}{
		{"admin has everything", RoleAdmin, false, []string{RoleAdmin, RoleManager, RoleCashier, RoleStaff}, nil},
		{"admin ignores canManage", RoleAdmin, true, []string{RoleAdmin, RoleManager, RoleCashier, RoleStaff}, nil},
		{"manager covers cashier", RoleManager, false, []string{RoleManager, RoleCashier}, []string{RoleAdmin, RoleStaff}},
		{"plain cashier", RoleCashier, false, []string{RoleCashier}, []string{RoleManager, RoleAdmin}},
		{"delegated cashier", RoleCashier, true, []string{RoleCashier, RoleManager}, []string{RoleAdmin}},
		{"staff stays staff", RoleStaff, true, []string{RoleStaff}, []string{RoleCashier, RoleManager, RoleAdmin}},
		{"unrecognized role maps to itself", "auditor", false, []string{"auditor"}, []string{RoleStaff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveRoles(tt.role, tt.canManage)
			for _, r := range tt.want {
				if !got[r] {
					t.Errorf("EffectiveRoles(%q, %v) missing %q", tt.role, tt.canManage, r)
				}
			}
			for _, r := range tt.wantNot {
				if got[r] {
					t.Errorf("EffectiveRoles(%q, %v) must not include %q", tt.role, tt.canManage, r)
				}
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	cashier := &Session{UserID: 2, Username: "till", Role: RoleCashier}
	elevated := &Session{UserID: 3, Username: "till2", Role: RoleCashier, CanManage: true}

	t.Run("nil session is unauthenticated", func(t *testing.T) {
		err := Authorize(nil, RoleAdmin)
		if errs.KindOf(err) != errs.KindUnauthenticated {
			t.Fatalf("got %v, want unauthenticated", err)
		}
	})

	t.Run("no required roles just needs a session", func(t *testing.T) {
		if err := Authorize(cashier); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("role outside effective set is forbidden", func(t *testing.T) {
		err := Authorize(cashier, RoleAdmin, RoleManager)
		if errs.KindOf(err) != errs.KindForbidden {
			t.Fatalf("got %v, want forbidden", err)
		}
	})

	t.Run("canManage elevates cashier to manager commands", func(t *testing.T) {
		if err := Authorize(elevated, RoleAdmin, RoleManager); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("forbidden message names the required roles", func(t *testing.T) {
		err := Authorize(cashier, RoleAdmin)
		if err == nil || err.Error() != "access denied, required role: admin" {
			t.Fatalf("got %v", err)
		}
	})
}
