package services

import (
	"testing"

	"gorm.io/gorm"

	"backend/pkg/errs"
	"backend/policy"
	"backend/repository"
)

func newUserServices(t *testing.T) (*UserService, *AuthService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	repo := repository.NewUserRepository(db)
	return NewUserService(repo), NewAuthService(repo), db
}

func TestCreateUserValidation(t *testing.T) {
	svc, _, _ := newUserServices(t)

	tests := []struct {
		name string
		req  CreateUserReq
	}{
		{"short username", CreateUserReq{Username: "ab", Password: "secret1", Role: policy.RoleStaff}},
		{"short password", CreateUserReq{Username: "ravi", Password: "abc", Role: policy.RoleStaff}},
		{"bad role", CreateUserReq{Username: "ravi", Password: "secret1", Role: "owner"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(&tt.req); !errs.IsKind(err, errs.KindValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _, _ := newUserServices(t)

	if _, err := svc.Create(&CreateUserReq{Username: "ravi", Password: "secret1", Role: policy.RoleStaff}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(&CreateUserReq{Username: "ravi", Password: "secret2", Role: policy.RoleStaff}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("want validation error for duplicate, got %v", err)
	}
}

func TestCanManageOnlyForCashiers(t *testing.T) {
	svc, _, _ := newUserServices(t)

	cashier, err := svc.Create(&CreateUserReq{Username: "meera", Password: "secret1", Role: policy.RoleCashier, CanManage: true})
	if err != nil {
		t.Fatalf("create cashier: %v", err)
	}
	if !cashier.CanManage {
		t.Error("cashier should keep canManage")
	}

	staff, err := svc.Create(&CreateUserReq{Username: "arjun", Password: "secret1", Role: policy.RoleStaff, CanManage: true})
	if err != nil {
		t.Fatalf("create staff: %v", err)
	}
	if staff.CanManage {
		t.Error("canManage must be dropped for non-cashiers")
	}

	// Demoting a cashier to staff clears the flag too.
	updated, err := svc.Update(cashier.ID, &UpdateUserReq{Role: policy.RoleStaff, CanManage: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CanManage {
		t.Error("canManage must be cleared on role change away from cashier")
	}
}

func TestDefaultAdminProtected(t *testing.T) {
	svc, _, _ := newUserServices(t)

	admin, err := svc.Create(&CreateUserReq{Username: "admin", Password: "admin123", Role: policy.RoleAdmin})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	if err := svc.Delete(admin.ID); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("deleting the admin account should fail, got %v", err)
	}
	if _, err := svc.Update(admin.ID, &UpdateUserReq{Role: policy.RoleStaff}); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("demoting the admin account should fail, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, auth, _ := newUserServices(t)

	if _, err := svc.Create(&CreateUserReq{Username: "meera", Password: "secret1", Role: policy.RoleCashier}); err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := auth.Authenticate("meera", "secret1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Role != policy.RoleCashier {
		t.Errorf("role = %q", user.Role)
	}

	// Wrong password and unknown user must be indistinguishable.
	_, badPass := auth.Authenticate("meera", "wrong")
	_, badUser := auth.Authenticate("ghost", "secret1")
	if !errs.IsKind(badPass, errs.KindUnauthenticated) || !errs.IsKind(badUser, errs.KindUnauthenticated) {
		t.Fatalf("want unauthenticated for both, got %v / %v", badPass, badUser)
	}
	if badPass.Error() != badUser.Error() {
		t.Errorf("login failures leak username existence: %q vs %q", badPass, badUser)
	}
}

func TestChangePassword(t *testing.T) {
	svc, auth, _ := newUserServices(t)

	user, err := svc.Create(&CreateUserReq{Username: "arjun", Password: "secret1", Role: policy.RoleStaff})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := auth.ChangePassword(user.ID, "wrong", "newsecret"); !errs.IsKind(err, errs.KindValidation) {
		t.Fatalf("wrong old password should fail, got %v", err)
	}
	if err := auth.ChangePassword(user.ID, "secret1", "newsecret"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := auth.Authenticate("arjun", "newsecret"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
}
