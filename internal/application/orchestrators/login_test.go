package orchestrators

import (
	"context"
	"testing"

	storageAccount "peakdispatch/internal/adapters/storage/account"
	"peakdispatch/internal/domain/account"
)

func fixedAdminStore(t *testing.T) *storageAccount.FixedStore {
	t.Helper()
	a := account.Account{ID: "admin-1", Email: "admin@peakdispatch.com", Role: account.RoleAdmin}
	if err := a.SetPassword("Admin@123"); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return storageAccount.NewFixedStore(a)
}

// TestExecuteLogin_Valid tests a successful fixed-account login.
func TestExecuteLogin_Valid(t *testing.T) {
	deps := LoginDeps{AccountStore: fixedAdminStore(t)}
	result, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "admin@peakdispatch.com",
		Password: "Admin@123",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Role != account.RoleAdmin {
		t.Errorf("expected role=admin, got %q", result.Role)
	}
	if result.AccountID != "admin-1" {
		t.Errorf("expected AccountID=admin-1, got %q", result.AccountID)
	}
}

// TestExecuteLogin_CaseInsensitiveEmail tests that email matching ignores case.
func TestExecuteLogin_CaseInsensitiveEmail(t *testing.T) {
	deps := LoginDeps{AccountStore: fixedAdminStore(t)}
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "Admin@PeakDispatch.com",
		Password: "Admin@123",
	}, deps)
	if err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}
}

// TestExecuteLogin_WrongPassword tests the uniform failure error.
func TestExecuteLogin_WrongPassword(t *testing.T) {
	deps := LoginDeps{AccountStore: fixedAdminStore(t)}
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "admin@peakdispatch.com",
		Password: "nope",
	}, deps)
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestExecuteLogin_UnknownEmail tests that an unknown email fails identically.
func TestExecuteLogin_UnknownEmail(t *testing.T) {
	deps := LoginDeps{AccountStore: fixedAdminStore(t)}
	_, err := ExecuteLogin(context.Background(), LoginInput{
		Email:    "someone@else.com",
		Password: "Admin@123",
	}, deps)
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// TestExecuteLogin_EmptyInput tests missing fields.
func TestExecuteLogin_EmptyInput(t *testing.T) {
	deps := LoginDeps{AccountStore: fixedAdminStore(t)}
	for _, input := range []LoginInput{{}, {Email: "admin@peakdispatch.com"}, {Password: "Admin@123"}} {
		if _, err := ExecuteLogin(context.Background(), input, deps); err != ErrInvalidCredentials {
			t.Errorf("input %+v: expected ErrInvalidCredentials, got %v", input, err)
		}
	}
}
