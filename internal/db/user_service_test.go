package db

import (
	"errors"
	"testing"

	"github.com/aldawsari/shopdesk/internal/models"
)

func TestAuthenticate(t *testing.T) {
	openTestDB(t)
	seedUser(t, "sara@shop.local", models.RoleEmployee)

	user, err := Authenticate("Sara@Shop.Local", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Email != "sara@shop.local" {
		t.Errorf("email = %q", user.Email)
	}

	if _, err := Authenticate("sara@shop.local", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := Authenticate("nobody@shop.local", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateUserValidatesRole(t *testing.T) {
	openTestDB(t)

	_, err := CreateUser(CreateUserRequest{
		Email:    "x@shop.local",
		Role:     "janitor",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestGetUserProfile(t *testing.T) {
	openTestDB(t)
	user := seedUser(t, "sara@shop.local", models.RoleManager)

	name, role, err := GetUserProfile(user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if name != "Test User" || role != models.RoleManager {
		t.Errorf("profile = %q/%q", name, role)
	}

	if _, _, err := GetUserProfile("missing-id"); !IsNotFound(err) {
		t.Errorf("missing profile: err = %v, want record-not-found", err)
	}
}

func TestEnsureAdminOnlySeedsEmptyTable(t *testing.T) {
	openTestDB(t)

	admin, err := EnsureAdmin("admin@shop.local", "changeme1")
	if err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if admin == nil || admin.Role != models.RoleAdmin {
		t.Fatalf("admin = %+v", admin)
	}

	again, err := EnsureAdmin("other@shop.local", "changeme1")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if again != nil {
		t.Error("ensure admin must be a no-op when users exist")
	}
}
