package controller

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestProfileRoundTrip(t *testing.T) {
	server := newTestServer(t)
	account := registerAccount(t, server, "profile")

	rec := server.request(t, http.MethodGet, "/api/v1/users/profile", account.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Profile failed with status %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["email"] != account.Email {
		t.Errorf("Expected email %s, got %v", account.Email, body["email"])
	}
	if body["full_name"] != "Test User" {
		t.Errorf("Expected full name, got %v", body["full_name"])
	}

	rec = server.request(t, http.MethodPatch, "/api/v1/users/profile", account.Token, echo.Map{
		"first_name": "Renamed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Update failed with status %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeBody(t, rec)["user"].(map[string]any)
	if updated["first_name"] != "Renamed" {
		t.Errorf("Expected renamed user, got %v", updated["first_name"])
	}
}

func TestProfileUpdateConflicts(t *testing.T) {
	server := newTestServer(t)
	first := registerAccount(t, server, "taken")
	second := registerAccount(t, server, "claimer")

	rec := server.request(t, http.MethodPatch, "/api/v1/users/profile", second.Token, echo.Map{
		"email": first.Email,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for taken email, got %d", rec.Code)
	}
	if _, ok := decodeBody(t, rec)["email"]; !ok {
		t.Error("Expected error keyed on email")
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	server := newTestServer(t)
	account := registerAccount(t, server, "rotator")

	rec := server.request(t, http.MethodPost, "/api/v1/users/change_password", account.Token, echo.Map{
		"old_password":     "SecurePass123!",
		"new_password":     "RotatedPass456!",
		"confirm_password": "RotatedPass456!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Change password failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = server.request(t, http.MethodPost, "/api/v1/auth/login", "", echo.Map{
		"email":    account.Email,
		"password": "RotatedPass456!",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("Login with rotated password failed with status %d", rec.Code)
	}
}

func TestDeactivateAccount(t *testing.T) {
	server := newTestServer(t)
	account := registerAccount(t, server, "leaver")

	rec := server.request(t, http.MethodDelete, "/api/v1/users/deactivate_account", account.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Deactivate failed with status %d", rec.Code)
	}

	// Deactivated users can neither authenticate nor log back in.
	rec = server.request(t, http.MethodGet, "/api/v1/users/profile", account.Token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for deactivated user, got %d", rec.Code)
	}
	rec = server.request(t, http.MethodPost, "/api/v1/auth/login", "", echo.Map{
		"email":    account.Email,
		"password": "SecurePass123!",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 login for deactivated user, got %d", rec.Code)
	}
}

func TestAdminEndpoints(t *testing.T) {
	server := newTestServer(t)
	admin := registerAccount(t, server, "admin")
	member := registerAccount(t, server, "member")

	// Regular users are rejected before promotion.
	rec := server.request(t, http.MethodGet, "/api/v1/users/all_users", admin.Token, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("Expected 403 before promotion, got %d", rec.Code)
	}

	promoteToStaff(t, server, admin.UserID)

	rec = server.request(t, http.MethodGet, "/api/v1/users/all_users", admin.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("all_users failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = server.request(t, http.MethodDelete, "/api/v1/users/"+member.UserID+"/delete_user", admin.Token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete_user failed with status %d: %s", rec.Code, rec.Body.String())
	}

	rec = server.request(t, http.MethodGet, "/api/v1/users/profile", member.Token, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for deleted user, got %d", rec.Code)
	}
}
