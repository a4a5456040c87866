package api

import (
	"net/http"
	"testing"
)

func TestRegisterIssuesTokenAndNormalizesEmail(t *testing.T) {
	app := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "  QA-Guardian@CareBond.Local ",
		"password": "Password1",
		"role":     "guardian",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	payload := decodeBody(t, response)
	if payload["token"] == "" {
		t.Fatal("expected a token in the register response")
	}
	user, _ := payload["user"].(map[string]any)
	if user["email"] != "qa-guardian@carebond.local" {
		t.Fatalf("expected normalized email, got %v", user["email"])
	}
	if user["role"] != "guardian" {
		t.Fatalf("expected guardian role, got %v", user["role"])
	}
	if user["onboardingCompleted"] != false {
		t.Fatal("expected onboardingCompleted to start false")
	}
}

func TestRegisterRejectsWeakPasswordAndDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	weak := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "weak@carebond.local",
		"password": "short",
		"role":     "guardian",
	})
	if weak.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for weak password, got %d", weak.StatusCode)
	}
	weak.Body.Close()

	registerTestUser(t, app, "taken@carebond.local", "guardian")
	duplicate := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "Taken@CareBond.Local",
		"password": "Password1",
		"role":     "caregiver",
	})
	if duplicate.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409 for duplicate email, got %d", duplicate.StatusCode)
	}
	payload := decodeBody(t, duplicate)
	if payload["error"] != "error.email_taken" {
		t.Fatalf("expected error.email_taken, got %v", payload["error"])
	}
}

func TestLoginRejectsUnknownUserAndWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerTestUser(t, app, "login@carebond.local", "guardian")

	unknown := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "missing@carebond.local",
		"password": "Password1",
	})
	if unknown.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown user, got %d", unknown.StatusCode)
	}
	unknown.Body.Close()

	wrong := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "login@carebond.local",
		"password": "Password2",
	})
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong password, got %d", wrong.StatusCode)
	}
	wrong.Body.Close()

	valid := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "Login@CareBond.Local",
		"password": "Password1",
	})
	if valid.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for valid login, got %d", valid.StatusCode)
	}
	payload := decodeBody(t, valid)
	if payload["token"] == "" {
		t.Fatal("expected a token in the login response")
	}
}

func TestMeRequiresAuthAndSurvivesOnboardingGate(t *testing.T) {
	app := newTestApp(t)

	anonymous := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	if anonymous.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without a token, got %d", anonymous.StatusCode)
	}
	anonymous.Body.Close()

	token := registerTestUser(t, app, "me@carebond.local", "guardian")

	gated := doJSON(t, app, http.MethodGet, "/api/reports", token, nil)
	if gated.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403 before onboarding, got %d", gated.StatusCode)
	}
	gated.Body.Close()

	me := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	if me.StatusCode != http.StatusOK {
		t.Fatalf("expected /api/auth/me to pass the onboarding gate, got %d", me.StatusCode)
	}
	me.Body.Close()
}

func TestChangePasswordVerifiesCurrentPassword(t *testing.T) {
	app := newTestApp(t)
	token := registerTestUser(t, app, "rotate@carebond.local", "guardian")
	completeGuardianOnboarding(t, app, token, nil)

	wrong := doJSON(t, app, http.MethodPost, "/api/auth/change-password", token, map[string]any{
		"currentPassword": "Password9",
		"newPassword":     "NewPassword1",
	})
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong current password, got %d", wrong.StatusCode)
	}
	wrong.Body.Close()

	ok := doJSON(t, app, http.MethodPost, "/api/auth/change-password", token, map[string]any{
		"currentPassword": "Password1",
		"newPassword":     "NewPassword1",
	})
	if ok.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for password change, got %d", ok.StatusCode)
	}
	ok.Body.Close()

	relogin := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "rotate@carebond.local",
		"password": "NewPassword1",
	})
	if relogin.StatusCode != http.StatusOK {
		t.Fatalf("expected login with the new password to pass, got %d", relogin.StatusCode)
	}
	relogin.Body.Close()
}
