package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/db"
	"github.com/hanbit-dev/carebond/internal/i18n"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app, _ := newTestAppWithDB(t)
	return app
}

func newTestAppWithDB(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	internalDir := filepath.Dir(filepath.Dir(testFile))
	localesDir := filepath.Join(internalDir, "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "carebond-api-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager(i18n.LangKO, localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key", time.UTC, i18nManager, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	payload := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func registerTestUser(t *testing.T, app *fiber.App, email string, role string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "Password1",
		"role":     role,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	payload := decodeBody(t, response)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("register response is missing the auth token")
	}
	return token
}

func completeGuardianOnboarding(t *testing.T, app *fiber.App, token string, medications []string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/onboarding/guardian", token, map[string]any{
		"name":         "김보호",
		"phone":        "010-1234-5678",
		"age":          45,
		"address":      "서울특별시 강남구 테헤란로 123",
		"relationship": "자녀",
		"patientName":  "김환자",
		"patientAge":   80,
		"medications":  medications,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected guardian onboarding status 200, got %d", response.StatusCode)
	}

	payload := decodeBody(t, response)
	patient, _ := payload["patient"].(map[string]any)
	code, _ := patient["matchingCode"].(string)
	if code == "" {
		t.Fatal("guardian onboarding response is missing the matching code")
	}
	return code
}

func completeCaregiverOnboarding(t *testing.T, app *fiber.App, token string, matchingCode string) {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/onboarding/caregiver", token, map[string]any{
		"name":         "박간병",
		"phone":        "010-8765-4321",
		"age":          50,
		"address":      "서울특별시 송파구 올림픽로 300",
		"workplace":    "행복요양센터",
		"matchingCode": matchingCode,
	})
	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected caregiver onboarding status 200, got %d: %s", response.StatusCode, body)
	}
	response.Body.Close()
}

func completeAcquaintanceOnboarding(t *testing.T, app *fiber.App, token string, matchingCode string) {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/onboarding/acquaintance", token, map[string]any{
		"name":         "이지인",
		"phone":        "010-5555-6666",
		"age":          30,
		"relationship": "지인",
		"matchingCode": matchingCode,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected acquaintance onboarding status 200, got %d", response.StatusCode)
	}
	response.Body.Close()
}

// newCareCircle registers a guardian and a caregiver joined to the same
// patient and returns their tokens.
func newCareCircle(t *testing.T, app *fiber.App, medications []string) (string, string) {
	t.Helper()

	guardianToken := registerTestUser(t, app, fmt.Sprintf("guardian-%d@carebond.local", time.Now().UnixNano()), "guardian")
	matchingCode := completeGuardianOnboarding(t, app, guardianToken, medications)

	caregiverToken := registerTestUser(t, app, fmt.Sprintf("caregiver-%d@carebond.local", time.Now().UnixNano()), "caregiver")
	completeCaregiverOnboarding(t, app, caregiverToken, matchingCode)
	return guardianToken, caregiverToken
}
