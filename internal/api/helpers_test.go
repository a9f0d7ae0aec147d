package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cradle/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const testSecretKey = "unit-test-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, t.TempDir(), testSecretKey, zerolog.Nop())
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, target string, payload interface{}) *http.Response {
	t.Helper()
	return performJSONWithToken(t, app, method, target, payload, "")
}

func performJSONWithToken(t *testing.T, app *fiber.App, method string, target string, payload interface{}, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, target, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()

	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %q: %v", raw, err)
	}
}

func wantStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		t.Fatalf("expected status %d, got %d", status, response.StatusCode)
	}
}

func wantErrorMessage(t *testing.T, response *http.Response, message string) {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, response, &body)
	if body.Error != message {
		t.Fatalf("expected error %q, got %q", message, body.Error)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	response := performJSON(t, app, fiber.MethodPost, "/api/register", fiber.Map{
		"username": username,
		"password": "pass-" + username,
	})
	wantStatus(t, response, fiber.StatusOK)

	var body struct {
		UserID string `json:"userId"`
	}
	decodeBody(t, response, &body)
	if body.UserID == "" {
		t.Fatalf("register %s returned no user id", username)
	}
	return body.UserID
}

func loginTestUser(t *testing.T, app *fiber.App, username string) (string, string) {
	t.Helper()

	response := performJSON(t, app, fiber.MethodPost, "/api/login", fiber.Map{
		"username": username,
		"password": "pass-" + username,
	})
	wantStatus(t, response, fiber.StatusOK)

	var body struct {
		UserID string `json:"userId"`
		Token  string `json:"token"`
	}
	decodeBody(t, response, &body)
	if body.UserID == "" || body.Token == "" {
		t.Fatalf("login %s returned incomplete session: %+v", username, body)
	}
	return body.UserID, body.Token
}
