package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/openpolls/backend/internal/client"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/repository"
	"github.com/openpolls/backend/internal/service"
	"gorm.io/gorm"
)

type testServer struct {
	echo         *echo.Echo
	repositories repository.Repositories
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A pooled second connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	repositories := repository.NewRepositories(db)
	services := service.NewServices(repositories, dto.Config{}, client.NewClients(dto.Config{}))

	e := echo.New()
	NewControllers(services).Route(e)

	return testServer{
		echo:         e,
		repositories: repositories,
	}
}

// request performs an in-process HTTP request. A non-empty token is sent
// as a bearer credential, and a non-nil body is serialized as JSON.
func (s testServer) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reader = strings.NewReader(string(encoded))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

var userSeq int

type testAccount struct {
	UserID   string
	Email    string
	Username string
	Token    string
}

// registerAccount signs up a user through the API and returns the issued
// token along with the identifiers needed by later requests.
func registerAccount(t *testing.T, s testServer, username string) testAccount {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("%s%d@example.com", username, userSeq)
	uniqueName := fmt.Sprintf("%s%d", username, userSeq)

	rec := s.request(t, http.MethodPost, "/api/v1/auth/register", "", echo.Map{
		"first_name":       "Test",
		"last_name":        "User",
		"email":            email,
		"username":         uniqueName,
		"password":         "SecurePass123!",
		"password_confirm": "SecurePass123!",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Registration failed with status %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	user := body["user"].(map[string]any)
	return testAccount{
		UserID:   user["user_id"].(string),
		Email:    email,
		Username: uniqueName,
		Token:    body["token"].(string),
	}
}

// promoteToStaff flips the staff flag directly, as an operator would.
func promoteToStaff(t *testing.T, s testServer, userID string) {
	t.Helper()

	user, err := s.repositories.User().GetByID(userID)
	if err != nil {
		t.Fatalf("Failed to load user: %v", err)
	}
	user.IsStaff = true
	if _, err := s.repositories.User().Save(user); err != nil {
		t.Fatalf("Failed to promote user: %v", err)
	}
}

func createPollViaAPI(t *testing.T, s testServer, token string, options ...string) map[string]any {
	t.Helper()

	entries := make([]echo.Map, 0, len(options))
	for _, text := range options {
		entries = append(entries, echo.Map{"option_text": text})
	}

	rec := s.request(t, http.MethodPost, "/api/v1/polls", token, echo.Map{
		"title":    "Favorite Language",
		"question": "Which language do you prefer?",
		"options":  entries,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Poll creation failed with status %d: %s", rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec)
}

func pollOptionID(t *testing.T, poll map[string]any, text string) string {
	t.Helper()

	for _, raw := range poll["options"].([]any) {
		option := raw.(map[string]any)
		if option["option_text"] == text {
			return option["option_id"].(string)
		}
	}
	t.Fatalf("Option %q not found", text)
	return ""
}
