package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/openpolls/backend/internal/client"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/model"
	"github.com/openpolls/backend/internal/repository"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

type testEnv struct {
	repositories repository.Repositories
	services     Services
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	repositories := repository.NewRepositories(newTestDB(t))
	services := NewServices(repositories, dto.Config{}, client.NewClients(dto.Config{}))
	return testEnv{
		repositories: repositories,
		services:     services,
	}
}

var userSeq int

// registerTestUser creates an active account and returns the stored model.
func registerTestUser(t *testing.T, env testEnv, username string) model.User {
	t.Helper()

	userSeq++
	payload, _, err := env.services.Auth().Register(dto.RegisterRequest{
		FirstName:       "Test",
		LastName:        "User",
		Email:           fmt.Sprintf("%s%d@example.com", username, userSeq),
		Username:        fmt.Sprintf("%s%d", username, userSeq),
		Password:        "SecurePass123!",
		PasswordConfirm: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Failed to register test user: %v", err)
	}

	user, err := env.repositories.User().GetByID(payload.UserID)
	if err != nil {
		t.Fatalf("Failed to load test user: %v", err)
	}
	return user
}

func createTestPoll(t *testing.T, env testEnv, creator model.User, optionTexts ...string) dto.PollPayload {
	t.Helper()

	options := make([]dto.CreateOptionEntry, 0, len(optionTexts))
	for _, text := range optionTexts {
		options = append(options, dto.CreateOptionEntry{OptionText: text})
	}

	poll, err := env.services.Poll().Create(creator, dto.CreatePollRequest{
		Title:    "Test Poll",
		Question: "Which one?",
		Options:  options,
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

func expireTestPoll(t *testing.T, env testEnv, creator model.User, pollID string) {
	t.Helper()

	expired := time.Now().UTC().Add(-time.Hour)
	_, err := env.services.Poll().Update(creator, pollID, dto.UpdatePollRequest{ExpiresAt: &expired})
	if err != nil {
		t.Fatalf("Failed to expire test poll: %v", err)
	}
}

func optionIDByText(t *testing.T, poll dto.PollPayload, text string) string {
	t.Helper()

	for _, option := range poll.Options {
		if option.OptionText == text {
			return option.OptionID
		}
	}
	t.Fatalf("Option %q not found on poll %s", text, poll.PollID)
	return ""
}
