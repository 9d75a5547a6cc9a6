package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		role:     domain.RoleAdmin,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the store and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, users repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:        domain.NormalizeEmail(b.email),
		PasswordHash: string(hashedPassword),
		Role:         b.role,
		CreatedAt:    time.Now(),
	}

	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// BuildAndAuthenticate creates a user, logs in via the API, and returns the
// user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.Repos.User)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": rawPassword,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, result.Token
}

// FeedbackBuilder creates test feedback submissions
type FeedbackBuilder struct {
	name      string
	createdAt time.Time
}

// NewFeedbackBuilder creates a new FeedbackBuilder with default values
func NewFeedbackBuilder() *FeedbackBuilder {
	return &FeedbackBuilder{
		name:      fmt.Sprintf("attendee_%s", uuid.New().String()[:8]),
		createdAt: time.Now(),
	}
}

// WithName sets the submitter name
func (b *FeedbackBuilder) WithName(name string) *FeedbackBuilder {
	b.name = name
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *FeedbackBuilder) WithCreatedAt(at time.Time) *FeedbackBuilder {
	b.createdAt = at
	return b
}

// Build creates the submission in the store
func (b *FeedbackBuilder) Build(t *testing.T, feedback repository.FeedbackRepository) *domain.FeedbackSubmission {
	t.Helper()

	overall := 5
	submission := &domain.FeedbackSubmission{
		Name:          b.name,
		Phone:         "555-0100",
		OverallRating: &overall,
		CreatedAt:     b.createdAt,
	}

	if err := feedback.Create(context.Background(), submission); err != nil {
		t.Fatalf("failed to create feedback submission: %v", err)
	}

	return submission
}
