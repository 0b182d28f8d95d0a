package testhelpers

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/service"
)

// TestJWTSecret signs tokens in tests.
const TestJWTSecret = "test-jwt-secret"

// NopNotifier satisfies service.Notifier without sending anything.
type NopNotifier struct {
	Sent []string
}

func (n *NopNotifier) SendPasswordReset(email, name string) error {
	n.Sent = append(n.Sent, email)
	return nil
}

// NewAuthService builds an AuthService against the given database with the
// test signing secret and a no-op notifier.
func NewAuthService(db *gorm.DB) *service.AuthService {
	return service.NewAuthService(db, TestJWTSecret, &NopNotifier{})
}

var userSeq int

// CreateTestUser registers an account through the real registration path so
// the profile row and password hash exist, and returns the user with a
// valid token.
func CreateTestUser(t *testing.T, db *gorm.DB) (*models.User, string) {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("user%d@example.com", userSeq)

	auth := NewAuthService(db)
	user, token, err := auth.Register(context.Background(), "Test User", email, "password123")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user, token
}
