package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/repository/sqlite"
	"github.com/msomdec/resume-forge/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 4, time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "New User", "new@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected email new@example.com, got %s", user.Email)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password must not be stored in clear")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "User 1", "dup@example.com", "password123")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err = auth.Register(ctx, "User 2", "dup@example.com", "password456")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		display  string
		email    string
		password string
	}{
		{"empty name", "", "a@b.com", "password123"},
		{"empty email", "Name", "", "password123"},
		{"empty password", "Name", "a@b.com", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Register(ctx, tc.display, tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, _, err := auth.Register(ctx, "Login User", "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := auth.Login(ctx, "login@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "Login User", "creds@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, _, wrongPw := auth.Login(ctx, "creds@example.com", "wrongpassword")
	if !errors.Is(wrongPw, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong password, got %v", wrongPw)
	}

	_, _, unknown := auth.Login(ctx, "missing@example.com", "password123")
	if !errors.Is(unknown, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown email, got %v", unknown)
	}

	if wrongPw.Error() != unknown.Error() {
		t.Fatalf("error messages must match: %q vs %q", wrongPw, unknown)
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "Token User", "token@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user ID %d, got %d", user.ID, userID)
	}
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	auth := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	db := newTestDB(t)
	// Negative TTL issues tokens that are already expired.
	auth := service.NewAuthService(db.Users(), testJWTSecret, 4, -time.Minute)
	ctx := context.Background()

	_, token, err := auth.Register(ctx, "Expired", "expired@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = auth.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}
