package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/resume-forge/internal/handler"
	"github.com/msomdec/resume-forge/internal/repository/sqlite"
	"github.com/msomdec/resume-forge/internal/service"
)

func newTestAuth(t *testing.T) (*service.AuthService, string) {
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

	auth := service.NewAuthService(db.Users(), "middleware-test-secret", 4, time.Hour)
	_, token, err := auth.Register(context.Background(), "MW User", "mw@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return auth, token
}

func protectedProbe(auth *service.AuthService) (http.Handler, *bool) {
	reached := new(bool)
	h := handler.RequireAuth(auth, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if handler.UserFromContext(r.Context()) == nil {
			http.Error(w, "no user in context", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	return h, reached
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	auth, token := newTestAuth(t)
	h, reached := protectedProbe(auth)

	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Fatal("expected handler to run")
	}
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	auth, token := newTestAuth(t)
	h, reached := protectedProbe(auth)

	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 via cookie, got %d", rec.Code)
	}
	if !*reached {
		t.Fatal("expected handler to run")
	}
}

func TestRequireAuth_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	auth, token := newTestAuth(t)
	h, reached := protectedProbe(auth)

	// A malformed header must fail even when a valid cookie is present.
	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	req.Header.Set("Authorization", "Token "+token)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed header, got %d", rec.Code)
	}
	if *reached {
		t.Fatal("handler must not run")
	}
}

func TestRequireAuth_Missing(t *testing.T) {
	auth, _ := newTestAuth(t)
	h, reached := protectedProbe(auth)

	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *reached {
		t.Fatal("handler must not run")
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	h, _ := protectedProbe(auth)

	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
