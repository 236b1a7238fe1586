package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, DisplayName: "Resume Owner", PasswordHash: "hash"}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestResumeRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "owner@example.com")

	resume := domain.DefaultResume(user.ID)
	resume.Summary = "Backend engineer."
	resume.Skills = []string{"Go", "SQL"}
	resume.Education = []domain.EducationEntry{{School: "State University", Degree: "BSc"}}

	if err := repo.Create(ctx, resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resume.ID == 0 {
		t.Fatal("expected resume ID to be set after create")
	}

	got, err := repo.GetByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if got.Summary != "Backend engineer." {
		t.Fatalf("expected summary to round-trip, got %q", got.Summary)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "Go" {
		t.Fatalf("expected skills to round-trip, got %v", got.Skills)
	}
	if len(got.Education) != 1 || got.Education[0].School != "State University" {
		t.Fatalf("expected education to round-trip, got %v", got.Education)
	}
	if len(got.SectionOrder) != 9 {
		t.Fatalf("expected 9 sections in order, got %d", len(got.SectionOrder))
	}
}

func TestResumeRepository_OneResumePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "unique@example.com")

	if err := repo.Create(ctx, domain.DefaultResume(user.ID)); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	err := repo.Create(ctx, domain.DefaultResume(user.ID))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for second resume, got %v", err)
	}
}

func TestResumeRepository_GetByUser_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)

	_, err := repo.GetByUser(context.Background(), 12345)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResumeRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "update@example.com")

	resume := domain.DefaultResume(user.ID)
	if err := repo.Create(ctx, resume); err != nil {
		t.Fatalf("Create: %v", err)
	}

	resume.Summary = "Updated summary."
	resume.Languages = []string{"English", "French"}
	if err := repo.Update(ctx, resume); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if got.Summary != "Updated summary." {
		t.Fatalf("expected updated summary, got %q", got.Summary)
	}
	if len(got.Languages) != 2 {
		t.Fatalf("expected 2 languages, got %v", got.Languages)
	}
}

func TestResumeRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)

	missing := domain.DefaultResume(1)
	missing.ID = 9999
	err := repo.Update(context.Background(), missing)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResumeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewResumeRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "delete@example.com")

	resume := domain.DefaultResume(user.ID)
	if err := repo.Create(ctx, resume); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, resume.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByUser(ctx, user.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	err = repo.Delete(ctx, resume.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
