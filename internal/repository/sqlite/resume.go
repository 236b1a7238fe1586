package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/resume-forge/internal/domain"
)

// ResumeRepository implements domain.ResumeRepository using SQLite.
// Collection fields are stored as JSON text columns; the one-resume-per-user
// invariant is carried by the UNIQUE constraint on user_id.
type ResumeRepository struct {
	db *sql.DB
}

// NewResumeRepository creates a new SQLite-backed ResumeRepository.
func NewResumeRepository(db *DB) *ResumeRepository {
	return &ResumeRepository{db: db.SqlDB}
}

func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	cols, err := marshalColumns(resume)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO resumes (user_id, personal_info, summary, education, experience,
		                      skills, achievements, projects, certifications, languages,
		                      section_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resume.UserID, cols.personalInfo, resume.Summary, cols.education, cols.experience,
		cols.skills, cols.achievements, cols.projects, cols.certifications, cols.languages,
		cols.sectionOrder, now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: resume already exists for user", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert resume: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	resume.ID = id
	resume.CreatedAt = now
	resume.UpdatedAt = now
	return nil
}

func (r *ResumeRepository) GetByUser(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume := &domain.Resume{}
	var cols resumeColumns
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, personal_info, summary, education, experience,
		        skills, achievements, projects, certifications, languages,
		        section_order, created_at, updated_at
		 FROM resumes WHERE user_id = ?`, userID,
	).Scan(&resume.ID, &resume.UserID, &cols.personalInfo, &resume.Summary,
		&cols.education, &cols.experience, &cols.skills, &cols.achievements,
		&cols.projects, &cols.certifications, &cols.languages, &cols.sectionOrder,
		&resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query resume by user: %w", err)
	}

	if err := unmarshalColumns(&cols, resume); err != nil {
		return nil, err
	}
	resume.Normalize()
	return resume, nil
}

func (r *ResumeRepository) Update(ctx context.Context, resume *domain.Resume) error {
	cols, err := marshalColumns(resume)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE resumes
		 SET personal_info = ?, summary = ?, education = ?, experience = ?,
		     skills = ?, achievements = ?, projects = ?, certifications = ?,
		     languages = ?, section_order = ?, updated_at = ?
		 WHERE id = ?`,
		cols.personalInfo, resume.Summary, cols.education, cols.experience,
		cols.skills, cols.achievements, cols.projects, cols.certifications,
		cols.languages, cols.sectionOrder, now, resume.ID,
	)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	resume.UpdatedAt = now
	return nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM resumes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// resumeColumns holds the JSON-encoded collection columns of a resume row.
type resumeColumns struct {
	personalInfo   string
	education      string
	experience     string
	skills         string
	achievements   string
	projects       string
	certifications string
	languages      string
	sectionOrder   string
}

func marshalColumns(resume *domain.Resume) (*resumeColumns, error) {
	cols := &resumeColumns{}
	for _, field := range []struct {
		name string
		dst  *string
		src  any
	}{
		{"personal_info", &cols.personalInfo, resume.PersonalInfo},
		{"education", &cols.education, resume.Education},
		{"experience", &cols.experience, resume.Experience},
		{"skills", &cols.skills, resume.Skills},
		{"achievements", &cols.achievements, resume.Achievements},
		{"projects", &cols.projects, resume.Projects},
		{"certifications", &cols.certifications, resume.Certifications},
		{"languages", &cols.languages, resume.Languages},
		{"section_order", &cols.sectionOrder, resume.SectionOrder},
	} {
		data, err := json.Marshal(field.src)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", field.name, err)
		}
		*field.dst = string(data)
	}
	return cols, nil
}

func unmarshalColumns(cols *resumeColumns, resume *domain.Resume) error {
	for _, field := range []struct {
		name string
		src  string
		dst  any
	}{
		{"personal_info", cols.personalInfo, &resume.PersonalInfo},
		{"education", cols.education, &resume.Education},
		{"experience", cols.experience, &resume.Experience},
		{"skills", cols.skills, &resume.Skills},
		{"achievements", cols.achievements, &resume.Achievements},
		{"projects", cols.projects, &resume.Projects},
		{"certifications", cols.certifications, &resume.Certifications},
		{"languages", cols.languages, &resume.Languages},
		{"section_order", cols.sectionOrder, &resume.SectionOrder},
	} {
		if field.src == "" {
			continue
		}
		if err := json.Unmarshal([]byte(field.src), field.dst); err != nil {
			return fmt.Errorf("unmarshal %s: %w", field.name, err)
		}
	}
	return nil
}
