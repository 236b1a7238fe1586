package domain

import (
	"context"
	"time"
)

// SectionKind identifies one named block of a resume. The set of kinds
// is closed; renderers treat anything outside it as empty output.
type SectionKind string

const (
	SectionPersonalInfo   SectionKind = "personal-info"
	SectionSummary        SectionKind = "summary"
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionSkills         SectionKind = "skills"
	SectionAchievements   SectionKind = "achievements"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
)

// DefaultSectionOrder returns the nine known section kinds in the order
// a fresh resume presents them.
func DefaultSectionOrder() []SectionKind {
	return []SectionKind{
		SectionPersonalInfo,
		SectionSummary,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionAchievements,
		SectionProjects,
		SectionCertifications,
		SectionLanguages,
	}
}

// IsKnownSection reports whether k is one of the closed section kinds.
func IsKnownSection(k SectionKind) bool {
	switch k {
	case SectionPersonalInfo, SectionSummary, SectionEducation,
		SectionExperience, SectionSkills, SectionAchievements,
		SectionProjects, SectionCertifications, SectionLanguages:
		return true
	}
	return false
}

// EducationEntry is one schooling record.
type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    string `json:"startYear"`
	EndYear      string `json:"endYear"`
	Description  string `json:"description"`
}

// ExperienceEntry is one work-experience record.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// ProjectEntry is one project record.
type ProjectEntry struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CertificationEntry is one certification record.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Resume is the structured document a user builds. Exactly one resume
// exists per user, enforced by a unique constraint on UserID.
type Resume struct {
	ID             int64                `json:"id"`
	UserID         int64                `json:"-"`
	PersonalInfo   map[string]string    `json:"personalInfo"`
	Summary        string               `json:"summary"`
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Skills         []string             `json:"skills"`
	Achievements   []string             `json:"achievements"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []string             `json:"languages"`
	SectionOrder   []SectionKind        `json:"sectionOrder"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// DefaultResume returns a structurally complete empty resume for the
// given user: every collection non-nil and the default section order.
// Callers never have to special-case "no resume yet".
func DefaultResume(userID int64) *Resume {
	return &Resume{
		UserID:         userID,
		PersonalInfo:   map[string]string{},
		Education:      []EducationEntry{},
		Experience:     []ExperienceEntry{},
		Skills:         []string{},
		Achievements:   []string{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
		Languages:      []string{},
		SectionOrder:   DefaultSectionOrder(),
	}
}

// Normalize replaces nil collections with empty ones and an absent
// section order with the default, so renderers never see a nil list.
func (r *Resume) Normalize() {
	if r.PersonalInfo == nil {
		r.PersonalInfo = map[string]string{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectEntry{}
	}
	if r.Certifications == nil {
		r.Certifications = []CertificationEntry{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if len(r.SectionOrder) == 0 {
		r.SectionOrder = DefaultSectionOrder()
	}
}

// ResumeRepository defines persistence operations for resumes.
type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByUser(ctx context.Context, userID int64) (*Resume, error)
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id int64) error
}
