// Package editor holds the mutable state of one resume edit session.
// It is an explicit state container: every mutation goes through an
// action method that validates its input synchronously.
package editor

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/msomdec/resume-forge/internal/domain"
)

// Free-text length caps. Summary is the longest field; per-entry
// descriptions are capped per section.
const (
	MaxSummaryLen               = 600
	MaxEducationDescriptionLen  = 300
	MaxExperienceDescriptionLen = 400
	MaxProjectDescriptionLen    = 400
	MaxCertificationLen         = 300
)

var (
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{1,12}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Store is the in-memory resume being edited. It is scoped to a single
// edit session and is not safe for concurrent use.
type Store struct {
	resume domain.Resume
}

// New returns a store initialized with an empty, structurally complete
// resume.
func New() *Store {
	return &Store{resume: *domain.DefaultResume(0)}
}

// Hydrate replaces the whole edit state from a freshly fetched resume,
// normalizing missing collections so renderers never see a nil list.
func (s *Store) Hydrate(resume *domain.Resume) {
	s.resume = *resume
	s.resume.Normalize()
}

// Snapshot returns the current edit state, suitable for a save request
// body.
func (s *Store) Snapshot() domain.Resume {
	return s.resume
}

// SetPersonalField sets one personal-info field after validating it.
// Name is restricted to letters and spaces, phone to digits with an
// optional leading + and at most 12 digits, email to a plausible format.
// Other keys are free-form contact fields.
func (s *Store) SetPersonalField(key, value string) error {
	if value != "" {
		switch key {
		case "name":
			if !nameRe.MatchString(value) {
				return fmt.Errorf("%w: name may contain only letters and spaces", domain.ErrInvalidInput)
			}
		case "phone":
			if !phoneRe.MatchString(value) {
				return fmt.Errorf("%w: phone must be digits with an optional leading +, at most 12 digits", domain.ErrInvalidInput)
			}
		case "email":
			if !emailRe.MatchString(value) {
				return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
			}
		}
	}
	s.resume.PersonalInfo[key] = value
	return nil
}

// SetSummary sets the summary text, enforcing the length cap.
func (s *Store) SetSummary(text string) error {
	if len(text) > MaxSummaryLen {
		return fmt.Errorf("%w: summary exceeds %d characters", domain.ErrInvalidInput, MaxSummaryLen)
	}
	s.resume.Summary = text
	return nil
}

// AddEducation appends an education entry.
func (s *Store) AddEducation(e domain.EducationEntry) error {
	if len(e.Description) > MaxEducationDescriptionLen {
		return fmt.Errorf("%w: education description exceeds %d characters", domain.ErrInvalidInput, MaxEducationDescriptionLen)
	}
	s.resume.Education = append(s.resume.Education, e)
	return nil
}

// RemoveEducation removes the education entry at index i.
func (s *Store) RemoveEducation(i int) error {
	var err error
	s.resume.Education, err = removeAt(s.resume.Education, i)
	return err
}

// AddExperience appends a work-experience entry.
func (s *Store) AddExperience(e domain.ExperienceEntry) error {
	if len(e.Description) > MaxExperienceDescriptionLen {
		return fmt.Errorf("%w: experience description exceeds %d characters", domain.ErrInvalidInput, MaxExperienceDescriptionLen)
	}
	s.resume.Experience = append(s.resume.Experience, e)
	return nil
}

// RemoveExperience removes the experience entry at index i.
func (s *Store) RemoveExperience(i int) error {
	var err error
	s.resume.Experience, err = removeAt(s.resume.Experience, i)
	return err
}

// AddProject appends a project entry.
func (s *Store) AddProject(p domain.ProjectEntry) error {
	if len(p.Description) > MaxProjectDescriptionLen {
		return fmt.Errorf("%w: project description exceeds %d characters", domain.ErrInvalidInput, MaxProjectDescriptionLen)
	}
	s.resume.Projects = append(s.resume.Projects, p)
	return nil
}

// RemoveProject removes the project entry at index i.
func (s *Store) RemoveProject(i int) error {
	var err error
	s.resume.Projects, err = removeAt(s.resume.Projects, i)
	return err
}

// AddCertification appends a certification entry.
func (s *Store) AddCertification(c domain.CertificationEntry) error {
	if len(c.Name) > MaxCertificationLen {
		return fmt.Errorf("%w: certification name exceeds %d characters", domain.ErrInvalidInput, MaxCertificationLen)
	}
	s.resume.Certifications = append(s.resume.Certifications, c)
	return nil
}

// RemoveCertification removes the certification entry at index i.
func (s *Store) RemoveCertification(i int) error {
	var err error
	s.resume.Certifications, err = removeAt(s.resume.Certifications, i)
	return err
}

// AddSkill appends a skill string.
func (s *Store) AddSkill(skill string) error {
	if skill == "" {
		return fmt.Errorf("%w: skill must not be empty", domain.ErrInvalidInput)
	}
	s.resume.Skills = append(s.resume.Skills, skill)
	return nil
}

// RemoveSkill removes the skill at index i.
func (s *Store) RemoveSkill(i int) error {
	var err error
	s.resume.Skills, err = removeAt(s.resume.Skills, i)
	return err
}

// AddAchievement appends an achievement string.
func (s *Store) AddAchievement(a string) error {
	if a == "" {
		return fmt.Errorf("%w: achievement must not be empty", domain.ErrInvalidInput)
	}
	s.resume.Achievements = append(s.resume.Achievements, a)
	return nil
}

// RemoveAchievement removes the achievement at index i.
func (s *Store) RemoveAchievement(i int) error {
	var err error
	s.resume.Achievements, err = removeAt(s.resume.Achievements, i)
	return err
}

// AddLanguage appends a language string.
func (s *Store) AddLanguage(l string) error {
	if l == "" {
		return fmt.Errorf("%w: language must not be empty", domain.ErrInvalidInput)
	}
	s.resume.Languages = append(s.resume.Languages, l)
	return nil
}

// RemoveLanguage removes the language at index i.
func (s *Store) RemoveLanguage(i int) error {
	var err error
	s.resume.Languages, err = removeAt(s.resume.Languages, i)
	return err
}

// MoveSection moves the section at position from to position to,
// shifting everything between. Relative order of untouched sections is
// preserved. The order is cloned before mutation so slices handed out
// by earlier Snapshot calls are never rewritten.
func (s *Store) MoveSection(from, to int) error {
	if from < 0 || from >= len(s.resume.SectionOrder) || to < 0 || to >= len(s.resume.SectionOrder) {
		return fmt.Errorf("%w: section index out of range", domain.ErrInvalidInput)
	}
	if from == to {
		return nil
	}

	order := slices.Clone(s.resume.SectionOrder)
	moved := order[from]
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]domain.SectionKind{moved}, order[to:]...)...)
	s.resume.SectionOrder = order
	return nil
}

// removeAt clones the list before removing so earlier snapshots keep
// their elements.
func removeAt[T any](list []T, i int) ([]T, error) {
	if i < 0 || i >= len(list) {
		return list, fmt.Errorf("%w: index out of range", domain.ErrInvalidInput)
	}
	out := slices.Clone(list)
	return append(out[:i], out[i+1:]...), nil
}
