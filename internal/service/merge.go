package service

import (
	"encoding/json"

	"github.com/msomdec/resume-forge/internal/domain"
)

// ResumePatch is a partial-or-full resume body submitted on save.
// A nil field means "not present": the stored value is left alone.
type ResumePatch struct {
	PersonalInfo   map[string]string           `json:"personalInfo"`
	Summary        *string                     `json:"summary"`
	Education      []domain.EducationEntry     `json:"education"`
	Experience     []domain.ExperienceEntry    `json:"experience"`
	Skills         []string                    `json:"skills"`
	Achievements   []string                    `json:"achievements"`
	Projects       []domain.ProjectEntry       `json:"projects"`
	Certifications []domain.CertificationEntry `json:"certifications"`
	Languages      []string                    `json:"languages"`
	SectionOrder   []domain.SectionKind        `json:"sectionOrder"`
}

// mergeResume applies a patch to an existing resume using a fixed
// per-field strategy:
//
//	entry and string lists  -> append old-then-new, dedupe structurally
//	personalInfo            -> shallow merge, new keys overwrite
//	summary, sectionOrder   -> replace when present
//
// sectionOrder is a replace field on purpose: concatenating two
// permutations and deduping always keeps the old order, which would make
// reordering unsaveable.
func mergeResume(existing *domain.Resume, patch *ResumePatch) {
	if patch.PersonalInfo != nil {
		if existing.PersonalInfo == nil {
			existing.PersonalInfo = map[string]string{}
		}
		for k, v := range patch.PersonalInfo {
			existing.PersonalInfo[k] = v
		}
	}
	if patch.Summary != nil {
		existing.Summary = *patch.Summary
	}
	if patch.Education != nil {
		existing.Education = appendDedupe(existing.Education, patch.Education)
	}
	if patch.Experience != nil {
		existing.Experience = appendDedupe(existing.Experience, patch.Experience)
	}
	if patch.Skills != nil {
		existing.Skills = appendDedupe(existing.Skills, patch.Skills)
	}
	if patch.Achievements != nil {
		existing.Achievements = appendDedupe(existing.Achievements, patch.Achievements)
	}
	if patch.Projects != nil {
		existing.Projects = appendDedupe(existing.Projects, patch.Projects)
	}
	if patch.Certifications != nil {
		existing.Certifications = appendDedupe(existing.Certifications, patch.Certifications)
	}
	if patch.Languages != nil {
		existing.Languages = appendDedupe(existing.Languages, patch.Languages)
	}
	if patch.SectionOrder != nil {
		existing.SectionOrder = patch.SectionOrder
	}
}

// resumeFromPatch builds a fresh resume from a patch, normalizing absent
// collections so the stored document is structurally complete.
func resumeFromPatch(userID int64, patch *ResumePatch) *domain.Resume {
	resume := &domain.Resume{UserID: userID}
	if patch.Summary != nil {
		resume.Summary = *patch.Summary
	}
	resume.PersonalInfo = patch.PersonalInfo
	resume.Education = patch.Education
	resume.Experience = patch.Experience
	resume.Skills = patch.Skills
	resume.Achievements = patch.Achievements
	resume.Projects = patch.Projects
	resume.Certifications = patch.Certifications
	resume.Languages = patch.Languages
	resume.SectionOrder = patch.SectionOrder
	resume.Normalize()
	return resume
}

// appendDedupe concatenates old then new and drops entries whose
// serialized JSON form has already been seen, preserving first-occurrence
// order. Equality is exact: entries differing by as little as whitespace
// are distinct.
func appendDedupe[T any](old, incoming []T) []T {
	merged := make([]T, 0, len(old)+len(incoming))
	seen := make(map[string]bool, len(old)+len(incoming))
	for _, list := range [][]T{old, incoming} {
		for _, entry := range list {
			key, err := json.Marshal(entry)
			if err != nil {
				// Unserializable entries cannot be compared; keep them.
				merged = append(merged, entry)
				continue
			}
			if seen[string(key)] {
				continue
			}
			seen[string(key)] = true
			merged = append(merged, entry)
		}
	}
	return merged
}
