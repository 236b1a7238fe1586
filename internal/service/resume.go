package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/resume-forge/internal/domain"
)

// ResumeService handles resume reads, merge-on-save upserts, and deletes.
type ResumeService struct {
	resumes domain.ResumeRepository
}

// NewResumeService creates a new ResumeService.
func NewResumeService(resumes domain.ResumeRepository) *ResumeService {
	return &ResumeService{resumes: resumes}
}

// Get returns the user's resume, or a structurally complete default when
// none has been saved yet.
func (s *ResumeService) Get(ctx context.Context, userID int64) (*domain.Resume, error) {
	resume, err := s.resumes.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultResume(userID), nil
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return resume, nil
}

// Save upserts the user's resume. A first save creates the document from
// the submitted body; later saves merge field by field (see mergeResume).
// Concurrent saves race: the merge applies to whichever stored document
// the read returned, last write wins at the field level.
func (s *ResumeService) Save(ctx context.Context, userID int64, patch *ResumePatch) (*domain.Resume, error) {
	if patch == nil {
		return nil, fmt.Errorf("%w: empty resume body", domain.ErrInvalidInput)
	}

	existing, err := s.resumes.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			resume := resumeFromPatch(userID, patch)
			if err := s.resumes.Create(ctx, resume); err != nil {
				return nil, fmt.Errorf("create resume: %w", err)
			}
			return resume, nil
		}
		return nil, fmt.Errorf("get resume for save: %w", err)
	}

	mergeResume(existing, patch)
	if err := s.resumes.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return existing, nil
}

// Delete removes the user's resume. Returns ErrNotFound when none exists
// and ErrUnauthorized on an owner mismatch. The mismatch check is
// unreachable given the owner-scoped lookup, kept as defense in depth.
func (s *ResumeService) Delete(ctx context.Context, userID int64) error {
	existing, err := s.resumes.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	return s.resumes.Delete(ctx, existing.ID)
}
