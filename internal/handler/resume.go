package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/service"
)

// ResumeHandler handles resume CRUD requests.
type ResumeHandler struct {
	resumes *service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumes *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// HandleGet returns the caller's resume, or a structurally complete
// default when none has been saved.
// GET /resume
func (h *ResumeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	resume, err := h.resumes.Get(r.Context(), user.ID)
	if err != nil {
		slog.Error("get resume", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeData(w, http.StatusOK, resume)
}

// HandleSave upserts the caller's resume with merge-on-save semantics.
// POST /resume, body = partial or full resume
func (h *ResumeHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var patch service.ResumePatch
	if err := readJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	merged, err := h.resumes.Save(r.Context(), user.ID, &patch)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("save resume", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeData(w, http.StatusOK, merged)
}

// HandleDelete removes the caller's resume.
// DELETE /resume
func (h *ResumeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.resumes.Delete(r.Context(), user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No resume to delete.")
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Not authorized to delete this resume.")
			return
		}
		slog.Error("delete resume", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeData(w, http.StatusOK, map[string]any{})
}
