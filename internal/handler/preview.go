package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/resume-forge/internal/service"
	"github.com/msomdec/resume-forge/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// PreviewHandler serves the live print preview.
type PreviewHandler struct {
	resumes *service.ResumeService
}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler(resumes *service.ResumeService) *PreviewHandler {
	return &PreviewHandler{resumes: resumes}
}

// HandlePreviewPage renders the preview page shell.
// GET /preview
func (h *PreviewHandler) HandlePreviewPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	view.PreviewPage(user.DisplayName).Render(r.Context(), w)
}

// HandlePreview streams the freshly rendered section fragment over SSE,
// replacing the preview element in place.
// GET /resume/preview
func (h *PreviewHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	resume, err := h.resumes.Get(r.Context(), user.ID)
	if err != nil {
		slog.Error("get resume for preview", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.Sections(resume),
		datastar.WithSelectorID("resume-preview"),
	)
}
