package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/resume-forge/internal/service"
	"github.com/msomdec/resume-forge/internal/view"
)

// ExportHandler serves the resume as a downloadable PDF.
type ExportHandler struct {
	resumes  *service.ResumeService
	exporter *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(resumes *service.ResumeService, exporter *service.ExportService) *ExportHandler {
	return &ExportHandler{resumes: resumes, exporter: exporter}
}

// HandleExport renders the caller's resume and streams it as a PDF
// attachment with a fixed filename.
// GET /resume/export
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	resume, err := h.resumes.Get(r.Context(), user.ID)
	if err != nil {
		slog.Error("get resume for export", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	save := func(filename string, pdf []byte) error {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
		_, err := w.Write(pdf)
		return err
	}

	if err := h.exporter.Export(r.Context(), view.Document(resume), save); err != nil {
		slog.Error("export resume", "error", err, "user", user.ID)
		writeError(w, http.StatusInternalServerError, "Export failed. Please try again.")
		return
	}
}
