package handler

import (
	"net/http"

	"github.com/msomdec/resume-forge/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	resumes *service.ResumeService,
	exporter *service.ExportService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	resumeHandler := NewResumeHandler(resumes)
	exportHandler := NewExportHandler(resumes, exporter)
	previewHandler := NewPreviewHandler(resumes)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/signup", authHandler.HandleSignup)
	mux.HandleFunc("POST /auth/signin", authHandler.HandleSignin)
	mux.Handle("GET /auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /resume", RequireAuth(auth, http.HandlerFunc(resumeHandler.HandleGet)))
	mux.Handle("POST /resume", RequireAuth(auth, http.HandlerFunc(resumeHandler.HandleSave)))
	mux.Handle("DELETE /resume", RequireAuth(auth, http.HandlerFunc(resumeHandler.HandleDelete)))

	mux.Handle("GET /resume/export", RequireAuth(auth, http.HandlerFunc(exportHandler.HandleExport)))
	mux.Handle("GET /resume/preview", RequireAuth(auth, http.HandlerFunc(previewHandler.HandlePreview)))
	mux.Handle("GET /preview", RequireAuth(auth, http.HandlerFunc(previewHandler.HandlePreviewPage)))
}
