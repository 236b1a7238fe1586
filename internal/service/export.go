package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/a-h/templ"
	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/playwright-community/playwright-go"
)

// ExportFilename is the fixed name of the generated PDF artifact.
const ExportFilename = "resume.pdf"

// Rasterizer converts rendered HTML into PDF bytes at a fixed page size.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) ([]byte, error)
}

// SaveFunc receives the finished PDF. Implementations write an HTTP
// response or a local file; the pipeline does not care which.
type SaveFunc func(filename string, pdf []byte) error

// ExportService renders a print document and converts it to a PDF.
// There is no retry: a failed export is logged and reported once.
type ExportService struct {
	rasterizer Rasterizer
}

// NewExportService creates a new ExportService.
func NewExportService(rasterizer Rasterizer) *ExportService {
	return &ExportService{rasterizer: rasterizer}
}

// Export renders doc, rasterizes it, and hands the result to save under
// the fixed export filename. A nil document is a no-op failure: nothing
// is rasterized and nothing is saved.
func (s *ExportService) Export(ctx context.Context, doc templ.Component, save SaveFunc) error {
	if doc == nil {
		slog.Warn("export requested with no document")
		return fmt.Errorf("%w: no document to export", domain.ErrInvalidInput)
	}

	var html strings.Builder
	if err := doc.Render(ctx, &html); err != nil {
		slog.Error("render print document", "error", err)
		return fmt.Errorf("render document: %w", err)
	}

	pdf, err := s.rasterizer.Rasterize(ctx, html.String())
	if err != nil {
		slog.Error("rasterize print document", "error", err)
		return fmt.Errorf("rasterize document: %w", err)
	}

	if err := save(ExportFilename, pdf); err != nil {
		slog.Error("save exported pdf", "error", err)
		return fmt.Errorf("save pdf: %w", err)
	}

	return nil
}

// ChromiumRasterizer renders HTML to PDF through headless Chromium.
type ChromiumRasterizer struct{}

// Rasterize loads the HTML into a fresh headless page and prints it as
// an A4 PDF with a fixed margin.
func (ChromiumRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(html, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("set page content: %w", err)
	}

	pdf, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("10mm"),
			Bottom: playwright.String("10mm"),
			Left:   playwright.String("10mm"),
			Right:  playwright.String("10mm"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}

	return pdf, nil
}
