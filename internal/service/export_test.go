package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/service"
	"github.com/msomdec/resume-forge/internal/view"
)

type fakeRasterizer struct {
	calls int
	html  string
	err   error
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, html string) ([]byte, error) {
	f.calls++
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func TestExportService_Export(t *testing.T) {
	rast := &fakeRasterizer{}
	exporter := service.NewExportService(rast)

	resume := domain.DefaultResume(1)
	resume.Summary = "Ships software."
	resume.Skills = []string{"Go"}

	var savedName string
	var savedPDF []byte
	saveCalls := 0
	save := func(filename string, pdf []byte) error {
		saveCalls++
		savedName = filename
		savedPDF = pdf
		return nil
	}

	if err := exporter.Export(context.Background(), view.Document(resume), save); err != nil {
		t.Fatalf("Export: %v", err)
	}

	if rast.calls != 1 {
		t.Fatalf("expected exactly one rasterize call, got %d", rast.calls)
	}
	if saveCalls != 1 {
		t.Fatalf("expected exactly one save call, got %d", saveCalls)
	}
	if savedName != service.ExportFilename {
		t.Fatalf("expected fixed filename %q, got %q", service.ExportFilename, savedName)
	}
	if string(savedPDF) != "%PDF-fake" {
		t.Fatalf("expected rasterizer output to be saved, got %q", savedPDF)
	}
	if !strings.Contains(rast.html, "Ships software.") {
		t.Fatal("expected rendered document to contain the summary")
	}
}

func TestExportService_Export_NoDocument(t *testing.T) {
	rast := &fakeRasterizer{}
	exporter := service.NewExportService(rast)

	saveCalls := 0
	save := func(string, []byte) error {
		saveCalls++
		return nil
	}

	err := exporter.Export(context.Background(), nil, save)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if rast.calls != 0 {
		t.Fatalf("expected no rasterization, got %d calls", rast.calls)
	}
	if saveCalls != 0 {
		t.Fatalf("expected no save, got %d calls", saveCalls)
	}
}

func TestExportService_Export_RasterizerFailure(t *testing.T) {
	rast := &fakeRasterizer{err: errors.New("chromium crashed")}
	exporter := service.NewExportService(rast)

	saveCalls := 0
	save := func(string, []byte) error {
		saveCalls++
		return nil
	}

	err := exporter.Export(context.Background(), view.Document(domain.DefaultResume(1)), save)
	if err == nil {
		t.Fatal("expected an error when rasterization fails")
	}
	if saveCalls != 0 {
		t.Fatalf("expected no save after failed rasterization, got %d calls", saveCalls)
	}
}
