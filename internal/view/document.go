// Package view renders resumes as print-ready HTML. Components are built
// on the templ runtime so handlers can compose and stream them the same
// way as any other templ page.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/msomdec/resume-forge/internal/domain"
)

// Document renders the full print view of a resume. Sections appear in
// resume.SectionOrder; kinds outside the closed set render nothing.
func Document(resume *domain.Resume) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><style>`+printCSS+`</style></head><body><main class="resume">`); err != nil {
			return err
		}
		if err := Sections(resume).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Sections renders only the ordered section blocks, without the page
// shell. The live-preview endpoint patches this fragment into the page.
func Sections(resume *domain.Resume) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="resume-preview">`); err != nil {
			return err
		}
		for _, kind := range resume.SectionOrder {
			section, ok := sectionComponent(kind, resume)
			if !ok {
				continue
			}
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// sectionComponent maps a section kind to its print component. The
// mapping is total over the closed enumeration; anything else reports
// false and is skipped by the caller.
func sectionComponent(kind domain.SectionKind, r *domain.Resume) (templ.Component, bool) {
	switch kind {
	case domain.SectionPersonalInfo:
		return personalInfoSection(r.PersonalInfo), true
	case domain.SectionSummary:
		return textSection("Summary", r.Summary), true
	case domain.SectionEducation:
		return educationSection(r.Education), true
	case domain.SectionExperience:
		return experienceSection(r.Experience), true
	case domain.SectionSkills:
		return listSection("Skills", r.Skills), true
	case domain.SectionAchievements:
		return listSection("Achievements", r.Achievements), true
	case domain.SectionProjects:
		return projectsSection(r.Projects), true
	case domain.SectionCertifications:
		return certificationsSection(r.Certifications), true
	case domain.SectionLanguages:
		return listSection("Languages", r.Languages), true
	}
	return nil, false
}

const printCSS = `
body { font-family: Georgia, serif; margin: 0; color: #1a1a1a; }
.resume { width: 190mm; padding: 4mm; }
.resume h1 { font-size: 22pt; margin: 0 0 2mm; }
.resume h2 { font-size: 12pt; border-bottom: 1px solid #888; margin: 4mm 0 2mm; text-transform: uppercase; letter-spacing: 1px; }
.resume .entry { margin-bottom: 2mm; }
.resume .entry-head { font-weight: bold; }
.resume .entry-sub { font-style: italic; color: #444; }
.resume ul { margin: 1mm 0; padding-left: 6mm; }
.resume .contact { color: #333; font-size: 10pt; }
`
