package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/msomdec/resume-forge/internal/domain"
)

// Fixed display order for the well-known contact fields; anything else
// in the free-form block follows in map-iteration-independent order.
var contactFieldOrder = []string{"name", "title", "email", "phone", "address", "website"}

func personalInfoSection(info map[string]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(info) == 0 {
			return nil
		}
		if name := info["name"]; name != "" {
			if _, err := fmt.Fprintf(w, `<h1>%s</h1>`, templ.EscapeString(name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<div class="contact">`); err != nil {
			return err
		}
		seen := map[string]bool{"name": true}
		for _, key := range contactFieldOrder {
			if err := writeContactField(w, info, key, seen); err != nil {
				return err
			}
		}
		for key := range info {
			if err := writeContactField(w, info, key, seen); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func writeContactField(w io.Writer, info map[string]string, key string, seen map[string]bool) error {
	if seen[key] || info[key] == "" {
		return nil
	}
	seen[key] = true
	_, err := fmt.Fprintf(w, `<span class="contact-field">%s</span> `, templ.EscapeString(info[key]))
	return err
}

func textSection(title, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<section><h2>%s</h2><p>%s</p></section>`,
			templ.EscapeString(title), templ.EscapeString(text))
		return err
	})
}

func listSection(title string, items []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, `<section><h2>%s</h2><ul>`, templ.EscapeString(title)); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, templ.EscapeString(item)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	})
}

func educationSection(entries []domain.EducationEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<section><h2>Education</h2>`); err != nil {
			return err
		}
		for _, e := range entries {
			if err := writeEntry(w, e.School, joinNonEmpty(e.Degree, e.FieldOfStudy), joinNonEmpty(e.StartYear, e.EndYear), e.Description); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func experienceSection(entries []domain.ExperienceEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<section><h2>Work Experience</h2>`); err != nil {
			return err
		}
		for _, e := range entries {
			sub := joinNonEmpty(e.Title, e.Location)
			if err := writeEntry(w, e.Company, sub, joinNonEmpty(e.StartDate, e.EndDate), e.Description); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func projectsSection(entries []domain.ProjectEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<section><h2>Projects</h2>`); err != nil {
			return err
		}
		for _, p := range entries {
			if err := writeEntry(w, p.Name, p.URL, "", p.Description); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func certificationsSection(entries []domain.CertificationEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(entries) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<section><h2>Certifications</h2>`); err != nil {
			return err
		}
		for _, c := range entries {
			if err := writeEntry(w, c.Name, c.Issuer, c.Year, ""); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func writeEntry(w io.Writer, head, sub, period, description string) error {
	if _, err := io.WriteString(w, `<div class="entry">`); err != nil {
		return err
	}
	if head != "" {
		if _, err := fmt.Fprintf(w, `<div class="entry-head">%s</div>`, templ.EscapeString(head)); err != nil {
			return err
		}
	}
	if sub != "" || period != "" {
		if _, err := fmt.Fprintf(w, `<div class="entry-sub">%s</div>`, templ.EscapeString(joinNonEmpty(sub, period))); err != nil {
			return err
		}
	}
	if description != "" {
		if _, err := fmt.Fprintf(w, `<p>%s</p>`, templ.EscapeString(description)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " · " + b
	}
}
