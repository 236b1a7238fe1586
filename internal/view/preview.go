package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PreviewPage is the live-preview shell. The embedded datastar attribute
// re-fetches the rendered sections whenever the page signals a reload.
func PreviewPage(displayName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume Preview</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar/bundles/datastar.js"></script>
<style>%s</style>
</head>
<body>
<header>Signed in as %s</header>
<main class="resume" data-on-load="@get('/resume/preview')">
<div id="resume-preview"></div>
</main>
</body>
</html>`, printCSS, templ.EscapeString(displayName))
		return err
	})
}
