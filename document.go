package minimd

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// defaultTitle is used when neither Input.Title nor an h1 is available.
const defaultTitle = "Document"

// documentWrapper wraps an HTML fragment into a complete document.
type documentWrapper interface {
	Wrap(ctx context.Context, body, title, css string) (string, error)
}

// documentData is the data passed to the document template.
type documentData struct {
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// templateDocument renders documents from an html/template.
type templateDocument struct {
	tmpl *template.Template
}

// newTemplateDocument parses the document template.
func newTemplateDocument(tmplContent string) (*templateDocument, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &templateDocument{tmpl: tmpl}, nil
}

// Wrap renders body into the document template. An empty title falls back to
// the text of the first h1 in body, then to "Document".
// The body is trusted as-is; the CSS is sanitized against </style> breakout.
func (d *templateDocument) Wrap(ctx context.Context, body, title, css string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if title == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = defaultTitle
	}

	data := documentData{
		Title: title,
		CSS:   template.CSS(sanitizeCSS(strings.TrimSpace(css))), // #nosec G203 -- sanitized above
		Body:  template.HTML(body),                               // #nosec G203 -- renderer output
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// h1Pattern captures the inner HTML of the first h1.
var h1Pattern = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// firstHeading returns the plain text of the first h1, or "".
func firstHeading(body string) string {
	m := h1Pattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return stripHTMLTags(m[1])
}

// stripHTMLTags removes HTML tags, decodes entities and trims whitespace.
// Decoding avoids double-encoding when the template escapes the title.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
