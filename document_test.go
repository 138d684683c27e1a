package minimd

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const testTemplate = `<title>{{.Title}}</title>{{if .CSS}}<style>{{.CSS}}</style>{{end}}<body>{{.Body}}</body>`

func TestTemplateDocument_Wrap(t *testing.T) {
	t.Parallel()

	doc, err := newTemplateDocument(testTemplate)
	if err != nil {
		t.Fatalf("newTemplateDocument() unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		body  string
		title string
		css   string
		want  string
	}{
		{
			name:  "explicit title",
			body:  "<h1>Heading</h1>\n",
			title: "Given",
			want:  "<title>Given</title><body><h1>Heading</h1>\n</body>",
		},
		{
			name: "title from h1",
			body: "<p>intro</p>\n<h1>First</h1>\n<h1>Second</h1>\n",
			want: "<title>First</title><body><p>intro</p>\n<h1>First</h1>\n<h1>Second</h1>\n</body>",
		},
		{
			name: "default title",
			body: "<p>no heading</p>\n",
			want: "<title>Document</title><body><p>no heading</p>\n</body>",
		},
		{
			name:  "title escaped",
			body:  "",
			title: "A & B",
			want:  "<title>A &amp; B</title><body></body>",
		},
		{
			name:  "css included",
			body:  "",
			title: "T",
			css:   "  p { margin: 0; }\n",
			want:  "<title>T</title><style>p { margin: 0; }</style><body></body>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := doc.Wrap(context.Background(), tt.body, tt.title, tt.css)
			if err != nil {
				t.Fatalf("Wrap() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateDocument_CSSBreakout(t *testing.T) {
	t.Parallel()

	doc, err := newTemplateDocument(testTemplate)
	if err != nil {
		t.Fatal(err)
	}

	got, err := doc.Wrap(context.Background(), "", "T", "p{}</style><script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Wrap() unexpected error: %v", err)
	}
	if strings.Contains(got, "</style><script>") {
		t.Errorf("Wrap() allowed style breakout: %q", got)
	}
}

func TestTemplateDocument_ContextCancelled(t *testing.T) {
	t.Parallel()

	doc, err := newTemplateDocument(testTemplate)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := doc.Wrap(ctx, "", "", ""); !errors.Is(err, context.Canceled) {
		t.Errorf("Wrap() error = %v, want context.Canceled", err)
	}
}

func TestNewTemplateDocument_ParseError(t *testing.T) {
	t.Parallel()

	if _, err := newTemplateDocument("{{.Title"); err == nil {
		t.Error("newTemplateDocument() expected parse error")
	}
}

func TestTemplateDocument_ExecuteError(t *testing.T) {
	t.Parallel()

	doc, err := newTemplateDocument("{{.Missing}}")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Wrap(context.Background(), "", "", ""); !errors.Is(err, ErrDocumentRender) {
		t.Errorf("Wrap() error = %v, want ErrDocumentRender", err)
	}
}

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		body string
		want string
	}{
		{"<h1>Plain</h1>", "Plain"},
		{`<h1 id="x">With <em>markup</em></h1>`, "With markup"},
		{"<h1>Tom &amp; Jerry</h1>", "Tom & Jerry"},
		{"<h2>Not h1</h2>", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstHeading(tt.body); got != tt.want {
			t.Errorf("firstHeading(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}
