package minimd

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewHTMLConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		engine    string
		highlight string
		wantErr   error
	}{
		{name: "default", engine: ""},
		{name: "mini", engine: EngineMini},
		{name: "goldmark", engine: EngineGoldmark},
		{name: "mini highlighted", engine: EngineMini, highlight: "monokai"},
		{name: "goldmark highlighted", engine: EngineGoldmark, highlight: "GitHub"},
		{name: "unknown engine", engine: "blackfriday", wantErr: ErrUnknownEngine},
		{name: "unknown style mini", engine: EngineMini, highlight: "nope", wantErr: ErrUnknownHighlightStyle},
		{name: "unknown style goldmark", engine: EngineGoldmark, highlight: "nope", wantErr: ErrUnknownHighlightStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := newHTMLConverter(tt.engine, tt.highlight)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("newHTMLConverter() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && conv == nil {
				t.Error("newHTMLConverter() returned nil converter")
			}
		})
	}
}

func TestMiniConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv, err := newMiniConverter("")
	if err != nil {
		t.Fatalf("newMiniConverter() unexpected error: %v", err)
	}

	got, err := conv.ToHTML(context.Background(), "# A\nb\n")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if want := "<h1>A</h1>\n<p>b</p>\n"; got != want {
		t.Errorf("ToHTML() = %q, want %q", got, want)
	}
}

func TestMiniConverter_Highlight(t *testing.T) {
	t.Parallel()

	conv, err := newMiniConverter("monokai")
	if err != nil {
		t.Fatalf("newMiniConverter() unexpected error: %v", err)
	}

	got, err := conv.ToHTML(context.Background(), "     package main\n     func main() {}\n")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "style=") {
		t.Errorf("ToHTML() = %q, want highlighted <pre>", got)
	}
	if !strings.Contains(got, "main") {
		t.Errorf("ToHTML() lost the code text: %q", got)
	}
}

func TestMiniConverter_Cancelled(t *testing.T) {
	t.Parallel()

	conv, err := newMiniConverter("")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := conv.ToHTML(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

// expiringContext reports cancellation once Err has been called n times.
type expiringContext struct {
	context.Context
	calls atomic.Int64
	n     int64
}

func (c *expiringContext) Err() error {
	if c.calls.Add(1) > c.n {
		return context.DeadlineExceeded
	}
	return nil
}

func TestMiniConverter_StopsMidRender(t *testing.T) {
	t.Parallel()

	conv, err := newMiniConverter("")
	if err != nil {
		t.Fatal(err)
	}

	ctx := &expiringContext{Context: context.Background(), n: 5}
	_, err = conv.ToHTML(ctx, strings.Repeat(">", 500)+"x")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ToHTML() error = %v, want context.DeadlineExceeded", err)
	}
	if ctx.calls.Load() > 10 {
		t.Errorf("rendering continued after expiry: %d context checks", ctx.calls.Load())
	}
}

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter("")

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "heading", input: "# Title", want: []string{"<h1>Title</h1>"}},
		{name: "emphasis", input: "some *em* text", want: []string{"<em>em</em>"}},
		{name: "list", input: "- a\n- b", want: []string{"<ul>", "<li>a</li>"}},
		{name: "table", input: "| a | b |\n|---|---|\n| 1 | 2 |", want: []string{"<table>", "<td>1</td>"}},
		{name: "hard wraps", input: "one\ntwo", want: []string{"one<br />"}},
		{name: "fenced code", input: "```\nx\n```", want: []string{"<pre><code>x\n</code></pre>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("ToHTML(%q) = %q, want to contain %q", tt.input, got, w)
				}
			}
		})
	}
}

func TestGoldmarkConverter_Highlight(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter("monokai")
	got, err := conv.ToHTML(context.Background(), "```go\npackage main\n```")
	if err != nil {
		t.Fatalf("ToHTML() unexpected error: %v", err)
	}
	if !strings.Contains(got, "style=") {
		t.Errorf("ToHTML() = %q, want inline chroma styles", got)
	}
}

func TestGoldmarkConverter_ContextTimeout(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter("")
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	if _, err := conv.ToHTML(ctx, "# x"); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ToHTML() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestHighlightStyles(t *testing.T) {
	t.Parallel()

	names := HighlightStyles()
	if len(names) == 0 {
		t.Fatal("HighlightStyles() returned no styles")
	}
	for _, n := range names {
		if !isHighlightStyle(n) {
			t.Errorf("isHighlightStyle(%q) = false for a listed style", n)
		}
	}
}
