// Package render turns classified lines into HTML.
//
// A Renderer walks the statement sequence once, coalescing runs of adjacent
// paragraph, code and quote lines into single blocks. Block quote content is
// rendered by running the whole pipeline again on each quoted line, so quotes
// nest without any state shared between the outer and inner documents.
package render

import (
	"context"
	"strings"

	"github.com/alnah/go-minimd/internal/scanner"
)

// CodeFormatter renders the lines of one code run as an HTML block.
type CodeFormatter interface {
	FormatCode(lines []string) (string, error)
}

// Renderer converts statements to HTML. It holds no per-document state and
// is safe for concurrent use.
type Renderer struct {
	code CodeFormatter // nil renders plain <pre> blocks
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCodeFormatter renders code runs with f. If f fails for a run, that run
// falls back to a plain <pre> block.
func WithCodeFormatter(f CodeFormatter) Option {
	return func(r *Renderer) {
		r.code = f
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Document runs the full pipeline on markdown: normalize, classify, render.
func (r *Renderer) Document(markdown string) string {
	html, _ := r.DocumentContext(context.Background(), markdown)
	return html
}

// DocumentContext is Document with cancellation. The context is checked
// before every block and at every nested quote level.
func (r *Renderer) DocumentContext(ctx context.Context, markdown string) (string, error) {
	return r.RenderContext(ctx, scanner.Parse(markdown))
}

// Render converts a statement sequence to HTML.
func (r *Renderer) Render(stmts []scanner.Statement) string {
	html, _ := r.RenderContext(context.Background(), stmts)
	return html
}

// RenderContext is Render with cancellation.
func (r *Renderer) RenderContext(ctx context.Context, stmts []scanner.Statement) (string, error) {
	var buf strings.Builder
	if err := r.write(ctx, &buf, stmts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// write renders stmts into buf.
func (r *Renderer) write(ctx context.Context, buf *strings.Builder, stmts []scanner.Statement) error {
	for i := 0; i < len(stmts); {
		if err := ctx.Err(); err != nil {
			return err
		}

		s := stmts[i]
		switch {
		case s.Kind.IsHeader():
			writeHeader(buf, s.Kind.HeaderLevel(), s.Text)
			i++

		case s.Kind == scanner.ParagraphLine:
			end := runEnd(stmts, i)
			buf.WriteString("<p>")
			for j := i; j < end; j++ {
				if j > i {
					buf.WriteString("<br/>")
				}
				buf.WriteString(stmts[j].Text)
			}
			buf.WriteString("</p>\n")
			i = end

		case s.Kind == scanner.CodeLine:
			end := runEnd(stmts, i)
			r.writeCode(buf, texts(stmts[i:end]))
			i = end

		case s.Kind == scanner.QuoteLine:
			end := runEnd(stmts, i)
			buf.WriteString("<blockquote>")
			for j := i; j < end; j++ {
				if err := r.writeQuoted(ctx, buf, stmts[j].Text); err != nil {
					return err
				}
			}
			buf.WriteString("</blockquote>\n")
			i = end

		default:
			// Blank lines emit nothing; they only end runs.
			i++
		}
	}
	return nil
}

// writeQuoted renders the text of one quote line as an independent document.
// Such a document is a single line, so nested quote markers are peeled off
// in a loop instead of re-parsing the remainder at every level.
func (r *Renderer) writeQuoted(ctx context.Context, buf *strings.Builder, text string) error {
	if strings.ContainsAny(text, "\r\n") {
		return r.write(ctx, buf, scanner.Parse(text))
	}

	depth := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, ok := scanner.Classify(text)
		if !ok {
			break
		}
		if s.Kind != scanner.QuoteLine {
			if err := r.write(ctx, buf, []scanner.Statement{s}); err != nil {
				return err
			}
			break
		}
		buf.WriteString("<blockquote>")
		depth++
		text = s.Text
	}
	for ; depth > 0; depth-- {
		buf.WriteString("</blockquote>\n")
	}
	return nil
}

// writeHeader writes <hN>text</hN> followed by a newline.
func writeHeader(buf *strings.Builder, level int, text string) {
	tag := "h" + string(rune('0'+level))
	buf.WriteString("<" + tag + ">")
	buf.WriteString(text)
	buf.WriteString("</" + tag + ">\n")
}

// writeCode writes one code run, through the formatter when configured.
func (r *Renderer) writeCode(buf *strings.Builder, lines []string) {
	if r.code != nil {
		if html, err := r.code.FormatCode(lines); err == nil {
			buf.WriteString(html)
			return
		}
	}
	buf.WriteString(PlainCode(lines))
}

// PlainCode renders a code run as <pre>, a newline, then the line texts
// concatenated without separator.
func PlainCode(lines []string) string {
	return "<pre>\n" + strings.Join(lines, "") + "</pre>\n"
}

// runEnd returns the index one past the run of statements sharing the kind
// of stmts[start].
func runEnd(stmts []scanner.Statement, start int) int {
	kind := stmts[start].Kind
	end := start + 1
	for end < len(stmts) && stmts[end].Kind == kind {
		end++
	}
	return end
}

func texts(stmts []scanner.Statement) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.Text
	}
	return out
}
