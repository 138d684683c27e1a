package minimd

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-minimd/internal/render"
)

// htmlConverter abstracts Markdown to HTML fragment conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// miniConverter renders the supported block subset with the built-in scanner.
type miniConverter struct {
	renderer *render.Renderer
}

// newMiniConverter creates a miniConverter. A non-empty highlight style
// enables chroma highlighting of code blocks.
func newMiniConverter(highlight string) (*miniConverter, error) {
	var opts []render.Option
	if highlight != "" {
		f, err := render.NewChromaFormatter(highlight)
		if err != nil {
			if errors.Is(err, render.ErrUnknownStyle) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, highlight)
			}
			return nil, err
		}
		opts = append(opts, render.WithCodeFormatter(f))
	}
	return &miniConverter{renderer: render.New(opts...)}, nil
}

// ToHTML renders content, stopping between blocks once ctx is done.
func (c *miniConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.renderer.DocumentContext(ctx, content)
}

// newHTMLConverter builds the converter for the named engine.
func newHTMLConverter(engine, highlight string) (htmlConverter, error) {
	if highlight != "" && !isHighlightStyle(highlight) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, highlight)
	}

	switch engine {
	case "", EngineMini:
		return newMiniConverter(highlight)
	case EngineGoldmark:
		return newGoldmarkConverter(highlight), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s, %s)", ErrUnknownEngine, engine, EngineMini, EngineGoldmark)
	}
}

// isHighlightStyle reports whether name is a registered chroma style.
func isHighlightStyle(name string) bool {
	_, err := render.NewChromaFormatter(name)
	return err == nil
}

// HighlightStyles lists the style names accepted by WithHighlight.
func HighlightStyles() []string {
	return render.StyleNames()
}
