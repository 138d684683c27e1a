package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the highlight style is not registered with chroma.
var ErrUnknownStyle = errors.New("unknown highlight style")

// ChromaFormatter highlights code runs with chroma. The language is guessed
// from the code itself; unrecognized code is emitted as plain text.
type ChromaFormatter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaFormatter creates a formatter for the named chroma style.
// Returns ErrUnknownStyle if the style does not exist.
func NewChromaFormatter(styleName string) (*ChromaFormatter, error) {
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleName)
	}
	return &ChromaFormatter{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
	}, nil
}

// FormatCode highlights the lines of a code run. Lines are joined with
// newlines so the lexer sees the original line structure.
func (f *ChromaFormatter) FormatCode(lines []string) (string, error) {
	code := strings.Join(lines, "\n") + "\n"

	lexer := lexers.Analyse(code)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenizing code: %w", err)
	}

	var buf strings.Builder
	if err := f.formatter.Format(&buf, f.style, iterator); err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}
	buf.WriteString("\n")
	return buf.String(), nil
}

// StyleNames lists the available highlight styles.
func StyleNames() []string {
	return styles.Names()
}

// Compile-time interface check.
var _ CodeFormatter = (*ChromaFormatter)(nil)
