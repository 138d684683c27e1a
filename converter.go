package minimd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-minimd/internal/assets"
	"github.com/alnah/go-minimd/internal/fileutil"
	"github.com/alnah/go-minimd/internal/linkpath"
)

// Compile-time interface implementation checks.
var (
	_ htmlConverter   = (*miniConverter)(nil)
	_ htmlConverter   = (*goldmarkConverter)(nil)
	_ documentWrapper = (*templateDocument)(nil)
)

// documentTemplateName is the asset template used for the document shell.
const documentTemplateName = "document"

// Converter orchestrates the conversion pipeline: Markdown to HTML fragment,
// optional document shell with CSS, optional PDF.
// Create with NewConverter, use Convert for conversion, and Close when done.
//
// HTML conversion is safe for concurrent use. PDF rendering serializes on the
// converter's browser; use a ConverterPool for parallel PDF output.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	htmlConverter htmlConverter
	document      documentWrapper
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter.
// Returns error if the engine, highlight style, asset path, style or document
// template cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout, engine: EngineMini},
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if c.assetLoader == nil {
		c.assetLoader = resolver
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.htmlConverter == nil {
		c.htmlConverter, err = newHTMLConverter(c.cfg.engine, c.cfg.highlight)
		if err != nil {
			return nil, err
		}
	}

	if c.document == nil && !c.cfg.fragment {
		tmpl, err := c.assetLoader.LoadTemplate(documentTemplateName)
		if err != nil {
			return nil, mapAssetError(err)
		}
		c.document, err = newTemplateDocument(tmpl)
		if err != nil {
			return nil, fmt.Errorf("initializing document template: %w", err)
		}
	}

	// Browser is started lazily on first PDF.
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the pipeline and returns the HTML, plus the PDF when
// input.PDF is set. The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if !c.cfg.fragment {
		css := c.cfg.resolvedStyle
		if input.CSS != "" {
			css += "\n" + input.CSS
		}
		htmlContent, err = c.document.Wrap(ctx, htmlContent, input.Title, css)
		if err != nil {
			return nil, fmt.Errorf("wrapping document: %w", err)
		}
	}

	res := &Result{HTML: []byte(htmlContent)}
	if !input.PDF {
		return res, nil
	}

	pdfHTML, err := linkpath.Absolutize(htmlContent, input.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving relative paths: %v", ErrPDFGeneration, err)
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, pdfHTML, &pdfOptions{
		Page:   input.Page,
		Footer: input.Footer,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser, if started).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, mapAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks the optional PDF settings. Empty Markdown is valid.
func validateInput(input Input) error {
	if err := input.Page.Validate(); err != nil {
		return err
	}
	return input.Footer.Validate()
}

// mapAssetError translates internal asset errors to public sentinels.
func mapAssetError(err error) error {
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName),
		errors.Is(err, assets.ErrPathTraversal),
		errors.Is(err, assets.ErrInvalidBasePath):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// StyleNames lists the embedded document styles.
func StyleNames() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}
