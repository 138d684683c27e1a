package minimd

import "time"

// defaultTimeout bounds PDF page loading when the context has no deadline.
const defaultTimeout = 30 * time.Second

// converterConfig holds configuration applied by options.
type converterConfig struct {
	timeout       time.Duration
	engine        string
	highlight     string
	styleInput    string // name, file path, or inline CSS
	resolvedStyle string // CSS content after resolution
	assetPath     string
	fragment      bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithTimeout sets the PDF page load timeout used when the context has no
// deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown engine: EngineMini (default) or
// EngineGoldmark.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithHighlight enables syntax highlighting of code blocks with the named
// chroma style (e.g. "monokai", "github"). Empty disables highlighting.
func WithHighlight(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = style
	}
}

// WithStyle sets the document CSS. The value is a style name resolved
// through the asset loader, a path to a CSS file, or inline CSS.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets for anything dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithFragment skips the HTML document shell: Result.HTML holds only the
// rendered blocks.
func WithFragment() Option {
	return func(c *Converter) {
		c.cfg.fragment = true
	}
}
