package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling CLI behavior.
type commonFlags struct {
	config     string
	quiet      bool
	verbose    bool
	version    bool
	listStyles bool
}

// ioFlags holds input/output flags.
type ioFlags struct {
	output     string
	workers    int
	timeout    string
	statements bool
	exclude    []string
}

// renderFlags holds flags selecting how Markdown becomes HTML.
type renderFlags struct {
	engine    string
	highlight string
	fragment  bool
	title     string
	pdf       bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	pageNumber bool
}

// assetFlags holds CSS and asset directory flags.
type assetFlags struct {
	style     string
	assetPath string
	noStyle   bool
}

// cliFlags holds every flag of the minimd command.
type cliFlags struct {
	common commonFlags
	io     ioFlags
	render renderFlags
	page   pageFlags
	footer footerFlags
	assets assetFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVar(&f.listStyles, "list-styles", false, "list document and highlight styles")
}

func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF page load timeout (e.g. 30s, 2m)")
	fs.BoolVar(&f.statements, "statements", false, "print classified lines as YAML instead of rendering")
	fs.StringArrayVarP(&f.exclude, "exclude", "x", nil, "skip paths matching a glob, e.g. 'drafts/**' (repeatable)")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "markdown engine: mini, goldmark")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks")
	fs.BoolVar(&f.fragment, "fragment", false, "emit the HTML fragment without the document shell")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first h1)")
	fs.BoolVar(&f.pdf, "pdf", false, "write PDF instead of HTML")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name, file path or inline CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Usage goes to usageOut on -h.
func parseFlags(args []string, usageOut io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("minimd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addRenderFlags(fs, &f.render)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
