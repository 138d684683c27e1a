package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-minimd"
	"github.com/alnah/go-minimd/internal/assets"
	"github.com/alnah/go-minimd/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrBatchFailed    = errors.New("conversions failed") // failures already reported per file
)

// stdinArg selects standard input as the source.
const stdinArg = "-"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// conversionParams groups the per-document Input fields shared by a run.
type conversionParams struct {
	title  string
	pdf    bool
	page   *minimd.PageSettings
	footer *minimd.Footer
}

// input builds the conversion input for one document. Relative links in the
// PDF resolve against sourceDir.
func (p *conversionParams) input(markdown, sourceDir string) minimd.Input {
	return minimd.Input{
		Markdown:  markdown,
		SourceDir: sourceDir,
		Title:     p.title,
		PDF:       p.pdf,
		Page:      p.page,
		Footer:    p.footer,
	}
}

// outputExt is the extension of converted files.
func (p *conversionParams) outputExt() string {
	if p.pdf {
		return extPDF
	}
	return extHTML
}

// runCLI executes one invocation with parsed flags.
func runCLI(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "minimd %s\n", Version)
		return nil
	}
	if flags.common.listStyles {
		printStyles(env.Stdout)
		return nil
	}

	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(args))
	}
	if err := validateWorkers(flags.io.workers); err != nil {
		return err
	}
	if err := validatePatterns(flags.io.exclude); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)
	if err := validatePatterns(cfg.Input.Exclude); err != nil {
		return err
	}

	inputPath := stdinArg
	if len(args) == 1 {
		inputPath = args[0]
	}
	// The statements dump is a single file; the default output directory
	// only applies to converted documents.
	if flags.io.statements {
		return runStatements(inputPath, flags.io.output, cfg.Input.Exclude, env)
	}

	output := flags.io.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}

	timeout, err := parseTimeout(flags.io.timeout)
	if err != nil {
		return err
	}
	params, err := buildParams(cfg, flags.render.pdf)
	if err != nil {
		return err
	}
	opts := converterOptions(cfg, flags.assets.noStyle, timeout)

	if inputPath == stdinArg {
		return convertStdin(ctx, opts, params, output, flags.common.verbose, env)
	}

	files, err := discoverFiles(inputPath, output, params.outputExt(), cfg.Input.Exclude)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	poolSize := min(minimd.ResolvePoolSize(flags.io.workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), poolSize)
	}
	pool, err := minimd.NewConverterPool(poolSize, opts...)
	if err != nil {
		return err
	}
	defer pool.Close()

	results := convertBatch(ctx, &converterPool{pool: pool}, files, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	switch {
	case failed == 0:
		return nil
	case len(results) == 1:
		return fmt.Errorf("%w: %w", ErrBatchFailed, results[0].Err)
	default:
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
}

// mergeFlags merges CLI flags into cfg. Flags that were set win.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	cfg.Input.Exclude = append(cfg.Input.Exclude, flags.io.exclude...)
	if flags.render.engine != "" {
		cfg.Engine = flags.render.engine
	}
	if flags.render.highlight != "" {
		cfg.Highlight = flags.render.highlight
	}
	if flags.render.fragment {
		cfg.Fragment = true
	}
	if flags.render.title != "" {
		cfg.Document.Title = flags.render.title
	}
	if flags.assets.style != "" {
		cfg.CSS.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
		cfg.Footer.Enabled = true
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
		cfg.Footer.Enabled = true
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}
}

// converterOptions translates cfg into converter options. Without an explicit
// style the embedded default style applies, unless noStyle is set.
func converterOptions(cfg *config.Config, noStyle bool, timeout time.Duration) []minimd.Option {
	opts := []minimd.Option{
		minimd.WithEngine(cfg.Engine),
		minimd.WithHighlight(cfg.Highlight),
	}

	style := cfg.CSS.Style
	if style == "" {
		style = assets.DefaultStyleName
	}
	if !noStyle {
		opts = append(opts, minimd.WithStyle(style))
	}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, minimd.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Fragment {
		opts = append(opts, minimd.WithFragment())
	}
	if timeout > 0 {
		opts = append(opts, minimd.WithTimeout(timeout))
	}
	return opts
}

// buildParams builds page and footer settings from cfg and validates them
// before any file is read.
func buildParams(cfg *config.Config, pdf bool) (*conversionParams, error) {
	params := &conversionParams{
		title: cfg.Document.Title,
		pdf:   pdf,
	}

	if cfg.Page.Size != "" || cfg.Page.Orientation != "" || cfg.Page.Margin > 0 {
		page := minimd.DefaultPageSettings()
		if cfg.Page.Size != "" {
			page.Size = strings.ToLower(cfg.Page.Size)
		}
		if cfg.Page.Orientation != "" {
			page.Orientation = strings.ToLower(cfg.Page.Orientation)
		}
		if cfg.Page.Margin > 0 {
			page.Margin = cfg.Page.Margin
		}
		if err := page.Validate(); err != nil {
			return nil, err
		}
		params.page = page
	}

	if cfg.Footer.Enabled {
		footer := &minimd.Footer{
			Position:       cfg.Footer.Position,
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			Text:           cfg.Footer.Text,
		}
		if err := footer.Validate(); err != nil {
			return nil, err
		}
		params.footer = footer
	}

	return params, nil
}

// parseTimeout parses the --timeout value; empty means the library default.
func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// convertStdin converts standard input and writes the result to output, or
// to stdout when output is empty.
func convertStdin(ctx context.Context, opts []minimd.Option, params *conversionParams, output string, verbose bool, env *Environment) error {
	start := env.Now()

	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	conv, err := minimd.NewConverter(opts...)
	if err != nil {
		return err
	}
	defer conv.Close()

	res, err := conv.Convert(ctx, params.input(string(content), "."))
	if err != nil {
		return err
	}

	out := res.HTML
	if params.pdf {
		out = res.PDF
	}

	if output == "" {
		if _, err := env.Stdout.Write(out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	} else if err := writeOutput(output, out); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(env.Stderr, "stdin -> %s (%v)\n", displayPath(output), env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}

// printStyles lists the embedded document styles and chroma styles.
func printStyles(w io.Writer) {
	fmt.Fprintln(w, "Document styles:")
	for _, name := range minimd.StyleNames() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlight styles:")
	for _, name := range minimd.HighlightStyles() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
