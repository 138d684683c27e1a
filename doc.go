// Package minimd converts a small, line-oriented subset of Markdown to HTML,
// and optionally prints the result to PDF using headless Chrome.
//
// # Supported Syntax
//
// Each source line is classified on its own:
//
//   - "# Title" to "###### Title": headers h1 to h6
//   - a line indented by five or more spaces: preformatted code
//   - "> text": a block quote; the text is rendered as its own document
//   - an empty or space-only line: separates blocks
//   - anything else: a paragraph line; consecutive lines join with <br/>
//
// Inline formatting, lists, links and fenced code are not recognized, and
// text is passed through without HTML escaping.
//
// # Quick Start
//
// For a fragment, call ToHTML directly:
//
//	html := minimd.ToHTML("# Hello\n\nWorld")
//	// <h1>Hello</h1>\n<p>World</p>\n
//
// For a styled document or a PDF, use a Converter:
//
//	conv, err := minimd.NewConverter(
//	    minimd.WithStyle("print"),
//	    minimd.WithHighlight("github"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, minimd.Input{
//	    Markdown: content,
//	    PDF:      true,
//	    Page:     &minimd.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.75},
//	    Footer:   &minimd.Footer{ShowPageNumber: true},
//	})
//
// # Conversion Pipeline
//
//  1. Line ending normalization
//  2. Line classification into Statements (see Parse)
//  3. Rendering, with optional chroma highlighting of code blocks
//  4. Document shell from the asset template, with the resolved CSS
//  5. PDF rendering via go-rod (only when Input.PDF is set)
//
// WithEngine(EngineGoldmark) replaces steps 1 to 3 with goldmark for
// documents that need full CommonMark.
//
// # Parallel Processing
//
// HTML conversion is safe for concurrent use. For batch PDF output, use
// ConverterPool so each worker owns a browser:
//
//	pool, err := minimd.NewConverterPool(minimd.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	defer pool.Release(conv)
//
// # Custom Assets
//
// WithAssetPath points at a directory laid out like the embedded assets:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── document.html
//
// Anything missing from the directory falls back to the embedded version.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. go-rod downloads a managed
// Chromium on first use unless ROD_BROWSER_BIN names one. Set
// ROD_NO_SANDBOX=1 in containers and CI.
package minimd
