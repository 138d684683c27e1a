package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: minimd [flags] [file|dir|-]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to HTML or PDF. Without an argument, or with \"-\",")
	fmt.Fprintln(w, "reads stdin and writes to stdout. A directory is searched for .md and")
	fmt.Fprintln(w, ".markdown files, converted in parallel.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF page load timeout (e.g. 30s, 2m)")
	fmt.Fprintln(w, "  -x, --exclude <glob>      Skip matching paths in a directory (repeatable)")
	fmt.Fprintln(w, "      --statements          Print classified lines as YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: mini (default), goldmark")
	fmt.Fprintln(w, "      --highlight <s>       Chroma style for code blocks")
	fmt.Fprintln(w, "      --fragment            Omit the HTML document shell")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first h1)")
	fmt.Fprintln(w, "      --pdf                 Write PDF instead of HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer-position <s> Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name, CSS file path or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w, "      --list-styles         List document and highlight styles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --version             Show version")
}
