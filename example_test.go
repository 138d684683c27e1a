package minimd_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-minimd"
)

// Example converts the supported block subset to an HTML fragment.
func Example() {
	fmt.Print(minimd.ToHTML("# Notes\n\nFirst line\nsecond line\n\n     go run .\n> # Aside\n"))
	// Output:
	// <h1>Notes</h1>
	// <p>First line<br/>second line</p>
	// <pre>
	// go run .</pre>
	// <blockquote><h1>Aside</h1>
	// </blockquote>
}

// ExampleParse lists how each line was classified.
func ExampleParse() {
	for _, s := range minimd.Parse("## Setup\n\n      indented\n> tip\nplain") {
		fmt.Printf("%d %s %q\n", s.Line, s.Kind, s.Text)
	}
	// Output:
	// 0 header2 "Setup"
	// 1 blankline ""
	// 2 codeLine " indented"
	// 3 quoteLine "tip"
	// 4 paragraphLine "plain"
}

// ExampleConverter_Convert wraps the fragment in the default document shell.
// Setting Input.PDF also prints it with headless Chrome.
func ExampleConverter_Convert() {
	conv, err := minimd.NewConverter(minimd.WithStyle("default"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), minimd.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	html := string(result.HTML)
	fmt.Println(strings.Contains(html, "<title>Hello World</title>"))
	fmt.Println(strings.Contains(html, "<p>This is a test.</p>"))
	// Output:
	// true
	// true
}

// ExampleWithEngine switches to goldmark for full CommonMark.
func ExampleWithEngine() {
	conv, err := minimd.NewConverter(minimd.WithEngine(minimd.EngineGoldmark), minimd.WithFragment())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer conv.Close()

	result, err := conv.Convert(context.Background(), minimd.Input{Markdown: "- *one*\n- two"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(result.HTML))
	// Output:
	// <ul>
	// <li><em>one</em></li>
	// <li>two</li>
	// </ul>
}
