package minimd

import (
	"github.com/alnah/go-minimd/internal/render"
	"github.com/alnah/go-minimd/internal/scanner"
)

// Statement is one classified source line.
type Statement = scanner.Statement

// Kind identifies the block a line belongs to.
type Kind = scanner.Kind

// Position locates a character by column and line.
type Position = scanner.Position

// Line kinds.
const (
	BlankLine     = scanner.BlankLine
	Header1       = scanner.Header1
	Header2       = scanner.Header2
	Header3       = scanner.Header3
	Header4       = scanner.Header4
	Header5       = scanner.Header5
	Header6       = scanner.Header6
	ParagraphLine = scanner.ParagraphLine
	CodeLine      = scanner.CodeLine
	QuoteLine     = scanner.QuoteLine
)

var plainRenderer = render.New()

// ToHTML converts markdown to an HTML fragment using the block subset:
// ATX headers, paragraphs, space-indented code and block quotes. It accepts
// any input, including the empty string, and never fails. Text is not
// escaped.
func ToHTML(markdown string) string {
	return plainRenderer.Document(markdown)
}

// Parse classifies every line of markdown, one Statement per line.
func Parse(markdown string) []Statement {
	return scanner.Parse(markdown)
}

// Normalize converts all line endings to \n and ensures a trailing newline.
func Normalize(markdown string) string {
	return scanner.Normalize(markdown)
}
