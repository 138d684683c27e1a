package scanner

import "strings"

const (
	// CodeThreshold is the column a line's first non-space character must
	// exceed to make it a code line.
	CodeThreshold = 4

	// codeIndent is how many leading spaces a code line gives up; deeper
	// indentation stays in the text.
	codeIndent = CodeThreshold + 1

	// maxMarkerRun bounds the header marker loop. It is one past
	// MaxHeaderLevel, so a seventh '#' is swallowed by a level 6 header while
	// any further ones remain in the text.
	maxMarkerRun = MaxHeaderLevel + 1
)

// Parse normalizes content and classifies every line.
func Parse(content string) []Statement {
	return Scan(Normalize(content))
}

// Scan classifies every line of already normalized text. It returns one
// statement per line, in source order.
func Scan(normalized string) []Statement {
	c := newCursor(normalized)
	stmts := make([]Statement, 0, strings.Count(normalized, "\n")+1)

	for c.ch != eof {
		c.skipSpaces()
		if c.ch == eof {
			break
		}
		stmts = append(stmts, classify(c))
		c.resetLine()
	}
	return stmts
}

// classify consumes the rest of the current line and returns its statement.
// The cursor sits after the leading spaces and is left on the line's newline.
func classify(c *cursor) Statement {
	line := c.line

	switch {
	case c.ch == '\n':
		return Statement{Kind: BlankLine, Text: c.since(c.lineStart), Line: line}

	case c.column > CodeThreshold:
		c.consumeToLineEnd()
		return Statement{Kind: CodeLine, Text: c.since(c.lineStart + codeIndent), Line: line}

	case c.ch == '#':
		level := scanHeaderMarker(c)
		c.skipSpaces()
		start := c.pos
		c.consumeToLineEnd()
		return Statement{Kind: HeaderKind(level), Text: strings.TrimSpace(c.since(start)), Line: line}

	case c.ch == '>':
		c.advance()
		if c.ch == ' ' {
			c.advance()
		}
		start := c.pos
		c.consumeToLineEnd()
		return Statement{Kind: QuoteLine, Text: c.since(start), Line: line}

	default:
		c.consumeToLineEnd()
		return Statement{Kind: ParagraphLine, Text: c.since(c.lineStart), Line: line}
	}
}

// scanHeaderMarker consumes the leading run of '#' and returns the header
// level, capped at MaxHeaderLevel.
func scanHeaderMarker(c *cursor) int {
	level := 0
	for {
		level++
		c.advance()
		if c.ch != '#' || level >= maxMarkerRun {
			break
		}
	}
	return min(level, MaxHeaderLevel)
}

// Classify classifies one line holding no newline, exactly as Scan would
// classify it as the only line of a document. ok is false for a blank line.
//
// A quote line is returned without walking its remainder, so peeling nested
// quote markers off a line costs time proportional to the markers only.
func Classify(line string) (stmt Statement, ok bool) {
	c := newCursor(line)
	c.skipSpaces()

	switch {
	case c.ch == eof:
		return Statement{Kind: BlankLine, Text: line}, false

	case c.ch == '>' && c.column <= CodeThreshold:
		c.advance()
		if c.ch == ' ' {
			c.advance()
		}
		return Statement{Kind: QuoteLine, Text: line[c.pos:]}, true
	}
	return classify(c), true
}
