package scanner

import "unicode/utf8"

// eof is returned by the cursor once the input is exhausted.
const eof rune = -1

// cursor is a one-character lookahead over normalized text. It is owned by a
// single scan and never shared.
//
// The line buffer is the slice of src from lineStart up to and including the
// current character; it grows with every advance and is cleared by resetLine.
type cursor struct {
	src       string
	pos       int // byte offset of ch
	width     int // byte width of ch, 0 at eof
	ch        rune
	column    int
	line      int
	lineStart int
}

func newCursor(src string) *cursor {
	c := &cursor{src: src, ch: eof}
	c.decode()
	return c
}

// decode loads the character at pos, or eof past the end.
func (c *cursor) decode() {
	if c.pos >= len(c.src) {
		c.pos = len(c.src)
		c.ch, c.width = eof, 0
		return
	}
	c.ch, c.width = utf8.DecodeRuneInString(c.src[c.pos:])
}

// advance moves to the next character. Advancing at eof is a no-op.
func (c *cursor) advance() {
	if c.ch == eof {
		return
	}
	c.pos += c.width
	c.column++
	c.decode()
}

// skipSpaces advances over ASCII spaces only; tabs are content.
// Skipped spaces remain in the line buffer.
func (c *cursor) skipSpaces() {
	for c.ch == ' ' {
		c.advance()
	}
}

// consumeToLineEnd advances until the current character is a newline or eof.
// The newline itself is left for resetLine.
func (c *cursor) consumeToLineEnd() {
	for c.ch != '\n' && c.ch != eof {
		c.advance()
	}
}

// resetLine steps over the newline ending the current line and starts
// buffering the next one at column 0.
func (c *cursor) resetLine() {
	c.line++
	c.advance()
	c.column = 0
	c.lineStart = c.pos
}

// buffered returns everything consumed since the start of the line,
// including the current character.
func (c *cursor) buffered() string {
	return c.src[c.lineStart : c.pos+c.width]
}

// since returns the text from offset up to, but excluding, the current
// character.
func (c *cursor) since(offset int) string {
	return c.src[offset:c.pos]
}

// position reports where the cursor is.
func (c *cursor) position() Position {
	return Position{Column: c.column, Line: c.line}
}
