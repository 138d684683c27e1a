package scanner

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding a kind name that does not exist.
var ErrUnknownKind = errors.New("unknown statement kind")

// Kind identifies the block a line belongs to.
type Kind int

// Line kinds. Header1..Header6 are contiguous so that Header1+n-1 is the
// kind of a level n header.
const (
	BlankLine Kind = iota
	Header1
	Header2
	Header3
	Header4
	Header5
	Header6
	ParagraphLine
	CodeLine
	QuoteLine
)

// MaxHeaderLevel is the deepest header level the classifier emits.
const MaxHeaderLevel = 6

var kindNames = [...]string{
	BlankLine:     "blankline",
	Header1:       "header1",
	Header2:       "header2",
	Header3:       "header3",
	Header4:       "header4",
	Header5:       "header5",
	Header6:       "header6",
	ParagraphLine: "paragraphLine",
	CodeLine:      "codeLine",
	QuoteLine:     "quoteLine",
}

// String returns the kind name, e.g. "header2" or "quoteLine".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText lets encoders (YAML, JSON) print kinds by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, text)
}

// HeaderKind returns the kind for a header of the given level.
// Levels outside 1..6 are clamped.
func HeaderKind(level int) Kind {
	if level < 1 {
		level = 1
	}
	if level > MaxHeaderLevel {
		level = MaxHeaderLevel
	}
	return Header1 + Kind(level-1)
}

// IsHeader reports whether k is one of Header1..Header6.
func (k Kind) IsHeader() bool {
	return k >= Header1 && k <= Header6
}

// HeaderLevel returns 1..6 for header kinds and 0 otherwise.
func (k Kind) HeaderLevel() int {
	if !k.IsHeader() {
		return 0
	}
	return int(k-Header1) + 1
}

// Position locates the cursor inside the document.
type Position struct {
	Column int `yaml:"column"`
	Line   int `yaml:"line"`
}

// Statement is one classified source line.
type Statement struct {
	Kind Kind   `yaml:"kind"`
	Text string `yaml:"text"`
	Line int    `yaml:"line"` // zero-based source line
}
