package render

import (
	"errors"
	"strings"
	"testing"
)

func TestNewChromaFormatter(t *testing.T) {
	t.Parallel()

	t.Run("known style", func(t *testing.T) {
		t.Parallel()

		f, err := NewChromaFormatter("monokai")
		if err != nil {
			t.Fatalf("NewChromaFormatter() error = %v", err)
		}
		if f == nil {
			t.Fatal("NewChromaFormatter() returned nil")
		}
	})

	t.Run("style name is case-insensitive", func(t *testing.T) {
		t.Parallel()

		if _, err := NewChromaFormatter("Monokai"); err != nil {
			t.Errorf("NewChromaFormatter(\"Monokai\") error = %v", err)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := NewChromaFormatter("no-such-style-xyz")
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("NewChromaFormatter() error = %v, want ErrUnknownStyle", err)
		}
	})
}

func TestChromaFormatter_FormatCode(t *testing.T) {
	t.Parallel()

	f, err := NewChromaFormatter("monokai")
	if err != nil {
		t.Fatalf("NewChromaFormatter() error = %v", err)
	}

	got, err := f.FormatCode([]string{"package main", "", "func main() {}"})
	if err != nil {
		t.Fatalf("FormatCode() error = %v", err)
	}
	if !strings.Contains(got, "<pre") {
		t.Errorf("FormatCode() = %q, want a <pre> block", got)
	}
	if !strings.Contains(got, "main") {
		t.Errorf("FormatCode() = %q, want code text preserved", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("FormatCode() = %q, want trailing newline", got)
	}
}

func TestRenderer_WithChroma(t *testing.T) {
	t.Parallel()

	f, err := NewChromaFormatter("github")
	if err != nil {
		t.Fatalf("NewChromaFormatter() error = %v", err)
	}
	got := New(WithCodeFormatter(f)).Document("# Code\n     x = 1")

	if !strings.HasPrefix(got, "<h1>Code</h1>\n") {
		t.Errorf("Document() = %q, want header first", got)
	}
	if strings.Contains(got, "<pre>\nx = 1</pre>") {
		t.Errorf("Document() = %q, want highlighted block, not plain", got)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if len(names) == 0 {
		t.Fatal("StyleNames() returned nothing")
	}
	found := false
	for _, n := range names {
		if n == "monokai" {
			found = true
		}
	}
	if !found {
		t.Error("StyleNames() missing monokai")
	}
}
