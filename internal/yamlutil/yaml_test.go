package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-minimd/internal/yamlutil"
)

type sample struct {
	Engine    string `yaml:"engine"`
	Highlight string `yaml:"highlight"`
	Fragment  bool   `yaml:"fragment"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dest    any
		want    sample
		wantErr error
	}{
		{
			name: "valid",
			data: "engine: mini\nhighlight: monokai\nfragment: true\n",
			dest: &sample{},
			want: sample{Engine: "mini", Highlight: "monokai", Fragment: true},
		},
		{
			name: "unknown field ignored",
			data: "engine: goldmark\nextra: 1\n",
			dest: &sample{},
			want: sample{Engine: "goldmark"},
		},
		{
			name:    "empty input",
			data:    "",
			dest:    &sample{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil destination",
			data:    "engine: mini",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal([]byte(tt.data), tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
			if got := *tt.dest.(*sample); got != tt.want {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshal_Syntax(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal([]byte("engine: [unclosed"), &sample{})
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.HasPrefix(err.Error(), "yaml:") {
		t.Errorf("error = %q, want yaml: prefix", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("engine: mini\nextra: 1\n"), &sample{})
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestUnmarshalStrict_Valid(t *testing.T) {
	t.Parallel()

	var got sample
	if err := yamlutil.UnmarshalStrict([]byte("engine: mini\n"), &got); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if got.Engine != "mini" {
		t.Errorf("Engine = %q, want %q", got.Engine, "mini")
	}
}

// Not parallel: modifies the package-level MaxInputSize.
func TestUnmarshal_InputTooLarge(t *testing.T) {
	orig := yamlutil.MaxInputSize
	yamlutil.MaxInputSize = 16
	defer func() { yamlutil.MaxInputSize = orig }()

	err := yamlutil.Unmarshal([]byte("engine: "+strings.Repeat("x", 32)), &sample{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	type doc struct {
		Items []sample `yaml:"items"`
	}

	out, err := yamlutil.Marshal(doc{Items: []sample{{Engine: "mini"}}})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "items:\n  - engine: mini") {
		t.Errorf("Marshal() = %q, want indented sequence", out)
	}

	var back doc
	if err := yamlutil.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal(Marshal()) error: %v", err)
	}
	if len(back.Items) != 1 || back.Items[0].Engine != "mini" {
		t.Errorf("round trip = %+v", back)
	}
}
