package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-minimd"
	"github.com/alnah/go-minimd/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"help", flag.ErrHelp, ExitSuccess},
		{"browser connect", minimd.ErrBrowserConnect, ExitBrowser},
		{"page load wrapped", fmt.Errorf("converting: %w", minimd.ErrPageLoad), ExitBrowser},
		{"pdf generation", minimd.ErrPDFGeneration, ExitBrowser},
		{"single file batch keeps cause", fmt.Errorf("%w: %w", ErrBatchFailed, minimd.ErrBrowserConnect), ExitBrowser},
		{"not exist", os.ErrNotExist, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no markdown files", ErrNoMarkdownFiles, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"unknown engine", minimd.ErrUnknownEngine, ExitUsage},
		{"unknown highlight", minimd.ErrUnknownHighlightStyle, ExitUsage},
		{"page size", minimd.ErrInvalidPageSize, ExitUsage},
		{"style not found", minimd.ErrStyleNotFound, ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"pattern", ErrInvalidPattern, ExitUsage},
		{"timeout", ErrInvalidTimeout, ExitUsage},
		{"batch", fmt.Errorf("%w: 2 of 3", ErrBatchFailed), ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
