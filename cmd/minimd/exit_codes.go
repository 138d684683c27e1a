package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-minimd"
	"github.com/alnah/go-minimd/internal/config"
)

// Exit codes for the minimd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for err. It relies on errors.Is, so
// errors must be wrapped with %w.
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	if errors.Is(err, minimd.ErrBrowserConnect) ||
		errors.Is(err, minimd.ErrPageCreate) ||
		errors.Is(err, minimd.ErrPageLoad) ||
		errors.Is(err, minimd.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, minimd.ErrUnknownEngine) ||
		errors.Is(err, minimd.ErrUnknownHighlightStyle) ||
		errors.Is(err, minimd.ErrInvalidPageSize) ||
		errors.Is(err, minimd.ErrInvalidOrientation) ||
		errors.Is(err, minimd.ErrInvalidMargin) ||
		errors.Is(err, minimd.ErrInvalidFooterPosition) ||
		errors.Is(err, minimd.ErrStyleNotFound) ||
		errors.Is(err, minimd.ErrTemplateNotFound) ||
		errors.Is(err, minimd.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
