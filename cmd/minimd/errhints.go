package main

import (
	"context"
	"errors"

	"github.com/alnah/go-minimd"
	"github.com/alnah/go-minimd/internal/config"
	"github.com/alnah/go-minimd/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, minimd.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, minimd.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, minimd.ErrStyleNotFound):
		return hints.ForStyleNotFound(minimd.StyleNames())
	case errors.Is(err, minimd.ErrUnknownEngine):
		return hints.ForEngine(minimd.Engines())
	case errors.Is(err, minimd.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(minimd.HighlightStyles())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// configHint returns the hint for a config file that could not be found.
func configHint(err error, nameOrPath string) string {
	if !errors.Is(err, config.ErrConfigNotFound) {
		return ""
	}
	return hints.ForConfigNotFound(config.SearchPaths(nameOrPath))
}
