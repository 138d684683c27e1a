package minimd

import "errors"

// Sentinel errors for library operations.
// ToHTML and Parse never fail; these come from the Converter around them.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrDocumentRender = errors.New("document template rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Converter option errors.
	ErrUnknownEngine         = errors.New("unknown engine")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
