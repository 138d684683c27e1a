package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader reads assets from a directory laid out like the embedded
// ones: styles/<name>.css and templates/<name>.html.
type FilesystemLoader struct {
	root string // absolute, symlinks resolved
}

// NewFilesystemLoader opens basePath. It fails with ErrInvalidBasePath
// unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	root, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		root = real
	}

	// ReadDir rejects missing paths, plain files and unreadable directories.
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{root: root}, nil
}

// LoadStyle reads styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(styleKind, name)
}

// LoadTemplate reads templates/<name>.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load(templateKind, name)
}

// load reads one asset. Symlinks are followed before the containment check,
// so a link pointing outside the root is refused.
func (f *FilesystemLoader) load(kind assetKind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.root, kind.dir, name+kind.ext)
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}
	if !f.contains(path) {
		return "", fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- contained in root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", kind.notFound, name)
	case err != nil:
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// contains reports whether path lies strictly below the root.
func (f *FilesystemLoader) contains(path string) bool {
	rel, err := filepath.Rel(f.root, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

var _ AssetLoader = (*FilesystemLoader)(nil)
