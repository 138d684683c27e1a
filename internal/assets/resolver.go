package assets

import "errors"

// AssetResolver serves assets from an optional custom directory, falling
// back to the embedded assets when the directory lacks one. Only a miss
// falls back; invalid names and read errors are returned as-is.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewAssetResolver creates a resolver. An empty customBasePath serves the
// embedded assets only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// LoadStyle returns the named style.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.load(styleKind, name)
}

// LoadTemplate returns the named template.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.load(templateKind, name)
}

func (r *AssetResolver) load(kind assetKind, name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.load(kind, name)
		if !errors.Is(err, kind.notFound) {
			return content, err
		}
	}
	return r.embedded.load(kind, name)
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
