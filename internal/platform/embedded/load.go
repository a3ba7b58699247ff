package embedded

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/phrazzld/apiref/internal/domain"
)

// ErrDecode is returned when a catalog document is not valid YAML or does
// not match the catalog schema.
var ErrDecode = errors.New("catalog decode failed")

// Load decodes and validates the embedded catalog.
func Load() (*domain.Catalog, error) {
	return Parse(catalogYAML, "embedded catalog.yaml")
}

// LoadFile decodes and validates a catalog document from disk. It is used
// to serve a catalog other than the compiled-in one.
func LoadFile(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFrom returns the catalog at path, or the embedded catalog when path is
// empty.
func LoadFrom(path string) (*domain.Catalog, error) {
	if path == "" {
		return Load()
	}
	return LoadFile(path)
}

// Parse decodes a catalog document. Unknown fields are rejected so typos in
// hand-edited catalogs surface at startup. source names the document in
// errors.
func Parse(data []byte, source string) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if err := yaml.UnmarshalWithOptions(data, &catalog, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, source, err)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog from %s: %w", source, err)
	}

	return &catalog, nil
}
