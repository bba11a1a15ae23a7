package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "cogni-recommender/internal/common/errors"
)

// Document is the on-disk shape of a catalog override file.
type Document struct {
	Version  string              `json:"version"`
	Packages []PackageDefinition `json:"packages"`
}

// LoadFile reads a catalog document from path. An empty path returns the
// built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewCatalogLoadFailedError(fmt.Sprintf("read %s: %v", path, err))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewCatalogLoadFailedError(fmt.Sprintf("parse %s: %v", path, err))
	}

	return New(doc.Packages)
}
