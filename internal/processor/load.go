// Package processor converts GeoJSON centerlines into 3D path records.
package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/deckpath/internal/geo"
)

var (
	// ErrIO reports a file that could not be read or written.
	ErrIO = errors.New("io error")
	// ErrParse reports an input that is not a valid GeoJSON object.
	ErrParse = errors.New("parse error")
	// ErrValidation reports a structurally unusable GeoJSON document.
	ErrValidation = errors.New("validation error")
)

// Load reads a UTF-8 GeoJSON file into a feature collection.
func Load(path string) (*geo.GeoJSONFeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	var fc geo.GeoJSONFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	return &fc, nil
}
