// Package geo handles geographic data structures read from GeoJSON documents.
package geo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TypeMultiLineString is the only geometry type converted to paths.
const TypeMultiLineString = "MultiLineString"

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
// Property values are kept raw so they can be copied without re-encoding.
type GeoJSONFeature struct {
	Properties map[string]json.RawMessage `json:"properties"`
	Geometry   *GeoJSONGeometry           `json:"geometry"`
	Type       string                     `json:"type"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates are decoded lazily, depending on Type.
type GeoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Position is a single vertex, [Lon, Lat, ...], with numbers kept as written.
type Position []json.Number

// UnmarshalJSON accepts only number elements, keeping their literal text.
// A null position decodes to an empty one.
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}

	pos := make(Position, len(raw))
	for i, v := range raw {
		v = bytes.TrimSpace(v)
		if len(v) == 0 || (v[0] != '-' && (v[0] < '0' || v[0] > '9')) {
			return fmt.Errorf("position element %d: %s is not a number", i, v)
		}
		pos[i] = json.Number(v)
	}
	*p = pos

	return nil
}

// Line is an ordered sequence of positions.
type Line []Position

// GeometryType returns the feature geometry type, or "" for a null geometry.
func (f GeoJSONFeature) GeometryType() string {
	if f.Geometry == nil {
		return ""
	}

	return f.Geometry.Type
}

// Property returns the raw property value and whether the key is present.
func (f GeoJSONFeature) Property(key string) (json.RawMessage, bool) {
	v, ok := f.Properties[key]
	return v, ok
}

// MultiLineString decodes the coordinates as a list of lines.
// Absent or null coordinates decode to no lines.
func (g GeoJSONGeometry) MultiLineString() ([]Line, error) {
	if len(g.Coordinates) == 0 || string(g.Coordinates) == "null" {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal(g.Coordinates, &lines); err != nil {
		return nil, fmt.Errorf("decode %s coordinates: %w", g.Type, err)
	}

	return lines, nil
}
