package processor

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/woozymasta/deckpath/internal/geo"

	"github.com/iancoleman/orderedmap"
	"github.com/rs/zerolog/log"
)

// Record is one output path, optionally with copied feature properties.
type Record struct {
	Path       []geo.Position         `json:"path"`
	Properties *orderedmap.OrderedMap `json:"properties,omitempty"`
}

// Rule controls how a feature collection is turned into records.
type Rule struct {
	// Default is written for properties the feature does not have.
	Default string

	// Properties to copy onto every record, in output order.
	// Empty means records carry no properties field.
	Properties []string

	// Z is appended to every vertex.
	Z float64
}

// Transform converts every MultiLineString line into a record with Z appended.
// Features with other geometry types are skipped with a notice.
func Transform(fc *geo.GeoJSONFeatureCollection, rule Rule) ([]Record, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: GeoJSON has no features", ErrValidation)
	}

	z := json.Number(strconv.FormatFloat(rule.Z, 'f', -1, 64))
	records := make([]Record, 0, len(fc.Features))

	for i, feature := range fc.Features {
		geomType := feature.GeometryType()
		if geomType != geo.TypeMultiLineString {
			log.Info().
				Int("feature", i).
				Str("type", geomType).
				Msg("Skipping feature with unsupported geometry type")
			continue
		}

		lines, err := feature.Geometry.MultiLineString()
		if err != nil {
			return nil, fmt.Errorf("%w: feature %d: %w", ErrValidation, i, err)
		}

		var props *orderedmap.OrderedMap
		if len(rule.Properties) > 0 {
			props = copyProperties(feature, rule)
		}

		for j, line := range lines {
			path := make([]geo.Position, len(line))
			for k, pos := range line {
				if len(pos) < 2 {
					return nil, fmt.Errorf(
						"%w: feature %d line %d position %d: need at least [lon, lat], got %d values",
						ErrValidation, i, j, k, len(pos))
				}
				path[k] = geo.Position{pos[0], pos[1], z}
			}

			records = append(records, Record{Path: path, Properties: props})
		}
	}

	return records, nil
}

// copyProperties picks the rule properties from the feature.
// Strings are decoded so escaped text is written back unescaped;
// other values are kept raw.
func copyProperties(feature geo.GeoJSONFeature, rule Rule) *orderedmap.OrderedMap {
	props := orderedmap.New()
	props.SetEscapeHTML(false)

	for _, key := range rule.Properties {
		if v, ok := feature.Property(key); ok {
			props.Set(key, propertyValue(v))
		} else {
			props.Set(key, rule.Default)
		}
	}

	return props
}

func propertyValue(raw json.RawMessage) any {
	// null also decodes into a string without error
	if len(raw) > 0 && raw[0] == '"' {
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return str
		}
	}

	return raw
}
