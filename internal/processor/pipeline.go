package processor

import (
	"fmt"

	"github.com/woozymasta/deckpath/internal/config"
	"github.com/woozymasta/deckpath/internal/geo"

	"github.com/rs/zerolog/log"
)

// Run loads every dataset, converts them all, then writes the outputs.
// It stops at the first error; outputs written before it are kept.
// The returned slice lists the written output paths in dataset order.
func Run(datasets []config.Dataset) ([]string, error) {
	inputs := make([]*geo.GeoJSONFeatureCollection, len(datasets))
	for i, d := range datasets {
		log.Debug().
			Str("dataset", d.Name).
			Str("input", d.Input).
			Msg("Loading GeoJSON")

		fc, err := Load(d.Input)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		inputs[i] = fc
	}

	results := make([][]Record, len(datasets))
	for i, d := range datasets {
		records, err := Transform(inputs[i], RuleFor(d))
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		results[i] = records

		log.Debug().
			Str("dataset", d.Name).
			Int("features", len(inputs[i].Features)).
			Int("paths", len(records)).
			Msg("Dataset converted")
	}

	written := make([]string, 0, len(datasets))
	for i, d := range datasets {
		if err := Write(d.Output, results[i]); err != nil {
			return written, fmt.Errorf("dataset %s: %w", d.Name, err)
		}
		written = append(written, d.Output)

		log.Info().
			Str("dataset", d.Name).
			Str("output", d.Output).
			Int("paths", len(results[i])).
			Msg("Paths written")
	}

	return written, nil
}

// RuleFor builds the transform rule for a configured dataset.
func RuleFor(d config.Dataset) Rule {
	return Rule{
		Z:          d.Z,
		Properties: d.Properties,
		Default:    d.PropertyDefault(),
	}
}
