package geo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiLineString(t *testing.T) {
	tests := []struct {
		name    string
		coords  string
		want    []Line
		wantErr bool
	}{
		{
			name:   "two lines",
			coords: `[[[139.0,35.0],[139.1,35.1]],[[1,2,3]]]`,
			want: []Line{
				{{"139.0", "35.0"}, {"139.1", "35.1"}},
				{{"1", "2", "3"}},
			},
		},
		{
			name:   "null coordinates",
			coords: `null`,
		},
		{
			name: "absent coordinates",
		},
		{
			name:    "line string shape",
			coords:  `[[139.0,35.0],[139.1,35.1]]`,
			wantErr: true,
		},
		{
			name:    "non numeric",
			coords:  `[[["a","b"]]]`,
			wantErr: true,
		},
		{
			name:    "null elements",
			coords:  `[[[null,null],[139.1,35.1]]]`,
			wantErr: true,
		},
		{
			name:    "numeric strings",
			coords:  `[[["139.0","35.0"]]]`,
			wantErr: true,
		},
		{
			name:    "boolean element",
			coords:  `[[[true,35.0]]]`,
			wantErr: true,
		},
		{
			name:   "null position",
			coords: `[[null,[1,2]]]`,
			want:   []Line{{nil, {"1", "2"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := GeoJSONGeometry{Type: TypeMultiLineString}
			if tt.coords != "" {
				g.Coordinates = json.RawMessage(tt.coords)
			}

			lines, err := g.MultiLineString()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestFeatureDecoding(t *testing.T) {
	data := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": null, "properties": null},
			{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 2]},
			 "properties": {"vt_rdctg": "一般道", "vt_rnkwidth": 3}}
		]
	}`

	var fc GeoJSONFeatureCollection
	require.NoError(t, json.Unmarshal([]byte(data), &fc))
	require.Len(t, fc.Features, 2)

	assert.Equal(t, "", fc.Features[0].GeometryType())
	_, ok := fc.Features[0].Property("vt_rdctg")
	assert.False(t, ok)

	assert.Equal(t, "Point", fc.Features[1].GeometryType())
	v, ok := fc.Features[1].Property("vt_rdctg")
	require.True(t, ok)
	assert.JSONEq(t, `"一般道"`, string(v))
	v, ok = fc.Features[1].Property("vt_rnkwidth")
	require.True(t, ok)
	assert.Equal(t, "3", string(v))
}
