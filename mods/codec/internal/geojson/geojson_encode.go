package geojson

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/stream/spec"
)

// Exporter renders rows as a GeoJSON FeatureCollection. The first
// column must carry the geometry; the remaining columns become feature
// properties keyed by column name. Features accumulate in memory and
// the collection is written at Close.
type Exporter struct {
	fc       *geojson.FeatureCollection
	colNames []string
	nrow     int

	Output spec.OutputStream
}

func NewEncoder() *Exporter {
	return &Exporter{}
}

func (ex *Exporter) ContentType() string {
	return "application/geo+json"
}

func (ex *Exporter) Open(cols ...string) error {
	ex.fc = geojson.NewFeatureCollection()
	ex.colNames = cols
	return nil
}

func (ex *Exporter) Close() {
	if ex.fc != nil {
		if b, err := ex.fc.MarshalJSON(); err == nil {
			ex.Output.Write(b)
		}
	}
	ex.Output.Close()
}

func (ex *Exporter) Flush(heading bool) {
	ex.Output.Flush()
}

func (ex *Exporter) AddRow(values []any) error {
	if len(values) == 0 {
		return nil
	}

	var feat *geojson.Feature
	switch v := values[0].(type) {
	case nums.Tile:
		feat = geojson.NewFeature(v.Polygon())
	case *nums.Extent:
		feat = geojson.NewFeature(v.Bound().ToPolygon())
	case nums.Point:
		feat = geojson.NewFeature(orb.Point{v.X, v.Y})
	case orb.Geometry:
		feat = geojson.NewFeature(v)
	default:
		return fmt.Errorf("geojson cannot render %T as geometry", values[0])
	}

	for i, val := range values[1:] {
		name := fmt.Sprintf("field_%d", i+1)
		if i+1 < len(ex.colNames) {
			name = ex.colNames[i+1]
		}
		switch v := val.(type) {
		case float64:
			feat.Properties[name] = jsonSafe(v)
		case *float64:
			feat.Properties[name] = jsonSafe(*v)
		case nums.Tile:
			feat.Properties[name] = v.String()
		case *nums.Extent:
			feat.Properties[name] = v.String()
		default:
			feat.Properties[name] = val
		}
	}

	ex.fc.Append(feat)
	ex.nrow++
	return nil
}

func jsonSafe(v float64) any {
	if math.IsNaN(v) {
		return "NaN"
	} else if math.IsInf(v, -1) {
		return "-Inf"
	} else if math.IsInf(v, 1) {
		return "+Inf"
	}
	return v
}
