package codec

import (
	"github.com/mapsmith/mapview/mods/codec/internal/box"
	"github.com/mapsmith/mapview/mods/codec/internal/csv"
	"github.com/mapsmith/mapview/mods/codec/internal/geojson"
	"github.com/mapsmith/mapview/mods/codec/internal/json"
)

const BOX = "box"
const CSV = "csv"
const JSON = "json"
const GEOJSON = "geojson"

// RowsEncoder renders rows of values onto an output stream. Open takes
// the column names, then AddRow is called once per row, then Close.
type RowsEncoder interface {
	Open(columns ...string) error
	Close()
	AddRow(values []any) error
	Flush(heading bool)
	ContentType() string
}

type Option func(enc any)

func NewEncoder(encoderType string, opts ...Option) RowsEncoder {
	var ret RowsEncoder
	switch encoderType {
	case BOX:
		ret = box.NewEncoder()
	case CSV:
		ret = csv.NewEncoder()
	case GEOJSON:
		ret = geojson.NewEncoder()
	default: // "json"
		ret = json.NewEncoder()
	}
	for _, op := range opts {
		op(ret)
	}
	return ret
}
