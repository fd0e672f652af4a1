package codec

import (
	"github.com/mapsmith/mapview/mods/codec/internal/box"
	"github.com/mapsmith/mapview/mods/codec/internal/csv"
	"github.com/mapsmith/mapview/mods/codec/internal/geojson"
	"github.com/mapsmith/mapview/mods/codec/internal/json"
	"github.com/mapsmith/mapview/mods/stream/spec"
)

func OutputStream(s spec.OutputStream) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.Output = s
		case *csv.Exporter:
			e.Output = s
		case *geojson.Exporter:
			e.Output = s
		case *json.Exporter:
			e.Output = s
		}
	}
}

func Precision(p int) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.Precision = p
		case *csv.Exporter:
			e.Precision = p
		case *json.Exporter:
			e.Precision = p
		}
	}
}

func Rownum(b bool) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.Rownum = b
		case *csv.Exporter:
			e.Rownum = b
		case *json.Exporter:
			e.Rownum = b
		}
	}
}

func Heading(b bool) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.Heading = b
		case *csv.Exporter:
			e.Heading = b
		case *json.Exporter:
			e.Heading = b
		}
	}
}

// CSV only
func Delimiter(delimiter string) Option {
	return func(one any) {
		switch e := one.(type) {
		case *csv.Exporter:
			e.Delimiter = delimiter
		}
	}
}

// BOX only
func BoxStyle(style string) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.Style = style
		}
	}
}

func BoxSeparateColumns(flag bool) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.SeparateColumns = flag
		}
	}
}

func BoxDrawBorder(flag bool) Option {
	return func(one any) {
		switch e := one.(type) {
		case *box.Exporter:
			e.DrawBorder = flag
		}
	}
}
