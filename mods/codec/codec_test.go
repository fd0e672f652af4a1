package codec_test

import (
	"bytes"
	gojson "encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"

	"github.com/mapsmith/mapview/mods/codec"
	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/stream"
)

func TestBoxEncoder(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.BOX,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
		codec.Precision(3),
		codec.Rownum(true),
		codec.Heading(true),
	)
	require.Equal(t, "plain/text", enc.ContentType())

	require.NoError(t, enc.Open("x", "y"))
	require.NoError(t, enc.AddRow([]any{384.0, 256.0}))
	require.NoError(t, enc.AddRow([]any{-300.0, 300.5}))
	enc.Close()

	expects := []string{
		"+--------+----------+---------+",
		"| ROWNUM | X        | Y       |",
		"+--------+----------+---------+",
		"|      1 | 384.000  | 256.000 |",
		"|      2 | -300.000 | 300.500 |",
		"+--------+----------+---------+",
		"",
	}
	require.Equal(t, strings.Join(expects, "\n"), out.String())
}

func TestBoxEncoderPlain(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.BOX,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
		codec.Precision(3),
		codec.BoxSeparateColumns(false),
		codec.BoxDrawBorder(false),
	)
	require.NoError(t, enc.Open("x", "y"))
	require.NoError(t, enc.AddRow([]any{384.0, 256.0}))
	require.NoError(t, enc.AddRow([]any{-300.0, 300.5}))
	enc.Close()

	result := out.String()
	require.NotContains(t, result, "|")
	require.NotContains(t, result, "+--")
	require.Contains(t, result, "384.000")
	require.Contains(t, result, "-300.000")
	require.Contains(t, result, "300.500")
}

func TestCSVEncoder(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.CSV,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
		codec.Heading(true),
	)
	require.Equal(t, "text/csv; charset=utf-8", enc.ContentType())

	require.NoError(t, enc.Open("tile", "z", "x", "y"))
	require.NoError(t, enc.AddRow([]any{nums.Tile{X: 2, Y: 1, Z: 2}, 2, 2, 1}))
	enc.Close()

	require.Equal(t, "tile,z,x,y\n2/2/1,2,2,1\n", out.String())
}

func TestCSVEncoderDelimiter(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.CSV,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
		codec.Delimiter(";"),
	)
	require.NoError(t, enc.Open("lon", "lat"))
	require.NoError(t, enc.AddRow([]any{126.978, 37.5665}))
	require.NoError(t, enc.AddRow([]any{nil, true}))
	enc.Close()

	require.Equal(t, "126.978;37.5665\nNULL;true\n", out.String())
}

func TestJSONEncoder(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.JSON,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
		codec.Rownum(true),
	)
	require.Equal(t, "application/json", enc.ContentType())

	require.NoError(t, enc.Open("lon", "lat"))
	require.NoError(t, enc.AddRow([]any{126.978, 37.5665}))
	require.NoError(t, enc.AddRow([]any{math.NaN(), math.Inf(1)}))
	enc.Close()

	obj := map[string]any{}
	require.NoError(t, gojson.Unmarshal(out.Bytes(), &obj))
	require.Equal(t, true, obj["success"])
	require.Equal(t, "success", obj["reason"])
	require.NotEmpty(t, obj["elapse"])

	data, ok := obj["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, []any{"ROWNUM", "lon", "lat"}, data["columns"])

	rows, ok := data["rows"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	require.Equal(t, []any{float64(1), 126.978, 37.5665}, rows[0])
	require.Equal(t, []any{float64(2), "NaN", "+Inf"}, rows[1])
}

func TestGeoJSONEncoder(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.GEOJSON,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
	)
	require.Equal(t, "application/geo+json", enc.ContentType())

	require.NoError(t, enc.Open("geom", "name", "zoom", "score"))
	require.NoError(t, enc.AddRow([]any{nums.Tile{X: 0, Y: 0, Z: 1}, "north-west", 1, 0.97}))
	require.NoError(t, enc.AddRow([]any{orb.Point{126.978, 37.5665}, "seoul", 10, math.NaN()}))
	require.NoError(t, enc.AddRow([]any{nums.NewExtent(nums.Pt(-10, -5), nums.Pt(10, 5))}))
	require.NoError(t, enc.AddRow([]any{nums.Pt(1.5, 2.5)}))
	enc.Close()

	fc, err := geojson.UnmarshalFeatureCollection(out.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	tilePoly, ok := fc.Features[0].Geometry.(orb.Polygon)
	require.True(t, ok)
	tileBound := tilePoly.Bound()
	require.InDelta(t, -180.0, tileBound.Min.X(), 1e-9)
	require.InDelta(t, 0.0, tileBound.Min.Y(), 1e-9)
	require.InDelta(t, 0.0, tileBound.Max.X(), 1e-9)
	require.InDelta(t, 85.05112877980659, tileBound.Max.Y(), 1e-9)
	require.Equal(t, "north-west", fc.Features[0].Properties.MustString("name"))
	require.Equal(t, 1, fc.Features[0].Properties.MustInt("zoom"))
	require.Equal(t, 0.97, fc.Features[0].Properties.MustFloat64("score"))

	require.Equal(t, orb.Point{126.978, 37.5665}, fc.Features[1].Geometry)
	require.Equal(t, "seoul", fc.Features[1].Properties.MustString("name"))
	require.Equal(t, "NaN", fc.Features[1].Properties.MustString("score"))

	extPoly, ok := fc.Features[2].Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Equal(t, orb.Bound{Min: orb.Point{-10, -5}, Max: orb.Point{10, 5}}, extPoly.Bound())

	require.Equal(t, orb.Point{1.5, 2.5}, fc.Features[3].Geometry)
}

func TestGeoJSONEncoderBadGeometry(t *testing.T) {
	out := &bytes.Buffer{}
	enc := codec.NewEncoder(codec.GEOJSON,
		codec.OutputStream(&stream.WriterOutputStream{Writer: out}),
	)
	require.NoError(t, enc.Open("geom"))
	err := enc.AddRow([]any{"not-a-geometry"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot render")
}
