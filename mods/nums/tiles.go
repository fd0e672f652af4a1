package nums

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// tiles.go is the EPSG:3857 tile pyramid: conversions between WGS84
// lon/lat, spherical-mercator meters, pyramid pixels and tile
// addresses. Pixel coordinates originate at the pyramid's north-west
// corner with y growing southward, matching screen space.
// See http://www.maptiler.org/google-maps-coordinates-tile-bounds-projection/

const (
	earthRadius       = 6378137.0
	initialResolution = 2 * math.Pi * earthRadius / TileSize
	originShift       = 2 * math.Pi * earthRadius / 2
)

func round(a float64) float64 {
	if a < 0 {
		return math.Ceil(a - 0.5)
	}
	return math.Floor(a + 0.5)
}

// Tile addresses one cell of the pyramid in Google/OSM numbering:
// x grows eastward and y grows southward from the north-west corner.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (t Tile) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// Valid reports whether the tile address exists at its zoom level.
func (t Tile) Valid() bool {
	if t.Z < MinZoom || t.Z > MaxZoom {
		return false
	}
	n := 1 << t.Z
	return t.X >= 0 && t.X < n && t.Y >= 0 && t.Y < n
}

// LonLat returns the north-west corner of the tile.
func (t Tile) LonLat() (lon, lat float64) {
	n := math.Pi - 2.0*math.Pi*float64(t.Y)/math.Exp2(float64(t.Z))
	lon = float64(t.X)/math.Exp2(float64(t.Z))*360.0 - 180.0
	lat = 180.0 / math.Pi * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
	return lon, lat
}

// Extent returns the geographic extent of the tile, longitude in X and
// latitude in Y.
func (t Tile) Extent() *Extent {
	west, north := t.LonLat()
	east, south := Tile{X: t.X + 1, Y: t.Y + 1, Z: t.Z}.LonLat()
	return NewExtent(Pt(west, south), Pt(east, north))
}

// Polygon returns the tile outline as a closed orb ring.
func (t Tile) Polygon() orb.Polygon {
	return t.Extent().Bound().ToPolygon()
}

// LonLatToTile returns the tile containing the given coordinates,
// clamped to the pyramid.
func LonLatToTile(lon, lat float64, zoom int) Tile {
	n := math.Exp2(float64(zoom))
	lat = Clamp(lat, -MaxLatitude, MaxLatitude)
	x := int(math.Floor((lon + 180.0) / 360.0 * n))
	y := int(math.Floor((1.0 - math.Log(math.Tan(lat*Deg2Rad)+1.0/math.Cos(lat*Deg2Rad))/math.Pi) / 2.0 * n))
	return Tile{
		X: Clamp(x, 0, int(n)-1),
		Y: Clamp(y, 0, int(n)-1),
		Z: zoom,
	}
}

// Resolution calculates the resolution (meters/pixel) for given zoom level (measured at Equator)
func Resolution(zoom int) float64 {
	return initialResolution / math.Pow(2, float64(zoom))
}

// Zoom gives the zoom level for given resolution (measured at Equator)
func Zoom(resolution float64) int {
	return int(round(math.Log(initialResolution/resolution) / math.Log(2)))
}

// LonLatToMeters converts WGS84 lon/lat to XY in spherical Mercator EPSG:3857
func LonLatToMeters(lon, lat float64) (float64, float64) {
	lat = Clamp(lat, -MaxLatitude, MaxLatitude)
	x := lon * originShift / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * originShift / 180
	return x, y
}

// MetersToLonLat converts XY from spherical Mercator EPSG:3857 to WGS84 lon/lat
func MetersToLonLat(x, y float64) (float64, float64) {
	lon := (x / originShift) * 180
	lat := (y / originShift) * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	return lon, lat
}

// PixelsToMeters converts pyramid pixel coordinates at given zoom level to EPSG:3857
func PixelsToMeters(px, py float64, zoom int) (float64, float64) {
	res := Resolution(zoom)
	x := px*res - originShift
	y := originShift - py*res
	return x, y
}

// MetersToPixels converts EPSG:3857 to pyramid pixel coordinates at given zoom level
func MetersToPixels(x, y float64, zoom int) (float64, float64) {
	res := Resolution(zoom)
	px := (x + originShift) / res
	py := (originShift - y) / res
	return px, py
}

// LonLatToPixels converts WGS84 lon/lat to pyramid pixel coordinates at given zoom level
func LonLatToPixels(lon, lat float64, zoom int) (float64, float64) {
	x, y := LonLatToMeters(lon, lat)
	return MetersToPixels(x, y, zoom)
}

// PixelsToLonLat converts pyramid pixel coordinates at given zoom level to WGS84 lon/lat
func PixelsToLonLat(px, py float64, zoom int) (float64, float64) {
	x, y := PixelsToMeters(px, py, zoom)
	return MetersToLonLat(x, y)
}

// PixelsToTile returns the tile covering the given pyramid pixel coordinates
func PixelsToTile(px, py float64, zoom int) Tile {
	return Tile{
		X: int(math.Floor(px / TileSize)),
		Y: int(math.Floor(py / TileSize)),
		Z: zoom,
	}
}

// MetersToTile returns the tile covering the given EPSG:3857 coordinates
func MetersToTile(x, y float64, zoom int) Tile {
	px, py := MetersToPixels(x, y, zoom)
	return PixelsToTile(px, py, zoom)
}

// Cover lists the tiles intersecting the geographic extent at the
// given zoom level, row-major from the north-west corner. The range is
// clamped to the pyramid; a nil or empty extent yields no tiles.
func Cover(ext *Extent, zoom int) []Tile {
	if ext == nil || ext.IsEmpty() {
		return nil
	}
	zoom = Clamp(zoom, MinZoom, MaxZoom)
	min, max := ext.Min(), ext.Max()
	nw := LonLatToTile(min.X, max.Y, zoom)
	se := LonLatToTile(max.X, min.Y, zoom)
	tiles := make([]Tile, 0, (se.X-nw.X+1)*(se.Y-nw.Y+1))
	for y := nw.Y; y <= se.Y; y++ {
		for x := nw.X; x <= se.X; x++ {
			tiles = append(tiles, Tile{X: x, Y: y, Z: zoom})
		}
	}
	return tiles
}
