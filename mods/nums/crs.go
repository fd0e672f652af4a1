package nums

import "github.com/wroge/wgs84"

// Coordinate Reference System (CRS) or Spatial Reference System (SRS)
type CRS struct {
	Code    string         `json:"code"`
	Proj    string         `json:"proj"`
	Options map[string]any `json:"option"`
}

// reference: https://epsg.io/3857
var EPSG3857 = &CRS{
	Code: "EPSG:3857",
	Proj: `+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs`,
	Options: map[string]any{
		"bounds": [][]float64{{-originShift, -originShift}, {originShift, originShift}},
	},
}

// reference: https://epsg.io/4326
var EPSG4326 = &CRS{
	Code: "EPSG:4326",
	Proj: `+proj=longlat +datum=WGS84 +no_defs`,
	Options: map[string]any{
		"bounds": [][]float64{{-180, -90}, {180, 90}},
	},
}

var WebMercatorCRS = EPSG3857

// TransformerToWebMercator returns a transform from WGS84 lon/lat/h
// (EPSG:4326) to EPSG:3857 x/y/z in meters.
func TransformerToWebMercator() func(a, b, c float64) (a2, b2, c2 float64) {
	return wgs84.Transform(wgs84.WGS84().LonLat(), wgs84.WGS84().WebMercator())
}

// TransformerFromWebMercator returns a transform from EPSG:3857 x/y/z
// in meters to WGS84 lon/lat/h (EPSG:4326).
func TransformerFromWebMercator() func(a, b, c float64) (a2, b2, c2 float64) {
	return wgs84.Transform(wgs84.WGS84().WebMercator(), wgs84.WGS84().LonLat())
}
