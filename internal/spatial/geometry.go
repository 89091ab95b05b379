package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// Bounds is a lat/lon bounding box for map viewport fitting.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// boundsFromRect converts an s2 rect into degree bounds.
func boundsFromRect(rect s2.Rect) Bounds {
	return Bounds{
		MinLat: rect.Lat.Lo * 180 / math.Pi,
		MinLon: rect.Lng.Lo * 180 / math.Pi,
		MaxLat: rect.Lat.Hi * 180 / math.Pi,
		MaxLon: rect.Lng.Hi * 180 / math.Pi,
	}
}

// DatasetBounds computes the bounding box covering every point coordinate
// and every line vertex in the given records. The second return value is
// false when no record carries usable geometry.
func DatasetBounds(records []models.ProjectRecord) (Bounds, bool) {
	rect := s2.EmptyRect()
	for i := range records {
		r := &records[i]
		if r.IsLine() {
			for _, seg := range r.Paths {
				for _, v := range seg {
					rect = rect.AddPoint(s2.LatLngFromDegrees(v.Lat, v.Lon))
				}
			}
		} else {
			rect = rect.AddPoint(s2.LatLngFromDegrees(r.Lat, r.Lon))
		}
	}
	if rect.IsEmpty() {
		return Bounds{}, false
	}
	return boundsFromRect(rect), true
}

// PathLengthKm sums the great-circle length of every segment of a line
// project's polyline, in kilometers.
func PathLengthKm(paths [][]models.PathVertex) float64 {
	var meters float64
	for _, seg := range paths {
		for i := 1; i < len(seg); i++ {
			meters += Distance(seg[i-1].Lat, seg[i-1].Lon, seg[i].Lat, seg[i].Lon)
		}
	}
	return meters / 1000
}
