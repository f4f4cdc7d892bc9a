package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords. encode coords with the google encoded polyline algorithm (precision 5).
func PolylineFromCoords(coords []Coordinate) string {
	pts := make([][]float64, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(pts))
}
