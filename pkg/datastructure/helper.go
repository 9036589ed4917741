package datastructure

import (
	"github.com/twpayne/go-polyline"
)

func CreatePolyline(path []Coordinate) string {
	s := ""
	coords := make([][]float64, 0)
	for _, p := range path {
		pT := p
		coords = append(coords, []float64{pT.Lat, pT.Lon})
	}
	s = string(polyline.EncodeCoords(coords))
	return s
}

func DecodePolyline(s string) ([]Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, err
	}
	path := make([]Coordinate, len(coords))
	for i, c := range coords {
		path[i] = NewCoordinate(c[0], c[1])
	}
	return path, nil
}
