// Package geo provides great-circle distance math for matching and
// clustering. Distances are haversine over a spherical Earth, which is
// accurate to well under a percent at the delivery ranges involved.
package geo

import "math"

const earthRadiusKm = 6371

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKilometers returns the great-circle distance between a and b.
func DistanceKilometers(a, b Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceMeters returns the great-circle distance between a and b in meters.
func DistanceMeters(a, b Coordinate) float64 {
	return DistanceKilometers(a, b) * 1000
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
