package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_KnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         Coordinate{Lat: 12.9716, Lon: 77.5946},
			b:         Coordinate{Lat: 12.9716, Lon: 77.5946},
			wantKm:    0,
			tolerance: 0,
		},
		{
			name:      "one degree of latitude",
			a:         Coordinate{Lat: 0, Lon: 0},
			b:         Coordinate{Lat: 1, Lon: 0},
			wantKm:    111.19,
			tolerance: 0.1,
		},
		{
			name:      "bangalore to chennai",
			a:         Coordinate{Lat: 12.9716, Lon: 77.5946},
			b:         Coordinate{Lat: 13.0827, Lon: 80.2707},
			wantKm:    290.2,
			tolerance: 1.0,
		},
		{
			name:      "short urban hop",
			a:         Coordinate{Lat: 12.9716, Lon: 77.5946},
			b:         Coordinate{Lat: 12.9816, Lon: 77.6046},
			wantKm:    1.56,
			tolerance: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotKm := DistanceKilometers(tt.a, tt.b)
			if math.Abs(gotKm-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKilometers() = %f, want %f ± %f", gotKm, tt.wantKm, tt.tolerance)
			}

			gotM := DistanceMeters(tt.a, tt.b)
			if math.Abs(gotM-gotKm*1000) > 1e-9 {
				t.Errorf("DistanceMeters() = %f, want %f", gotM, gotKm*1000)
			}
		})
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b Coordinate
	}{
		{Coordinate{Lat: 12.97, Lon: 77.59}, Coordinate{Lat: 13.08, Lon: 80.27}},
		{Coordinate{Lat: -33.86, Lon: 151.20}, Coordinate{Lat: 51.50, Lon: -0.12}},
		{Coordinate{Lat: 0, Lon: 179.9}, Coordinate{Lat: 0, Lon: -179.9}},
	}

	for _, p := range pairs {
		ab := DistanceMeters(p.a, p.b)
		ba := DistanceMeters(p.b, p.a)
		if ab != ba {
			t.Errorf("distance not symmetric: %f vs %f for %+v %+v", ab, ba, p.a, p.b)
		}
		if DistanceMeters(p.a, p.a) != 0 {
			t.Errorf("distance to self should be 0 for %+v", p.a)
		}
	}
}
