package cartomorph

import (
	"math"
	"testing"
)

func TestGeoCentroid(t *testing.T) {
	tests := []struct {
		name string
		ring GeoRing
		want LonLat
		eps  float64
	}{
		{"square on meridian", geoSquare(-96, 38, 2), LonLat{Lon: -96, Lat: 38}, 0.05},
		{"small square", geoSquare(-120, 45, 0.1), LonLat{Lon: -120, Lat: 45}, 0.01},
		{"single point", GeoRing{{Lon: -80, Lat: 30}}, LonLat{Lon: -80, Lat: 30}, 1e-9},
		{"empty", nil, LonLat{}, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeoCentroid(tt.ring)
			if math.Abs(got.Lon-tt.want.Lon) > tt.eps || math.Abs(got.Lat-tt.want.Lat) > tt.eps {
				t.Errorf("GeoCentroid() = %v, want %v (±%v)", got, tt.want, tt.eps)
			}
		})
	}
}

func TestGeoCentroidIgnoresClosingPoint(t *testing.T) {
	open := GeoRing{
		{Lon: -97, Lat: 37}, {Lon: -95, Lat: 37}, {Lon: -95, Lat: 39}, {Lon: -97, Lat: 39},
	}
	closed := append(append(GeoRing{}, open...), open[0])

	a := GeoCentroid(open)
	b := GeoCentroid(closed)
	if math.Abs(a.Lon-b.Lon) > 1e-9 || math.Abs(a.Lat-b.Lat) > 1e-9 {
		t.Errorf("closing point skewed centroid: %v vs %v", a, b)
	}
}

func TestGeoCentroidDatelineSafe(t *testing.T) {
	// A ring straddling the antimeridian must not average to the wrong
	// hemisphere; the unit-vector mean keeps it near the ring.
	ring := GeoRing{
		{Lon: 179, Lat: 52}, {Lon: -179, Lat: 52},
		{Lon: -179, Lat: 53}, {Lon: 179, Lat: 53}, {Lon: 179, Lat: 52},
	}
	got := GeoCentroid(ring)
	if math.Abs(got.Lat-52.5) > 0.1 {
		t.Errorf("Lat = %v, want ~52.5", got.Lat)
	}
	if math.Abs(got.Lon) < 170 {
		t.Errorf("Lon = %v, want near the antimeridian", got.Lon)
	}
}
