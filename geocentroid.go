package cartomorph

import (
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// GeoCentroid returns the geographic centroid of a ring as the normalized
// mean of its vertices' unit sphere vectors. This matches how the centroid
// of a small spherical loop behaves for county-scale geometry and avoids
// the longitude wrap-around problems of a naive coordinate mean.
func GeoCentroid(ring GeoRing) LonLat {
	pts := ring
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) == 0 {
		return LonLat{}
	}
	var sum r3.Vector
	for _, ll := range pts {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(ll.Lat, ll.Lon))
		sum = sum.Add(p.Vector)
	}
	if sum.Norm() == 0 {
		// Antipodal degenerate input; fall back to the first vertex.
		return pts[0]
	}
	c := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return LonLat{Lon: c.Lng.Degrees(), Lat: c.Lat.Degrees()}
}
