package cartomorph

import "math"

// aspectRatio fixes the viewport height relative to its width.
const aspectRatio = 0.6

// ViewportHeight returns the viewport height for a given width under the
// fixed aspect ratio. Hosts size their drawing surfaces with it.
func ViewportHeight(width int) int {
	return int(float64(width) * aspectRatio)
}

// conic is an Albers equal-area conic projection. Output is in unit
// radians scaled by the caller; Y increases north.
type conic struct {
	n    float64 // cone constant
	c    float64
	rho0 float64
	lon0 float64 // central meridian, radians
}

func newConic(parallel1, parallel2, lat0, lon0 float64) conic {
	p1 := parallel1 * math.Pi / 180
	p2 := parallel2 * math.Pi / 180
	f0 := lat0 * math.Pi / 180
	n := (math.Sin(p1) + math.Sin(p2)) / 2
	c := math.Cos(p1)*math.Cos(p1) + 2*n*math.Sin(p1)
	return conic{
		n:    n,
		c:    c,
		rho0: math.Sqrt(c-2*n*math.Sin(f0)) / n,
		lon0: lon0 * math.Pi / 180,
	}
}

// project maps a geographic coordinate to unit planar coordinates with Y
// increasing north. The caller applies scale, translation, and Y flip.
func (cp conic) project(ll LonLat) Point {
	lat := ll.Lat * math.Pi / 180
	lon := ll.Lon * math.Pi / 180
	rho := math.Sqrt(cp.c-2*cp.n*math.Sin(lat)) / cp.n
	theta := cp.n * (lon - cp.lon0)
	return Point{
		X: rho * math.Sin(theta),
		Y: cp.rho0 - rho*math.Cos(theta),
	}
}

// geoWindow is a longitude/latitude domain rectangle.
type geoWindow struct {
	lonMin, lonMax float64
	latMin, latMax float64
}

func (w geoWindow) contains(ll LonLat) bool {
	return ll.Lon >= w.lonMin && ll.Lon <= w.lonMax &&
		ll.Lat >= w.latMin && ll.Lat <= w.latMax
}

// inset pairs a conic projection with its geographic domain, scale factor,
// and viewport anchor (as fractions of viewport width/height).
type inset struct {
	proj             conic
	window           geoWindow
	scaleFactor      float64
	anchorX, anchorY float64
}

// Projection maps geographic coordinates to viewport pixels using a
// composite Albers projection: an equal-area conic for the contiguous
// states plus scaled insets for Alaska and Hawaii, each clipped to its own
// geographic window. Points outside every window are unprojectable.
type Projection struct {
	width  int
	height int
	scale  float64
	insets [3]inset
}

// NewProjection builds the composite projection for a viewport of the
// given width. Height is width times the fixed aspect ratio.
func NewProjection(width int) *Projection {
	height := ViewportHeight(width)
	// Reference scale matches a 1070-unit conic at a 960px viewport.
	scale := float64(width) * 1070 / 960
	return &Projection{
		width:  width,
		height: height,
		scale:  scale,
		insets: [3]inset{
			// Hawaii first: its window overlaps the lower-48 latitudes.
			{
				proj:        newConic(8, 18, 20, -157),
				window:      geoWindow{lonMin: -161, lonMax: -154, latMin: 18, latMax: 23},
				scaleFactor: 1,
				anchorX:     0.32,
				anchorY:     0.92,
			},
			{
				proj:        newConic(55, 65, 60, -154),
				window:      geoWindow{lonMin: -180, lonMax: -129, latMin: 50, latMax: 72},
				scaleFactor: 0.35,
				anchorX:     0.14,
				anchorY:     0.83,
			},
			{
				proj:        newConic(29.5, 45.5, 38, -96),
				window:      geoWindow{lonMin: -125, lonMax: -66, latMin: 24, latMax: 50},
				scaleFactor: 1,
				anchorX:     0.5,
				anchorY:     0.5,
			},
		},
	}
}

// Width returns the viewport width in pixels.
func (p *Projection) Width() int { return p.width }

// Height returns the viewport height in pixels.
func (p *Projection) Height() int { return p.height }

// Project maps a geographic coordinate to viewport pixels. The second
// return value is false when the coordinate lies outside the projection's
// domain.
func (p *Projection) Project(ll LonLat) (Point, bool) {
	for _, in := range p.insets {
		if !in.window.contains(ll) {
			continue
		}
		u := in.proj.project(ll)
		k := p.scale * in.scaleFactor
		return Point{
			X: float64(p.width)*in.anchorX + u.X*k,
			Y: float64(p.height)*in.anchorY - u.Y*k,
		}, true
	}
	return Point{}, false
}

// ProjectRing projects a geographic ring. The second return value is false
// if any coordinate fails to project, in which case the ring is nil.
func (p *Projection) ProjectRing(ring GeoRing) (Ring, bool) {
	out := make(Ring, len(ring))
	for i, ll := range ring {
		pt, ok := p.Project(ll)
		if !ok {
			return nil, false
		}
		out[i] = pt
	}
	return out, true
}
