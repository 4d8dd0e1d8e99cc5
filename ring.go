package cartomorph

import "math"

// Ring is a closed sequence of planar points describing one polygon
// boundary. A ring is closed when its last point equals its first;
// operations tolerate both open and closed representations.
type Ring []Point

// open returns the ring without a duplicated closing point.
func (r Ring) open() Ring {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// Closed returns the ring with its last point equal to its first.
func (r Ring) Closed() Ring {
	if len(r) == 0 {
		return r
	}
	if r[0] == r[len(r)-1] {
		return r
	}
	out := make(Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// SignedArea returns the signed area of the ring via the shoelace formula.
// Positive for counter-clockwise winding in a Y-up frame; in screen
// coordinates (Y down) the sign flips, so callers interested only in
// magnitude should use Area.
func (r Ring) SignedArea() float64 {
	pts := r.open()
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Area returns the absolute planar area of the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Centroid returns the area-weighted centroid of the ring. Degenerate
// rings (fewer than 3 points or zero area) fall back to the point mean.
func (r Ring) Centroid() Point {
	pts := r.open()
	if len(pts) == 0 {
		return Point{}
	}
	a := r.SignedArea()
	if len(pts) < 3 || a == 0 {
		var m Point
		for _, p := range pts {
			m = m.Add(p)
		}
		return m.Mul(1 / float64(len(pts)))
	}
	var cx, cy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		cross := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// Perimeter returns the total boundary length of the ring, treating it
// as closed.
func (r Ring) Perimeter() float64 {
	pts := r.open()
	if len(pts) < 2 {
		return 0
	}
	total := 0.0
	for i, p := range pts {
		total += p.Distance(pts[(i+1)%len(pts)])
	}
	return total
}

// Reverse returns a copy of the ring with opposite winding.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Resample returns an open ring of exactly n points spaced evenly by arc
// length along the closed boundary, starting at the ring's first point.
// The original vertices are not necessarily preserved.
func (r Ring) Resample(n int) Ring {
	pts := r.open()
	if n <= 0 || len(pts) == 0 {
		return nil
	}
	out := make(Ring, n)
	perim := r.Perimeter()
	if len(pts) == 1 || perim == 0 {
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}
	step := perim / float64(n)
	seg := 0                  // current segment index
	segStart := pts[0]        // start of current segment
	segEnd := pts[1%len(pts)] // end of current segment
	segLen := segStart.Distance(segEnd)
	walked := 0.0 // distance consumed within current segment
	for i := 0; i < n; i++ {
		target := float64(i) * step
		for target > walked+segLen && seg < len(pts)-1 {
			walked += segLen
			seg++
			segStart = pts[seg]
			segEnd = pts[(seg+1)%len(pts)]
			segLen = segStart.Distance(segEnd)
		}
		if segLen == 0 {
			out[i] = segStart
			continue
		}
		f := (target - walked) / segLen
		if f < 0 {
			f = 0
		} else if f > 1 {
			f = 1
		}
		out[i] = segStart.Lerp(segEnd, f)
	}
	return out
}

// distinctPoints counts points that differ from their predecessor.
func (r Ring) distinctPoints() int {
	pts := r.open()
	if len(pts) == 0 {
		return 0
	}
	n := 1
	for i := 1; i < len(pts); i++ {
		if pts[i] != pts[i-1] {
			n++
		}
	}
	return n
}

// isFinite reports whether every point in the ring is finite.
func (r Ring) isFinite() bool {
	for _, p := range r {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}
