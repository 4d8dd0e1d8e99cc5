package cartomorph

import "math"

// circleArcLength is the approximate arc length per circle segment in
// planar units. Larger circles get proportionally more segments.
const circleArcLength = 3.0

// circleMinSegments is the minimum segment count for any circle, so even
// a zero-radius circle yields a usable ring.
const circleMinSegments = 4

// CircleSegments returns the number of segments used to approximate a
// circle of radius r: max(ceil(2*pi*r/3), 4).
func CircleSegments(r float64) int {
	n := int(math.Ceil(2 * math.Pi * r / circleArcLength))
	if n < circleMinSegments {
		n = circleMinSegments
	}
	return n
}

// Circle returns a closed ring approximating a circle of radius r centered
// at c. The ring has CircleSegments(r)+1 points, evenly spaced by angle,
// with the last point equal to the first. Pure and deterministic.
func Circle(r float64, c Point) Ring {
	n := CircleSegments(r)
	ring := make(Ring, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = Point{
			X: c.X + r*math.Cos(a),
			Y: c.Y + r*math.Sin(a),
		}
	}
	ring[n] = ring[0]
	return ring
}
