package cartomorph

// Interpolator maps an animation value t to one or more rings. t=0
// reproduces the source ring(s), t=1 the target ring; callers pass values
// in [0,1] but the function does not clamp.
type Interpolator func(t float64) []Ring

// minMorphPoints is the floor on correspondence vertex count, so very
// coarse rings still morph smoothly.
const minMorphPoints = 16

// minMorphPerimeter guards against rings that collapse to a point.
const minMorphPerimeter = 1e-9

// BuildMorph constructs a deterministic interpolator from the source rings
// to the single target ring. The point correspondence is established once
// at construction; sampling is cheap and repeatable.
//
// With one source ring the result morphs it directly into the target.
// With several, each source ring is assigned a contiguous span of the
// target boundary proportional to its perimeter share and morphs into that
// span. If the combined construction is geometrically infeasible
// (degenerate, self-intersecting, or under-pointed rings), the builder
// degrades to morphing only the dominant ring and reports the remaining
// rings as dropped via the second return value.
func BuildMorph(sources []Ring, dominant int, target Ring) (Interpolator, bool) {
	if len(sources) == 0 {
		tgt := target
		return func(t float64) []Ring { return []Ring{tgt} }, false
	}
	if len(sources) == 1 {
		return singleMorph(sources[0], target), false
	}
	if interp, ok := combinedMorph(sources, target); ok {
		return interp, false
	}
	if dominant < 0 || dominant >= len(sources) {
		dominant = 0
	}
	return singleMorph(sources[dominant], target), true
}

// singleMorph builds a fixed-correspondence morph between one source ring
// and one target ring. At exactly t=0 and t=1 the original rings are
// returned unchanged; in between, both are resampled to a common vertex
// count with the source rotated to minimize total travel.
func singleMorph(src, dst Ring) Interpolator {
	if len(src) == 0 || len(dst) == 0 {
		s, d := src, dst
		return func(t float64) []Ring {
			if t < 0.5 {
				return []Ring{s}
			}
			return []Ring{d}
		}
	}
	n := len(src.open())
	if m := len(dst.open()); m > n {
		n = m
	}
	if n < minMorphPoints {
		n = minMorphPoints
	}

	aligned := src
	sa, da := src.SignedArea(), dst.SignedArea()
	if sa != 0 && da != 0 && (sa > 0) != (da > 0) {
		aligned = src.Reverse()
	}
	from := aligned.Resample(n)
	to := dst.Resample(n)
	from = rotateToMatch(from, to)

	return func(t float64) []Ring {
		if t <= 0 {
			return []Ring{src}
		}
		if t >= 1 {
			return []Ring{dst}
		}
		out := make(Ring, n+1)
		for i := 0; i < n; i++ {
			out[i] = from[i].Lerp(to[i], t)
		}
		out[n] = out[0]
		return []Ring{out}
	}
}

// combinedMorph builds a joint morph from several source rings into one
// target ring. It fails (second return false) when any ring is infeasible.
func combinedMorph(sources []Ring, target Ring) (Interpolator, bool) {
	if !feasibleRing(target) {
		return nil, false
	}
	total := 0.0
	for _, s := range sources {
		if !feasibleRing(s) {
			return nil, false
		}
		total += s.Perimeter()
	}
	if total < minMorphPerimeter {
		return nil, false
	}

	// Partition the target boundary into contiguous spans, one per source
	// ring, sized by perimeter share. Each span is closed with its chord
	// and the corresponding source ring morphs into that sub-shape.
	parts := make([]Interpolator, len(sources))
	offset := 0.0
	for i, s := range sources {
		share := s.Perimeter() / total
		span := boundarySpan(target, offset, offset+share)
		parts[i] = singleMorph(s, span)
		offset += share
	}

	srcs := sources
	tgt := target
	return func(t float64) []Ring {
		if t <= 0 {
			out := make([]Ring, len(srcs))
			copy(out, srcs)
			return out
		}
		if t >= 1 {
			return []Ring{tgt}
		}
		out := make([]Ring, 0, len(parts))
		for _, p := range parts {
			out = append(out, p(t)...)
		}
		return out
	}, true
}

// boundarySpan returns a closed ring tracing the target boundary from
// fraction f0 to fraction f1 of its perimeter, closed by the chord between
// the span's endpoints.
func boundarySpan(target Ring, f0, f1 float64) Ring {
	const samples = 24
	span := make(Ring, 0, samples+1)
	for i := 0; i <= samples; i++ {
		f := f0 + (f1-f0)*float64(i)/samples
		span = append(span, pointAlong(target, f))
	}
	return span.Closed()
}

// pointAlong returns the point at fraction f (mod 1) of the ring's
// perimeter, walking from its first vertex.
func pointAlong(r Ring, f float64) Point {
	pts := r.open()
	if len(pts) == 0 {
		return Point{}
	}
	perim := r.Perimeter()
	if perim == 0 || len(pts) == 1 {
		return pts[0]
	}
	f -= float64(int(f)) // wrap into [0,1)
	if f < 0 {
		f += 1
	}
	remain := f * perim
	for i := range pts {
		q := pts[(i+1)%len(pts)]
		seg := pts[i].Distance(q)
		if remain <= seg {
			if seg == 0 {
				return pts[i]
			}
			return pts[i].Lerp(q, remain/seg)
		}
		remain -= seg
	}
	return pts[0]
}

// rotateToMatch returns from rotated by the start offset that minimizes
// the total squared distance to the corresponding points of to. Both
// rings must be open and the same length.
func rotateToMatch(from, to Ring) Ring {
	n := len(from)
	if n == 0 || n != len(to) {
		return from
	}
	best, bestOff := -1.0, 0
	for off := 0; off < n; off++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += from[(i+off)%n].DistanceSquared(to[i])
			if best >= 0 && sum > best {
				break
			}
		}
		if best < 0 || sum < best {
			best, bestOff = sum, off
		}
	}
	if bestOff == 0 {
		return from
	}
	out := make(Ring, n)
	for i := 0; i < n; i++ {
		out[i] = from[(i+bestOff)%n]
	}
	return out
}

// feasibleRing reports whether a ring can participate in a combined
// morph: finite coordinates, at least three distinct points, measurable
// perimeter and area, and no self-intersection.
func feasibleRing(r Ring) bool {
	if !r.isFinite() {
		return false
	}
	if r.distinctPoints() < 3 {
		return false
	}
	if r.Perimeter() < minMorphPerimeter || r.Area() == 0 {
		return false
	}
	return !selfIntersects(r)
}

// selfIntersects reports whether any two non-adjacent edges of the closed
// ring cross. Quadratic, but runs once per multi-ring feature at build
// time on modest vertex counts.
func selfIntersects(r Ring) bool {
	pts := r.open()
	n := len(pts)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := pts[i]
		a2 := pts[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			b1 := pts[j]
			b2 := pts[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// segmentsCross reports proper intersection of segments a1a2 and b1b2.
func segmentsCross(a1, a2, b1, b2 Point) bool {
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// orient returns the signed area of triangle abc (positive when c lies
// left of ab).
func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
