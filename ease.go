package cartomorph

// Cubic bezier easing in the CSS timing-function form: a curve from (0,0)
// to (1,1) with control points (x1,y1) and (x2,y2), evaluated as y(x).
// Solving x(u)=x for the curve parameter u uses Newton iteration with a
// bisection fallback, following the numerically defensive style of the
// polynomial solvers this package grew out of.

// CubicBezier is an easing curve with control points (X1,Y1) and (X2,Y2).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseInOut is the standard CSS ease-in-out timing curve.
var EaseInOut = CubicBezier{X1: 0.42, Y1: 0, X2: 0.58, Y2: 1}

// sampleAxis evaluates one bezier axis at parameter u for control values
// c1, c2 (endpoints fixed at 0 and 1).
func sampleAxis(c1, c2, u float64) float64 {
	// Horner form of the cubic with p0=0, p3=1.
	a := 1 - 3*c2 + 3*c1
	b := 3*c2 - 6*c1
	c := 3 * c1
	return ((a*u+b)*u + c) * u
}

// sampleAxisDeriv evaluates the derivative of one bezier axis at u.
func sampleAxisDeriv(c1, c2, u float64) float64 {
	a := 1 - 3*c2 + 3*c1
	b := 3*c2 - 6*c1
	c := 3 * c1
	return (3*a*u+2*b)*u + c
}

// solveParam finds u such that x(u) == x within tolerance.
func (cb CubicBezier) solveParam(x float64) float64 {
	const (
		newtonIters = 8
		epsilon     = 1e-7
	)
	u := x // good initial guess for monotone timing curves
	for i := 0; i < newtonIters; i++ {
		err := sampleAxis(cb.X1, cb.X2, u) - x
		if err < epsilon && err > -epsilon {
			return u
		}
		d := sampleAxisDeriv(cb.X1, cb.X2, u)
		if d < 1e-6 {
			break // flat spot, Newton would overshoot
		}
		u -= err / d
	}
	// Bisection fallback; x(u) is monotone for valid timing curves.
	lo, hi := 0.0, 1.0
	for hi-lo > epsilon {
		u = (lo + hi) / 2
		if sampleAxis(cb.X1, cb.X2, u) < x {
			lo = u
		} else {
			hi = u
		}
	}
	return u
}

// Ease maps progress x in [0,1] through the curve. Inputs outside [0,1]
// are clamped.
func (cb CubicBezier) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	u := cb.solveParam(x)
	return sampleAxis(cb.Y1, cb.Y2, u)
}
