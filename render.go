package cartomorph

// Surface is the subset of an immediate-mode 2D drawing context the
// renderer needs. It is modeled on the gg.Context path API; NewGGSurface
// adapts a *gg.Context directly.
type Surface interface {
	Clear()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	SetRGBA(r, g, b, a float64)
	SetLineWidth(w float64)
	FillPreserve() error
	Stroke() error
}

// Fixed drawing style: one fill color, one stroke color, one line width.
// Not data-dependent.
const (
	styleFillR    = 0.27
	styleFillG    = 0.51
	styleFillB    = 0.71
	styleStrokeR  = 1.0
	styleStrokeG  = 1.0
	styleStrokeB  = 1.0
	styleLineWide = 0.75
)

// Renderer draws a prepared-county set at an animation value t. It holds
// no per-frame state; the same renderer serves every session frame.
type Renderer struct{}

// Draw emits one full frame: clears the surface and paints every county in
// the prepared order (population descending).
//
//   - t <= 0 draws each county's full original projected geometry,
//     including tiny rings.
//   - t >= 1 draws each county's circle polygon only.
//   - In between, tiny rings fade out with alpha max(1-2t, 0) and the
//     interpolated ring(s) draw at full opacity.
func (Renderer) Draw(s Surface, counties []*PreparedCounty, t float64) error {
	s.Clear()
	for _, c := range counties {
		if err := drawCounty(s, c, t); err != nil {
			return err
		}
	}
	return nil
}

func drawCounty(s Surface, c *PreparedCounty, t float64) error {
	switch {
	case t <= 0:
		for _, r := range c.Rings {
			if err := paintRing(s, r, 1); err != nil {
				return err
			}
		}
		return nil
	case t >= 1:
		return paintRing(s, c.Circle, 1)
	}

	if t < 0.5 {
		alpha := 1 - 2*t
		for i, r := range c.Rings {
			if !c.IsTiny(i) {
				continue
			}
			if err := paintRing(s, r, alpha); err != nil {
				return err
			}
		}
	}
	for _, r := range c.Interp(t) {
		if err := paintRing(s, r, 1); err != nil {
			return err
		}
	}
	return nil
}

// paintRing fills and strokes one ring. Non-finite points are skipped
// defensively before the path is built, a second safety net beyond the
// preprocessor's ring filtering.
func paintRing(s Surface, r Ring, alpha float64) error {
	s.ClearPath()
	started := false
	for _, p := range r {
		if !p.IsFinite() {
			continue
		}
		if !started {
			s.MoveTo(p.X, p.Y)
			started = true
			continue
		}
		s.LineTo(p.X, p.Y)
	}
	if !started {
		return nil
	}
	s.ClosePath()
	s.SetRGBA(styleFillR, styleFillG, styleFillB, alpha)
	if err := s.FillPreserve(); err != nil {
		return err
	}
	s.SetRGBA(styleStrokeR, styleStrokeG, styleStrokeB, alpha)
	s.SetLineWidth(styleLineWide)
	return s.Stroke()
}
