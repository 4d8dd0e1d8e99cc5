package cartomorph

import "github.com/gogpu/gg"

// GGSurface adapts a gg.Context to the Surface interface, with the frame
// cleared to a solid background color.
type GGSurface struct {
	dc *gg.Context
}

// NewGGSurface wraps a gg drawing context. The caller keeps ownership of
// the context (and its Close lifecycle).
func NewGGSurface(dc *gg.Context) *GGSurface {
	return &GGSurface{dc: dc}
}

// Context returns the wrapped drawing context, e.g. for saving frames.
func (s *GGSurface) Context() *gg.Context { return s.dc }

// Clear resets the frame to the background color.
func (s *GGSurface) Clear() {
	s.dc.ClearWithColor(gg.RGB(0.96, 0.96, 0.94))
}

func (s *GGSurface) MoveTo(x, y float64)          { s.dc.MoveTo(x, y) }
func (s *GGSurface) LineTo(x, y float64)          { s.dc.LineTo(x, y) }
func (s *GGSurface) ClosePath()                   { s.dc.ClosePath() }
func (s *GGSurface) ClearPath()                   { s.dc.ClearPath() }
func (s *GGSurface) SetRGBA(r, g, b, a float64)   { s.dc.SetRGBA(r, g, b, a) }
func (s *GGSurface) SetLineWidth(w float64)       { s.dc.SetLineWidth(w) }
func (s *GGSurface) FillPreserve() error          { return s.dc.FillPreserve() }
func (s *GGSurface) Stroke() error                { return s.dc.Stroke() }
