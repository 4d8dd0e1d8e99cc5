package cartomorph

import (
	"math"
	"sort"
)

// tinyRingArea is the projected-area threshold below which a ring is
// classified as tiny: excluded from the morph, rendered only as a fading
// background element.
const tinyRingArea = 24.0

// DefaultMaxRadius is the circle radius assigned to the most populous
// county. It is population-derived only, so a resize moves every circle's
// center but never changes its size.
const DefaultMaxRadius = 40.0

// RawCountyFeature is one county as delivered by the data loader: an
// identifier, its state identifier, and a uniform ring-list view of its
// geometry (a plain polygon contributes one outer ring, a multi-polygon
// one ring per part).
type RawCountyFeature struct {
	ID      string
	StateID string
	Rings   []GeoRing
}

// PopulationTable maps county identifiers to populations. Lookups for
// absent identifiers are tolerated.
type PopulationTable map[string]int

// MaxPopulation returns the largest population in the table, or zero for
// an empty table.
func (pt PopulationTable) MaxPopulation() int {
	max := 0
	for _, p := range pt {
		if p > max {
			max = p
		}
	}
	return max
}

// PreparedCounty is the immutable per-county record the renderer consumes.
// It is built once per (viewport, data) pair and discarded wholesale on
// resize.
type PreparedCounty struct {
	ID         string
	StateID    string
	Population int
	HasPop     bool

	// Rings are the projected rings that survived projection; rings
	// containing any unprojectable coordinate were dropped entirely.
	Rings    []Ring
	Dominant int              // index of the largest-area ring
	Tiny     map[int]struct{} // indices of rings below tinyRingArea

	Centroid Point
	Radius   float64
	Circle   Ring

	Interp       Interpolator
	RingsDropped bool // combined morph construction fell back to the dominant ring
}

// IsTiny reports whether ring index i is classified as tiny.
func (c *PreparedCounty) IsTiny(i int) bool {
	_, ok := c.Tiny[i]
	return ok
}

// RadiusScale returns the sqrt scale mapping a population in
// [0, maxPop] to a radius in [0, maxRadius].
func RadiusScale(maxPop int, maxRadius float64) func(pop int) float64 {
	return func(pop int) float64 {
		if maxPop <= 0 || pop <= 0 {
			return 0
		}
		r := math.Sqrt(float64(pop)/float64(maxPop)) * maxRadius
		if r > maxRadius {
			r = maxRadius
		}
		return r
	}
}

// Prepare builds one PreparedCounty per feature: projects rings, classifies
// dominant and tiny rings, derives the population circle, and constructs
// the morph interpolator. Features whose rings all fail to project are
// skipped. The result is sorted by population descending, fixing draw
// order so small circles layer above large ones.
func Prepare(features []RawCountyFeature, pop PopulationTable, proj *Projection, maxRadius float64) []*PreparedCounty {
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	scale := RadiusScale(pop.MaxPopulation(), maxRadius)
	log := Logger()

	out := make([]*PreparedCounty, 0, len(features))
	for _, f := range features {
		var (
			rings []Ring
			geo   []GeoRing // source geometry of each kept ring
		)
		for _, gr := range f.Rings {
			r, ok := proj.ProjectRing(gr)
			if !ok {
				log.Warn("ring outside projection domain, dropped",
					"county", f.ID, "points", len(gr))
				continue
			}
			rings = append(rings, r)
			geo = append(geo, gr)
		}
		if len(rings) == 0 {
			continue
		}

		dominant := 0
		tiny := map[int]struct{}{}
		if len(rings) > 1 {
			bestArea := -1.0
			for i, r := range rings {
				a := r.Area()
				if a > bestArea {
					bestArea, dominant = a, i
				}
				if a < tinyRingArea {
					tiny[i] = struct{}{}
				}
			}
			// The dominant ring is never tiny while siblings exist.
			delete(tiny, dominant)
		}

		p, hasPop := pop[f.ID]
		if !hasPop {
			log.Warn("no population entry for county", "county", f.ID)
			p = 0
		}

		centroid, ok := proj.Project(GeoCentroid(geo[dominant]))
		if !ok {
			// The ring projected, so its centroid should too; fall back
			// to the planar centroid if the spherical one strays.
			centroid = rings[dominant].Centroid()
		}
		radius := scale(p)
		circle := Circle(radius, centroid)

		var morphSources []Ring
		morphDominant := 0
		for i, r := range rings {
			if _, isTiny := tiny[i]; isTiny {
				continue
			}
			if i == dominant {
				morphDominant = len(morphSources)
			}
			morphSources = append(morphSources, r)
		}
		interp, dropped := BuildMorph(morphSources, morphDominant, circle)
		if dropped {
			log.Warn("combined morph infeasible, using dominant ring only",
				"county", f.ID, "rings", len(morphSources))
		}

		out = append(out, &PreparedCounty{
			ID:           f.ID,
			StateID:      f.StateID,
			Population:   p,
			HasPop:       hasPop,
			Rings:        rings,
			Dominant:     dominant,
			Tiny:         tiny,
			Centroid:     centroid,
			Radius:       radius,
			Circle:       circle,
			Interp:       interp,
			RingsDropped: dropped,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Population > out[j].Population
	})
	return out
}
