// Package cartomorph animates a county choropleth into a population
// cartogram and back.
//
// # Overview
//
// cartomorph prepares county polygons once per viewport, builds a
// deterministic shape interpolator from each county's boundary to a
// population-sized circle, and renders the interpolated shapes every frame
// against an oscillating clock value.
//
// # Quick Start
//
//	feats, _ := data.LoadFeatures("counties.geojson")
//	pop, _ := data.LoadPopulation("population.csv")
//
//	dc := gg.NewContext(960, 576)
//	sess, _ := cartomorph.NewSession(cartomorph.SessionConfig{
//	    Width:      960,
//	    Features:   feats,
//	    Population: pop,
//	    Surface:    cartomorph.NewGGSurface(dc),
//	})
//	sess.Start()
//	sess.Frame() // one clock sample + one render pass
//
// # Architecture
//
// The package is organized around a handful of small pieces:
//   - Geometry: Point, Ring, Circle, Projection
//   - Preparation: Prepare builds immutable PreparedCounty records
//   - Morphing: BuildMorph constructs fixed-correspondence interpolators
//   - Animation: Clock produces an eased, auto-reversing t in [0,1]
//   - Rendering: Renderer emits fill/stroke operations to a Surface
//   - Session: owns projection, prepared set, and clock; rebuilds on resize
//
// # Coordinate System
//
// Planar coordinates use standard computer graphics conventions: origin at
// top-left, X increases right, Y increases down. Geographic coordinates are
// longitude/latitude degrees.
//
// # Logging
//
// By default cartomorph produces no log output. Call SetLogger to receive
// non-fatal diagnostics (missing population rows, unprojectable rings,
// morph fallbacks).
package cartomorph
