// Package data loads the external inputs of a cartomorph session: a
// GeoJSON county feature collection and a CSV population table. Both are
// consumed once per session build; the package performs no caching and
// keeps no state.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/gogpu/cartomorph"
)

// LoadFeatures reads a GeoJSON FeatureCollection of county polygons and
// flattens each feature's geometry to the uniform ring-list view the
// preprocessor consumes. Features with empty or zero-area geometry are
// skipped with a warning.
func LoadFeatures(path string) ([]cartomorph.RawCountyFeature, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("parse features: %w", err)
	}
	return Features(fc)
}

// Features converts an already-parsed feature collection.
func Features(fc *geojson.FeatureCollection) ([]cartomorph.RawCountyFeature, error) {
	log := cartomorph.Logger()
	out := make([]cartomorph.RawCountyFeature, 0, len(fc.Features))
	for _, f := range fc.Features {
		id := featureID(f)
		if id == "" {
			log.Warn("feature without identifier, skipped")
			continue
		}
		if f.Geometry == nil || planar.Area(f.Geometry) == 0 {
			log.Warn("feature with degenerate geometry, skipped", "county", id)
			continue
		}
		rings := flattenRings(f.Geometry)
		if len(rings) == 0 {
			log.Warn("feature with no polygon rings, skipped", "county", id)
			continue
		}
		out = append(out, cartomorph.RawCountyFeature{
			ID:      id,
			StateID: stateID(f, id),
			Rings:   rings,
		})
	}
	return out, nil
}

// LoadPopulation reads the population table: ordered CSV rows, first row a
// header (skipped), remaining rows mapping identifier to integer
// population. Rows that do not parse are skipped with a warning;
// identifiers with no matching feature are tolerated.
func LoadPopulation(path string) (cartomorph.PopulationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open population table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse population table: %w", err)
	}
	log := cartomorph.Logger()
	table := make(cartomorph.PopulationTable, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 2 {
			log.Warn("short population row, skipped", "row", i)
			continue
		}
		pop, err := strconv.Atoi(row[1])
		if err != nil || pop < 0 {
			log.Warn("unparseable population row, skipped", "row", i, "value", row[1])
			continue
		}
		table[row[0]] = pop
	}
	return table, nil
}

// featureID extracts the county identifier from the feature ID or, when
// absent, the GEOID property. GeoJSON allows numeric IDs; those render as
// their integer form.
func featureID(f *geojson.Feature) string {
	switch v := f.ID.(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	case int:
		return strconv.Itoa(v)
	}
	return f.Properties.MustString("GEOID", "")
}

// stateID extracts the state identifier, defaulting to the leading two
// digits of a FIPS county identifier.
func stateID(f *geojson.Feature, id string) string {
	if s := f.Properties.MustString("STATE", ""); s != "" {
		return s
	}
	if len(id) >= 2 {
		return id[:2]
	}
	return ""
}

// flattenRings produces the tagged-variant-free ring view: every outer and
// inner boundary of the polygon or multi-polygon, in order.
func flattenRings(g orb.Geometry) []cartomorph.GeoRing {
	var rings []cartomorph.GeoRing
	add := func(p orb.Polygon) {
		for _, r := range p {
			if len(r) == 0 {
				continue
			}
			ring := make(cartomorph.GeoRing, len(r))
			for i, pt := range r {
				ring[i] = cartomorph.LonLat{Lon: pt.Lon(), Lat: pt.Lat()}
			}
			rings = append(rings, ring)
		}
	}
	switch geom := g.(type) {
	case orb.Polygon:
		add(geom)
	case orb.MultiPolygon:
		for _, p := range geom {
			add(p)
		}
	}
	return rings
}
