package cartomorph

import (
	"math"
	"testing"
)

// geoSquare returns a closed geographic ring of the given side length in
// degrees centered at (lon, lat).
func geoSquare(lon, lat, side float64) GeoRing {
	h := side / 2
	return GeoRing{
		{Lon: lon - h, Lat: lat - h},
		{Lon: lon + h, Lat: lat - h},
		{Lon: lon + h, Lat: lat + h},
		{Lon: lon - h, Lat: lat + h},
		{Lon: lon - h, Lat: lat - h},
	}
}

func TestRadiusScale(t *testing.T) {
	scale := RadiusScale(1000, 30)

	tests := []struct {
		name string
		pop  int
		want float64
	}{
		{"zero population", 0, 0},
		{"worked example", 250, 15},
		{"max population", 1000, 30},
		{"negative treated as zero", -5, 0},
		{"above max clamps", 4001, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scale(tt.pop); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("scale(%d) = %v, want %v", tt.pop, got, tt.want)
			}
		})
	}
}

func TestRadiusScaleMonotone(t *testing.T) {
	scale := RadiusScale(5_000_000, 40)
	prev := -1.0
	for pop := 0; pop <= 5_000_000; pop += 123_457 {
		r := scale(pop)
		if r < prev {
			t.Fatalf("radius decreased: scale(%d) = %v < %v", pop, r, prev)
		}
		prev = r
	}
}

func TestPrepareSingleRing(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "20001", StateID: "20", Rings: []GeoRing{geoSquare(-96, 38, 2)}},
	}
	pop := PopulationTable{"20001": 1000}

	counties := Prepare(feats, pop, proj, 30)
	if len(counties) != 1 {
		t.Fatalf("prepared %d counties, want 1", len(counties))
	}
	c := counties[0]
	if len(c.Rings) != 1 || c.Dominant != 0 || len(c.Tiny) != 0 {
		t.Errorf("single-ring county classified wrong: rings=%d dominant=%d tiny=%d",
			len(c.Rings), c.Dominant, len(c.Tiny))
	}
	if c.Radius != 30 {
		t.Errorf("Radius = %v, want 30 (max population)", c.Radius)
	}
	if !ringsEqual(c.Circle, Circle(c.Radius, c.Centroid)) {
		t.Error("Circle does not match Circle(Radius, Centroid)")
	}
	// Centroid of a square about (-96, 38) projects near the projection
	// of that center point.
	want, _ := proj.Project(LonLat{Lon: -96, Lat: 38})
	if c.Centroid.Distance(want) > 2 {
		t.Errorf("Centroid = %v, want near %v", c.Centroid, want)
	}
}

func TestPrepareDominantAndTiny(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "x", Rings: []GeoRing{
			geoSquare(-100, 40, 0.05), // tiny island
			geoSquare(-96, 38, 2),     // mainland
		}},
	}
	counties := Prepare(feats, PopulationTable{"x": 10}, proj, 30)
	if len(counties) != 1 {
		t.Fatalf("prepared %d counties, want 1", len(counties))
	}
	c := counties[0]
	if c.Dominant != 1 {
		t.Errorf("Dominant = %d, want 1", c.Dominant)
	}
	if !c.IsTiny(0) {
		t.Error("island ring not classified tiny")
	}
	if c.IsTiny(c.Dominant) {
		t.Error("dominant ring must never be tiny")
	}
	for i := range c.Rings {
		if c.IsTiny(i) && i >= len(c.Rings) {
			t.Errorf("tiny index %d out of ring range", i)
		}
	}
	// Tiny rings contribute nothing to the morph at any t.
	if out := c.Interp(0.5); len(out) != 1 {
		t.Errorf("interp(0.5) produced %d rings, want 1 (tiny excluded)", len(out))
	}
}

func TestPrepareUnprojectableRing(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "a", Rings: []GeoRing{
			geoSquare(-96, 38, 2),
			geoSquare(10, 50, 2), // entirely out of domain
		}},
		{ID: "b", Rings: []GeoRing{
			geoSquare(10, 50, 2), // all rings out of domain
		}},
	}
	counties := Prepare(feats, PopulationTable{"a": 5, "b": 5}, proj, 30)
	if len(counties) != 1 {
		t.Fatalf("prepared %d counties, want 1 (feature b skipped)", len(counties))
	}
	if got := len(counties[0].Rings); got != 1 {
		t.Errorf("county a kept %d rings, want 1", got)
	}
}

func TestPrepareMissingPopulation(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "known", Rings: []GeoRing{geoSquare(-96, 38, 2)}},
		{ID: "unknown", Rings: []GeoRing{geoSquare(-90, 35, 2)}},
	}
	counties := Prepare(feats, PopulationTable{"known": 777}, proj, 30)
	if len(counties) != 2 {
		t.Fatalf("prepared %d counties, want 2", len(counties))
	}
	var unknown *PreparedCounty
	for _, c := range counties {
		if c.ID == "unknown" {
			unknown = c
		}
	}
	if unknown == nil {
		t.Fatal("county without population row was not prepared")
	}
	if unknown.HasPop || unknown.Population != 0 || unknown.Radius != 0 {
		t.Errorf("missing population: HasPop=%v pop=%d radius=%v, want false/0/0",
			unknown.HasPop, unknown.Population, unknown.Radius)
	}
}

func TestPrepareSortedByPopulation(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "small", Rings: []GeoRing{geoSquare(-96, 38, 1)}},
		{ID: "big", Rings: []GeoRing{geoSquare(-100, 40, 1)}},
		{ID: "mid", Rings: []GeoRing{geoSquare(-90, 35, 1)}},
	}
	pop := PopulationTable{"small": 10, "big": 1000, "mid": 500}
	counties := Prepare(feats, pop, proj, 30)

	want := []string{"big", "mid", "small"}
	for i, c := range counties {
		if c.ID != want[i] {
			t.Fatalf("draw order %v, want %v", ids(counties), want)
		}
	}
}

func TestPrepareRadiusMonotone(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "p1", Rings: []GeoRing{geoSquare(-96, 38, 1)}},
		{ID: "p2", Rings: []GeoRing{geoSquare(-100, 40, 1)}},
	}
	pop := PopulationTable{"p1": 300, "p2": 800}
	counties := Prepare(feats, pop, proj, 30)
	if counties[0].ID != "p2" {
		t.Fatal("expected p2 first (population descending)")
	}
	if counties[0].Radius <= counties[1].Radius {
		t.Errorf("radius not monotone in population: %v vs %v",
			counties[0].Radius, counties[1].Radius)
	}
}

func TestPrepareSamplingLaw(t *testing.T) {
	proj := NewProjection(960)
	feats := []RawCountyFeature{
		{ID: "c", Rings: []GeoRing{geoSquare(-96, 38, 2)}},
	}
	counties := Prepare(feats, PopulationTable{"c": 500}, proj, 30)
	c := counties[0]

	out := c.Interp(0)
	if len(out) != 1 {
		t.Fatalf("interp(0) produced %d rings", len(out))
	}
	ringApproxOn(t, out[0], c.Rings[0], 1e-9)

	out = c.Interp(1)
	if len(out) != 1 || !ringsEqual(out[0], c.Circle) {
		t.Error("interp(1) must reproduce the circle polygon exactly")
	}
}

func ids(cs []*PreparedCounty) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}
