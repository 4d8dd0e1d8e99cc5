// Command cartodemo renders the county-to-cartogram morph animation as a
// sequence of PNG frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/cartomorph"
	"github.com/gogpu/cartomorph/data"
)

func main() {
	var (
		width    = flag.Int("width", 960, "viewport width in pixels")
		frames   = flag.Int("frames", 120, "number of frames to render")
		fps      = flag.Float64("fps", 30, "frames per second of the simulated clock")
		forward  = flag.Duration("forward", 5*time.Second, "forward morph duration")
		features = flag.String("counties", "counties.geojson", "county GeoJSON file")
		popTable = flag.String("population", "population.csv", "population CSV file")
		outDir   = flag.String("out", "frames", "output directory for PNG frames")
		verbose  = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		cartomorph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	feats, err := data.LoadFeatures(*features)
	if err != nil {
		log.Fatalf("Failed to load features: %v", err)
	}
	pop, err := data.LoadPopulation(*popTable)
	if err != nil {
		log.Fatalf("Failed to load population table: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Step simulated time frame by frame so output is deterministic for a
	// given flag set, independent of render speed.
	now := time.Unix(0, 0)
	step := time.Duration(float64(time.Second) / *fps)

	dc := gg.NewContext(*width, cartomorph.ViewportHeight(*width))
	defer func() { _ = dc.Close() }()

	sess, err := cartomorph.NewSession(cartomorph.SessionConfig{
		Width:      *width,
		Features:   feats,
		Population: pop,
		Surface:    cartomorph.NewGGSurface(dc),
		Forward:    *forward,
		Now:        func() time.Time { return now },
	})
	if err != nil {
		log.Fatalf("Failed to build session: %v", err)
	}
	defer sess.Close()
	sess.Start()

	for i := 0; i < *frames; i++ {
		if err := sess.Frame(); err != nil {
			log.Fatalf("Failed to render frame %d: %v", i, err)
		}
		name := fmt.Sprintf("%s/frame%04d.png", *outDir, i)
		if err := dc.SavePNG(name); err != nil {
			log.Fatalf("Failed to save %s: %v", name, err)
		}
		now = now.Add(step)
	}

	log.Printf("Rendered %d frames (%dx%d, %d counties) to %s\n",
		*frames, sess.Width(), sess.Height(), len(sess.Counties()), *outDir)
}
