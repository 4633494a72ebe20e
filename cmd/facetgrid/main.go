package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"facetgrid/pkg/collection"
	"facetgrid/pkg/engine"
	"facetgrid/pkg/sched"
	"facetgrid/pkg/types"
	"facetgrid/pkg/view"
)

//go:embed sample.json
var sampleDoc []byte

func main() {
	var (
		file        = flag.String("f", "", "collection document to load (JSON node tree, embedded sample when empty)")
		state       = flag.String("state", "", "initial selection as a query string, e.g. \"group=pro&category=Fitness\"")
		duration    = flag.Duration("duration", 300*time.Millisecond, "hide animation duration")
		metricsAddr = flag.String("metrics", "", "serve prometheus metrics on this address (disabled when empty)")
	)
	flag.Parse()

	doc, err := loadDocument(*file)
	if err != nil {
		log.Fatalf("failed to load collection: %v", err)
	}

	patch := types.SelectionPatch{}
	if *state != "" {
		patch, err = types.SelectionFromRawQuery(*state)
		if err != nil {
			log.Fatalf("invalid -state query: %v", err)
		}
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	opts := types.DefaultOptions()
	opts.AnimationDuration = *duration

	snapshot := view.NewSnapshot()
	eng := engine.New(opts, snapshot, sched.NewTimers())
	eng.BindWithSelection(doc, patch)

	p := tea.NewProgram(newModel(eng, snapshot), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}

func loadDocument(path string) (*types.Node, error) {
	if path == "" {
		return collection.Parse(sampleDoc)
	}
	return collection.Load(path)
}
