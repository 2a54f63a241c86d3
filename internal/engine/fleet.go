package engine

import (
	"sync"

	"github.com/sgirard84/airworthy/internal/aircraft"
	"github.com/sgirard84/airworthy/internal/directive"
	"github.com/sgirard84/airworthy/internal/model"
)

// defaultFleetWorkers bounds the number of aircraft evaluated concurrently.
const defaultFleetWorkers = 4

// FleetEntry holds one aircraft's batch results and their summary.
type FleetEntry struct {
	Aircraft *aircraft.Configuration
	Entries  []BatchEntry
	Summary  model.Summary
}

// EvaluateFleet evaluates every aircraft against every directive. Aircraft
// are processed on a bounded worker pool; results are written into an
// index-addressed slice so the output order always matches fleet order
// regardless of scheduling.
func (e *Evaluator) EvaluateFleet(fleet []*aircraft.Configuration, directives []*directive.Directive) []FleetEntry {
	entries := make([]FleetEntry, len(fleet))

	workers := defaultFleetWorkers
	if len(fleet) < workers {
		workers = len(fleet)
	}
	if workers < 1 {
		workers = 1
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, ac := range fleet {
		wg.Add(1)
		go func(i int, ac *aircraft.Configuration) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			batch := e.EvaluateAll(ac, directives)
			entries[i] = FleetEntry{
				Aircraft: ac,
				Entries:  batch,
				Summary:  Summarize(batch),
			}
		}(i, ac)
	}

	wg.Wait()
	return entries
}
