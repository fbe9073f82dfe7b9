package pileup

import (
	"log"
	"sync"

	"github.com/dasnellings/svpileup/breakpoint"
	"github.com/dasnellings/svpileup/record"
	"github.com/dasnellings/svpileup/segment"
)

// RunSharded is Run's coarse-grained concurrent variant (spec §5 allows
// sharding templates across workers with a merged tracker). Templates are
// read serially off src (channel-based sources aren't safe for concurrent
// Next() calls) and dispatched to numWorkers goroutines; tracker already
// mutex-guards Count, so only the sink's writes need serializing here,
// grounded on families.GoAnnotate's single-producer channel-pipeline shape.
func RunSharded(src Source, sink Sink, tracker *breakpoint.Tracker, params Params, numWorkers int) (Metrics, error) {
	if numWorkers < 2 {
		return Run(src, sink, tracker, params)
	}

	dict := src.Dictionary()
	type job struct {
		arena *record.Arena
		tmpl  segment.Template
	}
	jobs := make(chan job, numWorkers*4)
	stop := make(chan struct{})

	var m Metrics
	var mMu sync.Mutex
	var sinkMu sync.Mutex
	var wg sync.WaitGroup

	var writeErrMu sync.Mutex
	var writeErr error
	var stopOnce sync.Once
	fail := func(err error) {
		writeErrMu.Lock()
		if writeErr == nil {
			writeErr = err
		}
		writeErrMu.Unlock()
		stopOnce.Do(func() { close(stop) })
	}

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			local := processTemplate(j.arena, j.tmpl, dict, tracker, params)

			mMu.Lock()
			m.TemplatesSeen++
			m.TemplatesFiltered += local.filtered
			m.TemplatesSkipped += local.skipped
			m.BreakpointsObserved += local.breakpoints
			mMu.Unlock()

			sinkMu.Lock()
			err := writeAll(sink, j.arena)
			sinkMu.Unlock()
			if err != nil {
				fail(err)
			}
		}
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go worker()
	}

loop:
	for {
		select {
		case <-stop:
			break loop
		default:
		}

		arena, tmpl, ok, err := src.Next()
		if err != nil {
			fail(err)
			break
		}
		if !ok {
			break
		}

		select {
		case jobs <- job{arena, tmpl}:
		case <-stop:
			break loop
		}
	}
	close(jobs)
	wg.Wait()

	if writeErr != nil {
		return m, writeErr
	}
	return m, nil
}

type templateOutcome struct {
	filtered    int
	skipped     int
	breakpoints int
}

func processTemplate(arena *record.Arena, tmpl segment.Template, dict Dictionary, tracker *breakpoint.Tracker, params Params) templateOutcome {
	filtered, kept := segment.FilterTemplate(arena, tmpl, params.Filter)
	if !kept {
		return templateOutcome{filtered: 1}
	}

	chain, err := segment.BuildChain(arena, filtered, params.MinUniqueBasesToAdd, params.Slop)
	if err != nil {
		log.Printf("WARNING: skipping template: %v", err)
		return templateOutcome{skipped: 1}
	}

	evs := breakpoint.Detect(chain, breakpoint.DetectParams{
		MaxWithinReadDistance:    params.MaxWithinReadDistance,
		MaxReadPairInnerDistance: params.MaxReadPairInnerDistance,
		IsCircular:               dict.Circular,
	})
	if len(evs) == 0 {
		return templateOutcome{}
	}

	ids := make([]int, len(evs))
	for i, ev := range evs {
		ids[i] = tracker.Count(ev.Breakpoint, ev.Evidence)
	}
	annotate(arena, evs, ids, params.TagName)
	return templateOutcome{breakpoints: len(evs)}
}
