package model

import (
	"fmt"
	"runtime"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life-rle/rules"
	"github.com/sheikhrachel/go-life-rle/utils"
)

// Step calculates the next generation of w.
// Only cells with at least one live neighbour are examined.
func Step(w World) World {
	return step(w, make(CountMap, w.Len()*4))
}

// step evaluates the next generation using counts as scratch space; counts must be empty
func step(w World, counts CountMap) World {
	w.Each(func(c Cell) {
		for _, n := range Neighbours(c) {
			counts[n]++
		}
	})
	return evaluate(w, counts)
}

// evaluate applies the rule to every tallied cell. Live cells absent from
// counts have no neighbours and die.
func evaluate(w World, counts CountMap) World {
	next := mapset.New[Cell]()
	for c, n := range counts {
		if rules.ApplyConwayRules(int(n), w.Alive(c)) {
			next.Put(c)
		}
	}
	return World{cells: next}
}

// StepParallel calculates the next generation by tallying neighbours on
// several goroutines. The result is identical to Step.
func StepParallel(w World, workers int) World {
	return stepParallel(w, workers, nil)
}

func stepParallel(w World, workers int, pool *CountPool) World {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cells := make([]Cell, 0, w.Len())
	w.Each(func(c Cell) {
		cells = append(cells, c)
	})
	if workers == 1 || len(cells) < 2*workers {
		return step(w, newCounts(pool))
	}

	var (
		eg             errgroup.Group
		partials       = make([]CountMap, workers)
		cellsPerWorker = (len(cells) + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(cells))
		)
		if start >= len(cells) {
			break
		}

		eg.Go(func() error {
			counts := newCounts(pool)
			for _, c := range cells[start:end] {
				for _, n := range Neighbours(c) {
					counts[n]++
				}
			}
			partials[i] = counts
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	merged := partials[0]
	for _, partial := range partials[1:] {
		if partial == nil {
			continue
		}
		for c, n := range partial {
			merged[c] += n
		}
		CountsToPool(partial, pool)
	}

	next := evaluate(w, merged)
	CountsToPool(merged, pool)
	return next
}

func newCounts(pool *CountPool) CountMap {
	if pool != nil {
		return pool.Get()
	}
	return make(CountMap)
}

// NextGeneration calculates the next generation based on configuration
func (w World) NextGeneration(config utils.Config, pool *CountPool) World {
	if config.UseParallel && w.Len() >= config.ParallelThreshold {
		return stepParallel(w, config.Workers, pool)
	}

	counts := newCounts(pool)
	next := step(w, counts)
	CountsToPool(counts, pool)
	return next
}

// Simulate applies Step generations times. A non-positive count returns w unchanged.
func Simulate(w World, generations int) World {
	for range max(generations, 0) {
		w = Step(w)
	}
	return w
}
