package game

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-rle/model"
	"github.com/sheikhrachel/go-life-rle/rle"
	"github.com/sheikhrachel/go-life-rle/utils"
)

// Result is the outcome of one parse, simulate and format run
type Result struct {
	Text     string
	Document rle.Document
	World    model.World
	Stats    *utils.Stats
}

// Assembler runs RLE documents through the simulation engine
type Assembler struct {
	config utils.Config
	pool   *model.CountPool
	cache  *Cache
}

// NewAssembler sets up the optional count map pool and result cache from config
func NewAssembler(config utils.Config) *Assembler {
	a := &Assembler{config: config}
	if config.UseMemoryPool {
		a.pool = model.NewCountPool()
	}
	if config.UseCache {
		a.cache = NewCache(config.CacheSize)
	}
	return a
}

// Run parses content, advances it by generations and formats the result
func (a *Assembler) Run(content string, generations int) (Result, error) {
	if generations < 0 {
		return Result{}, errors.Errorf("[Run] generations must be non-negative, got %d", generations)
	}

	doc, err := rle.ParseDocument(content)
	if err != nil {
		return Result{}, err
	}

	world, stats := a.Simulate(doc.World(), generations)

	opts := rle.FormatOptions{Lossless: a.config.Lossless}
	if a.config.KeepComments {
		opts.Comments = doc.Comments
	}

	return Result{
		Text:     rle.FormatWorldWith(world, opts),
		Document: doc,
		World:    world,
		Stats:    stats,
	}, nil
}

// RunFile reads path, runs it and writes the output to outputPath when one is given
func (a *Assembler) RunFile(path string, generations int, outputPath string) (Result, error) {
	content, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	result, err := a.Run(content, generations)
	if err != nil {
		return Result{}, errors.Wrapf(err, "[RunFile] failed to run file: %+v", path)
	}

	if outputPath != "" {
		if err = WriteFile(outputPath, result.Text); err != nil {
			return result, err
		}
	}

	return result, nil
}

// Simulate advances w by generations, consulting the cache when enabled
func (a *Assembler) Simulate(w model.World, generations int) (model.World, *utils.Stats) {
	stats := utils.NewStats()
	stats.InitialPopulation = w.Len()

	var next model.World
	if a.cache != nil {
		next, stats.CacheHit = a.cache.Get(w, generations, func() model.World {
			return a.simulate(w, generations, stats)
		})
	} else {
		next = a.simulate(w, generations, stats)
	}

	stats.Population = next.Len()
	if b, ok := next.Bounds(); ok {
		stats.BoundingBoxSize = b.Size()
	}
	stats.Finish(generations)
	return next, stats
}

// simulate steps w one generation at a time. Once a generation repeats an
// earlier one, the remaining generations are reduced modulo the period.
func (a *Assembler) simulate(w model.World, generations int, stats *utils.Stats) model.World {
	var history *model.History
	if a.config.DetectCycles {
		history = model.NewHistory(a.config.HistorySize)
	}

	for gen := 0; gen < generations; gen++ {
		if history != nil {
			if period, ok := history.Period(gen, w); ok {
				stats.CyclePeriod = period
				remaining := (generations - gen) % period
				for i := range remaining {
					w = w.NextGeneration(a.config, a.pool)
					stats.Update(generations-remaining+i+1, w.Len())
				}
				return w
			}
			history.Update(gen, w)
		}

		w = w.NextGeneration(a.config, a.pool)
		stats.Update(gen+1, w.Len())
	}
	return w
}
