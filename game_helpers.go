package main

import (
	"fmt"
	"os"

	"github.com/sheikhrachel/go-life-rle/game"
	"github.com/sheikhrachel/go-life-rle/utils"
)

// displayRunInfo shows the run configuration
func displayRunInfo(config utils.Config, path string) {
	fmt.Fprintf(os.Stderr, "Features: Memory Pool: %v, Parallel: %v, Cache: %v, Cycle detection: %v\n",
		config.UseMemoryPool, config.UseParallel, config.UseCache, config.DetectCycles)
	fmt.Fprintf(os.Stderr, "Input: %s | Generations: %d\n", path, config.Generations)
	if config.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "Output: %s\n", config.OutputPath)
	}
}

// displayRunStats shows the outcome of the run
func displayRunStats(config utils.Config, result game.Result) {
	stats := result.Stats

	status := "Active"
	if stats.CyclePeriod > 0 {
		status = fmt.Sprintf("Periodic (%d)", stats.CyclePeriod)
	}
	if stats.Population == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(os.Stderr, "Gen: %d | Living: %d (from %d) | Status: %s | Bounding box: %d cells\n",
		stats.TotalGenerations, stats.Population, stats.InitialPopulation, status, stats.BoundingBoxSize)
	fmt.Fprintf(os.Stderr, "Performance: %d steps computed | %.1f gen/sec | Avg Pop: %.1f | Runtime: %.3fs\n",
		stats.StepsComputed, stats.GenerationsPerSecond, stats.AveragePopulation, stats.Duration.Seconds())

	if config.UseCache && stats.CacheHit {
		fmt.Fprintln(os.Stderr, "Result served from cache")
	}
	if len(result.Document.Comments) > 0 && !config.KeepComments {
		fmt.Fprintf(os.Stderr, "Dropped %d comment line(s); pass -comments to keep them\n", len(result.Document.Comments))
	}
}
