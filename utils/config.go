package utils

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	Generations       int    `json:"generations"`
	OutputPath        string `json:"output_path"`
	KeepComments      bool   `json:"keep_comments"`
	Lossless          bool   `json:"lossless"`
	UseParallel       bool   `json:"use_parallel"`
	ParallelThreshold int    `json:"parallel_threshold"`
	Workers           int    `json:"workers"`
	UseMemoryPool     bool   `json:"use_memory_pool"`
	UseCache          bool   `json:"use_cache"`
	CacheSize         int    `json:"cache_size"`
	DetectCycles      bool   `json:"detect_cycles"`
	HistorySize       int    `json:"history_size"`
	Verbose           bool   `json:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:       0,
		KeepComments:      false,
		Lossless:          false,
		UseParallel:       false,
		ParallelThreshold: 4096, // live cells below this are stepped sequentially
		Workers:           0,    // 0 means runtime.NumCPU()
		UseMemoryPool:     true,
		UseCache:          false,
		CacheSize:         128,
		DetectCycles:      true,
		HistorySize:       5,
		Verbose:           false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values no run can honour
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Errorf("generations must be non-negative, got %d", c.Generations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cache_size must be non-negative, got %d", c.CacheSize)
	}
	if c.HistorySize < 0 {
		return errors.Errorf("history_size must be non-negative, got %d", c.HistorySize)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet, using the current values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Generations, "n", c.Generations, "number of generations to simulate")
	fs.StringVar(&c.OutputPath, "o", c.OutputPath, "write the resulting RLE document to this path")
	fs.BoolVar(&c.KeepComments, "comments", c.KeepComments, "repeat the input's # comment lines in the output")
	fs.BoolVar(&c.Lossless, "lossless", c.Lossless, "encode leading dead cells and empty rows")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "tally neighbours on all CPUs for large patterns")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines for -parallel (0 = NumCPU)")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "reuse neighbour count maps between generations")
	fs.BoolVar(&c.UseCache, "cache", c.UseCache, "memoize simulation results")
	fs.BoolVar(&c.DetectCycles, "cycles", c.DetectCycles, "skip ahead once the pattern repeats")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "print run statistics to stderr")
}
