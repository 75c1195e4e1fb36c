package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		return path
	}

	t.Run("Missing file keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(dir, "absent.json"))
		if err == nil {
			t.Fatal("Expected an error for a missing file")
		}
		if cfg != DefaultConfig() {
			t.Errorf("Expected defaults on error, got %+v", cfg)
		}
	})

	t.Run("Partial file overrides only named fields", func(t *testing.T) {
		cfg, err := LoadConfig(write("partial.json", `{"generations": 12, "use_parallel": true}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Generations != 12 || !cfg.UseParallel {
			t.Errorf("Expected overrides applied, got %+v", cfg)
		}
		if cfg.HistorySize != DefaultConfig().HistorySize {
			t.Errorf("Expected default history size, got %d", cfg.HistorySize)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := LoadConfig(write("bad.json", `{"generations":`)); err == nil {
			t.Fatal("Expected an unmarshal error")
		}
	})

	t.Run("Negative generations rejected", func(t *testing.T) {
		if _, err := LoadConfig(write("negative.json", `{"generations": -1}`)); err == nil {
			t.Fatal("Expected a validation error")
		}
	})
}

func TestConfigBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-n", "7", "-o", "out.rle", "-lossless", "-cycles=false"}); err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}

	if cfg.Generations != 7 {
		t.Errorf("Expected 7 generations, got %d", cfg.Generations)
	}
	if cfg.OutputPath != "out.rle" {
		t.Errorf("Expected output path out.rle, got %q", cfg.OutputPath)
	}
	if !cfg.Lossless {
		t.Error("Expected lossless to be set")
	}
	if cfg.DetectCycles {
		t.Error("Expected cycle detection to be disabled")
	}
}

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()
	stats.Update(1, 10)
	stats.Update(2, 20)

	if stats.StepsComputed != 2 {
		t.Errorf("Expected 2 steps, got %d", stats.StepsComputed)
	}
	if stats.Population != 20 {
		t.Errorf("Expected population 20, got %d", stats.Population)
	}
	if stats.AveragePopulation != 11 {
		t.Errorf("Expected moving average 11, got %v", stats.AveragePopulation)
	}

	stats.Finish(5)
	if stats.TotalGenerations != 5 {
		t.Errorf("Expected 5 total generations, got %d", stats.TotalGenerations)
	}
}
