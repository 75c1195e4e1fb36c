package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	TotalGenerations     int
	StepsComputed        int
	StartTime            time.Time
	Duration             time.Duration
	InitialPopulation    int
	Population           int
	AveragePopulation    float64
	BoundingBoxSize      int
	CyclePeriod          int
	CacheHit             bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one computed generation
func (s *Stats) Update(generation int, population int) {
	s.StepsComputed++
	s.TotalGenerations = generation
	s.Population = population

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Finish stamps the run duration and derives the throughput
func (s *Stats) Finish(generations int) {
	s.TotalGenerations = generations
	s.Duration = time.Since(s.StartTime)
	if s.Duration > 0 && s.StepsComputed > 0 {
		s.GenerationsPerSecond = float64(s.StepsComputed) / s.Duration.Seconds()
	}
}
