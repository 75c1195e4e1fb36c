package rules

// Conway is the only rule string the RLE header may declare.
const Conway = "B3/S23"

const (
	// BirthCount is the exact neighbour count that brings a dead cell to life.
	BirthCount = 3
	// SurviveMin and SurviveMax bound the neighbour counts that keep a live cell alive.
	SurviveMin = 2
	SurviveMax = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors in {2, 3}) || (!alive && neighbors == 3)
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthCount
}
