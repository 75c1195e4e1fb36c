package model

// History remembers the most recent generations to detect static and periodic patterns
type History struct {
	size    int
	entries []historyEntry
}

type historyEntry struct {
	generation int
	hash       string
	world      World
}

// NewHistory keeps at most size generations
func NewHistory(size int) *History {
	return &History{size: size}
}

// Update adds the world reached at generation and maintains size
func (h *History) Update(generation int, w World) {
	if h.size <= 0 {
		return
	}
	h.entries = append(h.entries, historyEntry{generation: generation, hash: w.Hash(), world: w})

	if len(h.entries) > h.size {
		h.entries = h.entries[1:]
	}
}

// Period reports how many generations ago w was last seen.
// A still life has period 1, a blinker period 2.
func (h *History) Period(generation int, w World) (int, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}

	hash := w.Hash()
	for i := len(h.entries) - 1; i >= 0; i-- {
		e := h.entries[i]
		// Hashes can collide, so confirm with the cells themselves
		if e.hash == hash && e.world.Equal(w) {
			return generation - e.generation, true
		}
	}
	return 0, false
}

// IsStagnant checks if w repeats one of the remembered generations
func (h *History) IsStagnant(generation int, w World) bool {
	_, ok := h.Period(generation, w)
	return ok
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.entries)
}
