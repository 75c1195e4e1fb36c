package model

import (
	"slices"
	"testing"
)

func TestNeighbours(t *testing.T) {
	c := Cell{X: -4, Y: 7}
	seen := map[Cell]bool{}
	for _, n := range Neighbours(c) {
		if n == c {
			t.Fatalf("Neighbours(%v) includes the cell itself", c)
		}
		if seen[n] {
			t.Fatalf("Neighbours(%v) yields %v twice", c, n)
		}
		dx, dy := n.X-c.X, n.Y-c.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("Neighbours(%v) yields distant cell %v", c, n)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct neighbours, got %d", len(seen))
	}
}

func TestWorldSetSemantics(t *testing.T) {
	w := NewWorld(Cell{1, 1}, Cell{1, 1}, Cell{-2, 3})

	if w.Len() != 2 {
		t.Errorf("Expected duplicate cells to collapse, got %d cells", w.Len())
	}
	if !w.Alive(Cell{-2, 3}) {
		t.Error("Expected (-2,3) to be alive")
	}
	if w.Alive(Cell{0, 0}) {
		t.Error("Expected (0,0) to be dead")
	}

	var zero World
	if zero.Len() != 0 || zero.Alive(Cell{}) {
		t.Error("Expected the zero World to be empty")
	}
	if !zero.Equal(NewWorld()) {
		t.Error("Expected the zero World to equal an empty World")
	}
}

func TestWorldCellsSorted(t *testing.T) {
	w := NewWorld(Cell{2, 1}, Cell{0, 0}, Cell{-1, 1}, Cell{5, -3})
	expected := []Cell{{5, -3}, {0, 0}, {-1, 1}, {2, 1}}

	if got := w.Cells(); !slices.Equal(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestWorldBounds(t *testing.T) {
	tests := []struct {
		name       string
		world      World
		withOrigin Bounds
	}{
		{"Empty", NewWorld(), Bounds{}},
		{"Positive cell", NewWorld(Cell{6, 7}), Bounds{MinX: 0, MaxX: 6, MinY: 0, MaxY: 7}},
		{"Negative cells", NewWorld(Cell{-3, -2}, Cell{-1, -5}), Bounds{MinX: -3, MaxX: 0, MinY: -5, MaxY: 0}},
		{"Spanning origin", NewWorld(Cell{-1, 2}, Cell{3, -4}), Bounds{MinX: -1, MaxX: 3, MinY: -4, MaxY: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.world.BoundsWithOrigin(); got != tt.withOrigin {
				t.Errorf("Expected %+v, got %+v", tt.withOrigin, got)
			}
		})
	}

	if _, ok := NewWorld().Bounds(); ok {
		t.Error("Expected no bounds for an empty world")
	}
	b, ok := NewWorld(Cell{6, 7}, Cell{8, 7}).Bounds()
	if !ok || b.Width() != 3 || b.Height() != 1 || b.Size() != 3 {
		t.Errorf("Unexpected bounds %+v", b)
	}
}

func TestWorldTranslateAndHash(t *testing.T) {
	w := NewWorld(Cell{0, 0}, Cell{1, 2})
	moved := w.Translate(-3, 4)

	if !moved.Equal(NewWorld(Cell{-3, 4}, Cell{-2, 6})) {
		t.Errorf("Unexpected translation %v", moved)
	}
	if w.Len() != 2 || !w.Alive(Cell{0, 0}) {
		t.Error("Translate must not modify the original world")
	}
	if w.Hash() == moved.Hash() {
		t.Error("Expected different worlds to hash differently")
	}
	if w.Hash() != NewWorld(Cell{1, 2}, Cell{0, 0}).Hash() {
		t.Error("Expected the hash to ignore insertion order")
	}
}
