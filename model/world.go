package model

import (
	"cmp"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cell is one position on the unbounded grid
type Cell struct {
	X, Y int
}

// neighbourOffsets are the 8 positions around a cell
var neighbourOffsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours returns the 8 cells adjacent to c
func Neighbours(c Cell) [8]Cell {
	var out [8]Cell
	for i, o := range neighbourOffsets {
		out[i] = Cell{X: c.X + o.X, Y: c.Y + o.Y}
	}
	return out
}

// Bounds is an inclusive rectangle of cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Width returns the number of columns covered by b
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered by b
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Size returns the number of cells covered by b
func (b Bounds) Size() int { return b.Width() * b.Height() }

// World is an immutable set of live cells. The zero value is the empty world.
type World struct {
	cells mapset.Set[Cell]
}

// NewWorld creates a world in which exactly the given cells are alive
func NewWorld(cells ...Cell) World {
	set := mapset.New[Cell]()
	for _, c := range cells {
		set.Put(c)
	}
	return World{cells: set}
}

// Alive reports whether c is alive
func (w World) Alive(c Cell) bool {
	return w.cells.Has(c)
}

// Len returns the number of live cells
func (w World) Len() int {
	return w.cells.Size()
}

// Each calls fn for every live cell in no particular order
func (w World) Each(fn func(c Cell)) {
	w.cells.Each(fn)
}

// Cells returns the live cells sorted row-major (by Y, then X)
func (w World) Cells() []Cell {
	out := make([]Cell, 0, w.Len())
	w.cells.Each(func(c Cell) {
		out = append(out, c)
	})
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Equal reports whether both worlds contain the same live cells
func (w World) Equal(other World) bool {
	if w.Len() != other.Len() {
		return false
	}
	equal := true
	w.cells.Each(func(c Cell) {
		if equal && !other.Alive(c) {
			equal = false
		}
	})
	return equal
}

// Bounds returns the bounding box of the live cells; ok is false for an empty world
func (w World) Bounds() (b Bounds, ok bool) {
	w.cells.Each(func(c Cell) {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			return
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	})
	return b, ok
}

// BoundsWithOrigin returns the bounding box widened on both axes to include (0, 0)
func (w World) BoundsWithOrigin() Bounds {
	b, ok := w.Bounds()
	if !ok {
		return Bounds{}
	}
	return Bounds{
		MinX: min(b.MinX, 0),
		MaxX: max(b.MaxX, 0),
		MinY: min(b.MinY, 0),
		MaxY: max(b.MaxY, 0),
	}
}

// Translate returns a copy of w shifted by (dx, dy)
func (w World) Translate(dx, dy int) World {
	next := mapset.New[Cell]()
	w.cells.Each(func(c Cell) {
		next.Put(Cell{X: c.X + dx, Y: c.Y + dy})
	})
	return World{cells: next}
}

// Hash returns an MD5 digest of the live cells, independent of insertion order
func (w World) Hash() string {
	h := md5.New()
	var buf [16]byte
	for _, c := range w.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String lists the live cells row-major, for test failure messages
func (w World) String() string {
	return fmt.Sprint(w.Cells())
}
