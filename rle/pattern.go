package rle

import (
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-life-rle/model"
)

// Pattern block alphabet
const (
	Alive        = 'o'
	Dead         = 'b'
	EndOfRow     = '$'
	EndOfPattern = '!'
)

// maxRun caps a run count so that absurd digit strings cannot overflow int
const maxRun = 1 << 30

// Pattern is an encoded pattern block and the size of the rectangle it describes
type Pattern struct {
	Text   string
	Width  int
	Height int
}

// CompressRuns replaces every run of two or more identical non-digit
// characters with its length followed by the character. Digits are copied as is.
func CompressRuns(s string) string {
	var w runWriter
	for _, r := range s {
		if isDigit(r) {
			w.flush()
			w.sb.WriteRune(r)
			continue
		}
		w.write(r, 1)
	}
	return w.String()
}

// ExpandRuns replaces every count followed by a non-digit character with
// that character repeated count times. It is the inverse of CompressRuns.
func ExpandRuns(s string) string {
	var sb strings.Builder
	rest := scanRuns(s, func(r rune, n int) bool {
		for range n {
			sb.WriteRune(r)
		}
		return true
	})
	sb.WriteString(rest)
	return sb.String()
}

// scanRuns calls fn with each character of s and the count written before it,
// or 1 when there is none, until fn returns false. It returns any trailing
// digits that were not followed by a character.
func scanRuns(s string, fn func(r rune, n int) bool) string {
	digitsAt, n := -1, 0
	for i, r := range s {
		if isDigit(r) {
			if digitsAt < 0 {
				digitsAt, n = i, 0
			}
			n = min(n*10+int(r-'0'), maxRun)
			continue
		}
		if digitsAt < 0 {
			n = 1
		}
		digitsAt = -1
		if !fn(r, n) {
			return ""
		}
	}
	if digitsAt >= 0 {
		return s[digitsAt:]
	}
	return ""
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// DecodePattern interprets a pattern block starting at (0, 0). Characters
// after the first '!' are ignored and characters outside the alphabet are
// skipped.
func DecodePattern(text string) model.World {
	var (
		cells []model.Cell
		x, y  int
	)
	scanRuns(text, func(r rune, n int) bool {
		if n == 0 {
			return true
		}
		switch r {
		case Alive:
			for range n {
				cells = append(cells, model.Cell{X: x, Y: y})
				x++
			}
		case Dead:
			x += n
		case EndOfRow:
			x = 0
			y += n
		case EndOfPattern:
			return false
		}
		return true
	})
	return model.NewWorld(cells...)
}

// EncodePattern encodes w over its bounding box widened to include the
// origin. Each row starts at its first live cell and rows with no live cells
// are left out, so the decoded result is only equal to w when every row of
// the box starts with a live cell at its left edge.
func EncodePattern(w model.World) Pattern {
	return encode(w, false)
}

// EncodePatternLossless encodes w so that decoding and translating by the
// rectangle's top-left corner gives back w. Leading dead cells and empty rows
// are kept; trailing dead cells are dropped.
func EncodePatternLossless(w model.World) Pattern {
	return encode(w, true)
}

func encode(w model.World, lossless bool) Pattern {
	var (
		b    = w.BoundsWithOrigin()
		out  runWriter
		rows = 0
	)

	cells := w.Cells()
	for y := b.MinY; y <= b.MaxY; y++ {
		var row []model.Cell
		for len(cells) > 0 && cells[0].Y == y {
			row = append(row, cells[0])
			cells = cells[1:]
		}

		if len(row) == 0 && !lossless {
			continue
		}
		if rows > 0 {
			out.write(EndOfRow, 1)
		}
		rows++

		x := rowStart(row, b.MinX, lossless)
		for _, c := range row {
			out.write(Dead, c.X-x)
			out.write(Alive, 1)
			x = c.X + 1
		}
		if !lossless && len(row) > 0 {
			out.write(Dead, b.MaxX-x+1)
		}
	}
	out.write(EndOfPattern, 1)

	return Pattern{Text: out.String(), Width: b.Width(), Height: b.Height()}
}

// rowStart is the column a row's output begins at
func rowStart(row []model.Cell, minX int, lossless bool) int {
	if lossless || len(row) == 0 {
		return minX
	}
	return row[0].X
}

// runWriter merges consecutive writes of the same character into <count><char> tokens
type runWriter struct {
	sb strings.Builder
	ch rune
	n  int
}

func (w *runWriter) write(ch rune, n int) {
	if n <= 0 {
		return
	}
	if w.n > 0 && ch != w.ch {
		w.flush()
	}
	w.ch = ch
	w.n += n
}

func (w *runWriter) flush() {
	if w.n == 0 {
		return
	}
	if w.n > 1 {
		w.sb.WriteString(strconv.Itoa(w.n))
	}
	w.sb.WriteRune(w.ch)
	w.n = 0
}

func (w *runWriter) String() string {
	w.flush()
	return w.sb.String()
}
