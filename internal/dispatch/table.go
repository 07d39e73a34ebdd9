package dispatch

import (
	"sync"

	"github.com/greenshot/hqx/internal/color"
	"github.com/greenshot/hqx/internal/pattern"
)

// Corner names a tie-break pair: the two edge neighbours flanking one
// corner of the block.
type Corner int8

// Corners in clockwise order. Rotating the block a quarter turn clockwise
// moves corner k to corner k+1.
const (
	NoCorner    Corner = -1
	TopLeft     Corner = 0
	TopRight    Corner = 1
	BottomRight Corner = 2
	BottomLeft  Corner = 3
)

// cornerPairs lists the window indices compared for each corner.
var cornerPairs = [4][2]int{
	TopLeft:     {pattern.W, pattern.N},
	TopRight:    {pattern.N, pattern.E},
	BottomRight: {pattern.E, pattern.S},
	BottomLeft:  {pattern.S, pattern.W},
}

// Cell describes one output pixel of a routine.
//
// An unconditional cell has Corner == NoCorner and always uses Same. A
// tie-break cell compares the pair of its corner: when the two pixels are
// alike the diagonal between them is a real edge and Same is used,
// otherwise Diff.
type Cell struct {
	Corner Corner
	Same   Op
	Diff   Op
}

func fixed(op Op) Cell { return Cell{Corner: NoCorner, Same: op, Diff: op} }

// Routine fills one factor×factor block, cells in row-major order.
type Routine struct {
	Cells []Cell
}

// Table dispatches the 256 patterns for one scale factor.
type Table struct {
	Factor   int
	Index    [256]uint16
	Routines []Routine
}

// Routine returns the routine selected for p.
func (t *Table) Routine(p pattern.Pattern) *Routine {
	return &t.Routines[t.Index[p]]
}

// Synthesize writes the factor×factor block for window w, classified as p,
// into out in row-major order. Each corner pair is compared at most once.
func (t *Table) Synthesize(p pattern.Pattern, w *pattern.Window, d pattern.Differ, out []color.Pixel) {
	cells := t.Routines[t.Index[p]].Cells
	out = out[:len(cells)]

	// 0 unknown, 1 alike, 2 different.
	var ties [4]uint8
	for i := range cells {
		cell := &cells[i]
		op := cell.Same
		if k := cell.Corner; k != NoCorner {
			if ties[k] == 0 {
				pair := cornerPairs[k]
				ties[k] = 1
				if d.Differs(w[pair[0]], w[pair[1]]) {
					ties[k] = 2
				}
			}
			if ties[k] == 2 {
				op = cell.Diff
			}
		}
		out[i] = op.Apply(w)
	}
}

var tables = [5]func() *Table{
	2: sync.OnceValue(func() *Table { return mustBuild(2, emit2) }),
	3: sync.OnceValue(func() *Table { return mustBuild(3, emit3) }),
	4: sync.OnceValue(func() *Table { return mustBuild(4, emit4) }),
}

// ForFactor returns the dispatch table for a scale factor, or nil when the
// factor is not 2, 3 or 4. Tables are generated on first use.
func ForFactor(n int) *Table {
	if n < 0 || n >= len(tables) || tables[n] == nil {
		return nil
	}
	return tables[n]()
}

func mustBuild(n int, e emitter) *Table {
	t, err := build(n, e)
	if err != nil {
		panic(err)
	}
	return t
}
