package dispatch

import (
	"errors"
	"fmt"

	"github.com/greenshot/hqx/internal/pattern"
)

// emitter writes the cells of the top-left region of a block for one
// orientation. The frame presents the pattern and all indices as if the
// region being filled were the top-left one.
type emitter func(f *frame)

// rotations[r] maps a window index seen in orientation r to the real window
// index. Orientation r is r quarter turns clockwise.
var rotations = [4][9]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8},
	{2, 5, 8, 1, 4, 7, 0, 3, 6},
	{8, 7, 6, 5, 4, 3, 2, 1, 0},
	{6, 3, 0, 7, 4, 1, 8, 5, 2},
}

var errConflict = errors.New("dispatch: conflicting cell definitions")

// frame is the view one orientation's emitter writes through.
type frame struct {
	n    int
	rot  int
	p    pattern.Pattern
	perm *[9]uint8

	// rules of the four corners, counted clockwise from this frame's
	// top-left one.
	rules [4]cornerRule

	cells  []Cell
	filled []bool
	err    error
}

// d reports whether the neighbour at a rotated window index differs from
// the centre.
func (f *frame) d(i int) bool {
	return f.p.Has(i)
}

// index maps a rotated cell position to the real row-major offset.
func (f *frame) index(r, c int) int {
	for range f.rot {
		r, c = c, f.n-1-r
	}
	return r*f.n + c
}

// rule returns the corner rule of corner k as seen from this frame.
func (f *frame) rule(k Corner) cornerRule {
	return f.rules[k]
}

func (f *frame) corner(k Corner) Corner {
	return (k + Corner(f.rot)) % 4
}

func (f *frame) put(r, c int, cell Cell) {
	i := f.index(r, c)
	if f.filled[i] {
		if f.cells[i] != cell && f.err == nil {
			f.err = fmt.Errorf("%w: pattern %08b cell %d", errConflict, f.p, i)
		}
		return
	}
	f.cells[i] = cell
	f.filled[i] = true
}

// set writes an unconditional cell.
func (f *frame) set(r, c int, op Op) {
	f.put(r, c, fixed(op.remap(f.perm)))
}

// tie writes a cell that depends on the pair of corner k.
func (f *frame) tie(r, c int, k Corner, same, diff Op) {
	f.put(r, c, Cell{Corner: f.corner(k), Same: same.remap(f.perm), Diff: diff.remap(f.perm)})
}

// emit writes a cell that is unconditional when k is NoCorner and a
// tie-break on corner k otherwise.
func (f *frame) emit(r, c int, cell Cell) {
	if cell.Corner == NoCorner {
		f.set(r, c, cell.Same)
		return
	}
	f.tie(r, c, cell.Corner, cell.Same, cell.Diff)
}

// rotate expresses pattern p as seen in orientation r.
func rotate(p pattern.Pattern, r int) pattern.Pattern {
	perm := &rotations[r]
	var q pattern.Pattern
	for i := range perm {
		if i != pattern.C && p.Has(int(perm[i])) {
			q |= pattern.Bit(i)
		}
	}
	return q
}

// build generates the table for an n×n block and merges identical
// routines.
func build(n int, emit emitter) (*Table, error) {
	t := &Table{Factor: n}
	seen := make(map[string]uint16)

	for p := range 256 {
		cells := make([]Cell, n*n)
		filled := make([]bool, n*n)
		abs := cornerRulesOf(pattern.Pattern(p))

		for rot := range 4 {
			f := &frame{
				n:      n,
				rot:    rot,
				p:      rotate(pattern.Pattern(p), rot),
				perm:   &rotations[rot],
				cells:  cells,
				filled: filled,
			}
			for k := range f.rules {
				f.rules[k] = abs[(rot+k)%4]
			}
			emit(f)
			if f.err != nil {
				return nil, f.err
			}
		}

		for i, ok := range filled {
			if !ok {
				return nil, fmt.Errorf("dispatch: pattern %08b leaves cell %d of %d×%d unset", p, i, n, n)
			}
		}

		key := routineKey(cells)
		idx, ok := seen[key]
		if !ok {
			idx = uint16(len(t.Routines))
			seen[key] = idx
			t.Routines = append(t.Routines, Routine{Cells: cells})
		}
		t.Index[p] = idx
	}
	return t, nil
}

func routineKey(cells []Cell) string {
	b := make([]byte, 0, len(cells)*9)
	for _, c := range cells {
		b = append(b, byte(c.Corner),
			byte(c.Same.Kind), c.Same.A, c.Same.B, c.Same.C,
			byte(c.Diff.Kind), c.Diff.A, c.Diff.B, c.Diff.C)
	}
	return string(b)
}
