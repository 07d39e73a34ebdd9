package dispatch

import (
	"fmt"

	"github.com/greenshot/hqx/internal/pattern"
)

// Window indices, shortened for the rule tables.
const (
	iNW = pattern.NW
	iN  = pattern.N
	iNE = pattern.NE
	iW  = pattern.W
	iC  = pattern.C
	iE  = pattern.E
	iSW = pattern.SW
	iS  = pattern.S
)

var (
	keep = copyOf(iC)
	toNW = mix(Blend31, iC, iNW)
	toW  = mix(Blend31, iC, iW)
	toN  = mix(Blend31, iC, iN)
)

func tied(k Corner, same, diff Op) Cell { return Cell{Corner: k, Same: same, Diff: diff} }

func badRule(r cornerRule) string { return fmt.Sprintf("dispatch: unknown corner rule %d", r) }

// corner2 is the top-left pixel of a 2×2 block.
func corner2(r cornerRule) Cell {
	switch r {
	case ruleNW:
		return fixed(toNW)
	case ruleW:
		return fixed(toW)
	case ruleN:
		return fixed(toN)
	case ruleOpen:
		return fixed(mix3(Blend211, iC, iW, iN))
	case ruleNWN:
		return fixed(mix3(Blend211, iC, iNW, iN))
	case ruleNWW:
		return fixed(mix3(Blend211, iC, iNW, iW))
	case ruleEdge:
		return tied(TopLeft, mix3(Blend211, iC, iW, iN), keep)
	case ruleBroad:
		return tied(TopLeft, mix3(Blend233, iC, iW, iN), keep)
	case rulePoint:
		return tied(TopLeft, mix3(Blend1411, iC, iW, iN), keep)
	case ruleEdgeNW:
		return tied(TopLeft, mix3(Blend211, iC, iW, iN), toNW)
	case ruleFullNW:
		return tied(TopLeft, mix3(Blend611, iC, iW, iN), toNW)
	case ruleBroadNW:
		return tied(TopLeft, mix3(Blend233, iC, iW, iN), toNW)
	case ruleShallow:
		return tied(TopRight, mix3(Blend521, iC, iN, iW), toW)
	case ruleSteep:
		return tied(BottomLeft, mix3(Blend521, iC, iW, iN), toN)
	}
	panic(badRule(r))
}

func emit2(f *frame) {
	f.emit(0, 0, corner2(f.rule(TopLeft)))
}

// corner3 is the top-left pixel of a 3×3 block. met is set when a shallow
// or steep neighbour runs its diagonal into this corner.
func corner3(r cornerRule, met bool) Cell {
	broad := mix3(Blend277, iC, iW, iN)
	if met {
		broad = mix(Blend11, iW, iN)
	}
	switch r {
	case ruleNW, ruleNWN, ruleNWW:
		return fixed(toNW)
	case ruleW:
		return fixed(toW)
	case ruleN:
		return fixed(toN)
	case ruleOpen:
		return fixed(mix3(Blend211, iC, iW, iN))
	case ruleEdge:
		return tied(TopLeft, mix3(Blend277, iC, iW, iN), keep)
	case ruleBroad:
		return tied(TopLeft, broad, keep)
	case rulePoint:
		return tied(TopLeft, mix3(Blend211, iC, iW, iN), keep)
	case ruleEdgeNW, ruleFullNW:
		return tied(TopLeft, mix3(Blend211, iC, iW, iN), toNW)
	case ruleBroadNW:
		return tied(TopLeft, broad, toNW)
	case ruleShallow:
		return tied(TopRight, mix3(Blend211, iC, iW, iN), toW)
	case ruleSteep:
		return tied(BottomLeft, mix3(Blend211, iC, iW, iN), toN)
	}
	panic(badRule(r))
}

// edge3 is the top edge pixel of a 3×3 block. It is shared by the top-left
// and top-right corners, and a shallow or steep diagonal may reach it from
// either of the two corners beyond them.
func edge3(f *frame) Cell {
	if !f.d(iN) {
		return fixed(toN)
	}
	x, y := f.rule(TopLeft), f.rule(TopRight)
	switch {
	case x == ruleShallow:
		return tied(TopRight, mix(Blend31, iN, iC), keep)
	case y == ruleSteep:
		return tied(TopLeft, mix(Blend31, iN, iC), keep)
	case f.rule(BottomLeft) == ruleShallow:
		return tied(TopLeft, toN, keep)
	case f.rule(BottomRight) == ruleSteep:
		return tied(TopRight, toN, keep)
	case x.broad():
		return tied(TopLeft, mix(Blend71, iC, iN), keep)
	case y.broad():
		return tied(TopRight, mix(Blend71, iC, iN), keep)
	}
	return fixed(keep)
}

func emit3(f *frame) {
	met := f.rule(BottomLeft) == ruleShallow || f.rule(TopRight) == ruleSteep
	f.emit(0, 0, corner3(f.rule(TopLeft), met))
	f.emit(0, 1, edge3(f))
	f.set(1, 1, keep)
}

// Quadrants of a 4×4 block, cells 00, 01, 10 and 11.
var (
	keep4 = [4]Op{keep, keep, keep, keep}
	nw4   = [4]Op{mix(Blend53, iC, iNW), toNW, toNW, mix(Blend71, iC, iNW)}
	w4    = [4]Op{mix(Blend53, iC, iW), mix(Blend71, iC, iW), mix(Blend53, iC, iW), mix(Blend71, iC, iW)}
	n4    = [4]Op{mix(Blend53, iC, iN), mix(Blend53, iC, iN), mix(Blend71, iC, iN), mix(Blend71, iC, iN)}
	edge4 = [4]Op{mix(Blend11, iN, iW), mix(Blend11, iN, iC), mix(Blend11, iW, iC), keep}
)

func fixed4(ops [4]Op) [4]Cell {
	var out [4]Cell
	for i, op := range ops {
		out[i] = fixed(op)
	}
	return out
}

func tied4(same, diff [4]Op) [4]Cell {
	var out [4]Cell
	for i := range out {
		out[i] = tied(TopLeft, same[i], diff[i])
	}
	return out
}

// quad4 is the top-left quadrant of a 4×4 block.
func quad4(f *frame) [4]Cell {
	switch r := f.rule(TopLeft); r {
	case ruleNW:
		return fixed4(nw4)
	case ruleW:
		return fixed4(w4)
	case ruleN:
		return fixed4(n4)
	case ruleOpen:
		return fixed4([4]Op{
			mix3(Blend211, iC, iW, iN), mix3(Blend521, iC, iN, iW),
			mix3(Blend521, iC, iW, iN), mix3(Blend611, iC, iW, iN),
		})
	case ruleNWN:
		return fixed4([4]Op{mix(Blend53, iC, iNW), mix3(Blend521, iC, iN, iNW), toNW, mix(Blend71, iC, iNW)})
	case ruleNWW:
		return fixed4([4]Op{mix(Blend53, iC, iNW), toNW, mix3(Blend521, iC, iW, iNW), mix(Blend71, iC, iNW)})
	case ruleEdge:
		return tied4(edge4, keep4)
	case ruleEdgeNW:
		return tied4(edge4, nw4)
	case rulePoint:
		return tied4([4]Op{mix3(Blend211, iC, iW, iN), keep, keep, keep}, keep4)
	case ruleFullNW:
		return tied4([4]Op{mix3(Blend211, iC, iW, iN), toN, toW, keep}, nw4)
	case ruleBroad, ruleBroadNW:
		// The diagonal leaves through NE or SW; the long side of the
		// block follows it.
		same := [4]Op{mix(Blend11, iN, iW), mix(Blend53, iN, iW), mix3(Blend211, iW, iC, iN), mix3(Blend611, iC, iW, iN)}
		if !f.d(iNE) {
			same[1], same[2] = mix3(Blend211, iN, iC, iW), mix(Blend53, iW, iN)
		}
		if r == ruleBroad {
			return tied4(same, keep4)
		}
		return tied4(same, nw4)
	case ruleShallow:
		return [4]Cell{
			tied(TopRight, toN, mix(Blend53, iC, iW)),
			tied(TopRight, mix(Blend31, iN, iC), mix(Blend71, iC, iW)),
			fixed(mix(Blend53, iC, iW)),
			fixed(mix(Blend71, iC, iW)),
		}
	case ruleSteep:
		return [4]Cell{
			tied(BottomLeft, toW, mix(Blend53, iC, iN)),
			fixed(mix(Blend53, iC, iN)),
			tied(BottomLeft, mix(Blend31, iW, iC), mix(Blend71, iC, iN)),
			fixed(mix(Blend71, iC, iN)),
		}
	default:
		panic(badRule(r))
	}
}

func emit4(f *frame) {
	for i, cell := range quad4(f) {
		f.emit(i/2, i%2, cell)
	}
}
