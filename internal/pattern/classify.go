package pattern

import "github.com/greenshot/hqx/internal/color"

// Pattern has bit k set when the k-th neighbour, in window scan order with
// the centre skipped, differs from the centre.
type Pattern uint8

// Differ reports whether two pixels are perceptually different.
// color.Comparator implements it.
type Differ interface {
	Differs(a, b color.Pixel) bool
}

// Bit returns the pattern bit for a window index. The centre has no bit.
func Bit(index int) Pattern {
	switch {
	case index < C:
		return 1 << index
	case index > C:
		return 1 << (index - 1)
	default:
		return 0
	}
}

// Has reports whether the neighbour at a window index is flagged.
func (p Pattern) Has(index int) bool {
	return p&Bit(index) != 0
}

// Classify compares every neighbour against the centre.
func Classify(w *Window, d Differ) Pattern {
	var p Pattern
	center := w[C]
	for i, px := range w {
		if i == C || px == center {
			continue
		}
		if d.Differs(center, px) {
			p |= Bit(i)
		}
	}
	return p
}
