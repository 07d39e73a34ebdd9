// Package dispatch maps a neighbourhood pattern to the routine that fills
// one magnified block.
//
// A routine is data: one Cell per output pixel, each naming a blend of
// window pixels. Every hq2x case arm reduces to one rule per corner, kept
// in a 256-entry table for the top-left corner. Routines are generated
// from that table and per-factor templates, rotated through the four
// orientations, so the four corners of every block are built by the same
// code.
package dispatch

import (
	"github.com/greenshot/hqx/internal/blend"
	"github.com/greenshot/hqx/internal/color"
	"github.com/greenshot/hqx/internal/pattern"
)

// Kind selects the blend an Op performs.
type Kind uint8

// Blend kinds. The digits are the weights given to A, B and C in order.
const (
	Copy Kind = iota
	Blend31
	Blend71
	Blend11
	Blend53
	Blend211
	Blend277
	Blend521
	Blend611
	Blend233
	Blend1411
)

var kindNames = [...]string{
	Copy:      "copy",
	Blend31:   "3:1",
	Blend71:   "7:1",
	Blend11:   "1:1",
	Blend53:   "5:3",
	Blend211:  "2:1:1",
	Blend277:  "2:7:7",
	Blend521:  "5:2:1",
	Blend611:  "6:1:1",
	Blend233:  "2:3:3",
	Blend1411: "14:1:1",
}

// String returns the weight ratio of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Op is one output pixel expressed as a blend of window pixels. A, B and C
// are window indices; operands the kind does not use are ignored.
type Op struct {
	Kind    Kind
	A, B, C uint8
}

// Apply evaluates the op against a window.
func (o Op) Apply(w *pattern.Window) color.Pixel {
	a := w[o.A]
	switch o.Kind {
	case Copy:
		return a
	case Blend31:
		return blend.Mix3To1(a, w[o.B])
	case Blend71:
		return blend.Mix7To1(a, w[o.B])
	case Blend11:
		return blend.MixEven(a, w[o.B])
	case Blend53:
		return blend.Mix5To3(a, w[o.B])
	case Blend211:
		return blend.Mix2To1To1(a, w[o.B], w[o.C])
	case Blend277:
		return blend.Mix2To7To7(a, w[o.B], w[o.C])
	case Blend521:
		return blend.Mix5To2To1(a, w[o.B], w[o.C])
	case Blend611:
		return blend.Mix6To1To1(a, w[o.B], w[o.C])
	case Blend233:
		return blend.Mix2To3To3(a, w[o.B], w[o.C])
	case Blend1411:
		return blend.Mix14To1To1(a, w[o.B], w[o.C])
	}
	return w[pattern.C]
}

// remap rewrites the window indices of o through perm.
func (o Op) remap(perm *[9]uint8) Op {
	return Op{Kind: o.Kind, A: perm[o.A], B: perm[o.B], C: perm[o.C]}
}

func copyOf(a int) Op { return Op{Kind: Copy, A: uint8(a), B: uint8(a), C: uint8(a)} }

func mix(k Kind, a, b int) Op { return Op{Kind: k, A: uint8(a), B: uint8(b), C: uint8(b)} }

func mix3(k Kind, a, b, c int) Op { return Op{Kind: k, A: uint8(a), B: uint8(b), C: uint8(c)} }
