// Package pattern gathers the 3×3 neighbourhood around a source pixel and
// reduces it to an 8-bit pattern of "different from the centre" flags.
package pattern

import "github.com/greenshot/hqx/internal/color"

// Window indices, row-major over the 3×3 neighbourhood.
const (
	NW = iota
	N
	NE
	W
	C
	E
	SW
	S
	SE
)

// Window is the neighbourhood of one source pixel; Window[C] is the pixel
// itself.
type Window [9]color.Pixel

// EdgePolicy selects how neighbours beyond the image border are found,
// independently per axis.
type EdgePolicy struct {
	// WrapX reads the opposite column at the left and right borders.
	// Otherwise the centre column is reused.
	WrapX bool

	// WrapY reads the opposite row at the top and bottom borders.
	// Otherwise the centre row is reused.
	WrapY bool
}

// ClampToCenter reuses the centre row and column at every border.
var ClampToCenter = EdgePolicy{}

// Wrap treats the image as a tile repeating on both axes.
var Wrap = EdgePolicy{WrapX: true, WrapY: true}

// neighbors returns the coordinates before and after v on an axis of the
// given size.
func neighbors(v, size int, wrap bool) (prev, next int) {
	prev, next = v-1, v+1
	if prev < 0 {
		if wrap {
			prev = size - 1
		} else {
			prev = v
		}
	}
	if next >= size {
		if wrap {
			next = 0
		} else {
			next = v
		}
	}
	return prev, next
}

// Gather fills the window for pixel (x, y) of a row-major buffer with no
// row padding. Coordinates must be inside the image.
func Gather(src []color.Pixel, width, height, x, y int, policy EdgePolicy) Window {
	xp, xn := neighbors(x, width, policy.WrapX)
	yp, yn := neighbors(y, height, policy.WrapY)

	above, row, below := yp*width, y*width, yn*width

	return Window{
		NW: src[above+xp], N: src[above+x], NE: src[above+xn],
		W: src[row+xp], C: src[row+x], E: src[row+xn],
		SW: src[below+xp], S: src[below+x], SE: src[below+xn],
	}
}
