package pattern

import (
	"testing"

	"github.com/greenshot/hqx/internal/color"
)

// grid returns a w×h buffer whose pixel at (x, y) is 0xFF000000|y<<8|x,
// so gathered values reveal their source coordinates.
func grid(w, h int) []color.Pixel {
	buf := make([]color.Pixel, w*h)
	for y := range h {
		for x := range w {
			buf[y*w+x] = at(x, y)
		}
	}
	return buf
}

func at(x, y int) color.Pixel {
	return color.Pixel(0xFF000000 | uint32(y)<<8 | uint32(x))
}

// exact differs on any bit difference.
type exact struct{}

func (exact) Differs(a, b color.Pixel) bool { return a != b }

func TestBit(t *testing.T) {
	want := map[int]Pattern{NW: 1, N: 2, NE: 4, W: 8, C: 0, E: 16, SW: 32, S: 64, SE: 128}
	for idx, bit := range want {
		if got := Bit(idx); got != bit {
			t.Errorf("Bit(%d) = %d, want %d", idx, got, bit)
		}
	}
}

func TestGatherInterior(t *testing.T) {
	src := grid(4, 4)
	w := Gather(src, 4, 4, 1, 2, ClampToCenter)
	want := Window{
		at(0, 1), at(1, 1), at(2, 1),
		at(0, 2), at(1, 2), at(2, 2),
		at(0, 3), at(1, 3), at(2, 3),
	}
	if w != want {
		t.Errorf("Gather(1,2) = %v, want %v", w, want)
	}
}

func TestGatherClampTopLeft(t *testing.T) {
	src := grid(3, 3)
	w := Gather(src, 3, 3, 0, 0, ClampToCenter)
	// Missing row above and column to the left reuse the centre row/column.
	want := Window{
		at(0, 0), at(0, 0), at(1, 0),
		at(0, 0), at(0, 0), at(1, 0),
		at(0, 1), at(0, 1), at(1, 1),
	}
	if w != want {
		t.Errorf("Gather(0,0) = %v, want %v", w, want)
	}
}

func TestGatherClampBottomRight(t *testing.T) {
	src := grid(3, 3)
	w := Gather(src, 3, 3, 2, 2, ClampToCenter)
	want := Window{
		at(1, 1), at(2, 1), at(2, 1),
		at(1, 2), at(2, 2), at(2, 2),
		at(1, 2), at(2, 2), at(2, 2),
	}
	if w != want {
		t.Errorf("Gather(2,2) = %v, want %v", w, want)
	}
}

func TestGatherWrap(t *testing.T) {
	src := grid(3, 3)
	w := Gather(src, 3, 3, 0, 0, Wrap)
	want := Window{
		at(2, 2), at(0, 2), at(1, 2),
		at(2, 0), at(0, 0), at(1, 0),
		at(2, 1), at(0, 1), at(1, 1),
	}
	if w != want {
		t.Errorf("Gather(0,0) wrap = %v, want %v", w, want)
	}
}

func TestGatherWrapSingleAxis(t *testing.T) {
	src := grid(3, 3)
	w := Gather(src, 3, 3, 0, 0, EdgePolicy{WrapX: true})
	// Columns wrap, rows clamp.
	want := Window{
		at(2, 0), at(0, 0), at(1, 0),
		at(2, 0), at(0, 0), at(1, 0),
		at(2, 1), at(0, 1), at(1, 1),
	}
	if w != want {
		t.Errorf("Gather(0,0) wrapX = %v, want %v", w, want)
	}

	w = Gather(src, 3, 3, 2, 2, EdgePolicy{WrapY: true})
	want = Window{
		at(1, 1), at(2, 1), at(2, 1),
		at(1, 2), at(2, 2), at(2, 2),
		at(1, 0), at(2, 0), at(2, 0),
	}
	if w != want {
		t.Errorf("Gather(2,2) wrapY = %v, want %v", w, want)
	}
}

func TestGatherSinglePixel(t *testing.T) {
	src := []color.Pixel{0xFFFF0000}
	for _, policy := range []EdgePolicy{ClampToCenter, Wrap} {
		w := Gather(src, 1, 1, 0, 0, policy)
		for i, p := range w {
			if p != 0xFFFF0000 {
				t.Errorf("policy %+v: window[%d] = %08X", policy, i, uint32(p))
			}
		}
	}
}

func TestClassify(t *testing.T) {
	const c, o = color.Pixel(0xFF101010), color.Pixel(0xFFF0F0F0)

	tests := []struct {
		name string
		w    Window
		want Pattern
	}{
		{"uniform", Window{c, c, c, c, c, c, c, c, c}, 0},
		{"all different", Window{o, o, o, o, c, o, o, o, o}, 0xFF},
		{"north only", Window{c, o, c, c, c, c, c, c, c}, 2},
		{"east only", Window{c, c, c, c, c, o, c, c, c}, 16},
		{"corners", Window{o, c, o, c, c, c, o, c, o}, 1 | 4 | 32 | 128},
		{"cross", Window{c, o, c, o, c, o, c, o, c}, 2 | 8 | 16 | 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.w, exact{}); got != tt.want {
				t.Errorf("Classify = %08b, want %08b", got, tt.want)
			}
		})
	}
}

func TestClassifyUsesDiffer(t *testing.T) {
	// A comparator with default thresholds treats near greys as equal.
	cmp := color.NewComparator(color.Direct{}, color.DefaultThresholds)
	g := color.Pixel(0xFF808080)
	near := color.Pixel(0xFF828282)
	far := color.Pixel(0xFF000000)
	w := Window{near, far, near, near, g, near, near, near, near}
	if got := Classify(&w, cmp); got != Bit(N) {
		t.Errorf("Classify = %08b, want %08b", got, Bit(N))
	}
}

func TestPatternHas(t *testing.T) {
	p := Bit(NE) | Bit(SW)
	for i := range 9 {
		want := i == NE || i == SW
		if p.Has(i) != want {
			t.Errorf("Has(%d) = %v, want %v", i, p.Has(i), want)
		}
	}
}
