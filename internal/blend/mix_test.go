package blend

import (
	"math/rand/v2"
	"testing"

	"github.com/greenshot/hqx/internal/color"
)

// reference computes a weighted average channel by channel with integer
// division, the straightforward form the lane arithmetic must match.
func reference(ps []color.Pixel, ws []uint32) color.Pixel {
	var total uint32
	for _, w := range ws {
		total += w
	}
	var out color.Pixel
	for shift := uint(0); shift < 32; shift += 8 {
		var sum uint32
		for i, p := range ps {
			sum += (uint32(p) >> shift & 0xFF) * ws[i]
		}
		out |= color.Pixel(sum/total) << shift
	}
	return out
}

type mix2Case struct {
	name   string
	fn     func(c1, c2 color.Pixel) color.Pixel
	w1, w2 uint32
}

type mix3Case struct {
	name       string
	fn         func(c1, c2, c3 color.Pixel) color.Pixel
	w1, w2, w3 uint32
}

var mix2Cases = []mix2Case{
	{"Mix3To1", Mix3To1, 3, 1},
	{"Mix7To1", Mix7To1, 7, 1},
	{"MixEven", MixEven, 1, 1},
	{"Mix5To3", Mix5To3, 5, 3},
}

var mix3Cases = []mix3Case{
	{"Mix2To1To1", Mix2To1To1, 2, 1, 1},
	{"Mix2To7To7", Mix2To7To7, 2, 7, 7},
	{"Mix5To2To1", Mix5To2To1, 5, 2, 1},
	{"Mix6To1To1", Mix6To1To1, 6, 1, 1},
	{"Mix2To3To3", Mix2To3To3, 2, 3, 3},
	{"Mix14To1To1", Mix14To1To1, 14, 1, 1},
}

func TestMix2MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for _, tc := range mix2Cases {
		t.Run(tc.name, func(t *testing.T) {
			for range 20000 {
				c1, c2 := color.Pixel(rng.Uint32()), color.Pixel(rng.Uint32())
				got := tc.fn(c1, c2)
				want := reference([]color.Pixel{c1, c2}, []uint32{tc.w1, tc.w2})
				if got != want {
					t.Fatalf("%s(%08X, %08X) = %08X, want %08X",
						tc.name, uint32(c1), uint32(c2), uint32(got), uint32(want))
				}
			}
		})
	}
}

func TestMix3MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for _, tc := range mix3Cases {
		t.Run(tc.name, func(t *testing.T) {
			for range 20000 {
				c1 := color.Pixel(rng.Uint32())
				c2 := color.Pixel(rng.Uint32())
				c3 := color.Pixel(rng.Uint32())
				got := tc.fn(c1, c2, c3)
				want := reference([]color.Pixel{c1, c2, c3}, []uint32{tc.w1, tc.w2, tc.w3})
				if got != want {
					t.Fatalf("%s(%08X, %08X, %08X) = %08X, want %08X",
						tc.name, uint32(c1), uint32(c2), uint32(c3), uint32(got), uint32(want))
				}
			}
		})
	}
}

// Saturated channels are where a lane carry would show up first.
func TestMixExtremes(t *testing.T) {
	values := []color.Pixel{0x00000000, 0xFFFFFFFF, 0xFF00FF00, 0x00FF00FF, 0xFF000000, 0x00FFFFFF}
	for _, tc := range mix2Cases {
		for _, a := range values {
			for _, b := range values {
				want := reference([]color.Pixel{a, b}, []uint32{tc.w1, tc.w2})
				if got := tc.fn(a, b); got != want {
					t.Errorf("%s(%08X, %08X) = %08X, want %08X",
						tc.name, uint32(a), uint32(b), uint32(got), uint32(want))
				}
			}
		}
	}
	for _, tc := range mix3Cases {
		for _, a := range values {
			for _, b := range values {
				for _, c := range values {
					want := reference([]color.Pixel{a, b, c}, []uint32{tc.w1, tc.w2, tc.w3})
					if got := tc.fn(a, b, c); got != want {
						t.Errorf("%s(%08X, %08X, %08X) = %08X, want %08X",
							tc.name, uint32(a), uint32(b), uint32(c), uint32(got), uint32(want))
					}
				}
			}
		}
	}
}

func TestMixEqualInputsReturnFirst(t *testing.T) {
	for _, p := range []color.Pixel{0, 0x80402010, 0xFFFFFFFF, 0x01020304} {
		for _, tc := range mix2Cases {
			if got := tc.fn(p, p); got != p {
				t.Errorf("%s(%08X, same) = %08X", tc.name, uint32(p), uint32(got))
			}
		}
		for _, tc := range mix3Cases {
			if got := tc.fn(p, p, p); got != p {
				t.Errorf("%s(%08X, same, same) = %08X", tc.name, uint32(p), uint32(got))
			}
		}
	}
}

func TestMixTruncates(t *testing.T) {
	// (3*1 + 0) / 4 = 0.75 truncates to 0; (1 + 0) / 2 truncates to 0.
	if got := Mix3To1(0x01010101, 0); got != 0 {
		t.Errorf("Mix3To1 = %08X, want 0", uint32(got))
	}
	if got := MixEven(0x01010101, 0); got != 0 {
		t.Errorf("MixEven = %08X, want 0", uint32(got))
	}
	// Grey 200 and 40 with 2:7:7 gives (400 + 280 + 280) / 16 = 60.
	c1, c2 := color.ARGB(255, 200, 200, 200), color.ARGB(255, 40, 40, 40)
	if got, want := Mix2To7To7(c1, c2, c2), color.ARGB(255, 60, 60, 60); got != want {
		t.Errorf("Mix2To7To7 = %08X, want %08X", uint32(got), uint32(want))
	}
}

func BenchmarkMix2To1To1(b *testing.B) {
	b.ReportAllocs()
	var sink color.Pixel
	for i := 0; i < b.N; i++ {
		sink ^= Mix2To1To1(color.Pixel(i), color.Pixel(i*3), color.Pixel(i*5))
	}
	_ = sink
}
