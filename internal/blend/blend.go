// Package blend provides the fixed-ratio colour blends used to fill
// magnified pixel blocks.
//
// Every blend is a weighted average whose weights sum to a power of two,
// so the division is a right shift. A packed pixel is split into three
// lanes that are multiplied independently:
//
//	green      0x0000FF00
//	red|blue   0x00FF00FF  (eight zero bits between the channels)
//	alpha      0xFF000000  (pre-shifted right so the product fits)
//
// With weights summing to at most 16, a channel sum needs at most 12 bits,
// so no lane can carry into its neighbour. Results are truncated, never
// rounded, which keeps output bit-identical to the reference filter.
package blend

import "github.com/greenshot/hqx/internal/color"

const (
	laneG  = uint32(color.MaskG)
	laneRB = uint32(color.MaskRB)
	laneA  = uint32(color.MaskA)
)

// mix2 returns (c1*w1 + c2*w2) >> shift per channel. w1+w2 must equal
// 1<<shift.
func mix2(c1, c2 color.Pixel, w1, w2 uint32, shift uint) color.Pixel {
	a, b := uint32(c1), uint32(c2)

	g := ((a&laneG)*w1 + (b&laneG)*w2) >> shift & laneG
	rb := ((a&laneRB)*w1 + (b&laneRB)*w2) >> shift & laneRB
	al := (((a&laneA)>>shift)*w1 + ((b&laneA)>>shift)*w2) & laneA

	return color.Pixel(g | rb | al)
}

// mix3 returns (c1*w1 + c2*w2 + c3*w3) >> shift per channel. The weights
// must sum to 1<<shift.
func mix3(c1, c2, c3 color.Pixel, w1, w2, w3 uint32, shift uint) color.Pixel {
	a, b, c := uint32(c1), uint32(c2), uint32(c3)

	g := ((a&laneG)*w1 + (b&laneG)*w2 + (c&laneG)*w3) >> shift & laneG
	rb := ((a&laneRB)*w1 + (b&laneRB)*w2 + (c&laneRB)*w3) >> shift & laneRB
	al := (((a&laneA)>>shift)*w1 + ((b&laneA)>>shift)*w2 + ((c&laneA)>>shift)*w3) & laneA

	return color.Pixel(g | rb | al)
}
