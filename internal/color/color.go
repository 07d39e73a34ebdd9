// Package color holds the packed pixel type and the perceptual colour
// difference machinery used to classify neighbourhoods: a cached RGB→YUV
// lookup table and the threshold comparator built on it.
package color

// Pixel is a packed 0xAARRGGBB value.
//
// The channel order is fixed: the blend lanes in package blend rely on
// green sitting alone in bits 8-15 and red/blue being non-adjacent.
type Pixel uint32

// Channel masks for packed pixels.
const (
	MaskA   Pixel = 0xFF000000
	MaskR   Pixel = 0x00FF0000
	MaskG   Pixel = 0x0000FF00
	MaskB   Pixel = 0x000000FF
	MaskRB  Pixel = MaskR | MaskB
	MaskRGB Pixel = 0x00FFFFFF
)

// ARGB packs four channels into a Pixel.
func ARGB(a, r, g, b uint8) Pixel {
	return Pixel(a)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p) }

// RGB returns the low 24 bits with alpha dropped.
func (p Pixel) RGB() uint32 { return uint32(p & MaskRGB) }
