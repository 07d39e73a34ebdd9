// Package image moves pixels between standard library images and packed
// ARGB buffers, and reads and writes the raster file formats.
//
// Buffers are row-major with no padding: pixel (x, y) of a w×h buffer is
// element y*w+x, stored as non-premultiplied 0xAARRGGBB.
package image

import (
	"errors"
	"image"
	stdcolor "image/color"

	"github.com/greenshot/hqx/internal/color"
)

// Conversion errors.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when a buffer holds fewer pixels than its
	// dimensions require.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ToARGB copies img into dst, growing it as needed, and returns the
// filled buffer with the image dimensions. Premultiplied sources are
// converted to straight alpha.
func ToARGB(img image.Image, dst []color.Pixel) (pix []color.Pixel, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	n := width * height
	if cap(dst) < n {
		dst = make([]color.Pixel, n)
	}
	pix = dst[:n]

	// Fast path for NRGBA, which already matches the packed layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			out := pix[y*width : (y+1)*width]
			for x := range out {
				s := row[x*4 : x*4+4 : x*4+4]
				out[x] = color.ARGB(s[3], s[0], s[1], s[2])
			}
		}
		return pix, width, height
	}

	for y := range height {
		out := pix[y*width : (y+1)*width]
		for x := range out {
			c := stdcolor.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(stdcolor.NRGBA)
			out[x] = color.ARGB(c.A, c.R, c.G, c.B)
		}
	}
	return pix, width, height
}

// FromARGB copies a packed buffer into a new NRGBA image.
func FromARGB(pix []color.Pixel, width, height int) (*image.NRGBA, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) < width*height {
		return nil, ErrDataTooSmall
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		row := img.Pix[y*img.Stride:]
		for x, p := range pix[y*width : (y+1)*width] {
			d := row[x*4 : x*4+4 : x*4+4]
			d[0], d[1], d[2], d[3] = p.R(), p.G(), p.B(), p.A()
		}
	}
	return img, nil
}
