package main

import (
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelHeight = 16
	labelSize   = 11
)

var labelBackground = color.NRGBA{R: 32, G: 32, B: 32, A: 255}

var labelFont = sync.OnceValues(func() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
})

// drawLabel fills r with the label background and writes text into it.
// Glyphs that do not fit are clipped at r.
func drawLabel(dst draw.Image, r image.Rectangle, text string) error {
	draw.Draw(dst, r, image.NewUniform(labelBackground), image.Point{}, draw.Src)

	f, err := labelFont()
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(labelSize)
	ctx.SetClip(r)
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	_, err = ctx.DrawString(text, freetype.Pt(r.Min.X+3, r.Min.Y+labelHeight-4))
	return err
}
