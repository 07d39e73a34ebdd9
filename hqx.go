package hqx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"runtime"

	"github.com/greenshot/hqx/internal/color"
	"github.com/greenshot/hqx/internal/engine"
	intImage "github.com/greenshot/hqx/internal/image"
	"github.com/greenshot/hqx/internal/parallel"
	"github.com/greenshot/hqx/internal/pattern"
)

// Pixel is a packed non-premultiplied 0xAARRGGBB colour.
type Pixel = color.Pixel

// Thresholds bound the per-channel distance, in YUV, below which two
// pixels are treated as the same colour.
type Thresholds = color.Thresholds

// Converter maps a 24-bit RGB value to packed YUV (Y<<16 | U<<8 | V).
type Converter = color.Converter

// Table is a precomputed RGB to YUV lookup covering all 2^24 colours.
type Table = color.Table

// DefaultThresholds are the classic hqx thresholds: 48 on luma, 7 and 6
// on the chroma channels and none on alpha.
var DefaultThresholds = color.DefaultThresholds

// DirectConverter converts without a lookup table.
var DirectConverter Converter = color.Direct{}

// ARGB packs four channels into a Pixel.
func ARGB(a, r, g, b uint8) Pixel { return color.ARGB(a, r, g, b) }

// NewTable builds a private lookup table. Most callers should rely on the
// shared one instead.
func NewTable() *Table { return color.NewTable() }

// UnloadTable releases the shared lookup table. The next Magnify call
// rebuilds it.
func UnloadTable() { color.UnloadDefaultTable() }

// Errors returned by Magnify.
var (
	// ErrUnsupportedScaleFactor is returned for factors other than 2, 3 and 4.
	ErrUnsupportedScaleFactor = errors.New("hqx: unsupported scale factor")

	// ErrInvalidDimensions is returned for a nil image or negative sizes.
	ErrInvalidDimensions = errors.New("hqx: invalid dimensions")

	// ErrBufferSize is returned when len(Pix) is not Width*Height.
	ErrBufferSize = errors.New("hqx: pixel buffer does not match dimensions")

	// ErrImageTooLarge is returned when the magnified image would not be
	// addressable.
	ErrImageTooLarge = errors.New("hqx: magnified image too large")
)

// inlineRows is the height below which a call never uses worker
// goroutines.
const inlineRows = 64

// bandsPerWorker oversplits the rows so that workers stealing from each
// other even out bands of uneven cost.
const bandsPerWorker = 4

// Image is a row-major raster of packed pixels with no row padding.
// Pixel (x, y) is Pix[y*Width+x].
type Image struct {
	Pix    []Pixel
	Width  int
	Height int
}

// NewImage allocates a transparent width×height image.
func NewImage(width, height int) *Image {
	return &Image{Pix: make([]Pixel, width*height), Width: width, Height: height}
}

// At returns the pixel at (x, y).
func (m *Image) At(x, y int) Pixel {
	return m.Pix[y*m.Width+x]
}

// Set stores the pixel at (x, y).
func (m *Image) Set(x, y int, p Pixel) {
	m.Pix[y*m.Width+x] = p
}

// FromImage copies a standard library image into a new Image.
func FromImage(img image.Image) *Image {
	pix, w, h := intImage.ToARGB(img, nil)
	return &Image{Pix: pix, Width: w, Height: h}
}

// ToNRGBA copies the image into a standard library NRGBA image.
func (m *Image) ToNRGBA() (*image.NRGBA, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	return intImage.FromARGB(m.Pix, m.Width, m.Height)
}

func (m *Image) validate() error {
	if m == nil || m.Width < 0 || m.Height < 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// Magnify returns a new image factor times larger than src in each
// dimension. src is not modified.
func Magnify(src *Image, factor int, opts ...Option) (*Image, error) {
	return MagnifyContext(context.Background(), src, factor, opts...)
}

// MagnifyContext is Magnify with cancellation. The context is checked
// between bands of rows; a cancelled call returns ctx.Err() and no image.
func MagnifyContext(ctx context.Context, src *Image, factor int, opts ...Option) (*Image, error) {
	if factor < 2 || factor > 4 {
		return nil, fmt.Errorf("hqx: factor %d: %w", factor, ErrUnsupportedScaleFactor)
	}
	if err := src.validate(); err != nil {
		return nil, fmt.Errorf("hqx: magnify: %w", err)
	}
	w, h := src.Width, src.Height
	if !fits(w, h, factor) {
		return nil, fmt.Errorf("hqx: %dx%d at %dx: %w", w, h, factor, ErrImageTooLarge)
	}
	if len(src.Pix) != w*h {
		return nil, fmt.Errorf("hqx: %d pixels for %dx%d: %w", len(src.Pix), w, h, ErrBufferSize)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dst := NewImage(w*factor, h*factor)
	if len(src.Pix) == 0 {
		return dst, nil
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	cfg := engine.Config{
		Factor:     factor,
		Comparator: o.comparator(),
		Policy:     pattern.EdgePolicy{WrapX: o.wrapX, WrapY: o.wrapY},
		Bands:      1,
	}

	var pool *parallel.WorkerPool
	if workers > 1 && h >= inlineRows {
		pool = parallel.NewWorkerPool(workers)
		defer pool.Close()
		cfg.Bands = workers * bandsPerWorker
	}

	Logger().Debug("hqx: magnify", "width", w, "height", h, "factor", factor, "workers", workers, "bands", cfg.Bands)

	if err := engine.Run(ctx, src.Pix, w, h, dst.Pix, cfg, pool); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("hqx: magnify: %w", err)
	}
	return dst, nil
}

// MagnifyImage magnifies a standard library image.
func MagnifyImage(img image.Image, factor int, opts ...Option) (*image.NRGBA, error) {
	b := img.Bounds()
	buf := intImage.GetFromDefault(b.Dx() * b.Dy())
	defer intImage.PutToDefault(buf)

	pix, w, h := intImage.ToARGB(img, buf)
	dst, err := Magnify(&Image{Pix: pix, Width: w, Height: h}, factor, opts...)
	if err != nil {
		return nil, err
	}
	return dst.ToNRGBA()
}

// fits reports whether a w×h image magnified by factor has an addressable
// pixel count.
func fits(w, h, factor int) bool {
	if w == 0 || h == 0 {
		return true
	}
	if w > math.MaxInt/factor || h > math.MaxInt/factor {
		return false
	}
	return w*factor <= math.MaxInt/(h*factor)
}
