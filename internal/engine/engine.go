// Package engine drives the per-pixel pipeline over a whole image: gather
// the neighbourhood, classify it, dispatch to a routine and copy the block
// into the destination.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenshot/hqx/internal/color"
	"github.com/greenshot/hqx/internal/dispatch"
	"github.com/greenshot/hqx/internal/parallel"
	"github.com/greenshot/hqx/internal/pattern"
)

// Errors returned by Run for malformed input.
var (
	ErrFactor = errors.New("engine: unsupported factor")
	ErrSource = errors.New("engine: source buffer does not match dimensions")
	ErrDest   = errors.New("engine: destination buffer does not match dimensions")
)

// Config selects how an image is magnified.
type Config struct {
	// Factor is the magnification, 2, 3 or 4.
	Factor int

	// Comparator decides which neighbours differ from the centre. The
	// zero value uses the default thresholds over the shared YUV table.
	Comparator color.Comparator

	// Policy resolves neighbours past the image border.
	Policy pattern.EdgePolicy

	// Bands is the number of row bands the image is split into.
	// Values below 1 mean a single band.
	Bands int
}

// Run magnifies src (width×height, row-major) into dst, which must hold
// exactly width*height*Factor² pixels. With a nil pool every band runs on
// the calling goroutine. The context is checked between bands; on
// cancellation dst holds partial output and ctx.Err() is returned.
func Run(ctx context.Context, src []color.Pixel, width, height int, dst []color.Pixel, cfg Config, pool *parallel.WorkerPool) error {
	table := dispatch.ForFactor(cfg.Factor)
	if table == nil {
		return fmt.Errorf("%w: %d", ErrFactor, cfg.Factor)
	}
	if width < 0 || height < 0 || len(src) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrSource, len(src), width, height)
	}
	n := cfg.Factor
	if len(dst) != len(src)*n*n {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrDest, len(dst), width*n, height*n)
	}
	if len(src) == 0 {
		return ctx.Err()
	}

	differ := cfg.Comparator
	if differ.IsZero() {
		differ = color.NewComparator(nil, color.DefaultThresholds)
	}

	bands := parallel.SplitRows(height, cfg.Bands)
	s := &scaler{
		src:    src,
		width:  width,
		height: height,
		dst:    dst,
		table:  table,
		differ: differ,
		policy: cfg.Policy,
	}
	s.rowStarts = make([]int, n)
	for r := range s.rowStarts {
		s.rowStarts[r] = r * width * n
	}

	start := time.Now()
	err := parallel.ForEachBand(ctx, pool, bands, s.band)
	slogger().Debug("engine: magnified",
		"width", width, "height", height, "factor", n,
		"bands", len(bands), "parallel", pool != nil,
		"elapsed", time.Since(start), "err", err)
	return err
}

type scaler struct {
	src           []color.Pixel
	width, height int
	dst           []color.Pixel

	table  *dispatch.Table
	differ pattern.Differ
	policy pattern.EdgePolicy

	// rowStarts[r] is the offset of block row r from the block origin.
	rowStarts []int
}

// band fills the destination rows of source rows [b.Y0, b.Y1).
func (s *scaler) band(b parallel.Band) {
	n := s.table.Factor
	stride := s.width * n
	block := make([]color.Pixel, n*n)

	for y := b.Y0; y < b.Y1; y++ {
		origin := y * n * stride
		for x := range s.width {
			w := pattern.Gather(s.src, s.width, s.height, x, y, s.policy)
			s.table.Synthesize(pattern.Classify(&w, s.differ), &w, s.differ, block)

			at := origin + x*n
			for r, off := range s.rowStarts {
				copy(s.dst[at+off:at+off+n], block[r*n:r*n+n])
			}
		}
	}
}
