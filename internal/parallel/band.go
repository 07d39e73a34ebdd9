package parallel

import "context"

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most n contiguous bands of nearly
// equal size. Leading bands take the remainder rows. Returns nil when
// height is not positive.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}

	bands := make([]Band, n)
	base, extra := height/n, height%n
	y := 0
	for i := range bands {
		rows := base
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}

// ForEachBand runs fn once per band. With a nil pool the bands run in
// order on the calling goroutine; otherwise they are spread across the
// pool's workers. The context is checked before each band starts; bands
// already running are allowed to finish. The first context error is
// returned.
func ForEachBand(ctx context.Context, pool *WorkerPool, bands []Band, fn func(Band)) error {
	if pool == nil {
		for _, b := range bands {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(b)
		}
		return nil
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		work[i] = func() {
			if ctx.Err() != nil {
				return
			}
			fn(b)
		}
	}
	pool.ExecuteAll(work)
	return ctx.Err()
}

// For splits [0, n) into chunks and runs fn(lo, hi) for each chunk on up to
// workers goroutines, returning when all chunks are done. It is used for
// one-off bulk work such as table construction, where a long-lived pool
// would outlive its single use.
func For(n, workers int, fn func(lo, hi int)) {
	bands := SplitRows(n, workers)
	if len(bands) <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	pool := NewWorkerPool(len(bands))
	defer pool.Close()

	_ = ForEachBand(context.Background(), pool, bands, func(b Band) {
		fn(b.Y0, b.Y1)
	})
}
