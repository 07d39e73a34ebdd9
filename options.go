package hqx

import "github.com/greenshot/hqx/internal/color"

// Option configures a Magnify call.
//
// Example:
//
//	// Defaults: classic thresholds, clamped borders, GOMAXPROCS workers
//	dst, err := hqx.Magnify(src, 2)
//
//	// Tileable texture, single goroutine
//	dst, err := hqx.Magnify(src, 2, hqx.WithWrap(true, true), hqx.WithWorkers(1))
type Option func(*options)

// options holds the configuration of one Magnify call.
type options struct {
	thresholds Thresholds
	wrapX      bool
	wrapY      bool
	workers    int
	conv       Converter
}

// defaultOptions returns the default magnify options.
func defaultOptions() options {
	return options{
		thresholds: DefaultThresholds,
		workers:    0,   // GOMAXPROCS
		conv:       nil, // shared lookup table
	}
}

// WithThresholds sets how far apart two pixels' luma, chroma and alpha may
// be before they count as different. Higher values detect fewer edges.
func WithThresholds(t Thresholds) Option {
	return func(o *options) {
		o.thresholds = t
	}
}

// WithWrap makes the left and right borders (x) and the top and bottom
// borders (y) neighbours of each other, so tiled output has no seams.
// By default pixels past a border are taken to equal the border row or
// column itself.
func WithWrap(x, y bool) Option {
	return func(o *options) {
		o.wrapX = x
		o.wrapY = y
	}
}

// WithWorkers limits the goroutines used for one call. 1 processes the
// image on the calling goroutine; 0 or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithTable selects the RGB to YUV converter used for classification.
// Passing a *Table built with NewTable isolates the call from the shared
// table; DirectConverter computes every conversion without a table.
// A nil converter selects the shared table.
func WithTable(c Converter) Option {
	return func(o *options) {
		o.conv = c
	}
}

// comparator builds the pixel comparator for these options.
func (o *options) comparator() color.Comparator {
	return color.NewComparator(o.conv, o.thresholds)
}
