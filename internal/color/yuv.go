package color

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/greenshot/hqx/internal/parallel"
)

// tableSize is the number of 24-bit RGB values.
const tableSize = 1 << 24

// Converter maps a 24-bit RGB value to a packed Y<<16 | U<<8 | V value.
type Converter interface {
	YUV(rgb uint32) uint32
}

// ToYUV converts one 24-bit RGB value to packed YUV.
//
// Each channel is truncated toward zero before the chroma bias is added.
// The explicit float64 conversions keep the compiler from fusing the
// multiply-adds, which would move values that land exactly on an integer.
func ToYUV(rgb uint32) uint32 {
	r := float64((rgb >> 16) & 0xFF)
	g := float64((rgb >> 8) & 0xFF)
	b := float64(rgb & 0xFF)

	y := int32(float64(0.299*r) + float64(0.587*g) + float64(0.114*b))
	u := int32(float64(-0.169*r)-float64(0.331*g)+float64(0.5*b)) + 128
	v := int32(float64(0.5*r)-float64(0.419*g)-float64(0.081*b)) + 128

	//nolint:gosec // G115: y in [0,255], u and v in [1,255] for 8-bit inputs
	return uint32(y)<<16 | uint32(u)<<8 | uint32(v)
}

// Direct computes YUV on every call. It needs no memory and suits one-off
// conversions and tests that must not share the process-wide table.
type Direct struct{}

// YUV implements Converter.
func (Direct) YUV(rgb uint32) uint32 {
	return ToYUV(rgb & uint32(MaskRGB))
}

// Table is a precomputed RGB→YUV lookup over all 2^24 colours (64 MiB).
// A built Table is read-only and safe for concurrent use.
type Table struct {
	yuv []uint32
}

// NewTable builds a full table. The work is split by red channel across
// GOMAXPROCS goroutines.
func NewTable() *Table {
	start := time.Now()
	t := &Table{yuv: make([]uint32, tableSize)}

	parallel.For(256, runtime.GOMAXPROCS(0), func(lo, hi int) {
		for r := lo; r < hi; r++ {
			base := uint32(r) << 16
			for gb := uint32(0); gb < 1<<16; gb++ {
				t.yuv[base|gb] = ToYUV(base | gb)
			}
		}
	})

	slogger().Debug("color: yuv table built",
		"entries", tableSize,
		"bytes", tableSize*4,
		"elapsed", time.Since(start))
	return t
}

// YUV implements Converter. Alpha bits are ignored.
func (t *Table) YUV(rgb uint32) uint32 {
	return t.yuv[rgb&uint32(MaskRGB)]
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.yuv)
}

var (
	defaultTable atomic.Pointer[Table]

	// buildMu only deduplicates concurrent first builds. Readers never take
	// it; an unload racing a build simply leaves whichever store came last.
	buildMu sync.Mutex
)

// DefaultTable returns the process-wide table, building it on first use.
// Callers must not assume the same instance survives an UnloadDefaultTable;
// every instance has identical content.
func DefaultTable() *Table {
	if t := defaultTable.Load(); t != nil {
		return t
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	if t := defaultTable.Load(); t != nil {
		return t
	}
	t := NewTable()
	defaultTable.Store(t)
	return t
}

// UnloadDefaultTable drops the process-wide table so its memory can be
// reclaimed. The next DefaultTable call rebuilds it.
func UnloadDefaultTable() {
	if defaultTable.Swap(nil) != nil {
		slogger().Debug("color: yuv table unloaded")
	}
}

// DefaultTableLoaded reports whether the process-wide table is resident.
func DefaultTableLoaded() bool {
	return defaultTable.Load() != nil
}
