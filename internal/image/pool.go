package image

import (
	"sync"

	"github.com/greenshot/hqx/internal/color"
)

// Pool reuses pixel buffers between conversions of identically sized
// images, as happens when a command magnifies a batch of sprites or
// animation frames.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]color.Pixel
	maxSize int // max buffers per bucket
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// length. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]color.Pixel),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n pixels. Reused buffers are not
// cleared; callers overwrite every pixel.
func (p *Pool) Get(n int) []color.Pixel {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]color.Pixel, n)
}

// Put returns a buffer for reuse. Nil buffers and buffers beyond the
// bucket capacity are dropped.
func (p *Pool) Put(buf []color.Pixel) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len reports how many buffers of length n are pooled.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

var defaultPool = NewPool(8)

// GetFromDefault retrieves a buffer from the default pool.
func GetFromDefault(n int) []color.Pixel {
	return defaultPool.Get(n)
}

// PutToDefault returns a buffer to the default pool.
func PutToDefault(buf []color.Pixel) {
	defaultPool.Put(buf)
}
