package color

// Thresholds bound the per-channel distance two pixels may have and still
// be classified as the same colour. Values are plain byte distances.
type Thresholds struct {
	Y, U, V, A uint8
}

// DefaultThresholds are the classic hqx constants: luma 0x30, chroma
// 0x07 and 0x06, and no tolerance on alpha.
var DefaultThresholds = Thresholds{Y: 48, U: 7, V: 6, A: 0}

// Comparator decides whether two pixels are perceptually different.
// Construct with NewComparator; the zero value has no converter and
// reports IsZero.
type Comparator struct {
	conv Converter
	th   Thresholds
}

// NewComparator returns a Comparator reading YUV values from conv.
// A nil conv selects DefaultTable.
func NewComparator(conv Converter, th Thresholds) Comparator {
	if conv == nil {
		conv = DefaultTable()
	}
	return Comparator{conv: conv, th: th}
}

// IsZero reports whether c was never constructed.
func (c Comparator) IsZero() bool {
	return c.conv == nil
}

// Thresholds returns the comparator's thresholds.
func (c Comparator) Thresholds() Thresholds {
	return c.th
}

// Differs reports whether a and b differ by more than the threshold in
// luma, either chroma channel, or alpha. Identical pixels never differ,
// and the result does not depend on argument order.
func (c Comparator) Differs(a, b Pixel) bool {
	if a == b {
		return false
	}
	if absDiff(a.A(), b.A()) > c.th.A {
		return true
	}

	ya := c.conv.YUV(uint32(a))
	yb := c.conv.YUV(uint32(b))
	if ya == yb {
		return false
	}
	return absDiff(uint8(ya>>16), uint8(yb>>16)) > c.th.Y ||
		absDiff(uint8(ya>>8), uint8(yb>>8)) > c.th.U ||
		absDiff(uint8(ya), uint8(yb)) > c.th.V
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
