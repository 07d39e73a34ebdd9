package blend

import "github.com/greenshot/hqx/internal/color"

// Mix3To1 returns (3*c1 + c2) / 4.
func Mix3To1(c1, c2 color.Pixel) color.Pixel {
	if c1 == c2 {
		return c1
	}
	return mix2(c1, c2, 3, 1, 2)
}

// Mix7To1 returns (7*c1 + c2) / 8.
func Mix7To1(c1, c2 color.Pixel) color.Pixel {
	if c1 == c2 {
		return c1
	}
	return mix2(c1, c2, 7, 1, 3)
}

// MixEven returns (c1 + c2) / 2.
func MixEven(c1, c2 color.Pixel) color.Pixel {
	if c1 == c2 {
		return c1
	}
	return mix2(c1, c2, 1, 1, 1)
}

// Mix5To3 returns (5*c1 + 3*c2) / 8.
func Mix5To3(c1, c2 color.Pixel) color.Pixel {
	if c1 == c2 {
		return c1
	}
	return mix2(c1, c2, 5, 3, 3)
}

// Mix2To1To1 returns (2*c1 + c2 + c3) / 4.
func Mix2To1To1(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 2, 1, 1, 2)
}

// Mix2To7To7 returns (2*c1 + 7*c2 + 7*c3) / 16.
func Mix2To7To7(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 2, 7, 7, 4)
}

// Mix5To2To1 returns (5*c1 + 2*c2 + c3) / 8.
func Mix5To2To1(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 5, 2, 1, 3)
}

// Mix6To1To1 returns (6*c1 + c2 + c3) / 8.
func Mix6To1To1(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 6, 1, 1, 3)
}

// Mix2To3To3 returns (2*c1 + 3*c2 + 3*c3) / 8.
func Mix2To3To3(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 2, 3, 3, 3)
}

// Mix14To1To1 returns (14*c1 + c2 + c3) / 16.
func Mix14To1To1(c1, c2, c3 color.Pixel) color.Pixel {
	if c1 == c2 && c2 == c3 {
		return c1
	}
	return mix3(c1, c2, c3, 14, 1, 1, 4)
}
