package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a raster file format.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota

	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF

	// FormatWebP is decode only; golang.org/x/image has no WebP encoder.
	FormatWebP

	formatCount
)

// formatInfo describes one Format.
type formatInfo struct {
	name      string
	exts      []string
	canEncode bool
}

var formatInfoTable = [formatCount]formatInfo{
	FormatUnknown: {name: "unknown"},
	FormatPNG:     {name: "png", exts: []string{".png"}, canEncode: true},
	FormatJPEG:    {name: "jpeg", exts: []string{".jpg", ".jpeg"}, canEncode: true},
	FormatGIF:     {name: "gif", exts: []string{".gif"}, canEncode: true},
	FormatBMP:     {name: "bmp", exts: []string{".bmp"}, canEncode: true},
	FormatTIFF:    {name: "tiff", exts: []string{".tif", ".tiff"}, canEncode: true},
	FormatWebP:    {name: "webp", exts: []string{".webp"}},
}

// String returns the name image.Decode reports for the format.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatInfoTable[f].name
}

// CanEncode reports whether images can be written in this format.
func (f Format) CanEncode() bool {
	return f < formatCount && formatInfoTable[f].canEncode
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f > FormatUnknown && f < formatCount
}

// FormatFromName maps a decoder name such as "jpeg" to a Format.
func FormatFromName(name string) Format {
	for f := FormatPNG; f < formatCount; f++ {
		if formatInfoTable[f].name == name {
			return f
		}
	}
	return FormatUnknown
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for f := FormatPNG; f < formatCount; f++ {
		for _, e := range formatInfoTable[f].exts {
			if e == ext {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}
