package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// JPEGQuality is the quality used when writing JPEG files.
const JPEGQuality = 95

// Decode decodes an image in any registered format.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: decode: %w", err)
	}
	return img, FormatFromName(name), nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, Format, error) {
	if len(data) == 0 {
		return nil, FormatUnknown, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Compression is a stream compression wrapped around an image file,
// selected by a trailing ".zst" or ".gz" extension as in "tiles.bmp.zst".
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionGzip
)

// SplitCompression strips a compression extension from path and reports
// which compression it named.
func SplitCompression(path string) (string, Compression) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return strings.TrimSuffix(path, filepath.Ext(path)), CompressionZstd
	case ".gz":
		return strings.TrimSuffix(path, filepath.Ext(path)), CompressionGzip
	}
	return path, CompressionNone
}

// Load decodes the image file at path. The image format is detected from
// the content, not the extension; a ".zst" or ".gz" extension
// decompresses the file first.
func Load(path string) (image.Image, Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	switch _, c := SplitCompression(path); c {
	case CompressionZstd:
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, FormatUnknown, fmt.Errorf("image: zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	case CompressionGzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, FormatUnknown, fmt.Errorf("image: gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	}

	return Decode(r)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", format, err)
	}
	return nil
}

// Save writes img to path in the format named by the file extension. A
// trailing ".zst" or ".gz" compresses the encoded file.
func Save(path string, img image.Image) error {
	inner, c := SplitCompression(path)
	format, err := FormatFromPath(inner)
	if err != nil {
		return err
	}
	if !format.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	w, err := compressor(f, c)
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := Encode(w, img, format); err != nil {
		_ = w.Close()
		_ = f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: compress: %w", err)
	}

	return f.Close()
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compressor wraps w in the encoder for c. Closing the result flushes the
// encoder but leaves w open.
func compressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, fmt.Errorf("image: zstd: %w", err)
		}
		return enc, nil
	case CompressionGzip:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("image: gzip: %w", err)
		}
		return zw, nil
	}
	return nopWriteCloser{w}, nil
}
