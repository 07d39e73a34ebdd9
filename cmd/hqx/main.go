// Command hqx magnifies a pixel-art image with the hqx filter.
//
// Usage:
//
//	hqx -in sprite.png -out sprite4x.png -scale 4
//	hqx -in tiles.bmp -out tiles2x.tiff -scale 2 -wrapx -wrapy
//	hqx -in sprite.gif -out sheet.png -scale 3 -compare -baseline catmullrom
//
// The output format follows the -out extension: png, jpg, gif, bmp or tif.
// With -compare the output holds a conventionally scaled copy on the left
// and the hqx result on the right, each under a caption. A trailing .zst or
// .gz on -in or -out reads or writes a compressed file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greenshot/hqx"
	intImage "github.com/greenshot/hqx/internal/image"
)

// config holds the parsed command line.
type config struct {
	in, out  string
	scale    int
	wrapX    bool
	wrapY    bool
	th       hqx.Thresholds
	workers  int
	compare  bool
	baseline string
	lang     string
	verbose  bool
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("hqx", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		c          config
		ty, tu, tv uint
		ta         uint
	)
	fs.StringVar(&c.in, "in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&c.out, "out", "", "output image; format from extension")
	fs.IntVar(&c.scale, "scale", 2, "magnification: 2, 3 or 4")
	fs.BoolVar(&c.wrapX, "wrapx", false, "wrap the left and right borders")
	fs.BoolVar(&c.wrapY, "wrapy", false, "wrap the top and bottom borders")
	fs.UintVar(&ty, "ty", uint(hqx.DefaultThresholds.Y), "luma threshold (0-255)")
	fs.UintVar(&tu, "tu", uint(hqx.DefaultThresholds.U), "blue chroma threshold (0-255)")
	fs.UintVar(&tv, "tv", uint(hqx.DefaultThresholds.V), "red chroma threshold (0-255)")
	fs.UintVar(&ta, "ta", uint(hqx.DefaultThresholds.A), "alpha threshold (0-255)")
	fs.IntVar(&c.workers, "workers", 0, "worker goroutines; 0 uses all CPUs")
	fs.BoolVar(&c.compare, "compare", false, "write a side-by-side sheet with a conventional scale")
	fs.StringVar(&c.baseline, "baseline", "nearest", "compare baseline: nearest, bilinear or catmullrom")
	fs.StringVar(&c.lang, "lang", "en", "language tag for the summary line")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if c.in == "" || c.out == "" {
		fs.Usage()
		return nil, fmt.Errorf("%w: -in and -out are required", errUsage)
	}
	for name, v := range map[string]uint{"ty": ty, "tu": tu, "tv": tv, "ta": ta} {
		if v > 255 {
			return nil, fmt.Errorf("%w: -%s %d out of range", errUsage, name, v)
		}
	}
	inner, _ := intImage.SplitCompression(c.out)
	if f, err := intImage.FormatFromPath(inner); err != nil || !f.CanEncode() {
		return nil, fmt.Errorf("%w: cannot write %s", errUsage, c.out)
	}
	if _, ok := baselines[c.baseline]; !ok {
		return nil, fmt.Errorf("%w: unknown baseline %q", errUsage, c.baseline)
	}
	c.th = hqx.Thresholds{Y: uint8(ty), U: uint8(tu), V: uint8(tv), A: uint8(ta)}
	return &c, nil
}

var baselines = map[string]draw.Interpolator{
	"nearest":    draw.NearestNeighbor,
	"bilinear":   draw.BiLinear,
	"catmullrom": draw.CatmullRom,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "hqx:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	hqx.SetLogger(logger)
	defer hqx.SetLogger(nil)

	src, format, err := intImage.Load(c.in)
	if err != nil {
		return err
	}
	logger.Debug("loaded", "path", c.in, "format", format, "bounds", src.Bounds())

	start := time.Now()
	in := hqx.FromImage(src)
	dst, err := hqx.MagnifyContext(ctx, in, c.scale,
		hqx.WithThresholds(c.th),
		hqx.WithWrap(c.wrapX, c.wrapY),
		hqx.WithWorkers(c.workers),
	)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out, err := dst.ToNRGBA()
	if err != nil {
		return err
	}
	var result image.Image = out
	if c.compare {
		result, err = compareSheet(src, out, c.baseline, c.scale)
		if err != nil {
			return err
		}
	}
	if err := intImage.Save(c.out, result); err != nil {
		return err
	}

	printSummary(stderr, c.lang, c.out, in, dst, elapsed)
	return nil
}

// compareSheet places src scaled to the size of magnified with the named
// baseline interpolator on the left and magnified on the right, both
// below a caption strip.
func compareSheet(src image.Image, magnified *image.NRGBA, baseline string, scale int) (*image.NRGBA, error) {
	b := magnified.Bounds()
	w, h := b.Dx(), b.Dy()
	sheet := image.NewNRGBA(image.Rect(0, 0, w*2, h+labelHeight))

	left := image.Rect(0, labelHeight, w, labelHeight+h)
	right := left.Add(image.Pt(w, 0))
	baselines[baseline].Scale(sheet, left, src, src.Bounds(), draw.Src, nil)
	draw.Draw(sheet, right, magnified, b.Min, draw.Src)

	if err := drawLabel(sheet, image.Rect(0, 0, w, labelHeight), baseline); err != nil {
		return nil, err
	}
	if err := drawLabel(sheet, image.Rect(w, 0, 2*w, labelHeight), fmt.Sprintf("hq%dx", scale)); err != nil {
		return nil, err
	}
	return sheet, nil
}

func printSummary(w io.Writer, lang, path string, in, out *hqx.Image, elapsed time.Duration) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	p.Fprintf(w, "%s: %d×%d → %d×%d, %d pixels in %v\n",
		path, in.Width, in.Height, out.Width, out.Height, len(out.Pix), elapsed.Round(time.Millisecond))
}
