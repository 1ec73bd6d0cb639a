package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"escapetime"
	"escapetime/rasterfile"
	"escapetime/viewport"
)

type options struct {
	cfg     escapetime.Config
	window  viewport.Window
	output  string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("escapetime failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	escapetime.SetLogger(logger)
	defer escapetime.SetLogger(nil)

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "Rendering %d x %d pixels of %v, %d iterations, %s palette. Please wait...\n",
		opts.cfg.Width, opts.cfg.Height, opts.window, opts.cfg.MaxIter, opts.cfg.Palette)

	start := time.Now()
	img, err := escapetime.Render(ctx, opts.cfg, opts.window)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	p.Fprintf(stdout, "Computing the Mandelbrot set took %d ms.\n", time.Since(start).Milliseconds())

	if err := rasterfile.Save(opts.output, img); err != nil {
		return fmt.Errorf("write %q: %w", opts.output, err)
	}
	p.Fprintf(stdout, "Wrote %s\n", opts.output)

	stats := escapetime.Analyze(img, opts.window)
	p.Fprintf(stdout, "%d of %d pixels (%.2f%%) of the image are black.\n",
		stats.Black, stats.Pixels, stats.Fraction*100)
	p.Fprintf(stdout, "The area of the Mandelbrot set is %.5f.\n", stats.Area)
	return nil
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	def := escapetime.DefaultConfig()

	fs := flag.NewFlagSet("escapetime", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		size    = fs.String("size", fmt.Sprintf("%dx%d", def.Width, def.Height), "base image size as WxH")
		scale   = fs.Int("scale", 1, "resolution scale factor applied to -size")
		iter    = fs.Int("iter", def.MaxIter, "iteration cap")
		palette = fs.String("palette", def.Palette.String(), "palette: "+paletteList())
		workers = fs.Int("workers", 0, "render goroutines (0 = GOMAXPROCS)")
		preset  = fs.String("window", "global", "named window: "+strings.Join(viewport.Names(), ", "))
		bounds  = fs.String("bounds", "", "explicit window as left,right,top,bottom (overrides -window)")
		center  = fs.String("center", "", "window centre as re,im with -span (overrides -window)")
		span    = fs.Float64("span", 3.0, "real extent of the window around -center")
		output  = fs.String("o", "output.tga", "output file (.tga or .bmp)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts := options{cfg: def, output: *output, verbose: *verbose}

	w, h, err := parseSize(*size)
	if err != nil {
		return options{}, err
	}
	if *scale <= 0 {
		return options{}, fmt.Errorf("%w: scale %d", escapetime.ErrInvalidDimensions, *scale)
	}
	opts.cfg.Width, opts.cfg.Height = w*(*scale), h*(*scale)
	opts.cfg.MaxIter = *iter
	opts.cfg.Workers = *workers
	if opts.cfg.Palette, err = escapetime.ParsePalette(*palette); err != nil {
		return options{}, err
	}

	switch {
	case *bounds != "":
		v, err := parseFloats(*bounds, 4)
		if err != nil {
			return options{}, fmt.Errorf("-bounds: %w", err)
		}
		opts.window = viewport.Window{Left: v[0], Right: v[1], Top: v[2], Bottom: v[3]}
	case *center != "":
		v, err := parseFloats(*center, 2)
		if err != nil {
			return options{}, fmt.Errorf("-center: %w", err)
		}
		opts.window = viewport.View{CX: v[0], CY: v[1], Scale: *span}.Window(opts.cfg.Width, opts.cfg.Height)
	default:
		win, ok := viewport.Lookup(*preset)
		if !ok {
			return options{}, fmt.Errorf("%w: unknown window %q", viewport.ErrInvalidViewport, *preset)
		}
		opts.window = win
	}

	if err := opts.cfg.Validate(); err != nil {
		return options{}, err
	}
	if err := opts.window.Validate(); err != nil {
		return options{}, err
	}
	if _, err := rasterfile.FormatFromPath(opts.output); err != nil {
		return options{}, err
	}
	return opts, nil
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q is not WxH", escapetime.ErrInvalidDimensions, s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("%w: width %q", escapetime.ErrInvalidDimensions, ws)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("%w: height %q", escapetime.ErrInvalidDimensions, hs)
	}
	return w, h, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %d", n, len(parts))
	}
	v := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

func paletteList() string {
	names := make([]string, 0, len(escapetime.Palettes()))
	for _, p := range escapetime.Palettes() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
