// Package escapetime renders Mandelbrot escape-time images.
package escapetime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"escapetime/viewport"
)

// Map rescales value linearly from [oLow, oHi] to [nLow, nHi].
func Map(value, oLow, oHi, nLow, nHi float64) float64 {
	return (value-oLow)*(nHi-nLow)/(oHi-oLow) + nLow
}

// PixelToPlane maps pixel (px, py) of a width x height image onto win.
// Column 0 lands on win.Left and row 0 on win.Top; there is no half-pixel
// offset.
func PixelToPlane(win viewport.Window, width, height, px, py int) complex128 {
	return complex(
		Map(float64(px), 0, float64(width), win.Left, win.Right),
		Map(float64(py), 0, float64(height), win.Top, win.Bottom),
	)
}

// Render allocates a cfg.Width x cfg.Height image and fills it with the
// escape-time picture of win.
//
// Rows are rendered concurrently and every pixel is written exactly once.
// If ctx is cancelled, workers stop taking new rows and ctx.Err() is
// returned.
func Render(ctx context.Context, cfg Config, win viewport.Window) (*Image, error) {
	if err := validate(cfg, win); err != nil {
		return nil, err
	}
	img, err := NewImage(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if err := render(ctx, img, cfg, win); err != nil {
		return nil, err
	}
	return img, nil
}

// RenderInto is Render with a caller-owned buffer. img must match the
// configured dimensions. Its previous contents are fully overwritten.
func RenderInto(ctx context.Context, img *Image, cfg Config, win viewport.Window) error {
	if err := validate(cfg, win); err != nil {
		return err
	}
	if img == nil || img.Width != cfg.Width || img.Height != cfg.Height || len(img.Pix) != cfg.Width*cfg.Height {
		return fmt.Errorf("%w: buffer does not match %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	return render(ctx, img, cfg, win)
}

func validate(cfg Config, win viewport.Window) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return win.Validate()
}

func render(ctx context.Context, img *Image, cfg Config, win viewport.Window) error {
	log := Logger()
	nw := cfg.workers()
	if cfg.Workers > nw {
		log.Warn("worker count capped at image height", "requested", cfg.Workers, "workers", nw)
	}
	log.Debug("render started",
		"width", img.Width,
		"height", img.Height,
		"max_iter", cfg.MaxIter,
		"palette", cfg.Palette.String(),
		"window", win.String(),
		"workers", nw,
	)
	start := time.Now()

	height := img.Height

	var wg sync.WaitGroup
	wg.Add(nw)
	for w := 0; w < nw; w++ {
		go func(worker int) {
			defer wg.Done()
			for py := worker; py < height; py += nw {
				if ctx.Err() != nil {
					return
				}
				renderRow(img.Row(py), py, height, cfg, win)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		log.Debug("render cancelled", "err", err, "elapsed", time.Since(start))
		return err
	}
	log.Debug("render finished", "elapsed", time.Since(start))
	return nil
}

// renderRow fills row py. It reads only immutable inputs and writes only
// to row.
func renderRow(row []Color, py, height int, cfg Config, win viewport.Window) {
	width := len(row)
	y0 := Map(float64(py), 0, float64(height), win.Top, win.Bottom)
	for px := range row {
		x0 := Map(float64(px), 0, float64(width), win.Left, win.Right)
		row[px] = cfg.Palette.Color(Escape(complex(x0, y0), cfg.MaxIter), cfg.MaxIter)
	}
}
