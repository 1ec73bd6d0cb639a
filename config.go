package escapetime

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"escapetime/viewport"
)

var (
	// ErrInvalidDimensions is returned for non-positive or oversized images.
	ErrInvalidDimensions = errors.New("escapetime: invalid dimensions")

	// ErrInvalidIterations is returned for a negative iteration cap.
	ErrInvalidIterations = errors.New("escapetime: invalid iteration cap")

	// ErrUnknownPalette is returned for palette values or names that are not supported.
	ErrUnknownPalette = errors.New("escapetime: unknown palette")

	// ErrInvalidViewport is viewport.ErrInvalidViewport, re-exported so callers
	// can match every Render error against this package.
	ErrInvalidViewport = viewport.ErrInvalidViewport
)

// Default render parameters.
const (
	DefaultWidth   = 1920
	DefaultHeight  = 1200
	DefaultMaxIter = 5000
)

// Config holds the per-render parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Width, Height int

	// MaxIter caps the recurrence. Zero is allowed and renders all black.
	MaxIter int

	Palette Palette

	// Workers is the number of goroutines rendering rows. Zero or negative
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig returns a 1920x1200 render with a 5000 iteration cap and
// the modulo palette.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		MaxIter: DefaultMaxIter,
		Palette: PaletteModulo,
	}
}

// Validate checks c without looking at the window.
func (c Config) Validate() error {
	if err := checkDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.MaxIter < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.MaxIter)
	}
	if !c.Palette.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownPalette, c.Palette)
	}
	return nil
}

// workers resolves the worker count for an image of the given height.
func (c Config) workers() int {
	n := c.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(min(n, c.Height), 1)
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	return nil
}
