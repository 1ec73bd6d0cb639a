// Package viewport describes the rectangle of the complex plane that a render
// samples.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewport is returned for windows that cannot be sampled.
var ErrInvalidViewport = errors.New("viewport: invalid window")

// Window bounds a region of the complex plane. Top is conventionally the
// larger imaginary value but either order is accepted.
type Window struct {
	Left, Right float64
	Top, Bottom float64
}

// Validate reports whether w can be mapped onto a pixel grid: all bounds
// finite, Left < Right and Top != Bottom.
func (w Window) Validate() error {
	for _, v := range [...]float64{w.Left, w.Right, w.Top, w.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound %v", ErrInvalidViewport, v)
		}
	}
	if !(w.Left < w.Right) {
		return fmt.Errorf("%w: left %g must be less than right %g", ErrInvalidViewport, w.Left, w.Right)
	}
	if w.Top == w.Bottom {
		return fmt.Errorf("%w: zero height at %g", ErrInvalidViewport, w.Top)
	}
	if math.IsInf(w.Right-w.Left, 0) || math.IsInf(w.Top-w.Bottom, 0) {
		return fmt.Errorf("%w: extent overflows", ErrInvalidViewport)
	}
	return nil
}

// Width is the real extent.
func (w Window) Width() float64 { return w.Right - w.Left }

// Height is the imaginary extent, always non-negative.
func (w Window) Height() float64 { return math.Abs(w.Top - w.Bottom) }

// Area is the geometric area covered by w.
func (w Window) Area() float64 {
	return math.Abs((w.Right - w.Left) * (w.Top - w.Bottom))
}

func (w Window) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", w.Left, w.Right, w.Bottom, w.Top)
}

// View is a window given by its centre and real span. The imaginary span
// follows from the aspect ratio of the target image.
type View struct {
	CX, CY float64
	Scale  float64
}

// Window converts v into a window matching an imgW x imgH image.
func (v View) Window(imgW, imgH int) Window {
	aspect := float64(imgH) / float64(imgW)
	halfW := v.Scale / 2
	halfH := (v.Scale * aspect) / 2

	return Window{
		Left:   v.CX - halfW,
		Right:  v.CX + halfW,
		Top:    v.CY + halfH,
		Bottom: v.CY - halfH,
	}
}
