package escapetime

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette selects how an escape count becomes a colour. Bounded points are
// black under every palette.
type Palette int

const (
	// PaletteModulo cycles through a fixed 16-colour table by k mod 16.
	PaletteModulo Palette = iota
	// PaletteLogGrey fades from white towards black as log2(k)/log2(cap) grows.
	PaletteLogGrey
	// PaletteLogDuotone blends between two fixed colours on the same log scale.
	PaletteLogDuotone
	// PaletteExpGrey is PaletteLogGrey on an exp(k)/exp(cap) scale. For any
	// realistic cap nearly every pixel comes out white.
	PaletteExpGrey
	// PaletteEdward ramps white to blue over the first half of k/cap and
	// white to red over the second half.
	PaletteEdward
	// PaletteRamp subtracts k/cap of 0xFFFFFF from white as a packed integer,
	// which bands through the channels.
	PaletteRamp
)

var paletteNames = [...]string{
	PaletteModulo:     "modulo",
	PaletteLogGrey:    "log-grey",
	PaletteLogDuotone: "log-duotone",
	PaletteExpGrey:    "exp-grey",
	PaletteEdward:     "edward",
	PaletteRamp:       "ramp",
}

// Palettes returns every supported palette.
func Palettes() []Palette {
	ps := make([]Palette, len(paletteNames))
	for i := range ps {
		ps[i] = Palette(i)
	}
	return ps
}

// Valid reports whether p names a supported palette.
func (p Palette) Valid() bool {
	return p >= 0 && int(p) < len(paletteNames)
}

func (p Palette) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteNames[p]
}

// ParsePalette maps a palette name back to its value.
func ParsePalette(s string) (Palette, error) {
	for i, name := range paletteNames {
		if name == s {
			return Palette(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPalette, s)
}

// moduloColors is the 16-step blue/brown cycle.
var moduloColors = [16]Color{
	{66, 30, 15},    // brown 3
	{25, 7, 26},     // dark violet
	{9, 1, 47},      // darkest blue
	{4, 4, 73},      // blue 5
	{0, 7, 100},     // blue 4
	{12, 44, 138},   // blue 3
	{24, 82, 177},   // blue 2
	{57, 125, 209},  // blue 1
	{134, 181, 229}, // blue 0
	{211, 236, 248}, // lightest blue
	{241, 233, 191}, // lightest yellow
	{248, 201, 95},  // light yellow
	{255, 170, 0},   // dirty yellow
	{204, 128, 0},   // brown 0
	{153, 87, 0},    // brown 1
	{106, 52, 3},    // brown 2
}

// Duotone endpoints, near (s = 0) and far (s = 1).
var (
	duotoneNear = colorful.Color{R: 0xb8 / 255.0, G: 0x4e / 255.0, B: 0x0b / 255.0}
	duotoneFar  = colorful.Color{R: 0x07 / 255.0, G: 0x20 / 255.0, B: 0xe3 / 255.0}
)

// Color maps r to a colour for a render with iteration cap n.
func (p Palette) Color(r Result, n int) Color {
	if r.InSet() {
		return Black
	}
	k := r.Iter
	switch p {
	case PaletteModulo:
		return moduloColors[k%len(moduloColors)]
	case PaletteLogGrey:
		return grey(logScale(k, n))
	case PaletteLogDuotone:
		s := logScale(k, n)
		cr, cg, cb := duotoneNear.BlendRgb(duotoneFar, s).RGB255()
		return Color{R: cr, G: cg, B: cb}
	case PaletteExpGrey:
		return grey(expScale(k, n))
	case PaletteEdward:
		return edward(linearScale(k, n))
	case PaletteRamp:
		return ramp(k, n)
	}
	return Black
}

// logScale is log2(k)/log2(n) clamped to [0, 1]. k = 0 has no logarithm and
// is pinned to 0 alongside k = 1.
func logScale(k, n int) float64 {
	if k <= 0 || n <= 1 {
		return 0
	}
	return clamp01(math.Log2(float64(k)) / math.Log2(float64(n)))
}

// expScale is exp(k)/exp(n), evaluated as exp(k-n) so that caps above ~709
// do not turn into Inf/Inf.
func expScale(k, n int) float64 {
	return clamp01(math.Exp(float64(k - n)))
}

func linearScale(k, n int) float64 {
	if n <= 0 {
		return 0
	}
	return clamp01(float64(k) / float64(n))
}

func clamp01(s float64) float64 {
	switch {
	case math.IsNaN(s), s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// channel255 scales s in [0, 1] to a rounded byte.
func channel255(s float64) uint8 {
	return uint8(math.Round(clamp01(s) * 255))
}

func grey(s float64) Color {
	v := 255 - channel255(s)
	return Color{R: v, G: v, B: v}
}

// edward splits at s = 0.5; the midpoint belongs to the lower (blue) half.
func edward(s float64) Color {
	if s <= 0.5 {
		v := 255 - channel255(s*2)
		return Color{R: v, G: v, B: 255}
	}
	v := 255 - channel255((s-0.5)*2)
	return Color{R: 255, G: v, B: v}
}

func ramp(k, n int) Color {
	const white = 0xFFFFFF
	if n <= 0 {
		return Unpack(white)
	}
	return Unpack(white - uint32(uint64(k)*white/uint64(n)))
}
