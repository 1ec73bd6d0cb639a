package escapetime

import "escapetime/viewport"

// Stats summarises a finished render.
type Stats struct {
	Pixels int
	Black  int

	// Fraction is Black/Pixels, the share of samples estimated to be in the set.
	Fraction float64

	// Area is Fraction scaled by the window's area.
	Area float64
}

// Analyze counts the black pixels of img and estimates the area of the set
// inside win.
func Analyze(img *Image, win viewport.Window) Stats {
	var s Stats
	if img == nil || len(img.Pix) == 0 {
		return s
	}
	s.Pixels = len(img.Pix)
	for _, c := range img.Pix {
		if c == Black {
			s.Black++
		}
	}
	s.Fraction = float64(s.Black) / float64(s.Pixels)
	s.Area = s.Fraction * win.Area()
	return s
}

// BlackFraction returns the share of pure black pixels in img.
func BlackFraction(img *Image) float64 {
	return Analyze(img, viewport.Window{}).Fraction
}

// EstimateArea estimates the area of the set inside win from img.
func EstimateArea(img *Image, win viewport.Window) float64 {
	return Analyze(img, win).Area
}
