package escapetime

import "fmt"

// Result is the outcome of iterating a single point.
//
// For an escaped point Iter is the zero-based index of the recurrence step
// whose output first left the radius-2 disc, so 0 <= Iter < cap. For a
// bounded point Iter equals the cap.
type Result struct {
	Iter    int
	Escaped bool
}

// EscapedAt returns the result for a point that escaped on step k.
func EscapedAt(k int) Result { return Result{Iter: k, Escaped: true} }

// BoundedAt returns the result for a point that survived n steps.
func BoundedAt(n int) Result { return Result{Iter: n} }

// InSet reports whether the point is treated as a member of the set.
func (r Result) InSet() bool { return !r.Escaped }

func (r Result) String() string {
	if r.Escaped {
		return fmt.Sprintf("Escaped(%d)", r.Iter)
	}
	return fmt.Sprintf("Bounded(%d)", r.Iter)
}

// escapeR2 is the squared escape radius.
const escapeR2 = 4.0

// Escape iterates z = z*z + c from z = 0 for at most n steps.
//
// Step i produces z_(i+1); the first step whose result has |z|^2 > 4 yields
// EscapedAt(i). With n <= 0 no step runs and the point is bounded. A NaN
// orbit never satisfies the comparison and runs out the cap as bounded.
func Escape(c complex128, n int) Result {
	cr, ci := real(c), imag(c)
	x, y := 0.0, 0.0
	for i := 0; i < n; i++ {
		x, y = x*x-y*y+cr, 2*x*y+ci
		if x*x+y*y > escapeR2 {
			return EscapedAt(i)
		}
	}
	return BoundedAt(max(n, 0))
}
