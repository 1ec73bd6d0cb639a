package viewport

import "sort"

// Named windows.
var (
	// Global shows the whole set.
	Global = Window{Left: -2.0, Right: 1.0, Top: 1.125, Bottom: -1.125}

	// Small zooms in on an interesting bit of detail near Seahorse Valley.
	Small = Window{Left: -0.751085, Right: -0.734975, Top: 0.118378, Bottom: 0.134488}

	// SeahorseValley has dense filaments and repeating "seahorse" curls.
	SeahorseValley = Window{Left: -0.8, Right: -0.7, Top: 0.15, Bottom: 0.05}

	// ElephantValley has a large bulb with trunk-like tendrils.
	ElephantValley = Window{Left: -1.85, Right: -1.75, Top: -0.02, Bottom: -0.10}

	// SpiralMinibrot is a small copy of the set with tight spiral arms.
	SpiralMinibrot = Window{Left: -0.7435, Right: -0.7420, Top: 0.1325, Bottom: 0.1310}

	// TripleSpiral has threefold symmetric spirals.
	TripleSpiral = Window{Left: -0.7480, Right: -0.7450, Top: 0.0980, Bottom: 0.0950}

	// ValleyOfTheDragon has deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Window{Left: -0.7400, Right: -0.7350, Top: 0.1850, Bottom: 0.1800}
)

var presets = map[string]Window{
	"global":   Global,
	"small":    Small,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}

// Lookup returns the named window.
func Lookup(name string) (Window, bool) {
	w, ok := presets[name]
	return w, ok
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
