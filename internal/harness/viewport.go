package harness

import "math/rand"

// Viewport holds the dimensions one iteration is rendered at. Viewports are
// drawn per iteration and never persisted.
type Viewport struct {
	Width  int
	Height int
}

// viewportMenu is the fixed menu of common device sizes trials draw from.
var viewportMenu = []Viewport{
	{320, 568},   // iPhone SE
	{375, 667},   // iPhone 8
	{414, 896},   // iPhone 11 Pro Max
	{768, 1024},  // iPad portrait
	{1024, 768},  // iPad landscape
	{1280, 720},  // HD
	{1920, 1080}, // Full HD
	{2560, 1440}, // QHD
}

// Viewports returns a copy of the device-size menu.
func Viewports() []Viewport {
	menu := make([]Viewport, len(viewportMenu))
	copy(menu, viewportMenu)
	return menu
}

func randomViewport(rng *rand.Rand) Viewport {
	return viewportMenu[rng.Intn(len(viewportMenu))]
}
