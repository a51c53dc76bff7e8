package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable marks an engine that cannot be constructed on the current
// platform. Callers use errors.Is to tell this expected condition apart from a
// mid-run call failure.
var ErrUnavailable = errors.New("renderer not available")

// Engine is the capability contract every renderer under test satisfies. The
// harness never looks inside an engine; it times the three phase calls and
// reads memory once after Paint.
type Engine interface {
	// ParseMarkup parses HTML content into the engine's document model.
	ParseMarkup(html string) error
	// ComputeLayout lays the parsed document out for the given viewport.
	ComputeLayout(width, height int) error
	// Paint rasterizes the laid-out document.
	Paint() error
	// MemoryUsage reports the engine's current retained memory in bytes.
	MemoryUsage() uint64
}

// Type identifies one of the supported renderer variants.
type Type int

const (
	HiWave Type = iota
	WebKit
	Blink
	Gecko
)

func (t Type) String() string {
	switch t {
	case HiWave:
		return "hiwave"
	case WebKit:
		return "webkit"
	case Blink:
		return "blink"
	case Gecko:
		return "gecko"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType resolves a case-insensitive renderer name.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "hiwave":
		return HiWave, nil
	case "webkit":
		return WebKit, nil
	case "blink":
		return Blink, nil
	case "gecko":
		return Gecko, nil
	default:
		return 0, fmt.Errorf("unknown renderer %q", name)
	}
}

// New constructs a fresh engine instance. Construction fails with an error
// wrapping ErrUnavailable when the renderer cannot run on this platform; that
// is an expected condition, not a measurement failure.
func New(t Type) (Engine, error) {
	switch t {
	case HiWave:
		return newHiWaveEngine()
	case WebKit:
		return newWebKitEngine()
	case Blink:
		return newBlinkEngine()
	case Gecko:
		return newGeckoEngine()
	default:
		return nil, fmt.Errorf("unknown renderer type %d", int(t))
	}
}
