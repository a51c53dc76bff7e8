package render

import (
	"fmt"
	"strings"
)

// hiwaveEngine is an in-process stand-in for the HiWave renderer. It does real
// string and layout work proportional to document size so phase timings are
// nonzero and scale with page complexity, without linking the full engine.
type hiwaveEngine struct {
	elements int
	depth    int
	htmlLen  int

	boxes []box
	frame []byte
}

type box struct {
	x, y, w, h int
}

func newHiWaveEngine() (*hiwaveEngine, error) {
	return &hiwaveEngine{}, nil
}

func (e *hiwaveEngine) ParseMarkup(html string) error {
	if strings.TrimSpace(html) == "" {
		return fmt.Errorf("empty markup")
	}

	depth, maxDepth, elements := 0, 0, 0
	for i := 0; i < len(html); i++ {
		if html[i] != '<' || i+1 >= len(html) {
			continue
		}
		switch html[i+1] {
		case '/':
			if depth > 0 {
				depth--
			}
		case '!', '?':
			// doctype, comments, processing instructions
		default:
			elements++
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		}
	}

	e.elements = elements
	e.depth = maxDepth
	e.htmlLen = len(html)
	return nil
}

func (e *hiwaveEngine) ComputeLayout(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid viewport %dx%d", width, height)
	}

	// One box per element, flowed top to bottom inside the viewport.
	e.boxes = make([]box, 0, e.elements)
	y := 0
	lineHeight := 16
	for i := 0; i < e.elements; i++ {
		e.boxes = append(e.boxes, box{x: 0, y: y, w: width, h: lineHeight})
		y += lineHeight
		if y >= height {
			y = 0
		}
	}
	return nil
}

func (e *hiwaveEngine) Paint() error {
	if e.boxes == nil {
		return fmt.Errorf("paint before layout")
	}

	// Touch one byte per box row to simulate raster work.
	if len(e.frame) == 0 {
		e.frame = make([]byte, 4096)
	}
	for i, b := range e.boxes {
		e.frame[(b.y+i)%len(e.frame)]++
	}
	return nil
}

func (e *hiwaveEngine) MemoryUsage() uint64 {
	// Retained document plus layout tree plus frame buffer.
	return uint64(e.htmlLen) + uint64(len(e.boxes))*16 + uint64(len(e.frame))
}
