// Package vision labels connected foreground regions of a binary mask.
package vision

import "image"

// Foreground is the mask value of a foreground pixel. Any non-zero value counts.
const Foreground = 255

// Component is one 8-connected region of foreground pixels
type Component struct {
	Label  int
	MinX   int
	MinY   int
	Width  int
	Height int
	Area   int
}

// FillRatio returns the share of the bounding box covered by the component
func (c Component) FillRatio() float64 {
	return float64(c.Area) / float64(c.Width*c.Height)
}

// AspectRatio returns width / height of the bounding box
func (c Component) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Bounds returns the bounding box as an image.Rectangle (Max exclusive)
func (c Component) Bounds() image.Rectangle {
	return image.Rect(c.MinX, c.MinY, c.MinX+c.Width, c.MinY+c.Height)
}

// accumulator grows a component's statistics with a single pixel
type accumulator struct {
	minX, minY, maxX, maxY int
	area                   int
}

func newAccumulator(x, y int) accumulator {
	return accumulator{minX: x, minY: y, maxX: x, maxY: y}
}

func (a *accumulator) add(x, y int) {
	if x < a.minX {
		a.minX = x
	}
	if x > a.maxX {
		a.maxX = x
	}
	if y < a.minY {
		a.minY = y
	}
	if y > a.maxY {
		a.maxY = y
	}
	a.area++
}

func (a accumulator) component(label int) Component {
	return Component{
		Label:  label,
		MinX:   a.minX,
		MinY:   a.minY,
		Width:  a.maxX - a.minX + 1,
		Height: a.maxY - a.minY + 1,
		Area:   a.area,
	}
}
