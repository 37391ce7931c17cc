package types

import "fmt"

// Rect is an axis-aligned pixel rectangle. MaxX/MaxY are inclusive.
type Rect struct {
	MinX    int `json:"min_x"`
	MinY    int `json:"min_y"`
	Width   int `json:"width"`
	Height  int `json:"height"`
	MaxX    int `json:"max_x"`
	MaxY    int `json:"max_y"`
	CenterX int `json:"center_x"`
	CenterY int `json:"center_y"`
}

// NewRect builds a Rect and computes its derived corners and center
func NewRect(minX, minY, width, height int) Rect {
	return Rect{
		MinX:    minX,
		MinY:    minY,
		Width:   width,
		Height:  height,
		MaxX:    minX + width - 1,
		MaxY:    minY + height - 1,
		CenterX: minX + width/2,
		CenterY: minY + height/2,
	}
}

// Area returns the number of pixels covered by the rectangle
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Within reports whether the rectangle is non-empty and fits inside a w x h image
func (r Rect) Within(w, h int) bool {
	return r.Width >= 1 && r.Height >= 1 &&
		r.MinX >= 0 && r.MinY >= 0 &&
		r.MinX+r.Width <= w && r.MinY+r.Height <= h
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d; %d) ~ (%d; %d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// SaveOptions describes how an image is encoded on disk
type SaveOptions struct {
	Format   string
	Quality  int
	Lossless bool
}
