package entropy

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned pixel region. X and Y are the top-left corner.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of pixels covered, or 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Ratio returns Width/Height, or 0 for an empty rectangle.
func (r Rect) Ratio() float64 {
	if r.Empty() {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// Bounds converts the rectangle to an image.Rectangle.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// RectFrom converts an image.Rectangle to a Rect.
func RectFrom(b image.Rectangle) Rect {
	b = b.Canon()
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// clip intersects r with the 0,0-based area of size w x h.
func (r Rect) clip(w, h int) Rect {
	b := r.Bounds().Intersect(image.Rect(0, 0, w, h))
	return RectFrom(b)
}
