// Package cellpack computes pixel rectangles for the elements inside a
// cell and remembers which of them are interactive. A renderer builds a
// Layout once per call and uses it both to paint and to answer
// hit-tests, so the two can never disagree about geometry.
package cellpack

// LayoutRect is an axis-aligned rectangle. It is a plain value; every
// layout step derives new rects from a parent rect. Widths and heights
// may go negative mid-computation but are clamped before drawing.
type LayoutRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewLayoutRect returns the rect (x, y, width, height).
func NewLayoutRect(x, y, width, height float64) LayoutRect {
	return LayoutRect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x coordinate of the right edge.
func (r LayoutRect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r LayoutRect) Bottom() float64 { return r.Y + r.Height }

// Subsection returns the rect inset by the given padding on each side.
// If the padding exceeds a dimension the result collapses to zero size
// rather than going negative.
func (r LayoutRect) Subsection(left, right, top, bottom float64) LayoutRect {
	return LayoutRect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// LeftSide returns a full-height rect of the given width anchored to
// the left edge.
func (r LayoutRect) LeftSide(width float64) LayoutRect {
	return LayoutRect{X: r.X, Y: r.Y, Width: width, Height: r.Height}
}

// RightSide returns a full-height rect of the given width anchored to
// the right edge.
func (r LayoutRect) RightSide(width float64) LayoutRect {
	return LayoutRect{X: r.Right() - width, Y: r.Y, Width: width, Height: r.Height}
}

// TopSide returns a full-width rect of the given height anchored to the
// top edge.
func (r LayoutRect) TopSide(height float64) LayoutRect {
	return LayoutRect{X: r.X, Y: r.Y, Width: r.Width, Height: height}
}

// BottomSide returns a full-width rect of the given height anchored to
// the bottom edge.
func (r LayoutRect) BottomSide(height float64) LayoutRect {
	return LayoutRect{X: r.X, Y: r.Bottom() - height, Width: r.Width, Height: height}
}

// PastRight returns a full-height rect of the given width starting just
// past the right edge.
func (r LayoutRect) PastRight(width float64) LayoutRect {
	return LayoutRect{X: r.Right(), Y: r.Y, Width: width, Height: r.Height}
}

// Contains reports whether the point lies inside the rect. The left and
// top edges are inclusive, the right and bottom edges exclusive.
func (r LayoutRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
