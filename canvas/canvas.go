// Package canvas defines the 2D drawing capability that the cell
// renderers paint into. The interfaces here are implemented by a real
// surface (see the ebitencanvas package) and by test fakes; nothing in
// this package touches a GPU or a windowing toolkit.
package canvas

import "image/color"

// Context is a 2D paint context. Path construction calls accumulate a
// current path which is consumed by Fill, Stroke or Clip. Save/Restore
// manage a stack of clip state.
type Context interface {
	// Path construction.
	Rectangle(x, y, width, height float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	RelLineTo(dx, dy float64)
	// Arc adds a circular arc around (cx, cy). Angles are in radians,
	// measured clockwise from the positive x axis.
	Arc(cx, cy, radius, startAngle, endAngle float64)
	// ArcNegative adds the arc in the counter-clockwise direction.
	// Needed to cut holes under the non-zero winding rule.
	ArcNegative(cx, cy, radius, startAngle, endAngle float64)

	// Paint state.
	SetColor(c color.NRGBA)
	SetColorAlpha(c color.NRGBA, alpha float64)
	SetLineWidth(width float64)

	// Path consumers.
	Fill()
	Stroke()
	GradientFill(g Gradient)
	// Clip intersects the current clip region with the current path.
	Clip()

	Save()
	Restore()
}

// Gradient is a 2-stop linear gradient between two points.
type Gradient struct {
	X1, Y1 float64
	X2, Y2 float64
	Start  color.NRGBA
	End    color.NRGBA
}

// NewGradient returns a gradient along the line (x1,y1)-(x2,y2). The
// stop colors default to transparent; set Start and End before use.
func NewGradient(x1, y1, x2, y2 float64) Gradient {
	return Gradient{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Image is a drawable surface handle, usually produced by an ImagePool.
type Image interface {
	Width() float64
	Height() float64
	// Draw blits the image scaled into the given rectangle.
	Draw(ctx Context, x, y, width, height float64)
	// DrawFraction draws with the given opacity (0..1). Used for
	// animated fade-in art such as the keep/saved badge.
	DrawFraction(ctx Context, x, y, width, height, fraction float64)
}

// ImagePool resolves image paths to cached drawable handles. A pool
// never fails: an unloadable path yields a usable placeholder.
type ImagePool interface {
	Surface(path string) Image
	// SurfaceScaled returns the image scaled to fit within the given
	// size while preserving aspect ratio.
	SurfaceScaled(path string, width, height float64) Image
}

// Shadow describes a text drop shadow.
type Shadow struct {
	Color      color.NRGBA
	Opacity    float64
	OffsetX    float64
	OffsetY    float64
	BlurRadius float64
}
