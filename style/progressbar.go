package style

import (
	"image/color"
	"math"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/model"
)

// ProgressBarColorSet is the palette for one progress bar. The bar has
// a two-tone filled portion, a flat unfilled portion, and matching
// border colors, plus a highlight stroke along the inner-top edge of
// the fill.
type ProgressBarColorSet struct {
	ProgressBaseTop    color.NRGBA
	ProgressBaseBottom color.NRGBA
	Base               color.NRGBA

	ProgressBorderTop       color.NRGBA
	ProgressBorderBottom    color.NRGBA
	ProgressBorderHighlight color.NRGBA

	BorderGradientTop    color.NRGBA
	BorderGradientBottom color.NRGBA
}

// DefaultProgressColors is the orange download-progress palette.
var DefaultProgressColors = ProgressBarColorSet{
	ProgressBaseTop:    rgb(0.92, 0.53, 0.21),
	ProgressBaseBottom: rgb(0.90, 0.45, 0.08),
	Base:               rgb(0.76, 0.76, 0.76),

	ProgressBorderTop:       rgb(0.80, 0.51, 0.28),
	ProgressBorderBottom:    rgb(0.76, 0.44, 0.16),
	ProgressBorderHighlight: rgb(1.0, 0.68, 0.42),

	BorderGradientTop:    rgb(0.58, 0.58, 0.58),
	BorderGradientBottom: rgb(0.68, 0.68, 0.68),
}

// ProgressBarDrawer paints a pill-shaped determinate progress bar. The
// geometry is involved: everything is drawn through clip regions built
// from the capsule outline so the rounded ends never need special-cased
// rectangles.
type ProgressBarDrawer struct {
	Ratio  float64
	Colors ProgressBarColorSet

	x, y, width, height float64
	progressWidth       float64
	halfHeight          float64
	progressEnd         string // "left", "middle" or "right"
}

// NewItemProgressBar returns a drawer for an item's download progress,
// 0 when the total size is unknown.
func NewItemProgressBar(info *model.ItemInfo) *ProgressBarDrawer {
	d := &ProgressBarDrawer{Colors: DefaultProgressColors}
	if info.DownloadInfo != nil && info.Size > 0 {
		d.Ratio = float64(info.DownloadInfo.DownloadedSize) / float64(info.Size)
	}
	return d
}

// Draw paints the bar into the given rect. It is a cellpack.DrawFunc.
func (d *ProgressBarDrawer) Draw(ctx canvas.Context, x, y, width, height float64) {
	d.x, d.y, d.width, d.height = x, y, width, height
	ctx.SetLineWidth(1)
	d.progressWidth = math.Trunc(width * d.Ratio)
	d.halfHeight = height / 2
	// where the fill boundary lands: inside the left cap, inside the
	// right cap, or in the flat middle
	if d.progressWidth < d.halfHeight {
		d.progressEnd = "left"
	} else if width-d.progressWidth < d.halfHeight {
		d.progressEnd = "right"
	} else {
		d.progressEnd = "middle"
	}
	d.drawBase(ctx)
	d.drawBorder(ctx)
}

func (d *ProgressBarDrawer) drawBase(ctx canvas.Context) {
	// clip to the capsule outline so plain rectangles get rounded ends
	// for free
	ctx.Save()
	d.outerBorder(ctx)
	ctx.Clip()
	d.progressTopRectangle(ctx)
	ctx.SetColor(d.Colors.ProgressBaseTop)
	ctx.Fill()
	d.progressBottomRectangle(ctx)
	ctx.SetColor(d.Colors.ProgressBaseBottom)
	ctx.Fill()
	d.nonProgressRectangle(ctx)
	ctx.SetColor(d.Colors.Base)
	ctx.Fill()
	ctx.Restore()
}

func (d *ProgressBarDrawer) drawBorder(ctx canvas.Context) {
	// The clip region must be only the 1px border ring. Trace the outer
	// capsule in one winding direction and an inset capsule in the
	// other; under the non-zero rule the clip becomes the area between
	// the two paths.
	ctx.Save()
	d.outerBorder(ctx)
	d.innerBorder(ctx)
	ctx.Clip()
	d.progressTopRectangle(ctx)
	ctx.SetColor(d.Colors.ProgressBorderTop)
	ctx.Fill()
	d.progressBottomRectangle(ctx)
	ctx.SetColor(d.Colors.ProgressBorderBottom)
	ctx.Fill()
	d.nonProgressRectangle(ctx)
	g := canvas.NewGradient(d.x+d.progressWidth, d.y, d.x+d.progressWidth, d.y+d.height)
	g.Start = d.Colors.BorderGradientTop
	g.End = d.Colors.BorderGradientBottom
	ctx.GradientFill(g)
	ctx.Restore()
	d.drawProgressHighlight(ctx)
	d.drawProgressRight(ctx)
}

// drawProgressRight paints the 1px two-tone seam at the fill boundary.
func (d *ProgressBarDrawer) drawProgressRight(ctx canvas.Context) {
	if d.progressWidth == d.width {
		return
	}
	radius := d.halfHeight
	var upperHeight float64
	switch d.progressEnd {
	case "left":
		// the boundary cuts through the left cap; get the chord height
		// from the circle equation
		a := radius - d.progressWidth
		upperHeight = math.Floor(math.Sqrt(radius*radius - a*a))
	case "right":
		endCircleStart := d.width - radius
		a := d.progressWidth - endCircleStart
		upperHeight = math.Floor(math.Sqrt(radius*radius - a*a))
	default:
		upperHeight = d.height / 2
	}
	top := d.y + d.height/2 - upperHeight
	ctx.Rectangle(d.x+d.progressWidth-1, top, 1, upperHeight)
	ctx.SetColor(d.Colors.ProgressBorderTop)
	ctx.Fill()
	ctx.Rectangle(d.x+d.progressWidth-1, top+upperHeight, 1, upperHeight)
	ctx.SetColor(d.Colors.ProgressBorderBottom)
	ctx.Fill()
}

func (d *ProgressBarDrawer) drawProgressHighlight(ctx canvas.Context) {
	width := d.progressWidth - 2 // highlight is 1px in on both sides
	if width <= 0 {
		return
	}
	radius := d.halfHeight - 2
	left := d.x + 1.5 // start 1px to the right of d.x
	top := d.y + 1.5
	ctx.MoveTo(left, top+radius)
	if d.progressEnd == "left" {
		// the highlight arc stops where the fill boundary crosses the
		// cap circle
		length := radius - width
		theta := -(pi / 2) - math.Asin(length/radius)
		ctx.Arc(left+radius, top+radius, radius, -pi, theta)
	} else {
		ctx.Arc(left+radius, top+radius, radius, -pi, -pi/2)
		// straight run to the fill boundary, stopping short of the
		// right cap
		x := math.Min(left+width, d.x+d.width-d.halfHeight-0.5)
		ctx.LineTo(x, top)
	}
	ctx.SetColor(d.Colors.ProgressBorderHighlight)
	ctx.Stroke()
}

func (d *ProgressBarDrawer) outerBorder(ctx canvas.Context) {
	circularRect(ctx, d.x, d.y, d.width, d.height)
}

func (d *ProgressBarDrawer) innerBorder(ctx canvas.Context) {
	circularRectNegative(ctx, d.x+1, d.y+1, d.width-2, d.height-2)
}

func (d *ProgressBarDrawer) progressTopRectangle(ctx canvas.Context) {
	ctx.Rectangle(d.x, d.y, d.progressWidth, d.halfHeight)
}

func (d *ProgressBarDrawer) progressBottomRectangle(ctx canvas.Context) {
	ctx.Rectangle(d.x, d.y+d.halfHeight, d.progressWidth, d.halfHeight)
}

func (d *ProgressBarDrawer) nonProgressRectangle(ctx canvas.Context) {
	ctx.Rectangle(d.x+d.progressWidth, d.y, d.width-d.progressWidth, d.height)
}

// circularRect traces a clockwise capsule: flat top and bottom edges
// with semicircular ends.
func circularRect(ctx canvas.Context, x, y, width, height float64) {
	radius := height / 2
	inner := width - height
	ctx.MoveTo(x+radius, y)
	ctx.RelLineTo(inner, 0)
	ctx.Arc(x+width-radius, y+radius, radius, -pi/2, pi/2)
	ctx.RelLineTo(-inner, 0)
	ctx.Arc(x+radius, y+radius, radius, pi/2, -pi/2)
}

// circularRectNegative traces the same capsule counter-clockwise, for
// cutting ring-shaped clip regions out of an outer capsule.
func circularRectNegative(ctx canvas.Context, x, y, width, height float64) {
	radius := height / 2
	inner := width - height
	ctx.MoveTo(x+radius, y)
	ctx.ArcNegative(x+radius, y+radius, radius, -pi/2, pi/2)
	ctx.RelLineTo(inner, 0)
	ctx.ArcNegative(x+width-radius, y+radius, radius, pi/2, -pi/2)
	ctx.RelLineTo(-inner, 0)
}
