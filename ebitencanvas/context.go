// Package ebitencanvas backs the canvas interfaces with Ebitengine:
// vector paths rasterized into an *ebiten.Image, text through text/v2
// with the gofont faces, and a CPU-scaling image pool. Everything here
// runs on the game loop's draw pass.
package ebitencanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/mediashelf/mediashelf/canvas"
)

// whiteSubImage is the 1x1 source for solid triangle fills. The 3x3
// parent avoids bleeding at the texture edge.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// clipLayer is one Save'd clip level: drawing goes to layer until the
// matching Restore masks it and composites it onto the level below.
type clipLayer struct {
	layer *ebiten.Image
	mask  *ebiten.Image
}

// Context implements canvas.Context on an *ebiten.Image. Paths use the
// screen's y-down coordinates, so positive angles run clockwise, which
// is exactly what the canvas contract specifies.
type Context struct {
	dst    *ebiten.Image
	target *ebiten.Image

	path    vector.Path
	started bool
	cx, cy  float32

	color     color.NRGBA
	alpha     float64
	lineWidth float32

	clips []clipLayer
	// pending[i] counts the clips pushed since the i-th Save; the
	// matching Restore unwinds exactly that many.
	pending []int
}

// NewContext returns a context drawing into dst.
func NewContext(dst *ebiten.Image) *Context {
	return &Context{dst: dst, target: dst, alpha: 1, lineWidth: 1}
}

// Target returns the image draws currently land on. Image and text
// drawing goes through here so it honors the active clip layer.
func (c *Context) Target() *ebiten.Image {
	return c.target
}

func (c *Context) moveTo(x, y float32) {
	c.path.MoveTo(x, y)
	c.cx, c.cy = x, y
	c.started = true
}

func (c *Context) lineTo(x, y float32) {
	if !c.started {
		c.moveTo(x, y)
		return
	}
	c.path.LineTo(x, y)
	c.cx, c.cy = x, y
}

// Rectangle implements canvas.Context.
func (c *Context) Rectangle(x, y, width, height float64) {
	c.moveTo(float32(x), float32(y))
	c.lineTo(float32(x+width), float32(y))
	c.lineTo(float32(x+width), float32(y+height))
	c.lineTo(float32(x), float32(y+height))
	c.path.Close()
}

// MoveTo implements canvas.Context.
func (c *Context) MoveTo(x, y float64) {
	c.moveTo(float32(x), float32(y))
}

// LineTo implements canvas.Context.
func (c *Context) LineTo(x, y float64) {
	c.lineTo(float32(x), float32(y))
}

// RelLineTo implements canvas.Context.
func (c *Context) RelLineTo(dx, dy float64) {
	c.lineTo(c.cx+float32(dx), c.cy+float32(dy))
}

// Arc implements canvas.Context.
func (c *Context) Arc(cx, cy, radius, startAngle, endAngle float64) {
	c.arc(cx, cy, radius, startAngle, endAngle, vector.Clockwise)
}

// ArcNegative implements canvas.Context.
func (c *Context) ArcNegative(cx, cy, radius, startAngle, endAngle float64) {
	c.arc(cx, cy, radius, startAngle, endAngle, vector.CounterClockwise)
}

func (c *Context) arc(cx, cy, radius, startAngle, endAngle float64, dir vector.Direction) {
	// line from the current point onto the arc's start, like cairo
	startX := cx + radius*math.Cos(startAngle)
	startY := cy + radius*math.Sin(startAngle)
	c.lineTo(float32(startX), float32(startY))
	c.path.Arc(float32(cx), float32(cy), float32(radius),
		float32(startAngle), float32(endAngle), dir)
	c.cx = float32(cx + radius*math.Cos(endAngle))
	c.cy = float32(cy + radius*math.Sin(endAngle))
}

// SetColor implements canvas.Context.
func (c *Context) SetColor(col color.NRGBA) {
	c.color = col
	c.alpha = 1
}

// SetColorAlpha implements canvas.Context.
func (c *Context) SetColorAlpha(col color.NRGBA, alpha float64) {
	c.color = col
	c.alpha = alpha
}

// SetLineWidth implements canvas.Context.
func (c *Context) SetLineWidth(width float64) {
	c.lineWidth = float32(width)
}

func (c *Context) resetPath() {
	c.path = vector.Path{}
	c.started = false
}

// premultiplied converts the current color state to the vertex color
// channels, which ebiten expects premultiplied.
func (c *Context) premultiplied() (r, g, b, a float32) {
	a = float32(float64(c.color.A) / 255 * c.alpha)
	r = float32(c.color.R) / 255 * a
	g = float32(c.color.G) / 255 * a
	b = float32(c.color.B) / 255 * a
	return r, g, b, a
}

func (c *Context) drawTriangles(vs []ebiten.Vertex, is []uint16) {
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	c.target.DrawTriangles(vs, is, whiteSubImage, op)
}

// Fill implements canvas.Context.
func (c *Context) Fill() {
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.premultiplied()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.drawTriangles(vs, is)
	c.resetPath()
}

// Stroke implements canvas.Context.
func (c *Context) Stroke() {
	op := &vector.StrokeOptions{Width: c.lineWidth}
	vs, is := c.path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	r, g, b, a := c.premultiplied()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.drawTriangles(vs, is)
	c.resetPath()
}

// GradientFill implements canvas.Context. The gradient is evaluated
// per vertex by projecting onto the gradient axis, which is exact for
// the rectangles the renderers fill.
func (c *Context) GradientFill(g canvas.Gradient) {
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	dx := g.X2 - g.X1
	dy := g.Y2 - g.Y1
	lenSq := dx*dx + dy*dy
	for i := range vs {
		t := 0.0
		if lenSq > 0 {
			t = ((float64(vs[i].DstX)-g.X1)*dx + (float64(vs[i].DstY)-g.Y1)*dy) / lenSq
			t = math.Min(1, math.Max(0, t))
		}
		col := lerpNRGBA(g.Start, g.End, t)
		a := float32(col.A) / 255
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 255 * a
		vs[i].ColorG = float32(col.G) / 255 * a
		vs[i].ColorB = float32(col.B) / 255 * a
		vs[i].ColorA = a
	}
	c.drawTriangles(vs, is)
	c.resetPath()
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// Clip implements canvas.Context. The current path becomes a mask;
// drawing is redirected to an offscreen layer which Restore composites
// through the mask.
func (c *Context) Clip() {
	bounds := c.dst.Bounds()
	mask := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = 1
		vs[i].ColorG = 1
		vs[i].ColorB = 1
		vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	mask.DrawTriangles(vs, is, whiteSubImage, op)
	c.resetPath()

	layer := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	c.clips = append(c.clips, clipLayer{layer: layer, mask: mask})
	c.target = layer
	if len(c.pending) > 0 {
		c.pending[len(c.pending)-1]++
	}
}

// Save implements canvas.Context. Only clip state is stacked; color
// and line width are always set right before use by the renderers.
func (c *Context) Save() {
	c.pending = append(c.pending, 0)
}

// Restore implements canvas.Context. Every clip pushed since the
// matching Save is masked and composited back down.
func (c *Context) Restore() {
	if len(c.pending) == 0 {
		return
	}
	count := c.pending[len(c.pending)-1]
	c.pending = c.pending[:len(c.pending)-1]
	for ; count > 0; count-- {
		n := len(c.clips) - 1
		top := c.clips[n]
		c.clips = c.clips[:n]

		maskOp := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
		top.layer.DrawImage(top.mask, maskOp)

		below := c.dst
		if n > 0 {
			below = c.clips[n-1].layer
		}
		below.DrawImage(top.layer, nil)
		top.layer.Deallocate()
		top.mask.Deallocate()
		c.target = below
	}
}
