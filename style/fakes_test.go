package style

import (
	"image/color"

	"github.com/mediashelf/mediashelf/canvas"
)

// Deterministic fake text metrics: every glyph is fakeCharWidth wide
// and every line is fakeLineHeight tall, both scaled by the font scale.
const (
	fakeCharWidth  = 7.0
	fakeLineHeight = 16.0
)

type fakeFont struct {
	scale float64
}

func (f fakeFont) LineHeight() float64 { return fakeLineHeight * f.scale }

func (f fakeFont) Ascent() float64 { return 12 * f.scale }

type fakeTextBox struct {
	font      fakeFont
	text      []rune
	width     float64 // 0 means unconstrained
	wrap      canvas.WrapStyle
	alignment canvas.TextAlignment

	// drawnWidths records the width of every Draw call, so tests can
	// check the layout hands the box its width constraint.
	drawnWidths []float64
}

func (tb *fakeTextBox) Append(s string, style canvas.TextStyle) {
	tb.text = append(tb.text, []rune(s)...)
}

func (tb *fakeTextBox) SetWrapStyle(ws canvas.WrapStyle) { tb.wrap = ws }

func (tb *fakeTextBox) SetWidth(width float64) { tb.width = width }

func (tb *fakeTextBox) SetAlignment(a canvas.TextAlignment) { tb.alignment = a }

func (tb *fakeTextBox) Size() (float64, float64) {
	w := fakeCharWidth * tb.font.scale * float64(len(tb.text))
	if tb.width > 0 && w > tb.width {
		w = tb.width
	}
	return w, tb.font.LineHeight()
}

func (tb *fakeTextBox) Font() canvas.Font { return tb.font }

func (tb *fakeTextBox) Draw(ctx canvas.Context, x, y, width, height float64) {
	tb.drawnWidths = append(tb.drawnWidths, width)
}

func (tb *fakeTextBox) CharAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 || y >= tb.font.LineHeight() {
		return 0, false
	}
	index := int(x / (fakeCharWidth * tb.font.scale))
	if index >= len(tb.text) {
		return 0, false
	}
	return index, true
}

type fakeImage struct {
	name          string
	width, height float64
}

func (f fakeImage) Width() float64 { return f.width }

func (f fakeImage) Height() float64 { return f.height }

func (f fakeImage) Draw(ctx canvas.Context, x, y, width, height float64) {}

func (f fakeImage) DrawFraction(ctx canvas.Context, x, y, width, height, fraction float64) {}

type fakeButton struct {
	fakeImage
	pressed bool
	icon    canvas.Image
}

func (b *fakeButton) SetIcon(icon canvas.Image) {
	b.icon = icon
	b.width += icon.Width()
}

// fakePool hands out fixed-size images named after their path, so
// tests can tell which asset ended up where.
type fakePool struct{}

func (fakePool) Surface(path string) canvas.Image {
	return fakeImage{name: path, width: 16, height: 16}
}

func (fakePool) SurfaceScaled(path string, width, height float64) canvas.Image {
	return fakeImage{name: path, width: width, height: height}
}

type fakeLM struct {
	spec   canvas.FontSpec
	color  color.NRGBA
	shadow *canvas.Shadow

	// boxes keeps every minted text box for later inspection.
	boxes []*fakeTextBox
}

func (lm *fakeLM) scale() float64 {
	if lm.spec.Scale == 0 {
		return 1
	}
	return lm.spec.Scale
}

func (lm *fakeLM) SetFont(spec canvas.FontSpec) { lm.spec = spec }

func (lm *fakeLM) CurrentFont() canvas.Font { return fakeFont{scale: lm.scale()} }

func (lm *fakeLM) SetTextColor(c color.NRGBA) { lm.color = c }

func (lm *fakeLM) SetTextShadow(s *canvas.Shadow) { lm.shadow = s }

func (lm *fakeLM) TextBox(s string) canvas.TextBox {
	tb := &fakeTextBox{font: fakeFont{scale: lm.scale()}, text: []rune(s)}
	lm.boxes = append(lm.boxes, tb)
	return tb
}

func (lm *fakeLM) Button(label string, pressed bool) canvas.Button {
	width := 20 + fakeCharWidth*lm.scale()*float64(len([]rune(label)))
	return &fakeButton{
		fakeImage: fakeImage{name: "button:" + label, width: width, height: 18},
		pressed:   pressed,
	}
}

type rectCall struct {
	x, y, width, height float64
}

// recordContext records the paint calls the geometry tests care about
// and counts the rest.
type recordContext struct {
	current   color.NRGBA
	rects     []rectCall
	fills     []color.NRGBA
	strokes   []color.NRGBA
	gradients []canvas.Gradient
	clips     int
	saves     int
	restores  int
}

func (c *recordContext) Rectangle(x, y, width, height float64) {
	c.rects = append(c.rects, rectCall{x, y, width, height})
}

func (c *recordContext) MoveTo(x, y float64) {}

func (c *recordContext) LineTo(x, y float64) {}

func (c *recordContext) RelLineTo(dx, dy float64) {}

func (c *recordContext) Arc(cx, cy, radius, startAngle, endAngle float64) {}

func (c *recordContext) ArcNegative(cx, cy, radius, startAngle, endAngle float64) {}

func (c *recordContext) SetColor(col color.NRGBA) { c.current = col }

func (c *recordContext) SetColorAlpha(col color.NRGBA, alpha float64) { c.current = col }

func (c *recordContext) SetLineWidth(width float64) {}

func (c *recordContext) Fill() { c.fills = append(c.fills, c.current) }

func (c *recordContext) Stroke() { c.strokes = append(c.strokes, c.current) }

func (c *recordContext) GradientFill(g canvas.Gradient) { c.gradients = append(c.gradients, g) }

func (c *recordContext) Clip() { c.clips++ }

func (c *recordContext) Save() { c.saves++ }

func (c *recordContext) Restore() { c.restores++ }

func (c *recordContext) filledWith(col color.NRGBA) bool {
	for _, f := range c.fills {
		if f == col {
			return true
		}
	}
	return false
}
