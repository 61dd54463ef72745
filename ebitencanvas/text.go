package ebitencanvas

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/mediashelf/mediashelf/canvas"
)

// baseFontSize is the pixel size behind font scale 1.0.
const baseFontSize = 13.0

const ellipsis = "..."

// Font implements canvas.Font.
type Font struct {
	face *text.GoTextFace
}

// LineHeight implements canvas.Font.
func (f Font) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Ascent implements canvas.Font.
func (f Font) Ascent() float64 {
	return f.face.Metrics().HAscent
}

// LayoutManager implements canvas.LayoutManager with the gofont
// typefaces. One regular and one bold face source serve every font
// family role; the roles only differ in size and weight here.
type LayoutManager struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	spec   canvas.FontSpec
	color  color.NRGBA
	shadow *canvas.Shadow
}

// NewLayoutManager parses the embedded typefaces.
func NewLayoutManager() (*LayoutManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	return &LayoutManager{regular: regular, bold: bold}, nil
}

func (lm *LayoutManager) face() *text.GoTextFace {
	scale := lm.spec.Scale
	if scale == 0 {
		scale = 1
	}
	source := lm.regular
	if lm.spec.Bold {
		source = lm.bold
	}
	return &text.GoTextFace{Source: source, Size: baseFontSize * scale}
}

// SetFont implements canvas.LayoutManager.
func (lm *LayoutManager) SetFont(spec canvas.FontSpec) { lm.spec = spec }

// CurrentFont implements canvas.LayoutManager.
func (lm *LayoutManager) CurrentFont() canvas.Font { return Font{face: lm.face()} }

// SetTextColor implements canvas.LayoutManager.
func (lm *LayoutManager) SetTextColor(c color.NRGBA) { lm.color = c }

// SetTextShadow implements canvas.LayoutManager.
func (lm *LayoutManager) SetTextShadow(s *canvas.Shadow) { lm.shadow = s }

// TextBox implements canvas.LayoutManager.
func (lm *LayoutManager) TextBox(s string) canvas.TextBox {
	tb := &TextBox{
		face:      lm.face(),
		baseColor: lm.color,
		shadow:    lm.shadow,
	}
	tb.Append(s, canvas.TextStyle{})
	return tb
}

// Button implements canvas.LayoutManager.
func (lm *LayoutManager) Button(label string, pressed bool) canvas.Button {
	return &Button{label: label, face: lm.face(), pressed: pressed}
}

type styledSpan struct {
	start, end int // rune offsets
	color      *color.NRGBA
	underline  bool
}

// TextBox implements canvas.TextBox: styled runs over a single face,
// wrapped or truncated against a width constraint at draw time.
type TextBox struct {
	face      *text.GoTextFace
	baseColor color.NRGBA
	shadow    *canvas.Shadow

	runes []rune
	spans []styledSpan

	width float64 // 0 means unconstrained
	wrap  canvas.WrapStyle
	align canvas.TextAlignment
}

// Append implements canvas.TextBox.
func (tb *TextBox) Append(s string, style canvas.TextStyle) {
	if s == "" {
		return
	}
	start := len(tb.runes)
	tb.runes = append(tb.runes, []rune(s)...)
	tb.spans = append(tb.spans, styledSpan{
		start:     start,
		end:       len(tb.runes),
		color:     style.Color,
		underline: style.Underline,
	})
}

// SetWrapStyle implements canvas.TextBox.
func (tb *TextBox) SetWrapStyle(ws canvas.WrapStyle) { tb.wrap = ws }

// SetWidth implements canvas.TextBox.
func (tb *TextBox) SetWidth(width float64) { tb.width = width }

// SetAlignment implements canvas.TextBox.
func (tb *TextBox) SetAlignment(a canvas.TextAlignment) { tb.align = a }

// Font implements canvas.TextBox.
func (tb *TextBox) Font() canvas.Font { return Font{face: tb.face} }

func (tb *TextBox) advance(s string) float64 {
	return text.Advance(s, tb.face)
}

// line is one display line: a rune range into the box plus an optional
// trailing ellipsis that belongs to no rune.
type line struct {
	start, end int
	ellipsis   bool
}

func (tb *TextBox) lineText(l line) string {
	s := string(tb.runes[l.start:l.end])
	if l.ellipsis {
		s += ellipsis
	}
	return s
}

// constraint returns the width the box lays out against: an explicit
// SetWidth wins, otherwise the width of the rectangle being drawn
// into. Boxes packed through a layout only ever see the latter.
func (tb *TextBox) constraint(drawWidth float64) float64 {
	if tb.width > 0 {
		return tb.width
	}
	return drawWidth
}

func (tb *TextBox) lines() []line { return tb.linesAt(tb.width) }

func (tb *TextBox) linesAt(width float64) []line {
	if tb.wrap == canvas.WrapTruncatedChar {
		return []line{tb.truncate(0, len(tb.runes), width)}
	}
	var lines []line
	start := 0
	for i, r := range tb.runes {
		if r == '\n' {
			lines = append(lines, tb.wrapWords(start, i, width)...)
			start = i + 1
		}
	}
	return append(lines, tb.wrapWords(start, len(tb.runes), width)...)
}

// truncate fits [start, end) on one line, chopping at a character
// boundary with a trailing ellipsis. Binary search over rune prefixes,
// needed because the face is proportional.
func (tb *TextBox) truncate(start, end int, width float64) line {
	if width <= 0 || tb.advance(string(tb.runes[start:end])) <= width {
		return line{start: start, end: end}
	}
	lo, hi := start, end
	best := start
	for lo <= hi {
		mid := (lo + hi) / 2
		if tb.advance(string(tb.runes[start:mid])+ellipsis) <= width {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return line{start: start, end: best, ellipsis: true}
}

// wrapWords greedily word-wraps [start, end) against the width
// constraint. A word longer than the whole line goes on its own line
// overflowing, matching ordinary word-wrap behavior.
func (tb *TextBox) wrapWords(start, end int, width float64) []line {
	if width <= 0 {
		return []line{{start: start, end: end}}
	}
	var lines []line
	lineStart := start
	lastSpace := -1
	for i := start; i < end; i++ {
		if tb.runes[i] == ' ' {
			lastSpace = i
			continue
		}
		if tb.advance(string(tb.runes[lineStart:i+1])) > width && lastSpace > lineStart {
			lines = append(lines, line{start: lineStart, end: lastSpace})
			lineStart = lastSpace + 1
			lastSpace = -1
		}
	}
	return append(lines, line{start: lineStart, end: end})
}

// Size implements canvas.TextBox.
func (tb *TextBox) Size() (float64, float64) {
	lines := tb.lines()
	var width float64
	for _, l := range lines {
		width = max(width, tb.advance(tb.lineText(l)))
	}
	return width, Font{face: tb.face}.LineHeight() * float64(len(lines))
}

// Draw implements canvas.TextBox.
func (tb *TextBox) Draw(ctx canvas.Context, x, y, width, height float64) {
	ec, ok := ctx.(*Context)
	if !ok {
		return
	}
	lineHeight := Font{face: tb.face}.LineHeight()
	lineY := y
	for _, l := range tb.linesAt(tb.constraint(width)) {
		tb.drawLine(ec, l, x, lineY, width)
		lineY += lineHeight
	}
}

func (tb *TextBox) drawLine(ec *Context, l line, x, y, width float64) {
	lineWidth := tb.advance(tb.lineText(l))
	penX := x
	switch tb.align {
	case canvas.AlignRight:
		penX = x + width - lineWidth
	case canvas.AlignCenter:
		penX = x + (width-lineWidth)/2
	}
	for _, span := range tb.spans {
		segStart := max(span.start, l.start)
		segEnd := min(span.end, l.end)
		if segStart >= segEnd {
			continue
		}
		seg := string(tb.runes[segStart:segEnd])
		if l.ellipsis && segEnd == l.end {
			seg += ellipsis
		}
		penX = tb.drawSegment(ec, span, seg, penX, y)
	}
}

func (tb *TextBox) drawSegment(ec *Context, span styledSpan, seg string, penX, y float64) float64 {
	col := tb.baseColor
	if span.color != nil {
		col = *span.color
	}
	if tb.shadow != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(penX+tb.shadow.OffsetX, y+tb.shadow.OffsetY)
		op.ColorScale.ScaleWithColor(tb.shadow.Color)
		op.ColorScale.ScaleAlpha(float32(tb.shadow.Opacity))
		text.Draw(ec.Target(), seg, tb.face, op)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(penX, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(ec.Target(), seg, tb.face, op)

	advance := tb.advance(seg)
	if span.underline {
		baseline := y + Font{face: tb.face}.Ascent() + 1
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(advance, 1)
		op.GeoM.Translate(penX, baseline)
		op.ColorScale.ScaleWithColor(col)
		ec.Target().DrawImage(whiteSubImage, op)
	}
	return penX + advance
}

// CharAt implements canvas.TextBox.
func (tb *TextBox) CharAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	lines := tb.lines()
	lineHeight := Font{face: tb.face}.LineHeight()
	index := int(y / lineHeight)
	if index >= len(lines) {
		return 0, false
	}
	l := lines[index]
	// alignment offsets are not applied here; the boxes that get
	// hit-tested (descriptions) are left aligned
	for i := l.start; i < l.end; i++ {
		if tb.advance(string(tb.runes[l.start:i+1])) > x {
			return i, true
		}
	}
	return 0, false
}

// Button implements canvas.Button as a small capsule with a label and
// an optional leading icon.
type Button struct {
	label   string
	face    *text.GoTextFace
	pressed bool
	icon    canvas.Image
}

const (
	buttonPadX      = 9
	buttonIconPad   = 4
	buttonMinHeight = 18
)

var (
	buttonTopColor     = color.NRGBA{R: 0xf6, G: 0xf6, B: 0xf6, A: 0xff}
	buttonBottomColor  = color.NRGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	buttonPressedTop   = color.NRGBA{R: 0xc4, G: 0xc4, B: 0xc4, A: 0xff}
	buttonPressedBot   = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	buttonBorderColor  = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	buttonLabelColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonPressedLabel = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

// SetIcon implements canvas.Button.
func (b *Button) SetIcon(icon canvas.Image) { b.icon = icon }

// Width implements canvas.Image.
func (b *Button) Width() float64 {
	width := buttonPadX*2 + text.Advance(b.label, b.face)
	if b.icon != nil {
		width += b.icon.Width() + buttonIconPad
	}
	return width
}

// Height implements canvas.Image.
func (b *Button) Height() float64 {
	return max(buttonMinHeight, Font{face: b.face}.LineHeight()+4)
}

// Draw implements canvas.Image.
func (b *Button) Draw(ctx canvas.Context, x, y, width, height float64) {
	top, bottom, label := buttonTopColor, buttonBottomColor, buttonLabelColor
	if b.pressed {
		top, bottom, label = buttonPressedTop, buttonPressedBot, buttonPressedLabel
	}
	capsulePath(ctx, x, y, width, height)
	g := canvas.NewGradient(x, y, x, y+height)
	g.Start = top
	g.End = bottom
	ctx.GradientFill(g)
	capsulePath(ctx, x+0.5, y+0.5, width-1, height-1)
	ctx.SetColor(buttonBorderColor)
	ctx.SetLineWidth(1)
	ctx.Stroke()

	penX := x + buttonPadX
	if b.icon != nil {
		iconY := y + (height-b.icon.Height())/2
		b.icon.Draw(ctx, penX, iconY, b.icon.Width(), b.icon.Height())
		penX += b.icon.Width() + buttonIconPad
	}
	ec, ok := ctx.(*Context)
	if !ok {
		return
	}
	font := Font{face: b.face}
	textY := y + (height-font.LineHeight())/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(penX, textY)
	op.ColorScale.ScaleWithColor(label)
	text.Draw(ec.Target(), b.label, b.face, op)
}

// DrawFraction implements canvas.Image.
func (b *Button) DrawFraction(ctx canvas.Context, x, y, width, height, fraction float64) {
	b.Draw(ctx, x, y, width, height)
}

// capsulePath traces a rounded-end rectangle clockwise.
func capsulePath(ctx canvas.Context, x, y, width, height float64) {
	radius := height / 2
	inner := width - height
	if inner < 0 {
		inner = 0
	}
	ctx.MoveTo(x+radius, y)
	ctx.RelLineTo(inner, 0)
	ctx.Arc(x+width-radius, y+radius, radius, -math.Pi/2, math.Pi/2)
	ctx.RelLineTo(-inner, 0)
	ctx.Arc(x+radius, y+radius, radius, math.Pi/2, -math.Pi/2)
}
