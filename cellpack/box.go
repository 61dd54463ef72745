package cellpack

import (
	"github.com/mediashelf/mediashelf/canvas"
)

// Packer is a stateless layout recipe: given a box it adds positioned
// elements to a Layout. Packers nest, so a cell can be described as a
// tree and flattened into one Layout at the end.
type Packer interface {
	// Size returns the packer's natural size.
	Size() (width, height float64)
	// PackInto adds the packer's elements to the layout inside the box.
	PackInto(l *Layout, x, y, width, height float64)
}

// PackedImage packs a canvas image at its natural size, scaled up to
// fill the box it is given.
type PackedImage struct {
	Image canvas.Image
}

// Size implements Packer.
func (p PackedImage) Size() (float64, float64) {
	return p.Image.Width(), p.Image.Height()
}

// PackInto implements Packer.
func (p PackedImage) PackInto(l *Layout, x, y, width, height float64) {
	rect := l.AddImage(p.Image, x, y)
	rect.Width = width
	rect.Height = height
}

// TruncatedTextLine packs a single line of text that truncates with an
// ellipsis when the box is narrower than the text.
type TruncatedTextLine struct {
	TextBox  canvas.TextBox
	MinWidth float64
}

// Size implements Packer. The width is only the configured minimum so
// the line can shrink; pack it with expand to hand it the leftovers.
func (t TruncatedTextLine) Size() (float64, float64) {
	return t.MinWidth, t.TextBox.Font().LineHeight()
}

// PackInto implements Packer.
func (t TruncatedTextLine) PackInto(l *Layout, x, y, width, height float64) {
	t.TextBox.SetWrapStyle(canvas.WrapTruncatedChar)
	t.TextBox.SetWidth(width)
	l.AddTextLine(t.TextBox, x, y, width)
}

// Hotspot tags the area a child packer occupies as interactive.
type Hotspot struct {
	Name  string
	Child Packer
}

// Size implements Packer.
func (h Hotspot) Size() (float64, float64) {
	return h.Child.Size()
}

// PackInto implements Packer. The hotspot region is added before the
// child, so a hotspot-tagged child still wins the reverse-order lookup.
func (h Hotspot) PackInto(l *Layout, x, y, width, height float64) {
	l.AddHotspot(h.Name, x, y, width, height, nil)
	h.Child.PackInto(l, x, y, width, height)
}

// Alignment positions a child inside a larger box using fractional
// anchors. XScale/YScale control how much of the extra space the child
// absorbs (0 keeps the natural size, 1 fills the box).
type Alignment struct {
	Child     Packer
	XAlign    float64
	YAlign    float64
	XScale    float64
	YScale    float64
	MinWidth  float64
	MinHeight float64
}

// Size implements Packer.
func (a Alignment) Size() (float64, float64) {
	w, h := a.Child.Size()
	return max(w, a.MinWidth), max(h, a.MinHeight)
}

// PackInto implements Packer.
func (a Alignment) PackInto(l *Layout, x, y, width, height float64) {
	childWidth, childHeight := a.Child.Size()
	w := childWidth + a.XScale*max(0, width-childWidth)
	h := childHeight + a.YScale*max(0, height-childHeight)
	a.Child.PackInto(l, x+a.XAlign*(width-w), y+a.YAlign*(height-h), w, h)
}

// AlignMiddle wraps a packer so it is vertically centered at its
// natural height.
func AlignMiddle(child Packer) Alignment {
	return Alignment{Child: child, YAlign: 0.5, XScale: 1}
}

// Background wraps a child with a margin and an optional paint callback
// drawn behind it.
type Background struct {
	Child  Packer
	Margin [4]float64 // top, right, bottom, left
	Draw   DrawFunc
}

// Size implements Packer.
func (b Background) Size() (float64, float64) {
	w, h := b.Child.Size()
	return w + b.Margin[1] + b.Margin[3], h + b.Margin[0] + b.Margin[2]
}

// PackInto implements Packer.
func (b Background) PackInto(l *Layout, x, y, width, height float64) {
	if b.Draw != nil {
		l.Add(x, y, width, height, b.Draw)
	}
	b.Child.PackInto(l, x+b.Margin[3], y+b.Margin[0],
		width-b.Margin[1]-b.Margin[3], height-b.Margin[0]-b.Margin[2])
}

type hboxChild struct {
	packer Packer
	expand bool
}

// HBox lays out a horizontal run of packers with fixed spacing. At most
// the children marked expand grow to absorb leftover width; everyone
// else keeps their natural width. Children are packed at full height.
type HBox struct {
	Spacing  float64
	children []hboxChild
}

// NewHBox returns an empty HBox with the given spacing.
func NewHBox(spacing float64) *HBox {
	return &HBox{Spacing: spacing}
}

// Pack appends a child.
func (b *HBox) Pack(p Packer, expand bool) {
	b.children = append(b.children, hboxChild{packer: p, expand: expand})
}

// PackSpace appends fixed empty space.
func (b *HBox) PackSpace(width float64) {
	b.Pack(spacer{width: width}, false)
}

// Size implements Packer.
func (b *HBox) Size() (float64, float64) {
	var width, height float64
	for i, child := range b.children {
		if i > 0 {
			width += b.Spacing
		}
		w, h := child.packer.Size()
		width += w
		height = max(height, h)
	}
	return width, height
}

// PackInto implements Packer.
func (b *HBox) PackInto(l *Layout, x, y, width, height float64) {
	natural, _ := b.Size()
	extra := max(0, width-natural)
	expandCount := 0
	for _, child := range b.children {
		if child.expand {
			expandCount++
		}
	}
	for i, child := range b.children {
		if i > 0 {
			x += b.Spacing
		}
		w, _ := child.packer.Size()
		if child.expand {
			// the last expander takes the rounding remainder
			share := extra / float64(expandCount)
			w += share
			extra -= share
			expandCount--
		}
		child.packer.PackInto(l, x, y, w, height)
		x += w
	}
}

// Layout flattens the packer tree into a fresh Layout covering the box.
func (b *HBox) Layout(width, height float64) *Layout {
	l := NewLayout()
	b.PackInto(l, 0, 0, width, height)
	return l
}

// FindHotspot lays the box out at the given size and hit-tests it.
func (b *HBox) FindHotspot(x, y, width, height float64) (string, float64, float64, bool) {
	return b.Layout(width, height).FindHotspot(x, y)
}

type spacer struct {
	width float64
}

func (s spacer) Size() (float64, float64) { return s.width, 0 }

func (s spacer) PackInto(*Layout, float64, float64, float64, float64) {}
