package cellpack

import (
	"github.com/mediashelf/mediashelf/canvas"
)

// DrawFunc paints one element into its computed rectangle.
type DrawFunc func(ctx canvas.Context, x, y, width, height float64)

type element struct {
	rect    LayoutRect
	draw    DrawFunc
	hotspot string
}

// Layout is an ordered collection of positioned, drawable, optionally
// hit-testable regions. It is built fresh for every size, hit-test or
// render call and discarded afterwards.
type Layout struct {
	elements []*element
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// Add appends an element. The returned rect pointer stays live: callers
// may adjust geometry after adding (e.g. backgrounds whose width is
// only known once their content is placed).
func (l *Layout) Add(x, y, width, height float64, draw DrawFunc) *LayoutRect {
	return l.AddHotspot("", x, y, width, height, draw)
}

// AddHotspot appends an element tagged with a hotspot identifier. An
// empty hotspot behaves like Add.
func (l *Layout) AddHotspot(hotspot string, x, y, width, height float64, draw DrawFunc) *LayoutRect {
	el := &element{
		rect:    LayoutRect{X: x, Y: y, Width: width, Height: height},
		draw:    draw,
		hotspot: hotspot,
	}
	l.elements = append(l.elements, el)
	return &el.rect
}

// AddRect appends an element covering the given rect.
func (l *Layout) AddRect(rect LayoutRect, draw DrawFunc) *LayoutRect {
	return l.AddHotspot("", rect.X, rect.Y, rect.Width, rect.Height, draw)
}

// AddRectHotspot appends a hotspot-tagged element covering the rect.
func (l *Layout) AddRectHotspot(hotspot string, rect LayoutRect, draw DrawFunc) *LayoutRect {
	return l.AddHotspot(hotspot, rect.X, rect.Y, rect.Width, rect.Height, draw)
}

// AddImage appends an image at its natural size.
func (l *Layout) AddImage(img canvas.Image, x, y float64) *LayoutRect {
	return l.AddImageHotspot("", img, x, y)
}

// AddImageHotspot appends a hotspot-tagged image at its natural size.
// The image is drawn scaled into the element rect, so adjusting the
// rect after adding rescales the image.
func (l *Layout) AddImageHotspot(hotspot string, img canvas.Image, x, y float64) *LayoutRect {
	draw := func(ctx canvas.Context, x, y, width, height float64) {
		img.Draw(ctx, x, y, width, height)
	}
	return l.AddHotspot(hotspot, x, y, img.Width(), img.Height(), draw)
}

// AddTextLine appends a single line of text. The element height is the
// box's line height; the box is drawn constrained to the given width.
func (l *Layout) AddTextLine(tb canvas.TextBox, x, y, width float64) *LayoutRect {
	return l.AddTextLineHotspot("", tb, x, y, width)
}

// AddTextLineHotspot appends a hotspot-tagged single line of text.
func (l *Layout) AddTextLineHotspot(hotspot string, tb canvas.TextBox, x, y, width float64) *LayoutRect {
	return l.AddHotspot(hotspot, x, y, width, tb.Font().LineHeight(), tb.Draw)
}

// Merge splices another layout's elements in, preserving their order.
func (l *Layout) Merge(other *Layout) {
	l.elements = append(l.elements, other.elements...)
}

// LastRect returns the rect of the most recently added element, or nil
// for an empty layout.
func (l *Layout) LastRect() *LayoutRect {
	if len(l.elements) == 0 {
		return nil
	}
	return &l.elements[len(l.elements)-1].rect
}

// CenterY shifts every element by the same delta so the group's
// combined vertical extent is centered between top and bottom. Calling
// it a second time shifts again; callers center a group exactly once.
func (l *Layout) CenterY(top, bottom float64) {
	if len(l.elements) == 0 {
		return
	}
	minY := l.elements[0].rect.Y
	maxBottom := l.elements[0].rect.Bottom()
	for _, el := range l.elements[1:] {
		minY = min(minY, el.rect.Y)
		maxBottom = max(maxBottom, el.rect.Bottom())
	}
	delta := ((top + bottom) - (minY + maxBottom)) / 2
	for _, el := range l.elements {
		el.rect.Y += delta
	}
}

// FindHotspot returns the hotspot under (x, y) along with the point in
// the element's local coordinates. When hotspot rects overlap, the most
// recently added one wins: later elements draw on top and should
// intercept input first.
func (l *Layout) FindHotspot(x, y float64) (hotspot string, localX, localY float64, ok bool) {
	for i := len(l.elements) - 1; i >= 0; i-- {
		el := l.elements[i]
		if el.hotspot != "" && el.rect.Contains(x, y) {
			return el.hotspot, x - el.rect.X, y - el.rect.Y, true
		}
	}
	return "", 0, 0, false
}

// Draw invokes every element's draw callback in insertion order, so
// later elements paint over earlier ones. Dimensions that went negative
// during computation are clamped to zero here.
func (l *Layout) Draw(ctx canvas.Context) {
	for _, el := range l.elements {
		if el.draw == nil {
			continue
		}
		el.draw(ctx, el.rect.X, el.rect.Y, max(0, el.rect.Width), max(0, el.rect.Height))
	}
}
