package canvas

// ThreeImageSurface composes a left cap, a horizontally stretched
// middle, and a right cap into one drawable strip. Used for emblem and
// stat-panel backgrounds whose width is only known at layout time.
type ThreeImageSurface struct {
	Left   Image
	Middle Image
	Right  Image
}

// NewThreeImageSurface builds a strip from its three parts. All parts
// are expected to share a height.
func NewThreeImageSurface(left, middle, right Image) ThreeImageSurface {
	return ThreeImageSurface{Left: left, Middle: middle, Right: right}
}

// Height returns the strip height (the left cap's height).
func (s ThreeImageSurface) Height() float64 {
	return s.Left.Height()
}

// Draw renders the strip at its natural height. The middle section is
// stretched to cover width minus the two caps; a width smaller than the
// caps collapses the middle to zero rather than overlapping the caps.
func (s ThreeImageSurface) Draw(ctx Context, x, y, width float64) {
	leftWidth := s.Left.Width()
	rightWidth := s.Right.Width()
	middleWidth := width - leftWidth - rightWidth
	if middleWidth < 0 {
		middleWidth = 0
	}
	s.Left.Draw(ctx, x, y, leftWidth, s.Left.Height())
	s.Middle.Draw(ctx, x+leftWidth, y, middleWidth, s.Middle.Height())
	s.Right.Draw(ctx, x+leftWidth+middleWidth, y, rightWidth, s.Right.Height())
}
