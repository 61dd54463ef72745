package canvas

import "image/color"

// FontFamily selects one of the application text roles. The concrete
// typeface behind each role belongs to the surface implementation.
type FontFamily int

const (
	FontFamilyDefault FontFamily = iota
	FontFamilyTitle
	FontFamilyInfo
	FontFamilyDesc
)

// FontSpec selects a font for subsequent text boxes. Scale is relative
// to the platform default size (1.0 == default).
type FontSpec struct {
	Scale  float64
	Family FontFamily
	Bold   bool
}

// Font exposes the metrics the layout code needs.
type Font interface {
	LineHeight() float64
	Ascent() float64
}

// WrapStyle controls how a TextBox handles overflow.
type WrapStyle int

const (
	WrapWord WrapStyle = iota
	// WrapTruncatedChar keeps one line and truncates at a character
	// boundary with a trailing ellipsis.
	WrapTruncatedChar
)

// TextAlignment is the horizontal alignment of a TextBox.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignCenter
)

// TextStyle overrides per-run attributes inside a TextBox. A nil Color
// inherits the layout manager's current text color.
type TextStyle struct {
	Color     *color.NRGBA
	Underline bool
}

// TextBox is a laid-out run of rich text. Boxes are created by a
// LayoutManager with the manager's current font/color/shadow and then
// sized, drawn, or queried.
type TextBox interface {
	// Append adds a styled run to the box.
	Append(s string, style TextStyle)
	SetWrapStyle(ws WrapStyle)
	SetWidth(width float64)
	SetAlignment(a TextAlignment)
	// Size returns the rendered size at the current width constraint.
	Size() (width, height float64)
	Font() Font
	Draw(ctx Context, x, y, width, height float64)
	// CharAt maps a point (relative to the box origin) to a rune index,
	// or ok=false when the point is outside the text.
	CharAt(x, y float64) (index int, ok bool)
}

// Button is a drawable push-button surface (label, optional icon,
// pressed art). It satisfies Image so it can be packed into layouts.
type Button interface {
	Image
	SetIcon(icon Image)
}

// LayoutManager carries the mutable text state (font, color, shadow)
// used to mint TextBoxes and Buttons. It is owned by the host toolkit
// and handed to renderers for the duration of one call.
type LayoutManager interface {
	SetFont(spec FontSpec)
	CurrentFont() Font
	SetTextColor(c color.NRGBA)
	// SetTextShadow sets the shadow for subsequent text boxes; nil
	// clears it.
	SetTextShadow(s *Shadow)
	TextBox(s string) TextBox
	Button(label string, pressed bool) Button
}
