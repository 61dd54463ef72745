package style

import (
	"image/color"
	"math"
	"strconv"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/cellpack"
	"github.com/mediashelf/mediashelf/model"
)

// Tab cell dimensions and fonts.
const (
	tabMinWidth      = 120
	tabMinIconTall   = 25
	tabMinIcon       = 16
	tabMinHeight     = 28
	tabMinHeightTall = 31
	tabTallFontScale = 1.0
	tabFontScale     = 0.85
	tabBubbleScale   = 0.77
)

var tabTextColor = rgb(0.17, 0.17, 0.17)

// bubbleFunc packs the count bubbles (or the updating throbber) at the
// trailing end of a tab.
type bubbleFunc func(r *TabRenderer, hbox *cellpack.HBox, lm canvas.LayoutManager, tab model.TabInfo)

// TabRenderer renders one sidebar tab: icon, truncated title, and
// per-kind count bubbles. The three tab kinds differ only in which
// bubbles they pack.
type TabRenderer struct {
	pool canvas.ImagePool
	// Blink highlights the tab briefly after "copy to clipboard" style
	// actions.
	Blink bool
	// UpdatingFrame is the feed-update throbber frame, -1 while idle.
	UpdatingFrame int

	bubbles bubbleFunc
}

// NewTabRenderer returns the feed-tab renderer: unwatched and
// available count bubbles, updating throbber.
func NewTabRenderer(pool canvas.ImagePool) *TabRenderer {
	return &TabRenderer{pool: pool, UpdatingFrame: -1, bubbles: feedBubbles}
}

// NewStaticTabRenderer returns the library-tab renderer: unwatched and
// downloading count bubbles.
func NewStaticTabRenderer(pool canvas.ImagePool) *TabRenderer {
	return &TabRenderer{pool: pool, UpdatingFrame: -1, bubbles: staticBubbles}
}

// NewDeviceTabRenderer returns the device-tab renderer: an eject
// hotspot for mounted devices.
func NewDeviceTabRenderer(pool canvas.ImagePool) *TabRenderer {
	return &TabRenderer{pool: pool, UpdatingFrame: -1, bubbles: deviceBubbles}
}

// Size returns the tab's minimum size.
func (r *TabRenderer) Size(lm canvas.LayoutManager, tab model.TabInfo) (float64, float64) {
	minHeight := float64(tabMinHeight)
	fontScale := tabFontScale
	if tab.Tall {
		minHeight = tabMinHeightTall
		fontScale = tabTallFontScale
	}
	lm.SetFont(canvas.FontSpec{Scale: fontScale})
	return tabMinWidth, math.Max(minHeight, lm.CurrentFont().LineHeight())
}

// Render paints the tab.
func (r *TabRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, tab model.TabInfo, selected bool, width, height float64) {
	r.layoutTab(lm, tab, selected, width, height).Draw(ctx)
}

// HotspotTest reports the hotspot under the point; only device tabs
// carry one (eject).
func (r *TabRenderer) HotspotTest(lm canvas.LayoutManager, tab model.TabInfo, x, y, width, height float64) string {
	hotspot, _, _, _ := r.layoutTab(lm, tab, false, width, height).FindHotspot(x, y)
	return hotspot
}

func (r *TabRenderer) layoutTab(lm canvas.LayoutManager, tab model.TabInfo, selected bool, width, height float64) *cellpack.Layout {
	lm.SetTextColor(tabTextColor)
	bold := false
	if selected {
		bold = true
		lm.SetTextColor(white)
		lm.SetTextShadow(&canvas.Shadow{Color: black, Opacity: 0.5, OffsetY: -1})
	}
	minIconWidth := float64(tabMinIcon)
	fontScale := tabFontScale
	if tab.Tall {
		minIconWidth = tabMinIconTall
		fontScale = tabTallFontScale
	}
	lm.SetFont(canvas.FontSpec{Scale: fontScale, Bold: bold})
	titleBox := lm.TextBox(tab.Name)
	lm.SetTextShadow(nil)

	hbox := cellpack.NewHBox(4)
	iconPath := tab.Icon
	if selected && tab.ActiveIcon != "" {
		iconPath = tab.ActiveIcon
	}
	icon := r.pool.Surface(iconPath)
	hbox.Pack(cellpack.Alignment{
		Child:    cellpack.PackedImage{Image: icon},
		YAlign:   0.5,
		MinWidth: minIconWidth,
	}, false)
	hbox.Pack(cellpack.AlignMiddle(cellpack.TruncatedTextLine{TextBox: titleBox}), true)
	lm.SetFont(canvas.FontSpec{Scale: tabBubbleScale})
	lm.SetTextColor(white)
	r.bubbles(r, hbox, lm, tab)
	hbox.PackSpace(2)

	var packer cellpack.Packer = cellpack.Alignment{Child: hbox, YAlign: 0.5, XScale: 1}
	if r.Blink {
		packer = cellpack.Background{Child: packer, Draw: drawBlinkBackground}
	}
	layout := cellpack.NewLayout()
	packer.PackInto(layout, 0, 0, width, height)
	return layout
}

func feedBubbles(r *TabRenderer, hbox *cellpack.HBox, lm canvas.LayoutManager, tab model.TabInfo) {
	if r.UpdatingFrame > -1 {
		r.packUpdating(hbox)
		return
	}
	if tab.Unwatched > 0 {
		packBubble(hbox, lm, tab.Unwatched, UnplayedColor)
	}
	if tab.Available > 0 {
		packBubble(hbox, lm, tab.Available, AvailableColor)
	}
}

func staticBubbles(r *TabRenderer, hbox *cellpack.HBox, lm canvas.LayoutManager, tab model.TabInfo) {
	if tab.Unwatched > 0 {
		packBubble(hbox, lm, tab.Unwatched, UnplayedColor)
	}
	if tab.Downloading > 0 {
		packBubble(hbox, lm, tab.Downloading, DownloadingColor)
	}
}

func deviceBubbles(r *TabRenderer, hbox *cellpack.HBox, lm canvas.LayoutManager, tab model.TabInfo) {
	if tab.Fake {
		return
	}
	if r.UpdatingFrame > -1 {
		r.packUpdating(hbox)
		return
	}
	if tab.Mounted {
		eject := r.pool.Surface("images/icon-eject.png")
		hbox.Pack(cellpack.Alignment{
			Child:    cellpack.Hotspot{Name: "eject-device", Child: cellpack.PackedImage{Image: eject}},
			YAlign:   0.5,
			MinWidth: 20,
		}, false)
	}
}

func (r *TabRenderer) packUpdating(hbox *cellpack.HBox) {
	image := r.pool.Surface("images/icon-updating-" + strconv.Itoa(r.UpdatingFrame) + ".png")
	hbox.Pack(cellpack.Alignment{
		Child:    cellpack.PackedImage{Image: image},
		YAlign:   0.5,
		MinWidth: 20,
	}, false)
}

// packBubble packs a count in a rounded pill of the given color.
func packBubble(hbox *cellpack.HBox, lm canvas.LayoutManager, count int, c color.NRGBA) {
	radius := (lm.CurrentFont().LineHeight() + 2) / 2
	background := cellpack.Background{
		Child:  textPacker{tb: lm.TextBox(strconv.Itoa(count))},
		Margin: [4]float64{1, radius, 1, radius},
		Draw:   drawBubble(c),
	}
	hbox.Pack(cellpack.AlignMiddle(background), false)
}

func drawBubble(c color.NRGBA) cellpack.DrawFunc {
	return func(ctx canvas.Context, x, y, width, height float64) {
		radius := height / 2
		innerWidth := width - radius*2
		mid := y + radius
		ctx.MoveTo(x+radius, y)
		ctx.RelLineTo(innerWidth, 0)
		ctx.Arc(x+width-radius, mid, radius, -pi/2, pi/2)
		ctx.RelLineTo(-innerWidth, 0)
		ctx.Arc(x+radius, mid, radius, pi/2, -pi/2)
		ctx.SetColor(c)
		ctx.Fill()
	}
}

func drawBlinkBackground(ctx canvas.Context, x, y, width, height float64) {
	ctx.Rectangle(x, y, width, height)
	ctx.SetColor(blinkColor)
	ctx.Fill()
}

// textPacker packs a textbox at its natural size.
type textPacker struct {
	tb canvas.TextBox
}

func (t textPacker) Size() (float64, float64) {
	return t.tb.Size()
}

func (t textPacker) PackInto(l *cellpack.Layout, x, y, width, height float64) {
	l.Add(x, y, width, height, t.tb.Draw)
}

// LowerBox draws the gradient strip under the sidebar, with a dark and
// a light hairline across its top edge.
type LowerBox struct{}

// Size returns the strip's minimum size.
func (LowerBox) Size() (float64, float64) { return 0, 63 }

// Draw paints the strip across the given area.
func (LowerBox) Draw(ctx canvas.Context, width, height float64) {
	g := canvas.NewGradient(0, 2, 0, height)
	g.Start = cssColor("#d4d4d4")
	g.End = cssColor("#a8a8a8")
	ctx.Rectangle(0, 2, width, height)
	ctx.GradientFill(g)

	ctx.SetLineWidth(1)
	ctx.MoveTo(0, 0.5)
	ctx.LineTo(width, 0.5)
	ctx.SetColor(cssColor("#585858"))
	ctx.Stroke()
	ctx.MoveTo(0, 1.5)
	ctx.LineTo(width, 1.5)
	ctx.SetColor(cssColor("#e6e6e6"))
	ctx.Stroke()
}
