package style

import (
	"image/color"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/model"
)

// extraInfoDrawer lays out and draws the line below the item title:
// date, duration, size and format, each followed by a thin separator.
// Fields with no value are skipped, so the line never ends in a
// dangling separator gap.
type extraInfoDrawer struct {
	separatorColor color.NRGBA
	textboxes      []canvas.TextBox
	height         float64
}

func (d *extraInfoDrawer) setup(info *model.ItemInfo, lm canvas.LayoutManager, separatorColor color.NRGBA) {
	d.separatorColor = separatorColor
	d.textboxes = d.textboxes[:0]
	for _, attr := range []string{info.DisplayDate, info.DisplayDuration,
		info.DisplaySize, info.FileFormat} {
		if attr != "" {
			d.textboxes = append(d.textboxes, lm.TextBox(attr))
		}
	}
	d.height = lm.CurrentFont().LineHeight()
}

// reset drops the textboxes so no state leaks into the next call.
func (d *extraInfoDrawer) reset() {
	d.textboxes = nil
}

func (d *extraInfoDrawer) draw(ctx canvas.Context, x, y, width, height float64) {
	for _, tb := range d.textboxes {
		textWidth, textHeight := tb.Size()
		tb.Draw(ctx, x, y, textWidth, textHeight)
		separatorX := float64(int(x + textWidth + 4 + 0.5))
		ctx.SetColor(d.separatorColor)
		ctx.Rectangle(separatorX, y, 1, height)
		ctx.Fill()
		x += textWidth + 8
	}
}
