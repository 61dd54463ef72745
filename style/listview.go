package style

import (
	"image/color"
	"math"
	"strconv"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/cellpack"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

// List view cell defaults.
const (
	listFontScale       = 0.82
	listButtonFontScale = 0.77
)

var listTextColor = rgb(0.17, 0.17, 0.17)

// textColumn describes one plain-text list view column.
type textColumn struct {
	value        func(info *model.ItemInfo) string
	color        color.NRGBA
	bold         bool
	rightAligned bool
	minWidth     float64
}

// textColumns maps the column identifiers of the state store to their
// renderers. Most columns are a single field lookup.
var textColumns = map[string]textColumn{
	"description": {value: func(i *model.ItemInfo) string { return i.DescriptionOneline },
		color: rgb(0.6, 0.6, 0.6)},
	"feed-name":       {value: func(i *model.ItemInfo) string { return i.FeedName }},
	"date":            {value: func(i *model.ItemInfo) string { return i.DisplayDate }},
	"length":          {value: func(i *model.ItemInfo) string { return i.DisplayDuration }},
	"eta":             {value: func(i *model.ItemInfo) string { return i.DisplayETA }, rightAligned: true},
	"torrent-details": {value: func(i *model.ItemInfo) string { return i.DisplayTorrentDetails }},
	"rate":            {value: func(i *model.ItemInfo) string { return i.DisplayRate }, rightAligned: true},
	"size":            {value: func(i *model.ItemInfo) string { return i.DisplaySize }, rightAligned: true},
	"artist":          {value: func(i *model.ItemInfo) string { return i.Artist }},
	"album":           {value: func(i *model.ItemInfo) string { return i.Album }},
	"track":           {value: func(i *model.ItemInfo) string { return i.DisplayTrack }},
	"year":            {value: func(i *model.ItemInfo) string { return i.DisplayYear }},
	"genre":           {value: func(i *model.ItemInfo) string { return i.Genre }},
	"date-added":      {value: func(i *model.ItemInfo) string { return i.DisplayDateAdded }},
	"last-played":     {value: func(i *model.ItemInfo) string { return i.DisplayLastPlayed }},
	"drm":             {value: func(i *model.ItemInfo) string { return i.DisplayDRM }},
	"file-type":       {value: func(i *model.ItemInfo) string { return i.FileFormat }},
	"show":            {value: func(i *model.ItemInfo) string { return i.Show }},
	"kind":            {value: func(i *model.ItemInfo) string { return i.DisplayKind }},
}

// TextRenderer renders a plain-text list view column. Unknown columns
// render as empty cells rather than failing.
type TextRenderer struct {
	column textColumn
}

// NewTextRenderer returns the renderer for a column identifier.
func NewTextRenderer(column string) *TextRenderer {
	c, ok := textColumns[column]
	if !ok {
		c = textColumn{value: func(*model.ItemInfo) string { return "" }}
	}
	if c.color == (color.NRGBA{}) {
		c.color = listTextColor
	}
	if c.minWidth == 0 {
		c.minWidth = 50
	}
	return &TextRenderer{column: c}
}

// NewPlaylistOrderRenderer renders an item's position in a playlist.
func NewPlaylistOrderRenderer(sorter PlaylistSorter) *TextRenderer {
	return &TextRenderer{column: textColumn{
		value:    func(i *model.ItemInfo) string { return strconv.Itoa(sorter.SortKey(i)) },
		color:    listTextColor,
		minWidth: 50,
	}}
}

// Size implements render.CellRenderer.
func (r *TextRenderer) Size(lm canvas.LayoutManager, st render.State) (float64, float64) {
	lm.SetFont(canvas.FontSpec{Scale: listFontScale, Bold: r.column.bold})
	return r.column.minWidth, lm.CurrentFont().LineHeight()
}

// HotspotTest implements render.CellRenderer; text cells are inert.
func (r *TextRenderer) HotspotTest(canvas.LayoutManager, render.State, float64, float64, float64, float64) string {
	return ""
}

// Render implements render.CellRenderer.
func (r *TextRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	layout := r.layoutAll(lm, st, width, height)
	layout.Draw(ctx)
}

func (r *TextRenderer) layoutAll(lm canvas.LayoutManager, st render.State, width, height float64) *cellpack.Layout {
	lm.SetFont(canvas.FontSpec{Scale: listFontScale, Bold: r.column.bold})
	lm.SetTextColor(r.column.color)
	tb := lm.TextBox(r.column.value(st.Info))
	tb.SetWrapStyle(canvas.WrapTruncatedChar)
	if r.column.rightAligned {
		tb.SetAlignment(canvas.AlignRight)
	}
	layout := cellpack.NewLayout()
	layout.AddTextLine(tb, 0, 0, width)
	layout.CenterY(0, height)
	return layout
}

// NameRenderer renders the title column, with a download button when
// the item is neither downloaded nor in flight.
type NameRenderer struct {
	downloadIcon canvas.Image
}

// NewNameRenderer builds the renderer and loads the download icon.
func NewNameRenderer(pool canvas.ImagePool) *NameRenderer {
	return &NameRenderer{downloadIcon: pool.Surface("images/download-arrow.png")}
}

// Size implements render.CellRenderer.
func (r *NameRenderer) Size(lm canvas.LayoutManager, st render.State) (float64, float64) {
	lm.SetFont(canvas.FontSpec{Scale: listFontScale})
	return 100, lm.CurrentFont().LineHeight()
}

// HotspotTest implements render.CellRenderer.
func (r *NameRenderer) HotspotTest(lm canvas.LayoutManager, st render.State, x, y, width, height float64) string {
	hotspot, _, _, _ := r.layoutAll(lm, st, width, height).FindHotspot(x, y)
	return hotspot
}

// Render implements render.CellRenderer.
func (r *NameRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	r.layoutAll(lm, st, width, height).Draw(ctx)
}

func (r *NameRenderer) layoutAll(lm canvas.LayoutManager, st render.State, width, height float64) *cellpack.Layout {
	layout := cellpack.NewLayout()
	textWidth := width
	if r.shouldShowDownloadButton(st.Info) {
		lm.SetFont(canvas.FontSpec{Scale: listButtonFontScale})
		button := lm.Button(downloadText, st.Hotspot == "download")
		button.SetIcon(r.downloadIcon)
		buttonX := width - button.Width()
		layout.AddImageHotspot("download", button, buttonX, 0)
		// text ends where the button starts
		textWidth = buttonX
	}
	lm.SetFont(canvas.FontSpec{Scale: listFontScale})
	lm.SetTextColor(listTextColor)
	tb := lm.TextBox(st.Info.Name)
	tb.SetWrapStyle(canvas.WrapTruncatedChar)
	layout.AddTextLine(tb, 0, 0, textWidth)
	layout.CenterY(0, height)
	return layout
}

func (r *NameRenderer) shouldShowDownloadButton(info *model.ItemInfo) bool {
	return !info.Downloaded && info.State != model.StateDownloading &&
		info.State != model.StatePaused
}

var statusButtons = []string{"pause", "resume", "cancel", "keep"}

// StatusRenderer renders the status column: a compact progress bar
// while a download is running, status text otherwise.
type StatusRenderer struct {
	buttons map[string]canvas.Image
}

// NewStatusRenderer builds the renderer and loads its button art.
func NewStatusRenderer(pool canvas.ImagePool) *StatusRenderer {
	buttons := make(map[string]canvas.Image, len(statusButtons))
	for _, name := range statusButtons {
		buttons[name] = pool.Surface("images/" + name + "-button.png")
	}
	return &StatusRenderer{buttons: buttons}
}

// Size implements render.CellRenderer.
func (r *StatusRenderer) Size(lm canvas.LayoutManager, st render.State) (float64, float64) {
	lm.SetFont(canvas.FontSpec{Scale: listFontScale})
	return 40, math.Max(20, lm.CurrentFont().LineHeight())
}

// HotspotTest implements render.CellRenderer.
func (r *StatusRenderer) HotspotTest(lm canvas.LayoutManager, st render.State, x, y, width, height float64) string {
	hotspot, _, _, _ := r.layoutAll(lm, st, width, height).FindHotspot(x, y)
	return hotspot
}

// Render implements render.CellRenderer.
func (r *StatusRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	r.layoutAll(lm, st, width, height).Draw(ctx)
}

func (r *StatusRenderer) layoutAll(lm canvas.LayoutManager, st render.State, width, height float64) *cellpack.Layout {
	info := st.Info
	inFlight := info.State == model.StateDownloading || info.State == model.StatePaused
	if inFlight && info.DownloadState() != model.DownloadStatePending {
		return r.layoutProgress(st, width, height)
	}
	return r.layoutText(lm, st, width, height)
}

func (r *StatusRenderer) layoutProgress(st render.State, width, height float64) *cellpack.Layout {
	layout := cellpack.NewLayout()
	leftButton := "pause"
	if st.Info.State != model.StateDownloading {
		leftButton = "resume"
	}
	leftRect := layout.AddImageHotspot(leftButton, r.buttons[leftButton], 0, 0)
	rightX := width - r.buttons["cancel"].Width()
	layout.AddImageHotspot("cancel", r.buttons["cancel"], rightX, 0)
	progressLeft := leftRect.Width + 2
	progressRight := rightX - 2
	progressRect := cellpack.NewLayoutRect(progressLeft, 0,
		progressRight-progressLeft, height)
	layout.AddRect(progressRect, NewItemProgressBar(st.Info).Draw)
	layout.CenterY(0, height)
	return layout
}

func (r *StatusRenderer) layoutText(lm canvas.LayoutManager, st render.State, width, height float64) *cellpack.Layout {
	layout := cellpack.NewLayout()
	text, textColor := r.calcStatusText(st.Info)
	if text != "" {
		lm.SetFont(canvas.FontSpec{Scale: listFontScale, Bold: true})
		lm.SetTextColor(textColor)
		tb := lm.TextBox(text)
		layout.AddTextLine(tb, 0, 0, width)
		r.addExtraButton(layout, st.Info, width)
	}
	layout.CenterY(0, height)
	return layout
}

func (r *StatusRenderer) calcStatusText(info *model.ItemInfo) (string, color.NRGBA) {
	dl := info.DownloadInfo
	if info.Downloaded {
		if info.IsPlayable {
			if !info.Watched {
				return "Unplayed", UnplayedColor
			}
			if info.HasExpiration() {
				return info.DisplayExpirationShort, ExpiringTextColor
			}
		}
	} else if dl != nil && dl.Rate == 0 {
		switch dl.State {
		case model.DownloadStatePaused:
			return "paused", DownloadingColor
		case model.DownloadStatePending:
			return "queued", DownloadingColor
		case model.DownloadStateFailed:
			return dl.ShortReasonFailed, DownloadingColor
		default:
			return dl.StartupActivity, DownloadingColor
		}
	} else if !info.ItemViewed {
		return "Newly Available", AvailableColor
	}
	return "", listTextColor
}

// addExtraButton right-aligns a keep or cancel button next to the
// status text, when one applies.
func (r *StatusRenderer) addExtraButton(layout *cellpack.Layout, info *model.ItemInfo, width float64) {
	var name string
	if info.HasExpiration() {
		name = "keep"
	} else if info.State == model.StateDownloading &&
		info.DownloadState() == model.DownloadStatePending {
		name = "cancel"
	} else {
		return
	}
	button := r.buttons[name]
	layout.AddImageHotspot(name, button, width-button.Width(), 0)
}
