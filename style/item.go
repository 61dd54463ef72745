package style

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/cellpack"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

// Item cell dimensions.
const (
	itemMinWidth       = 600
	itemHeight         = 147
	rightWidth         = 90
	rightWidthDownload = 115
	thumbnailWidth     = 180
	cornerRadius       = 5
	emblemHeight       = 20
	emblemTextPadStart = 4
	emblemTextPadEnd   = 20
	emblemMarginRight  = 12
)

// Outer cell padding and padding inside the background art. The
// background image extends past its rect so it can draw shadows.
var (
	itemPadding       = [4]float64{15, 15, 5, 5} // left, right, top, bottom
	backgroundPadding = [4]float64{5, 5, 6, 6}
)

// Item cell colors.
var (
	infoSeparatorColor         = cssColor("#aaaaaa")
	itemTitleColor             = black
	thumbnailSeparatorColor    = black
	downloadInfoColor          = white
	downloadInfoColorUnem      = rgb(0.2, 0.2, 0.2)
	downloadInfoSeparatorColor = white
	torrentInfoLabelColor      = rgb(0.6, 0.6, 0.6)
	torrentInfoDataColor       = white
	itemDescColor              = rgb(0.3, 0.3, 0.3)
	feedNameColor              = rgb(0.5, 0.5, 0.5)
	playlistOrderColor         = black
	itemExpiringTextColor      = cssColor("#6f6c28")
)

const downloadInfoSeparatorAlpha = 0.1

// Item cell font scales.
var (
	emblemFontScale    = fontScaleFromPoints(10)
	titleFontScale     = fontScaleFromPoints(14)
	extraInfoFontScale = fontScaleFromPoints(10)
	descFontScale      = fontScaleFromPoints(11)
)

const (
	downloadInfoFontScale   = 0.70
	torrentDetailsFontScale = 0.50
)

// UI strings.
const (
	revealInText        = "Reveal File"
	showContentsText    = "display contents"
	downloadText        = "Download"
	downloadTorrentText = "Download Torrent"
	downloadToLibrary   = "Download to Library"
	cancelText          = "Cancel"
	savedText           = "Saved"
	stopSeedingText     = "Stop seeding"
)

// PlaylistSorter reports an item's zero-based position within the
// playlist being displayed.
type PlaylistSorter interface {
	SortKey(info *model.ItemInfo) int
}

// Variant adjusts the item cell for one display kind through three
// hooks; a nil hook keeps the standard behavior.
type Variant struct {
	// ExtraButton supplies the webby button right of the emblem.
	ExtraButton func(info *model.ItemInfo) (text, hotspot string, ok bool)
	// RemoveButton picks the art and hotspot of the remove button.
	RemoveButton func() (imageName, hotspot string)
	// DescriptionPreface appends the run before the description and
	// returns its length in runes.
	DescriptionPreface func(tb canvas.TextBox, info *model.ItemInfo) int
}

// StandardVariant is the plain item cell.
func StandardVariant() Variant { return Variant{} }

// PlaylistVariant prefixes the description with the playlist order
// number and swaps the remove art for the remove-from-playlist art.
func PlaylistVariant(sorter PlaylistSorter) Variant {
	return Variant{
		RemoveButton: func() (string, string) {
			return "remove-playlist", "remove"
		},
		DescriptionPreface: func(tb canvas.TextBox, info *model.ItemInfo) int {
			order := sorter.SortKey(info) + 1
			preface := strconv.Itoa(order)
			if info.Description != "" {
				preface = fmt.Sprintf("%d - ", order)
			}
			c := playlistOrderColor
			tb.Append(preface, canvas.TextStyle{Color: &c})
			return utf8.RuneCountInString(preface)
		},
	}
}

// SharingVariant always offers the download-to-library button.
func SharingVariant() Variant {
	return Variant{
		ExtraButton: func(*model.ItemInfo) (string, string, bool) {
			return downloadToLibrary, "download-sharing-item", true
		},
	}
}

// DeviceVariant always offers the download-to-library button.
func DeviceVariant() Variant {
	return Variant{
		ExtraButton: func(*model.ItemInfo) (string, string, bool) {
			return downloadToLibrary, "download-device-item", true
		},
	}
}

// ItemRendererConfig configures an ItemRenderer.
type ItemRendererConfig struct {
	Images  canvas.ImagePool
	Variant Variant
	// DisplayChannel shows the feed name before the description.
	DisplayChannel bool
	// IsPodcast selects the podcast resume preference.
	IsPodcast bool
	// OnThrobberDrawn fires whenever a progress throbber frame was
	// painted, so the host can keep the animation timer running.
	OnThrobberDrawn func(info *model.ItemInfo)
}

// ItemRenderer draws the full-size item cell: thumbnail, title, extra
// info, description, emblem, and either the action/keep stack or the
// download progress area. All image assets are loaded once here; per
// invocation state lives in a transient itemLayout.
type ItemRenderer struct {
	images          *imageSet
	variant         Variant
	displayChannel  bool
	emblem          emblemDrawer
	onThrobberDrawn func(info *model.ItemInfo)
}

// NewItemRenderer builds a renderer and loads its image assets.
func NewItemRenderer(cfg ItemRendererConfig) *ItemRenderer {
	images := newImageSet(cfg.Images)
	return &ItemRenderer{
		images:         images,
		variant:        cfg.Variant,
		displayChannel: cfg.DisplayChannel,
		emblem: emblemDrawer{
			images:    images,
			isPodcast: cfg.IsPodcast,
			cfg:       defaultEmblemConfig(),
		},
		onThrobberDrawn: cfg.OnThrobberDrawn,
	}
}

// Size implements render.CellRenderer.
func (r *ItemRenderer) Size(canvas.LayoutManager, render.State) (float64, float64) {
	return itemMinWidth, itemHeight
}

// HotspotTest implements render.CellRenderer.
func (r *ItemRenderer) HotspotTest(lm canvas.LayoutManager, st render.State, x, y, width, height float64) string {
	// a hit-test implies the pointer is inside the cell
	st.Hover = true
	st.Selected = false
	cl := r.newItemLayout(st)
	layout := cl.layoutAll(lm, width, height)
	hotspot, localX, localY, ok := layout.FindHotspot(x, y)
	cl.extraInfo.reset()
	if !ok {
		return ""
	}
	if hotspot != "description" {
		return hotspot
	}
	// map the point to a rune and the rune to a link span
	tb := cl.makeDescription(lm)
	tb.SetWidth(cl.descriptionWidth)
	index, ok := tb.CharAt(localX, localY)
	if !ok {
		return ""
	}
	index -= cl.descriptionTextStart
	if index < 0 {
		return ""
	}
	link, ok := model.LinkAt(cl.descriptionLinks, index)
	if !ok {
		return ""
	}
	if link.URL == model.ShowTorrentContentsURL {
		return "show_contents"
	}
	return "description-link:" + link.URL
}

// Render implements render.CellRenderer.
func (r *ItemRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	cl := r.newItemLayout(st)
	layout := cl.layoutAll(lm, width, height)
	layout.Draw(ctx)
	cl.extraInfo.reset()
}

// itemLayout is the per-invocation layout state: the render request,
// the derived modes, and the guide rectangles. Built fresh for every
// call and discarded with it.
type itemLayout struct {
	r    *ItemRenderer
	st   render.State
	info *model.ItemInfo

	downloadMode bool
	throbberMode bool

	backgroundRect cellpack.LayoutRect
	imageRect      cellpack.LayoutRect
	middleRect     cellpack.LayoutRect
	rightRect      cellpack.LayoutRect
	emblemBottom   float64
	textTop        float64

	descriptionWidth      float64
	descriptionTextStart  int
	descriptionLinks      []model.LinkSpan
	expireBackgroundAlpha float64

	extraInfo extraInfoDrawer
}

func (r *ItemRenderer) newItemLayout(st render.State) *itemLayout {
	cl := &itemLayout{r: r, st: st, info: st.Info}
	cl.downloadMode = cl.info.State == model.StateDownloading ||
		cl.info.State == model.StatePaused
	if cl.downloadMode && cl.info.DownloadInfo != nil {
		// downloading with an unknown total gets an indeterminate
		// throbber instead of a bar
		dl := cl.info.DownloadInfo
		cl.throbberMode = dl.DownloadedSize > 0 && dl.TotalSize < 0
	}
	return cl
}

func (cl *itemLayout) layoutAll(lm canvas.LayoutManager, width, height float64) *cellpack.Layout {
	cl.setupGuides(width, height)
	layout := cellpack.NewLayout()
	cl.layoutSimpleElements(layout)
	cl.layoutText(layout, lm)
	if cl.downloadMode {
		cl.layoutProgressBar(layout)
		cl.layoutDownloadRight(layout, lm)
	} else {
		cl.layoutMainBottom(layout, lm)
		cl.layoutRight(layout, lm)
	}
	return layout
}

// setupGuides computes the guide rectangles: background (bleeds past
// the cell edge for shadow art), thumbnail, middle text area, and the
// right column whose width depends on download mode.
func (cl *itemLayout) setupGuides(width, height float64) {
	totalRect := cellpack.NewLayoutRect(0, 0, width, height)
	cl.backgroundRect = totalRect.Subsection(itemPadding[0], itemPadding[1],
		itemPadding[2], itemPadding[3])
	innerRect := cl.backgroundRect.Subsection(backgroundPadding[0],
		backgroundPadding[1], backgroundPadding[2], backgroundPadding[3])
	cl.imageRect = innerRect.LeftSide(thumbnailWidth)
	right := float64(rightWidth)
	if cl.downloadMode {
		right = rightWidthDownload
	}
	cl.rightRect = innerRect.RightSide(right)
	cl.middleRect = innerRect.Subsection(thumbnailWidth+20, right+15, 0, 0)
	// emblem/progress bar sits 29px above the bottom of the cell
	cl.emblemBottom = totalRect.Bottom() - 29
}

func (cl *itemLayout) layoutSimpleElements(layout *cellpack.Layout) {
	layout.AddRect(cl.backgroundRect, cl.drawBackground)
	layout.AddRectHotspot(cl.thumbnailHotspot(), cl.imageRect, cl.drawThumbnail)
	layout.AddRect(cl.imageRect.PastRight(1), cl.drawThumbnailSeparator)
}

func (cl *itemLayout) thumbnailHotspot() string {
	if !cl.info.Downloaded {
		return "thumbnail-download"
	}
	if cl.info.IsPlayable {
		return "thumbnail-play"
	}
	return ""
}

func (cl *itemLayout) layoutText(layout *cellpack.Layout, lm canvas.LayoutManager) {
	lm.SetFont(canvas.FontSpec{Scale: titleFontScale, Family: canvas.FontFamilyTitle, Bold: true})
	lm.SetTextColor(itemTitleColor)
	title := lm.TextBox(cl.info.Name)
	title.SetWrapStyle(canvas.WrapTruncatedChar)

	lm.SetFont(canvas.FontSpec{Scale: extraInfoFontScale, Family: canvas.FontFamilyInfo})
	lm.SetTextColor(itemDescColor)
	cl.extraInfo.setup(cl.info, lm, infoSeparatorColor)

	description := cl.makeDescription(lm)

	totalHeight := title.Font().LineHeight() + cl.extraInfo.height +
		description.Font().LineHeight() + 16
	x := cl.middleRect.X
	width := cl.middleRect.Width
	// start 28px from the cell top, but never let the description run
	// into the play button below it
	textBottom := math.Min(28+totalHeight, cl.middleRect.Y+80)
	cl.textTop = textBottom - totalHeight

	titleWidth := width
	if cl.downloadMode {
		// in download mode the menu moves up beside the title
		menuWidth := cl.r.images.get("menu").Width()
		cl.addImageButton(layout, x+width-menuWidth, cl.textTop, "menu",
			"#show-context-menu")
		titleWidth = width - menuWidth - 5
	}

	layout.AddTextLine(title, x, cl.textTop, titleWidth)
	y := layout.LastRect().Bottom() + 8
	layout.Add(x, y, width, cl.extraInfo.height, cl.extraInfo.draw)
	y = layout.LastRect().Bottom() + 8
	layout.AddTextLineHotspot("description", description, x, y, width)
	cl.descriptionWidth = width
}

func (cl *itemLayout) makeDescription(lm canvas.LayoutManager) canvas.TextBox {
	lm.SetFont(canvas.FontSpec{Scale: descFontScale, Family: canvas.FontFamilyDesc})
	lm.SetTextColor(itemDescColor)
	tb := lm.TextBox("")
	cl.descriptionTextStart = cl.addDescriptionPreface(tb)

	var text string
	var links []model.LinkSpan
	if cl.info.DownloadInfo != nil && cl.info.DownloadInfo.Torrent && cl.info.HasChildren {
		// torrent folders show a single virtual link to their contents
		text = showContentsText
		links = []model.LinkSpan{{
			Start: 0,
			End:   utf8.RuneCountInString(text),
			URL:   model.ShowTorrentContentsURL,
		}}
	} else {
		text = cl.info.Description
		links = model.NormalizeLinks(cl.info.Links, utf8.RuneCountInString(text))
	}

	runes := []rune(text)
	pos := 0
	for _, link := range links {
		if link.Start > pos {
			tb.Append(string(runes[pos:link.Start]), canvas.TextStyle{})
		}
		c := itemDescColor
		tb.Append(string(runes[link.Start:link.End]),
			canvas.TextStyle{Underline: true, Color: &c})
		pos = link.End
	}
	if pos < len(runes) {
		tb.Append(string(runes[pos:]), canvas.TextStyle{})
	}
	cl.descriptionLinks = links
	return tb
}

func (cl *itemLayout) addDescriptionPreface(tb canvas.TextBox) int {
	if cl.r.variant.DescriptionPreface != nil {
		return cl.r.variant.DescriptionPreface(tb, cl.info)
	}
	if cl.r.displayChannel && cl.info.FeedName != "" {
		preface := cl.info.FeedName + ": "
		c := feedNameColor
		tb.Append(preface, canvas.TextStyle{Color: &c})
		return utf8.RuneCountInString(preface)
	}
	return 0
}

// layoutMainBottom adds the emblem, its action button, and the extra
// webby button to its right.
func (cl *itemLayout) layoutMainBottom(layout *cellpack.Layout, lm canvas.LayoutManager) {
	emblemWidth := cl.r.emblem.addToLayout(layout, lm, cl.st, cl.middleRect,
		cl.emblemBottom)
	extraButtonX := cl.middleRect.X + emblemWidth + emblemMarginRight
	cl.addExtraButton(layout, lm, extraButtonX)
}

func (cl *itemLayout) addExtraButton(layout *cellpack.Layout, lm canvas.LayoutManager, left float64) {
	text, hotspot, ok := cl.calcExtraButton()
	if !ok {
		return
	}
	lm.SetFont(canvas.FontSpec{Scale: emblemFontScale})
	button := lm.Button(text, cl.st.Hotspot == hotspot)
	buttonHeight := button.Height()
	y := cl.emblemBottom - math.Floor((emblemHeight-buttonHeight)/2) - buttonHeight
	layout.AddImageHotspot(hotspot, button, left, y)
}

func (cl *itemLayout) calcExtraButton() (string, string, bool) {
	if cl.r.variant.ExtraButton != nil {
		return cl.r.variant.ExtraButton(cl.info)
	}
	if cl.info.DownloadState() == model.DownloadStateUploading {
		return stopSeedingText, "stop_seeding", true
	}
	if cl.info.PendingAuto {
		return cancelText, "cancel_auto_download", true
	}
	return "", "", false
}

// layoutRight stacks the menu, remove, and keep/saved buttons down the
// right column.
func (cl *itemLayout) layoutRight(layout *cellpack.Layout, lm canvas.LayoutManager) {
	keep := cl.r.images.get("keep")
	buttonWidth, buttonHeight := keep.Width(), keep.Height()
	x := cl.rightRect.Right() - buttonWidth - 20
	// align the buttons with where the other parts were laid out
	top := cl.textTop - 1
	bottom := cl.emblemBottom

	menuY := top
	expireY := bottom - buttonHeight
	deleteY := math.Floor((top + bottom - buttonHeight) / 2)

	cl.addImageButton(layout, x, menuY, "menu", "#show-context-menu")

	if (cl.info.IsExternal || cl.info.Downloaded) && cl.info.SourceType != "sharing" {
		imageName, hotspot := "remove", "delete"
		if cl.r.variant.RemoveButton != nil {
			imageName, hotspot = cl.r.variant.RemoveButton()
		}
		cl.addImageButton(layout, x, deleteY, imageName, hotspot)
	}

	if cl.info.HasExpiration() {
		expireRect := cellpack.NewLayoutRect(x, expireY, buttonWidth, buttonHeight)
		image := cl.r.images.button("keep", "keep", cl.st.Hotspot)
		cl.expireBackgroundAlpha = 1.0
		cl.layoutExpire(layout, lm, expireRect, cl.info.DisplayExpiration,
			image, "keep")
	} else if alpha := cl.st.Attr("keep-animation-alpha"); alpha > 0 {
		expireRect := cellpack.NewLayoutRect(x, expireY, buttonWidth, buttonHeight)
		cl.expireBackgroundAlpha = alpha
		cl.layoutExpire(layout, lm, expireRect, savedText,
			cl.r.images.get("saved"), "")
	}
}

func (cl *itemLayout) layoutExpire(layout *cellpack.Layout, lm canvas.LayoutManager,
	rect cellpack.LayoutRect, text string, image canvas.Image, hotspot string) {

	expireLayout := cellpack.NewLayout()
	// background goes in first so it draws underneath; its x extent is
	// fixed up below
	backgroundRect := expireLayout.Add(0, 0, 0, emblemHeight,
		cl.drawExpireBackground)
	lm.SetFont(canvas.FontSpec{Scale: emblemFontScale})
	lm.SetTextColor(itemExpiringTextColor)
	tb := lm.TextBox(text)
	// the countdown text hangs out to the left of the button rect
	textWidth, textHeight := tb.Size()
	textX := rect.X - emblemTextPadStart - textWidth
	expireLayout.Add(textX, 0, textWidth, textHeight, tb.Draw)
	buttonRect := expireLayout.AddImageHotspot(hotspot, image, rect.X, 0)
	// the badge runs from past the text to the middle of the button
	backgroundRect.X = textX - emblemTextPadEnd
	backgroundRect.Width = rect.X - backgroundRect.X +
		math.Floor(buttonRect.Width/2)
	expireLayout.CenterY(rect.Y, rect.Bottom())
	layout.Merge(expireLayout)
}

func (cl *itemLayout) layoutProgressBar(layout *cellpack.Layout) {
	left := cl.middleRect.X
	width := cl.middleRect.Width
	top := cl.emblemBottom - cl.r.images.get("progress-track").Height()
	height := 22.0
	endButtonWidth := 47.0
	progressCapWidth := 10.0
	if cl.throbberMode {
		// keep the bar width divisible by 10 so the throbber frames
		// tile evenly
		buttonWidthExtra := endButtonWidth*2 - progressCapWidth*2
		width -= math.Mod(width-buttonWidthExtra, 10)
	}
	leftHotspot, leftButtonName := "pause", "download-pause"
	if cl.info.DownloadState() == model.DownloadStatePaused {
		leftHotspot, leftButtonName = "resume", "download-resume"
	}

	cl.addImageButton(layout, left, top, leftButtonName, leftHotspot)
	rightButtonX := left + width - endButtonWidth
	cl.addImageButton(layout, rightButtonX, top, "download-stop", "cancel")

	track := cl.r.images.get("progress-track")
	trackX := left + endButtonWidth
	trackRect := cellpack.NewLayoutRect(trackX, top, rightButtonX-trackX, height)
	layout.AddRect(trackRect, track.Draw)

	// the bar overlaps the buttons by the width of its end caps
	progressX := trackX - progressCapWidth
	barWidth := (rightButtonX - progressX) + progressCapWidth
	barRect := cellpack.NewLayoutRect(progressX, top, barWidth, height)
	layout.AddRect(barRect, cl.drawProgressBar)
}

// layoutDownloadRight fills the right column with the download stats
// panel: eta, rates, and the torrent details.
func (cl *itemLayout) layoutDownloadRight(layout *cellpack.Layout, lm canvas.LayoutManager) {
	dl := cl.info.DownloadInfo
	if dl == nil {
		return
	}
	contentRect := cl.rightRect.Subsection(6, 12, 8, 8)
	x := contentRect.X
	width := contentRect.Width

	lm.SetFont(canvas.FontSpec{Scale: downloadInfoFontScale})
	lineHeight := lm.CurrentFont().LineHeight()
	ascent := lm.CurrentFont().Ascent()
	addLine := func(y float64, imageName, text, subtext string) {
		// the icon bottom sits on the text baseline; 3px accounts for
		// the shadow baked into the icons
		image := cl.r.images.get(imageName)
		imageY := y + ascent - image.Height() + 3
		layout.AddImage(image, x, imageY)
		if text != "" {
			lm.SetTextColor(downloadInfoColor)
			tb := lm.TextBox(text)
			tb.SetAlignment(canvas.AlignRight)
			layout.AddTextLine(tb, x, y, width)
		}
		if subtext != "" {
			lm.SetTextColor(downloadInfoColorUnem)
			tb := lm.TextBox(subtext)
			tb.SetAlignment(canvas.AlignRight)
			layout.AddTextLine(tb, x, y+lineHeight, width)
		}
	}

	etaText, rateText := "", ""
	if cl.info.State != model.StatePaused {
		etaText = dl.DisplayETA
		rateText = dl.DisplayRate
	}

	currentY := cl.rightRect.Y + 10
	addLine(currentY, "time-left", etaText, "")
	currentY += math.Max(19, lineHeight)
	layout.Add(x, currentY-1, width, 1, cl.drawDownloadInfoSeparator)
	addLine(currentY, "dl-speed", rateText, dl.DisplayDownloadedSize)
	currentY += math.Max(25, lineHeight*2)
	layout.Add(x, currentY-1, width, 1, cl.drawDownloadInfoSeparator)
	if dl.Torrent {
		addLine(currentY, "ul-speed", cl.info.DisplayUpRate, cl.info.DisplayUpTotal)
	}
	currentY += math.Max(25, lineHeight*2)
	layout.Add(x, currentY-1, width, 1, cl.drawDownloadInfoSeparator)
	if dl.Torrent && dl.State != model.DownloadStatePaused {
		torrentInfoHeight := contentRect.Bottom() - currentY
		cl.layoutDownloadRightTorrent(layout, lm,
			contentRect.BottomSide(torrentInfoHeight))
	}
}

func (cl *itemLayout) layoutDownloadRightTorrent(layout *cellpack.Layout,
	lm canvas.LayoutManager, rect cellpack.LayoutRect) {

	dl := cl.info.DownloadInfo
	if dl.Rate == 0 {
		// not started yet, just show the startup activity
		lm.SetTextColor(torrentInfoDataColor)
		tb := lm.TextBox(dl.StartupActivity)
		_, height := tb.Size()
		y := rect.Bottom() - height
		layout.Add(rect.X, y, rect.Width, height, tb.Draw)
		return
	}

	lm.SetFont(canvas.FontSpec{Scale: torrentDetailsFontScale, Family: canvas.FontFamilyDesc})
	lines := [][2]string{
		{"PEERS", strconv.Itoa(cl.info.Connections)},
		{"SEEDS", strconv.Itoa(cl.info.Seeders)},
		{"LEECH", strconv.Itoa(cl.info.Leechers)},
		{"SHARE", fmt.Sprintf("%.2f", cl.info.UpDownRatio)},
	}
	lineHeight := lm.CurrentFont().LineHeight()
	// drop rows that don't fit, from the bottom of the table
	potentialLines := int(rect.Height / lineHeight)
	if potentialLines < 0 {
		potentialLines = 0
	}
	if len(lines) > potentialLines {
		lines = lines[:potentialLines]
	}
	totalHeight := lineHeight * float64(len(lines))
	y := rect.Bottom() - totalHeight

	for _, line := range lines {
		lm.SetTextColor(torrentInfoLabelColor)
		labelBox := lm.TextBox(line[0])
		lm.SetTextColor(torrentInfoDataColor)
		dataBox := lm.TextBox(line[1])
		dataBox.SetAlignment(canvas.AlignRight)
		layout.AddTextLine(labelBox, rect.X, y, rect.Width)
		layout.AddTextLine(dataBox, rect.X, y, rect.Width)
		y += lineHeight
	}
}

func (cl *itemLayout) addImageButton(layout *cellpack.Layout, x, y float64,
	imageName, hotspot string) *cellpack.LayoutRect {
	image := cl.r.images.button(imageName, hotspot, cl.st.Hotspot)
	return layout.AddImageHotspot(hotspot, image, x, y)
}

func (cl *itemLayout) drawBackground(ctx canvas.Context, x, y, width, height float64) {
	var left, thumb, middle, right canvas.Image
	if cl.st.Selected {
		left = cl.r.images.get("selected-background-left")
		thumb = cl.r.images.get("dl-stats-selected-middle")
		middle = cl.r.images.get("selected-background-middle")
		right = cl.r.images.get("selected-background-right")
	} else {
		left = cl.r.images.get("background-left")
		thumb = cl.r.images.get("dl-stats-middle")
		middle = cl.r.images.get("background-middle")
		right = cl.r.images.get("background-right")
	}

	left.Draw(ctx, x, y, left.Width(), height)
	var rightEdgeWidth float64
	if cl.downloadMode {
		rightEdgeWidth = rightWidthDownload
		cl.drawDownloadInfoBackground(ctx, x+width-rightEdgeWidth, y, rightEdgeWidth)
	} else {
		rightEdgeWidth = right.Width()
		right.Draw(ctx, x+width-rightEdgeWidth, y, rightEdgeWidth, height)
	}
	imageEndX := cl.imageRect.Right()
	middleEndX := x + width - rightEdgeWidth
	middle.Draw(ctx, imageEndX, y, middleEndX-imageEndX, height)

	thumbWidth := imageEndX - (x + left.Width())
	thumb.Draw(ctx, x+left.Width(), y, thumbWidth, height)
}

func (cl *itemLayout) drawDownloadInfoBackground(ctx canvas.Context, x, y, width float64) {
	var surface canvas.ThreeImageSurface
	if cl.st.Selected {
		surface = canvas.NewThreeImageSurface(
			cl.r.images.get("dl-stats-selected-left-cap"),
			cl.r.images.get("dl-stats-selected-middle"),
			cl.r.images.get("dl-stats-selected-right-cap"))
	} else {
		surface = canvas.NewThreeImageSurface(
			cl.r.images.get("dl-stats-left-cap"),
			cl.r.images.get("dl-stats-middle"),
			cl.r.images.get("dl-stats-right-cap"))
	}
	surface.Draw(ctx, x, y, width)
}

func (cl *itemLayout) drawDownloadInfoSeparator(ctx canvas.Context, x, y, width, height float64) {
	ctx.SetColorAlpha(downloadInfoSeparatorColor, downloadInfoSeparatorAlpha)
	ctx.Rectangle(x, y, width, height)
	ctx.Fill()
}

func (cl *itemLayout) drawThumbnail(ctx canvas.Context, x, y, width, height float64) {
	icon := cl.r.images.pool.SurfaceScaled(cl.info.Thumbnail, width, height)
	iconX := x + math.Floor((width-icon.Width())/2)
	iconY := y + math.Floor((height-icon.Height())/2)
	// a thumbnail flush against the background edge needs its left
	// corners rounded off with a clip path
	makeClipPath := iconX < x+cornerRadius
	if makeClipPath {
		ctx.Save()
		radius := float64(cornerRadius)
		ctx.MoveTo(x+radius, y)
		ctx.LineTo(x+width, y)
		ctx.LineTo(x+width, y+height)
		ctx.LineTo(x+radius, y+height)
		ctx.Arc(x+radius, y+height-radius, radius, pi/2, pi)
		ctx.LineTo(x, y+radius)
		ctx.Arc(x+radius, y+radius, radius, pi, pi*3/2)
		ctx.Clip()
	}
	icon.Draw(ctx, iconX, iconY, icon.Width(), icon.Height())
	if makeClipPath {
		ctx.Restore()
	}
}

func (cl *itemLayout) drawThumbnailSeparator(ctx canvas.Context, x, y, width, height float64) {
	ctx.Rectangle(x, y, width, height)
	ctx.SetColor(thumbnailSeparatorColor)
	ctx.Fill()
}

func (cl *itemLayout) drawExpireBackground(ctx canvas.Context, x, y, width, height float64) {
	middle := cl.r.images.get("expiring-middle")
	capImage := cl.r.images.get("expiring-cap")
	capImage.DrawFraction(ctx, x, y, capImage.Width(), capImage.Height(),
		cl.expireBackgroundAlpha)
	middle.DrawFraction(ctx, x+capImage.Width(), y, width-capImage.Width(),
		middle.Height(), cl.expireBackgroundAlpha)
}

func (cl *itemLayout) drawProgressBar(ctx canvas.Context, x, y, width, height float64) {
	if cl.throbberMode {
		cl.drawProgressThrobber(ctx, x, y, width)
		return
	}
	if cl.info.Size == 0 || cl.info.DownloadInfo == nil {
		// the size or transfer stats may show up in a moment; draw
		// neither a bar nor a throbber until then
		return
	}
	progressRatio := float64(cl.info.DownloadInfo.DownloadedSize) /
		float64(cl.info.Size)
	progressWidth := math.Trunc(width * progressRatio)
	left := cl.r.images.get("progress-left-cap")
	middle := cl.r.images.get("progress-middle")
	right := cl.r.images.get("progress-right-cap")

	leftWidth := math.Min(left.Width(), progressWidth)
	rightWidth := math.Max(0, progressWidth-(width-right.Width()))
	middleWidth := math.Max(0, progressWidth-leftWidth-rightWidth)

	left.Draw(ctx, x, y, leftWidth, height)
	middle.Draw(ctx, x+left.Width(), y, middleWidth, height)
	right.Draw(ctx, x+width-right.Width(), y, rightWidth, height)
}

func (cl *itemLayout) drawProgressThrobber(ctx canvas.Context, x, y, width float64) {
	index := int(cl.st.Attr("throbber-value")) % len(cl.r.images.throbber)
	cl.r.images.throbber[index].Draw(ctx, x, y, width)
	if cl.r.onThrobberDrawn != nil {
		cl.r.onThrobberDrawn(cl.info)
	}
}
