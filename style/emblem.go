package style

import (
	"image/color"
	"math"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/cellpack"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

// emblemConfig is the explicit configuration the emblem drawer needs.
// Each field is enumerated rather than copied wholesale from the item
// renderer's constants.
type emblemConfig struct {
	height          float64
	textPadStart    float64
	textPadEnd      float64
	textPadEndSmall float64
	fontScale       float64

	shadowOpacity float64
	shadowOffsetX float64
	shadowOffsetY float64

	resumeColor    color.NRGBA
	resumeShadow   color.NRGBA
	unplayedColor  color.NRGBA
	unplayedShadow color.NRGBA
	newlyColor     color.NRGBA
	newlyShadow    color.NRGBA
	drmColor       color.NRGBA
	drmShadow      color.NRGBA
	queuedColor    color.NRGBA
	queuedShadow   color.NRGBA
	failedColor    color.NRGBA
	failedShadow   color.NRGBA
}

func defaultEmblemConfig() emblemConfig {
	return emblemConfig{
		height:          emblemHeight,
		textPadStart:    4,
		textPadEnd:      20,
		textPadEndSmall: 6,
		fontScale:       fontScaleFromPoints(10),

		shadowOpacity: 0.6,
		shadowOffsetY: 1,

		resumeColor:    cssColor("#306219"),
		resumeShadow:   white,
		unplayedColor:  cssColor("#d8ffc7"),
		unplayedShadow: black,
		newlyColor:     cssColor("#e1efff"),
		newlyShadow:    black,
		drmColor:       cssColor("#582016"),
		drmShadow:      white,
		queuedColor:    cssColor("#4a2c00"),
		queuedShadow:   white,
		failedColor:    cssColor("#ffe7e7"),
		failedShadow:   black,
	}
}

// emblemParts is everything derived for one emblem: the content inside
// the badge and the background image set to draw under it. A zero key
// means no badge at all, only the leading action button.
type emblemParts struct {
	text        string
	bold        bool
	color       color.NRGBA
	shadow      color.NRGBA
	image       canvas.Image
	marginRight float64
	key         string
}

// emblemDrawer lays out the emblem badge and its leading action button.
// The derivation is a strict first-match precedence chain; an item
// matches at most one row.
type emblemDrawer struct {
	images    *imageSet
	isPodcast bool
	cfg       emblemConfig
}

// calcParts derives the emblem content from the item's current state.
func (d *emblemDrawer) calcParts(st render.State) emblemParts {
	info := st.Info
	parts := emblemParts{marginRight: d.cfg.textPadEnd}
	switch {
	case info.HasDRM:
		parts.bold = true
		parts.text = "DRM locked"
		parts.color = d.cfg.drmColor
		parts.shadow = d.cfg.drmShadow
		parts.key = "drm"
	case info.DownloadState() == model.DownloadStateFailed:
		parts.bold = true
		parts.color = d.cfg.failedColor
		parts.shadow = d.cfg.failedShadow
		parts.image = d.images.get("status-icon-alert")
		parts.text = "Error-" + info.DownloadInfo.ShortReasonFailed
		parts.key = "failed"
	case info.PendingAuto:
		parts.color = d.cfg.queuedColor
		parts.shadow = d.cfg.queuedShadow
		parts.text = "Queued for Auto-download"
		parts.key = "queued"
	case info.Downloaded && st.Playback.IsPlayingItem(info.ID):
		// deliberately reuses the unplayed styling
		parts.text = "Currently Playing"
		parts.color = d.cfg.unplayedColor
		parts.shadow = d.cfg.unplayedShadow
		parts.key = "unplayed"
	case info.Downloaded && !info.Watched && info.IsPlayable:
		parts.bold = true
		parts.color = d.cfg.unplayedColor
		parts.shadow = d.cfg.unplayedShadow
		parts.text = "Unplayed"
		parts.key = "unplayed"
	case d.shouldResume(st):
		parts.bold = true
		parts.color = d.cfg.resumeColor
		parts.shadow = d.cfg.resumeShadow
		parts.text = "Resume at " + info.DisplayResumeTime
		parts.marginRight = d.cfg.textPadEndSmall
		parts.key = "resume"
	case !info.ItemViewed && info.State == model.StateNew:
		parts.bold = true
		parts.color = d.cfg.newlyColor
		parts.shadow = d.cfg.newlyShadow
		parts.text = "Newly Available"
		parts.marginRight = d.cfg.textPadEndSmall
		parts.key = "newly"
	}
	return parts
}

func (d *emblemDrawer) shouldResume(st render.State) bool {
	info := st.Info
	var pref bool
	if d.isPodcast {
		pref = st.Resume.Podcasts
	} else if info.FileType == model.FileTypeVideo {
		pref = st.Resume.Videos
	} else {
		pref = st.Resume.Music
	}
	return info.IsPlayable && info.ItemViewed && info.ResumeTime > 0 && pref
}

// addToLayout lays out the action button plus the emblem badge along
// the bottom of the middle area and returns the width used.
func (d *emblemDrawer) addToLayout(layout *cellpack.Layout, lm canvas.LayoutManager,
	st render.State, middleRect cellpack.LayoutRect, emblemBottom float64) float64 {

	x := middleRect.X
	emblemTop := emblemBottom - d.cfg.height
	button, buttonHotspot := d.makeEmblemButton(lm, st)
	buttonWidth, buttonHeight := button.Width(), button.Height()
	// middle align the button along the emblem
	buttonY := emblemTop - math.Floor((buttonHeight-d.cfg.height)/2)
	parts := d.calcParts(st)
	if parts.image == nil && parts.text == "" {
		layout.AddImageHotspot(buttonHotspot, button, x, buttonY)
		return layout.LastRect().Width
	}
	// the background goes in first so it draws underneath; its width is
	// fixed up once the content is placed
	emblemRect := layout.AddHotspot("", x+float64(int(buttonWidth)/2), emblemTop, 0,
		d.cfg.height, d.drawBackground(parts.key))
	contentLayout := cellpack.NewLayout()
	// content starts past the button so it never spills to its left
	contentX := x + buttonWidth + d.cfg.textPadStart
	contentWidth := d.addTextImages(contentLayout, lm, parts, contentX)
	emblemRect.Width = contentX + contentWidth + parts.marginRight - emblemRect.X
	contentLayout.CenterY(emblemTop, emblemBottom)
	layout.Merge(contentLayout)
	layout.AddImageHotspot(buttonHotspot, button, x, buttonY)
	return emblemRect.Right() - x
}

// makeEmblemButton picks the action button to the left of the emblem.
func (d *emblemDrawer) makeEmblemButton(lm canvas.LayoutManager, st render.State) (canvas.Image, string) {
	info := st.Info
	lm.SetFont(canvas.FontSpec{Scale: 0.85})
	if info.Downloaded {
		if info.IsPlayable {
			var name, hotspot string
			if st.Playback.IsPlayingItem(info.ID) {
				// the loaded item's button toggles play/pause
				hotspot = "play_pause"
				if st.Playback.Paused {
					name = "play"
				} else {
					name = "pause"
				}
			} else {
				name = "play"
				hotspot = "play"
			}
			return d.images.button(name, hotspot, st.Hotspot), hotspot
		}
		button := lm.Button(revealInText, st.Hotspot == "show_local_file")
		return button, "show_local_file"
	}
	text := downloadText
	if info.MimeType == model.MimeTypeTorrent {
		text = downloadTorrentText
	}
	button := lm.Button(text, st.Hotspot == "download")
	button.SetIcon(d.images.get("download-arrow"))
	return button, "download"
}

// addTextImages adds the emblem icon and/or text and returns the width
// used.
func (d *emblemDrawer) addTextImages(layout *cellpack.Layout, lm canvas.LayoutManager,
	parts emblemParts, leftX float64) float64 {

	x := leftX
	if parts.image != nil {
		layout.AddImage(parts.image, x, 0)
		x += parts.image.Width()
	}
	if parts.text != "" {
		lm.SetFont(canvas.FontSpec{Scale: d.cfg.fontScale, Bold: parts.bold})
		lm.SetTextColor(parts.color)
		lm.SetTextShadow(&canvas.Shadow{
			Color:   parts.shadow,
			Opacity: d.cfg.shadowOpacity,
			OffsetX: d.cfg.shadowOffsetX,
			OffsetY: d.cfg.shadowOffsetY,
		})
		tb := lm.TextBox(parts.text)
		textWidth, textHeight := tb.Size()
		layout.Add(x, 0, textWidth, textHeight, tb.Draw)
		x += textWidth
		lm.SetTextShadow(nil)
	}
	return x - leftX
}

// drawBackground returns the draw callback for one emblem key: the
// middle repeated to the needed width with the cap at the right end.
func (d *emblemDrawer) drawBackground(key string) cellpack.DrawFunc {
	middle := d.images.get(key + "-middle")
	capImage := d.images.get(key + "-cap")
	return func(ctx canvas.Context, x, y, width, height float64) {
		middle.Draw(ctx, x, y, width-capImage.Width(), middle.Height())
		capImage.Draw(ctx, x+width-capImage.Width(), y, capImage.Width(), capImage.Height())
	}
}
