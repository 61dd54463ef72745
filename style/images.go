package style

import (
	"github.com/mediashelf/mediashelf/canvas"
)

// itemRendererImages is every asset the item cell needs, keyed by the
// short name used at the layout call sites.
var itemRendererImages = []string{
	"background-left", "background-middle", "background-right",
	"dl-speed", "dl-stats-left-cap", "dl-stats-middle",
	"dl-stats-right-cap", "dl-stats-selected-left-cap",
	"dl-stats-selected-middle", "dl-stats-selected-right-cap",
	"download-pause", "download-pause-pressed", "download-resume",
	"download-resume-pressed", "download-stop", "download-stop-pressed",
	"drm-middle", "drm-cap", "expiring-cap", "expiring-middle",
	"failed-middle", "failed-cap", "keep", "keep-pressed", "menu",
	"menu-pressed", "pause", "pause-pressed", "play", "play-pressed",
	"remove", "remove-playlist", "remove-playlist-pressed",
	"remove-pressed", "saved", "status-icon-alert", "newly-cap",
	"newly-middle", "progress-left-cap", "progress-middle",
	"progress-right-cap", "progress-throbber-1-left",
	"progress-throbber-1-middle", "progress-throbber-1-right",
	"progress-throbber-2-left", "progress-throbber-2-middle",
	"progress-throbber-2-right", "progress-throbber-3-left",
	"progress-throbber-3-middle", "progress-throbber-3-right",
	"progress-throbber-4-left", "progress-throbber-4-middle",
	"progress-throbber-4-right", "progress-throbber-5-left",
	"progress-throbber-5-middle", "progress-throbber-5-right",
	"progress-track", "queued-middle", "queued-cap", "resume-cap",
	"resume-middle", "selected-background-left",
	"selected-background-middle", "selected-background-right",
	"time-left", "ul-speed", "unplayed-cap", "unplayed-middle",
}

const throbberStages = 5

// imageSet caches the item cell's drawable assets. Loaded once at
// renderer construction; read-only afterwards.
type imageSet struct {
	pool     canvas.ImagePool
	images   map[string]canvas.Image
	throbber []canvas.ThreeImageSurface
}

func newImageSet(pool canvas.ImagePool) *imageSet {
	s := &imageSet{pool: pool, images: make(map[string]canvas.Image, len(itemRendererImages)+1)}
	for _, name := range itemRendererImages {
		s.images[name] = pool.Surface("images/item-renderer-" + name + ".png")
	}
	// download-arrow is a shared icon without the item-renderer prefix
	s.images["download-arrow"] = pool.Surface("images/download-arrow.png")
	for i := 1; i <= throbberStages; i++ {
		stage := "progress-throbber-" + string(rune('0'+i))
		s.throbber = append(s.throbber, canvas.NewThreeImageSurface(
			s.images[stage+"-left"],
			s.images[stage+"-middle"],
			s.images[stage+"-right"],
		))
	}
	return s
}

func (s *imageSet) get(name string) canvas.Image {
	return s.images[name]
}

// button returns the asset for an image button, swapping in the
// pressed art while its hotspot is active.
func (s *imageSet) button(name, hotspot, activeHotspot string) canvas.Image {
	if hotspot == activeHotspot {
		return s.images[name+"-pressed"]
	}
	return s.images[name]
}
