package style

import (
	"math"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

// stateCircleProportions is the width/height ratio of the circle art.
const stateCircleProportions = 7.0 / 9.0

var stateCircleStates = []string{"unplayed", "new", "playing", "downloading"}

// StateCircleRenderer renders the little state dot column. The icons
// are sized from the allocated cell and only rebuilt when that size
// changes.
type StateCircleRenderer struct {
	pool   canvas.ImagePool
	icons  map[string]canvas.Image
	setupW float64
	setupH float64
	iconW  float64
	iconH  float64
}

// NewStateCircleRenderer returns a renderer drawing from the pool.
func NewStateCircleRenderer(pool canvas.ImagePool) *StateCircleRenderer {
	return &StateCircleRenderer{pool: pool, icons: make(map[string]canvas.Image)}
}

// setupIcons loads icons scaled for the allocated area, skipping the
// work when the size has not changed.
func (r *StateCircleRenderer) setupIcons(width, height float64) {
	if width == r.setupW && height == r.setupH {
		return
	}
	r.iconW = math.Trunc(height / 2)
	r.iconH = math.Trunc(r.iconW/stateCircleProportions + 0.5)
	for _, state := range stateCircleStates {
		r.icons[state] = r.pool.SurfaceScaled("images/status-icon-"+state+".png",
			r.iconW, r.iconH)
	}
	r.setupW, r.setupH = width, height
}

// Size implements render.CellRenderer.
func (r *StateCircleRenderer) Size(canvas.LayoutManager, render.State) (float64, float64) {
	return 7, 9
}

// HotspotTest implements render.CellRenderer; the circle is inert.
func (r *StateCircleRenderer) HotspotTest(canvas.LayoutManager, render.State, float64, float64, float64, float64) string {
	return ""
}

// Render implements render.CellRenderer.
func (r *StateCircleRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	r.setupIcons(width, height)
	icon := r.calcIcon(st)
	if icon == nil {
		return
	}
	x := math.Trunc((width - r.iconW) / 2)
	y := math.Trunc((height - r.iconH) / 2)
	icon.Draw(ctx, x, y, icon.Width(), icon.Height())
}

// calcIcon picks at most one state dot by fixed precedence.
func (r *StateCircleRenderer) calcIcon(st render.State) canvas.Image {
	info := st.Info
	switch {
	case info.State == model.StateDownloading:
		return r.icons["downloading"]
	case info.IsPlaying:
		return r.icons["playing"]
	case info.State == model.StateNewlyDownloaded:
		return r.icons["unplayed"]
	case info.Downloaded && info.IsPlayable && !info.Watched:
		return r.icons["new"]
	case !info.ItemViewed && !info.HasExpiration() && !info.IsExternal && !info.Downloaded:
		return r.icons["new"]
	}
	return nil
}
