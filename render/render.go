// Package render defines the contract between the host toolkit's
// table/grid plumbing and the custom cell renderers. The host asks a
// renderer for its size, for the hotspot under a point, or for a full
// paint; every call is synchronous and carries an immutable State so
// the renderer keeps nothing between invocations.
package render

import (
	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/model"
)

// State is the render request for a single cell invocation. It bundles
// everything that used to be stashed on the renderer right before use:
// the row's data object, the interaction flags, and the host-supplied
// transient attributes (animation counters and the like).
type State struct {
	Info *model.ItemInfo

	Selected bool
	// Hotspot is the identifier the pointer is currently pressing, or
	// "". Renderers swap in pressed art for the matching element.
	Hotspot string
	Hover   bool
	// HoverX/HoverY are the pointer position within the cell, valid
	// only while Hover is set.
	HoverX float64
	HoverY float64

	// Playback and Resume are read-only snapshots injected by the
	// host; they decide button art and resume eligibility.
	Playback model.PlaybackState
	Resume   model.ResumePrefs

	// Attrs carries host-owned animation state, e.g. "throbber-value"
	// (frame counter) and "keep-animation-alpha" (0..1).
	Attrs map[string]float64
}

// Attr returns a named transient attribute, or 0 when unset.
func (s State) Attr(name string) float64 {
	return s.Attrs[name]
}

// CellRenderer is implemented by every cell type, regardless of visual
// complexity. HotspotTest and Render run the same layout procedure so
// what is drawn is exactly what is hit-tested. None of the methods may
// fail: missing data degrades to omitted elements.
type CellRenderer interface {
	// Size returns the cell's minimum size. It must not depend on the
	// allocated width; it only seeds column/row minimums.
	Size(lm canvas.LayoutManager, st State) (minWidth, minHeight float64)

	// HotspotTest lays the cell out at the given size and returns the
	// hotspot under (x, y), or "".
	HotspotTest(lm canvas.LayoutManager, st State, x, y, width, height float64) string

	// Render lays the cell out and paints it. Selection, hover and
	// pressed-hotspot looks are chosen while building the layout; there
	// is no separate selected drawing path.
	Render(ctx canvas.Context, lm canvas.LayoutManager, st State, width, height float64)
}
