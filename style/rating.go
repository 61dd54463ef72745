package style

import (
	"fmt"
	"math"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/render"
)

// Star icon geometry.
const (
	ratingIconStates  = 4
	ratingIconCount   = 5
	ratingIconSpacing = 2
	ratingIconSize    = 9
)

// RatingRenderer renders the five-star rating column. While the
// pointer hovers the stars preview the rating a click would set;
// otherwise the explicit rating shows as yes/no and the inferred
// rating as probably/unset.
type RatingRenderer struct {
	icons map[string]canvas.Image
	width float64
}

// NewRatingRenderer builds the renderer and loads the star art.
func NewRatingRenderer(pool canvas.ImagePool) *RatingRenderer {
	icons := make(map[string]canvas.Image, ratingIconStates)
	for _, state := range []string{"yes", "no", "probably", "unset"} {
		icons[state] = pool.SurfaceScaled("images/star-"+state+".png",
			ratingIconSize, ratingIconSize)
	}
	return &RatingRenderer{
		icons: icons,
		width: ratingIconSize * ratingIconCount,
	}
}

// Size implements render.CellRenderer.
func (r *RatingRenderer) Size(canvas.LayoutManager, render.State) (float64, float64) {
	return r.width, ratingIconSize
}

// HotspotTest implements render.CellRenderer.
func (r *RatingRenderer) HotspotTest(lm canvas.LayoutManager, st render.State, x, y, width, height float64) string {
	index, ok := r.iconIndexAtX(x)
	if !ok {
		return ""
	}
	return fmt.Sprintf("rate:%d", index)
}

// iconIndexAtX maps an x coordinate to a 1-based star index. Each
// star's area includes the spacing centered around it; the y
// coordinate does not matter.
func (r *RatingRenderer) iconIndexAtX(x float64) (int, bool) {
	iconWidthWithPad := float64(ratingIconSize + ratingIconSpacing)
	// shift so the spacing is split across each icon instead of
	// hanging off its right side
	x += math.Trunc(ratingIconSpacing / 2)
	if x < 0 || x >= iconWidthWithPad*ratingIconCount {
		return 0, false
	}
	return int(x/iconWidthWithPad) + 1, true
}

// Render implements render.CellRenderer.
func (r *RatingRenderer) Render(ctx canvas.Context, lm canvas.LayoutManager, st render.State, width, height float64) {
	hover := 0
	if st.Hover {
		if index, ok := r.iconIndexAtX(st.HoverX); ok {
			hover = index
		}
	}
	x := 0.0
	y := math.Trunc((height - ratingIconSize) / 2)
	for i := 1; i <= ratingIconCount; i++ {
		icon := r.icon(st, hover, i)
		icon.Draw(ctx, x, y, icon.Width(), icon.Height())
		x += ratingIconSize + ratingIconSpacing
	}
}

// icon picks the art of the i-th star, 1-based.
func (r *RatingRenderer) icon(st render.State, hover, i int) canvas.Image {
	if hover > 0 {
		if hover >= i {
			return r.icons["yes"]
		}
		return r.icons["no"]
	}
	info := st.Info
	if info.Rating != nil {
		if *info.Rating >= i {
			return r.icons["yes"]
		}
		return r.icons["no"]
	}
	if info.AutoRating != nil {
		if *info.AutoRating >= i {
			return r.icons["probably"]
		}
		return r.icons["unset"]
	}
	return r.icons["unset"]
}
