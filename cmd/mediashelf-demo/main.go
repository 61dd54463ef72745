// Command mediashelf-demo drives the cell renderers interactively: a
// synthetic library is painted with the ebiten canvas, hotspots react
// to the mouse, and per-display UI state round-trips through the
// widget state store.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	euiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mediashelf/mediashelf/ebitencanvas"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
	"github.com/mediashelf/mediashelf/style"
	"github.com/mediashelf/mediashelf/widgetstate"
)

const (
	windowWidth  = 1000
	windowHeight = 700
	sidebarWidth = 180
	sliderWidth  = 14

	displayType = "feed"
)

type app struct {
	ui      *ebitenui.UI
	vSlider *widget.Slider

	lm       *ebitencanvas.LayoutManager
	pool     *ebitencanvas.ImagePool
	renderer *style.ItemRenderer
	tabCell  *style.TabRenderer
	devCell  *style.TabRenderer
	lowerBox style.LowerBox

	items       []*model.ItemInfo
	tabs        []model.TabInfo
	selectedTab int

	store *widgetstate.Store

	playback model.PlaybackState
	resume   model.ResumePrefs

	// scrollTop is the scroll fraction (0..1) of the item list.
	scrollTop   float64
	scrollDirty bool
	scrollIdle  int

	// pressed tracks the hotspot under the mouse at press time; the
	// action fires only if release lands on the same hotspot.
	pressedItem    string
	pressedHotspot string

	throbber      map[string]float64
	keepAnimation map[string]float64

	itemBuf  *ebiten.Image
	tabBuf   *ebiten.Image
	lowerBuf *ebiten.Image

	width, height  int
	clipboardReady bool
}

func newApp() (*app, error) {
	lm, err := ebitencanvas.NewLayoutManager()
	if err != nil {
		return nil, err
	}

	statePath, err := widgetstate.DefaultStatePath("mediashelf")
	if err != nil {
		return nil, err
	}
	saver, err := widgetstate.NewFileSaver(statePath)
	if err != nil {
		log.Printf("widget state unreadable, starting fresh: %v", err)
		saver, err = widgetstate.NewFileSaver(statePath + ".new")
		if err != nil {
			return nil, err
		}
	}
	store := widgetstate.NewStore(saver)
	store.SetupDisplays(saver.Displays())
	store.SetupViews(saver.Views())

	pool := ebitencanvas.NewImagePool("assets")
	a := &app{
		lm:      lm,
		pool:    pool,
		tabCell: style.NewTabRenderer(pool),
		devCell: style.NewDeviceTabRenderer(pool),
		items:   demoItems(),
		tabs:    demoTabs(),
		store:   store,
		resume:  model.ResumePrefs{Videos: true, Podcasts: true},
		width:   windowWidth,
		height:  windowHeight,

		throbber:      make(map[string]float64),
		keepAnimation: make(map[string]float64),
	}
	a.renderer = style.NewItemRenderer(style.ItemRendererConfig{
		Images:         pool,
		Variant:        style.StandardVariant(),
		DisplayChannel: true,
		OnThrobberDrawn: func(info *model.ItemInfo) {
			a.throbber[info.ID]++
		},
	})

	if pos, err := store.ScrollPosition(displayType, demoDisplayID, widgetstate.StandardView); err == nil {
		a.scrollTop = float64(pos.Y) / 1000
	}
	a.buildUI()
	return a, nil
}

// buildUI assembles the ebitenui chrome: a vertical slider pinned to
// the right edge. The cells themselves are painted directly, outside
// ebitenui's widget tree.
func (a *app) buildUI() {
	track := &widget.SliderTrackImage{
		Idle:  euiimage.NewNineSliceColor(color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}),
		Hover: euiimage.NewNineSliceColor(color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}),
	}
	handle := &widget.ButtonImage{
		Idle:    euiimage.NewNineSliceColor(color.NRGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff}),
		Hover:   euiimage.NewNineSliceColor(color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}),
		Pressed: euiimage.NewNineSliceColor(color.NRGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}),
	}
	a.vSlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionVertical),
		widget.SliderOpts.MinMax(0, 1000),
		widget.SliderOpts.Images(track, handle),
		widget.SliderOpts.FixedHandleSize(40),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(sliderWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				StretchVertical:    true,
			}),
		),
		widget.SliderOpts.PageSizeFunc(func() int {
			view, content := a.scrollExtents()
			if content <= view {
				return 1000
			}
			return int(view / content * 1000)
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			a.setScrollTop(float64(args.Current) / 1000)
		}),
	)
	a.vSlider.Current = int(a.scrollTop * 1000)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(a.vSlider)
	a.ui = &ebitenui.UI{Container: root}
}

func (a *app) cellSize() (float64, float64) {
	return a.renderer.Size(a.lm, render.State{})
}

// scrollExtents returns the viewport height and the content height of
// the item list.
func (a *app) scrollExtents() (view, content float64) {
	_, cellHeight := a.cellSize()
	return float64(a.height), cellHeight * float64(len(a.items))
}

func (a *app) maxScroll() float64 {
	view, content := a.scrollExtents()
	if content <= view {
		return 0
	}
	return content - view
}

func (a *app) setScrollTop(top float64) {
	top = min(max(top, 0), 1)
	if top == a.scrollTop {
		return
	}
	a.scrollTop = top
	a.scrollDirty = true
	a.scrollIdle = 0
}

// itemAt maps a screen point to the item under it plus the point in
// cell coordinates.
func (a *app) itemAt(x, y float64) (index int, cellX, cellY float64, ok bool) {
	if x < sidebarWidth || x >= float64(a.width-sliderWidth) {
		return 0, 0, 0, false
	}
	_, cellHeight := a.cellSize()
	listY := y + a.scrollTop*a.maxScroll()
	index = int(listY / cellHeight)
	if index < 0 || index >= len(a.items) {
		return 0, 0, 0, false
	}
	return index, x - sidebarWidth, listY - cellHeight*float64(index), true
}

func (a *app) itemState(item *model.ItemInfo) render.State {
	attrs := map[string]float64{
		"throbber-value": a.throbber[item.ID],
	}
	if alpha, ok := a.keepAnimation[item.ID]; ok {
		attrs["keep-animation-alpha"] = min(alpha/30, 1)
	}
	return render.State{
		Info:     item,
		Playback: a.playback,
		Resume:   a.resume,
		Attrs:    attrs,
	}
}

func (a *app) itemWidth() float64 {
	return float64(a.width - sidebarWidth - sliderWidth)
}

// tabAt maps a screen point to the sidebar tab index under it.
func (a *app) tabAt(x, y float64) (index int, cellY float64, ok bool) {
	if x < 0 || x >= sidebarWidth {
		return 0, 0, false
	}
	top := 0.0
	for i, tab := range a.tabs {
		_, h := a.tabRenderer(i).Size(a.lm, tab)
		if y >= top && y < top+h {
			return i, y - top, true
		}
		top += h
	}
	return 0, 0, false
}

func (a *app) tabRenderer(index int) *style.TabRenderer {
	if a.tabs[index].Mounted || a.tabs[index].Fake {
		return a.devCell
	}
	return a.tabCell
}

func (a *app) Update() error {
	a.ui.Update()
	a.advanceDownloads()
	a.advanceAnimations()

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		if scroll := a.maxScroll(); scroll > 0 {
			a.setScrollTop(a.scrollTop - wheelY*40/scroll)
			a.vSlider.Current = int(a.scrollTop * 1000)
		}
	}

	width := a.itemWidth()
	_, cellHeight := a.cellSize()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if index, cx, cy, ok := a.itemAt(x, y); ok {
			item := a.items[index]
			a.pressedItem = item.ID
			a.pressedHotspot = a.renderer.HotspotTest(a.lm, a.itemState(item), cx, cy, width, cellHeight)
		} else if index, cy, ok := a.tabAt(x, y); ok {
			tab := a.tabs[index]
			_, h := a.tabRenderer(index).Size(a.lm, tab)
			hotspot := a.tabRenderer(index).HotspotTest(a.lm, tab, x, cy, sidebarWidth, h)
			a.handleTabHotspot(index, hotspot)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && a.pressedItem != "" {
		if index, cx, cy, ok := a.itemAt(x, y); ok {
			item := a.items[index]
			if item.ID == a.pressedItem {
				hotspot := a.renderer.HotspotTest(a.lm, a.itemState(item), cx, cy, width, cellHeight)
				if hotspot != "" && hotspot == a.pressedHotspot {
					a.handleHotspot(item, hotspot)
				}
			}
		}
		a.pressedItem = ""
		a.pressedHotspot = ""
	}

	a.persistScroll()
	return nil
}

// advanceDownloads fakes transfer progress so the progress bars and
// seams actually move.
func (a *app) advanceDownloads() {
	for _, item := range a.items {
		dl := item.DownloadInfo
		if dl == nil || dl.State != model.DownloadStateDownloading {
			continue
		}
		if dl.TotalSize > 0 && dl.DownloadedSize < dl.TotalSize {
			dl.DownloadedSize += dl.TotalSize / 600
			if dl.DownloadedSize > dl.TotalSize {
				dl.DownloadedSize = dl.TotalSize
			}
		}
	}
}

func (a *app) advanceAnimations() {
	for id, frames := range a.keepAnimation {
		if frames >= 30 {
			continue
		}
		a.keepAnimation[id] = frames + 1
	}
}

// persistScroll writes the scroll position once the view settles
// instead of on every frame of a drag.
func (a *app) persistScroll() {
	if !a.scrollDirty {
		return
	}
	a.scrollIdle++
	if a.scrollIdle < 30 {
		return
	}
	a.scrollDirty = false
	pos := widgetstate.ScrollPosition{Y: int(a.scrollTop * 1000)}
	if err := a.store.SetScrollPosition(displayType, demoDisplayID, widgetstate.StandardView, pos); err != nil {
		log.Printf("saving scroll position: %v", err)
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	a.drawSidebar(screen)
	a.drawItems(screen)
	a.ui.Draw(screen)
}

// buffer returns current when it already has the wanted size, or a
// fresh image otherwise. Cells render into a reused offscreen buffer
// that is then blitted into place, since renderers paint from (0, 0).
func buffer(current *ebiten.Image, width, height int) *ebiten.Image {
	if current != nil && current.Bounds().Dx() == width && current.Bounds().Dy() == height {
		current.Clear()
		return current
	}
	if current != nil {
		current.Deallocate()
	}
	return ebiten.NewImage(width, height)
}

func blit(dst, src *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(src, op)
}

func (a *app) drawSidebar(screen *ebiten.Image) {
	sidebar := screen.SubImage(image.Rect(0, 0, sidebarWidth, a.height)).(*ebiten.Image)
	sidebar.Fill(color.NRGBA{R: 0xe8, G: 0xe8, B: 0xee, A: 0xff})

	top := 0.0
	for i, tab := range a.tabs {
		_, h := a.tabRenderer(i).Size(a.lm, tab)
		a.tabBuf = buffer(a.tabBuf, sidebarWidth, int(h))
		ctx := ebitencanvas.NewContext(a.tabBuf)
		a.tabRenderer(i).Render(ctx, a.lm, tab, i == a.selectedTab, sidebarWidth, h)
		blit(screen, a.tabBuf, 0, top)
		top += h
	}

	_, lowerHeight := a.lowerBox.Size()
	a.lowerBuf = buffer(a.lowerBuf, sidebarWidth, int(lowerHeight))
	ctx := ebitencanvas.NewContext(a.lowerBuf)
	a.lowerBox.Draw(ctx, sidebarWidth, lowerHeight)
	blit(screen, a.lowerBuf, 0, float64(a.height)-lowerHeight)
}

func (a *app) drawItems(screen *ebiten.Image) {
	width := a.itemWidth()
	_, cellHeight := a.cellSize()
	offset := a.scrollTop * a.maxScroll()

	mx, my := ebiten.CursorPosition()
	hoverIndex, hoverX, hoverY, hovering := a.itemAt(float64(mx), float64(my))

	first := int(offset / cellHeight)
	if first < 0 {
		first = 0
	}
	for i := first; i < len(a.items); i++ {
		top := float64(i)*cellHeight - offset
		if top > float64(a.height) {
			break
		}
		item := a.items[i]
		st := a.itemState(item)
		if hovering && i == hoverIndex {
			st.Hover = true
			st.HoverX = hoverX
			st.HoverY = hoverY
			if item.ID == a.pressedItem {
				st.Hotspot = a.pressedHotspot
			}
		}
		a.itemBuf = buffer(a.itemBuf, int(width), int(cellHeight))
		ctx := ebitencanvas.NewContext(a.itemBuf)
		a.renderer.Render(ctx, a.lm, st, width, cellHeight)
		blit(screen, a.itemBuf, sidebarWidth, top)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowTitle("mediashelf demo")
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a, err := newApp()
	if err != nil {
		log.Printf("startup failed: %v", err)
		os.Exit(1)
	}
	if err := ebiten.RunGame(a); err != nil {
		log.Printf("run failed: %v", err)
		os.Exit(1)
	}
}
