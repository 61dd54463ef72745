package style

import (
	"strings"
	"testing"
	"time"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

// scanHotspots sweeps the cell and collects every hotspot the renderer
// reports, exercising the same layout path that Render walks.
func scanHotspots(r *ItemRenderer, st render.State) map[string]bool {
	found := make(map[string]bool)
	for y := 0.0; y < itemHeight; y += 3 {
		for x := 0.0; x < itemMinWidth; x += 3 {
			if h := r.HotspotTest(&fakeLM{}, st, x, y, itemMinWidth, itemHeight); h != "" {
				found[h] = true
			}
		}
	}
	return found
}

func expectHotspots(t *testing.T, found map[string]bool, want, reject []string) {
	t.Helper()
	for _, h := range want {
		if !found[h] {
			t.Errorf("hotspot %q not found in %v", h, found)
		}
	}
	for _, h := range reject {
		if found[h] {
			t.Errorf("unexpected hotspot %q", h)
		}
	}
}

func standardRenderer() *ItemRenderer {
	return NewItemRenderer(ItemRendererConfig{Images: fakePool{}})
}

func TestItemRendererSize(t *testing.T) {
	r := standardRenderer()
	w, h := r.Size(&fakeLM{}, render.State{Info: &model.ItemInfo{}})
	if w != 600 || h != 147 {
		t.Errorf("size = %vx%v, want 600x147", w, h)
	}
}

func TestItemHotspotsDownloaded(t *testing.T) {
	info := model.ItemInfo{
		ID:         "a",
		Name:       "An Item",
		Downloaded: true,
		IsPlayable: true,
		ItemViewed: true,
		Watched:    true,
	}
	r := standardRenderer()
	found := scanHotspots(r, render.State{Info: &info})
	expectHotspots(t, found,
		[]string{"play", "#show-context-menu", "delete", "thumbnail-play"},
		[]string{"pause", "resume", "cancel", "keep", "download"})

	// painting walks the same layout without blowing up
	r.Render(&recordContext{}, &fakeLM{}, render.State{Info: &info}, itemMinWidth, itemHeight)
}

func TestItemHotspotsNotDownloaded(t *testing.T) {
	info := model.ItemInfo{
		ID:    "a",
		Name:  "An Item",
		State: model.StateNew,
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found,
		[]string{"download", "thumbnail-download", "#show-context-menu"},
		[]string{"play", "delete"})
}

func TestItemHotspotsDownloadMode(t *testing.T) {
	info := model.ItemInfo{
		ID:    "a",
		Name:  "An Item",
		State: model.StateDownloading,
		Size:  1000,
		DownloadInfo: &model.DownloadInfo{
			State:          model.DownloadStateDownloading,
			DownloadedSize: 300,
			TotalSize:      1000,
			DisplayETA:     "3 min",
			DisplayRate:    "1 MB/s",
		},
	}
	r := standardRenderer()
	found := scanHotspots(r, render.State{Info: &info})
	expectHotspots(t, found,
		[]string{"pause", "cancel", "#show-context-menu", "thumbnail-download"},
		[]string{"resume", "delete", "keep", "play"})

	r.Render(&recordContext{}, &fakeLM{}, render.State{Info: &info}, itemMinWidth, itemHeight)
}

func TestItemHotspotsPausedDownload(t *testing.T) {
	info := model.ItemInfo{
		ID:    "a",
		Name:  "An Item",
		State: model.StatePaused,
		Size:  1000,
		DownloadInfo: &model.DownloadInfo{
			State:          model.DownloadStatePaused,
			DownloadedSize: 300,
			TotalSize:      1000,
		},
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found, []string{"resume", "cancel"}, []string{"pause"})
}

func TestItemDownloadModeWithoutDownloadInfo(t *testing.T) {
	// a just-queued download: the item state already says downloading
	// but the transfer stats have not arrived yet
	info := model.ItemInfo{
		ID:    "a",
		Name:  "An Item",
		State: model.StateDownloading,
		Size:  100 << 20,
	}
	r := standardRenderer()
	r.Render(&recordContext{}, &fakeLM{}, render.State{Info: &info}, itemMinWidth, itemHeight)

	found := scanHotspots(r, render.State{Info: &info})
	expectHotspots(t, found, []string{"pause", "cancel"}, nil)
}

func TestItemTextDrawnWithWidthConstraint(t *testing.T) {
	info := model.ItemInfo{
		ID:          "a",
		Name:        "A Name Long Enough To Overflow Any Column In The Cell",
		Description: "a few words of description",
		Downloaded:  true,
		IsPlayable:  true,
	}
	lm := &fakeLM{}
	standardRenderer().Render(&recordContext{}, lm, render.State{Info: &info}, itemMinWidth, itemHeight)

	var title, description *fakeTextBox
	for _, tb := range lm.boxes {
		switch {
		case string(tb.text) == info.Name:
			title = tb
		case strings.Contains(string(tb.text), info.Description):
			description = tb
		}
	}
	if title == nil || description == nil {
		t.Fatal("title or description box was never minted")
	}
	if title.wrap != canvas.WrapTruncatedChar {
		t.Errorf("title wrap = %v, want WrapTruncatedChar", title.wrap)
	}
	for name, tb := range map[string]*fakeTextBox{"title": title, "description": description} {
		if len(tb.drawnWidths) != 1 {
			t.Fatalf("%s drawn %d times, want once", name, len(tb.drawnWidths))
		}
		if w := tb.drawnWidths[0]; w <= 0 || w >= itemMinWidth {
			t.Errorf("%s drawn at width %v, want a column-sized constraint", name, w)
		}
	}
}

func TestItemKeepButtonWhenExpiring(t *testing.T) {
	info := model.ItemInfo{
		ID:                "a",
		Name:              "An Item",
		Downloaded:        true,
		IsPlayable:        true,
		ItemViewed:        true,
		Watched:           true,
		ExpirationDate:    time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC),
		DisplayExpiration: "Expires in 6 days",
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found, []string{"keep"}, nil)
}

func TestItemDescriptionLinks(t *testing.T) {
	info := model.ItemInfo{
		ID:          "a",
		Name:        "An Item",
		ItemViewed:  true,
		Description: "click here for more",
		Links:       []model.LinkSpan{{Start: 0, End: 10, URL: "http://example.com/"}},
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found, []string{"description-link:http://example.com/"}, nil)
}

func TestItemTorrentFolderShowsContents(t *testing.T) {
	info := model.ItemInfo{
		ID:          "a",
		Name:        "An Item",
		Downloaded:  true,
		ItemViewed:  true,
		Watched:     true,
		HasChildren: true,
		DownloadInfo: &model.DownloadInfo{
			State:   model.DownloadStateUploading,
			Torrent: true,
		},
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found, []string{"show_contents"}, nil)
	// uploading torrents also offer the stop seeding button
	expectHotspots(t, found, []string{"stop_seeding"}, nil)
}

func TestItemPendingAutoOffersCancel(t *testing.T) {
	info := model.ItemInfo{
		ID:          "a",
		Name:        "An Item",
		ItemViewed:  true,
		PendingAuto: true,
	}
	found := scanHotspots(standardRenderer(), render.State{Info: &info})
	expectHotspots(t, found, []string{"cancel_auto_download", "download"}, nil)
}

func TestItemSharingVariant(t *testing.T) {
	info := model.ItemInfo{
		ID:         "a",
		Name:       "An Item",
		Downloaded: true,
		IsPlayable: true,
		ItemViewed: true,
		Watched:    true,
		SourceType: "sharing",
	}
	r := NewItemRenderer(ItemRendererConfig{Images: fakePool{}, Variant: SharingVariant()})
	found := scanHotspots(r, render.State{Info: &info})
	// shared items can be copied to the library but never deleted here
	expectHotspots(t, found, []string{"download-sharing-item"}, []string{"delete"})
}

func TestItemPlaylistVariant(t *testing.T) {
	info := model.ItemInfo{
		ID:         "a",
		Name:       "An Item",
		Downloaded: true,
		IsPlayable: true,
		ItemViewed: true,
		Watched:    true,
	}
	r := NewItemRenderer(ItemRendererConfig{
		Images:  fakePool{},
		Variant: PlaylistVariant(fixedSorter{key: 2}),
	})
	found := scanHotspots(r, render.State{Info: &info})
	// the playlist cell removes from the playlist, not from disk
	expectHotspots(t, found, []string{"remove"}, []string{"delete"})
}

func TestItemThrobberCallback(t *testing.T) {
	var reported *model.ItemInfo
	r := NewItemRenderer(ItemRendererConfig{
		Images:          fakePool{},
		OnThrobberDrawn: func(info *model.ItemInfo) { reported = info },
	})
	info := model.ItemInfo{
		ID:    "a",
		Name:  "An Item",
		State: model.StateDownloading,
		DownloadInfo: &model.DownloadInfo{
			State:          model.DownloadStateDownloading,
			DownloadedSize: 300,
			TotalSize:      -1,
		},
	}
	st := render.State{Info: &info, Attrs: map[string]float64{"throbber-value": 7}}
	r.Render(&recordContext{}, &fakeLM{}, st, itemMinWidth, itemHeight)
	if reported != &info {
		t.Error("throbber callback not invoked with the rendered item")
	}
}

func TestItemHotspotTestOutsideElements(t *testing.T) {
	info := model.ItemInfo{ID: "a", Name: "An Item", ItemViewed: true}
	r := standardRenderer()
	// the top-left corner is bare cell padding
	if got := r.HotspotTest(&fakeLM{}, render.State{Info: &info}, 1, 1, itemMinWidth, itemHeight); got != "" {
		t.Errorf("hotspot in padding = %q, want none", got)
	}
}
