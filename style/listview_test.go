package style

import (
	"image/color"
	"testing"
	"time"

	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

func TestTextRendererColumns(t *testing.T) {
	info := model.ItemInfo{
		Artist:      "The Ones",
		DisplaySize: "1.2 GB",
		DisplayETA:  "3 min",
	}
	st := render.State{Info: &info}

	cases := []struct {
		column string
		want   string
	}{
		{"artist", "The Ones"},
		{"size", "1.2 GB"},
		{"eta", "3 min"},
		{"no-such-column", ""},
	}
	for _, tc := range cases {
		t.Run(tc.column, func(t *testing.T) {
			r := NewTextRenderer(tc.column)
			if got := r.column.value(st.Info); got != tc.want {
				t.Errorf("value = %q, want %q", got, tc.want)
			}
			// rendering must not panic even for unknown columns
			r.Render(&recordContext{}, &fakeLM{}, st, 100, 20)
		})
	}
}

func TestTextRendererDefaults(t *testing.T) {
	r := NewTextRenderer("artist")
	if r.column.color != listTextColor {
		t.Errorf("default color = %v, want %v", r.column.color, listTextColor)
	}
	minWidth, _ := r.Size(&fakeLM{}, render.State{Info: &model.ItemInfo{}})
	if minWidth != 50 {
		t.Errorf("min width = %v, want 50", minWidth)
	}
	if got := r.HotspotTest(&fakeLM{}, render.State{}, 10, 10, 100, 20); got != "" {
		t.Errorf("text cells are inert, got hotspot %q", got)
	}
}

type fixedSorter struct {
	key int
}

func (s fixedSorter) SortKey(*model.ItemInfo) int { return s.key }

func TestPlaylistOrderRenderer(t *testing.T) {
	r := NewPlaylistOrderRenderer(fixedSorter{key: 7})
	if got := r.column.value(&model.ItemInfo{}); got != "7" {
		t.Errorf("value = %q, want %q", got, "7")
	}
}

func TestNameRendererDownloadButton(t *testing.T) {
	cases := []struct {
		name       string
		info       model.ItemInfo
		wantButton bool
	}{
		{"not downloaded", model.ItemInfo{State: model.StateNew}, true},
		{"downloaded", model.ItemInfo{Downloaded: true}, false},
		{"downloading", model.ItemInfo{State: model.StateDownloading}, false},
		{"paused", model.ItemInfo{State: model.StatePaused}, false},
	}
	r := NewNameRenderer(fakePool{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			info.Name = "An Item"
			st := render.State{Info: &info}
			if got := r.shouldShowDownloadButton(&info); got != tc.wantButton {
				t.Fatalf("shouldShowDownloadButton = %v, want %v", got, tc.wantButton)
			}
			// the button sits at the right edge of the cell
			hotspot := r.HotspotTest(&fakeLM{}, st, 195, 8, 200, 16)
			if tc.wantButton && hotspot != "download" {
				t.Errorf("hotspot at right edge = %q, want %q", hotspot, "download")
			}
			if !tc.wantButton && hotspot == "download" {
				t.Error("unexpected download hotspot")
			}
		})
	}
}

func TestStatusRendererText(t *testing.T) {
	expiring := time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		info      model.ItemInfo
		wantText  string
		wantColor color.NRGBA
	}{
		{
			name:      "unplayed",
			info:      model.ItemInfo{Downloaded: true, IsPlayable: true},
			wantText:  "Unplayed",
			wantColor: UnplayedColor,
		},
		{
			name: "expiring",
			info: model.ItemInfo{
				Downloaded:             true,
				IsPlayable:             true,
				Watched:                true,
				ExpirationDate:         expiring,
				DisplayExpirationShort: "6 days",
			},
			wantText:  "6 days",
			wantColor: ExpiringTextColor,
		},
		{
			name: "download paused",
			info: model.ItemInfo{
				DownloadInfo: &model.DownloadInfo{State: model.DownloadStatePaused},
			},
			wantText:  "paused",
			wantColor: DownloadingColor,
		},
		{
			name: "download queued",
			info: model.ItemInfo{
				DownloadInfo: &model.DownloadInfo{State: model.DownloadStatePending},
			},
			wantText:  "queued",
			wantColor: DownloadingColor,
		},
		{
			name: "download failed",
			info: model.ItemInfo{
				DownloadInfo: &model.DownloadInfo{
					State:             model.DownloadStateFailed,
					ShortReasonFailed: "no space",
				},
			},
			wantText:  "no space",
			wantColor: DownloadingColor,
		},
		{
			name: "startup activity",
			info: model.ItemInfo{
				DownloadInfo: &model.DownloadInfo{
					State:           model.DownloadStateDownloading,
					StartupActivity: "connecting",
				},
			},
			wantText:  "connecting",
			wantColor: DownloadingColor,
		},
		{
			name:      "newly available",
			info:      model.ItemInfo{},
			wantText:  "Newly Available",
			wantColor: AvailableColor,
		},
		{
			name:     "nothing to say",
			info:     model.ItemInfo{ItemViewed: true},
			wantText: "",
		},
		{
			name: "active download shows no text",
			info: model.ItemInfo{
				ItemViewed:   true,
				DownloadInfo: &model.DownloadInfo{State: model.DownloadStateDownloading, Rate: 2048},
			},
			wantText: "",
		},
	}
	r := NewStatusRenderer(fakePool{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			text, textColor := r.calcStatusText(&info)
			if text != tc.wantText {
				t.Fatalf("text = %q, want %q", text, tc.wantText)
			}
			if text != "" && textColor != tc.wantColor {
				t.Errorf("color = %v, want %v", textColor, tc.wantColor)
			}
		})
	}
}

func TestStatusRendererProgressMode(t *testing.T) {
	dl := &model.DownloadInfo{State: model.DownloadStateDownloading, DownloadedSize: 200}
	cases := []struct {
		name         string
		info         model.ItemInfo
		wantHotspots []string
		skipHotspots []string
	}{
		{
			name:         "downloading",
			info:         model.ItemInfo{State: model.StateDownloading, Size: 1000, DownloadInfo: dl},
			wantHotspots: []string{"pause", "cancel"},
			skipHotspots: []string{"resume"},
		},
		{
			name: "paused",
			info: model.ItemInfo{
				State:        model.StatePaused,
				Size:         1000,
				DownloadInfo: &model.DownloadInfo{State: model.DownloadStatePaused},
			},
			wantHotspots: []string{"resume", "cancel"},
			skipHotspots: []string{"pause"},
		},
		{
			name: "pending stays in text mode",
			info: model.ItemInfo{
				State:        model.StateDownloading,
				DownloadInfo: &model.DownloadInfo{State: model.DownloadStatePending},
			},
			wantHotspots: []string{"cancel"},
			skipHotspots: []string{"pause", "resume"},
		},
	}
	r := NewStatusRenderer(fakePool{})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			st := render.State{Info: &info}
			found := make(map[string]bool)
			for x := 0.0; x < 120; x++ {
				if h := r.HotspotTest(&fakeLM{}, st, x, 10, 120, 20); h != "" {
					found[h] = true
				}
			}
			for _, want := range tc.wantHotspots {
				if !found[want] {
					t.Errorf("hotspot %q not found in %v", want, found)
				}
			}
			for _, skip := range tc.skipHotspots {
				if found[skip] {
					t.Errorf("unexpected hotspot %q", skip)
				}
			}
			// paint path must agree with the hit-test path
			r.Render(&recordContext{}, &fakeLM{}, st, 120, 20)
		})
	}
}

func TestStatusRendererKeepButton(t *testing.T) {
	info := model.ItemInfo{
		Downloaded:             true,
		IsPlayable:             true,
		Watched:                true,
		ExpirationDate:         time.Date(2011, 6, 1, 0, 0, 0, 0, time.UTC),
		DisplayExpirationShort: "6 days",
	}
	r := NewStatusRenderer(fakePool{})
	st := render.State{Info: &info}
	found := ""
	for x := 0.0; x < 120; x++ {
		if h := r.HotspotTest(&fakeLM{}, st, x, 10, 120, 20); h == "keep" {
			found = h
			break
		}
	}
	if found != "keep" {
		t.Error("expiring item should offer a keep button")
	}
}
