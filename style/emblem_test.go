package style

import (
	"testing"

	"github.com/mediashelf/mediashelf/canvas"
	"github.com/mediashelf/mediashelf/cellpack"
	"github.com/mediashelf/mediashelf/model"
	"github.com/mediashelf/mediashelf/render"
)

func newTestEmblemDrawer(isPodcast bool) *emblemDrawer {
	return &emblemDrawer{
		images:    newImageSet(fakePool{}),
		isPodcast: isPodcast,
		cfg:       defaultEmblemConfig(),
	}
}

func TestEmblemPrecedence(t *testing.T) {
	cfg := defaultEmblemConfig()
	resumable := model.ItemInfo{
		ID:                "a",
		Downloaded:        true,
		IsPlayable:        true,
		Watched:           true,
		ItemViewed:        true,
		ResumeTime:        90,
		FileType:          model.FileTypeVideo,
		DisplayResumeTime: "1:30",
	}

	cases := []struct {
		name     string
		info     model.ItemInfo
		playback model.PlaybackState
		wantKey  string
		wantText string
		wantBold bool
	}{
		{
			name: "drm wins over everything",
			info: model.ItemInfo{
				HasDRM:     true,
				Downloaded: true,
				IsPlayable: true,
				DownloadInfo: &model.DownloadInfo{
					State:             model.DownloadStateFailed,
					ShortReasonFailed: "no space",
				},
			},
			wantKey:  "drm",
			wantText: "DRM locked",
			wantBold: true,
		},
		{
			name: "failed beats queued",
			info: model.ItemInfo{
				PendingAuto: true,
				DownloadInfo: &model.DownloadInfo{
					State:             model.DownloadStateFailed,
					ShortReasonFailed: "no space",
				},
			},
			wantKey:  "failed",
			wantText: "Error-no space",
			wantBold: true,
		},
		{
			name:     "queued",
			info:     model.ItemInfo{PendingAuto: true},
			wantKey:  "queued",
			wantText: "Queued for Auto-download",
		},
		{
			name:     "playing reuses unplayed styling without bold",
			info:     model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			playback: model.PlaybackState{PlayingID: "a"},
			wantKey:  "unplayed",
			wantText: "Currently Playing",
		},
		{
			name:     "unplayed",
			info:     model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			wantKey:  "unplayed",
			wantText: "Unplayed",
			wantBold: true,
		},
		{
			name:     "resume",
			info:     resumable,
			wantKey:  "resume",
			wantText: "Resume at 1:30",
			wantBold: true,
		},
		{
			name:     "newly available",
			info:     model.ItemInfo{State: model.StateNew},
			wantKey:  "newly",
			wantText: "Newly Available",
			wantBold: true,
		},
		{
			name:    "nothing applies",
			info:    model.ItemInfo{ItemViewed: true},
			wantKey: "",
		},
	}

	d := newTestEmblemDrawer(false)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			st := render.State{
				Info:     &info,
				Playback: tc.playback,
				Resume:   model.ResumePrefs{Videos: true},
			}
			parts := d.calcParts(st)
			if parts.key != tc.wantKey {
				t.Fatalf("key = %q, want %q", parts.key, tc.wantKey)
			}
			if parts.text != tc.wantText {
				t.Errorf("text = %q, want %q", parts.text, tc.wantText)
			}
			if parts.bold != tc.wantBold {
				t.Errorf("bold = %v, want %v", parts.bold, tc.wantBold)
			}
		})
	}

	// pin the reused styling of the playing row to the unplayed colors
	info := model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true}
	st := render.State{Info: &info, Playback: model.PlaybackState{PlayingID: "a"}}
	parts := d.calcParts(st)
	if parts.color != cfg.unplayedColor || parts.shadow != cfg.unplayedShadow {
		t.Error("playing emblem should use the unplayed color pair")
	}
}

func TestEmblemResumePreference(t *testing.T) {
	base := model.ItemInfo{
		Downloaded: true,
		IsPlayable: true,
		Watched:    true,
		ItemViewed: true,
		ResumeTime: 90,
	}

	cases := []struct {
		name       string
		isPodcast  bool
		fileType   string
		resume     model.ResumePrefs
		wantResume bool
	}{
		{"video pref on", false, model.FileTypeVideo, model.ResumePrefs{Videos: true}, true},
		{"video pref off", false, model.FileTypeVideo, model.ResumePrefs{Podcasts: true, Music: true}, false},
		{"music pref on", false, model.FileTypeAudio, model.ResumePrefs{Music: true}, true},
		{"podcast overrides file type", true, model.FileTypeVideo, model.ResumePrefs{Podcasts: true}, true},
		{"podcast pref off", true, model.FileTypeVideo, model.ResumePrefs{Videos: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestEmblemDrawer(tc.isPodcast)
			info := base
			info.FileType = tc.fileType
			st := render.State{Info: &info, Resume: tc.resume}
			got := d.calcParts(st).key == "resume"
			if got != tc.wantResume {
				t.Errorf("resume emblem shown = %v, want %v", got, tc.wantResume)
			}
		})
	}

	// a resume emblem needs a nonzero resume position
	d := newTestEmblemDrawer(false)
	info := base
	info.FileType = model.FileTypeVideo
	info.ResumeTime = 0
	st := render.State{Info: &info, Resume: model.ResumePrefs{Videos: true}}
	if d.calcParts(st).key == "resume" {
		t.Error("resume emblem shown without a resume position")
	}
}

func TestEmblemButton(t *testing.T) {
	d := newTestEmblemDrawer(false)

	cases := []struct {
		name        string
		info        model.ItemInfo
		playback    model.PlaybackState
		pressed     string
		wantHotspot string
		wantImage   string
	}{
		{
			name:        "downloaded playable",
			info:        model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			wantHotspot: "play",
			wantImage:   "images/item-renderer-play.png",
		},
		{
			name:        "playing toggles pause",
			info:        model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			playback:    model.PlaybackState{PlayingID: "a"},
			wantHotspot: "play_pause",
			wantImage:   "images/item-renderer-pause.png",
		},
		{
			name:        "playing but paused offers play",
			info:        model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			playback:    model.PlaybackState{PlayingID: "a", Paused: true},
			wantHotspot: "play_pause",
			wantImage:   "images/item-renderer-play.png",
		},
		{
			name:        "pressed art while the hotspot is held",
			info:        model.ItemInfo{ID: "a", Downloaded: true, IsPlayable: true},
			pressed:     "play",
			wantHotspot: "play",
			wantImage:   "images/item-renderer-play-pressed.png",
		},
		{
			name:        "downloaded but not playable reveals the file",
			info:        model.ItemInfo{Downloaded: true},
			wantHotspot: "show_local_file",
			wantImage:   "button:" + revealInText,
		},
		{
			name:        "not downloaded",
			info:        model.ItemInfo{},
			wantHotspot: "download",
			wantImage:   "button:" + downloadText,
		},
		{
			name:        "torrent download",
			info:        model.ItemInfo{MimeType: model.MimeTypeTorrent},
			wantHotspot: "download",
			wantImage:   "button:" + downloadTorrentText,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info := tc.info
			st := render.State{Info: &info, Playback: tc.playback, Hotspot: tc.pressed}
			image, hotspot := d.makeEmblemButton(&fakeLM{}, st)
			if hotspot != tc.wantHotspot {
				t.Errorf("hotspot = %q, want %q", hotspot, tc.wantHotspot)
			}
			var name string
			switch img := image.(type) {
			case fakeImage:
				name = img.name
			case *fakeButton:
				name = img.name
				if tc.wantHotspot == "download" && img.icon == nil {
					t.Error("download button should carry the arrow icon")
				}
			default:
				t.Fatalf("unexpected image type %T", image)
			}
			if name != tc.wantImage {
				t.Errorf("image = %q, want %q", name, tc.wantImage)
			}
		})
	}
}

// oddPool serves odd-height art so centering offsets do not divide
// evenly.
type oddPool struct{ fakePool }

func (oddPool) Surface(path string) canvas.Image {
	return fakeImage{name: path, width: 16, height: 15}
}

func TestEmblemButtonCenteringFloors(t *testing.T) {
	d := &emblemDrawer{images: newImageSet(oddPool{}), cfg: defaultEmblemConfig()}
	info := model.ItemInfo{
		Downloaded: true,
		IsPlayable: true,
		Watched:    true,
		ItemViewed: true,
	}
	layout := cellpack.NewLayout()
	middle := cellpack.NewLayoutRect(0, 0, 400, 100)
	emblemBottom := 50.0
	d.addToLayout(layout, &fakeLM{}, render.State{Info: &info}, middle, emblemBottom)

	// a 15px button against the 20px emblem: the -2.5 centering offset
	// floors to -3, so the button sits 3px below the emblem top
	rect := layout.LastRect()
	if want := emblemBottom - 20 + 3; rect.Y != want {
		t.Errorf("button y = %v, want %v", rect.Y, want)
	}
}
