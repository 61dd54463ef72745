package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mediashelf/mediashelf/model"
)

// demoDisplayID is the stable display id of the demo feed, derived so
// widget state written by a previous run is picked up again.
var demoDisplayID = uuid.NewMD5(uuid.NameSpaceURL, []byte("mediashelf-demo/feed")).String()

func newItemID() string { return uuid.NewString() }

// demoItems builds one item per interesting renderer state: every
// emblem row, an in-flight download with progress, a torrent with
// startup activity, a paused transfer, and a plain watched item.
func demoItems() []*model.ItemInfo {
	plain := func(name string) *model.ItemInfo {
		return &model.ItemInfo{
			ID:              newItemID(),
			Name:            name,
			FeedName:        "Demo Channel",
			Description:     "A synthetic library entry used to exercise the cell renderers.",
			FileType:        model.FileTypeVideo,
			IsPlayable:      true,
			Downloaded:      true,
			Watched:         true,
			ItemViewed:      true,
			DisplayDate:     "Aug 29 2026",
			DisplayDuration: "12:34",
			DisplaySize:     "210 MB",
			FileFormat:      ".mp4",
			URL:             "https://example.com/items/" + name,
		}
	}

	unplayed := plain("Unplayed Episode")
	unplayed.Watched = false
	unplayed.ItemViewed = true

	newly := plain("Newly Available Episode")
	newly.Downloaded = false
	newly.State = model.StateNew
	newly.ItemViewed = false
	newly.Watched = false

	drm := plain("Protected Episode")
	drm.HasDRM = true
	drm.DisplayDRM = "Protected by DRM"

	resume := plain("Half-Watched Episode")
	resume.ResumeTime = 754
	resume.DisplayResumeTime = "12:34"

	expiring := plain("Expiring Episode")
	expiring.ExpirationDate = time.Now().Add(72 * time.Hour)
	expiring.DisplayExpiration = "Expires in 3 days"
	expiring.DisplayExpirationShort = "3 days"

	linked := plain("Episode With Links")
	linked.Description = "Watch the full series at example.com for more."
	linked.Links = []model.LinkSpan{{Start: 25, End: 36, URL: "https://example.com/series"}}

	downloading := &model.ItemInfo{
		ID:       newItemID(),
		Name:     "Downloading Episode",
		FeedName: "Demo Channel",
		FileType: model.FileTypeVideo,
		State:    model.StateDownloading,
		DownloadInfo: &model.DownloadInfo{
			State:                 model.DownloadStateDownloading,
			Rate:                  350 * 1024,
			DownloadedSize:        40 << 20,
			TotalSize:             120 << 20,
			DisplayRate:           "350 KB/s",
			DisplayETA:            "4 min",
			DisplayDownloadedSize: "40 MB",
		},
		DisplaySize: "120 MB",
		URL:         "https://example.com/items/downloading",
	}

	throbbing := &model.ItemInfo{
		ID:       newItemID(),
		Name:     "Sizing Up Episode",
		FeedName: "Demo Channel",
		State:    model.StateDownloading,
		DownloadInfo: &model.DownloadInfo{
			State:                 model.DownloadStateDownloading,
			TotalSize:             -1,
			DownloadedSize:        3 << 20,
			DisplayRate:           "180 KB/s",
			DisplayDownloadedSize: "3 MB",
		},
		URL: "https://example.com/items/sizing-up",
	}

	torrent := &model.ItemInfo{
		ID:       newItemID(),
		Name:     "Torrent Season Pack",
		FeedName: "Demo Channel",
		State:    model.StateDownloading,
		MimeType: model.MimeTypeTorrent,
		DownloadInfo: &model.DownloadInfo{
			State:           model.DownloadStateDownloading,
			Torrent:         true,
			TotalSize:       700 << 20,
			DownloadedSize:  80 << 20,
			StartupActivity: "connecting to peers",
		},
		Connections: 12,
		Seeders:     4,
		Leechers:    9,
		URL:         "https://example.com/items/season-pack",
	}

	paused := &model.ItemInfo{
		ID:       newItemID(),
		Name:     "Paused Episode",
		FeedName: "Demo Channel",
		State:    model.StatePaused,
		DownloadInfo: &model.DownloadInfo{
			State:                 model.DownloadStatePaused,
			TotalSize:             90 << 20,
			DownloadedSize:        60 << 20,
			DisplayDownloadedSize: "60 MB",
		},
		URL: "https://example.com/items/paused",
	}

	failed := &model.ItemInfo{
		ID:       newItemID(),
		Name:     "Failed Episode",
		FeedName: "Demo Channel",
		DownloadInfo: &model.DownloadInfo{
			State:             model.DownloadStateFailed,
			ShortReasonFailed: "Connection timed out",
		},
		URL: "https://example.com/items/failed",
	}

	items := []*model.ItemInfo{
		unplayed, newly, drm, resume, expiring, linked,
		downloading, throbbing, torrent, paused, failed,
	}
	for i := 2; i <= 6; i++ {
		items = append(items, plain(fmt.Sprintf("Watched Episode %d", i)))
	}
	return items
}

// demoTabs builds the sidebar: a few feed tabs with count bubbles plus
// one mounted device tab for the eject hotspot.
func demoTabs() []model.TabInfo {
	return []model.TabInfo{
		{Name: "Library", Icon: "images/icon-library.png", Tall: true},
		{Name: "Demo Channel", Icon: "images/icon-feed.png", Unwatched: 3, Available: 2},
		{Name: "Long Tail Science Weekly", Icon: "images/icon-feed.png", Downloading: 4},
		{Name: "Camera Phone", Icon: "images/icon-device.png", Mounted: true},
	}
}
