package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"golang.design/x/clipboard"

	"github.com/mediashelf/mediashelf/model"
)

// initClipboard makes clipboard.Init idempotent; the demo only needs
// it once a menu hotspot actually fires.
func (a *app) initClipboard() bool {
	if a.clipboardReady {
		return true
	}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return false
	}
	a.clipboardReady = true
	return true
}

// handleHotspot reacts to a released click on an item cell hotspot.
// The mutations here stand in for the backend; they exist to flip the
// cells through their states interactively.
func (a *app) handleHotspot(item *model.ItemInfo, hotspot string) {
	switch {
	case hotspot == "#show-context-menu":
		if a.initClipboard() {
			clipboard.Write(clipboard.FmtText, []byte(item.URL))
			log.Printf("copied %s to the clipboard", item.URL)
		}

	case hotspot == "play", hotspot == "thumbnail-play":
		a.playback = model.PlaybackState{PlayingID: item.ID}
		item.ItemViewed = true

	case hotspot == "play_pause":
		a.playback.Paused = !a.playback.Paused

	case hotspot == "delete", hotspot == "remove":
		a.removeItem(item.ID)

	case hotspot == "download", hotspot == "thumbnail-download":
		item.State = model.StateDownloading
		item.PendingAuto = false
		item.DownloadInfo = &model.DownloadInfo{
			State:       model.DownloadStateDownloading,
			TotalSize:   100 << 20,
			DisplayRate: "260 KB/s",
			DisplayETA:  "6 min",
		}

	case hotspot == "pause":
		item.DownloadInfo.State = model.DownloadStatePaused

	case hotspot == "resume":
		item.DownloadInfo.State = model.DownloadStateDownloading

	case hotspot == "cancel", hotspot == "cancel_auto_download":
		item.DownloadInfo = nil
		item.State = model.StateNew
		item.PendingAuto = false

	case hotspot == "keep":
		item.ExpirationDate = time.Time{}
		item.DisplayExpiration = ""
		a.keepAnimation[item.ID] = 0

	case hotspot == "stop_seeding":
		item.DownloadInfo = nil
		item.Downloaded = true

	case hotspot == "show_contents", hotspot == "show_local_file":
		log.Printf("would reveal %s", item.Name)

	case strings.HasPrefix(hotspot, "rate:"):
		if n, err := strconv.Atoi(strings.TrimPrefix(hotspot, "rate:")); err == nil {
			rating := n
			item.Rating = &rating
		}

	case strings.HasPrefix(hotspot, "description-link:"):
		url := strings.TrimPrefix(hotspot, "description-link:")
		log.Printf("would open %s", url)
	}
}

func (a *app) removeItem(id string) {
	for i, item := range a.items {
		if item.ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return
		}
	}
}

// handleTabHotspot reacts to a click in the sidebar.
func (a *app) handleTabHotspot(index int, hotspot string) {
	if hotspot == "eject-device" {
		a.tabs[index].Mounted = false
		log.Printf("ejected %s", a.tabs[index].Name)
		return
	}
	a.selectedTab = index
}
