// Package model holds the read-only data contracts consumed by the
// cell renderers: the item/download attributes handed over row by row,
// and the injected playback/preference snapshots. All display strings
// arrive already formatted and localized; this package never formats.
package model

import "time"

// Item lifecycle states as reported by the backing store.
const (
	StateNew             = "new"
	StateDownloading     = "downloading"
	StatePaused          = "paused"
	StateNewlyDownloaded = "newly-downloaded"
)

// Download transfer sub-states.
const (
	DownloadStateDownloading = "downloading"
	DownloadStatePaused      = "paused"
	DownloadStatePending     = "pending"
	DownloadStateFailed      = "failed"
	DownloadStateUploading   = "uploading"
)

// Media kinds, used to pick the matching resume preference.
const (
	FileTypeVideo = "video"
	FileTypeAudio = "audio"
)

// MimeTypeTorrent marks an item whose download target is a torrent.
const MimeTypeTorrent = "application/x-bittorrent"

// DownloadInfo describes an in-flight or finished transfer. A nil
// DownloadInfo on ItemInfo means the item has never been downloaded.
type DownloadInfo struct {
	State          string
	Rate           int64
	DownloadedSize int64
	// TotalSize is negative while the total is still unknown.
	TotalSize         int64
	Torrent           bool
	StartupActivity   string
	ShortReasonFailed string

	// Display-ready strings, formatted by the collaborator.
	DisplayRate           string
	DisplayETA            string
	DisplayDownloadedSize string
}

// ItemInfo is the per-row data object. Fields are consumed as given;
// any of the optional ones may be zero and the renderers degrade by
// omitting the matching element.
type ItemInfo struct {
	ID   string
	Name string

	// Description is the stripped description text; Links index into it
	// by rune offsets. See NormalizeLinks for the validation rule.
	Description string
	Links       []LinkSpan

	FeedName   string
	State      string
	SourceType string

	Downloaded  bool
	IsPlayable  bool
	IsPlaying   bool
	Watched     bool
	ItemViewed  bool
	IsExternal  bool
	HasDRM      bool
	PendingAuto bool
	// HasChildren is set for torrent folders with browsable contents.
	HasChildren bool

	ExpirationDate time.Time
	ResumeTime     int

	FileType string
	MimeType string
	Size     int64

	Thumbnail string

	// Explicit user rating and inferred rating; nil when unset.
	Rating     *int
	AutoRating *int

	// Torrent statistics.
	Connections int
	Seeders     int
	Leechers    int
	UpRate      int64
	UpTotal     int64
	UpDownRatio float64

	DownloadInfo *DownloadInfo

	// Display-ready strings, formatted by the collaborator.
	DisplayDate            string
	DisplayDuration        string
	DisplaySize            string
	FileFormat             string
	DisplayRate            string
	DisplayETA             string
	DisplayTorrentDetails  string
	DisplayDateAdded       string
	DisplayLastPlayed      string
	DisplayDRM             string
	DisplayKind            string
	DisplayTrack           string
	DisplayYear            string
	DisplayExpiration      string
	DisplayExpirationShort string
	DisplayResumeTime      string
	DisplayUpRate          string
	DisplayUpTotal         string
	DescriptionOneline     string
	Artist                 string
	Album                  string
	Genre                  string
	Show                   string
	URL                    string
}

// DownloadState returns the transfer sub-state, or "" without download
// info.
func (i *ItemInfo) DownloadState() string {
	if i.DownloadInfo == nil {
		return ""
	}
	return i.DownloadInfo.State
}

// HasExpiration reports whether the item carries an expiration date.
func (i *ItemInfo) HasExpiration() bool {
	return !i.ExpirationDate.IsZero()
}
