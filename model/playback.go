package model

// PlaybackState is a read-only snapshot of the playback engine, taken
// by the host before each render pass and injected into the renderers.
type PlaybackState struct {
	// PlayingID is the id of the item loaded in the engine, or "".
	PlayingID string
	Paused    bool
}

// IsPlayingItem reports whether the given item is the one loaded in the
// playback engine.
func (p PlaybackState) IsPlayingItem(id string) bool {
	return p.PlayingID != "" && p.PlayingID == id
}

// ResumePrefs is a snapshot of the per-media-kind resume preferences.
type ResumePrefs struct {
	Podcasts bool
	Videos   bool
	Music    bool
}

// TabInfo is the data object for sidebar tab cells.
type TabInfo struct {
	Name        string
	Icon        string
	ActiveIcon  string
	Unwatched   int
	Available   int
	Downloading int
	Tall        bool
	// Fake marks placeholder device tabs that render without bubbles.
	Fake bool
	// Mounted is set for connected device tabs, which get an eject
	// hotspot.
	Mounted bool
}
