package widgetstate

// Per-display-type defaults. The key set of defaultColumns defines the
// closed set of known display types; every other table must cover
// exactly those keys.

var defaultViewType = map[string]ViewType{
	"videos":       StandardView,
	"music":        ListView,
	"others":       ListView,
	"downloading":  StandardView,
	"all-feeds":    StandardView,
	"feed":         StandardView,
	"search":       ListView,
	"sharing":      ListView,
	"device-video": StandardView,
	"device-audio": ListView,
	"playlist":     ListView,
}

var defaultColumnWidths = map[string]int{
	"state":           20,
	"name":            130,
	"artist":          110,
	"album":           100,
	"track":           30,
	"feed-name":       70,
	"length":          60,
	"genre":           65,
	"year":            40,
	"rating":          75,
	"size":            65,
	"status":          70,
	"date":            70,
	"eta":             60,
	"torrent-details": 160,
	"rate":            60,
	"description":     160,
}

var defaultSortColumn = map[string]string{
	"videos":       "name",
	"music":        "artist",
	"others":       "name",
	"downloading":  "eta",
	"all-feeds":    "feed-name",
	"feed":         "date",
	"playlist":     "playlist",
	"search":       "name",
	"sharing":      "name",
	"device-video": "name",
	"device-audio": "artist",
}

var defaultColumns = map[string][]string{
	"videos":       {"state", "name", "length", "feed-name", "size"},
	"music":        {"state", "name", "artist", "album", "track", "feed-name", "length", "genre", "year", "rating"},
	"others":       {"name", "feed-name", "size"},
	"downloading":  {"name", "feed-name", "status", "eta", "rate", "torrent-details", "size"},
	"all-feeds":    {"state", "name", "feed-name", "length", "status", "size", "date"},
	"feed":         {"state", "name", "length", "status", "size", "date"},
	"search":       {"state", "name", "description"},
	"sharing":      {"state", "name", "length", "feed-name", "size"},
	"device-video": {"state", "name", "length", "feed-name", "size"},
	"device-audio": {"state", "name", "artist", "album", "track", "feed-name", "length", "genre", "year", "rating"},
	"playlist":     {"state", "name", "artist", "album", "track", "feed-name", "length", "genre", "year", "rating"},
}

// availableColumns is the defaults plus columns the user can opt in to.
var availableColumns = func() map[string][]string {
	extra := map[string][]string{
		"videos": {"rating"},
		"music":  {"size"},
		"others": {"rating"},
		"search": {"rating"},
	}
	out := make(map[string][]string, len(defaultColumns))
	for displayType, columns := range defaultColumns {
		available := append([]string(nil), columns...)
		available = append(available, extra[displayType]...)
		out[displayType] = available
	}
	return out
}()
