package widgetstate

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

// recordingSaver counts persistence calls and remembers the last
// saved entities.
type recordingSaver struct {
	displaySaves int
	viewSaves    int
	lastDisplay  *DisplayInfo
	lastView     *ViewInfo
}

func (s *recordingSaver) SaveDisplayState(d *DisplayInfo) {
	s.displaySaves++
	s.lastDisplay = d
}

func (s *recordingSaver) SaveViewState(v *ViewInfo) {
	s.viewSaves++
	s.lastView = v
}

func newTestStore() (*Store, *recordingSaver) {
	saver := &recordingSaver{}
	return NewStore(saver), saver
}

func TestSelectedViewDefaults(t *testing.T) {
	tests := []struct {
		displayType string
		want        ViewType
	}{
		{"videos", StandardView},
		{"music", ListView},
		{"downloading", StandardView},
		{"search", ListView},
		{"playlist", ListView},
		{"device-video", StandardView},
	}
	store, _ := newTestStore()
	for _, tt := range tests {
		got, err := store.SelectedView(tt.displayType, "d1")
		if err != nil {
			t.Fatalf("SelectedView(%q): %v", tt.displayType, err)
		}
		if got != tt.want {
			t.Errorf("SelectedView(%q) = %v, want %v", tt.displayType, got, tt.want)
		}
	}
}

func TestSetSelectedView(t *testing.T) {
	store, saver := newTestStore()
	if err := store.SetSelectedView("videos", "d1", ListView); err != nil {
		t.Fatal(err)
	}
	got, err := store.SelectedView("videos", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if got != ListView {
		t.Errorf("SelectedView = %v, want ListView", got)
	}
	// One save for the lazy create, one for the mutation.
	if saver.displaySaves != 2 {
		t.Errorf("displaySaves = %d, want 2", saver.displaySaves)
	}
	// A different display id is untouched.
	got, err = store.SelectedView("videos", "d2")
	if err != nil {
		t.Fatal(err)
	}
	if got != StandardView {
		t.Errorf("SelectedView for other display = %v, want StandardView", got)
	}
}

func TestUnknownDisplayType(t *testing.T) {
	store, saver := newTestStore()
	_, err := store.SelectedView("bogus", "d1")
	if !errors.Is(err, ErrUnknownDisplayType) {
		t.Errorf("SelectedView error = %v, want ErrUnknownDisplayType", err)
	}
	if saver.displaySaves != 0 {
		t.Errorf("displaySaves = %d, want 0", saver.displaySaves)
	}
}

func TestLazyCreatePersistsOnce(t *testing.T) {
	store, saver := newTestStore()
	for i := 0; i < 3; i++ {
		if _, err := store.Filters("feed", "d9"); err != nil {
			t.Fatal(err)
		}
	}
	if saver.displaySaves != 1 {
		t.Errorf("displaySaves after repeated reads = %d, want 1", saver.displaySaves)
	}
	for i := 0; i < 3; i++ {
		if _, err := store.SortState("feed", "d9", StandardView); err != nil {
			t.Fatal(err)
		}
	}
	if saver.viewSaves != 1 {
		t.Errorf("viewSaves after repeated reads = %d, want 1", saver.viewSaves)
	}
}

func TestToggleFilter(t *testing.T) {
	tests := []struct {
		name    string
		current Filter
		toggle  Filter
		want    Filter
	}{
		{"enable unwatched", FilterViewAll, FilterUnwatched, FilterUnwatched},
		{"disable unwatched", FilterUnwatched, FilterUnwatched, FilterViewAll},
		{"stack downloaded on unwatched", FilterUnwatched, FilterDownloaded, FilterUnwatched | FilterDownloaded},
		{"view-all clears everything", FilterUnwatched | FilterDownloaded, FilterViewAll, FilterViewAll},
		{"view-all on empty stays empty", FilterViewAll, FilterViewAll, FilterViewAll},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToggleFilter(tt.current, tt.toggle); got != tt.want {
				t.Errorf("ToggleFilter(%v, %v) = %v, want %v", tt.current, tt.toggle, got, tt.want)
			}
		})
	}
}

func TestToggleFiltersOnStore(t *testing.T) {
	store, _ := newTestStore()
	if err := store.ToggleFilters("videos", "d1", FilterUnwatched); err != nil {
		t.Fatal(err)
	}
	if err := store.ToggleFilters("videos", "d1", FilterNonFeed); err != nil {
		t.Fatal(err)
	}
	got, err := store.Filters("videos", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if got != FilterUnwatched|FilterNonFeed {
		t.Errorf("Filters = %v, want %v", got, FilterUnwatched|FilterNonFeed)
	}
	if err := store.ToggleFilters("videos", "d1", FilterViewAll); err != nil {
		t.Fatal(err)
	}
	got, err = store.Filters("videos", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsViewAll() {
		t.Errorf("Filters after view-all = %v, want view-all", got)
	}
}

func TestSortStateDefaultAndRevert(t *testing.T) {
	store, _ := newTestStore()

	// Never set: the display type default.
	got, err := store.SortState("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != "name" {
		t.Errorf("default sort = %q, want %q", got, "name")
	}

	// Set to a column that is enabled.
	columns, err := store.ColumnsEnabled("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetColumnsEnabled("videos", "d1", ListView, append(columns, "rating")); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSortState("videos", "d1", ListView, "-rating"); err != nil {
		t.Fatal(err)
	}
	got, err = store.SortState("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-rating" {
		t.Errorf("sort after set = %q, want %q", got, "-rating")
	}

	// Disabling the sort column reverts to the default. The "-"
	// prefix must not hide the match.
	if err := store.ToggleColumn("videos", "d1", ListView, "rating"); err != nil {
		t.Fatal(err)
	}
	got, err = store.SortState("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != "name" {
		t.Errorf("sort after disabling column = %q, want %q", got, "name")
	}
}

func TestSortStateStandardViewIgnoresColumns(t *testing.T) {
	store, _ := newTestStore()
	// "artist" is not a videos column, but the standard view does not
	// consult the column set.
	if err := store.SetSortState("videos", "d1", StandardView, "artist"); err != nil {
		t.Fatal(err)
	}
	got, err := store.SortState("videos", "d1", StandardView)
	if err != nil {
		t.Fatal(err)
	}
	if got != "artist" {
		t.Errorf("standard view sort = %q, want %q", got, "artist")
	}
}

func TestSortStateIsPerView(t *testing.T) {
	store, _ := newTestStore()
	if err := store.SetSortState("feed", "d1", StandardView, "size"); err != nil {
		t.Fatal(err)
	}
	got, err := store.SortState("feed", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != "date" {
		t.Errorf("list view sort = %q, want untouched default %q", got, "date")
	}
}

func TestColumnsEnabled(t *testing.T) {
	store, _ := newTestStore()

	got, err := store.ColumnsEnabled("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"state", "name", "description"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("default columns = %v, want %v", got, want)
	}

	// Mutating the returned slice must not leak into the store.
	got[0] = "mutated"
	again, err := store.ColumnsEnabled("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("columns after caller mutation = %v, want %v", again, want)
	}

	if _, err := store.ColumnsEnabled("search", "d1", StandardView); !errors.Is(err, ErrNotListView) {
		t.Errorf("ColumnsEnabled(standard) error = %v, want ErrNotListView", err)
	}
}

func TestToggleColumn(t *testing.T) {
	store, _ := newTestStore()
	if err := store.ToggleColumn("search", "d1", ListView, "rating"); err != nil {
		t.Fatal(err)
	}
	got, err := store.ColumnsEnabled("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"state", "name", "description", "rating"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("columns after enable = %v, want %v", got, want)
	}
	if err := store.ToggleColumn("search", "d1", ListView, "description"); err != nil {
		t.Fatal(err)
	}
	got, err = store.ColumnsEnabled("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"state", "name", "rating"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("columns after disable = %v, want %v", got, want)
	}
}

func TestColumnWidths(t *testing.T) {
	store, _ := newTestStore()

	got, err := store.ColumnWidths("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"state": 20, "name": 130, "description": 160}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("default widths = %v, want %v", got, want)
	}

	if err := store.UpdateColumnWidths("search", "d1", ListView, map[string]int{"name": 200}); err != nil {
		t.Fatal(err)
	}
	got, err = store.ColumnWidths("search", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got["name"] != 200 {
		t.Errorf("width after update = %d, want 200", got["name"])
	}
	if got["state"] != 20 {
		t.Errorf("untouched width = %d, want 20", got["state"])
	}

	if _, err := store.ColumnWidths("search", "d1", StandardView); !errors.Is(err, ErrNotListView) {
		t.Errorf("ColumnWidths(standard) error = %v, want ErrNotListView", err)
	}
}

func TestScrollPosition(t *testing.T) {
	store, _ := newTestStore()
	got, err := store.ScrollPosition("music", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != (ScrollPosition{}) {
		t.Errorf("default scroll = %v, want zero", got)
	}
	if err := store.SetScrollPosition("music", "d1", ListView, ScrollPosition{X: 3, Y: 450}); err != nil {
		t.Fatal(err)
	}
	got, err = store.ScrollPosition("music", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if got != (ScrollPosition{X: 3, Y: 450}) {
		t.Errorf("scroll after set = %v", got)
	}
}

func TestColumnsAvailable(t *testing.T) {
	got, err := ColumnsAvailable("videos")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"state", "name", "length", "feed-name", "size", "rating"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnsAvailable(videos) = %v, want %v", got, want)
	}
	if _, err := ColumnsAvailable("bogus"); !errors.Is(err, ErrUnknownDisplayType) {
		t.Errorf("ColumnsAvailable(bogus) error = %v, want ErrUnknownDisplayType", err)
	}
}

func TestDefaultTablesCoverAllDisplayTypes(t *testing.T) {
	for _, displayType := range DisplayTypes() {
		if _, ok := defaultViewType[displayType]; !ok {
			t.Errorf("defaultViewType missing %q", displayType)
		}
		if _, ok := defaultSortColumn[displayType]; !ok {
			t.Errorf("defaultSortColumn missing %q", displayType)
		}
		if _, ok := availableColumns[displayType]; !ok {
			t.Errorf("availableColumns missing %q", displayType)
		}
	}
}

func TestSetupSeedsWithoutSaving(t *testing.T) {
	store, saver := newTestStore()
	view := ListView
	store.SetupDisplays([]*DisplayInfo{
		{Key: DisplayKey{Type: "videos", ID: "d1"}, SelectedView: &view},
	})
	store.SetupViews([]*ViewInfo{
		{Key: ViewKey{Type: "videos", ID: "d1", View: ListView}, SortState: "-size"},
	})
	if saver.displaySaves != 0 || saver.viewSaves != 0 {
		t.Fatalf("seeding saved: displays=%d views=%d", saver.displaySaves, saver.viewSaves)
	}
	got, err := store.SelectedView("videos", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if got != ListView {
		t.Errorf("seeded SelectedView = %v, want ListView", got)
	}
	sort, err := store.SortState("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if sort != "-size" {
		t.Errorf("seeded sort = %q, want %q", sort, "-size")
	}
	// Reads of seeded entities do not lazily re-create.
	if saver.displaySaves != 0 || saver.viewSaves != 0 {
		t.Errorf("reads of seeded state saved: displays=%d views=%d", saver.displaySaves, saver.viewSaves)
	}
}

func TestFileSaverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widgetstate.json")

	saver, err := NewFileSaver(path)
	if err != nil {
		t.Fatal(err)
	}
	store := NewStore(saver)
	if err := store.SetSelectedView("videos", "d1", ListView); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSortState("videos", "d1", ListView, "-size"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := NewFileSaver(path)
	if err != nil {
		t.Fatal(err)
	}
	store2 := NewStore(reloaded)
	store2.SetupDisplays(reloaded.Displays())
	store2.SetupViews(reloaded.Views())

	got, err := store2.SelectedView("videos", "d1")
	if err != nil {
		t.Fatal(err)
	}
	if got != ListView {
		t.Errorf("reloaded SelectedView = %v, want ListView", got)
	}
	sort, err := store2.SortState("videos", "d1", ListView)
	if err != nil {
		t.Fatal(err)
	}
	if sort != "-size" {
		t.Errorf("reloaded sort = %q, want %q", sort, "-size")
	}
}

func TestFileSaverMissingFile(t *testing.T) {
	saver, err := NewFileSaver(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(saver.Displays()) != 0 || len(saver.Views()) != 0 {
		t.Error("fresh saver not empty")
	}
}
