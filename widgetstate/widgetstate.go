// Package widgetstate stores per-display and per-view UI state:
// selected view, active filters, enabled list-view columns and widths,
// sort key, and scroll position. Entries are created lazily on first
// access and every mutation is pushed to a persistence channel
// immediately, with no batching and no dirty flags.
package widgetstate

import (
	"errors"
	"fmt"
	"strings"
)

// ViewType selects between the two presentation modes of a display.
type ViewType int

const (
	StandardView ViewType = 0
	ListView     ViewType = 1
)

// IsListView reports whether v is the list view.
func (v ViewType) IsListView() bool { return v == ListView }

// IsStandardView reports whether v is the standard view.
func (v ViewType) IsStandardView() bool { return v == StandardView }

func (v ViewType) valid() bool { return v == StandardView || v == ListView }

// Filter is a bitmask of item filters active on a display.
type Filter int

const (
	FilterViewAll    Filter = 0
	FilterUnwatched  Filter = 1
	FilterNonFeed    Filter = 2
	FilterDownloaded Filter = 4
)

// IsViewAll reports whether no filter bit is set.
func (f Filter) IsViewAll() bool { return f == FilterViewAll }

// HasUnwatched reports whether the unwatched filter is active.
func (f Filter) HasUnwatched() bool { return f&FilterUnwatched != 0 }

// HasNonFeed reports whether the non-feed filter is active.
func (f Filter) HasNonFeed() bool { return f&FilterNonFeed != 0 }

// HasDownloaded reports whether the downloaded filter is active.
func (f Filter) HasDownloaded() bool { return f&FilterDownloaded != 0 }

// ToggleFilter flips one filter bit in a mask. The view-all value is
// absorbing: toggling it always resets the mask to view-all.
func ToggleFilter(filters, toggle Filter) Filter {
	if toggle == FilterViewAll {
		return FilterViewAll
	}
	return filters ^ toggle
}

// Contract violation errors. Display and view types form closed sets;
// requesting an unknown one is a caller bug, never silently defaulted.
var (
	ErrUnknownDisplayType = errors.New("widgetstate: unknown display type")
	ErrUnknownViewType    = errors.New("widgetstate: unknown view type")
	ErrNotListView        = errors.New("widgetstate: property only valid for list views")
)

// DisplayKey identifies one addressable list/grid surface.
type DisplayKey struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ViewKey identifies one presentation mode of a display.
type ViewKey struct {
	Type string   `json:"type"`
	ID   string   `json:"id"`
	View ViewType `json:"view"`
}

// ScrollPosition is a saved scroll offset.
type ScrollPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DisplayInfo is the persisted state shared by both views of a
// display. Nil pointer/slice/map fields mean "never set"; getters fall
// back to the per-display-type defaults.
type DisplayInfo struct {
	Key             DisplayKey     `json:"key"`
	SelectedView    *ViewType      `json:"selected_view,omitempty"`
	ActiveFilters   *Filter        `json:"active_filters,omitempty"`
	ListViewColumns []string       `json:"list_view_columns,omitempty"`
	ListViewWidths  map[string]int `json:"list_view_widths,omitempty"`
}

// ViewInfo is the persisted state of one view of a display. SortState
// is a column identifier, prefixed with "-" for descending order; ""
// means never set.
type ViewInfo struct {
	Key            ViewKey         `json:"key"`
	SortState      string          `json:"sort_state,omitempty"`
	ScrollPosition *ScrollPosition `json:"scroll_position,omitempty"`
}

// Saver is the persistence channel. Calls are fire-and-forget: the
// store neither waits for nor learns about persistence failures.
type Saver interface {
	SaveDisplayState(display *DisplayInfo)
	SaveViewState(view *ViewInfo)
}

// Store holds all display and view state for the frontend. It is not
// safe for concurrent use; the UI thread owns it.
type Store struct {
	saver    Saver
	displays map[DisplayKey]*DisplayInfo
	views    map[ViewKey]*ViewInfo
}

// NewStore returns an empty store persisting through saver.
func NewStore(saver Saver) *Store {
	return &Store{
		saver:    saver,
		displays: make(map[DisplayKey]*DisplayInfo),
		views:    make(map[ViewKey]*ViewInfo),
	}
}

// SetupDisplays seeds the store with previously persisted display
// state. Seeding does not trigger saves.
func (s *Store) SetupDisplays(displays []*DisplayInfo) {
	for _, d := range displays {
		s.displays[d.Key] = d
	}
}

// SetupViews seeds the store with previously persisted view state.
func (s *Store) SetupViews(views []*ViewInfo) {
	for _, v := range views {
		s.views[v.Key] = v
	}
}

func validDisplayType(displayType string) bool {
	_, ok := defaultColumns[displayType]
	return ok
}

func (s *Store) display(displayType, displayID string) (*DisplayInfo, error) {
	if !validDisplayType(displayType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisplayType, displayType)
	}
	key := DisplayKey{Type: displayType, ID: displayID}
	if d, ok := s.displays[key]; ok {
		return d, nil
	}
	d := &DisplayInfo{Key: key}
	s.displays[key] = d
	s.saver.SaveDisplayState(d)
	return d, nil
}

func (s *Store) view(displayType, displayID string, viewType ViewType) (*ViewInfo, error) {
	if !validDisplayType(displayType) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisplayType, displayType)
	}
	if !viewType.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownViewType, viewType)
	}
	key := ViewKey{Type: displayType, ID: displayID, View: viewType}
	if v, ok := s.views[key]; ok {
		return v, nil
	}
	v := &ViewInfo{Key: key}
	s.views[key] = v
	s.saver.SaveViewState(v)
	return v, nil
}

// SelectedView returns the display's chosen view type, falling back to
// the display type's default.
func (s *Store) SelectedView(displayType, displayID string) (ViewType, error) {
	d, err := s.display(displayType, displayID)
	if err != nil {
		return StandardView, err
	}
	if d.SelectedView != nil {
		return *d.SelectedView, nil
	}
	return defaultViewType[displayType], nil
}

// SetSelectedView records the chosen view type and persists.
func (s *Store) SetSelectedView(displayType, displayID string, viewType ViewType) error {
	if !viewType.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownViewType, viewType)
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return err
	}
	v := viewType
	d.SelectedView = &v
	s.saver.SaveDisplayState(d)
	return nil
}

// Filters returns the display's active filter mask.
func (s *Store) Filters(displayType, displayID string) (Filter, error) {
	d, err := s.display(displayType, displayID)
	if err != nil {
		return FilterViewAll, err
	}
	if d.ActiveFilters == nil {
		return FilterViewAll, nil
	}
	return *d.ActiveFilters, nil
}

// ToggleFilters flips one filter on the display and persists.
func (s *Store) ToggleFilters(displayType, displayID string, filter Filter) error {
	current, err := s.Filters(displayType, displayID)
	if err != nil {
		return err
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return err
	}
	toggled := ToggleFilter(current, filter)
	d.ActiveFilters = &toggled
	s.saver.SaveDisplayState(d)
	return nil
}

// ColumnsEnabled returns the enabled list-view columns, falling back
// to the display type's defaults. Only valid for the list view.
func (s *Store) ColumnsEnabled(displayType, displayID string, viewType ViewType) ([]string, error) {
	if !viewType.IsListView() {
		return nil, ErrNotListView
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return nil, err
	}
	if d.ListViewColumns != nil {
		return append([]string(nil), d.ListViewColumns...), nil
	}
	return append([]string(nil), defaultColumns[displayType]...), nil
}

// SetColumnsEnabled records the enabled list-view columns and persists.
func (s *Store) SetColumnsEnabled(displayType, displayID string, viewType ViewType, enabled []string) error {
	if !viewType.IsListView() {
		return ErrNotListView
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return err
	}
	d.ListViewColumns = append([]string(nil), enabled...)
	s.saver.SaveDisplayState(d)
	return nil
}

// ToggleColumn adds the column if absent, removes it if present.
func (s *Store) ToggleColumn(displayType, displayID string, viewType ViewType, column string) error {
	enabled, err := s.ColumnsEnabled(displayType, displayID, viewType)
	if err != nil {
		return err
	}
	found := -1
	for i, c := range enabled {
		if c == column {
			found = i
			break
		}
	}
	if found >= 0 {
		enabled = append(enabled[:found], enabled[found+1:]...)
	} else {
		enabled = append(enabled, column)
	}
	return s.SetColumnsEnabled(displayType, displayID, viewType, enabled)
}

// ColumnWidths returns the saved list-view column widths, or the
// default width of each enabled column when never set.
func (s *Store) ColumnWidths(displayType, displayID string, viewType ViewType) (map[string]int, error) {
	if !viewType.IsListView() {
		return nil, ErrNotListView
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return nil, err
	}
	if d.ListViewWidths != nil {
		out := make(map[string]int, len(d.ListViewWidths))
		for k, v := range d.ListViewWidths {
			out[k] = v
		}
		return out, nil
	}
	enabled, err := s.ColumnsEnabled(displayType, displayID, viewType)
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]int, len(enabled))
	for _, name := range enabled {
		defaults[name] = defaultColumnWidths[name]
	}
	return defaults, nil
}

// UpdateColumnWidths merges the given widths into the saved widths and
// persists.
func (s *Store) UpdateColumnWidths(displayType, displayID string, viewType ViewType, widths map[string]int) error {
	if !viewType.IsListView() {
		return ErrNotListView
	}
	d, err := s.display(displayType, displayID)
	if err != nil {
		return err
	}
	if d.ListViewWidths == nil {
		current, err := s.ColumnWidths(displayType, displayID, viewType)
		if err != nil {
			return err
		}
		d.ListViewWidths = current
	}
	for k, v := range widths {
		d.ListViewWidths[k] = v
	}
	s.saver.SaveDisplayState(d)
	return nil
}

// SortState returns the view's sort key ("-" prefix marks descending).
// An unset sort falls back to the display type's default; a list-view
// sort whose column is no longer enabled also reverts to the default.
func (s *Store) SortState(displayType, displayID string, viewType ViewType) (string, error) {
	v, err := s.view(displayType, displayID, viewType)
	if err != nil {
		return "", err
	}
	sortState := v.SortState
	if sortState == "" {
		sortState = defaultSortColumn[displayType]
	}
	if viewType.IsStandardView() {
		return sortState, nil
	}
	enabled, err := s.ColumnsEnabled(displayType, displayID, viewType)
	if err != nil {
		return "", err
	}
	column := strings.TrimPrefix(sortState, "-")
	for _, c := range enabled {
		if c == column {
			return sortState, nil
		}
	}
	return defaultSortColumn[displayType], nil
}

// SetSortState records the view's sort key and persists.
func (s *Store) SetSortState(displayType, displayID string, viewType ViewType, sortKey string) error {
	v, err := s.view(displayType, displayID, viewType)
	if err != nil {
		return err
	}
	v.SortState = sortKey
	s.saver.SaveViewState(v)
	return nil
}

// ScrollPosition returns the view's saved scroll offset, (0, 0) when
// never set.
func (s *Store) ScrollPosition(displayType, displayID string, viewType ViewType) (ScrollPosition, error) {
	v, err := s.view(displayType, displayID, viewType)
	if err != nil {
		return ScrollPosition{}, err
	}
	if v.ScrollPosition == nil {
		return ScrollPosition{}, nil
	}
	return *v.ScrollPosition, nil
}

// SetScrollPosition records the view's scroll offset and persists.
func (s *Store) SetScrollPosition(displayType, displayID string, viewType ViewType, pos ScrollPosition) error {
	v, err := s.view(displayType, displayID, viewType)
	if err != nil {
		return err
	}
	p := pos
	v.ScrollPosition = &p
	s.saver.SaveViewState(v)
	return nil
}

// ColumnsAvailable returns every column the display type can show,
// defaults plus the optional extras.
func ColumnsAvailable(displayType string) ([]string, error) {
	columns, ok := availableColumns[displayType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisplayType, displayType)
	}
	return append([]string(nil), columns...), nil
}

// DisplayTypes returns the closed set of known display types.
func DisplayTypes() []string {
	out := make([]string, 0, len(defaultColumns))
	for displayType := range defaultColumns {
		out = append(out, displayType)
	}
	return out
}
