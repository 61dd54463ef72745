package widgetstate

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// stateFile is the on-disk document. Displays and views are stored as
// slices because their keys are structs.
type stateFile struct {
	Displays []*DisplayInfo `json:"displays"`
	Views    []*ViewInfo    `json:"views"`
}

// FileSaver persists display and view state to a single JSON file,
// rewritten atomically on every save. It implements Saver; write
// failures are logged and otherwise swallowed so a broken disk never
// reaches the UI code.
type FileSaver struct {
	path string

	mu       sync.Mutex
	displays map[DisplayKey]*DisplayInfo
	views    map[ViewKey]*ViewInfo
}

// NewFileSaver loads any state previously written to path. A missing
// file is not an error; a corrupt one is.
func NewFileSaver(path string) (*FileSaver, error) {
	s := &FileSaver{
		path:     path,
		displays: make(map[DisplayKey]*DisplayInfo),
		views:    make(map[ViewKey]*ViewInfo),
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, d := range file.Displays {
		s.displays[d.Key] = d
	}
	for _, v := range file.Views {
		s.views[v.Key] = v
	}
	return s, nil
}

// Displays returns the loaded display state, for seeding a Store.
func (s *FileSaver) Displays() []*DisplayInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*DisplayInfo, 0, len(s.displays))
	for _, d := range s.displays {
		out = append(out, d)
	}
	return out
}

// Views returns the loaded view state, for seeding a Store.
func (s *FileSaver) Views() []*ViewInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ViewInfo, 0, len(s.views))
	for _, v := range s.views {
		out = append(out, v)
	}
	return out
}

// SaveDisplayState implements Saver.
func (s *FileSaver) SaveDisplayState(display *DisplayInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displays[display.Key] = display
	s.flush()
}

// SaveViewState implements Saver.
func (s *FileSaver) SaveViewState(view *ViewInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[view.Key] = view
	s.flush()
}

// flush rewrites the whole file. Called with mu held.
func (s *FileSaver) flush() {
	file := stateFile{
		Displays: make([]*DisplayInfo, 0, len(s.displays)),
		Views:    make([]*ViewInfo, 0, len(s.views)),
	}
	for _, d := range s.displays {
		file.Displays = append(file.Displays, d)
	}
	for _, v := range s.views {
		file.Views = append(file.Views, v)
	}
	if err := atomicWriteJSON(s.path, &file); err != nil {
		log.Printf("Failed to save widget state: %v", err)
	}
}

// atomicWriteJSON writes data to a JSON file atomically. It writes to
// a temporary file first, then renames to the target path, so the
// file is never in a partially-written state.
func atomicWriteJSON(path string, data interface{}) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// DefaultStatePath returns the platform data-dir path of the widget
// state file, e.g. ~/.local/share/<appName>/widgetstate.json on Linux.
func DefaultStatePath(appName string) (string, error) {
	baseDir, err := dataBaseDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, "widgetstate.json"), nil
}
