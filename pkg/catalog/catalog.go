// Package catalog reads the stamp catalog (stamps.json) of a stamps database directory.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileName is the catalog file name inside a database directory
const FileName = "stamps.json"

// StampShape describes the physical shape of a stamp
type StampShape struct {
	Type         string  `json:"type,omitempty"`
	W            float64 `json:"w,omitempty"`
	H            float64 `json:"h,omitempty"`
	D            float64 `json:"d,omitempty"`
	OriginalText string  `json:"originalText,omitempty"`
}

// StampEntry is one catalog record
type StampEntry struct {
	ID         int         `json:"id"`
	Image      *string     `json:"image"`
	Value      *float64    `json:"value"`
	Year       *int        `json:"year"`
	Page       string      `json:"page"`
	Categories []string    `json:"categories"`
	Series     string      `json:"series,omitempty"`
	Name       string      `json:"name,omitempty"`
	Shape      *StampShape `json:"shape,omitempty"`
}

// StampsJSON holds all catalog entries
type StampsJSON struct {
	Entries []*StampEntry
}

// LoadStampsJSON reads a catalog file
func LoadStampsJSON(path string) (*StampsJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var catalog StampsJSON
	if err := json.Unmarshal(data, &catalog.Entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return &catalog, nil
}

// LoadFromDir reads the catalog of a database directory
func LoadFromDir(dbDir string) (*StampsJSON, error) {
	return LoadStampsJSON(filepath.Join(dbDir, FileName))
}

// SortEntries orders entries by id
func (s *StampsJSON) SortEntries() {
	sort.Slice(s.Entries, func(i, j int) bool {
		return s.Entries[i].ID < s.Entries[j].ID
	})
}

// ImagePaths returns the image file of every entry that has one, joined to dbDir.
// Images shared by several entries are listed once.
func (s *StampsJSON) ImagePaths(dbDir string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, entry := range s.Entries {
		if entry.Image == nil || *entry.Image == "" {
			continue
		}
		path := filepath.Join(dbDir, filepath.FromSlash(*entry.Image))
		if seen[path] {
			continue
		}
		seen[path] = true
		paths = append(paths, path)
	}
	return paths
}
