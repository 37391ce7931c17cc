package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleCatalog = `[
  {"id": 3, "image": "images/3.jpg", "value": 25, "year": 2019, "page": "p1", "categories": ["fauna"]},
  {"id": 1, "image": "images/1.jpg", "value": null, "year": 2018, "page": "p1", "categories": [],
   "shape": {"type": "rect", "w": 37, "h": 52}},
  {"id": 2, "image": null, "value": 10.5, "year": null, "page": "p2", "categories": ["flora"]},
  {"id": 4, "image": "", "value": 1, "year": 2020, "page": "p2", "categories": []},
  {"id": 5, "image": "images/1.jpg", "value": 1, "year": 2020, "page": "p3", "categories": []}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadFromDir(t *testing.T) {
	dir := writeCatalog(t, sampleCatalog)

	catalog, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if len(catalog.Entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(catalog.Entries))
	}

	first := catalog.Entries[0]
	if first.ID != 3 || *first.Image != "images/3.jpg" || *first.Value != 25 || *first.Year != 2019 {
		t.Errorf("Unexpected first entry %+v", first)
	}
	if second := catalog.Entries[1]; second.Value != nil || second.Shape == nil || second.Shape.H != 52 {
		t.Errorf("Unexpected second entry %+v", second)
	}

	catalog.SortEntries()
	var ids []int
	for _, e := range catalog.Entries {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Expected sorted ids, got %v", ids)
	}
}

func TestImagePaths(t *testing.T) {
	dir := writeCatalog(t, sampleCatalog)
	catalog, err := LoadFromDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "images", "3.jpg"),
		filepath.Join(dir, "images", "1.jpg"),
	}
	if got := catalog.ImagePaths(dir); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestLoadStampsJSONErrors(t *testing.T) {
	if _, err := LoadStampsJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing catalog")
	}

	dir := writeCatalog(t, `{"not": "an array"}`)
	if _, err := LoadFromDir(dir); err == nil {
		t.Error("Expected an error for a malformed catalog")
	}
}
