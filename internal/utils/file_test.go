package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := map[string]bool{
		"stamp.jpg":   true,
		"stamp.JPEG":  true,
		"stamp.png":   true,
		"stamp.webp":  true,
		"stamps.json": false,
		"README":      false,
	}
	for name, want := range tests {
		if got := IsImageFile(name); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	got := GenerateOutputFilename("in/s1.JPG", "out", "_cropped", "")
	if want := filepath.Join("out", "s1_cropped.jpg"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}

	got = GenerateOutputFilename("in/s1.jpg", "out", "-debug", "png")
	if want := filepath.Join("out", "s1-debug.png"); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "sub/b.png", "sub/notes.txt", "stamps.json"} {
		path := filepath.Join(dir, name)
		if err := EnsureDir(filepath.Dir(path)); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := ListImageFiles(dir)
	if err != nil {
		t.Fatalf("ListImageFiles failed: %v", err)
	}
	want := []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "sub", "b.png")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Expected %v, got %v", want, files)
	}

	if !DirExists(filepath.Join(dir, "sub")) || DirExists(filepath.Join(dir, "a.jpg")) {
		t.Error("DirExists gave a wrong answer")
	}
}
