package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestListPhotosNonExistentDir(t *testing.T) {
	photos := ListPhotos(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(photos) != 0 {
		t.Errorf("expected empty list for missing directory, got %v", photos)
	}
}

func TestListPhotosFiltering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")
	writeFile(t, dir, "b.PNG")
	writeFile(t, dir, "c.heic")
	writeFile(t, dir, "d.webp")
	writeFile(t, dir, "e.gif")
	writeFile(t, dir, "f.JPEG")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "noextension")
	writeFile(t, dir, "archive.tar.gz")
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755); err != nil {
		t.Fatal(err)
	}

	photos := ListPhotos(dir)
	sort.Strings(photos)

	want := []string{"a.jpg", "b.PNG", "c.heic", "d.webp", "e.gif", "f.JPEG"}
	if len(photos) != len(want) {
		t.Fatalf("ListPhotos = %v, want %v", photos, want)
	}
	for i := range want {
		if photos[i] != want[i] {
			t.Errorf("ListPhotos[%d] = %q, want %q", i, photos[i], want[i])
		}
	}
}

func TestListPhotosSkipsBrokenSymlink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")
	if err := os.Symlink(filepath.Join(dir, "gone.jpg"), filepath.Join(dir, "broken.jpg")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	photos := ListPhotos(dir)
	if len(photos) != 1 || photos[0] != "a.jpg" {
		t.Errorf("ListPhotos = %v, want [a.jpg]", photos)
	}
}

func TestListSubdirectories(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"Album1", "Album2", ".hidden"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, dir, "photo.jpg")

	subdirs := ListSubdirectories(dir)
	sort.Strings(subdirs)

	if len(subdirs) != 2 || subdirs[0] != "Album1" || subdirs[1] != "Album2" {
		t.Errorf("ListSubdirectories = %v, want [Album1 Album2]", subdirs)
	}
}

func TestListSubdirectoriesNonExistentDir(t *testing.T) {
	subdirs := ListSubdirectories(filepath.Join(t.TempDir(), "missing"))
	if len(subdirs) != 0 {
		t.Errorf("expected empty list for missing directory, got %v", subdirs)
	}
}

func TestIsPhotoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.jpg", true},
		{"a.JPG", true},
		{"a.jpeg", true},
		{"a.png", true},
		{"a.heic", true},
		{"a.webp", true},
		{"a.gif", true},
		{"a.txt", false},
		{"a", false},
		{"a.jpg.bak", false},
	}
	for _, tt := range tests {
		if got := IsPhotoFile(tt.path); got != tt.want {
			t.Errorf("IsPhotoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
