package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// Supported photo extensions
var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".webp": true,
	".gif":  true,
}

// IsPhotoFile checks if a file has a supported photo extension. Files
// without an extension never qualify.
func IsPhotoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return photoExtensions[ext]
}

// ListPhotos returns the photo filenames directly under dir. A non-existent
// directory yields an empty list rather than an error, and entries that
// cannot be probed (e.g. broken symlinks) are skipped.
func ListPhotos(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var photos []string
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			// Skip entries we can't access
			continue
		}
		if info.IsDir() {
			continue
		}
		if IsPhotoFile(entry.Name()) {
			photos = append(photos, entry.Name())
		}
	}
	return photos
}

// ListSubdirectories returns the names of the immediate subdirectories of
// dir, excluding hidden ones. A non-existent directory yields an empty list.
func ListSubdirectories(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var subdirs []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		if info.IsDir() {
			subdirs = append(subdirs, entry.Name())
		}
	}
	return subdirs
}
