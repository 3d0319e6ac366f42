package publisher

import (
	"path/filepath"

	"github.com/albumpress/cli/pkg/model"
	"github.com/albumpress/cli/pkg/scanner"
)

// Plan expands a root directory into the album requests to publish. The base
// request supplies credentials and mode flags; source directory and name hint
// are filled per album.
//
// Precedence: a forced single run, or a root that itself holds photos (and
// batch is not forced, or there are no subdirectories), maps to one request
// for the root. Otherwise each immediate subdirectory containing at least one
// photo becomes its own request; empty subdirectories are silently skipped.
// A root with neither photos nor subdirectories yields an empty plan.
func Plan(rootDir string, base model.AlbumRequest) []model.AlbumRequest {
	photos := scanner.ListPhotos(rootDir)
	subdirs := scanner.ListSubdirectories(rootDir)

	switch {
	case base.ForceSingle,
		len(photos) > 0 && len(subdirs) == 0,
		len(photos) > 0 && !base.ForceBatch:
		req := base
		req.SourceDir = rootDir
		req.RepoNameHint = filepath.Base(rootDir)
		return []model.AlbumRequest{req}

	case base.ForceBatch, len(subdirs) > 0:
		var requests []model.AlbumRequest
		for _, sub := range subdirs {
			dir := filepath.Join(rootDir, sub)
			if len(scanner.ListPhotos(dir)) == 0 {
				continue
			}
			req := base
			req.SourceDir = dir
			req.RepoNameHint = sub
			requests = append(requests, req)
		}
		return requests
	}

	return nil
}
