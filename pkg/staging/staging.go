package staging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/albumpress/cli/internal/git"
)

// PhotoDir is the fixed destination for album photos inside the template.
const PhotoDir = "public/photos"

// templateArtifacts are template-only paths stripped from the workspace
// before the first commit: the template's own history and its demo photos.
var templateArtifacts = []string{".git", PhotoDir}

// Engine prepares the ephemeral workspace for one album.
type Engine struct {
	git         git.Client
	templateURL string
}

// NewEngine creates an Engine cloning from the given template repository.
func NewEngine(gitClient git.Client, templateURL string) *Engine {
	return &Engine{git: gitClient, templateURL: templateURL}
}

// Stage clones the template into workspace, strips its artifacts, and copies
// the photos from sourceDir into the photo destination. It fails only on
// unrecoverable I/O.
func (e *Engine) Stage(ctx context.Context, workspace string, photos []string, sourceDir string) error {
	// History is irrelevant and costly to fetch.
	if err := e.git.Clone(ctx, e.templateURL, workspace, 1); err != nil {
		return fmt.Errorf("failed to clone template: %w", err)
	}

	for _, artifact := range templateArtifacts {
		if err := os.RemoveAll(filepath.Join(workspace, artifact)); err != nil {
			return fmt.Errorf("failed to strip template artifact %s: %w", artifact, err)
		}
	}

	dest := filepath.Join(workspace, PhotoDir)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create photo directory: %w", err)
	}

	for _, photo := range photos {
		if err := copyFile(filepath.Join(sourceDir, photo), filepath.Join(dest, photo)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", photo, err)
		}
	}
	return nil
}

// copyFile copies src to dst, overwriting dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
