package staging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// templateGit fakes a template clone by materializing a template checkout
// in the target directory.
type templateGit struct {
	cloneErr error
	depths   []int
}

func (g *templateGit) Clone(ctx context.Context, url, dir string, depth int) error {
	g.depths = append(g.depths, depth)
	if g.cloneErr != nil {
		return g.cloneErr
	}

	files := map[string]string{
		".git/HEAD":                "ref: refs/heads/main",
		"index.html":               "<html>gallery</html>",
		"public/photos/demo-1.jpg": "demo",
		"public/photos/demo-2.jpg": "demo",
		".github/workflows/ci.yml": "deploy",
		"README.md":                "template",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (g *templateGit) InitRepo(ctx context.Context, dir, branch string) error { return nil }
func (g *templateGit) AddAll(ctx context.Context, dir string) error           { return nil }
func (g *templateGit) Commit(ctx context.Context, dir, message string) error  { return nil }
func (g *templateGit) ForcePush(ctx context.Context, dir, remoteURL, branch string) error {
	return nil
}

func TestStage(t *testing.T) {
	sourceDir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png"} {
		if err := os.WriteFile(filepath.Join(sourceDir, name), []byte("photo-"+name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	gitClient := &templateGit{}
	engine := NewEngine(gitClient, "https://example.com/template.git")
	workspace := filepath.Join(t.TempDir(), "ws")

	if err := engine.Stage(context.Background(), workspace, []string{"a.jpg", "b.png"}, sourceDir); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	// History is irrelevant and costly, so the clone must be shallow.
	if len(gitClient.depths) != 1 || gitClient.depths[0] != 1 {
		t.Errorf("clone depths = %v, want [1]", gitClient.depths)
	}

	// Template metadata and demo photos are stripped.
	if _, err := os.Stat(filepath.Join(workspace, ".git")); !os.IsNotExist(err) {
		t.Error(".git not removed from workspace")
	}
	if _, err := os.Stat(filepath.Join(workspace, PhotoDir, "demo-1.jpg")); !os.IsNotExist(err) {
		t.Error("demo photos not removed from workspace")
	}

	// Template content survives, photos are staged.
	if _, err := os.Stat(filepath.Join(workspace, "index.html")); err != nil {
		t.Error("template content missing from workspace")
	}
	for _, name := range []string{"a.jpg", "b.png"} {
		data, err := os.ReadFile(filepath.Join(workspace, PhotoDir, name))
		if err != nil {
			t.Errorf("photo %s not staged: %v", name, err)
			continue
		}
		if string(data) != "photo-"+name {
			t.Errorf("photo %s content = %q", name, data)
		}
	}
}

func TestStageOverwritesExisting(t *testing.T) {
	sourceDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(sourceDir, "a.jpg"), []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}

	engine := NewEngine(&templateGit{}, "https://example.com/template.git")
	workspace := filepath.Join(t.TempDir(), "ws")

	// Pre-create a conflicting file where the photo will land.
	if err := os.MkdirAll(filepath.Join(workspace, PhotoDir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workspace, PhotoDir, "a.jpg"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := engine.Stage(context.Background(), workspace, []string{"a.jpg"}, sourceDir); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(workspace, PhotoDir, "a.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("photo content = %q, want overwritten content", data)
	}
}

func TestStageCloneFailure(t *testing.T) {
	engine := NewEngine(&templateGit{cloneErr: errors.New("network unreachable")}, "https://example.com/template.git")

	err := engine.Stage(context.Background(), filepath.Join(t.TempDir(), "ws"), []string{"a.jpg"}, t.TempDir())
	if err == nil {
		t.Fatal("expected clone failure to propagate")
	}
}

func TestStageMissingSourcePhoto(t *testing.T) {
	engine := NewEngine(&templateGit{}, "https://example.com/template.git")

	err := engine.Stage(context.Background(), filepath.Join(t.TempDir(), "ws"), []string{"gone.jpg"}, t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing source photo")
	}
}
