package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// CommandError carries the failing git command line and its combined output.
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("command '%s' failed: %v\noutput: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("command '%s' failed: %v", e.Command, e.Err)
}

// For mocking in tests
var runGitCommand = func(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &CommandError{
			Command: "git " + strings.Join(args, " "),
			Output:  string(output),
			Err:     err,
		}
	}
	return nil
}

// Client provides the git operations needed to stage and publish an album.
type Client interface {
	// Clone clones url into dir, with history truncated to depth when depth > 0.
	Clone(ctx context.Context, url, dir string, depth int) error
	// InitRepo initializes a fresh repository in dir on the given branch.
	InitRepo(ctx context.Context, dir, branch string) error
	// AddAll stages every file under dir.
	AddAll(ctx context.Context, dir string) error
	// Commit records the staged content with the given message.
	Commit(ctx context.Context, dir, message string) error
	// ForcePush pushes branch to remoteURL, forcing the ref and setting
	// upstream tracking.
	ForcePush(ctx context.Context, dir, remoteURL, branch string) error
}

// ShellClient implements Client by shelling out to the git command
type ShellClient struct{}

// NewShellClient creates a new git client that uses the git command
func NewShellClient() *ShellClient {
	return &ShellClient{}
}

func (c *ShellClient) Clone(ctx context.Context, url, dir string, depth int) error {
	args := []string{"clone"}
	if depth > 0 {
		args = append(args, "--depth", strconv.Itoa(depth))
	}
	args = append(args, url, dir)
	return runGitCommand(ctx, "", args...)
}

func (c *ShellClient) InitRepo(ctx context.Context, dir, branch string) error {
	return runGitCommand(ctx, dir, "init", "-b", branch)
}

func (c *ShellClient) AddAll(ctx context.Context, dir string) error {
	return runGitCommand(ctx, dir, "add", "-A")
}

func (c *ShellClient) Commit(ctx context.Context, dir, message string) error {
	// The workspace is ephemeral, so commit identity is set per-command
	// instead of relying on global git config.
	return runGitCommand(ctx, dir,
		"-c", "user.name=albumpress",
		"-c", "user.email=albumpress@localhost",
		"commit", "-m", message)
}

func (c *ShellClient) ForcePush(ctx context.Context, dir, remoteURL, branch string) error {
	return runGitCommand(ctx, dir, "push", "--force", "--set-upstream", remoteURL, branch)
}

// AuthURL embeds a token into an HTTPS remote URL so pushes authenticate
// without a credential helper.
func AuthURL(remote, token string) string {
	if token == "" || !strings.HasPrefix(remote, "https://") {
		return remote
	}
	return "https://x-access-token:" + token + "@" + strings.TrimPrefix(remote, "https://")
}
