package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/albumpress/cli/internal/api"
	"github.com/albumpress/cli/internal/git"
	"github.com/albumpress/cli/pkg/model"
	"github.com/albumpress/cli/pkg/publisher"
	"github.com/albumpress/cli/pkg/staging"
	"github.com/albumpress/cli/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and republish albums when photos change",
	Long: `Watch a directory for new or changed photos and republish the affected
album once writes have settled.

The watched directory follows the same mode rules as publish: the root
itself can be an album, and each subdirectory with photos is its own album.
New subdirectories are picked up while watching.

Examples:
  albumpress watch ~/Photos
  albumpress watch ~/Photos --debounce=10000`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().Int("debounce", 5000, "Quiet period in milliseconds before a changed album is republished")
}

func runWatch(cmd *cobra.Command, args []string) {
	debounceMs, _ := cmd.Flags().GetInt("debounce")

	rootDir, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Printf("Error: invalid path '%s': %v\n", args[0], err)
		os.Exit(1)
	}
	info, err := os.Stat(rootDir)
	if err != nil {
		fmt.Printf("Error: path '%s' does not exist: %v\n", rootDir, err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Printf("Error: path '%s' is not a directory\n", rootDir)
		os.Exit(1)
	}

	ctx := cmd.Context()
	token, owner, err := resolveCredentials(ctx, false)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	config := model.NewPublishConfig()
	client := api.NewClient(token)
	gitClient := git.NewShellClient()
	stager := staging.NewEngine(gitClient, config.TemplateURL)
	pub := publisher.New(client, stager, gitClient, config, consoleSink())

	onAlbum := func(dir string) {
		req := model.AlbumRequest{
			SourceDir:    dir,
			RepoNameHint: filepath.Base(dir),
			Token:        token,
			Owner:        owner,
		}
		result := pub.Publish(ctx, req)
		printPublishSummary([]model.AlbumResult{result}, false)
	}

	w, err := watcher.New(rootDir, time.Duration(debounceMs)*time.Millisecond, onAlbum)
	if err != nil {
		fmt.Printf("Error: failed to create watcher: %v\n", err)
		os.Exit(1)
	}
	if err := w.Start(); err != nil {
		fmt.Printf("Error: failed to start watcher: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Watching %s (Ctrl+C to stop)\n", rootDir)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	w.Stop()
	fmt.Println("Watch stopped")
}
