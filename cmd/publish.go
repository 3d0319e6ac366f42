package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/albumpress/cli/internal/api"
	"github.com/albumpress/cli/internal/git"
	"github.com/albumpress/cli/pkg/model"
	"github.com/albumpress/cli/pkg/publisher"
	"github.com/albumpress/cli/pkg/staging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var publishCmd = &cobra.Command{
	Use:   "publish <directory>",
	Short: "Publish a photo directory as one or more albums",
	Long: `Publish a directory of photos as a GitHub Pages album.

Mode selection:
  - A directory holding photos becomes a single album.
  - A directory of subdirectories becomes one album per subdirectory that
    contains photos (batch mode). Subdirectories without photos are skipped.
  - --single and --batch force the respective mode.

Examples:
  albumpress publish ~/Photos/Vacation2026
  albumpress publish ~/Photos --batch
  albumpress publish ~/Photos/Wedding --owner=myorg
  albumpress publish ~/Photos/Wedding --dry-run`,
	Args: cobra.ExactArgs(1),
	Run:  runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().BoolP("single", "s", false, "Force a single album for the directory itself")
	publishCmd.Flags().BoolP("batch", "b", false, "Force one album per subdirectory")
	publishCmd.Flags().BoolP("dry-run", "d", false, "Show what would be published without touching GitHub")
	publishCmd.Flags().Bool("verify", false, "Wait until the published album is reachable")
	publishCmd.Flags().Duration("verify-timeout", 3*time.Minute, "How long to wait for the album to come online")
}

func runPublish(cmd *cobra.Command, args []string) {
	forceSingle, _ := cmd.Flags().GetBool("single")
	forceBatch, _ := cmd.Flags().GetBool("batch")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verify, _ := cmd.Flags().GetBool("verify")
	verifyTimeout, _ := cmd.Flags().GetDuration("verify-timeout")

	if forceSingle && forceBatch {
		fmt.Println("Error: --single and --batch are mutually exclusive")
		os.Exit(1)
	}

	rootDir, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Printf("Error: invalid path '%s': %v\n", args[0], err)
		os.Exit(1)
	}

	ctx := cmd.Context()
	token, owner, err := resolveCredentials(ctx, dryRun)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	base := model.AlbumRequest{
		Token:       token,
		Owner:       owner,
		DryRun:      dryRun,
		ForceSingle: forceSingle,
		ForceBatch:  forceBatch,
	}

	requests := publisher.Plan(rootDir, base)
	if len(requests) == 0 {
		fmt.Println("No albums to publish: the directory has neither photos nor subdirectories with photos")
		os.Exit(1)
	}

	config := model.NewPublishConfig()
	if verify {
		config.VerifyTimeout = verifyTimeout
	}

	client := api.NewClient(token)
	gitClient := git.NewShellClient()
	stager := staging.NewEngine(gitClient, config.TemplateURL)
	pub := publisher.New(client, stager, gitClient, config, consoleSink())

	// Albums are published strictly sequentially: repository creation and
	// secrets are rate-limited per account.
	var results []model.AlbumResult
	for _, req := range requests {
		results = append(results, pub.Publish(ctx, req))
	}

	printPublishSummary(results, dryRun)

	for _, result := range results {
		if !result.Succeeded {
			os.Exit(1)
		}
	}
}

// resolveCredentials returns the token and owner for this run. In live mode
// a missing owner falls back to the authenticated user; a dry run makes no
// network calls, so there the owner must be given explicitly.
func resolveCredentials(ctx context.Context, dryRun bool) (token, owner string, err error) {
	owner = viper.GetString("owner")

	if dryRun {
		if owner == "" {
			return "", "", fmt.Errorf("--owner is required with --dry-run (no API call is made to resolve it)")
		}
		// The token is never used on a dry run.
		token = viper.GetString("token")
		return token, owner, nil
	}

	token, err = resolveToken()
	if err != nil {
		return "", "", err
	}
	if owner == "" {
		owner, err = api.NewClient(token).AuthenticatedLogin(ctx)
		if err != nil {
			return "", "", err
		}
	}
	return token, owner, nil
}

// consoleSink renders progress events as colored step lines.
func consoleSink() publisher.Sink {
	step := color.New(color.FgCyan)
	warn := color.New(color.FgYellow)

	return publisher.SinkFunc(func(event model.ProgressEvent) {
		if event.Step == publisher.StepWarning {
			warn.Printf("Warning: %s\n", event.Detail)
			return
		}
		if event.Detail != "" {
			step.Printf("==> %s: %s\n", event.Step, event.Detail)
		} else {
			step.Printf("==> %s\n", event.Step)
		}
	})
}

// printPublishSummary prints the per-album outcomes
func printPublishSummary(results []model.AlbumResult, dryRun bool) {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)

	if dryRun {
		fmt.Println("\n=== Dry Run Summary ===")
	} else {
		fmt.Println("\n=== Publish Summary ===")
	}

	succeeded := 0
	for _, result := range results {
		if result.Succeeded {
			succeeded++
			success.Printf("✓ %s (%d photos)\n", result.Name, result.PhotoCount)
			fmt.Printf("  repo:  %s\n", result.RepoURL)
			fmt.Printf("  album: %s\n", result.AlbumURL)
		} else {
			failure.Printf("✗ %s: %s\n", result.Name, result.Error)
		}
	}

	fmt.Printf("\n%d of %d album(s) published\n", succeeded, len(results))
}
