package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

// version will be set during build
var version = "dev"

const (
	keyringService = "albumpress"
	keyringUser    = "github-token"
)

var rootCmd = &cobra.Command{
	Use:   "albumpress",
	Short: "Publish photo directories as GitHub Pages albums",
	Long: `albumpress turns a local directory of photos into a published album:
a GitHub repository seeded from the album template, populated with the
photos, and deployed via GitHub Pages.

A directory that itself contains photos becomes one album. A directory of
subdirectories becomes one album per subdirectory (batch mode).`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("token", "t", "", "GitHub personal access token")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "GitHub user or organization owning the album repositories")

	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	viper.BindPFlag("owner", rootCmd.PersistentFlags().Lookup("owner"))
	viper.SetEnvPrefix("albumpress")
	viper.AutomaticEnv()
	viper.BindEnv("token", "ALBUMPRESS_TOKEN", "GITHUB_TOKEN")
	viper.BindEnv("owner", "ALBUMPRESS_OWNER")
}

// resolveToken returns the GitHub token from flag, environment, or the OS
// keyring, in that order.
func resolveToken() (string, error) {
	if token := viper.GetString("token"); token != "" {
		return token, nil
	}
	token, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		return "", fmt.Errorf("no token found: pass --token, set GITHUB_TOKEN, or run 'albumpress auth store-token'")
	}
	return token, nil
}
