package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored GitHub token",
}

// For mocking in tests. The token is read without echo so it never lands in
// shell history or terminal scrollback.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

var storeTokenCmd = &cobra.Command{
	Use:   "store-token",
	Short: "Store a GitHub token in the system keyring",
	Long: `Prompt for a GitHub token and store it in the system keyring.

The token is read from the terminal without echo. Publish runs pick it up
automatically when neither --token nor a token environment variable is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("GitHub token: ")
		raw, err := readPassword()
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}

		token := strings.TrimSpace(string(raw))
		if token == "" {
			return fmt.Errorf("no token entered")
		}

		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}
		color.Green("Token stored in system keyring")
		return nil
	},
}

var clearTokenCmd = &cobra.Command{
	Use:   "clear-token",
	Short: "Remove the GitHub token from the system keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			return fmt.Errorf("failed to remove token: %w", err)
		}
		color.Green("Token removed from system keyring")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(storeTokenCmd)
	authCmd.AddCommand(clearTokenCmd)
}
