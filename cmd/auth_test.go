package cmd

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func withPromptedToken(t *testing.T, token string, err error) {
	t.Helper()
	original := readPassword
	readPassword = func() ([]byte, error) { return []byte(token), err }
	t.Cleanup(func() { readPassword = original })
}

func TestStoreTokenPromptsWithoutEcho(t *testing.T) {
	keyring.MockInit()
	withPromptedToken(t, "ghp_secret\n", nil)

	if err := storeTokenCmd.RunE(storeTokenCmd, nil); err != nil {
		t.Fatalf("store-token failed: %v", err)
	}

	// The token never appears as a command argument.
	if storeTokenCmd.Args(storeTokenCmd, []string{"ghp_secret"}) == nil {
		t.Error("store-token accepts the token as an argument")
	}

	stored, err := keyring.Get(keyringService, keyringUser)
	if err != nil {
		t.Fatalf("token not stored: %v", err)
	}
	if stored != "ghp_secret" {
		t.Errorf("stored token = %q, want trimmed ghp_secret", stored)
	}
}

func TestStoreTokenRejectsEmptyInput(t *testing.T) {
	keyring.MockInit()
	withPromptedToken(t, "  \n", nil)

	if err := storeTokenCmd.RunE(storeTokenCmd, nil); err == nil {
		t.Fatal("expected an error for an empty token")
	}
	if _, err := keyring.Get(keyringService, keyringUser); err == nil {
		t.Error("empty token was stored")
	}
}

func TestStoreTokenPromptFailure(t *testing.T) {
	keyring.MockInit()
	withPromptedToken(t, "", errors.New("not a terminal"))

	if err := storeTokenCmd.RunE(storeTokenCmd, nil); err == nil {
		t.Fatal("expected an error when the prompt fails")
	}
}

func TestClearToken(t *testing.T) {
	keyring.MockInit()
	if err := keyring.Set(keyringService, keyringUser, "ghp_secret"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := clearTokenCmd.RunE(clearTokenCmd, nil); err != nil {
		t.Fatalf("clear-token failed: %v", err)
	}
	if _, err := keyring.Get(keyringService, keyringUser); err == nil {
		t.Error("token still present after clear-token")
	}
}
