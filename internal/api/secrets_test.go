package api

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"golang.org/x/crypto/nacl/box"
)

// TestSealSecretRoundtrip verifies that a sealed secret can be opened by the
// holder of the corresponding private key, which is what GitHub does
// server-side.
func TestSealSecretRoundtrip(t *testing.T) {
	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate keypair: %v", err)
	}

	value := "ghp_exampletoken1234"
	sealed, err := sealSecret(value, base64.StdEncoding.EncodeToString(publicKey[:]))
	if err != nil {
		t.Fatalf("sealSecret failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		t.Fatalf("sealed value is not valid base64: %v", err)
	}

	opened, ok := box.OpenAnonymous(nil, raw, publicKey, privateKey)
	if !ok {
		t.Fatal("failed to open sealed box")
	}
	if string(opened) != value {
		t.Errorf("opened = %q, want %q", opened, value)
	}
}

func TestSealSecretRejectsBadKeys(t *testing.T) {
	if _, err := sealSecret("value", "not-base64!!!"); err == nil {
		t.Error("expected error for invalid base64 key")
	}

	short := base64.StdEncoding.EncodeToString([]byte("tooshort"))
	if _, err := sealSecret("value", short); err == nil {
		t.Error("expected error for wrong-length key")
	}
}
