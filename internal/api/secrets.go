package api

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/albumpress/cli/pkg/model"
	"github.com/google/go-github/v38/github"
	"golang.org/x/crypto/nacl/box"
)

// ProvisionSecret uploads value as an actions secret on owner/repo. GitHub
// only accepts secrets sealed against the repository's public key, so the
// value is encrypted with an anonymous sealed box before upload. Every
// failure is returned as a non-fatal outcome; callers must not treat it as
// blocking overall success.
func (c *Client) ProvisionSecret(ctx context.Context, owner, repo, secretName, value string) model.SecretProvisionOutcome {
	key, _, err := c.gh.Actions.GetRepoPublicKey(ctx, owner, repo)
	if err != nil {
		return model.SecretProvisionOutcome{Error: fmt.Sprintf("failed to fetch repository public key: %s", Classify(err))}
	}

	sealed, err := sealSecret(value, key.GetKey())
	if err != nil {
		return model.SecretProvisionOutcome{Error: fmt.Sprintf("failed to encrypt secret: %v", err)}
	}

	secret := &github.EncryptedSecret{
		Name:           secretName,
		KeyID:          key.GetKeyID(),
		EncryptedValue: sealed,
	}
	if _, err := c.gh.Actions.CreateOrUpdateRepoSecret(ctx, owner, repo, secret); err != nil {
		return model.SecretProvisionOutcome{Error: fmt.Sprintf("failed to upload secret: %s", Classify(err))}
	}

	return model.SecretProvisionOutcome{Succeeded: true}
}

// sealSecret encrypts value against a base64-encoded NaCl public key and
// returns the base64-encoded sealed box.
func sealSecret(value, publicKeyB64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return "", fmt.Errorf("invalid public key encoding: %w", err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("invalid public key length: %d", len(raw))
	}

	var publicKey [32]byte
	copy(publicKey[:], raw)

	sealed, err := box.SealAnonymous(nil, []byte(value), &publicKey, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("sealed box encryption failed: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}
