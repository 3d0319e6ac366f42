package model

import "time"

// PublishConfig contains configuration for the publisher
type PublishConfig struct {
	TemplateURL       string        // template repository cloned for every album
	Branch            string        // default branch pushed to
	SecretName        string        // actions secret holding the deploy token
	ProvisioningGrace time.Duration // wait after repo creation before first push
	PushAttempts      int           // push attempt ceiling
	PushBackoff       time.Duration // delay between push attempts
	VerifyTimeout     time.Duration // 0 disables the post-publish reachability check
}

// Default configuration values
const (
	DefaultTemplateURL       = "https://github.com/albumpress/album-template.git"
	DefaultBranch            = "main"
	DefaultSecretName        = "PAGES_DEPLOY_TOKEN"
	DefaultPushAttempts      = 3
	DefaultProvisioningGrace = 5 * time.Second
	DefaultPushBackoff       = 5 * time.Second
)

// NewPublishConfig creates a default publish configuration
func NewPublishConfig() PublishConfig {
	return PublishConfig{
		TemplateURL:       DefaultTemplateURL,
		Branch:            DefaultBranch,
		SecretName:        DefaultSecretName,
		ProvisioningGrace: DefaultProvisioningGrace,
		PushAttempts:      DefaultPushAttempts,
		PushBackoff:       DefaultPushBackoff,
	}
}
