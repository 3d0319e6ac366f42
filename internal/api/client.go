package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v38/github"
	"golang.org/x/oauth2"
)

// For mocking in tests
var newGitHubClient = func(token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// Client talks to the GitHub REST API for repository creation and actions
// secret provisioning.
type Client struct {
	gh *github.Client
}

// NewClient creates a Client authenticated with the given token.
func NewClient(token string) *Client {
	return &Client{gh: newGitHubClient(token)}
}

// AuthenticatedLogin resolves the login of the token's user.
func (c *Client) AuthenticatedLogin(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to resolve authenticated user: %s", Classify(err))
	}
	login := user.GetLogin()
	if login == "" {
		return "", fmt.Errorf("authenticated user has no login")
	}
	return login, nil
}

// isPersonal reports whether owner refers to the authenticated user itself.
func isPersonal(owner, login string) bool {
	return owner == "" || strings.EqualFold(owner, login)
}
