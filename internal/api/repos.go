package api

import (
	"context"

	"github.com/albumpress/cli/pkg/model"
	"github.com/google/go-github/v38/github"
)

// CreateRepository creates an album repository under the given owner. The
// owner is compared case-insensitively against the authenticated user to
// choose between the personal and the organization creation endpoint. A
// "name already exists" response counts as success, since the repository is
// usable either way.
func (c *Client) CreateRepository(ctx context.Context, name, owner string) model.RepoCreationOutcome {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		// An unusable token makes the creation call pointless.
		return model.RepoCreationOutcome{Error: Classify(err)}
	}

	org := ""
	if !isPersonal(owner, user.GetLogin()) {
		org = owner
	}

	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String("Photo album published with albumpress"),
	}
	created, _, err := c.gh.Repositories.Create(ctx, org, repo)
	if err != nil {
		if isAlreadyExists(err) {
			return model.RepoCreationOutcome{Succeeded: true, AlreadyExisted: true}
		}
		return model.RepoCreationOutcome{Error: Classify(err)}
	}

	if created == nil || created.GetName() == "" {
		return model.RepoCreationOutcome{Error: "repository creation reported success but no repository was returned"}
	}
	return model.RepoCreationOutcome{Succeeded: true}
}
