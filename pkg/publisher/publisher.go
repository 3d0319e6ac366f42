package publisher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/albumpress/cli/internal/git"
	"github.com/albumpress/cli/pkg/model"
	"github.com/albumpress/cli/pkg/naming"
	"github.com/albumpress/cli/pkg/scanner"
	"github.com/google/uuid"
)

// RepoService covers the remote API operations used during a publish run.
type RepoService interface {
	CreateRepository(ctx context.Context, name, owner string) model.RepoCreationOutcome
	ProvisionSecret(ctx context.Context, owner, repo, secretName, value string) model.SecretProvisionOutcome
}

// Stager prepares the ephemeral workspace from the template.
type Stager interface {
	Stage(ctx context.Context, workspace string, photos []string, sourceDir string) error
}

// Publisher drives the full per-album sequence: create repo, wait for
// provisioning, stage content, commit, push with retry, provision secret,
// clean up.
type Publisher struct {
	repos    RepoService
	stager   Stager
	git      git.Client
	config   model.PublishConfig
	sink     Sink
	verifier *Verifier

	// sleep is swapped in tests for deterministic zero-duration waits.
	sleep func(time.Duration)
}

// New creates a Publisher. sink may be nil.
func New(repos RepoService, stager Stager, gitClient git.Client, config model.PublishConfig, sink Sink) *Publisher {
	p := &Publisher{
		repos:  repos,
		stager: stager,
		git:    gitClient,
		config: config,
		sink:   sink,
		sleep:  time.Sleep,
	}
	if config.VerifyTimeout > 0 {
		p.verifier = NewVerifier(config.VerifyTimeout)
	}
	return p
}

// Publish runs one album attempt to completion and returns its result.
// Failures never panic and never leak to sibling albums; the result carries
// a classified, human-readable error instead.
func (p *Publisher) Publish(ctx context.Context, req model.AlbumRequest) model.AlbumResult {
	photos := scanner.ListPhotos(req.SourceDir)
	name := naming.RepoName(naming.Sanitize(req.RepoNameHint))
	result := model.AlbumResult{Name: name, PhotoCount: len(photos)}

	if len(photos) == 0 {
		result.Error = NoPhotosError
		return result
	}

	if req.DryRun {
		// No remote calls: both URLs follow purely from naming rules.
		result.Succeeded = true
		result.RepoURL = naming.RepoURL(req.Owner, name)
		result.AlbumURL = naming.AlbumURL(req.Owner, name)
		return result
	}

	p.emit("creating repository", name)
	outcome := p.repos.CreateRepository(ctx, name, req.Owner)
	if !outcome.Succeeded {
		// API errors arrive already classified; the git-output rules must
		// not rewrite them.
		result.Error = outcome.Error
		return result
	}
	if outcome.AlreadyExisted {
		p.emit("creating repository", "already exists, reusing")
	} else if p.config.ProvisioningGrace > 0 {
		// A freshly created repository is not immediately push-able.
		p.emit("creating repository", "waiting for provisioning")
		p.sleep(p.config.ProvisioningGrace)
	}

	workspace := filepath.Join(os.TempDir(), "albumpress-"+uuid.NewString())
	defer os.RemoveAll(workspace)

	p.emit("staging content", fmt.Sprintf("%d photos", len(photos)))
	if err := p.stager.Stage(ctx, workspace, photos, req.SourceDir); err != nil {
		result.Error = classifyFailure(err.Error())
		return result
	}

	message := fmt.Sprintf("Publish %d photos from %s", len(photos), filepath.Base(req.SourceDir))
	p.emit("committing", message)
	if err := p.commit(ctx, workspace, message); err != nil {
		result.Error = classifyFailure(err.Error())
		return result
	}

	p.emit("pushing", naming.RepoURL(req.Owner, name))
	remote := git.AuthURL(naming.CloneURL(req.Owner, name), req.Token)
	if err := p.pushWithRetry(ctx, workspace, remote); err != nil {
		result.Error = classifyFailure(err.Error())
		return result
	}

	p.emit("provisioning secret", p.config.SecretName)
	secretOutcome := p.repos.ProvisionSecret(ctx, req.Owner, name, p.config.SecretName, req.Token)
	if !secretOutcome.Succeeded {
		// Non-fatal: the album is published, only the deploy credential
		// for the template's CI is missing.
		p.emit(StepWarning, "secret provisioning failed: "+secretOutcome.Error)
	}

	result.Succeeded = true
	result.RepoURL = naming.RepoURL(req.Owner, name)
	result.AlbumURL = naming.AlbumURL(req.Owner, name)

	if p.verifier != nil {
		p.emit("verifying deployment", result.AlbumURL)
		if err := p.verifier.WaitForAlbum(ctx, result.AlbumURL); err != nil {
			p.emit(StepWarning, err.Error())
		}
	}

	return result
}

// commit initializes a fresh repository in the workspace and records all
// staged content as a single commit.
func (p *Publisher) commit(ctx context.Context, workspace, message string) error {
	if err := p.git.InitRepo(ctx, workspace, p.config.Branch); err != nil {
		return err
	}
	if err := p.git.AddAll(ctx, workspace); err != nil {
		return err
	}
	return p.git.Commit(ctx, workspace, message)
}

// pushWithRetry pushes up to the configured attempt ceiling, backing off
// between attempts. The workspace is always fresh, so force-pushing over the
// template's freshly-initialized default branch is safe.
func (p *Publisher) pushWithRetry(ctx context.Context, workspace, remote string) error {
	attempts := p.config.PushAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			p.emit("pushing", fmt.Sprintf("retrying (attempt %d/%d)", attempt, attempts))
			if p.config.PushBackoff > 0 {
				p.sleep(p.config.PushBackoff)
			}
		}
		lastErr = p.git.ForcePush(ctx, workspace, remote, p.config.Branch)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (p *Publisher) emit(step, detail string) {
	if p.sink == nil {
		return
	}
	p.sink.Emit(model.ProgressEvent{Step: step, Detail: detail})
}
