package model

// AlbumRequest describes a single album publish run. It is built once by the
// batch planner and not mutated afterwards.
type AlbumRequest struct {
	SourceDir    string // directory holding the photos
	RepoNameHint string // raw name, sanitized and prefixed before use
	Token        string // GitHub token used for API calls and pushes
	Owner        string // user or organization that will own the repository
	DryRun       bool
	ForceSingle  bool
	ForceBatch   bool
}

// AlbumResult is produced exactly once per album attempt.
type AlbumResult struct {
	Name       string // canonical repository name (prefixed and sanitized)
	RepoURL    string // empty on failure
	AlbumURL   string // empty on failure
	Succeeded  bool
	Error      string // human-readable, classified message
	PhotoCount int    // photos found at the start of the attempt, set even on failure
}

// ProgressEvent is an advisory notification emitted during a live run.
// It never affects control flow.
type ProgressEvent struct {
	Step   string
	Detail string
}

// RepoCreationOutcome reports the result of a repository creation call.
// "created" and "already exists" are both success, since either way the
// repository is usable afterwards.
type RepoCreationOutcome struct {
	Succeeded      bool
	AlreadyExisted bool
	Error          string
}

// SecretProvisionOutcome reports the result of provisioning a repository
// secret. Failure here is non-fatal for the overall publish.
type SecretProvisionOutcome struct {
	Succeeded bool
	Error     string
}
