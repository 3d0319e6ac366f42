package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// RepoPrefix namespaces every album repository under the owning account.
const RepoPrefix = "album-"

// Sanitize maps an arbitrary directory name to a valid repository-name
// fragment. Whitespace is removed and every rune outside letters, digits,
// hyphen and underscore is dropped. An all-invalid input yields "".
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RepoName applies the album prefix to a name hint. Prefixing an
// already-prefixed name is a no-op.
func RepoName(hint string) string {
	if strings.HasPrefix(hint, RepoPrefix) {
		return hint
	}
	return RepoPrefix + hint
}

// RepoURL returns the canonical HTTPS URL of an album repository.
func RepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}

// CloneURL returns the HTTPS git remote for an album repository.
func CloneURL(owner, repo string) string {
	return RepoURL(owner, repo) + ".git"
}

// AlbumURL returns the GitHub Pages URL the album is served from.
func AlbumURL(owner, repo string) string {
	return fmt.Sprintf("https://%s.github.io/%s/", strings.ToLower(owner), repo)
}
