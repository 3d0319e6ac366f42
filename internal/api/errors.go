package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v38/github"
)

// errorRule maps an API failure to actionable guidance. Rules match on the
// HTTP status code first and only fall back to message text, so that
// classification does not depend on GitHub's message wording.
type errorRule struct {
	matches func(status int, message string) bool
	advice  string
}

var errorRules = []errorRule{
	{
		matches: func(status int, message string) bool {
			return status == http.StatusUnauthorized || strings.Contains(message, "bad credentials")
		},
		advice: "invalid GitHub token: check that the token is valid, not expired, and has the repo scope",
	},
	{
		matches: func(status int, message string) bool {
			return status == http.StatusForbidden
		},
		advice: "permission denied: the token cannot act on this account (repo and workflow scopes are required)",
	},
	{
		matches: func(status int, message string) bool {
			return status == http.StatusNotFound
		},
		advice: "account or repository not found: check the owner name and that the token can access it",
	},
}

// Classify rewrites a GitHub API error into an actionable message.
// Unrecognized errors pass through verbatim. Structured API errors are
// inspected directly; ErrorResponse.Error() needs the original *http.Request
// and is never called here.
func Classify(err error) string {
	status := 0
	message := ""

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) {
		if apiErr.Response != nil {
			status = apiErr.Response.StatusCode
		}
		message = apiErr.Message
	} else {
		message = err.Error()
	}

	lower := strings.ToLower(message)
	for _, rule := range errorRules {
		if rule.matches(status, lower) {
			return rule.advice
		}
	}
	if message == "" {
		return fmt.Sprintf("unexpected GitHub API response (status %d)", status)
	}
	return message
}

// isAlreadyExists reports whether a repository creation failure means the
// name is already taken on the target account.
func isAlreadyExists(err error) bool {
	var apiErr *github.ErrorResponse
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, e := range apiErr.Errors {
		if strings.Contains(strings.ToLower(e.Message), "already exists") {
			return true
		}
	}
	return false
}
