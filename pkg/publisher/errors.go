package publisher

import "strings"

// NoPhotosError is returned for an album attempt on a directory without any
// photos, in every mode including dry run.
const NoPhotosError = "No photos found in directory"

// failureRule rewrites well-known failure text, mostly from git transport
// output, into actionable guidance. Rules are evaluated in order; the first
// match wins and unrecognized text passes through verbatim.
type failureRule struct {
	substrings []string
	advice     string
}

var failureRules = []failureRule{
	{
		substrings: []string{"authentication failed", "invalid username or password", "bad credentials"},
		advice:     "GitHub authentication failed: check that the token is valid and not expired",
	},
	{
		substrings: []string{"permission denied", "403"},
		advice:     "permission denied: the token needs repo and workflow scopes for this account",
	},
	{
		substrings: []string{"repository not found", "404"},
		advice:     "repository not accessible: GitHub may still be provisioning it, retry in a moment",
	},
}

func classifyFailure(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range failureRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.advice
			}
		}
	}
	return message
}
