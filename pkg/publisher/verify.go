package publisher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// verifyPollInterval is the wait between reachability probes.
const verifyPollInterval = 15 * time.Second

// Verifier polls a published album URL until GitHub Pages serves it. The
// outcome is advisory only: the push already succeeded, Pages deployment
// just lags behind it.
type Verifier struct {
	http *resty.Client
}

// NewVerifier creates a Verifier that gives up after roughly timeout.
func NewVerifier(timeout time.Duration) *Verifier {
	retries := int(timeout / verifyPollInterval)
	if retries < 1 {
		retries = 1
	}

	client := resty.New().
		SetRetryCount(retries).
		SetRetryWaitTime(verifyPollInterval).
		SetRetryMaxWaitTime(verifyPollInterval).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() != http.StatusOK
		})
	return &Verifier{http: client}
}

// WaitForAlbum probes url until it serves HTTP 200 or the retry budget is
// exhausted.
func (v *Verifier) WaitForAlbum(ctx context.Context, url string) error {
	resp, err := v.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("album not reachable yet: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("album not live yet (status %d), deployment may still be running", resp.StatusCode())
	}
	return nil
}
