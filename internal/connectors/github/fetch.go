package github

import (
	"context"
	"errors"
	"time"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

const (
	// DefaultCooldown is the throttling backoff period.
	DefaultCooldown = 60 * time.Second

	// DefaultMaxAttempts is the total attempt budget per fetch,
	// including the first try.
	DefaultMaxAttempts = 3
)

// Outcome classifies the result of a single-resource fetch. Callers
// must treat anything but OutcomeOK as "unknown, not missing" and skip
// the record.
type Outcome int

const (
	// OutcomeOK means the fetch returned a record.
	OutcomeOK Outcome = iota
	// OutcomeThrottled means every attempt was answered with a
	// throttling response and the retry budget is exhausted.
	OutcomeThrottled
	// OutcomeFailed means a hard HTTP or transport error; no retry.
	OutcomeFailed
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeThrottled:
		return "throttled"
	default:
		return "failed"
	}
}

// FetchResult carries the tagged outcome of one fetch so callers can
// distinguish recoverable throttling from permanent failure.
type FetchResult struct {
	Outcome    Outcome
	StatusCode int
	Attempts   int
}

// Fetcher issues single-resource GETs with bounded retry on throttling
// responses. On a 429 it sleeps the cooldown (or the service's reset
// hint when that is sooner) and retries, up to MaxAttempts total
// attempts. Any other non-200 fails immediately without retry. The
// worst case per fetch is MaxAttempts tries and (MaxAttempts-1)
// cooldown sleeps.
type Fetcher struct {
	client *Client

	// Cooldown is the throttling backoff period. The service's reset
	// hint is honoured when shorter, never longer.
	Cooldown time.Duration

	// MaxAttempts is the total attempt budget, including the first try.
	MaxAttempts int

	// Sleep blocks for the backoff period. Tests replace it to record
	// sleeps instead of waiting.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a fetcher with the default retry policy.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{
		client:      client,
		Cooldown:    DefaultCooldown,
		MaxAttempts: DefaultMaxAttempts,
		Sleep:       sleepContext,
	}
}

// FetchUser fetches the detail record for one login. The record is nil
// unless the outcome is OutcomeOK.
func (f *Fetcher) FetchUser(ctx context.Context, login string) (*domain.EnrichedFollower, FetchResult) {
	var res FetchResult

	for attempt := 1; attempt <= f.MaxAttempts; attempt++ {
		res.Attempts = attempt

		if err := f.client.rateLimiter.Wait(ctx); err != nil {
			res.Outcome = OutcomeFailed
			return nil, res
		}

		user, resp, err := f.client.gh.Users.Get(ctx, login)
		if err == nil {
			f.client.updateRateLimitFromResponse(resp)
			res.Outcome = OutcomeOK
			res.StatusCode = 200
			return toEnrichedFollower(user), res
		}

		werr := f.client.wrapError(err, "get user")
		if !IsRateLimited(werr) {
			res.Outcome = OutcomeFailed
			res.StatusCode = StatusCode(werr)
			return nil, res
		}

		res.Outcome = OutcomeThrottled
		res.StatusCode = 429

		if attempt == f.MaxAttempts {
			break
		}
		if err := f.Sleep(ctx, f.backoff(werr)); err != nil {
			res.Outcome = OutcomeFailed
			return nil, res
		}
	}

	return nil, res
}

// backoff returns the sleep period for a throttling response: the
// fixed cooldown, shortened by the reset hint when one is present.
func (f *Fetcher) backoff(err error) time.Duration {
	d := f.Cooldown

	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		if hint := time.Until(rateLimitErr.ResetAt); hint > 0 && hint < d {
			d = hint
		}
	}

	return d
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
