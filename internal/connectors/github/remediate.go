package github

import (
	"context"
	"fmt"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

// RemediateFork applies the two-step cleanup to one fork: star the
// repository (a trace of having owned it), then delete it. Both calls
// must answer 204. If the star fails the delete is never attempted.
// If the delete fails after a successful star the repository is left
// starred but not deleted; the result records that state and no
// rollback is attempted.
func (c *Client) RemediateFork(ctx context.Context, fullName string) domain.RemediationResult {
	res := domain.RemediationResult{Repo: fullName}

	owner, name, ok := splitFullName(fullName)
	if !ok {
		res.FailedPhase = domain.PhaseStar
		res.Err = fmt.Errorf("invalid repository name %q", fullName)
		return res
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		res.FailedPhase = domain.PhaseStar
		res.Err = fmt.Errorf("rate limit wait: %w", err)
		return res
	}

	resp, err := c.gh.Activity.Star(ctx, owner, name)
	if err != nil {
		res.FailedPhase = domain.PhaseStar
		res.Err = c.wrapError(err, "star repo")
		return res
	}
	c.updateRateLimitFromResponse(resp)
	res.Starred = true

	if err := c.rateLimiter.Wait(ctx); err != nil {
		res.FailedPhase = domain.PhaseDelete
		res.Err = fmt.Errorf("rate limit wait: %w", err)
		return res
	}

	resp, err = c.gh.Repositories.Delete(ctx, owner, name)
	if err != nil {
		res.FailedPhase = domain.PhaseDelete
		res.Err = c.wrapError(err, "delete repo")
		return res
	}
	c.updateRateLimitFromResponse(resp)

	return res
}
