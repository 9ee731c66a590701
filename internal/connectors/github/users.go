package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

// UserExists reports whether a GitHub user exists. A 404 is a plain
// "no"; any other non-200 response is surfaced as an error so callers
// don't mistake an outage or a bad token for a missing user.
func (c *Client) UserExists(ctx context.Context, login string) (bool, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, login)
	if err != nil {
		werr := c.wrapError(err, "get user")
		if IsNotFound(werr) {
			return false, nil
		}
		return false, werr
	}

	c.updateRateLimitFromResponse(resp)
	return true, nil
}

// RepoExists reports whether a repository exists for the given owner.
func (c *Client) RepoExists(ctx context.Context, owner, repo string) (bool, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		werr := c.wrapError(err, "get repo")
		if IsNotFound(werr) {
			return false, nil
		}
		return false, werr
	}

	c.updateRateLimitFromResponse(resp)
	return true, nil
}

// GetRepositoryDetails fetches the repository fields that get
// denormalised into contributor export rows.
func (c *Client) GetRepositoryDetails(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	repository, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, c.wrapError(err, "get repo")
	}

	c.updateRateLimitFromResponse(resp)
	return toRepositoryDetails(repository), nil
}

// ListFollowers returns the followers of a user in API response order,
// following the pagination cursor until exhausted. Same hard-fail
// policy as ListOwnedRepos: a partial listing is never returned.
func (c *Client) ListFollowers(ctx context.Context, login string) ([]domain.FollowerIdentity, error) {
	var all []domain.FollowerIdentity

	opts := &gh.ListOptions{PerPage: DefaultPerPage}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		followers, resp, err := c.gh.Users.ListFollowers(ctx, login, opts)
		if err != nil {
			return nil, c.wrapError(err, "list followers")
		}

		c.updateRateLimitFromResponse(resp)

		for _, f := range followers {
			all = append(all, domain.FollowerIdentity{Login: f.GetLogin()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListContributors returns the contributors of a repository in API
// response order, following the pagination cursor until exhausted.
func (c *Client) ListContributors(ctx context.Context, owner, repo string) ([]domain.Contribution, error) {
	var all []domain.Contribution

	opts := &gh.ListContributorsOptions{
		ListOptions: gh.ListOptions{PerPage: DefaultPerPage},
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		contributors, resp, err := c.gh.Repositories.ListContributors(ctx, owner, repo, opts)
		if err != nil {
			return nil, c.wrapError(err, "list contributors")
		}

		c.updateRateLimitFromResponse(resp)

		for _, contributor := range contributors {
			all = append(all, domain.Contribution{
				Login:         contributor.GetLogin(),
				Contributions: contributor.GetContributions(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	return all, nil
}
