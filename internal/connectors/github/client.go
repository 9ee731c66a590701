package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPerPage is the page size used for listing endpoints.
	DefaultPerPage = 100

	// timestampLayout is the ISO-8601 form GitHub uses for timestamps.
	timestampLayout = "2006-01-02T15:04:05Z"
)

// Client wraps the go-github client with the pipeline's retrieval
// methods. One Client is the single shared authenticated session for
// the process lifetime; every component borrows it by injection.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub client with a static personal access
// token. The token is carried on every request via an oauth2 transport.
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(tc),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a GitHub client over a custom
// http.Client. Useful for tests pointing at a local server.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// RateLimiter returns the shared rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// ValidateCredentials checks the configured token by fetching the
// authenticated user.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return c.wrapError(err, "validate credentials")
	}

	c.updateRateLimitFromResponse(resp)
	return nil
}

// ListOwnedRepos returns every repository owned by the authenticated
// user, following the pagination cursor until exhausted. Per-page item
// order is preserved. Any non-200 response during traversal fails the
// whole listing; pages already collected are discarded.
func (c *Client) ListOwnedRepos(ctx context.Context) ([]domain.RepositoryRef, error) {
	var all []domain.RepositoryRef

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Type:        "owner",
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

		repos, resp, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, c.wrapError(err, "list repos")
		}

		c.updateRateLimitFromResponse(resp)

		for _, r := range repos {
			all = append(all, toRepositoryRef(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// splitFullName splits an "owner/name" identifier.
func splitFullName(fullName string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return "", "", false
	}
	return owner, name, true
}

func toRepositoryRef(r *gh.Repository) domain.RepositoryRef {
	return domain.RepositoryRef{
		FullName:    r.GetFullName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		IsFork:      r.GetFork(),
	}
}

func toRepositoryDetails(r *gh.Repository) *domain.RepositoryDetails {
	return &domain.RepositoryDetails{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		CreatedAt:   formatTimestamp(r.CreatedAt),
	}
}

func toEnrichedFollower(u *gh.User) *domain.EnrichedFollower {
	return &domain.EnrichedFollower{
		Name:        u.Name,
		Company:     u.Company,
		Blog:        u.Blog,
		Email:       u.Email,
		Bio:         u.Bio,
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   formatTimestamp(u.CreatedAt),
	}
}

func formatTimestamp(t *gh.Timestamp) string {
	if t == nil || t.Time.IsZero() {
		return ""
	}
	return t.Time.UTC().Format(timestampLayout)
}

// updateRateLimitFromResponse updates the rate limiter from GitHub
// response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Primary rate limit (403 with exhausted quota)
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	// Secondary rate limit (429/403 with Retry-After)
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		reset := c.rateLimiter.ResetTime()
		if abuseErr.RetryAfter != nil {
			reset = time.Now().Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{
			ResetAt:   reset,
			Remaining: c.rateLimiter.Remaining(),
			Limit:     GitHubRateLimit,
		}
	}

	// Plain API error response
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{
			Message: ghErr.Message,
		}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
			if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
				apiErr.URL = ghErr.Response.Request.URL.String()
			}
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
