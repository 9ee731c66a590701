package driven

import (
	"context"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

// RepositoryLister walks the authenticated user's repository listing.
// The returned slice preserves API response order across pages. Any
// non-200 response during traversal fails the whole listing; a partial
// page already collected is discarded, never returned.
type RepositoryLister interface {
	ListOwnedRepos(ctx context.Context) ([]domain.RepositoryRef, error)
}

// ForkRemediator applies the star-then-delete cleanup to one fork.
// The result names which phase failed, if any; a failed star means the
// delete was never attempted.
type ForkRemediator interface {
	RemediateFork(ctx context.Context, fullName string) domain.RemediationResult
}

// UserDirectory answers existence checks and listing queries about
// users and repositories. Existence checks distinguish "does not
// exist" (false, nil) from transport or auth failures (error).
type UserDirectory interface {
	UserExists(ctx context.Context, login string) (bool, error)
	RepoExists(ctx context.Context, owner, repo string) (bool, error)
	ListFollowers(ctx context.Context, login string) ([]domain.FollowerIdentity, error)
	GetRepositoryDetails(ctx context.Context, owner, repo string) (*domain.RepositoryDetails, error)
	ListContributors(ctx context.Context, owner, repo string) ([]domain.Contribution, error)
}

// FollowerEnricher maps follower identities to detail records using a
// bounded worker pool. Per-identity failures never abort the batch;
// they are dropped from the output and tallied in the stats.
// Result order is completion order, not submission order.
type FollowerEnricher interface {
	EnrichAll(ctx context.Context, identities []domain.FollowerIdentity) ([]domain.EnrichedFollower, domain.EnrichmentStats)
}
