package services

import (
	"context"
	"fmt"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
	"github.com/dougdotcon/ghexplorer/internal/core/ports/driven"
	"github.com/dougdotcon/ghexplorer/internal/logger"
)

// ScanResult summarises one pass over the repository listing.
type ScanResult struct {
	// Total is the number of repositories owned by the account.
	Total int
	// Forks are the fork entries, in listing order.
	Forks []domain.RepositoryRef
}

// CleanerService walks the authenticated user's repositories and
// applies the star-then-delete remediation to forks.
type CleanerService struct {
	lister     driven.RepositoryLister
	remediator driven.ForkRemediator
}

// NewCleanerService creates a cleaner service.
func NewCleanerService(lister driven.RepositoryLister, remediator driven.ForkRemediator) *CleanerService {
	return &CleanerService{
		lister:     lister,
		remediator: remediator,
	}
}

// Scan lists every owned repository and picks out the forks. A listing
// failure aborts the scan; no partial result is returned.
func (s *CleanerService) Scan(ctx context.Context) (*ScanResult, error) {
	repos, err := s.lister.ListOwnedRepos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repos: %w", err)
	}

	result := &ScanResult{Total: len(repos)}
	for _, r := range repos {
		if r.IsFork {
			result.Forks = append(result.Forks, r)
		}
	}

	logger.Info("scan found %d repositories, %d forks", result.Total, len(result.Forks))
	return result, nil
}

// RemediateFork remediates a single fork.
func (s *CleanerService) RemediateFork(ctx context.Context, fullName string) domain.RemediationResult {
	return s.remediator.RemediateFork(ctx, fullName)
}

// RemediateForks remediates each fork in order, reporting a result per
// repository. A failed repository does not stop the rest of the batch;
// the caller decides what to do with partial failures.
func (s *CleanerService) RemediateForks(ctx context.Context, forks []domain.RepositoryRef) []domain.RemediationResult {
	results := make([]domain.RemediationResult, 0, len(forks))
	for _, fork := range forks {
		select {
		case <-ctx.Done():
			return results
		default:
		}

		res := s.remediator.RemediateFork(ctx, fork.FullName)
		if !res.Succeeded() {
			logger.Warn("remediation failed: %s", res)
		}
		results = append(results, res)
	}
	return results
}
