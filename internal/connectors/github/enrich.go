package github

import (
	"context"
	"sync"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
	"github.com/dougdotcon/ghexplorer/internal/logger"
)

// DefaultWorkers bounds the enrichment fan-out so a large follower
// count doesn't dispatch an unbounded number of concurrent requests.
const DefaultWorkers = 8

// Enricher fans out per-identity detail fetches onto a bounded worker
// pool. Tasks share the single client session; each task applies the
// fetcher's retry policy independently, so two throttled tasks incur
// two separate cooldown sleeps.
type Enricher struct {
	fetcher *Fetcher
	workers int
}

// NewEnricher creates an enricher over the given fetcher. A
// non-positive workers falls back to DefaultWorkers.
func NewEnricher(fetcher *Fetcher, workers int) *Enricher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Enricher{
		fetcher: fetcher,
		workers: workers,
	}
}

// EnrichAll maps identities to detail records, collecting results as
// tasks complete. Output order is completion order, not submission
// order. Per-identity failures never abort sibling tasks: throttled
// and failed identities are dropped from the output and tallied in
// the stats.
func (e *Enricher) EnrichAll(ctx context.Context, identities []domain.FollowerIdentity) ([]domain.EnrichedFollower, domain.EnrichmentStats) {
	type taskResult struct {
		follower *domain.EnrichedFollower
		fetch    FetchResult
	}

	// Semaphore bounds in-flight fetches.
	sem := make(chan struct{}, e.workers)
	results := make(chan taskResult)

	var wg sync.WaitGroup
	for _, id := range identities {
		wg.Add(1)
		go func(login string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- taskResult{fetch: FetchResult{Outcome: OutcomeFailed}}
				return
			}

			follower, fetch := e.fetcher.FetchUser(ctx, login)
			if fetch.Outcome != OutcomeOK {
				logger.Warn("skipping follower %s: %s after %d attempt(s)", login, fetch.Outcome, fetch.Attempts)
			}
			results <- taskResult{follower: follower, fetch: fetch}
		}(id.Login)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []domain.EnrichedFollower
	var stats domain.EnrichmentStats
	for r := range results {
		switch r.fetch.Outcome {
		case OutcomeOK:
			stats.Enriched++
			out = append(out, *r.follower)
		case OutcomeThrottled:
			stats.Throttled++
		default:
			stats.Failed++
		}
	}

	return out, stats
}
