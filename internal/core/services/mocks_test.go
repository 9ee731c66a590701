package services

import (
	"context"
	"errors"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
	"github.com/dougdotcon/ghexplorer/internal/core/ports/driven"
)

// mockLister implements driven.RepositoryLister.
type mockLister struct {
	repos []domain.RepositoryRef
	err   error
	calls int
}

func (m *mockLister) ListOwnedRepos(_ context.Context) ([]domain.RepositoryRef, error) {
	m.calls++
	return m.repos, m.err
}

// mockRemediator implements driven.ForkRemediator.
type mockRemediator struct {
	failPhase map[string]domain.RemediationPhase
	applied   []string
}

func (m *mockRemediator) RemediateFork(_ context.Context, fullName string) domain.RemediationResult {
	m.applied = append(m.applied, fullName)
	res := domain.RemediationResult{Repo: fullName}
	if phase, ok := m.failPhase[fullName]; ok {
		res.FailedPhase = phase
		res.Starred = phase == domain.PhaseDelete
		res.Err = errors.New("remediation refused")
	}
	return res
}

// mockDirectory implements driven.UserDirectory.
type mockDirectory struct {
	users        map[string]bool
	repos        map[string]bool
	followers    []domain.FollowerIdentity
	details      *domain.RepositoryDetails
	contributors []domain.Contribution

	userErr         error
	followersErr    error
	contributorsErr error
}

func (m *mockDirectory) UserExists(_ context.Context, login string) (bool, error) {
	if m.userErr != nil {
		return false, m.userErr
	}
	return m.users[login], nil
}

func (m *mockDirectory) RepoExists(_ context.Context, owner, repo string) (bool, error) {
	return m.repos[owner+"/"+repo], nil
}

func (m *mockDirectory) ListFollowers(_ context.Context, _ string) ([]domain.FollowerIdentity, error) {
	return m.followers, m.followersErr
}

func (m *mockDirectory) GetRepositoryDetails(_ context.Context, _, _ string) (*domain.RepositoryDetails, error) {
	return m.details, nil
}

func (m *mockDirectory) ListContributors(_ context.Context, _, _ string) ([]domain.Contribution, error) {
	return m.contributors, m.contributorsErr
}

// mockEnricher implements driven.FollowerEnricher.
type mockEnricher struct {
	enriched []domain.EnrichedFollower
	stats    domain.EnrichmentStats
}

func (m *mockEnricher) EnrichAll(_ context.Context, _ []domain.FollowerIdentity) ([]domain.EnrichedFollower, domain.EnrichmentStats) {
	return m.enriched, m.stats
}

// mockExporter implements driven.TabularExporter, capturing its input.
type mockExporter struct {
	table      driven.Table
	transforms map[string]driven.Transform
	path       string
	err        error
	calls      int
}

func (m *mockExporter) Export(_ context.Context, table driven.Table, transforms map[string]driven.Transform, path string) error {
	m.calls++
	m.table = table
	m.transforms = transforms
	m.path = path
	return m.err
}

func strptr(s string) *string {
	return &s
}
