package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
	"github.com/dougdotcon/ghexplorer/internal/core/ports/driven"
	"github.com/dougdotcon/ghexplorer/internal/export"
	"github.com/dougdotcon/ghexplorer/internal/logger"
)

// DefaultContributionsFile is the default contributor export path.
const DefaultContributionsFile = "github_repo_contributions.csv.gz"

// contributorFields fixes the export header and column order.
var contributorFields = []string{
	"contributor_login",
	"contributions",
	"repo_name",
	"repo_description",
	"repo_stars",
	"repo_forks",
	"repo_open_issues",
	"repo_created_at",
}

var contributorTransforms = map[string]driven.Transform{
	"repo_created_at": export.DateDDMMYYYY,
}

// ContributionSummary is the caller-facing result of a contribution
// analysis.
type ContributionSummary struct {
	Contributors int
	Stars        int
	Forks        int
	// Path is the export file path, empty when nothing was exported.
	Path string
}

// ContributionService harvests the contributors of one repository into
// a denormalised export: one row per contributor with the repository
// fields duplicated across rows.
type ContributionService struct {
	directory driven.UserDirectory
	exporter  driven.TabularExporter
}

// NewContributionService creates a contribution service.
func NewContributionService(directory driven.UserDirectory, exporter driven.TabularExporter) *ContributionService {
	return &ContributionService{
		directory: directory,
		exporter:  exporter,
	}
}

// Analyze runs the contribution pipeline for owner/repo and writes the
// export to path (DefaultContributionsFile when empty). Every lookup
// here is a listing or existence check, so any failure is hard.
func (s *ContributionService) Analyze(ctx context.Context, owner, repo, path string) (*ContributionSummary, error) {
	if path == "" {
		path = DefaultContributionsFile
	}

	exists, err := s.directory.UserExists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, owner)
	}

	exists, err = s.directory.RepoExists(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("check repo: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrRepoNotFound, owner, repo)
	}

	details, err := s.directory.GetRepositoryDetails(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("get repo details: %w", err)
	}

	contributions, err := s.directory.ListContributors(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("list contributors: %w", err)
	}

	summary := &ContributionSummary{
		Contributors: len(contributions),
		Stars:        details.Stars,
		Forks:        details.Forks,
	}
	if len(contributions) == 0 {
		return summary, nil
	}

	records := buildContributorRecords(details, contributions)

	table := driven.Table{
		Fields: contributorFields,
		Rows:   make([]map[string]string, 0, len(records)),
	}
	for i := range records {
		table.Rows = append(table.Rows, contributorRow(&records[i]))
	}

	logger.Info("exporting %d contributor(s) of %s/%s", len(records), owner, repo)
	if err := s.exporter.Export(ctx, table, contributorTransforms, path); err != nil {
		return nil, fmt.Errorf("export contributions: %w", err)
	}

	summary.Path = path
	return summary, nil
}

// buildContributorRecords denormalises the repository details into one
// record per contributor.
func buildContributorRecords(details *domain.RepositoryDetails, contributions []domain.Contribution) []domain.ContributorRecord {
	records := make([]domain.ContributorRecord, 0, len(contributions))
	for _, c := range contributions {
		records = append(records, domain.ContributorRecord{
			ContributorLogin: c.Login,
			Contributions:    c.Contributions,
			RepoName:         details.Name,
			RepoDescription:  details.Description,
			RepoStars:        details.Stars,
			RepoForks:        details.Forks,
			RepoOpenIssues:   details.OpenIssues,
			RepoCreatedAt:    details.CreatedAt,
		})
	}
	return records
}

func contributorRow(r *domain.ContributorRecord) map[string]string {
	return map[string]string{
		"contributor_login": r.ContributorLogin,
		"contributions":     strconv.Itoa(r.Contributions),
		"repo_name":         r.RepoName,
		"repo_description":  r.RepoDescription,
		"repo_stars":        strconv.Itoa(r.RepoStars),
		"repo_forks":        strconv.Itoa(r.RepoForks),
		"repo_open_issues":  strconv.Itoa(r.RepoOpenIssues),
		"repo_created_at":   r.RepoCreatedAt,
	}
}
