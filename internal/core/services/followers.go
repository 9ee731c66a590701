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

// DefaultFollowersFile is the default follower export path.
const DefaultFollowersFile = "github_followers.csv.gz"

// followerFields fixes the export header and column order.
var followerFields = []string{
	"name",
	"company",
	"blog",
	"email",
	"bio",
	"public_repos",
	"followers",
	"following",
	"created_at",
}

// followerTransforms are the per-field rewrites applied at export:
// the company field drops its conventional leading "@", and the
// account creation date is reformatted to DD/MM/YYYY.
var followerTransforms = map[string]driven.Transform{
	"company":    export.StripLeadingAt,
	"created_at": export.DateDDMMYYYY,
}

// FollowerSummary is the caller-facing result of a follower analysis.
type FollowerSummary struct {
	// Followers is the size of the follower listing.
	Followers int
	// Exported is the number of records written to the export file.
	Exported int
	// Skipped is the number of followers whose detail fetch soft-failed.
	Skipped int
	// Path is the export file path, empty when nothing was exported.
	Path string
}

// FollowerService harvests a user's followers: existence check,
// listing, concurrent enrichment, sanitisation and export.
type FollowerService struct {
	directory driven.UserDirectory
	enricher  driven.FollowerEnricher
	exporter  driven.TabularExporter
}

// NewFollowerService creates a follower service.
func NewFollowerService(
	directory driven.UserDirectory,
	enricher driven.FollowerEnricher,
	exporter driven.TabularExporter,
) *FollowerService {
	return &FollowerService{
		directory: directory,
		enricher:  enricher,
		exporter:  exporter,
	}
}

// Analyze runs the full follower pipeline for username and writes the
// export to path (DefaultFollowersFile when empty). Listing failures
// abort the analysis; per-follower enrichment failures only reduce the
// exported count, reported via Skipped.
func (s *FollowerService) Analyze(ctx context.Context, username, path string) (*FollowerSummary, error) {
	if path == "" {
		path = DefaultFollowersFile
	}

	exists, err := s.directory.UserExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}

	followers, err := s.directory.ListFollowers(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}

	summary := &FollowerSummary{Followers: len(followers)}
	if len(followers) == 0 {
		return summary, nil
	}

	logger.Info("enriching %d follower(s) of %s", len(followers), username)
	enriched, stats := s.enricher.EnrichAll(ctx, followers)
	summary.Exported = stats.Enriched
	summary.Skipped = stats.Skipped()

	if len(enriched) == 0 {
		return summary, nil
	}

	table := driven.Table{
		Fields: followerFields,
		Rows:   make([]map[string]string, 0, len(enriched)),
	}
	for i := range enriched {
		table.Rows = append(table.Rows, followerRow(&enriched[i]))
	}

	if err := s.exporter.Export(ctx, table, followerTransforms, path); err != nil {
		return nil, fmt.Errorf("export followers: %w", err)
	}

	summary.Path = path
	return summary, nil
}

// followerRow flattens one enriched record, sanitising the five
// free-text fields. Absent text exports as empty.
func followerRow(f *domain.EnrichedFollower) map[string]string {
	return map[string]string{
		"name":         deref(export.Sanitize(f.Name)),
		"company":      deref(export.Sanitize(f.Company)),
		"blog":         deref(export.Sanitize(f.Blog)),
		"email":        deref(export.Sanitize(f.Email)),
		"bio":          deref(export.Sanitize(f.Bio)),
		"public_repos": strconv.Itoa(f.PublicRepos),
		"followers":    strconv.Itoa(f.Followers),
		"following":    strconv.Itoa(f.Following),
		"created_at":   f.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
