// Package cli wires the cobra command tree of ghexplorer. Commands
// are thin: they resolve credentials, build the shared GitHub session
// and hand off to the services, rendering either a success summary or
// a single error message.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dougdotcon/ghexplorer/internal/config"
	"github.com/dougdotcon/ghexplorer/internal/connectors/github"
	"github.com/dougdotcon/ghexplorer/internal/core/domain"
	"github.com/dougdotcon/ghexplorer/internal/core/services"
	"github.com/dougdotcon/ghexplorer/internal/export"
	"github.com/dougdotcon/ghexplorer/internal/logger"
)

// version is set via ldflags at build time.
var version = "dev"

// Persistent flags.
var (
	verboseFlag bool
	configDir   string
)

// Services wired by initServices. Package-level so tests can swap in
// mocks.
var (
	configStore         *config.Store
	githubClient        *github.Client
	cleanerService      *services.CleanerService
	followerService     *services.FollowerService
	contributionService *services.ContributionService
)

var rootCmd = &cobra.Command{
	Use:   "ghexplorer",
	Short: "Explore, analyse and clean up your GitHub data",
	Long: `ghexplorer harvests data from the GitHub REST API:

  clean          find your forks and remove them (starring them first)
  followers      export enriched details of a user's followers
  contributions  export the contributors of a repository

Credentials come from 'ghexplorer auth login', or the GITHUB_USERNAME
and GITHUB_TOKEN environment variables.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.ghexplorer)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initStore opens the settings store.
func initStore() error {
	if configStore != nil {
		return nil
	}
	store, err := config.NewStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	configStore = store
	return nil
}

// initServices builds the shared GitHub session and the pipeline
// services. Requires a valid credential.
func initServices(cmd *cobra.Command) error {
	if err := initStore(); err != nil {
		return err
	}

	cred := configStore.Credential()
	if !cred.IsValid() {
		return fmt.Errorf("%w: run 'ghexplorer auth login' or set %s/%s",
			domain.ErrNoCredentials, config.EnvUsername, config.EnvToken)
	}

	if githubClient == nil {
		githubClient = github.NewClient(cmd.Context(), cred.Token)
	}

	exporter := export.NewCSVGzipExporter()
	fetcher := github.NewFetcher(githubClient)
	enricher := github.NewEnricher(fetcher, configStore.Workers())

	if cleanerService == nil {
		cleanerService = services.NewCleanerService(githubClient, githubClient)
	}
	if followerService == nil {
		followerService = services.NewFollowerService(githubClient, enricher, exporter)
	}
	if contributionService == nil {
		contributionService = services.NewContributionService(githubClient, exporter)
	}
	return nil
}

// renderError maps domain sentinels to the single human-readable
// message surfaced to the user.
func renderError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRepoNotFound),
		errors.Is(err, domain.ErrNoCredentials):
		return err
	default:
		var apiErr *github.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			return fmt.Errorf("%w: check your token with 'ghexplorer auth status'", domain.ErrAuthInvalid)
		}
		return err
	}
}
