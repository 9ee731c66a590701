package cli

import (
	"github.com/spf13/cobra"
)

var contributionsOutput string

var contributionsCmd = &cobra.Command{
	Use:   "contributions [owner] [repo]",
	Short: "Export the contributors of a repository",
	Long: `Fetch the contributors of a repository and export one row per
contributor with the repository's details (stars, forks, open issues,
creation date) duplicated across rows, as gzip-compressed CSV.`,
	Args: cobra.ExactArgs(2),
	RunE: runContributions,
}

func init() {
	contributionsCmd.Flags().StringVarP(&contributionsOutput, "output", "o", "", "output file (default github_repo_contributions.csv.gz)")
	rootCmd.AddCommand(contributionsCmd)
}

func runContributions(cmd *cobra.Command, args []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	owner, repo := args[0], args[1]
	summary, err := contributionService.Analyze(cmd.Context(), owner, repo, contributionsOutput)
	if err != nil {
		return renderError(err)
	}

	if summary.Contributors == 0 {
		cmd.Printf("Repository %s/%s has no contributors.\n", owner, repo)
		return nil
	}

	cmd.Printf("Exported %d contributors of %s/%s to %s\n", summary.Contributors, owner, repo, summary.Path)
	cmd.Printf("Stars: %d  Forks: %d\n", summary.Stars, summary.Forks)
	return nil
}
