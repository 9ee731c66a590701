package cli

import (
	"github.com/spf13/cobra"
)

var followersOutput string

var followersCmd = &cobra.Command{
	Use:   "followers [username]",
	Short: "Export enriched details of a user's followers",
	Long: `Fetch the followers of a GitHub user, enrich each one with profile
details (name, company, blog, email, bio, counts, account age) and
export them as gzip-compressed CSV.

Followers whose details cannot be fetched (rate limiting past the
retry budget, or hard errors) are skipped and counted, never fatal.`,
	Args: cobra.ExactArgs(1),
	RunE: runFollowers,
}

func init() {
	followersCmd.Flags().StringVarP(&followersOutput, "output", "o", "", "output file (default github_followers.csv.gz)")
	rootCmd.AddCommand(followersCmd)
}

func runFollowers(cmd *cobra.Command, args []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	username := args[0]
	summary, err := followerService.Analyze(cmd.Context(), username, followersOutput)
	if err != nil {
		return renderError(err)
	}

	if summary.Followers == 0 {
		cmd.Printf("User %s has no followers.\n", username)
		return nil
	}
	if summary.Path == "" {
		cmd.Printf("No follower details could be fetched (%d skipped).\n", summary.Skipped)
		return nil
	}

	cmd.Printf("Exported %d of %d followers to %s\n", summary.Exported, summary.Followers, summary.Path)
	if summary.Skipped > 0 {
		cmd.Printf("Skipped %d follower(s) whose details could not be fetched.\n", summary.Skipped)
	}
	return nil
}
