package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Find and remove your forks",
	Long: `Scan your repositories for forks and remove them. Before deleting,
each fork is starred so a trace of the upstream project remains.

Examples:
  ghexplorer clean scan
  ghexplorer clean forks
  ghexplorer clean fork owner/name`,
}

var cleanScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List your repositories and the forks among them",
	RunE:  runCleanScan,
}

var cleanForksCmd = &cobra.Command{
	Use:   "forks",
	Short: "Star and delete every fork",
	RunE:  runCleanForks,
}

var cleanForkCmd = &cobra.Command{
	Use:   "fork [owner/name]",
	Short: "Star and delete a single fork",
	Args:  cobra.ExactArgs(1),
	RunE:  runCleanFork,
}

// cleanYes skips the confirmation prompt.
var cleanYes bool

func init() {
	cleanForksCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "skip the confirmation prompt")

	cleanCmd.AddCommand(cleanScanCmd)
	cleanCmd.AddCommand(cleanForksCmd)
	cleanCmd.AddCommand(cleanForkCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runCleanScan(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	result, err := cleanerService.Scan(cmd.Context())
	if err != nil {
		return renderError(err)
	}

	cmd.Printf("Found %d repositories, %d forks\n", result.Total, len(result.Forks))
	for _, fork := range result.Forks {
		cmd.Printf("  %s\n", fork.FullName)
		if fork.Description != "" {
			cmd.Printf("      %s\n", fork.Description)
		}
		cmd.Printf("      %s\n", fork.HTMLURL)
	}
	return nil
}

func runCleanForks(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	result, err := cleanerService.Scan(cmd.Context())
	if err != nil {
		return renderError(err)
	}

	if len(result.Forks) == 0 {
		cmd.Println("No forks found. Nothing to delete.")
		return nil
	}

	cmd.Printf("Found %d forks to process.\n", len(result.Forks))
	if !cleanYes && !confirm(cmd, fmt.Sprintf("Star and delete %d forks?", len(result.Forks))) {
		cmd.Println("Operation cancelled.")
		return nil
	}

	results := cleanerService.RemediateForks(cmd.Context(), result.Forks)

	failed := 0
	for _, res := range results {
		cmd.Printf("  %s\n", res)
		if !res.Succeeded() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d forks could not be removed", failed, len(results))
	}
	cmd.Println("Done.")
	return nil
}

func runCleanFork(cmd *cobra.Command, args []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	res := cleanerService.RemediateFork(cmd.Context(), args[0])
	cmd.Printf("%s\n", res)
	if !res.Succeeded() {
		return fmt.Errorf("remediation failed at the %s step", res.FailedPhase)
	}
	return nil
}

// confirm asks a yes/no question on the command's input stream.
func confirm(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s (yes/no): ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y"
}
