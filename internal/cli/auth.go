package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dougdotcon/ghexplorer/internal/connectors/github"
	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage GitHub credentials",
	Long: `Store and inspect the GitHub username and personal access token used
by every command.

Examples:
  ghexplorer auth login --username octocat --token ghp_xxx
  ghexplorer auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a username and personal access token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured account and validate the token",
	RunE:  runAuthStatus,
}

// Flags for auth login.
var (
	authUsername string
	authToken    string
)

func init() {
	authLoginCmd.Flags().StringVarP(&authUsername, "username", "u", "", "GitHub username")
	authLoginCmd.Flags().StringVarP(&authToken, "token", "t", "", "personal access token")
	_ = authLoginCmd.MarkFlagRequired("username")
	_ = authLoginCmd.MarkFlagRequired("token")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if err := initStore(); err != nil {
		return err
	}

	cred := domain.Credential{Username: authUsername, Token: authToken}
	if !cred.IsValid() {
		return domain.ErrNoCredentials
	}

	configStore.SetCredential(cred)
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", configStore.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if err := initStore(); err != nil {
		return err
	}

	cred := configStore.Credential()
	if !cred.IsValid() {
		cmd.Println("Status: credentials not configured")
		return nil
	}

	cmd.Printf("Account: %s\n", cred.Username)

	if githubClient == nil {
		githubClient = github.NewClient(cmd.Context(), cred.Token)
	}
	if err := githubClient.ValidateCredentials(cmd.Context()); err != nil {
		if github.IsUnauthorized(err) {
			return domain.ErrAuthInvalid
		}
		return fmt.Errorf("validate credentials: %w", err)
	}

	cmd.Println("Status: token valid")
	return nil
}
