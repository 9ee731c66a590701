package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

func TestCleanCmd_Use(t *testing.T) {
	assert.Equal(t, "clean", cleanCmd.Use)
}

func TestCleanCmd_HasSubcommands(t *testing.T) {
	commands := cleanCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "scan")
	assert.Contains(t, names, "forks")
	assert.Contains(t, names, "fork")
}

func TestCleanScanCmd_ListsForks(t *testing.T) {
	fake := &fakeGitHub{
		repos: []domain.RepositoryRef{
			{FullName: "tester/original"},
			{FullName: "tester/fork-a", IsFork: true, HTMLURL: "https://github.com/tester/fork-a"},
			{FullName: "tester/fork-b", IsFork: true, Description: "a borrowed repo"},
		},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clean", "scan"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Found 3 repositories, 2 forks")
	assert.Contains(t, buf.String(), "tester/fork-a")
	assert.Contains(t, buf.String(), "a borrowed repo")
	assert.NotContains(t, buf.String(), "tester/original\n")
}

func TestCleanForksCmd_NothingToDelete(t *testing.T) {
	fake := &fakeGitHub{
		repos: []domain.RepositoryRef{{FullName: "tester/original"}},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clean", "forks"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No forks found")
	assert.Empty(t, fake.remediated)
}

func TestCleanForksCmd_DeclinedPromptCancels(t *testing.T) {
	fake := &fakeGitHub{
		repos: []domain.RepositoryRef{{FullName: "tester/fork-a", IsFork: true}},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("no\n"))
	rootCmd.SetArgs([]string{"clean", "forks"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Operation cancelled")
	assert.Empty(t, fake.remediated)
}

func TestCleanForksCmd_YesFlagSkipsPrompt(t *testing.T) {
	fake := &fakeGitHub{
		repos: []domain.RepositoryRef{
			{FullName: "tester/fork-a", IsFork: true},
			{FullName: "tester/fork-b", IsFork: true},
		},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clean", "forks", "--yes"})
	defer func() {
		rootCmd.SetArgs(nil)
		cleanYes = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"tester/fork-a", "tester/fork-b"}, fake.remediated)
	assert.Contains(t, buf.String(), "Done.")
}

func TestCleanForksCmd_ReportsFailures(t *testing.T) {
	fake := &fakeGitHub{
		repos: []domain.RepositoryRef{
			{FullName: "tester/fork-a", IsFork: true},
			{FullName: "tester/fork-b", IsFork: true},
		},
		failPhase: map[string]domain.RemediationPhase{
			"tester/fork-b": domain.PhaseDelete,
		},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"clean", "forks", "-y"})
	defer func() {
		rootCmd.SetArgs(nil)
		cleanYes = false
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 forks could not be removed")
	assert.Contains(t, buf.String(), "starred but not deleted")
}

func TestCleanForkCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"clean", "fork"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestCleanForkCmd_RemediatesSingleFork(t *testing.T) {
	fake := &fakeGitHub{}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"clean", "fork", "tester/fork-a"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"tester/fork-a"}, fake.remediated)
}

func TestCleanForkCmd_FailedRemediationIsAnError(t *testing.T) {
	fake := &fakeGitHub{
		failPhase: map[string]domain.RemediationPhase{
			"tester/fork-a": domain.PhaseStar,
		},
	}
	_, cleanup := setupTestServices(t, fake)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"clean", "fork", "tester/fork-a"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "star")
}
