package github

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougdotcon/ghexplorer/internal/core/domain"
)

func TestUserExists(t *testing.T) {
	t.Run("returns true for an existing user", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"login":"octocat"}`)
		})

		exists, err := client.UserExists(context.Background(), "octocat")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("returns false without error on 404", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, `{"message":"Not Found"}`)
		})

		exists, err := client.UserExists(context.Background(), "ghost")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("surfaces other failures as errors", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/users/flaky", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, `{"message":"oops"}`)
		})

		_, err := client.UserExists(context.Background(), "flaky")

		require.Error(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}

func TestRepoExists(t *testing.T) {
	t.Run("distinguishes present from absent", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/repos/me/real", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, `{"name":"real"}`)
		})
		mux.HandleFunc("/repos/me/imagined", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusNotFound, `{"message":"Not Found"}`)
		})

		exists, err := client.RepoExists(context.Background(), "me", "real")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = client.RepoExists(context.Background(), "me", "imagined")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGetRepositoryDetails(t *testing.T) {
	t.Run("maps the denormalised fields", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/repos/me/proj", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK, `{
				"name": "proj",
				"description": "a project",
				"stargazers_count": 12,
				"forks_count": 3,
				"open_issues_count": 7,
				"created_at": "2019-05-01T10:20:30Z"
			}`)
		})

		details, err := client.GetRepositoryDetails(context.Background(), "me", "proj")

		require.NoError(t, err)
		assert.Equal(t, &domain.RepositoryDetails{
			Name:        "proj",
			Description: "a project",
			Stars:       12,
			Forks:       3,
			OpenIssues:  7,
			CreatedAt:   "2019-05-01T10:20:30Z",
		}, details)
	})
}

func TestListFollowers(t *testing.T) {
	t.Run("walks every page preserving order", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/users/popular/followers", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "2" {
				writeJSON(t, w, http.StatusOK, `[{"login":"carol"}]`)
				return
			}
			w.Header().Set("Link", `</users/popular/followers?page=2>; rel="next"`)
			writeJSON(t, w, http.StatusOK, `[{"login":"alice"},{"login":"bob"}]`)
		})

		followers, err := client.ListFollowers(context.Background(), "popular")

		require.NoError(t, err)
		assert.Equal(t, []domain.FollowerIdentity{
			{Login: "alice"}, {Login: "bob"}, {Login: "carol"},
		}, followers)
	})

	t.Run("fails hard on a non-200 response", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/users/hidden/followers", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusForbidden, `{"message":"forbidden"}`)
		})

		followers, err := client.ListFollowers(context.Background(), "hidden")

		require.Error(t, err)
		assert.Nil(t, followers)
	})
}

func TestListContributors(t *testing.T) {
	t.Run("maps login and contribution counts", func(t *testing.T) {
		mux, client := newTestClient(t)
		mux.HandleFunc("/repos/me/proj/contributors", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusOK,
				`[{"login":"alice","contributions":40},{"login":"bob","contributions":2}]`)
		})

		contributors, err := client.ListContributors(context.Background(), "me", "proj")

		require.NoError(t, err)
		assert.Equal(t, []domain.Contribution{
			{Login: "alice", Contributions: 40},
			{Login: "bob", Contributions: 2},
		}, contributors)
	})
}
