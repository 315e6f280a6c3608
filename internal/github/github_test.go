package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomurakami/portfolio/internal/types"
)

func sampleRepos() []map[string]any {
	return []map[string]any{
		{
			"name":             "awesome-project",
			"description":      "An awesome open source project",
			"html_url":         "https://github.com/user/awesome-project",
			"homepage":         "https://awesome-project.com",
			"stargazers_count": 42,
			"language":         "Python",
			"updated_at":       "2023-12-01T10:00:00Z",
			"fork":             false,
			"topics":           []string{"python", "web", "opensource"},
		},
		{
			"name":             "forked-thing",
			"description":      "A fork",
			"html_url":         "https://github.com/user/forked-thing",
			"fork":             true,
			"stargazers_count": 3,
		},
		{
			"name":             "cli-tool",
			"description":      "Command line utility",
			"html_url":         "https://github.com/user/cli-tool",
			"homepage":         "",
			"stargazers_count": 15,
			"language":         "Go",
			"updated_at":       "2023-11-15T14:30:00Z",
			"fork":             false,
			"topics":           []string{"go", "cli"},
		},
	}
}

func TestRepositories(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(sampleRepos()))
	}))
	defer srv.Close()

	client := NewClient("octocat", "tok123", WithBaseURL(srv.URL))
	projects, err := client.Repositories(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, []string{"updated"}, gotQuery["sort"])
	assert.Equal(t, []string{"desc"}, gotQuery["direction"])
	assert.Equal(t, []string{"10"}, gotQuery["per_page"])
	assert.Equal(t, []string{"public"}, gotQuery["type"])
	assert.Equal(t, "token tok123", gotAuth)

	// The fork is skipped.
	require.Len(t, projects, 2)

	first := projects[0]
	assert.Equal(t, "awesome-project", first.Name)
	assert.Equal(t, "An awesome open source project", first.Description)
	assert.Equal(t, "https://github.com/user/awesome-project", first.GitHubURL)
	assert.Equal(t, "https://awesome-project.com", first.DemoURL)
	assert.Equal(t, "Python, python, web, opensource", first.Technologies)
	assert.Equal(t, 42, first.Stars)
	assert.Equal(t, types.SourceGitHub, first.Source)

	second := projects[1]
	assert.Equal(t, "cli-tool", second.Name)
	assert.Empty(t, second.DemoURL)
	assert.Equal(t, "Go, go, cli", second.Technologies)
}

func TestRepositories_NoUsername(t *testing.T) {
	client := NewClient("", "")
	projects, err := client.Repositories(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRepositories_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient("octocat", "", WithBaseURL(srv.URL))
	projects, err := client.Repositories(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRepositories_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient("octocat", "", WithBaseURL(srv.URL))
	_, err := client.Repositories(context.Background(), 10)
	require.Error(t, err)

	var ghErr *Error
	require.ErrorAs(t, err, &ghErr)
	assert.Contains(t, ghErr.Message, "403")
}

func TestRepositories_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := NewClient("octocat", "", WithBaseURL(srv.URL))
	_, err := client.Repositories(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestLanguages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/cli-tool/languages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Go": 12345, "Makefile": 200}`))
	}))
	defer srv.Close()

	client := NewClient("octocat", "", WithBaseURL(srv.URL))
	languages, err := client.Languages(context.Background(), "cli-tool")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Go": 12345, "Makefile": 200}, languages)
}
