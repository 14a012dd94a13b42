package ghclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/infra/ghclient"
	"github.com/secmon-lab/repobridge/pkg/utils/testutil"
)

func newTestClient(t *testing.T, handler http.Handler) *ghclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gt.R1(ghclient.New("test-token", "octocat", ghclient.WithBaseURL(srv.URL+"/"))).NoError(t)
	return client
}

func TestNew(t *testing.T) {
	t.Run("empty token is rejected", func(t *testing.T) {
		_, err := ghclient.New("", "octocat")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("empty owner is rejected", func(t *testing.T) {
		_, err := ghclient.New("token", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestGetRepository(t *testing.T) {
	t.Run("found repository is converted", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodGet)
			gt.V(t, r.URL.Path).Equal("/repos/octocat/demo")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "demo",
				"full_name": "octocat/demo",
				"description": "demo repository",
				"html_url": "https://github.com/octocat/demo",
				"private": false,
				"stargazers_count": 3,
				"forks_count": 1,
				"watchers_count": 2,
				"owner": {"login": "octocat"}
			}`))
		}))

		repo := gt.R1(client.GetRepository(context.Background(), "demo")).NoError(t)
		gt.V(t, repo.Name).Equal("demo")
		gt.V(t, repo.Owner).Equal("octocat")
		gt.V(t, repo.URL).Equal("https://github.com/octocat/demo")
		gt.V(t, repo.Stars).Equal(3)
	})

	t.Run("404 classifies as not-found", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		}))

		_, err := client.GetRepository(context.Background(), "missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})

	t.Run("5xx classifies as server error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))

		_, err := client.GetRepository(context.Background(), "demo")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUpstreamServer))
	})
}

func TestCreateRepository(t *testing.T) {
	t.Run("posts under the authenticated user", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.V(t, r.URL.Path).Equal("/user/repos")

			var body map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.V(t, body["name"]).Equal("demo")
			gt.V(t, body["private"]).Equal(false)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name": "demo", "html_url": "https://github.com/octocat/demo"}`))
		}))

		repo := gt.R1(client.CreateRepository(context.Background(), &model.CreateRepositoryInput{
			Name:        "demo",
			Description: "x",
			Visibility:  types.VisibilityPublic,
		})).NoError(t)
		gt.V(t, repo.URL).Equal("https://github.com/octocat/demo")
	})

	t.Run("private visibility sets the flag", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gt.V(t, body["private"]).Equal(true)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"name": "demo"}`))
		}))

		gt.R1(client.CreateRepository(context.Background(), &model.CreateRepositoryInput{
			Name:       "demo",
			Visibility: types.VisibilityPrivate,
		})).NoError(t)
	})
}

func TestAddCollaborator(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPut)
		gt.V(t, r.URL.Path).Equal("/repos/octocat/demo/collaborators/bob")

		var body map[string]any
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.V(t, body["permission"]).Equal("push")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1}`))
	}))

	gt.NoError(t, client.AddCollaborator(context.Background(), &model.CollaboratorInput{
		Repo:       "demo",
		Username:   "bob",
		Permission: types.PermissionPush,
	}))
}

func TestListRepositories(t *testing.T) {
	t.Run("keeps upstream order", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/user/repos")
			_, _ = w.Write([]byte(`[{"name": "zulu"}, {"name": "alpha"}]`))
		}))

		names := gt.R1(client.ListRepositories(context.Background())).NoError(t)
		gt.V(t, names).Equal([]types.RepoName{"zulu", "alpha"})
	})
}

func TestGetTraffic(t *testing.T) {
	t.Run("no recorded views yields zeros and empty slice", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/octocat/demo/traffic/views")
			_, _ = w.Write([]byte(`{"count": 0, "uniques": 0, "views": []}`))
		}))

		stats := gt.R1(client.GetTraffic(context.Background(), "demo")).NoError(t)
		gt.V(t, stats.TotalCount).Equal(0)
		gt.V(t, stats.TotalUniques).Equal(0)
		gt.V(t, len(stats.Views)).Equal(0)
	})

	t.Run("daily breakdown is converted", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"count": 14,
				"uniques": 5,
				"views": [{"timestamp": "2026-08-30T00:00:00Z", "count": 14, "uniques": 5}]
			}`))
		}))

		stats := gt.R1(client.GetTraffic(context.Background(), "demo")).NoError(t)
		gt.V(t, stats.TotalCount).Equal(14)
		gt.V(t, len(stats.Views)).Equal(1)
		gt.V(t, stats.Views[0].Uniques).Equal(5)
	})
}

func TestCreateIssue(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.URL.Path).Equal("/repos/octocat/demo/issues")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"number": 7, "title": "bug", "html_url": "https://github.com/octocat/demo/issues/7"}`))
	}))

	issue := gt.R1(client.CreateIssue(context.Background(), &model.CreateIssueInput{
		Repo:  "demo",
		Title: "bug",
	})).NoError(t)
	gt.V(t, issue.Number).Equal(7)
	gt.V(t, issue.URL).Equal("https://github.com/octocat/demo/issues/7")
}

func TestLiveGetUser(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_REPOBRIDGE_GITHUB_TOKEN")
	owner := testutil.GetEnvOrSkip(t, "TEST_REPOBRIDGE_GITHUB_OWNER")

	client := gt.R1(ghclient.New(types.GitHubToken(token), types.Owner(owner))).NoError(t)

	user := gt.R1(client.GetUser(context.Background(), "octocat")).NoError(t)
	gt.V(t, user.Login).Equal("octocat")
}
