package ghclient

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/infra/upstream"
	"golang.org/x/oauth2"
)

// Client adapts the repository-hosting platform's REST API. Every method
// issues exactly one HTTP call; authentication is a static bearer token.
type Client struct {
	gh    *github.Client
	owner types.Owner
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL string
}

type Option func(*config)

// WithBaseURL redirects API calls, mainly for tests against a local
// httptest server. The URL must end with a trailing slash.
func WithBaseURL(raw string) Option {
	return func(cfg *config) {
		cfg.baseURL = raw
	}
}

func New(token types.GitHubToken, owner types.Owner, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	if owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub owner is empty")
	}

	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	gh := github.NewClient(oauth2.NewClient(context.Background(), ts))

	if cfg.baseURL != "" {
		base, err := url.Parse(cfg.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid base URL", goerr.V("url", cfg.baseURL))
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{
		gh:    gh,
		owner: owner,
	}, nil
}

// wrapErr converts a go-github failure into a taxonomy error via the
// shared classification, keeping the upstream message text.
func wrapErr(err error, resp *github.Response, msg string, values ...goerr.Option) error {
	status := 0
	detail := err.Error()
	if resp != nil {
		status = resp.StatusCode
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		detail = ghErr.Message
	}

	if classified := upstream.Classify(upstream.KindGitHub, status, detail); classified != nil {
		return goerr.Wrap(classified, msg, values...)
	}
	return goerr.Wrap(err, msg, values...)
}

func (x *Client) GetRepository(ctx context.Context, name types.RepoName) (*model.Repository, error) {
	repo, resp, err := x.gh.Repositories.Get(ctx, string(x.owner), string(name))
	if err != nil {
		return nil, wrapErr(err, resp, "failed to get repository", goerr.V("repo", name))
	}
	return convertRepository(repo), nil
}

func (x *Client) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	req := &github.Repository{
		Name:        github.String(string(input.Name)),
		Description: github.String(input.Description),
		Private:     github.Bool(input.Visibility.Private()),
	}

	// Empty organization creates under the authenticated user's account.
	created, resp, err := x.gh.Repositories.Create(ctx, "", req)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to create repository", goerr.V("repo", input.Name))
	}
	return convertRepository(created), nil
}

func (x *Client) UpdateDescription(ctx context.Context, name types.RepoName, description string) (*model.Repository, error) {
	req := &github.Repository{
		Description: github.String(description),
	}
	updated, resp, err := x.gh.Repositories.Edit(ctx, string(x.owner), string(name), req)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to update repository description", goerr.V("repo", name))
	}
	return convertRepository(updated), nil
}

func (x *Client) ListRepositories(ctx context.Context) ([]types.RepoName, error) {
	var names []types.RepoName
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	// Order is kept as returned by upstream, not re-sorted.
	for {
		repos, resp, err := x.gh.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, wrapErr(err, resp, "failed to list repositories")
		}
		for _, repo := range repos {
			names = append(names, types.RepoName(repo.GetName()))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}

func (x *Client) DeleteRepository(ctx context.Context, name types.RepoName) error {
	resp, err := x.gh.Repositories.Delete(ctx, string(x.owner), string(name))
	if err != nil {
		return wrapErr(err, resp, "failed to delete repository", goerr.V("repo", name))
	}
	return nil
}

func (x *Client) AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error {
	opts := &github.RepositoryAddCollaboratorOptions{
		Permission: string(input.Permission),
	}
	_, resp, err := x.gh.Repositories.AddCollaborator(ctx, string(x.owner), string(input.Repo), string(input.Username), opts)
	if err != nil {
		return wrapErr(err, resp, "failed to add collaborator",
			goerr.V("repo", input.Repo),
			goerr.V("username", input.Username),
		)
	}
	return nil
}

func (x *Client) RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error {
	resp, err := x.gh.Repositories.RemoveCollaborator(ctx, string(x.owner), string(name), string(username))
	if err != nil {
		return wrapErr(err, resp, "failed to remove collaborator",
			goerr.V("repo", name),
			goerr.V("username", username),
		)
	}
	return nil
}

func (x *Client) SetVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error) {
	req := &github.Repository{
		Private: github.Bool(visibility.Private()),
	}
	updated, resp, err := x.gh.Repositories.Edit(ctx, string(x.owner), string(name), req)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to set repository visibility",
			goerr.V("repo", name),
			goerr.V("visibility", visibility),
		)
	}
	return convertRepository(updated), nil
}

func (x *Client) RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error) {
	req := &github.Repository{
		Name: github.String(string(newName)),
	}
	updated, resp, err := x.gh.Repositories.Edit(ctx, string(x.owner), string(name), req)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to rename repository",
			goerr.V("repo", name),
			goerr.V("newName", newName),
		)
	}
	return convertRepository(updated), nil
}

func (x *Client) CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error) {
	req := &github.IssueRequest{
		Title: github.String(input.Title),
	}
	if input.Body != "" {
		req.Body = github.String(input.Body)
	}

	issue, resp, err := x.gh.Issues.Create(ctx, string(x.owner), string(input.Repo), req)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to create issue", goerr.V("repo", input.Repo))
	}

	return &model.Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		URL:    issue.GetHTMLURL(),
	}, nil
}

func (x *Client) GetTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error) {
	views, resp, err := x.gh.Repositories.ListTrafficViews(ctx, string(x.owner), string(name), nil)
	if err != nil {
		return nil, wrapErr(err, resp, "failed to get repository traffic", goerr.V("repo", name))
	}

	stats := &model.TrafficStats{
		TotalCount:   views.GetCount(),
		TotalUniques: views.GetUniques(),
		Views:        []model.TrafficPoint{},
	}
	for _, v := range views.Views {
		stats.Views = append(stats.Views, model.TrafficPoint{
			Timestamp: v.GetTimestamp().Time,
			Count:     v.GetCount(),
			Uniques:   v.GetUniques(),
		})
	}

	return stats, nil
}

func (x *Client) GetUser(ctx context.Context, username types.Username) (*model.User, error) {
	user, resp, err := x.gh.Users.Get(ctx, string(username))
	if err != nil {
		return nil, wrapErr(err, resp, "failed to get user details", goerr.V("username", username))
	}

	return &model.User{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Bio:         user.GetBio(),
		URL:         user.GetHTMLURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
	}, nil
}

func convertRepository(repo *github.Repository) *model.Repository {
	return &model.Repository{
		Owner:       repo.GetOwner().GetLogin(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		URL:         repo.GetHTMLURL(),
		Private:     repo.GetPrivate(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		Watchers:    repo.GetWatchersCount(),
	}
}
