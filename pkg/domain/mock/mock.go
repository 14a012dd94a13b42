// Package mock provides function-field test doubles for the domain
// interfaces. A call to a method whose Func field is nil panics, which
// keeps tests honest about the calls they expect.
package mock

import (
	"context"

	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

type GitHubMock struct {
	GetRepositoryFunc      func(ctx context.Context, name types.RepoName) (*model.Repository, error)
	CreateRepositoryFunc   func(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	UpdateDescriptionFunc  func(ctx context.Context, name types.RepoName, description string) (*model.Repository, error)
	ListRepositoriesFunc   func(ctx context.Context) ([]types.RepoName, error)
	DeleteRepositoryFunc   func(ctx context.Context, name types.RepoName) error
	AddCollaboratorFunc    func(ctx context.Context, input *model.CollaboratorInput) error
	RemoveCollaboratorFunc func(ctx context.Context, name types.RepoName, username types.Username) error
	SetVisibilityFunc      func(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error)
	RenameRepositoryFunc   func(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error)
	CreateIssueFunc        func(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error)
	GetTrafficFunc         func(ctx context.Context, name types.RepoName) (*model.TrafficStats, error)
	GetUserFunc            func(ctx context.Context, username types.Username) (*model.User, error)
}

var _ interfaces.GitHub = (*GitHubMock)(nil)

func (x *GitHubMock) GetRepository(ctx context.Context, name types.RepoName) (*model.Repository, error) {
	return x.GetRepositoryFunc(ctx, name)
}

func (x *GitHubMock) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	return x.CreateRepositoryFunc(ctx, input)
}

func (x *GitHubMock) UpdateDescription(ctx context.Context, name types.RepoName, description string) (*model.Repository, error) {
	return x.UpdateDescriptionFunc(ctx, name, description)
}

func (x *GitHubMock) ListRepositories(ctx context.Context) ([]types.RepoName, error) {
	return x.ListRepositoriesFunc(ctx)
}

func (x *GitHubMock) DeleteRepository(ctx context.Context, name types.RepoName) error {
	return x.DeleteRepositoryFunc(ctx, name)
}

func (x *GitHubMock) AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error {
	return x.AddCollaboratorFunc(ctx, input)
}

func (x *GitHubMock) RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error {
	return x.RemoveCollaboratorFunc(ctx, name, username)
}

func (x *GitHubMock) SetVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error) {
	return x.SetVisibilityFunc(ctx, name, visibility)
}

func (x *GitHubMock) RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error) {
	return x.RenameRepositoryFunc(ctx, name, newName)
}

func (x *GitHubMock) CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error) {
	return x.CreateIssueFunc(ctx, input)
}

func (x *GitHubMock) GetTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error) {
	return x.GetTrafficFunc(ctx, name)
}

func (x *GitHubMock) GetUser(ctx context.Context, username types.Username) (*model.User, error) {
	return x.GetUserFunc(ctx, username)
}

type XPosterMock struct {
	CreatePostFunc func(ctx context.Context, status string) (*model.Post, error)
}

var _ interfaces.XPoster = (*XPosterMock)(nil)

func (x *XPosterMock) CreatePost(ctx context.Context, status string) (*model.Post, error) {
	return x.CreatePostFunc(ctx, status)
}

type UseCaseMock struct {
	CheckRepoExistsFunc         func(ctx context.Context, name types.RepoName) (bool, error)
	CreateRepositoryFunc        func(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	ManageRepositoryFunc        func(ctx context.Context, input *model.ManageRepositoryInput) (*model.ManageResult, error)
	ListRepositoriesFunc        func(ctx context.Context) ([]types.RepoName, error)
	DeleteRepositoryFunc        func(ctx context.Context, name types.RepoName) error
	ViewRepositoryFunc          func(ctx context.Context, name types.RepoName) (*model.Repository, error)
	AddCollaboratorFunc         func(ctx context.Context, input *model.CollaboratorInput) error
	RemoveCollaboratorFunc      func(ctx context.Context, name types.RepoName, username types.Username) error
	SetRepositoryVisibilityFunc func(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error)
	RenameRepositoryFunc        func(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error)
	CreateIssueFunc             func(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error)
	GetRepositoryTrafficFunc    func(ctx context.Context, name types.RepoName) (*model.TrafficStats, error)
	GetUserDetailsFunc          func(ctx context.Context, username types.Username) (*model.User, error)
	CreatePostFunc              func(ctx context.Context, status string) (*model.Post, error)
}

var _ interfaces.UseCase = (*UseCaseMock)(nil)

func (x *UseCaseMock) CheckRepoExists(ctx context.Context, name types.RepoName) (bool, error) {
	return x.CheckRepoExistsFunc(ctx, name)
}

func (x *UseCaseMock) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	return x.CreateRepositoryFunc(ctx, input)
}

func (x *UseCaseMock) ManageRepository(ctx context.Context, input *model.ManageRepositoryInput) (*model.ManageResult, error) {
	return x.ManageRepositoryFunc(ctx, input)
}

func (x *UseCaseMock) ListRepositories(ctx context.Context) ([]types.RepoName, error) {
	return x.ListRepositoriesFunc(ctx)
}

func (x *UseCaseMock) DeleteRepository(ctx context.Context, name types.RepoName) error {
	return x.DeleteRepositoryFunc(ctx, name)
}

func (x *UseCaseMock) ViewRepository(ctx context.Context, name types.RepoName) (*model.Repository, error) {
	return x.ViewRepositoryFunc(ctx, name)
}

func (x *UseCaseMock) AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error {
	return x.AddCollaboratorFunc(ctx, input)
}

func (x *UseCaseMock) RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error {
	return x.RemoveCollaboratorFunc(ctx, name, username)
}

func (x *UseCaseMock) SetRepositoryVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error) {
	return x.SetRepositoryVisibilityFunc(ctx, name, visibility)
}

func (x *UseCaseMock) RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error) {
	return x.RenameRepositoryFunc(ctx, name, newName)
}

func (x *UseCaseMock) CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error) {
	return x.CreateIssueFunc(ctx, input)
}

func (x *UseCaseMock) GetRepositoryTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error) {
	return x.GetRepositoryTrafficFunc(ctx, name)
}

func (x *UseCaseMock) GetUserDetails(ctx context.Context, username types.Username) (*model.User, error) {
	return x.GetUserDetailsFunc(ctx, username)
}

func (x *UseCaseMock) CreatePost(ctx context.Context, status string) (*model.Post, error) {
	return x.CreatePostFunc(ctx, status)
}
