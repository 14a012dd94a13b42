package interfaces

import (
	"context"

	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

type UseCase interface {
	CheckRepoExists(ctx context.Context, name types.RepoName) (bool, error)
	CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	ManageRepository(ctx context.Context, input *model.ManageRepositoryInput) (*model.ManageResult, error)
	ListRepositories(ctx context.Context) ([]types.RepoName, error)
	DeleteRepository(ctx context.Context, name types.RepoName) error
	ViewRepository(ctx context.Context, name types.RepoName) (*model.Repository, error)
	AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error
	RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error
	SetRepositoryVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error)
	RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error)
	CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error)
	GetRepositoryTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error)
	GetUserDetails(ctx context.Context, username types.Username) (*model.User, error)
	CreatePost(ctx context.Context, status string) (*model.Post, error)
}
