package interfaces

import (
	"context"

	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

// GitHub is the adapter for the repository-hosting platform. Every method
// performs exactly one upstream HTTP call. A missing resource surfaces as
// types.ErrNotFound; other failures carry the classified taxonomy error.
type GitHub interface {
	GetRepository(ctx context.Context, name types.RepoName) (*model.Repository, error)
	CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error)
	UpdateDescription(ctx context.Context, name types.RepoName, description string) (*model.Repository, error)
	ListRepositories(ctx context.Context) ([]types.RepoName, error)
	DeleteRepository(ctx context.Context, name types.RepoName) error
	AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error
	RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error
	SetVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error)
	RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error)
	CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error)
	GetTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error)
	GetUser(ctx context.Context, username types.Username) (*model.User, error)
}

// XPoster is the adapter for the social-posting platform.
type XPoster interface {
	CreatePost(ctx context.Context, status string) (*model.Post, error)
}
