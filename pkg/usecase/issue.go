package usecase

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

func (x *UseCase) CreateIssue(ctx context.Context, input *model.CreateIssueInput) (*model.Issue, error) {
	issue, err := x.clients.GitHub().CreateIssue(ctx, input)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created issue",
		slog.Any("repo", input.Repo),
		slog.Int("number", issue.Number),
	)
	return issue, nil
}

func (x *UseCase) GetRepositoryTraffic(ctx context.Context, name types.RepoName) (*model.TrafficStats, error) {
	return x.clients.GitHub().GetTraffic(ctx, name)
}

func (x *UseCase) GetUserDetails(ctx context.Context, username types.Username) (*model.User, error) {
	return x.clients.GitHub().GetUser(ctx, username)
}
