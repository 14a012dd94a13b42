package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

func (x *UseCase) SetRepositoryVisibility(ctx context.Context, name types.RepoName, visibility types.Visibility) (*model.Repository, error) {
	if !visibility.IsValid() {
		return nil, goerr.Wrap(types.ErrValidationFailed, "visibility must be public or private",
			goerr.V("visibility", visibility),
		)
	}

	repo, err := x.clients.GitHub().SetVisibility(ctx, name, visibility)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("set repository visibility",
		slog.Any("repo", name),
		slog.Any("visibility", visibility),
	)
	return repo, nil
}

func (x *UseCase) RenameRepository(ctx context.Context, name types.RepoName, newName types.RepoName) (*model.Repository, error) {
	repo, err := x.clients.GitHub().RenameRepository(ctx, name, newName)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("renamed repository",
		slog.Any("repo", name),
		slog.String("fullName", repo.FullName),
	)
	return repo, nil
}
