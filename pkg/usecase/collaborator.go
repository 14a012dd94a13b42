package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

func (x *UseCase) AddCollaborator(ctx context.Context, input *model.CollaboratorInput) error {
	if !input.Permission.IsValid() {
		return goerr.Wrap(types.ErrValidationFailed, "permission must be one of pull, push, admin",
			goerr.V("permission", input.Permission),
		)
	}

	if err := x.clients.GitHub().AddCollaborator(ctx, input); err != nil {
		return err
	}

	logging.From(ctx).Info("added collaborator",
		slog.Any("repo", input.Repo),
		slog.Any("username", input.Username),
		slog.Any("permission", input.Permission),
	)
	return nil
}

func (x *UseCase) RemoveCollaborator(ctx context.Context, name types.RepoName, username types.Username) error {
	if err := x.clients.GitHub().RemoveCollaborator(ctx, name, username); err != nil {
		return err
	}

	logging.From(ctx).Info("removed collaborator",
		slog.Any("repo", name),
		slog.Any("username", username),
	)
	return nil
}
