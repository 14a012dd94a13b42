package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

// CheckRepoExists converts the adapter's not-found classification into a
// plain boolean. Any other failure propagates.
func (x *UseCase) CheckRepoExists(ctx context.Context, name types.RepoName) (bool, error) {
	if _, err := x.clients.GitHub().GetRepository(ctx, name); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (x *UseCase) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	repo, err := x.clients.GitHub().CreateRepository(ctx, input)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created repository",
		slog.Any("repo", input.Name),
		slog.String("url", repo.URL),
	)

	return repo, nil
}

// ManageRepository is the only composite operation: create when absent,
// otherwise update the description when a non-empty argument differs
// from the stored one. Presence is authoritative; an empty description
// argument never clears a non-empty remote description.
func (x *UseCase) ManageRepository(ctx context.Context, input *model.ManageRepositoryInput) (*model.ManageResult, error) {
	logger := logging.From(ctx)

	current, err := x.clients.GitHub().GetRepository(ctx, input.Name)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}

		created, err := x.clients.GitHub().CreateRepository(ctx, &model.CreateRepositoryInput{
			Name:        input.Name,
			Description: input.Description,
			Visibility:  input.Visibility,
		})
		if err != nil {
			return nil, err
		}

		logger.Info("managed repository: created", slog.Any("repo", input.Name))
		return &model.ManageResult{Created: true, Repository: created}, nil
	}

	if input.Description != "" && input.Description != current.Description {
		updated, err := x.clients.GitHub().UpdateDescription(ctx, input.Name, input.Description)
		if err != nil {
			return nil, err
		}

		logger.Info("managed repository: description updated", slog.Any("repo", input.Name))
		return &model.ManageResult{Updated: true, Repository: updated}, nil
	}

	logger.Info("managed repository: no action taken", slog.Any("repo", input.Name))
	return &model.ManageResult{Repository: current}, nil
}

func (x *UseCase) ListRepositories(ctx context.Context) ([]types.RepoName, error) {
	return x.clients.GitHub().ListRepositories(ctx)
}

func (x *UseCase) DeleteRepository(ctx context.Context, name types.RepoName) error {
	if err := x.clients.GitHub().DeleteRepository(ctx, name); err != nil {
		return err
	}

	logging.From(ctx).Info("deleted repository", slog.Any("repo", name))
	return nil
}

// ViewRepository surfaces an absent repository as the same typed
// not-found failure as every other operation.
func (x *UseCase) ViewRepository(ctx context.Context, name types.RepoName) (*model.Repository, error) {
	return x.clients.GitHub().GetRepository(ctx, name)
}
