package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/utils/logging"
)

func (x *UseCase) CreatePost(ctx context.Context, status string) (*model.Post, error) {
	if x.clients.XPoster() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "X credentials are not configured")
	}
	if status == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "status must not be empty")
	}

	post, err := x.clients.XPoster().CreatePost(ctx, status)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("created post",
		slog.String("id", post.ID),
		slog.Bool("truncated", post.Truncated),
	)
	return post, nil
}
