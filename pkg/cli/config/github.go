package config

import (
	"log/slog"

	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/infra/ghclient"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
	owner types.Owner
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOBRIDGE_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "GitHub account that owns the repositories",
			Category:    "GitHub",
			Destination: (*string)(&x.owner),
			Sources:     cli.EnvVars("REPOBRIDGE_GITHUB_OWNER"),
			Required:    true,
		},
	}
}

func (x GitHub) New() (*ghclient.Client, error) {
	return ghclient.New(x.token, x.owner)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.Any("Owner", x.owner),
	)
}
