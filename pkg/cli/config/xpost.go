package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
	"github.com/secmon-lab/repobridge/pkg/infra/xclient"
	"github.com/urfave/cli/v3"
)

// XPost holds the optional X posting credentials. Either all four are
// set or none; a partial set is a startup error.
type XPost struct {
	apiKey       types.XAPIKey
	apiSecret    types.XAPISecret    `masq:"secret"`
	accessToken  types.XAccessToken  `masq:"secret"`
	accessSecret types.XAccessSecret `masq:"secret"`
}

func (x *XPost) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "x-api-key",
			Usage:       "X API key",
			Category:    "X",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("REPOBRIDGE_X_API_KEY"),
		},
		&cli.StringFlag{
			Name:        "x-api-secret",
			Usage:       "X API secret",
			Category:    "X",
			Destination: (*string)(&x.apiSecret),
			Sources:     cli.EnvVars("REPOBRIDGE_X_API_SECRET"),
		},
		&cli.StringFlag{
			Name:        "x-access-token",
			Usage:       "X access token",
			Category:    "X",
			Destination: (*string)(&x.accessToken),
			Sources:     cli.EnvVars("REPOBRIDGE_X_ACCESS_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "x-access-secret",
			Usage:       "X access token secret",
			Category:    "X",
			Destination: (*string)(&x.accessSecret),
			Sources:     cli.EnvVars("REPOBRIDGE_X_ACCESS_SECRET"),
		},
	}
}

func (x XPost) configured() bool {
	return x.apiKey != "" || x.apiSecret != "" || x.accessToken != "" || x.accessSecret != ""
}

// New returns nil without error when no credential is set. Posting is
// an optional capability of the server.
func (x XPost) New() (*xclient.Client, error) {
	if !x.configured() {
		return nil, nil
	}

	if x.apiKey == "" || x.apiSecret == "" || x.accessToken == "" || x.accessSecret == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "X credentials are incomplete, all four values are required")
	}

	return xclient.New(xclient.Credentials{
		APIKey:       x.apiKey,
		APISecret:    x.apiSecret,
		AccessToken:  x.accessToken,
		AccessSecret: x.accessSecret,
	})
}

func (x XPost) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("Configured", x.configured()),
		slog.Int("APIKey.len", len(x.apiKey)),
	)
}
