package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repobridge/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
}

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}

	gt.True(t, names["github-token"])
	gt.True(t, names["github-owner"])
}

func TestXPostNew(t *testing.T) {
	t.Run("no credentials means no client", func(t *testing.T) {
		xpost := &config.XPost{}

		client := gt.R1(xpost.New()).NoError(t)
		gt.True(t, client == nil)
	})

	t.Run("flags are declared", func(t *testing.T) {
		xpost := &config.XPost{}
		gt.V(t, len(xpost.Flags())).Equal(4)
	})
}
