package infra

import (
	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
)

type Clients struct {
	github  interfaces.GitHub
	xPoster interfaces.XPoster
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func (x *Clients) XPoster() interfaces.XPoster {
	return x.xPoster
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithXPoster(client interfaces.XPoster) Option {
	return func(x *Clients) {
		x.xPoster = client
	}
}
