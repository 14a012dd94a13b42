package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken string
	Owner       string
	RepoName    string
	Username    string
	Permission  string
	Visibility  string
	SessionID   string

	XAPIKey       string
	XAPISecret    string
	XAccessToken  string
	XAccessSecret string
)

const (
	PermissionPull  Permission = "pull"
	PermissionPush  Permission = "push"
	PermissionAdmin Permission = "admin"
)

func (x Permission) IsValid() bool {
	switch x {
	case PermissionPull, PermissionPush, PermissionAdmin:
		return true
	}
	return false
}

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (x Visibility) IsValid() bool {
	return x == VisibilityPublic || x == VisibilityPrivate
}

func (x Visibility) Private() bool {
	return x == VisibilityPrivate
}

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x XAPISecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x XAPISecret) String() string {
	return "***********"
}

func (x XAccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x XAccessToken) String() string {
	return "***********"
}

func (x XAccessSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x XAccessSecret) String() string {
	return "***********"
}
