package model

import (
	"time"

	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

// Repository holds the attributes read from the hosting platform. It is
// never cached; every instance reflects a single live read.
type Repository struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Private     bool   `json:"private"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Watchers    int    `json:"watchers"`
}

type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	URL         string `json:"url"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type TrafficStats struct {
	TotalCount   int            `json:"totalCount"`
	TotalUniques int            `json:"totalUniques"`
	Views        []TrafficPoint `json:"views"`
}

type TrafficPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
	Uniques   int       `json:"uniques"`
}

type Post struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated"`
}

type CreateRepositoryInput struct {
	Name        types.RepoName
	Description string
	Visibility  types.Visibility
}

type ManageRepositoryInput struct {
	Name        types.RepoName
	Description string
	Visibility  types.Visibility
}

// ManageResult reports which branch the manage composite took.
type ManageResult struct {
	Created    bool
	Updated    bool
	Repository *Repository
}

type CollaboratorInput struct {
	Repo       types.RepoName
	Username   types.Username
	Permission types.Permission
}

type CreateIssueInput struct {
	Repo  types.RepoName
	Title string
	Body  string
}
