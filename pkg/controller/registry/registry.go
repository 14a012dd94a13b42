package registry

import (
	"context"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repobridge/pkg/domain/interfaces"
	"github.com/secmon-lab/repobridge/pkg/domain/model"
	"github.com/secmon-lab/repobridge/pkg/domain/types"
)

type handler func(ctx context.Context, args map[string]string) (*model.Envelope, error)

// Registry binds the action specifications to a use case
// implementation. Dispatch validates arguments against the spec first
// and only then invokes the handler, so invalid input never reaches
// the network.
type Registry struct {
	uc       interfaces.UseCase
	specs    map[string]Spec
	handlers map[string]handler
}

func New(uc interfaces.UseCase) *Registry {
	x := &Registry{
		uc:       uc,
		specs:    map[string]Spec{},
		handlers: map[string]handler{},
	}
	for _, spec := range Specs() {
		x.specs[spec.Name] = spec
	}

	x.handlers["checkRepoExists"] = x.checkRepoExists
	x.handlers["createRepository"] = x.createRepository
	x.handlers["manageRepository"] = x.manageRepository
	x.handlers["listRepositories"] = x.listRepositories
	x.handlers["deleteRepository"] = x.deleteRepository
	x.handlers["viewRepository"] = x.viewRepository
	x.handlers["addCollaborator"] = x.addCollaborator
	x.handlers["removeCollaborator"] = x.removeCollaborator
	x.handlers["setRepositoryVisibility"] = x.setRepositoryVisibility
	x.handlers["renameRepository"] = x.renameRepository
	x.handlers["createIssue"] = x.createIssue
	x.handlers["getRepositoryTraffic"] = x.getRepositoryTraffic
	x.handlers["getUserDetails"] = x.getUserDetails
	x.handlers["createPost"] = x.createPost

	return x
}

// Dispatch resolves the action by name, validates and defaults the raw
// arguments, and runs the action. Unknown names and invalid arguments
// fail before any upstream request is made.
func (x *Registry) Dispatch(ctx context.Context, name string, raw map[string]any) (*model.Envelope, error) {
	spec, ok := x.specs[name]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownAction, "no such action", goerr.V("action", name))
	}

	args, err := validateArgs(spec, raw)
	if err != nil {
		return nil, err
	}

	return x.handlers[name](ctx, args)
}

func validateArgs(spec Spec, raw map[string]any) (map[string]string, error) {
	args := make(map[string]string, len(spec.Fields))

	for _, f := range spec.Fields {
		value, ok := raw[f.Name]
		if !ok || value == nil {
			if f.Required {
				return nil, goerr.Wrap(types.ErrValidationFailed, "missing required argument",
					goerr.V("action", spec.Name),
					goerr.V("argument", f.Name),
				)
			}
			args[f.Name] = f.Default
			continue
		}

		s, ok := value.(string)
		if !ok {
			return nil, goerr.Wrap(types.ErrValidationFailed, "argument must be a string",
				goerr.V("action", spec.Name),
				goerr.V("argument", f.Name),
			)
		}
		if f.Required && s == "" {
			return nil, goerr.Wrap(types.ErrValidationFailed, "required argument is empty",
				goerr.V("action", spec.Name),
				goerr.V("argument", f.Name),
			)
		}
		if s == "" {
			s = f.Default
		}
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
			return nil, goerr.Wrap(types.ErrValidationFailed, "argument is out of the allowed set",
				goerr.V("action", spec.Name),
				goerr.V("argument", f.Name),
				goerr.V("value", s),
				goerr.V("allowed", f.Enum),
			)
		}
		args[f.Name] = s
	}

	return args, nil
}

func (x *Registry) checkRepoExists(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	name := types.RepoName(args["repoName"])
	exists, err := x.uc.CheckRepoExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return model.NewEnvelopef("Repository %q exists.", name), nil
	}
	return model.NewEnvelopef("Repository %q does not exist.", name), nil
}

func (x *Registry) createRepository(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	repo, err := x.uc.CreateRepository(ctx, &model.CreateRepositoryInput{
		Name:        types.RepoName(args["repoName"]),
		Description: args["description"],
		Visibility:  types.Visibility(args["visibility"]),
	})
	if err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Repository created at: %s", repo.URL), nil
}

func (x *Registry) manageRepository(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	result, err := x.uc.ManageRepository(ctx, &model.ManageRepositoryInput{
		Name:        types.RepoName(args["repoName"]),
		Description: args["description"],
		Visibility:  types.Visibility(args["visibility"]),
	})
	if err != nil {
		return nil, err
	}

	msg := "Repository is up to date."
	switch {
	case result.Created:
		msg = "Repository created."
	case result.Updated:
		msg = "Repository description updated."
	}
	return model.NewJSONEnvelope(msg, result.Repository)
}

func (x *Registry) listRepositories(ctx context.Context, _ map[string]string) (*model.Envelope, error) {
	repos, err := x.uc.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	if len(repos) == 0 {
		return model.NewEnvelope("No repositories found."), nil
	}

	lines := make([]string, 0, len(repos)+1)
	lines = append(lines, "Repositories:")
	for _, repo := range repos {
		lines = append(lines, "- "+string(repo))
	}
	return model.NewEnvelope(strings.Join(lines, "\n")), nil
}

func (x *Registry) deleteRepository(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	name := types.RepoName(args["repoName"])
	if err := x.uc.DeleteRepository(ctx, name); err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Repository %q deleted.", name), nil
}

func (x *Registry) viewRepository(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	repo, err := x.uc.ViewRepository(ctx, types.RepoName(args["repoName"]))
	if err != nil {
		return nil, err
	}
	return model.NewJSONEnvelope("Repository details:", repo)
}

func (x *Registry) addCollaborator(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	input := &model.CollaboratorInput{
		Repo:       types.RepoName(args["repoName"]),
		Username:   types.Username(args["collaboratorUsername"]),
		Permission: types.Permission(args["permission"]),
	}
	if err := x.uc.AddCollaborator(ctx, input); err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Added %q to %q with %q permission.", input.Username, input.Repo, input.Permission), nil
}

func (x *Registry) removeCollaborator(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	name := types.RepoName(args["repoName"])
	username := types.Username(args["collaboratorUsername"])
	if err := x.uc.RemoveCollaborator(ctx, name, username); err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Removed %q from %q.", username, name), nil
}

func (x *Registry) setRepositoryVisibility(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	name := types.RepoName(args["repoName"])
	visibility := types.Visibility(args["visibility"])
	if _, err := x.uc.SetRepositoryVisibility(ctx, name, visibility); err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Repository %q visibility set to %q.", name, visibility), nil
}

func (x *Registry) renameRepository(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	repo, err := x.uc.RenameRepository(ctx, types.RepoName(args["repoName"]), types.RepoName(args["newName"]))
	if err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Repository renamed to %q: %s", repo.Name, repo.URL), nil
}

func (x *Registry) createIssue(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	issue, err := x.uc.CreateIssue(ctx, &model.CreateIssueInput{
		Repo:  types.RepoName(args["repoName"]),
		Title: args["title"],
		Body:  args["body"],
	})
	if err != nil {
		return nil, err
	}
	return model.NewEnvelopef("Issue #%d created: %s", issue.Number, issue.URL), nil
}

func (x *Registry) getRepositoryTraffic(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	stats, err := x.uc.GetRepositoryTraffic(ctx, types.RepoName(args["repoName"]))
	if err != nil {
		return nil, err
	}
	return model.NewJSONEnvelope("Repository traffic (views, last 14 days):", stats)
}

func (x *Registry) getUserDetails(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	user, err := x.uc.GetUserDetails(ctx, types.Username(args["username"]))
	if err != nil {
		return nil, err
	}
	return model.NewJSONEnvelope("User details:", user)
}

func (x *Registry) createPost(ctx context.Context, args map[string]string) (*model.Envelope, error) {
	post, err := x.uc.CreatePost(ctx, args["status"])
	if err != nil {
		return nil, err
	}
	if post.Truncated {
		return model.NewEnvelopef("Post created (text truncated to fit): %s", post.ID), nil
	}
	return model.NewEnvelopef("Post created: %s", post.ID), nil
}
