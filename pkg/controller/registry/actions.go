// Package registry holds the closed set of actions the server exposes.
// Each action carries a declarative argument specification so both
// transports validate and default inputs the same way before any
// upstream call.
package registry

// Field describes one argument of an action. All argument values are
// strings on the wire.
type Field struct {
	Name        string
	Description string
	Required    bool
	Default     string
	Enum        []string
}

// Spec is the public description of a single action.
type Spec struct {
	Name        string
	Description string
	Fields      []Field
}

var repoNameField = Field{
	Name:        "repoName",
	Description: "Name of the repository",
	Required:    true,
}

// Specs returns the full action set in a stable order. The set is
// closed: dispatch rejects anything not listed here.
func Specs() []Spec {
	return []Spec{
		{
			Name:        "checkRepoExists",
			Description: "Check whether a repository exists under the configured owner",
			Fields:      []Field{repoNameField},
		},
		{
			Name:        "createRepository",
			Description: "Create a new repository",
			Fields: []Field{
				repoNameField,
				{Name: "description", Description: "Repository description", Default: ""},
				{Name: "visibility", Description: "Repository visibility", Default: "public", Enum: []string{"public", "private"}},
			},
		},
		{
			Name:        "manageRepository",
			Description: "Create the repository if absent, otherwise reconcile its description",
			Fields: []Field{
				repoNameField,
				{Name: "description", Description: "Desired repository description", Default: ""},
				{Name: "visibility", Description: "Visibility applied only at creation", Default: "public", Enum: []string{"public", "private"}},
			},
		},
		{
			Name:        "listRepositories",
			Description: "List repositories of the configured owner",
		},
		{
			Name:        "deleteRepository",
			Description: "Delete a repository",
			Fields:      []Field{repoNameField},
		},
		{
			Name:        "viewRepository",
			Description: "Show repository details",
			Fields:      []Field{repoNameField},
		},
		{
			Name:        "addCollaborator",
			Description: "Invite a user as repository collaborator",
			Fields: []Field{
				repoNameField,
				{Name: "collaboratorUsername", Description: "GitHub login of the collaborator", Required: true},
				{Name: "permission", Description: "Permission granted to the collaborator", Default: "push", Enum: []string{"pull", "push", "admin"}},
			},
		},
		{
			Name:        "removeCollaborator",
			Description: "Remove a collaborator from a repository",
			Fields: []Field{
				repoNameField,
				{Name: "collaboratorUsername", Description: "GitHub login of the collaborator", Required: true},
			},
		},
		{
			Name:        "setRepositoryVisibility",
			Description: "Change repository visibility",
			Fields: []Field{
				repoNameField,
				{Name: "visibility", Description: "New visibility", Required: true, Enum: []string{"public", "private"}},
			},
		},
		{
			Name:        "renameRepository",
			Description: "Rename a repository",
			Fields: []Field{
				repoNameField,
				{Name: "newName", Description: "New repository name", Required: true},
			},
		},
		{
			Name:        "createIssue",
			Description: "Open an issue on a repository",
			Fields: []Field{
				repoNameField,
				{Name: "title", Description: "Issue title", Required: true},
				{Name: "body", Description: "Issue body", Default: ""},
			},
		},
		{
			Name:        "getRepositoryTraffic",
			Description: "Fetch repository view traffic of the last 14 days",
			Fields:      []Field{repoNameField},
		},
		{
			Name:        "getUserDetails",
			Description: "Show public profile details of a GitHub user",
			Fields: []Field{
				{Name: "username", Description: "GitHub login", Required: true},
			},
		},
		{
			Name:        "createPost",
			Description: "Publish a post on X, truncating over-length text",
			Fields: []Field{
				{Name: "status", Description: "Text to post", Required: true},
			},
		},
	}
}

// InputSchema renders the action's arguments as a JSON Schema object,
// the shape tool-listing clients expect.
func (x Spec) InputSchema() map[string]any {
	properties := map[string]any{}
	required := []string{}

	for _, f := range x.Fields {
		prop := map[string]any{
			"type":        "string",
			"description": f.Description,
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if !f.Required && f.Default != "" {
			prop["default"] = f.Default
		}
		properties[f.Name] = prop

		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
