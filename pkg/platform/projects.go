package platform

import (
	"context"
	"fmt"
	"net/http"

	cache "github.com/patrickmn/go-cache"
)

// ProjectsAPI defines the project operations import apps rely on.
type ProjectsAPI interface {
	// Create creates a project in the given workspace. With
	// changeNameIfConflict the platform resolves name collisions by
	// suffixing the name instead of failing.
	Create(ctx context.Context, workspaceID WorkspaceID, name string, changeNameIfConflict bool) (*ProjectInfo, error)
	// Get returns the project with the given id.
	Get(ctx context.Context, id ProjectID) (*ProjectInfo, error)
}

var _ ProjectsAPI = (*ProjectsService)(nil)

// ProjectsService implements ProjectsAPI via the HTTP API.
type ProjectsService struct {
	client *Client
}

func (s *ProjectsService) Create(ctx context.Context, workspaceID WorkspaceID, name string, changeNameIfConflict bool) (*ProjectInfo, error) {
	if workspaceID <= 0 {
		return nil, ErrEmptyWorkspaceID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	body := createProjectRequest{
		WorkspaceID:          workspaceID,
		Name:                 name,
		ChangeNameIfConflict: changeNameIfConflict,
	}

	var info ProjectInfo
	err := s.client.postJSON(ctx, s.client.endpoint("/projects"), body, http.StatusCreated, "create project", &info)
	if err != nil {
		return nil, err
	}

	s.client.logger.Debug().Int("projectId", info.ID).Str("name", info.Name).Msg("created project")
	s.client.lookup.Set(projectCacheKey(info.ID), &info, cache.DefaultExpiration)
	return &info, nil
}

func (s *ProjectsService) Get(ctx context.Context, id ProjectID) (*ProjectInfo, error) {
	if id <= 0 {
		return nil, ErrEmptyProjectID
	}

	if cached, found := s.client.lookup.Get(projectCacheKey(id)); found {
		if info, ok := cached.(*ProjectInfo); ok {
			return info, nil
		}
	}

	var info ProjectInfo
	err := s.client.getJSON(ctx, s.client.endpoint("/projects/%d", id), "get project", &info)
	if err != nil {
		return nil, err
	}

	s.client.lookup.Set(projectCacheKey(id), &info, cache.DefaultExpiration)
	return &info, nil
}

func projectCacheKey(id ProjectID) string {
	return fmt.Sprintf("project/%d", id)
}
