package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// FilesAPI defines the team-file storage operations import apps rely on.
// Import sources frequently live in a team's file storage and are staged to
// the local data directory before enumeration.
type FilesAPI interface {
	// List returns the entries below the given path.
	List(ctx context.Context, teamID TeamID, path string) ([]FileInfo, error)
	// Exists reports whether a file exists at exactly the given path.
	Exists(ctx context.Context, teamID TeamID, path string) (bool, error)
	// Download fetches the remote file and writes it to localPath, creating
	// parent directories as needed.
	Download(ctx context.Context, teamID TeamID, remotePath string, localPath string) error
	// Remove deletes the file or directory at the given path.
	Remove(ctx context.Context, teamID TeamID, path string) error
}

var _ FilesAPI = (*FilesService)(nil)

// FilesService implements FilesAPI via the HTTP API.
type FilesService struct {
	client *Client
}

func (s *FilesService) List(ctx context.Context, teamID TeamID, path string) ([]FileInfo, error) {
	if teamID <= 0 {
		return nil, ErrEmptyTeamID
	}

	listURL := s.client.endpoint("/teams/%d/files", teamID) + "?" + pathQuery(path)

	var files []FileInfo
	if err := s.client.getJSON(ctx, listURL, "list team files", &files); err != nil {
		return nil, err
	}

	return files, nil
}

func (s *FilesService) Exists(ctx context.Context, teamID TeamID, path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}

	files, err := s.List(ctx, teamID, path)
	if err != nil {
		return false, err
	}

	for _, file := range files {
		if file.Path == path && !file.IsDir {
			return true, nil
		}
	}

	return false, nil
}

func (s *FilesService) Download(ctx context.Context, teamID TeamID, remotePath string, localPath string) error {
	if teamID <= 0 {
		return ErrEmptyTeamID
	}
	if remotePath == "" || localPath == "" {
		return ErrEmptyPath
	}

	downloadURL := s.client.endpoint("/teams/%d/files/download", teamID) + "?" + pathQuery(remotePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create download request: %w", err)
	}

	res, err := s.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making download request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return handleUnexpectedStatusCodes(res.Body, res.StatusCode, res.Status, "download team file")
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fmt.Errorf("failed to create local directory: %w", err)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create local file: %w", err)
	}

	if _, err := io.Copy(out, res.Body); err != nil {
		out.Close()
		os.Remove(localPath)
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}

	s.client.logger.Debug().Str("remotePath", remotePath).Str("localPath", localPath).Msg("downloaded team file")
	return nil
}

func (s *FilesService) Remove(ctx context.Context, teamID TeamID, path string) error {
	if teamID <= 0 {
		return ErrEmptyTeamID
	}
	if path == "" {
		return ErrEmptyPath
	}

	removeURL := s.client.endpoint("/teams/%d/files", teamID) + "?" + pathQuery(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, removeURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create remove request: %w", err)
	}

	res, err := s.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making remove request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		return handleUnexpectedStatusCodes(res.Body, res.StatusCode, res.Status, "remove team file")
	}

	s.client.logger.Debug().Str("path", path).Msg("removed team file")
	return nil
}

func pathQuery(path string) string {
	query := url.Values{}
	query.Set("path", path)
	return query.Encode()
}
