package imports

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mosaiq/go-import-framework/internal/utils"
	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// Fetcher downloads remote work items into the data directory. Fetches go
// through an unauthenticated HTTP client so the platform API token never
// leaks to third-party hosts.
type Fetcher struct {
	httpClient *http.Client
	dir        string
	logger     *zerolog.Logger
}

// NewFetcher creates a Fetcher that stores downloads below dir.
func NewFetcher(httpClient *http.Client, dir string, logger *zerolog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = utils.Ptr(zerolog.Nop())
	}

	return &Fetcher{
		httpClient: httpClient,
		dir:        dir,
		logger:     logger,
	}
}

// Fetch downloads rawURL into a uniquely named file in the data directory
// and returns the local path together with a release function that removes
// the file again. Non-2xx responses fail with a typed HTTP error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, func(), error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create fetch request: %w", err)
	}

	res, err := f.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("error fetching %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			body = nil
		}
		return "", nil, platform.NewHTTPError(res.StatusCode, res.Status, "fetch remote image", body)
	}

	localPath := filepath.Join(f.dir, tempName(rawURL))
	out, err := os.Create(localPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create %s: %w", localPath, err)
	}

	if _, err := io.Copy(out, res.Body); err != nil {
		out.Close()
		os.Remove(localPath)
		return "", nil, fmt.Errorf("failed to write %s: %w", localPath, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(localPath)
		return "", nil, fmt.Errorf("failed to write %s: %w", localPath, err)
	}

	release := func() {
		if removeErr := os.Remove(localPath); removeErr != nil {
			f.logger.Debug().Err(removeErr).Str("path", localPath).Msg("failed to remove fetched file")
		}
	}

	f.logger.Trace().Str("url", rawURL).Str("path", localPath).Msg("fetched remote image")
	return localPath, release, nil
}

// tempName builds a collision-free local file name, keeping the URL's
// extension so uploads retain their format.
func tempName(rawURL string) string {
	return uuid.NewString() + urlExt(rawURL)
}

// urlExt returns the file extension of a URL's path, or "" if the URL has
// none or does not parse.
func urlExt(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Ext(parsed.Path)
}
