package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Platform is the narrow API surface import apps consume. The HTTP Client
// implements it against a real deployment, the FakePlatform in memory.
type Platform interface {
	Projects() ProjectsAPI
	Datasets() DatasetsAPI
	Images() ImagesAPI
	Files() FilesAPI
	Tasks() TasksAPI
}

// This will force go to complain if the type doesn't satisfy the interface.
var _ Platform = (*Client)(nil)

// apiPathPrefix is prepended to every endpoint path.
const apiPathPrefix = "/api/v1"

const (
	imageSizeLimit  = 100_000_000 // 100MB - maximum size per uploaded image
	nameLengthLimit = 256         // 256 - maximum length of image names

	// defaultLookupTTL bounds how long project/dataset lookups are served from
	// memory before hitting the API again.
	defaultLookupTTL = 30 * time.Second
)

// Config contains the configuration for the platform client.
type Config struct {
	BaseURL string
}

// Client implements the Platform interface via the HTTP API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zerolog.Logger
	lookup     *cache.Cache

	projects *ProjectsService
	datasets *DatasetsService
	images   *ImagesService
	files    *FilesService
	tasks    *TasksService
}

// NewClient creates a new platform client with the given configuration and options.
func NewClient(cfg Config, opts ...Opt) *Client {
	nopLogger := zerolog.Nop()
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: http.DefaultTransport,
		},
		logger: &nopLogger,
		lookup: cache.New(defaultLookupTTL, 2*defaultLookupTTL),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.projects = &ProjectsService{client: c}
	c.datasets = &DatasetsService{client: c}
	c.images = &ImagesService{client: c}
	c.files = &FilesService{client: c}
	c.tasks = &TasksService{client: c}

	return c
}

func (c *Client) Projects() ProjectsAPI { return c.projects }
func (c *Client) Datasets() DatasetsAPI { return c.datasets }
func (c *Client) Images() ImagesAPI     { return c.images }
func (c *Client) Files() FilesAPI       { return c.files }
func (c *Client) Tasks() TasksAPI       { return c.tasks }

// GetLimits returns the upload limits enforced by the client.
func (c *Client) GetLimits() Limits {
	return c.images.GetLimits()
}

// endpoint builds the absolute URL for the given formatted path below the API prefix.
func (c *Client) endpoint(format string, args ...any) string {
	return c.cfg.BaseURL + apiPathPrefix + fmt.Sprintf(format, args...)
}

// postJSON sends body as JSON and decodes the response into out when the
// status matches expectedStatus. A nil out discards the response body.
func (c *Client) postJSON(ctx context.Context, url string, body any, expectedStatus int, operation string, out any) error {
	buff := bytes.NewBuffer(nil)
	if err := json.NewEncoder(buff).Encode(body); err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buff)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set(ContentType, "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making %s request: %w", operation, err)
	}
	defer res.Body.Close()

	if res.StatusCode != expectedStatus {
		return handleUnexpectedStatusCodes(res.Body, res.StatusCode, res.Status, operation)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	return nil
}

// getJSON fetches url and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, url string, operation string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making %s request: %w", operation, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return handleUnexpectedStatusCodes(res.Body, res.StatusCode, res.Status, operation)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	return nil
}

// handleUnexpectedStatusCodes maps an error response onto the typed taxonomy.
func handleUnexpectedStatusCodes(body io.Reader, statusCode int, status, operation string) error {
	bts, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	message := status
	if len(bts) > 0 {
		var payload errorResponseBody
		if parseErr := json.Unmarshal(bts, &payload); parseErr == nil && payload.Message != "" {
			message = payload.Message
		}
	}

	switch statusCode {
	case http.StatusBadRequest:
		return NewValidationError(operation, message)
	case http.StatusForbidden:
		return NewPermissionError(operation, message)
	case http.StatusNotFound:
		return NewNotFoundError(operation, message)
	case http.StatusConflict:
		return NewConflictError(operation, message)
	default:
		return NewHTTPError(statusCode, status, operation, bts)
	}
}
