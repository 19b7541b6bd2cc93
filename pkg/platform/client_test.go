package platform_test

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaiq/go-import-framework/pkg/logging"
	"github.com/mosaiq/go-import-framework/pkg/platform"
)

const (
	teamID      = 7
	workspaceID = 508
	projectID   = 101
	datasetID   = 2055
	taskID      = 9042
)

func TestClient_CreateProject(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	resp, err := c.Projects().Create(context.Background(), workspaceID, "Animals", true)

	require.NoError(t, err)
	assert.Equal(t, projectID, resp.ID)
	assert.Equal(t, "Animals", resp.Name)
	assert.Equal(t, workspaceID, resp.WorkspaceID)
}

func TestClient_CreateProject_EmptyWorkspaceID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Projects().Create(context.Background(), 0, "Animals", true)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyWorkspaceID)
}

func TestClient_CreateProject_EmptyName(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Projects().Create(context.Background(), workspaceID, "", true)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyName)
}

func TestClient_CreateProject_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, err := w.Write([]byte(`{"message": "project \"Animals\" already exists"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	resp, err := c.Projects().Create(context.Background(), workspaceID, "Animals", false)

	assert.Nil(t, resp)
	var conflictErr *platform.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "create project", conflictErr.Operation)
	assert.Equal(t, `project "Animals" already exists`, conflictErr.Message)
}

func TestClient_GetProject(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	resp, err := c.Projects().Get(context.Background(), projectID)

	require.NoError(t, err)
	assert.Equal(t, projectID, resp.ID)
	assert.Equal(t, "Animals", resp.Name)
	assert.Equal(t, 12, resp.ImageCount)
}

func TestClient_GetProject_EmptyID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Projects().Get(context.Background(), 0)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyProjectID)
}

func TestClient_GetProject_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"message": "project 101 not found"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	resp, err := c.Projects().Get(context.Background(), projectID)

	assert.Nil(t, resp)
	var notFoundErr *platform.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "get project", notFoundErr.Operation)
}

func TestClient_GetProject_ServesRepeatedLookupsFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, err := w.Write([]byte(`{"id": 101, "name": "Animals", "workspaceId": 508, "imageCount": 12}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	first, err := c.Projects().Get(context.Background(), projectID)
	require.NoError(t, err)
	second, err := c.Projects().Get(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
	assert.Equal(t, first, second)
}

func TestClient_GetProject_CacheExpires(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, err := w.Write([]byte(`{"id": 101, "name": "Animals", "workspaceId": 508, "imageCount": 12}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	}, platform.WithLookupCacheTTL(10*time.Millisecond))

	_, err := c.Projects().Get(context.Background(), projectID)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = c.Projects().Get(context.Background(), projectID)
	require.NoError(t, err)

	assert.Equal(t, 2, hits)
}

func TestClient_CreateProject_PrimesLookupCache(t *testing.T) {
	getHits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			getHits++
		}
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte(`{"id": 101, "name": "Animals", "workspaceId": 508, "imageCount": 0}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	created, err := c.Projects().Create(context.Background(), workspaceID, "Animals", true)
	require.NoError(t, err)

	fetched, err := c.Projects().Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, getHits)
	assert.Equal(t, created, fetched)
}

func TestClient_CreateDataset(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	resp, err := c.Datasets().Create(context.Background(), projectID, "ds0", true)

	require.NoError(t, err)
	assert.Equal(t, datasetID, resp.ID)
	assert.Equal(t, "ds0", resp.Name)
	assert.Equal(t, projectID, resp.ProjectID)
}

func TestClient_CreateDataset_EmptyProjectID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Datasets().Create(context.Background(), 0, "ds0", true)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyProjectID)
}

func TestClient_GetDataset(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	resp, err := c.Datasets().Get(context.Background(), datasetID)

	require.NoError(t, err)
	assert.Equal(t, datasetID, resp.ID)
	assert.Equal(t, "ds0", resp.Name)
	assert.Equal(t, 3, resp.ImageCount)
}

func TestClient_GetDataset_EmptyID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Datasets().Get(context.Background(), 0)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyDatasetID)
}

func TestClient_UploadImage(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	imagePath := filepath.Join(t.TempDir(), "cat.jpg")
	err := os.WriteFile(imagePath, []byte("meow"), 0o600)
	require.NoError(t, err)

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "cat.jpg", imagePath)

	require.NoError(t, err)
	assert.Equal(t, 3111, resp.ID)
	assert.Equal(t, "cat.jpg", resp.Name)
	assert.Equal(t, datasetID, resp.DatasetID)
	assert.Equal(t, int64(4), resp.Size)
}

func TestClient_UploadImage_EmptyDatasetID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Images().UploadPath(context.Background(), 0, "cat.jpg", "cat.jpg")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyDatasetID)
}

func TestClient_UploadImage_EmptyName(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "", "cat.jpg")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyName)
}

func TestClient_UploadImage_EmptyPath(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "cat.jpg", "")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, platform.ErrEmptyPath)
}

func TestClient_UploadImage_MissingFile(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	missingPath := filepath.Join(t.TempDir(), "missing.jpg")
	resp, err := c.Images().UploadPath(context.Background(), datasetID, "missing.jpg", missingPath)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var accessErr *platform.FileAccessError
	assert.ErrorAs(t, err, &accessErr)
	assert.Equal(t, missingPath, accessErr.FilePath)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestClient_UploadImage_ImageSizeLimit(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	// A sparse file keeps the test light while exceeding the size limit.
	hugePath := filepath.Join(t.TempDir(), "huge.jpg")
	fd, err := os.Create(hugePath)
	require.NoError(t, err)
	require.NoError(t, fd.Truncate(c.GetLimits().ImageSizeLimit+1))
	require.NoError(t, fd.Close())

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "huge.jpg", hugePath)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var sizeErr *platform.ImageSizeLimitError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, hugePath, sizeErr.FilePath)
	assert.Equal(t, c.GetLimits().ImageSizeLimit+1, sizeErr.FileSize)
	assert.Equal(t, c.GetLimits().ImageSizeLimit, sizeErr.Limit)
}

func TestClient_UploadImage_NameLengthLimit(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	imagePath := filepath.Join(t.TempDir(), "cat.jpg")
	err := os.WriteFile(imagePath, []byte("meow"), 0o600)
	require.NoError(t, err)

	longName := strings.Repeat("a", c.GetLimits().NameLengthLimit+1)
	resp, err := c.Images().UploadPath(context.Background(), datasetID, longName, imagePath)

	assert.Error(t, err)
	assert.Nil(t, resp)
	var nameErr *platform.NameLengthLimitError
	assert.ErrorAs(t, err, &nameErr)
	assert.Equal(t, longName, nameErr.Name)
	assert.Equal(t, c.GetLimits().NameLengthLimit+1, nameErr.Length)
	assert.Equal(t, c.GetLimits().NameLengthLimit, nameErr.Limit)
}

func TestClient_UploadImage_NameLengthExactlyAtLimit(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	imagePath := filepath.Join(t.TempDir(), "cat.jpg")
	err := os.WriteFile(imagePath, []byte("meow"), 0o600)
	require.NoError(t, err)

	nameAtLimit := strings.Repeat("a", c.GetLimits().NameLengthLimit)
	_, err = c.Images().UploadPath(context.Background(), datasetID, nameAtLimit, imagePath)

	assert.NoError(t, err)
}

func TestClient_UploadImage_SpecialFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no device files on windows")
	}

	c := platform.NewClient(platform.Config{})

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "null.jpg", "/dev/null")

	assert.Error(t, err)
	assert.Nil(t, resp)
	var specialErr *platform.SpecialFileError
	assert.ErrorAs(t, err, &specialErr)
	assert.Equal(t, "/dev/null", specialErr.FilePath)
}

func TestClient_UploadImage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	imagePath := filepath.Join(t.TempDir(), "cat.jpg")
	err := os.WriteFile(imagePath, []byte("meow"), 0o600)
	require.NoError(t, err)

	resp, err := c.Images().UploadPath(context.Background(), datasetID, "cat.jpg", imagePath)

	assert.Nil(t, resp)
	var httpErr *platform.HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "upload image", httpErr.Operation)
}

func TestClient_ListTeamFiles(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	files, err := c.Files().List(context.Background(), teamID, "import/images")

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "import/images/cat.jpg", files[0].Path)
	assert.Equal(t, int64(4), files[0].Size)
	assert.False(t, files[0].IsDir)
	assert.Equal(t, "import/images/dog.png", files[1].Path)
}

func TestClient_ListTeamFiles_EmptyTeamID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	files, err := c.Files().List(context.Background(), 0, "import/images")

	assert.Error(t, err)
	assert.Nil(t, files)
	assert.ErrorIs(t, err, platform.ErrEmptyTeamID)
}

func TestClient_TeamFileExists(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	exists, err := c.Files().Exists(context.Background(), teamID, "import/images/cat.jpg")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_TeamFileExists_Missing(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	exists, err := c.Files().Exists(context.Background(), teamID, "import/images/missing.jpg")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_DownloadTeamFile(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	localPath := filepath.Join(t.TempDir(), "staging", "cat.jpg")
	err := c.Files().Download(context.Background(), teamID, "import/images/cat.jpg", localPath)

	require.NoError(t, err)
	content, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, "meow", string(content))
}

func TestClient_DownloadTeamFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte(`{"message": "file import/images/missing.jpg not found"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	localPath := filepath.Join(t.TempDir(), "missing.jpg")
	err := c.Files().Download(context.Background(), teamID, "import/images/missing.jpg", localPath)

	var notFoundErr *platform.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "download team file", notFoundErr.Operation)
	assert.NoFileExists(t, localPath)
}

func TestClient_RemoveTeamFile(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	err := c.Files().Remove(context.Background(), teamID, "import/images/cat.jpg")

	assert.NoError(t, err)
}

func TestClient_RemoveTeamFile_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, err := w.Write([]byte(`{"message": "token cannot modify team files"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	err := c.Files().Remove(context.Background(), teamID, "import/images/cat.jpg")

	var permErr *platform.PermissionError
	assert.ErrorAs(t, err, &permErr)
	assert.Equal(t, "remove team file", permErr.Operation)
	assert.Equal(t, "token cannot modify team files", permErr.Message)
}

func TestClient_SetOutputProject(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	err := c.Tasks().SetOutputProject(context.Background(), taskID, projectID, "Animals")

	assert.NoError(t, err)
}

func TestClient_SetOutputProject_EmptyTaskID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	err := c.Tasks().SetOutputProject(context.Background(), 0, projectID, "Animals")

	assert.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrEmptyTaskID)
}

func TestClient_SetOutputProject_EmptyProjectID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	err := c.Tasks().SetOutputProject(context.Background(), taskID, 0, "Animals")

	assert.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrEmptyProjectID)
}

func TestClient_AppendTaskLogs(t *testing.T) {
	srv, c := setupTestServer(t)
	defer srv.Close()

	err := c.Tasks().AppendTaskLogs(context.Background(), taskID, []logging.TaskLogEntry{
		{Level: "info", Message: "upload started", Timestamp: time.Now()},
		{Level: "warn", Message: "item 3 failed", Timestamp: time.Now()},
	})

	assert.NoError(t, err)
}

func TestClient_AppendTaskLogs_NoEntries(t *testing.T) {
	// No server is configured; an HTTP request would fail the call.
	c := platform.NewClient(platform.Config{})

	err := c.Tasks().AppendTaskLogs(context.Background(), taskID, nil)

	assert.NoError(t, err)
}

func TestClient_AppendTaskLogs_EmptyTaskID(t *testing.T) {
	c := platform.NewClient(platform.Config{})

	err := c.Tasks().AppendTaskLogs(context.Background(), 0, []logging.TaskLogEntry{
		{Level: "info", Message: "upload started", Timestamp: time.Now()},
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrEmptyTaskID)
}

func TestClient_ErrorResponseMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, err := w.Write([]byte(`{"message": "name contains invalid characters", "detail": "names may not contain slashes"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()
	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	_, err := c.Projects().Create(context.Background(), workspaceID, "Ani/mals", true)

	var validationErr *platform.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "create project", validationErr.Operation)
	assert.Equal(t, "name contains invalid characters", validationErr.Message)
}

func setupTestServer(t *testing.T) (*httptest.Server, *platform.Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		// Create project
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/projects":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body struct {
				WorkspaceID          int    `json:"workspaceId"`
				Name                 string `json:"name"`
				ChangeNameIfConflict bool   `json:"changeNameIfConflict"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, workspaceID, body.WorkspaceID)
			assert.NotEmpty(t, body.Name)

			w.WriteHeader(http.StatusCreated)
			_, err := w.Write([]byte(`{"id": 101, "name": "Animals", "workspaceId": 508, "imageCount": 0}`))
			assert.NoError(t, err)

		// Get project
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/projects/101":
			_, err := w.Write([]byte(`{"id": 101, "name": "Animals", "workspaceId": 508, "imageCount": 12}`))
			assert.NoError(t, err)

		// Create dataset
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/datasets":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body struct {
				ProjectID            int    `json:"projectId"`
				Name                 string `json:"name"`
				ChangeNameIfConflict bool   `json:"changeNameIfConflict"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, projectID, body.ProjectID)
			assert.NotEmpty(t, body.Name)

			w.WriteHeader(http.StatusCreated)
			_, err := w.Write([]byte(`{"id": 2055, "name": "ds0", "projectId": 101, "imageCount": 0}`))
			assert.NoError(t, err)

		// Get dataset
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/datasets/2055":
			_, err := w.Write([]byte(`{"id": 2055, "name": "ds0", "projectId": 101, "imageCount": 3}`))
			assert.NoError(t, err)

		// Upload image
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/datasets/2055/images":
			assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
			assert.NotZero(t, r.ContentLength, "upload should not be sent chunked")

			require.NoError(t, r.ParseMultipartForm(1<<20))
			name := r.FormValue("name")
			assert.NotEmpty(t, name)

			file, header, err := r.FormFile("image")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, name, header.Filename)

			if name == "cat.jpg" {
				content, readErr := io.ReadAll(file)
				require.NoError(t, readErr)
				assert.Equal(t, "meow", string(content))
			}

			w.WriteHeader(http.StatusCreated)
			_, err = w.Write([]byte(`{"id": 3111, "name": "cat.jpg", "datasetId": 2055, "size": 4}`))
			assert.NoError(t, err)

		// Download team file
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/teams/7/files/download":
			assert.Equal(t, "import/images/cat.jpg", r.URL.Query().Get("path"))

			_, err := w.Write([]byte("meow"))
			assert.NoError(t, err)

		// List team files
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/teams/7/files":
			var listing string
			switch r.URL.Query().Get("path") {
			case "import/images":
				listing = `[
					{"path": "import/images/cat.jpg", "size": 4, "isDir": false},
					{"path": "import/images/dog.png", "size": 9, "isDir": false}
				]`
			case "import/images/cat.jpg":
				listing = `[{"path": "import/images/cat.jpg", "size": 4, "isDir": false}]`
			default:
				listing = `[]`
			}

			_, err := w.Write([]byte(listing))
			assert.NoError(t, err)

		// Remove team file
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/teams/7/files":
			assert.NotEmpty(t, r.URL.Query().Get("path"))

			w.WriteHeader(http.StatusNoContent)

		// Publish task output project
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/tasks/9042/output/project":
			var body struct {
				ProjectID   int    `json:"projectId"`
				ProjectName string `json:"projectName"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, projectID, body.ProjectID)
			assert.Equal(t, "Animals", body.ProjectName)

			w.WriteHeader(http.StatusOK)

		// Append task logs
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/tasks/9042/logs":
			var body struct {
				Entries []struct {
					Level     string    `json:"level"`
					Message   string    `json:"message"`
					Timestamp time.Time `json:"timestamp"`
				} `json:"entries"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.Entries, 2)
			assert.Equal(t, "info", body.Entries[0].Level)
			assert.Equal(t, "upload started", body.Entries[0].Message)

			w.WriteHeader(http.StatusNoContent)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	c := platform.NewClient(platform.Config{
		BaseURL: srv.URL,
	})

	return srv, c
}
