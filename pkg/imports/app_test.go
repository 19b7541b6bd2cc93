package imports

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/imports/journal"
	"github.com/mosaiq/go-import-framework/pkg/platform"
	"github.com/mosaiq/go-import-framework/pkg/ui"
)

func TestNewApp_NilDescriptor(t *testing.T) {
	app, err := NewApp(nil)

	assert.Nil(t, app)
	assert.Error(t, err)
}

func TestNewApp_InvalidDescriptor(t *testing.T) {
	app, err := NewApp(&Descriptor{Name: "Import Images", Slug: "Bad Slug!", Version: "1.0.0"})

	assert.Nil(t, app)
	assert.ErrorContains(t, err, "invalid descriptor")
}

func TestApp_Run_Folder(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg", "b.jpg", "c.jpg")

	app, dataDir := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)
	assert.Empty(t, result.Failed())

	project, err := fake.Projects().Get(context.Background(), result.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "My Project", project.Name)
	assert.Equal(t, 508, project.WorkspaceID)

	dataset, err := fake.Datasets().Get(context.Background(), result.DatasetID)
	require.NoError(t, err)
	assert.Equal(t, "ds0", dataset.Name)
	assert.Equal(t, project.ID, dataset.ProjectID)

	uploaded := fake.DatasetImages(result.DatasetID)
	require.Len(t, uploaded, 3)
	assert.Equal(t, "a.jpg", uploaded[0].Name)

	// staging files are gone, the local source stays
	assert.NoDirExists(t, dataDir)
	assert.DirExists(t, srcDir)
}

func TestApp_Run_ProjectNameFlag(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
		config.Set(configuration.FLAG_PROJECT_NAME, "Wildlife")
		config.Set(configuration.FLAG_DATASET_NAME, "spring")
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	project, err := fake.Projects().Get(context.Background(), result.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Wildlife", project.Name)

	dataset, err := fake.Datasets().Get(context.Background(), result.DatasetID)
	require.NoError(t, err)
	assert.Equal(t, "spring", dataset.Name)
}

func TestApp_Run_ConfiguredDestination(t *testing.T) {
	fake := platform.NewFakePlatform()
	project, err := fake.Projects().Create(context.Background(), 508, "Animals", true)
	require.NoError(t, err)
	dataset, err := fake.Datasets().Create(context.Background(), project.ID, "ds0", true)
	require.NoError(t, err)

	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg", "b.jpg")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
		config.Set(configuration.FLAG_PROJECT_ID, project.ID)
		config.Set(configuration.FLAG_DATASET_ID, dataset.ID)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, project.ID, result.ProjectID)
	assert.Equal(t, dataset.ID, result.DatasetID)
	assert.Len(t, fake.DatasetImages(dataset.ID), 2)
}

func TestApp_Run_DatasetNotInProject(t *testing.T) {
	fake := platform.NewFakePlatform()
	first, err := fake.Projects().Create(context.Background(), 508, "Animals", true)
	require.NoError(t, err)
	second, err := fake.Projects().Create(context.Background(), 508, "Plants", true)
	require.NoError(t, err)
	dataset, err := fake.Datasets().Create(context.Background(), second.ID, "ds0", true)
	require.NoError(t, err)

	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
		config.Set(configuration.FLAG_PROJECT_ID, first.ID)
		config.Set(configuration.FLAG_DATASET_ID, dataset.ID)
	})

	result, err := app.Run(context.Background())

	assert.Nil(t, result)
	var mismatchErr *DatasetMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, dataset.ID, mismatchErr.DatasetID)
	assert.Empty(t, fake.DatasetImages(dataset.ID))
}

func TestApp_Run_ArchiveSource(t *testing.T) {
	fake := platform.NewFakePlatform()
	archivePath := filepath.Join(t.TempDir(), "photos.zip")
	writeZipArchive(t, archivePath, []archiveEntry{
		{name: "a.jpg", body: "meow"},
		{name: "b.jpg", body: "woof"},
		{name: "c.jpg", body: "tweet"},
	})

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, archivePath)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 3)
	assert.Empty(t, result.Failed())
	assert.Len(t, fake.DatasetImages(result.DatasetID), 3)
}

func TestApp_Run_TextFileSource(t *testing.T) {
	fake := platform.NewFakePlatform()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, err := w.Write([]byte("meow"))
		assert.NoError(t, err)
	}))
	defer server.Close()

	var lines bytes.Buffer
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&lines, "%s/%03d.png\n", server.URL, i)
	}
	lines.WriteString(server.URL + "/missing.png\n")

	textFile := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(textFile, lines.Bytes(), 0o644))

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, textFile)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 5)
	require.Len(t, result.Failed(), 1)
	assert.Equal(t, "004.png", result.Failed()[0].Item.Name)
	assert.Len(t, fake.DatasetImages(result.DatasetID), 4)
}

func TestApp_Run_AllItemsFail(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg", "b.jpg")
	fake.UploadFailures["a.jpg"] = errors.New("image file corrupted")
	fake.UploadFailures["b.jpg"] = errors.New("image file corrupted")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Len(t, result.Failed(), 2)
	assert.Empty(t, result.Succeeded())
}

func TestApp_Run_MissingSource(t *testing.T) {
	fake := platform.NewFakePlatform()

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, filepath.Join(t.TempDir(), "nope"))
	})

	result, err := app.Run(context.Background())

	assert.Nil(t, result)
	var notFoundErr *SourceNotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestApp_Run_PathRequired(t *testing.T) {
	fake := platform.NewFakePlatform()
	app, _ := setupAppForTest(t, fake, nil)

	result, err := app.Run(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestApp_Run_TeamFilesSource(t *testing.T) {
	fake := platform.NewFakePlatform()
	fake.AddTeamFile(7, "/import/photos.zip", zipBytesForTest(t, []archiveEntry{
		{name: "a.jpg", body: "meow"},
		{name: "b.jpg", body: "woof"},
	}))

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.TASK_INPUT_FILE, "/import/photos.zip")
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Empty(t, result.Failed())
	assert.True(t, fake.TeamFileExists(7, "/import/photos.zip"))
}

func TestApp_Run_TeamFilesFolderSource(t *testing.T) {
	fake := platform.NewFakePlatform()
	fake.AddTeamFile(7, "/import/batch/a.jpg", []byte("meow"))
	fake.AddTeamFile(7, "/import/batch/b.jpg", []byte("woof"))

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.TASK_INPUT_FOLDER, "/import/batch")
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Empty(t, result.Failed())

	uploaded := fake.DatasetImages(result.DatasetID)
	require.Len(t, uploaded, 2)
	assert.Equal(t, "a.jpg", uploaded[0].Name)
	assert.Equal(t, "b.jpg", uploaded[1].Name)
}

func TestApp_Run_RemovesSourceAfterFullImport(t *testing.T) {
	fake := platform.NewFakePlatform()
	fake.AddTeamFile(7, "/import/photos.zip", zipBytesForTest(t, []archiveEntry{
		{name: "a.jpg", body: "meow"},
	}))

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.TASK_INPUT_FILE, "/import/photos.zip")
		config.Set(configuration.FLAG_REMOVE_SOURCE, true)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Failed())
	assert.False(t, fake.TeamFileExists(7, "/import/photos.zip"))
}

func TestApp_Run_KeepsSourceOnFailedItems(t *testing.T) {
	fake := platform.NewFakePlatform()
	fake.AddTeamFile(7, "/import/photos.zip", zipBytesForTest(t, []archiveEntry{
		{name: "a.jpg", body: "meow"},
		{name: "b.jpg", body: "woof"},
	}))
	fake.UploadFailures["b.jpg"] = errors.New("image file corrupted")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.TASK_INPUT_FILE, "/import/photos.zip")
		config.Set(configuration.FLAG_REMOVE_SOURCE, true)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, result.Failed(), 1)
	assert.True(t, fake.TeamFileExists(7, "/import/photos.zip"))
}

func TestApp_Run_PublishesResultProject(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg")

	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
		config.Set(configuration.TASK_ID, 9042)
	})

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	published, ok := fake.OutputProject(9042)
	require.True(t, ok)
	assert.Equal(t, result.ProjectID, published)
}

func TestApp_Run_RecordsRun(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg", "b.jpg", "c.jpg")
	fake.UploadFailures["b.jpg"] = errors.New("image file corrupted")

	recorder := &recordingJournal{}
	app, _ := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
	}, WithJournal(recorder))

	result, err := app.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, recorder.records, 1)
	record := recorder.records[0]
	assert.Equal(t, result.ProjectID, record.ProjectID)
	assert.Equal(t, result.DatasetID, record.DatasetID)
	assert.Equal(t, srcDir, record.Source)
	assert.Equal(t, 2, record.Succeeded)
	assert.Equal(t, 1, record.Failed)
	assert.False(t, record.FinishedAt.Before(record.StartedAt))
}

func TestApp_Run_CustomProcess(t *testing.T) {
	fake := platform.NewFakePlatform()

	descriptor := &Descriptor{Name: "External Import", Slug: "external-import", Version: "1.0.0", PathRequired: false}
	config := configuration.NewInMemory()
	config.Set(configuration.DATA_DIR_PATH, filepath.Join(t.TempDir(), "data"))
	config.Set(configuration.TEAM_ID, 7)
	config.Set(configuration.WORKSPACE_ID, 508)

	var custom *platform.ProjectInfo
	app, err := NewApp(descriptor,
		WithConfiguration(config),
		WithPlatform(fake),
		WithUserInterface(ui.NewDiscardUi()),
		WithProcessFunc(func(ctx context.Context, run *Context) (platform.ProjectID, error) {
			assert.Empty(t, run.SourcePath)
			require.NotNil(t, run.Project)
			require.NotNil(t, run.Dataset)

			var processErr error
			custom, processErr = run.Platform.Projects().Create(ctx, 508, "External", true)
			require.NoError(t, processErr)
			return custom.ID, nil
		}),
	)
	require.NoError(t, err)

	result, runErr := app.Run(context.Background())

	require.NoError(t, runErr)
	require.NotNil(t, custom)
	assert.Equal(t, custom.ID, result.ProjectID)
	assert.Empty(t, result.Outcomes)
}

func TestApp_Run_Locked(t *testing.T) {
	fake := platform.NewFakePlatform()
	srcDir := t.TempDir()
	writeFiles(t, srcDir, "a.jpg")

	app, dataDir := setupAppForTest(t, fake, func(config configuration.Configuration) {
		config.Set(configuration.INPUT_PATH, srcDir)
	})

	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	held := flock.New(dataDir + ".lock")
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() {
		assert.NoError(t, held.Unlock())
	}()

	result, err := app.Run(context.Background())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Empty(t, fake.DatasetImages(1))
}

type recordingJournal struct {
	records []journal.RunRecord
}

func (r *recordingJournal) Record(_ context.Context, record journal.RunRecord) error {
	r.records = append(r.records, record)
	return nil
}

func setupAppForTest(t *testing.T, fake *platform.FakePlatform, configure func(config configuration.Configuration), options ...AppOption) (*App, string) {
	t.Helper()

	dataDir := filepath.Join(t.TempDir(), "data")
	config := configuration.NewInMemory()
	config.Set(configuration.DATA_DIR_PATH, dataDir)
	config.Set(configuration.TEAM_ID, 7)
	config.Set(configuration.WORKSPACE_ID, 508)
	if configure != nil {
		configure(config)
	}

	descriptor := &Descriptor{Name: "Import Images", Slug: "import-images", Version: "1.0.0", PathRequired: true}
	baseOptions := []AppOption{
		WithConfiguration(config),
		WithPlatform(fake),
		WithUserInterface(ui.NewDiscardUi()),
	}

	app, err := NewApp(descriptor, append(baseOptions, options...)...)
	require.NoError(t, err)

	return app, dataDir
}

func zipBytesForTest(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, entry := range entries {
		entryWriter, err := writer.Create(entry.name)
		require.NoError(t, err)
		_, err = entryWriter.Write([]byte(entry.body))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return buf.Bytes()
}
