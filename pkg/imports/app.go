package imports

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/mosaiq/go-import-framework/internal/utils"
	"github.com/mosaiq/go-import-framework/pkg/configuration"
	"github.com/mosaiq/go-import-framework/pkg/imports/journal"
	"github.com/mosaiq/go-import-framework/pkg/networking"
	"github.com/mosaiq/go-import-framework/pkg/platform"
	"github.com/mosaiq/go-import-framework/pkg/ui"
)

// Env files applied before reading configuration when no configuration is
// supplied. Both are optional.
const (
	EnvFileLocal = "local.env"
	EnvFileUser  = "~/mosaiq.env"
)

const (
	defaultProjectName = "My Project"
	defaultDatasetName = "ds0"
)

// RunRecorder persists a record of each finished run.
type RunRecorder interface {
	Record(ctx context.Context, record journal.RunRecord) error
}

// App executes import runs: it stages the source, resolves the destination,
// runs the process function, publishes the result project, and cleans up.
type App struct {
	descriptor    *Descriptor
	config        configuration.Configuration
	client        platform.Platform
	network       networking.NetworkAccess
	userInterface ui.UserInterface
	logger        *zerolog.Logger
	process       ProcessFunc
	journal       RunRecorder
}

// AppOption configures an App.
type AppOption func(*App)

// WithConfiguration sets the configuration the app reads its settings from.
func WithConfiguration(config configuration.Configuration) AppOption {
	return func(a *App) {
		a.config = config
	}
}

// WithPlatform sets the platform client used for all API calls.
func WithPlatform(client platform.Platform) AppOption {
	return func(a *App) {
		a.client = client
	}
}

// WithNetworkAccess sets the network access used to build HTTP clients.
func WithNetworkAccess(network networking.NetworkAccess) AppOption {
	return func(a *App) {
		a.network = network
	}
}

// WithUserInterface sets the user interface progress is reported to.
func WithUserInterface(userInterface ui.UserInterface) AppOption {
	return func(a *App) {
		a.userInterface = userInterface
	}
}

// WithLogger sets the logger used by the app and its collaborators.
func WithLogger(logger *zerolog.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithProcessFunc replaces the default import strategy.
func WithProcessFunc(process ProcessFunc) AppOption {
	return func(a *App) {
		a.process = process
	}
}

// WithJournal sets the recorder finished runs are written to.
func WithJournal(recorder RunRecorder) AppOption {
	return func(a *App) {
		a.journal = recorder
	}
}

// NewApp creates an App for the given descriptor. Collaborators that are
// not supplied through options are built from the configuration.
func NewApp(descriptor *Descriptor, options ...AppOption) (*App, error) {
	if descriptor == nil {
		return nil, errors.New("descriptor must not be nil")
	}
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}

	app := &App{descriptor: descriptor}
	for _, option := range options {
		option(app)
	}

	if app.logger == nil {
		app.logger = utils.Ptr(zerolog.Nop())
	}
	if app.config == nil {
		configuration.LoadEnvFiles(EnvFileLocal, EnvFileUser)
		app.config = configuration.New()
	}
	if app.userInterface == nil {
		app.userInterface = ui.DefaultUi()
	}
	if app.network == nil {
		app.network = networking.NewNetworkAccess(app.config)
		app.network.SetLogger(app.logger)
	}
	if app.client == nil {
		app.client = platform.NewClient(
			platform.Config{BaseURL: app.config.GetString(configuration.API_URL)},
			platform.WithHTTPClient(app.network.GetHttpClient()),
			platform.WithLogger(app.logger),
		)
	}

	return app, nil
}

// Descriptor returns the manifest the app was created with.
func (a *App) Descriptor() *Descriptor {
	return a.descriptor
}

// Platform returns the platform client the app talks to.
func (a *App) Platform() platform.Platform {
	return a.client
}

// stagedSource is an import source resolved to a local path, remembering
// where it came from so the origin can be removed after the import.
type stagedSource struct {
	localPath  string
	remotePath string
}

// origin names the source for logs and the run journal.
func (s stagedSource) origin() string {
	if s.remotePath != "" {
		return s.remotePath
	}
	return s.localPath
}

// Run executes one import run end to end and returns its result. Failures
// before or outside the upload loop are fatal and abort the run; per-item
// failures are reported through the result's outcomes.
func (a *App) Run(ctx context.Context) (*ImportResult, error) {
	startedAt := time.Now()

	dataDir, err := utils.DataDirectory(a.config.GetString(configuration.DATA_DIR_PATH), a.logger)
	if err != nil {
		return nil, err
	}

	runLock := flock.New(dataDir + ".lock")
	locked, err := runLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock data directory: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() {
		_ = runLock.Unlock()
	}()

	source, err := a.stageSource(ctx, dataDir)
	if err != nil {
		a.removeDataDir(dataDir)
		return nil, err
	}

	project, dataset, err := a.resolveDestination(ctx)
	if err != nil {
		a.removeDataDir(dataDir)
		return nil, err
	}

	run := &Context{
		Project:    project,
		Dataset:    dataset,
		SourcePath: source.localPath,
		DataDir:    dataDir,
		Platform:   a.client,
		Logger:     a.logger,
		Tracker:    NewTracker(a.userInterface.NewProgressBar()),
	}

	var result *ImportResult
	process := a.process
	if process == nil {
		process = func(ctx context.Context, run *Context) (platform.ProjectID, error) {
			var processErr error
			result, processErr = a.importSource(ctx, run)
			if processErr != nil {
				return 0, processErr
			}
			return run.Project.ID, nil
		}
	}

	projectID, err := process(ctx, run)
	if err != nil {
		a.removeDataDir(dataDir)
		return nil, err
	}

	if result == nil {
		result = &ImportResult{ProjectID: projectID}
	}
	if result.Len() > 0 && len(result.Succeeded()) == 0 {
		a.logger.Warn().Int("failed", len(result.Failed())).Msg("no images were imported")
	}

	resultProject := project
	if projectID != project.ID {
		resultProject = a.lookupProject(ctx, projectID)
	}
	a.logger.Info().Int("id", resultProject.ID).Str("name", resultProject.Name).Msg("Result project")
	a.publish(ctx, resultProject)

	a.removeDataDir(dataDir)
	a.removeSourceAfterImport(ctx, source, result)
	a.record(ctx, projectID, source, result, startedAt)

	return result, nil
}

// importSource is the default import strategy: enumerate the staged source
// and upload every item.
func (a *App) importSource(ctx context.Context, run *Context) (*ImportResult, error) {
	enumerator := NewEnumerator(run.DataDir, a.logger,
		WithPolicyFile(a.config.GetString(configuration.IMPORT_POLICY_FILE)))

	items, err := enumerator.ListSource(run.SourcePath)
	if err != nil {
		return nil, err
	}

	loop := NewLoop(a.client.Images(), a.logger,
		WithFetcher(NewFetcher(a.network.GetUnauthorizedHttpClient(), run.DataDir, a.logger)),
		WithTracker(run.Tracker),
		WithWorkers(a.config.GetInt(configuration.FLAG_CONCURRENCY)),
	)

	return loop.Run(ctx, run.Destination(), items)
}

// stageSource resolves the configured import source to a local path,
// downloading sources that live in the team's file storage into the data
// directory first. A missing required source is fatal.
func (a *App) stageSource(ctx context.Context, dataDir string) (stagedSource, error) {
	teamID := a.config.GetInt(configuration.TEAM_ID)

	if remotePath := a.config.GetString(configuration.TASK_INPUT_FILE); remotePath != "" {
		return a.stageTeamFile(ctx, teamID, remotePath, dataDir)
	}
	if remotePath := a.config.GetString(configuration.TASK_INPUT_FOLDER); remotePath != "" {
		return a.stageTeamFolder(ctx, teamID, remotePath, dataDir)
	}

	localPath := a.config.GetString(configuration.INPUT_PATH)
	if localPath == "" {
		if a.descriptor.PathRequired {
			return stagedSource{}, ErrEmptySource
		}
		return stagedSource{}, nil
	}

	if _, statErr := os.Stat(localPath); statErr == nil {
		return stagedSource{localPath: localPath}, nil
	}

	// Not on disk: the path may name an entry in the team's file storage.
	exists, existsErr := a.client.Files().Exists(ctx, teamID, localPath)
	if existsErr == nil && exists {
		return a.stageTeamFile(ctx, teamID, localPath, dataDir)
	}
	entries, listErr := a.client.Files().List(ctx, teamID, localPath)
	if listErr == nil && len(entries) > 0 {
		return a.stageTeamFolder(ctx, teamID, localPath, dataDir)
	}

	return stagedSource{}, NewSourceNotFoundError(localPath)
}

func (a *App) stageTeamFile(ctx context.Context, teamID platform.TeamID, remotePath, dataDir string) (stagedSource, error) {
	localPath := filepath.Join(dataDir, path.Base(remotePath))
	if err := a.client.Files().Download(ctx, teamID, remotePath, localPath); err != nil {
		return stagedSource{}, err
	}

	a.logger.Debug().Str("remote", remotePath).Str("local", localPath).Msg("staged source file")
	return stagedSource{localPath: localPath, remotePath: remotePath}, nil
}

func (a *App) stageTeamFolder(ctx context.Context, teamID platform.TeamID, remoteDir, dataDir string) (stagedSource, error) {
	remoteDir = strings.TrimSuffix(remoteDir, "/")

	entries, err := a.client.Files().List(ctx, teamID, remoteDir)
	if err != nil {
		return stagedSource{}, err
	}
	if len(entries) == 0 {
		return stagedSource{}, NewSourceNotFoundError(remoteDir)
	}

	localDir := filepath.Join(dataDir, path.Base(remoteDir))
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		relative := strings.TrimPrefix(entry.Path, remoteDir+"/")
		localPath := filepath.Join(localDir, filepath.FromSlash(relative))
		if err := a.client.Files().Download(ctx, teamID, entry.Path, localPath); err != nil {
			return stagedSource{}, err
		}
	}

	a.logger.Debug().Str("remote", remoteDir).Str("local", localDir).Msg("staged source folder")
	return stagedSource{localPath: localDir, remotePath: remoteDir}, nil
}

// resolveDestination resolves or creates the project and dataset receiving
// the import. Any failure here aborts the run before the loop starts.
func (a *App) resolveDestination(ctx context.Context) (*platform.ProjectInfo, *platform.DatasetInfo, error) {
	project, err := a.resolveProject(ctx)
	if err != nil {
		return nil, nil, err
	}

	dataset, err := a.resolveDataset(ctx, project)
	if err != nil {
		return nil, nil, err
	}

	return project, dataset, nil
}

func (a *App) resolveProject(ctx context.Context) (*platform.ProjectInfo, error) {
	if id := a.config.GetInt(configuration.FLAG_PROJECT_ID); id != 0 {
		return a.client.Projects().Get(ctx, id)
	}

	name := a.config.GetString(configuration.FLAG_PROJECT_NAME)
	if name == "" {
		name = defaultProjectName
	}

	workspaceID := a.config.GetInt(configuration.WORKSPACE_ID)
	return a.client.Projects().Create(ctx, workspaceID, name, true)
}

func (a *App) resolveDataset(ctx context.Context, project *platform.ProjectInfo) (*platform.DatasetInfo, error) {
	if id := a.config.GetInt(configuration.FLAG_DATASET_ID); id != 0 {
		dataset, err := a.client.Datasets().Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if dataset.ProjectID != project.ID {
			return nil, NewDatasetMismatchError(dataset.ID, project.ID, dataset.ProjectID)
		}
		return dataset, nil
	}

	name := a.config.GetString(configuration.FLAG_DATASET_NAME)
	if name == "" {
		name = defaultDatasetName
	}

	return a.client.Datasets().Create(ctx, project.ID, name, true)
}

func (a *App) lookupProject(ctx context.Context, id platform.ProjectID) *platform.ProjectInfo {
	project, err := a.client.Projects().Get(ctx, id)
	if err != nil {
		a.logger.Warn().Err(err).Int("id", id).Msg("failed to look up result project")
		return &platform.ProjectInfo{ID: id}
	}
	return project
}

// publish reports the result project to the platform task, if the run
// belongs to one. Publication failures are logged, never fatal.
func (a *App) publish(ctx context.Context, project *platform.ProjectInfo) {
	taskID := a.config.GetInt(configuration.TASK_ID)
	if taskID == 0 {
		return
	}

	if err := a.client.Tasks().SetOutputProject(ctx, taskID, project.ID, project.Name); err != nil {
		a.logger.Warn().Err(err).Int("taskId", taskID).Msg("failed to publish result project")
	}
}

func (a *App) removeDataDir(dataDir string) {
	if err := utils.RemoveDirectory(dataDir); err != nil {
		a.logger.Warn().Err(err).Str("dir", dataDir).Msg("failed to remove data directory")
	}
}

// removeSourceAfterImport removes the team files origin of the source when
// configured to, but only if every item made it.
func (a *App) removeSourceAfterImport(ctx context.Context, source stagedSource, result *ImportResult) {
	if source.remotePath == "" || !a.config.GetBool(configuration.FLAG_REMOVE_SOURCE) {
		return
	}
	if result != nil && len(result.Failed()) > 0 {
		a.logger.Info().Str("path", source.remotePath).Msg("keeping import source, not every image was imported")
		return
	}

	teamID := a.config.GetInt(configuration.TEAM_ID)
	if err := a.client.Files().Remove(ctx, teamID, source.remotePath); err != nil {
		a.logger.Warn().Err(err).Str("path", source.remotePath).Msg("failed to remove import source")
		return
	}

	a.logger.Debug().Str("path", source.remotePath).Msg("removed import source")
}

func (a *App) record(ctx context.Context, projectID platform.ProjectID, source stagedSource, result *ImportResult, startedAt time.Time) {
	if a.journal == nil {
		return
	}

	record := journal.RunRecord{
		ProjectID:  projectID,
		Source:     source.origin(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if result != nil {
		record.DatasetID = result.DatasetID
		record.Succeeded = len(result.Succeeded())
		record.Failed = len(result.Failed())
	}

	if err := a.journal.Record(ctx, record); err != nil {
		a.logger.Warn().Err(err).Msg("failed to record import run")
	}
}
