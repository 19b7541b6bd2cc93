package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mosaiq/go-import-framework/pkg/logging"
)

// FakePlatform is an in-memory implementation of the Platform interface for
// testing. It tracks projects, datasets, images, team files and task output
// and enforces the same name-conflict and not-found behavior as the API.
type FakePlatform struct {
	mu sync.Mutex

	projects  map[ProjectID]*ProjectInfo
	datasets  map[DatasetID]*DatasetInfo
	images    map[DatasetID][]ImageInfo
	teamFiles map[TeamID]map[string][]byte
	outputs   map[TaskID]ProjectID
	taskLogs  map[TaskID][]logging.TaskLogEntry
	nextID    int

	// UploadFailures maps image names onto the error their upload returns,
	// to exercise per-item failure isolation in tests.
	UploadFailures map[string]error
}

var _ Platform = (*FakePlatform)(nil)

// NewFakePlatform creates a new instance of the fake platform.
func NewFakePlatform() *FakePlatform {
	return &FakePlatform{
		projects:       make(map[ProjectID]*ProjectInfo),
		datasets:       make(map[DatasetID]*DatasetInfo),
		images:         make(map[DatasetID][]ImageInfo),
		teamFiles:      make(map[TeamID]map[string][]byte),
		outputs:        make(map[TaskID]ProjectID),
		taskLogs:       make(map[TaskID][]logging.TaskLogEntry),
		UploadFailures: make(map[string]error),
	}
}

func (f *FakePlatform) Projects() ProjectsAPI { return &fakeProjects{f} }
func (f *FakePlatform) Datasets() DatasetsAPI { return &fakeDatasets{f} }
func (f *FakePlatform) Images() ImagesAPI     { return &fakeImages{f} }
func (f *FakePlatform) Files() FilesAPI       { return &fakeFiles{f} }
func (f *FakePlatform) Tasks() TasksAPI       { return &fakeTasks{f} }

func (f *FakePlatform) nextIDLocked() int {
	f.nextID++
	return f.nextID
}

type fakeProjects struct{ f *FakePlatform }

func (s *fakeProjects) Create(_ context.Context, workspaceID WorkspaceID, name string, changeNameIfConflict bool) (*ProjectInfo, error) {
	if workspaceID <= 0 {
		return nil, ErrEmptyWorkspaceID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	taken := func(candidate string) bool {
		for _, p := range s.f.projects {
			if p.WorkspaceID == workspaceID && p.Name == candidate {
				return true
			}
		}
		return false
	}

	finalName := name
	if taken(finalName) {
		if !changeNameIfConflict {
			return nil, NewConflictError("create project", fmt.Sprintf("project %q already exists", name))
		}
		for i := 1; taken(finalName); i++ {
			finalName = fmt.Sprintf("%s_%03d", name, i)
		}
	}

	info := &ProjectInfo{
		ID:          s.f.nextIDLocked(),
		Name:        finalName,
		WorkspaceID: workspaceID,
	}
	s.f.projects[info.ID] = info

	result := *info
	return &result, nil
}

func (s *fakeProjects) Get(_ context.Context, id ProjectID) (*ProjectInfo, error) {
	if id <= 0 {
		return nil, ErrEmptyProjectID
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	info, ok := s.f.projects[id]
	if !ok {
		return nil, NewNotFoundError("get project", fmt.Sprintf("project %d not found", id))
	}

	result := *info
	return &result, nil
}

type fakeDatasets struct{ f *FakePlatform }

func (s *fakeDatasets) Create(_ context.Context, projectID ProjectID, name string, changeNameIfConflict bool) (*DatasetInfo, error) {
	if projectID <= 0 {
		return nil, ErrEmptyProjectID
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	if _, ok := s.f.projects[projectID]; !ok {
		return nil, NewNotFoundError("create dataset", fmt.Sprintf("project %d not found", projectID))
	}

	taken := func(candidate string) bool {
		for _, d := range s.f.datasets {
			if d.ProjectID == projectID && d.Name == candidate {
				return true
			}
		}
		return false
	}

	finalName := name
	if taken(finalName) {
		if !changeNameIfConflict {
			return nil, NewConflictError("create dataset", fmt.Sprintf("dataset %q already exists", name))
		}
		for i := 1; taken(finalName); i++ {
			finalName = fmt.Sprintf("%s_%03d", name, i)
		}
	}

	info := &DatasetInfo{
		ID:        s.f.nextIDLocked(),
		Name:      finalName,
		ProjectID: projectID,
	}
	s.f.datasets[info.ID] = info

	result := *info
	return &result, nil
}

func (s *fakeDatasets) Get(_ context.Context, id DatasetID) (*DatasetInfo, error) {
	if id <= 0 {
		return nil, ErrEmptyDatasetID
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	info, ok := s.f.datasets[id]
	if !ok {
		return nil, NewNotFoundError("get dataset", fmt.Sprintf("dataset %d not found", id))
	}

	result := *info
	return &result, nil
}

type fakeImages struct{ f *FakePlatform }

func (s *fakeImages) UploadPath(_ context.Context, datasetID DatasetID, name string, path string) (*ImageInfo, error) {
	if datasetID <= 0 {
		return nil, ErrEmptyDatasetID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if path == "" {
		return nil, ErrEmptyPath
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	if failErr, ok := s.f.UploadFailures[name]; ok {
		return nil, failErr
	}

	dataset, ok := s.f.datasets[datasetID]
	if !ok {
		return nil, NewNotFoundError("upload image", fmt.Sprintf("dataset %d not found", datasetID))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileAccessError(path, err)
	}

	info := ImageInfo{
		ID:        s.f.nextIDLocked(),
		Name:      name,
		DatasetID: datasetID,
		Size:      int64(len(content)),
	}
	s.f.images[datasetID] = append(s.f.images[datasetID], info)
	dataset.ImageCount++
	if project, ok := s.f.projects[dataset.ProjectID]; ok {
		project.ImageCount++
	}

	result := info
	return &result, nil
}

type fakeFiles struct{ f *FakePlatform }

func (s *fakeFiles) List(_ context.Context, teamID TeamID, path string) ([]FileInfo, error) {
	if teamID <= 0 {
		return nil, ErrEmptyTeamID
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	var files []FileInfo
	for filePath, content := range s.f.teamFiles[teamID] {
		if filePath == path || strings.HasPrefix(filePath, strings.TrimSuffix(path, "/")+"/") {
			files = append(files, FileInfo{
				Path: filePath,
				Size: int64(len(content)),
			})
		}
	}

	return files, nil
}

func (s *fakeFiles) Exists(_ context.Context, teamID TeamID, path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	_, ok := s.f.teamFiles[teamID][path]
	return ok, nil
}

func (s *fakeFiles) Download(_ context.Context, teamID TeamID, remotePath string, localPath string) error {
	if teamID <= 0 {
		return ErrEmptyTeamID
	}
	if remotePath == "" || localPath == "" {
		return ErrEmptyPath
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	content, ok := s.f.teamFiles[teamID][remotePath]
	if !ok {
		return NewNotFoundError("download team file", fmt.Sprintf("file %s not found", remotePath))
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(localPath, content, 0o644)
}

func (s *fakeFiles) Remove(_ context.Context, teamID TeamID, path string) error {
	if teamID <= 0 {
		return ErrEmptyTeamID
	}
	if path == "" {
		return ErrEmptyPath
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	for filePath := range s.f.teamFiles[teamID] {
		if filePath == path || strings.HasPrefix(filePath, strings.TrimSuffix(path, "/")+"/") {
			delete(s.f.teamFiles[teamID], filePath)
		}
	}

	return nil
}

type fakeTasks struct{ f *FakePlatform }

func (s *fakeTasks) SetOutputProject(_ context.Context, taskID TaskID, projectID ProjectID, _ string) error {
	if taskID <= 0 {
		return ErrEmptyTaskID
	}
	if projectID <= 0 {
		return ErrEmptyProjectID
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	s.f.outputs[taskID] = projectID
	return nil
}

func (s *fakeTasks) AppendTaskLogs(_ context.Context, taskID int, entries []logging.TaskLogEntry) error {
	if taskID <= 0 {
		return ErrEmptyTaskID
	}

	s.f.mu.Lock()
	defer s.f.mu.Unlock()

	s.f.taskLogs[taskID] = append(s.f.taskLogs[taskID], entries...)
	return nil
}

// AddTeamFile is a test helper that places content into a team's file storage.
func (f *FakePlatform) AddTeamFile(teamID TeamID, path string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.teamFiles[teamID] == nil {
		f.teamFiles[teamID] = make(map[string][]byte)
	}
	f.teamFiles[teamID][path] = content
}

// TeamFileExists is a test helper that reports whether a team file is present.
func (f *FakePlatform) TeamFileExists(teamID TeamID, path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.teamFiles[teamID][path]
	return ok
}

// DatasetImages is a test helper that returns the images uploaded to a dataset.
func (f *FakePlatform) DatasetImages(datasetID DatasetID) []ImageInfo {
	f.mu.Lock()
	defer f.mu.Unlock()

	images := make([]ImageInfo, len(f.images[datasetID]))
	copy(images, f.images[datasetID])
	return images
}

// OutputProject is a test helper that returns the project published for a task.
func (f *FakePlatform) OutputProject(taskID TaskID) (ProjectID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, ok := f.outputs[taskID]
	return id, ok
}

// TaskLogs is a test helper that returns the log entries appended to a task.
func (f *FakePlatform) TaskLogs(taskID TaskID) []logging.TaskLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]logging.TaskLogEntry, len(f.taskLogs[taskID]))
	copy(entries, f.taskLogs[taskID])
	return entries
}
