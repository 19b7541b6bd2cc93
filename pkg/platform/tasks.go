package platform

import (
	"context"
	"net/http"

	"github.com/mosaiq/go-import-framework/pkg/logging"
)

// TasksAPI defines the task operations import apps rely on. Import apps
// started by the platform run inside a task and publish their result project
// to it; standalone runs have no task and skip these calls.
type TasksAPI interface {
	// SetOutputProject publishes the result project of the given task.
	SetOutputProject(ctx context.Context, taskID TaskID, projectID ProjectID, projectName string) error
	// AppendTaskLogs appends log entries to the task's log stream.
	AppendTaskLogs(ctx context.Context, taskID int, entries []logging.TaskLogEntry) error
}

var _ TasksAPI = (*TasksService)(nil)
var _ logging.TaskLogSender = (*TasksService)(nil)

// TasksService implements TasksAPI via the HTTP API.
type TasksService struct {
	client *Client
}

func (s *TasksService) SetOutputProject(ctx context.Context, taskID TaskID, projectID ProjectID, projectName string) error {
	if taskID <= 0 {
		return ErrEmptyTaskID
	}
	if projectID <= 0 {
		return ErrEmptyProjectID
	}

	body := setOutputProjectRequest{
		ProjectID:   projectID,
		ProjectName: projectName,
	}

	url := s.client.endpoint("/tasks/%d/output/project", taskID)
	err := s.client.postJSON(ctx, url, body, http.StatusOK, "set task output project", nil)
	if err != nil {
		return err
	}

	s.client.logger.Debug().Int("taskId", taskID).Int("projectId", projectID).Msg("published task output project")
	return nil
}

func (s *TasksService) AppendTaskLogs(ctx context.Context, taskID int, entries []logging.TaskLogEntry) error {
	if taskID <= 0 {
		return ErrEmptyTaskID
	}
	if len(entries) == 0 {
		return nil
	}

	body := appendTaskLogsRequest{
		Entries: make([]taskLogEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		body.Entries = append(body.Entries, taskLogEntry{
			Level:     entry.Level,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}

	url := s.client.endpoint("/tasks/%d/logs", taskID)
	return s.client.postJSON(ctx, url, body, http.StatusNoContent, "append task logs", nil)
}
