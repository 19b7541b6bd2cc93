package platform

import "time"

// TeamID represents a team identifier.
type TeamID = int

// WorkspaceID represents a workspace identifier.
type WorkspaceID = int

// ProjectID represents a project identifier.
type ProjectID = int

// DatasetID represents a dataset identifier.
type DatasetID = int

// ImageID represents an image identifier.
type ImageID = int

// TaskID represents a task identifier.
type TaskID = int

// ProjectInfo contains the attributes of a project.
type ProjectInfo struct {
	ID          ProjectID   `json:"id"`
	Name        string      `json:"name"`
	WorkspaceID WorkspaceID `json:"workspaceId"`
	ImageCount  int         `json:"imageCount"`
}

// DatasetInfo contains the attributes of a dataset.
type DatasetInfo struct {
	ID         DatasetID `json:"id"`
	Name       string    `json:"name"`
	ProjectID  ProjectID `json:"projectId"`
	ImageCount int       `json:"imageCount"`
}

// ImageInfo contains the attributes of an uploaded image.
type ImageInfo struct {
	ID        ImageID   `json:"id"`
	Name      string    `json:"name"`
	DatasetID DatasetID `json:"datasetId"`
	Size      int64     `json:"size"`
}

// FileInfo describes an entry in a team's file storage.
type FileInfo struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	IsDir   bool      `json:"isDir"`
	Updated time.Time `json:"updated"`
}

// createProjectRequest is the request body for creating a project.
type createProjectRequest struct {
	WorkspaceID          WorkspaceID `json:"workspaceId"`
	Name                 string      `json:"name"`
	ChangeNameIfConflict bool        `json:"changeNameIfConflict"`
}

// createDatasetRequest is the request body for creating a dataset.
type createDatasetRequest struct {
	ProjectID            ProjectID `json:"projectId"`
	Name                 string    `json:"name"`
	ChangeNameIfConflict bool      `json:"changeNameIfConflict"`
}

// setOutputProjectRequest is the request body for publishing a task's result project.
type setOutputProjectRequest struct {
	ProjectID   ProjectID `json:"projectId"`
	ProjectName string    `json:"projectName"`
}

// appendTaskLogsRequest is the request body for appending task log entries.
type appendTaskLogsRequest struct {
	Entries []taskLogEntry `json:"entries"`
}

// taskLogEntry mirrors the platform's task log line format.
type taskLogEntry struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// errorResponseBody contains the error payload the platform returns on failures.
type errorResponseBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

const (
	// ContentType is the HTTP header name for content type.
	ContentType = "Content-Type"
)

// Limits contains the limits enforced for image uploads.
type Limits struct {
	// ImageSizeLimit specifies the maximum allowed image size in bytes.
	ImageSizeLimit int64
	// NameLengthLimit specifies the maximum allowed image name length in characters.
	NameLengthLimit int
}
