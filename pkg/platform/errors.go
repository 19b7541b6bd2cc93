package platform

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for common conditions.
var (
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrEmptyTeamID      = errors.New("team ID cannot be empty")
	ErrEmptyWorkspaceID = errors.New("workspace ID cannot be empty")
	ErrEmptyProjectID   = errors.New("project ID cannot be empty")
	ErrEmptyDatasetID   = errors.New("dataset ID cannot be empty")
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
)

// ValidationError indicates the platform rejected a request as malformed.
type ValidationError struct {
	Operation string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request during %s: %s", e.Operation, e.Message)
}

// NotFoundError indicates the addressed resource does not exist.
type NotFoundError struct {
	Operation string
	Message   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found during %s: %s", e.Operation, e.Message)
}

// ConflictError indicates a name collision the platform refused to resolve.
type ConflictError struct {
	Operation string
	Message   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict during %s: %s", e.Operation, e.Message)
}

// PermissionError indicates the token lacks access to the addressed resource.
type PermissionError struct {
	Operation string
	Message   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied during %s: %s", e.Operation, e.Message)
}

// HTTPError represents any other unexpected HTTP error response.
type HTTPError struct {
	StatusCode int
	Status     string
	Operation  string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unsuccessful request during %s: %s", e.Operation, e.Status)
}

// FileAccessError indicates a file cannot be accessed or read.
type FileAccessError struct {
	FilePath string
	Err      error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file %s cannot be accessed: %v", e.FilePath, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ImageSizeLimitError indicates an image exceeds the maximum allowed size.
type ImageSizeLimitError struct {
	FilePath string
	FileSize int64
	Limit    int64
}

func (e *ImageSizeLimitError) Error() string {
	return fmt.Sprintf("image %s size %d exceeds limit of %d bytes", e.FilePath, e.FileSize, e.Limit)
}

// NameLengthLimitError indicates an image name exceeds the maximum allowed length.
type NameLengthLimitError struct {
	Name   string
	Length int
	Limit  int
}

func (e *NameLengthLimitError) Error() string {
	return fmt.Sprintf("image name %s length %d exceeds limit of %d characters", e.Name, e.Length, e.Limit)
}

// SpecialFileError indicates a path points to a special file (device, pipe, socket, etc.) instead of a regular file.
type SpecialFileError struct {
	FilePath string
	Mode     os.FileMode
}

func (e *SpecialFileError) Error() string {
	return fmt.Sprintf("path %s is not a regular file (mode: %s)", e.FilePath, e.Mode)
}

// MultipartError indicates an error creating multipart form data.
type MultipartError struct {
	FilePath string
	Err      error
}

func (e *MultipartError) Error() string {
	return fmt.Sprintf("failed to create multipart form for %s: %v", e.FilePath, e.Err)
}

func (e *MultipartError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError with the given parameters.
func NewValidationError(operation, message string) *ValidationError {
	return &ValidationError{
		Operation: operation,
		Message:   message,
	}
}

// NewNotFoundError creates a new NotFoundError with the given parameters.
func NewNotFoundError(operation, message string) *NotFoundError {
	return &NotFoundError{
		Operation: operation,
		Message:   message,
	}
}

// NewConflictError creates a new ConflictError with the given parameters.
func NewConflictError(operation, message string) *ConflictError {
	return &ConflictError{
		Operation: operation,
		Message:   message,
	}
}

// NewPermissionError creates a new PermissionError with the given parameters.
func NewPermissionError(operation, message string) *PermissionError {
	return &PermissionError{
		Operation: operation,
		Message:   message,
	}
}

// NewHTTPError creates a new HTTPError with the given parameters.
func NewHTTPError(statusCode int, status, operation string, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Status:     status,
		Operation:  operation,
		Body:       body,
	}
}

// NewFileAccessError creates a new FileAccessError with the given parameters.
func NewFileAccessError(filePath string, err error) *FileAccessError {
	return &FileAccessError{
		FilePath: filePath,
		Err:      err,
	}
}

// NewImageSizeLimitError creates a new ImageSizeLimitError with the given parameters.
func NewImageSizeLimitError(filePath string, fileSize, limit int64) *ImageSizeLimitError {
	return &ImageSizeLimitError{
		FilePath: filePath,
		FileSize: fileSize,
		Limit:    limit,
	}
}

// NewNameLengthLimitError creates a new NameLengthLimitError with the given parameters.
func NewNameLengthLimitError(name string, length, limit int) *NameLengthLimitError {
	return &NameLengthLimitError{
		Name:   name,
		Length: length,
		Limit:  limit,
	}
}

// NewSpecialFileError creates a new SpecialFileError with the given path and mode.
func NewSpecialFileError(path string, mode os.FileMode) *SpecialFileError {
	return &SpecialFileError{
		FilePath: path,
		Mode:     mode,
	}
}

// NewMultipartError creates a new MultipartError with the given parameters.
func NewMultipartError(filePath string, err error) *MultipartError {
	return &MultipartError{
		FilePath: filePath,
		Err:      err,
	}
}
