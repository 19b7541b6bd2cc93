package imports

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrNoFetcher     = errors.New("no fetcher configured for remote work items")
	ErrPathRequired  = errors.New("a source path is required but not configured")
	ErrEmptySource   = errors.New("source path cannot be empty")
	ErrNoDestination = errors.New("no destination dataset resolved")
	ErrLocked        = errors.New("another import run is using the data directory")
)

// UnsupportedArchiveError indicates a source archive in a format the
// extractor does not handle.
type UnsupportedArchiveError struct {
	Path string
}

func (e *UnsupportedArchiveError) Error() string {
	return fmt.Sprintf("unsupported archive format: %s", e.Path)
}

// CorruptArchiveError indicates a source archive that cannot be read.
type CorruptArchiveError struct {
	Path string
	Err  error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("corrupt archive %s: %v", e.Path, e.Err)
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.Err
}

// SourceNotFoundError indicates the configured import source does not exist,
// locally or in the team's file storage.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("import source not found: %s", e.Path)
}

// DatasetMismatchError indicates a configured dataset that does not belong
// to the configured project.
type DatasetMismatchError struct {
	DatasetID        int
	ProjectID        int
	DatasetProjectID int
}

func (e *DatasetMismatchError) Error() string {
	return fmt.Sprintf("dataset %d belongs to project %d, not to configured project %d",
		e.DatasetID, e.DatasetProjectID, e.ProjectID)
}

// NewUnsupportedArchiveError creates a new UnsupportedArchiveError for the given path.
func NewUnsupportedArchiveError(path string) *UnsupportedArchiveError {
	return &UnsupportedArchiveError{Path: path}
}

// NewCorruptArchiveError creates a new CorruptArchiveError with the given parameters.
func NewCorruptArchiveError(path string, err error) *CorruptArchiveError {
	return &CorruptArchiveError{
		Path: path,
		Err:  err,
	}
}

// NewSourceNotFoundError creates a new SourceNotFoundError for the given path.
func NewSourceNotFoundError(path string) *SourceNotFoundError {
	return &SourceNotFoundError{Path: path}
}

// NewDatasetMismatchError creates a new DatasetMismatchError with the given parameters.
func NewDatasetMismatchError(datasetID, projectID, datasetProjectID int) *DatasetMismatchError {
	return &DatasetMismatchError{
		DatasetID:        datasetID,
		ProjectID:        projectID,
		DatasetProjectID: datasetProjectID,
	}
}
