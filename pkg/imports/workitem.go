package imports

import (
	"context"

	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// SourceKind describes where a work item's content comes from.
type SourceKind int

const (
	// SourceLocalFile is a file that already exists on the local filesystem.
	SourceLocalFile SourceKind = iota
	// SourceRemoteURL is a remote file that is fetched before upload.
	SourceRemoteURL
	// SourceArchiveEntry is a file extracted from a source archive.
	SourceArchiveEntry
)

func (k SourceKind) String() string {
	switch k {
	case SourceLocalFile:
		return "local file"
	case SourceRemoteURL:
		return "remote url"
	case SourceArchiveEntry:
		return "archive entry"
	default:
		return "unknown"
	}
}

// WorkItem is one importable unit discovered during enumeration: a local
// file, a remote URL, or an extracted archive entry. Items are immutable
// once enumerated; archive entries carry the extracted local path.
type WorkItem struct {
	// Name is the name the item is uploaded under.
	Name string
	// Kind describes how the item's content is acquired.
	Kind SourceKind
	// Path is the local path of the content. Empty for remote items until
	// they are fetched.
	Path string
	// URL is the remote location of the content. Only set for remote items.
	URL string
}

// Destination identifies the project and dataset that receive uploads.
// It is resolved once before the loop starts and read-only afterwards.
type Destination struct {
	ProjectID platform.ProjectID
	DatasetID platform.DatasetID
}

// Uploader is the capability the loop needs to store a single image. It is
// satisfied by the platform client's images service.
type Uploader interface {
	UploadPath(ctx context.Context, datasetID platform.DatasetID, name string, path string) (*platform.ImageInfo, error)
}
