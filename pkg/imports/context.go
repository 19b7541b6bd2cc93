package imports

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mosaiq/go-import-framework/pkg/platform"
)

// Context carries everything a process function needs: the resolved
// destination, the staged local source, and the run's collaborators. The
// destination is always resolved before the process function runs.
type Context struct {
	Project    *platform.ProjectInfo
	Dataset    *platform.DatasetInfo
	SourcePath string
	DataDir    string
	Platform   platform.Platform
	Logger     *zerolog.Logger
	Tracker    *Tracker
}

// Destination returns the resolved destination of the run.
func (c *Context) Destination() Destination {
	return Destination{
		ProjectID: c.Project.ID,
		DatasetID: c.Dataset.ID,
	}
}

// ProcessFunc is the import strategy of an app: given the prepared run
// context it imports the source and returns the id of the project that
// received the data. The default strategy enumerates the source and runs
// the upload loop.
type ProcessFunc func(ctx context.Context, run *Context) (platform.ProjectID, error)
