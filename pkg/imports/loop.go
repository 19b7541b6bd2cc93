package imports

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mosaiq/go-import-framework/internal/utils"
	"github.com/mosaiq/go-import-framework/pkg/ui"
)

const progressTitle = "Importing images"

// RemoteFetcher acquires a local copy of a remote work item. It returns the
// local path and a release function that removes the copy again.
type RemoteFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, func(), error)
}

// Loop uploads enumerated work items into a destination dataset. Item
// failures stay isolated: a failed item is recorded in its outcome and the
// loop moves on to the next one.
type Loop struct {
	uploader Uploader
	fetcher  RemoteFetcher
	tracker  *Tracker
	logger   *zerolog.Logger
	workers  int
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithFetcher sets the fetcher used to download remote work items. Without
// one, remote items fail with ErrNoFetcher.
func WithFetcher(fetcher RemoteFetcher) LoopOption {
	return func(l *Loop) {
		l.fetcher = fetcher
	}
}

// WithTracker sets the progress tracker the loop reports to.
func WithTracker(tracker *Tracker) LoopOption {
	return func(l *Loop) {
		l.tracker = tracker
	}
}

// WithWorkers sets the number of concurrent uploads. With more than one
// worker, outcomes still line up with the input order but progress and
// upload order interleave.
func WithWorkers(workers int) LoopOption {
	return func(l *Loop) {
		if workers > 0 {
			l.workers = workers
		}
	}
}

// NewLoop creates a Loop uploading through the given uploader.
func NewLoop(uploader Uploader, logger *zerolog.Logger, options ...LoopOption) *Loop {
	if logger == nil {
		logger = utils.Ptr(zerolog.Nop())
	}

	loop := &Loop{
		uploader: uploader,
		tracker:  NewTracker(ui.NewDiscardUi().NewProgressBar()),
		logger:   logger,
		workers:  1,
	}

	for _, option := range options {
		option(loop)
	}

	return loop
}

// Run uploads every item into the destination dataset and returns one
// outcome per item, in input order. The returned error is non-nil only for
// run level failures such as cancellation; individual item failures are
// reported through their outcomes. On cancellation the result covers the
// items processed so far.
func (l *Loop) Run(ctx context.Context, dest Destination, items []WorkItem) (*ImportResult, error) {
	if dest.ProjectID == 0 || dest.DatasetID == 0 {
		return nil, ErrNoDestination
	}

	result := &ImportResult{
		ProjectID: dest.ProjectID,
		DatasetID: dest.DatasetID,
	}

	l.tracker.Begin(progressTitle, len(items))
	defer l.tracker.Done()

	if len(items) == 0 {
		return result, nil
	}

	if l.workers > 1 {
		return l.runParallel(ctx, dest, items, result)
	}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Outcomes = append(result.Outcomes, l.runItem(ctx, dest, item))
		l.tracker.Step()
	}

	return result, nil
}

// runParallel schedules the items onto a bounded worker group. Items are
// scheduled in input order, so on cancellation the processed items form a
// prefix of the input.
func (l *Loop) runParallel(ctx context.Context, dest Destination, items []WorkItem, result *ImportResult) (*ImportResult, error) {
	outcomes := make([]Outcome, len(items))

	var group errgroup.Group
	group.SetLimit(l.workers)

	scheduled := 0
	for i, item := range items {
		if ctx.Err() != nil {
			break
		}

		scheduled++
		group.Go(func() error {
			outcomes[i] = l.runItem(ctx, dest, item)
			l.tracker.Step()
			return nil
		})
	}

	_ = group.Wait()

	result.Outcomes = outcomes[:scheduled]
	return result, ctx.Err()
}

// runItem acquires a local path for the item, uploads it, and releases any
// temporary copy. Failures are captured in the outcome, never returned.
func (l *Loop) runItem(ctx context.Context, dest Destination, item WorkItem) Outcome {
	outcome := Outcome{Item: item}

	localPath, release, err := l.acquire(ctx, item)
	if err != nil {
		outcome.Err = err
		l.logSkip(item, err)
		return outcome
	}
	defer release()

	image, err := l.uploader.UploadPath(ctx, dest.DatasetID, item.Name, localPath)
	if err != nil {
		outcome.Err = err
		l.logSkip(item, err)
		return outcome
	}

	l.logger.Trace().Int("id", int(image.ID)).Str("name", image.Name).Msg("image uploaded")
	outcome.Image = image
	return outcome
}

// acquire resolves the local path of an item. Local files and archive
// entries already have one; remote items are downloaded first.
func (l *Loop) acquire(ctx context.Context, item WorkItem) (string, func(), error) {
	if item.Kind == SourceRemoteURL {
		if l.fetcher == nil {
			return "", nil, ErrNoFetcher
		}
		return l.fetcher.Fetch(ctx, item.URL)
	}

	if item.Path == "" {
		return "", nil, ErrPathRequired
	}
	return item.Path, func() {}, nil
}

func (l *Loop) logSkip(item WorkItem, err error) {
	event := l.logger.Warn().Str("name", item.Name).Str("reason", err.Error())
	if item.URL != "" {
		event = event.Str("url", item.URL)
	}
	if item.Path != "" {
		event = event.Str("path", item.Path)
	}
	event.Msg("Skip image")
}
