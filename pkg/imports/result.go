package imports

import "github.com/mosaiq/go-import-framework/pkg/platform"

// Outcome is the per-item result of one upload attempt. Exactly one Outcome
// exists per WorkItem; either Image or Err is set, never both.
type Outcome struct {
	Item  WorkItem
	Image *platform.ImageInfo
	Err   error
}

// Failed reports whether the item's upload failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// ImportResult aggregates the outcomes of one import run. It is immutable
// once the loop returns it.
type ImportResult struct {
	ProjectID platform.ProjectID
	DatasetID platform.DatasetID
	Outcomes  []Outcome
}

// Succeeded returns the outcomes of items that uploaded successfully,
// preserving enumeration order.
func (r *ImportResult) Succeeded() []Outcome {
	var succeeded []Outcome
	for _, outcome := range r.Outcomes {
		if !outcome.Failed() {
			succeeded = append(succeeded, outcome)
		}
	}
	return succeeded
}

// Failed returns the outcomes of items that failed, preserving enumeration
// order.
func (r *ImportResult) Failed() []Outcome {
	var failed []Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Failed() {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Len returns the number of processed items.
func (r *ImportResult) Len() int {
	return len(r.Outcomes)
}
