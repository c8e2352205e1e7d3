package filtering

import (
	"context"
	"strings"

	"github.com/spigell/job-recommender/internal/jobboard"
)

var activeStatuses = map[string]struct{}{
	"":       {},
	"active": {},
	"open":   {},
}

type inactiveFilter struct {
	toggle
}

// NewInactive creates a filter that removes closed, draft and otherwise inactive postings.
func NewInactive() Filter {
	return &inactiveFilter{}
}

func (f *inactiveFilter) Name() string { return "inactive" }

func (f *inactiveFilter) Validate() error { return nil }

func (f *inactiveFilter) Apply(_ context.Context, v *jobboard.Jobs) (*jobboard.Jobs, Step, error) {
	initial := v.Len()
	excluded := v.Drop(func(job *jobboard.Job) bool {
		_, active := activeStatuses[strings.ToLower(strings.TrimSpace(job.Status))]
		return !active
	})

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *inactiveFilter) Status() Status {
	return f.status(f.Name(), nil)
}
