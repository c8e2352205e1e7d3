package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/job-recommender/internal/jobboard"
)

// keepFilter keeps only jobs whose field matches one of the allowed values.
// An empty allow list keeps everything.
type keepFilter struct {
	toggle
	name    string
	field   string
	allowed []string
	match   func(value, allowed string) bool
}

// NewJobTypes keeps jobs of the given types, e.g. full-time or contract.
func NewJobTypes(types []string) Filter {
	return &keepFilter{
		name:    "job_types",
		field:   jobboard.JobTypeField,
		allowed: lowerNonBlank(types),
		match:   func(value, allowed string) bool { return value == allowed },
	}
}

// NewLocations keeps jobs whose location contains one of the given places.
func NewLocations(locations []string) Filter {
	return &keepFilter{
		name:    "locations",
		field:   jobboard.JobLocationField,
		allowed: lowerNonBlank(locations),
		match:   strings.Contains,
	}
}

func (f *keepFilter) Name() string { return f.name }

func (f *keepFilter) Validate() error {
	if f.match == nil {
		return fmt.Errorf("matcher is not configured")
	}
	return nil
}

func (f *keepFilter) Apply(_ context.Context, v *jobboard.Jobs) (*jobboard.Jobs, Step, error) {
	initial := v.Len()
	if len(f.allowed) == 0 {
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Drop(func(job *jobboard.Job) bool {
		value := strings.ToLower(strings.TrimSpace(job.GetStringField(f.field)))
		for _, allowed := range f.allowed {
			if f.match(value, allowed) {
				return false
			}
		}
		return true
	})

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *keepFilter) Status() Status {
	details := map[string]string{}
	if len(f.allowed) > 0 {
		details["allowed"] = strings.Join(f.allowed, ",")
	}
	return f.status(f.Name(), details)
}

func lowerNonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
