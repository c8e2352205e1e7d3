package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/jobboard"
)

const forceFlagSetMsg = "include-applied flag is set"

type appliedHistoryFilter struct {
	toggle
	ignore bool
	jobIDs []string
	logger *zap.Logger
}

type AppliedHistoryConfig struct {
	Ignore bool
	// JobIDs are the postings the candidate has already applied to.
	JobIDs []string
}

// NewAppliedHistory creates a filter that removes jobs the candidate already applied to.
func NewAppliedHistory(cfg *AppliedHistoryConfig, logger *zap.Logger) Filter {
	f := &appliedHistoryFilter{logger: logger}
	if cfg != nil {
		f.ignore = cfg.Ignore
		f.jobIDs = cfg.JobIDs
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	return f
}

func (f *appliedHistoryFilter) Name() string { return "applied_history" }

func (f *appliedHistoryFilter) Validate() error { return nil }

func (f *appliedHistoryFilter) Apply(_ context.Context, v *jobboard.Jobs) (*jobboard.Jobs, Step, error) {
	initial := v.Len()
	if f.ignore {
		f.logger.Info("keeping already applied jobs", zap.String("reason", forceFlagSetMsg))
		return v, Step{Initial: initial, Dropped: 0, Left: v.Len()}, nil
	}

	excluded := v.Exclude(jobboard.JobIDField, f.jobIDs)
	if len(excluded) > 0 {
		f.logger.Info("excluding jobs the candidate already applied to",
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", v.Len()),
		)
	}

	return v, Step{Initial: initial, Dropped: len(excluded), Left: v.Len()}, nil
}

func (f *appliedHistoryFilter) Status() Status {
	details := map[string]string{
		"exclude_applied": strconv.FormatBool(!f.ignore),
		"applied":         strconv.Itoa(len(f.jobIDs)),
	}
	s := f.status(f.Name(), details)
	if f.ignore && s.Reason == "" {
		s.Reason = "skip requested via flag"
	}
	return s
}
