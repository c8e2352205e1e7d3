// Package service wraps the ranking engine with the checks and filters a
// caller needs before and after a recommendation run.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/ai"
	"github.com/spigell/job-recommender/internal/apperror"
	"github.com/spigell/job-recommender/internal/filtering"
	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/recommend"
)

const DefaultLimit = 5

const (
	MsgNeedsProfileData = "Please complete your profile with skills, experience or a short description to get recommendations"
	MsgNoJobs           = "No active jobs available"
	MsgNoMatches        = "No matching jobs found"
)

type Config struct {
	// Limit is used when a request does not set one.
	Limit             int
	ExcludedCompanies []string
	JobTypes          []string
	Locations         []string
	ExcludeFile       string
	IncludeApplied    bool
	// DropUnfit removes results the AI review judged unfit.
	DropUnfit bool
}

type Request struct {
	Profile  *jobboard.Profile
	Identity *jobboard.Identity
	Jobs     []*jobboard.Job
	Limit    int
}

type Response struct {
	Recommendations  []recommend.Result `json:"recommendations"`
	Total            int                `json:"total"`
	Message          string             `json:"message,omitempty"`
	NeedsProfileData bool               `json:"needs_profile_data"`
	NoJobs           bool               `json:"no_jobs"`
	Filters          []filtering.Status `json:"filters,omitempty"`
}

type Recommender struct {
	engine  *recommend.Engine
	matcher ai.Matcher
	cfg     Config
	logger  *zap.Logger
}

// New creates a Recommender. A nil matcher disables the AI review.
func New(engine *recommend.Engine, matcher ai.Matcher, cfg Config, logger *zap.Logger) *Recommender {
	if engine == nil {
		engine = recommend.New(recommend.WithLogger(logger))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	return &Recommender{engine: engine, matcher: matcher, cfg: cfg, logger: logger}
}

func (r *Recommender) Recommend(ctx context.Context, req Request) (*Response, error) {
	if req.Profile == nil {
		return nil, apperror.NewNotFound("profile", "the request carries no candidate profile")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = r.cfg.Limit
	}

	if !req.Profile.HasSignal() {
		r.logger.Info("profile has no skills, experience or description")
		return &Response{
			Recommendations:  []recommend.Result{},
			Message:          MsgNeedsProfileData,
			NeedsProfileData: true,
		}, nil
	}

	pipeline := r.filters(req.Profile)
	jobs, err := pipeline.RunFilters(ctx, (&jobboard.Jobs{Items: req.Jobs}).Clone())
	if err != nil {
		return nil, wrapErr("filtering jobs", err)
	}

	resp := &Response{
		Recommendations: []recommend.Result{},
		Total:           jobs.Len(),
		Filters:         pipeline.Describe(),
	}

	if jobs.Len() == 0 {
		resp.NoJobs = true
		resp.Message = MsgNoJobs
		return resp, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, wrapErr("ranking jobs", err)
	}

	results, err := r.engine.Recommend(req.Profile, req.Identity, jobs.Items, limit)
	if err != nil {
		return nil, wrapErr("ranking jobs", err)
	}

	results, err = ai.Review(ctx, r.logger, r.matcher, req.Profile, jobs, results, r.cfg.DropUnfit)
	if err != nil {
		return nil, wrapErr("ai review", err)
	}

	if len(results) == 0 {
		resp.Message = MsgNoMatches
		return resp, nil
	}

	resp.Recommendations = results
	return resp, nil
}

func (r *Recommender) filters(profile *jobboard.Profile) *filtering.Filtering {
	return filtering.New([]filtering.Filter{
		filtering.NewInactive(),
		filtering.NewAppliedHistory(&filtering.AppliedHistoryConfig{
			Ignore: r.cfg.IncludeApplied,
			JobIDs: profile.AppliedJobIDs,
		}, r.logger),
		filtering.NewExcludedCompanies(r.cfg.ExcludedCompanies),
		filtering.NewJobTypes(r.cfg.JobTypes),
		filtering.NewLocations(r.cfg.Locations),
		filtering.NewExcludeFile(r.cfg.ExcludeFile, r.logger),
	}, r.logger)
}

func wrapErr(details string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperror.NewUnavailable(details, err)
	}
	if errors.Is(err, recommend.ErrNilProfile) {
		return apperror.NewInvalidInput(details, err)
	}
	return apperror.NewInternal(details, err)
}
