package ai

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/logger"
	"github.com/spigell/job-recommender/internal/recommend"
)

// MaxConcurrentReviews bounds the number of evaluations in flight.
const MaxConcurrentReviews = 4

type FitAssessment struct {
	Fit     bool
	Score   float64
	Reason  string
	Message string
	Raw     string
}

type Matcher interface {
	Evaluate(ctx context.Context, profile *jobboard.Profile, job *jobboard.Job) (*FitAssessment, error)
}

// Review asks the matcher about every shortlisted job and attaches the answer to the result.
// Scores and order are left untouched. Failed evaluations keep the result with the error
// recorded. Results judged unfit are removed only when dropUnfit is set.
func Review(
	ctx context.Context,
	log *zap.Logger,
	matcher Matcher,
	profile *jobboard.Profile,
	jobs *jobboard.Jobs,
	results []recommend.Result,
	dropUnfit bool,
) ([]recommend.Result, error) {
	if matcher == nil || len(results) == 0 {
		return results, nil
	}
	if log == nil {
		log = zap.NewNop()
	}

	reviewed := make([]recommend.Result, len(results))
	copy(reviewed, results)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentReviews)

	for i := range reviewed {
		if gCtx.Err() != nil {
			break
		}

		job := jobs.FindByID(reviewed[i].JobID)
		if job == nil {
			continue
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			jobLog := log.With(logger.JobFields(job)...)

			assessment, err := matcher.Evaluate(gCtx, profile, job)
			if err != nil {
				if ctxErr := gCtx.Err(); ctxErr != nil {
					return ctxErr
				}
				jobLog.Warn("ai evaluation failed", zap.Error(err))
				reviewed[i].AI = &recommend.AIAssessment{Error: err.Error()}
				return nil
			}

			jobLog.Debug("ai evaluation", zap.Bool("fit", assessment.Fit), zap.Float64("score", assessment.Score))
			reviewed[i].AI = &recommend.AIAssessment{
				Fit:     assessment.Fit,
				Score:   assessment.Score,
				Reason:  assessment.Reason,
				Message: assessment.Message,
				Raw:     assessment.Raw,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !dropUnfit {
		return reviewed, nil
	}

	kept := reviewed[:0]
	for _, r := range reviewed {
		if r.AI != nil && r.AI.Error == "" && !r.AI.Fit {
			log.Info("dropping job judged unfit by ai",
				zap.String(logger.FieldJobID, r.JobID),
				zap.Float64("score", r.AI.Score),
				zap.String("reason", r.AI.Reason),
			)
			continue
		}
		kept = append(kept, r)
	}
	return kept, nil
}
