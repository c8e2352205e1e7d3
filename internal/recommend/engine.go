// Package recommend ranks job postings for a candidate.
//
// Every call builds its own tf-idf corpus from the candidate and the jobs it
// is given, so an Engine holds no state between calls and can be shared by
// concurrent callers.
package recommend

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/logger"
)

var ErrNilProfile = errors.New("candidate profile is required")

type Engine struct {
	logger   *zap.Logger
	now      func() time.Time
	weights  Weights
	minScore int
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the reference time for open-ended experience entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

func WithMinScore(score int) Option {
	return func(e *Engine) { e.minScore = score }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		logger:   zap.NewNop(),
		now:      time.Now,
		weights:  DefaultWeights(),
		minScore: DefaultMinScore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score computes the signals of every job, in input order.
func (e *Engine) Score(profile *jobboard.Profile, identity *jobboard.Identity, jobs []*jobboard.Job) ([]Breakdown, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	if len(jobs) == 0 {
		return []Breakdown{}, nil
	}

	docs := make([]string, 0, len(jobs)+1)
	docs = append(docs, ProfileText(profile, identity))
	for _, job := range jobs {
		docs = append(docs, JobText(job))
	}
	space := NewVectorSpace(docs)

	candidateYears := CandidateYears(profile, e.now())
	candidateSkills := profile.SkillNames()

	scored := make([]Breakdown, len(jobs))
	for i, job := range jobs {
		b := Breakdown{Index: i, CandidateYears: candidateYears}
		if job == nil {
			scored[i] = b
			continue
		}

		b.Similarity = space.Similarity(0, i+1)
		b.MatchedSkills = MatchedSkills(candidateSkills, job.Skills)
		b.SkillMatch = SkillMatchPercent(candidateSkills, job.Skills)
		b.RequiredYears = RequiredYears(job.Experience)
		b.Compatible = ExperienceCompatible(candidateYears, b.RequiredYears)
		b.Penalty = ExperiencePenalty(candidateYears, b.RequiredYears)
		b.Combined = CombinedScore(e.weights, b.Similarity, b.SkillMatch, b.Compatible, b.Penalty)
		scored[i] = b

		e.logger.Debug("job scored", append(logger.JobFields(job),
			zap.Float64("similarity", b.Similarity),
			zap.Float64("skill_match", b.SkillMatch),
			zap.Int("required_years", b.RequiredYears),
			zap.Int("penalty", b.Penalty),
			zap.Int("score", b.Combined),
		)...)
	}

	return scored, nil
}

// Recommend returns up to limit jobs ranked by combined score. Jobs without an
// id or a title take part in the corpus but are never recommended.
func (e *Engine) Recommend(profile *jobboard.Profile, identity *jobboard.Identity, jobs []*jobboard.Job, limit int) ([]Result, error) {
	scored, err := e.Score(profile, identity, jobs)
	if err != nil {
		return nil, err
	}

	eligible := scored[:0]
	for _, b := range scored {
		if !jobs[b.Index].Valid() {
			e.logger.Debug("skipping job without id or title", zap.Int("index", b.Index))
			continue
		}
		eligible = append(eligible, b)
	}

	ranked := Rank(eligible, e.minScore, limit)
	results := make([]Result, 0, len(ranked))
	for _, b := range ranked {
		job := jobs[b.Index]
		results = append(results, Result{
			JobID:      job.ID,
			JobTitle:   job.Title,
			Company:    job.Company,
			Location:   job.Location,
			Type:       job.Type,
			Skills:     append([]string(nil), job.Skills...),
			MatchScore: b.Combined,
			Reason:     Explain(b.SkillMatch, b.MatchedSkills, b.Compatible, job.Type),
		})
	}

	e.logger.Debug("jobs ranked",
		zap.Int("jobs", len(jobs)),
		zap.Int("eligible", len(eligible)),
		zap.Int("recommended", len(results)),
	)

	return results, nil
}
