package ai

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/recommend"
)

type stubMatcher struct {
	answers map[string]*FitAssessment
	errs    map[string]error

	mu    sync.Mutex
	calls []string
}

func (s *stubMatcher) Evaluate(_ context.Context, _ *jobboard.Profile, job *jobboard.Job) (*FitAssessment, error) {
	s.mu.Lock()
	s.calls = append(s.calls, job.ID)
	s.mu.Unlock()
	if err := s.errs[job.ID]; err != nil {
		return nil, err
	}
	return s.answers[job.ID], nil
}

func reviewFixture() (*jobboard.Jobs, []recommend.Result) {
	jobs := &jobboard.Jobs{Items: []*jobboard.Job{
		{ID: "1", Title: "Go Developer"},
		{ID: "2", Title: "Python Developer"},
		{ID: "3", Title: "Rust Developer"},
	}}
	results := []recommend.Result{
		{JobID: "1", JobTitle: "Go Developer", MatchScore: 80},
		{JobID: "2", JobTitle: "Python Developer", MatchScore: 60},
		{JobID: "3", JobTitle: "Rust Developer", MatchScore: 40},
	}
	return jobs, results
}

func TestReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dropUnfit bool
		wantIDs   []string
	}{
		{name: "annotate only", wantIDs: []string{"1", "2", "3"}},
		{name: "drop unfit", dropUnfit: true, wantIDs: []string{"1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jobs, results := reviewFixture()
			matcher := &stubMatcher{
				answers: map[string]*FitAssessment{
					"1": {Fit: true, Score: 0.9, Reason: "strong match"},
					"2": {Fit: false, Score: 0.2, Reason: "different stack"},
				},
				errs: map[string]error{"3": errors.New("quota exceeded")},
			}

			reviewed, err := Review(context.Background(), zap.NewNop(), matcher, &jobboard.Profile{}, jobs, results, tt.dropUnfit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ids := make([]string, 0, len(reviewed))
			for _, r := range reviewed {
				ids = append(ids, r.JobID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("expected %v, got %v", tt.wantIDs, ids)
			}

			if reviewed[0].MatchScore != 80 || reviewed[0].AI == nil || !reviewed[0].AI.Fit {
				t.Fatalf("unexpected first result: %+v", reviewed[0])
			}
			last := reviewed[len(reviewed)-1]
			if last.AI == nil || last.AI.Error != "quota exceeded" {
				t.Fatalf("expected evaluation error to be recorded, got %+v", last.AI)
			}
			if results[0].AI != nil {
				t.Fatal("input results must not be modified")
			}
		})
	}
}

func TestReviewWithoutMatcher(t *testing.T) {
	t.Parallel()

	jobs, results := reviewFixture()
	reviewed, err := Review(context.Background(), nil, nil, nil, jobs, results, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviewed) != 3 || reviewed[0].AI != nil {
		t.Fatalf("expected results untouched, got %+v", reviewed)
	}
}

func TestReviewCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs, results := reviewFixture()
	matcher := &stubMatcher{}
	if _, err := Review(ctx, nil, matcher, nil, jobs, results, false); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(matcher.calls) != 0 {
		t.Fatalf("expected no evaluations, got %v", matcher.calls)
	}
}

type countingMatcher struct {
	mu       sync.Mutex
	inFlight int
	peak     int
}

func (c *countingMatcher) Evaluate(_ context.Context, _ *jobboard.Profile, _ *jobboard.Job) (*FitAssessment, error) {
	c.mu.Lock()
	c.inFlight++
	if c.inFlight > c.peak {
		c.peak = c.inFlight
	}
	c.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()
	return &FitAssessment{Fit: true, Score: 1}, nil
}

func TestReviewBoundsConcurrency(t *testing.T) {
	t.Parallel()

	jobs := &jobboard.Jobs{}
	results := make([]recommend.Result, 0, 12)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("job-%d", i)
		jobs.Items = append(jobs.Items, &jobboard.Job{ID: id, Title: "Engineer"})
		results = append(results, recommend.Result{JobID: id, MatchScore: 50 - i})
	}

	matcher := &countingMatcher{}
	reviewed, err := Review(context.Background(), nil, matcher, &jobboard.Profile{}, jobs, results, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matcher.peak > MaxConcurrentReviews {
		t.Fatalf("expected at most %d evaluations in flight, got %d", MaxConcurrentReviews, matcher.peak)
	}
	for i, r := range reviewed {
		if r.JobID != results[i].JobID || r.AI == nil {
			t.Fatalf("unexpected result at %d: %+v", i, r)
		}
	}
}
