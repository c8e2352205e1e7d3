package cmd

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/recommend"
)

func TestAppendToExcludeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "exclude.json")
	jobs := &jobboard.Jobs{Items: []*jobboard.Job{
		{ID: "1", Title: "Go Developer", Company: "Acme"},
		{ID: "2", Title: "Rust Developer", Company: "Globex"},
	}}
	results := []recommend.Result{
		{JobID: "1", JobTitle: "Go Developer"},
		{JobID: "2", JobTitle: "Rust Developer", AI: &recommend.AIAssessment{Fit: false, Reason: "no rust experience"}},
		{JobID: "missing"},
	}

	if err := appendToExcludeFile(path, jobs, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a second run must not duplicate entries
	if err := appendToExcludeFile(path, jobs, results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	excluded, err := jobboard.GetExcludedJobsFromFile(path)
	if err != nil {
		t.Fatalf("reading exclude file: %v", err)
	}
	if !reflect.DeepEqual(excluded.JobIDs(), []string{"1", "2"}) {
		t.Fatalf("unexpected excluded ids: %v", excluded.JobIDs())
	}
	if excluded.Items[0].Actor != jobboard.ExcludeActorUser || excluded.Items[0].Reason != excludeReasonRecommended {
		t.Fatalf("unexpected first entry: %+v", excluded.Items[0])
	}
	if excluded.Items[1].Actor != jobboard.ExcludeActorAI || excluded.Items[1].Reason != "no rust experience" {
		t.Fatalf("unexpected second entry: %+v", excluded.Items[1])
	}
}

func TestHandleAction(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "exclude.json")
	config := &Config{ExcludeFile: path}
	jobs := &jobboard.Jobs{Items: []*jobboard.Job{{ID: "1", Title: "Go Developer"}}}
	results := []recommend.Result{{JobID: "1", JobTitle: "Go Developer", MatchScore: 70}}

	if _, err := handleAction(PromptDone, zap.NewNop(), config, jobs, results); !errors.Is(err, errExit) {
		t.Fatalf("expected errExit, got %v", err)
	}

	left, err := handleAction(PromptReportByCompanies, zap.NewNop(), config, jobs, results)
	if err != nil || len(left) != 1 {
		t.Fatalf("report must keep results, got %v, %v", left, err)
	}

	left, err = handleAction(PromptAppendToExcludeFile, zap.NewNop(), config, jobs, results)
	if err != nil || len(left) != 0 {
		t.Fatalf("append must clear results, got %v, %v", left, err)
	}

	if _, err := handleAction("unknown", zap.NewNop(), config, jobs, results); err == nil {
		t.Fatal("expected error for unknown action")
	}
}
