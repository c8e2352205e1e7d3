package recommend

import (
	"testing"
	"time"

	"github.com/spigell/job-recommender/internal/jobboard"
)

var referenceNow = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestCandidateYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []jobboard.ExperienceEntry
		want    int
	}{
		{
			name:    "current entry runs until now",
			entries: []jobboard.ExperienceEntry{{StartDate: "2019-01-01", IsCurrent: true}},
			want:    5,
		},
		{
			name:    "missing end date runs until now",
			entries: []jobboard.ExperienceEntry{{StartDate: "2021-01"}},
			want:    3,
		},
		{
			name: "months are summed before rounding",
			entries: []jobboard.ExperienceEntry{
				{StartDate: "2018-01-15", EndDate: "2018-10-01"},
				{StartDate: "2020-01-01", EndDate: "2020-10-01"},
			},
			want: 2,
		},
		{
			name:    "17 months round down",
			entries: []jobboard.ExperienceEntry{{StartDate: "2020-01-01", EndDate: "2021-06-01"}},
			want:    1,
		},
		{
			name:    "18 months round up",
			entries: []jobboard.ExperienceEntry{{StartDate: "2020-01-01", EndDate: "2021-07-01"}},
			want:    2,
		},
		{
			name:    "current flag ignores end date",
			entries: []jobboard.ExperienceEntry{{StartDate: "2022-01-01", EndDate: "2022-02-01", IsCurrent: true}},
			want:    2,
		},
		{
			name:    "unparseable end date runs until now",
			entries: []jobboard.ExperienceEntry{{StartDate: "Jan 2020", EndDate: "present"}},
			want:    4,
		},
		{
			name: "unparseable start date contributes nothing",
			entries: []jobboard.ExperienceEntry{
				{StartDate: "sometime", IsCurrent: true},
				{StartDate: ""},
			},
			want: 0,
		},
		{
			name:    "end before start contributes nothing",
			entries: []jobboard.ExperienceEntry{{StartDate: "2023-01-01", EndDate: "2020-01-01"}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CandidateYears(&jobboard.Profile{Experience: tt.entries}, referenceNow)
			if got != tt.want {
				t.Fatalf("expected %d years, got %d", tt.want, got)
			}
		})
	}

	if got := CandidateYears(nil, referenceNow); got != 0 {
		t.Fatalf("expected 0 years for nil profile, got %d", got)
	}
}

func TestRequiredYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{input: "3+ years", want: 3},
		{input: "Entry level, no experience needed", want: 0},
		{input: "Entry level, 2 years preferred", want: 0},
		{input: "Junior developer with 1 year", want: 0},
		{input: "fresher", want: 0},
		{input: "Senior engineer", want: 5},
		{input: "Tech LEAD", want: 5},
		{input: "Senior, 7 years", want: 7},
		{input: "mid-level", want: 2},
		{input: "at least 10 years", want: 10},
		{input: "150 years", want: 100},
		{input: "2000000000000000000 years", want: 100},
		{input: "Senior, 99999999999999999999 years", want: 100},
		{input: "some experience", want: 0},
		{input: "", want: 0},
		{input: "   ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := RequiredYears(tt.input); got != tt.want {
				t.Fatalf("RequiredYears(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
