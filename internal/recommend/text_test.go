package recommend

import (
	"testing"

	"github.com/spigell/job-recommender/internal/jobboard"
)

func TestProfileText(t *testing.T) {
	t.Parallel()

	profile := &jobboard.Profile{
		Skills: []jobboard.Skill{
			{Name: "Go", Level: jobboard.LevelExpert},
			{Name: "Docker", Level: jobboard.LevelBeginner},
			{Name: "SQL", Level: jobboard.LevelIntermediate},
			{Name: "Terraform", Level: jobboard.LevelAdvanced},
			{Name: "Bash", Level: "guru"},
		},
		Experience: []jobboard.ExperienceEntry{{Title: "Backend Engineer", Description: "Built APIs"}},
		About:      "Loves Go",
		Education:  []jobboard.EducationEntry{{Degree: "BSc", FieldOfStudy: "Computer Science"}},
	}

	got := ProfileText(profile, &jobboard.Identity{Name: "Jane", Email: "jane@example.com"})
	want := "go go go go docker sql sql terraform terraform terraform bash backend engineer built apis loves go bsc computer science jane"
	if got != want {
		t.Fatalf("unexpected profile text:\n got: %q\nwant: %q", got, want)
	}
}

func TestProfileTextSkipsEmptyFields(t *testing.T) {
	t.Parallel()

	profile := &jobboard.Profile{
		Experience: []jobboard.ExperienceEntry{{Title: "  ", Description: ""}},
		About:      "  Distributed systems  ",
	}

	if got := ProfileText(profile, nil); got != "distributed systems" {
		t.Fatalf("unexpected profile text: %q", got)
	}
	if got := ProfileText(nil, nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestJobText(t *testing.T) {
	t.Parallel()

	job := &jobboard.Job{
		ID:           "1",
		Title:        "Go Developer",
		Company:      "Acme",
		Type:         jobboard.TypeFullTime,
		Description:  "Build services",
		Requirements: []string{"3 years Go"},
		Skills:       []string{"Go", "Kubernetes"},
		Location:     "Berlin",
	}

	want := "go developer go developer go developer build services 3 years go go go go kubernetes kubernetes kubernetes acme full-time"
	if got := JobText(job); got != want {
		t.Fatalf("unexpected job text:\n got: %q\nwant: %q", got, want)
	}

	if got := JobText(&jobboard.Job{ID: "2", Title: "Intern"}); got != "intern intern intern" {
		t.Fatalf("unexpected text for sparse job: %q", got)
	}
	if got := JobText(nil); got != "" {
		t.Fatalf("expected empty text for nil job, got %q", got)
	}
}
