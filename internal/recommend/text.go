package recommend

import (
	"strings"

	"github.com/spigell/job-recommender/internal/jobboard"
)

const (
	jobTitleRepeats = 3
	jobSkillRepeats = 3
)

var proficiencyRepeats = map[string]int{
	jobboard.LevelExpert:       4,
	jobboard.LevelAdvanced:     3,
	jobboard.LevelIntermediate: 2,
	jobboard.LevelBeginner:     1,
}

// skillRepeats returns the weight of a skill. Unknown levels weigh like beginner.
func skillRepeats(level string) int {
	if n, ok := proficiencyRepeats[strings.ToLower(strings.TrimSpace(level))]; ok {
		return n
	}
	return 1
}

type bag struct {
	parts []string
}

func (b *bag) add(s string, times int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	for range times {
		b.parts = append(b.parts, s)
	}
}

func (b *bag) String() string {
	return strings.ToLower(strings.Join(b.parts, " "))
}

// ProfileText builds the weighted bag of words of a candidate.
func ProfileText(profile *jobboard.Profile, identity *jobboard.Identity) string {
	var b bag
	if profile != nil {
		for _, skill := range profile.Skills {
			b.add(skill.Name, skillRepeats(skill.Level))
		}
		for _, entry := range profile.Experience {
			b.add(entry.Title, 1)
			b.add(entry.Description, 1)
		}
		b.add(profile.About, 1)
		for _, entry := range profile.Education {
			b.add(entry.Degree, 1)
			b.add(entry.FieldOfStudy, 1)
		}
	}
	if identity != nil {
		b.add(identity.Name, 1)
	}
	return b.String()
}

// JobText builds the weighted bag of words of a job posting.
func JobText(job *jobboard.Job) string {
	if job == nil {
		return ""
	}

	var b bag
	b.add(job.Title, jobTitleRepeats)
	b.add(job.Description, 1)
	for _, requirement := range job.Requirements {
		b.add(requirement, 1)
	}
	for _, skill := range job.Skills {
		b.add(skill, jobSkillRepeats)
	}
	b.add(job.Company, 1)
	b.add(job.Type, 1)
	return b.String()
}
