package jobboard

import "strings"

// Proficiency levels a candidate can declare for a skill.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Profile is a free-form candidate profile as stored by the job board.
type Profile struct {
	Skills        []Skill           `json:"skills,omitempty" mapstructure:"skills"`
	Experience    []ExperienceEntry `json:"experience,omitempty" mapstructure:"experience"`
	Education     []EducationEntry  `json:"education,omitempty" mapstructure:"education"`
	About         string            `json:"about,omitempty" mapstructure:"about"`
	AppliedJobIDs []string          `json:"applied_job_ids,omitempty" mapstructure:"applied_job_ids"`
}

type Skill struct {
	Name  string `json:"name" mapstructure:"name"`
	Level string `json:"level,omitempty" mapstructure:"level"`
}

type ExperienceEntry struct {
	Title       string `json:"title,omitempty" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	StartDate   string `json:"start_date,omitempty" mapstructure:"start_date"`
	EndDate     string `json:"end_date,omitempty" mapstructure:"end_date"`
	IsCurrent   bool   `json:"is_current,omitempty" mapstructure:"is_current"`
}

type EducationEntry struct {
	Degree       string `json:"degree,omitempty" mapstructure:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty" mapstructure:"field_of_study"`
}

// Identity carries the account data of the candidate. Only the name is used for matching.
type Identity struct {
	Name  string `json:"name,omitempty" mapstructure:"name"`
	Email string `json:"email,omitempty" mapstructure:"email"`
}

// HasSignal reports whether the profile has anything to match against:
// at least one named skill, one experience entry or a non-blank about text.
func (p *Profile) HasSignal() bool {
	if p == nil {
		return false
	}
	for _, skill := range p.Skills {
		if strings.TrimSpace(skill.Name) != "" {
			return true
		}
	}
	return len(p.Experience) > 0 || strings.TrimSpace(p.About) != ""
}

func (p *Profile) SkillNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		names = append(names, skill.Name)
	}
	return names
}

// normalize trims whitespace left over by loose decoding and lowercases levels.
func (p *Profile) normalize() {
	skills := p.Skills[:0]
	for _, skill := range p.Skills {
		skill.Name = strings.TrimSpace(skill.Name)
		skill.Level = strings.ToLower(strings.TrimSpace(skill.Level))
		if skill.Name == "" {
			continue
		}
		skills = append(skills, skill)
	}
	p.Skills = skills
	p.AppliedJobIDs = trimAll(p.AppliedJobIDs)
}

func trimAll(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
