package jobboard

import (
	"strings"
)

const (
	JobIDField       = "ID"
	JobCompanyField  = "Company"
	JobTypeField     = "Type"
	JobLocationField = "Location"
	JobStatusField   = "Status"
)

// Job types known to the board. Other values are accepted as-is.
const (
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeContract   = "contract"
	TypeInternship = "internship"
)

type Jobs struct {
	Items []*Job `json:"jobs" mapstructure:"jobs"`
}

type Job struct {
	ID           string   `json:"id" mapstructure:"id"`
	Title        string   `json:"title" mapstructure:"title"`
	Company      string   `json:"company,omitempty" mapstructure:"company"`
	Location     string   `json:"location,omitempty" mapstructure:"location"`
	Type         string   `json:"type,omitempty" mapstructure:"type"`
	Description  string   `json:"description,omitempty" mapstructure:"description"`
	Requirements []string `json:"requirements,omitempty" mapstructure:"requirements"`
	Skills       []string `json:"skills,omitempty" mapstructure:"skills"`
	Experience   string   `json:"experience,omitempty" mapstructure:"experience"`
	Status       string   `json:"status,omitempty" mapstructure:"status"`
}

func (j *Job) GetStringField(name string) string {
	if j == nil {
		return ""
	}
	switch name {
	case JobIDField:
		return j.ID
	case JobCompanyField:
		return j.Company
	case JobTypeField:
		return j.Type
	case JobLocationField:
		return j.Location
	case JobStatusField:
		return j.Status
	default:
		return ""
	}
}

// Valid reports whether the job can be returned as a recommendation.
func (j *Job) Valid() bool {
	return j != nil && strings.TrimSpace(j.ID) != "" && strings.TrimSpace(j.Title) != ""
}

func (j *Job) normalize() {
	j.ID = strings.TrimSpace(j.ID)
	j.Description = plainText(j.Description)
	j.Skills = trimAll(j.Skills)
	j.Requirements = trimAll(j.Requirements)
}

func (v *Jobs) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Items)
}

// Clone returns a shallow copy of the list. Job records are shared.
func (v *Jobs) Clone() *Jobs {
	if v == nil {
		return &Jobs{}
	}
	items := make([]*Job, len(v.Items))
	copy(items, v.Items)
	return &Jobs{Items: items}
}

func (v *Jobs) FindByID(id string) *Job {
	for _, job := range v.Items {
		if job != nil && job.ID == id {
			return job
		}
	}
	return nil
}

func (v *Jobs) IDs() []string {
	if v == nil {
		return nil
	}
	ids := make([]string, 0, len(v.Items))
	for _, job := range v.Items {
		if job == nil {
			continue
		}
		ids = append(ids, job.ID)
	}
	return ids
}

// Exclude removes jobs whose field equals (case-insensitively) one of targets
// and returns the removed ids. The order of the remaining jobs is preserved.
func (v *Jobs) Exclude(name string, targets []string) []string {
	if len(targets) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		set[strings.ToLower(strings.TrimSpace(target))] = struct{}{}
	}

	return v.Drop(func(job *Job) bool {
		_, found := set[strings.ToLower(strings.TrimSpace(job.GetStringField(name)))]
		return found
	})
}

// Drop removes every job for which drop returns true, keeping order, and returns the removed ids.
// Nil entries are never passed to drop and stay in place.
func (v *Jobs) Drop(drop func(*Job) bool) []string {
	if v == nil {
		return nil
	}
	var excluded []string
	kept := v.Items[:0]
	for _, job := range v.Items {
		if job != nil && drop(job) {
			excluded = append(excluded, job.ID)
			continue
		}
		kept = append(kept, job)
	}
	for i := len(kept); i < len(v.Items); i++ {
		v.Items[i] = nil
	}
	v.Items = kept
	return excluded
}
