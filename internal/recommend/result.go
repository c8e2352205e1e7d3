package recommend

// Result is a single ranked recommendation.
type Result struct {
	JobID      string        `json:"job_id"`
	JobTitle   string        `json:"job_title"`
	Company    string        `json:"company,omitempty"`
	Location   string        `json:"location,omitempty"`
	Type       string        `json:"type,omitempty"`
	Skills     []string      `json:"skills,omitempty"`
	MatchScore int           `json:"match_score"`
	Reason     string        `json:"reason"`
	AI         *AIAssessment `json:"ai,omitempty"`
}

// AIAssessment is filled only when an AI review ran over the shortlist.
type AIAssessment struct {
	Fit     bool    `json:"fit"`
	Score   float64 `json:"score"`
	Reason  string  `json:"reason,omitempty"`
	Message string  `json:"message,omitempty"`
	Raw     string  `json:"-"`
	Error   string  `json:"error,omitempty"`
}

// Breakdown holds every signal computed for one job.
type Breakdown struct {
	// Index is the position of the job in the input list.
	Index          int
	Similarity     float64
	SkillMatch     float64
	MatchedSkills  []string
	CandidateYears int
	RequiredYears  int
	Compatible     bool
	Penalty        int
	Combined       int
}

// Weights of the score fusion. The zero value is not usable, see DefaultWeights.
type Weights struct {
	Similarity      float64
	SkillMatch      float64
	ExperienceBonus float64
}

func DefaultWeights() Weights {
	return Weights{
		Similarity:      0.40,
		SkillMatch:      0.45,
		ExperienceBonus: 15,
	}
}
