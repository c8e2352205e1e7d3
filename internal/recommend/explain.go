package recommend

import (
	"fmt"
	"strings"
)

const (
	fallbackReason   = "Based on profile analysis"
	maxListedMatches = 3
)

// Explain writes a short rationale for a recommendation. It is not a
// derivation of the score.
func Explain(skillMatch float64, matched []string, compatible bool, jobType string) string {
	var clauses []string

	switch {
	case skillMatch >= 80:
		clauses = append(clauses, "Excellent skill match")
	case skillMatch >= 50:
		clauses = append(clauses, "Good skill alignment")
	case skillMatch > 0:
		clauses = append(clauses, "Some relevant skills")
	}

	if len(matched) > 0 {
		clauses = append(clauses, "Matches: "+strings.Join(matched[:min(len(matched), maxListedMatches)], ", "))
	}

	if compatible {
		clauses = append(clauses, "Experience level suitable")
	}

	if jobType = strings.TrimSpace(jobType); jobType != "" {
		clauses = append(clauses, fmt.Sprintf("%s position", jobType))
	}

	if len(clauses) == 0 {
		return fallbackReason
	}
	return strings.Join(clauses, ". ")
}
