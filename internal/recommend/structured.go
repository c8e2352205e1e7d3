package recommend

import "strings"

const (
	penaltyPerYear = 5
	maxPenalty     = 30
)

// skillsMatch is deliberately loose: either name contained in the other,
// ignoring case, counts as a match ("js" and "javascript", but also "java"
// and "javascript").
func skillsMatch(candidate, required string) bool {
	return strings.Contains(required, candidate) || strings.Contains(candidate, required)
}

func lowerNonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MatchedSkills returns the job skills, as written in the posting, that any
// candidate skill matches. Order follows the posting.
func MatchedSkills(candidateSkills, jobSkills []string) []string {
	candidates := lowerNonBlank(candidateSkills)
	if len(candidates) == 0 {
		return nil
	}

	var matched []string
	for _, required := range jobSkills {
		lower := strings.ToLower(strings.TrimSpace(required))
		if lower == "" {
			continue
		}
		for _, candidate := range candidates {
			if skillsMatch(candidate, lower) {
				matched = append(matched, strings.TrimSpace(required))
				break
			}
		}
	}
	return matched
}

// SkillMatchPercent is the share of job skills matched by the candidate, in [0, 100].
func SkillMatchPercent(candidateSkills, jobSkills []string) float64 {
	total := len(lowerNonBlank(jobSkills))
	if total == 0 {
		return 0
	}
	return float64(len(MatchedSkills(candidateSkills, jobSkills))) / float64(total) * 100
}

func ExperienceCompatible(candidateYears, requiredYears int) bool {
	return candidateYears >= requiredYears
}

// ExperiencePenalty costs 5 points per missing year, capped at 30.
func ExperiencePenalty(candidateYears, requiredYears int) int {
	if ExperienceCompatible(candidateYears, requiredYears) {
		return 0
	}
	// A negative gap means the subtraction wrapped around.
	gap := requiredYears - candidateYears
	if gap < 0 || gap >= maxPenalty/penaltyPerYear {
		return maxPenalty
	}
	return gap * penaltyPerYear
}
