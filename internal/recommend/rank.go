package recommend

import (
	"math"
	"sort"
)

// DefaultMinScore is the relevance floor: only scores strictly above it are recommended.
const DefaultMinScore = 10

// CombinedScore fuses the signals into a 0..100 score. The penalty is
// subtracted before clamping.
func CombinedScore(w Weights, similarity, skillMatch float64, compatible bool, penalty int) int {
	score := similarity*100*w.Similarity + skillMatch*w.SkillMatch
	if compatible {
		score += w.ExperienceBonus
	}
	score -= float64(penalty)

	return int(math.Round(clamp(score, 0, 100)))
}

// Rank keeps breakdowns scoring above minScore, orders them by score
// (input order breaks ties) and truncates to limit.
func Rank(scored []Breakdown, minScore, limit int) []Breakdown {
	if limit <= 0 {
		return nil
	}

	ranked := make([]Breakdown, 0, len(scored))
	for _, b := range scored {
		if b.Combined > minScore {
			ranked = append(ranked, b)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Combined > ranked[j].Combined
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
