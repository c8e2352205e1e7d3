package recommend

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spigell/job-recommender/internal/jobboard"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

var digitsRe = regexp.MustCompile(`\d+`)

// maxRequiredYears caps the number read out of a requirement.
const maxRequiredYears = 100

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// CandidateYears sums the experience of the profile in whole months and rounds it to years.
// Entries without a parseable start date are ignored. Current entries, and
// entries without a parseable end date, last until now.
func CandidateYears(profile *jobboard.Profile, now time.Time) int {
	if profile == nil {
		return 0
	}

	total := 0
	for _, entry := range profile.Experience {
		start, ok := parseDate(entry.StartDate)
		if !ok {
			continue
		}

		end := now
		if !entry.IsCurrent {
			if parsed, ok := parseDate(entry.EndDate); ok {
				end = parsed
			}
		}

		total += monthsBetween(start, end)
	}

	return int(math.Round(float64(total) / 12))
}

// RequiredYears reads the experience floor out of a free-form requirement.
// Keyword checks run in a fixed order: entry-level words win over numbers,
// numbers win over seniority words. Numbers above maxRequiredYears, including
// ones too long to parse, read as maxRequiredYears.
func RequiredYears(requirement string) int {
	text := strings.ToLower(strings.TrimSpace(requirement))
	if text == "" {
		return 0
	}

	if containsAny(text, "entry", "fresher", "junior") {
		return 0
	}

	if digits := digitsRe.FindString(text); digits != "" {
		years, err := strconv.Atoi(digits)
		if err != nil {
			// digitsRe only matches digits, so the number is out of range.
			return maxRequiredYears
		}
		return min(years, maxRequiredYears)
	}

	switch {
	case containsAny(text, "senior", "lead"):
		return 5
	case strings.Contains(text, "mid"):
		return 2
	default:
		return 0
	}
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
