package recommend

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReportByCompany groups recommendations by company for a quick overview.
func ReportByCompany(results []Result) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, r := range results {
		key := r.Company
		if strings.TrimSpace(key) == "" {
			key = "unknown company"
		}
		entry := map[string]string{
			"id":       r.JobID,
			"title":    r.JobTitle,
			"location": r.Location,
			"type":     r.Type,
			"score":    fmt.Sprintf("%d", r.MatchScore),
			"reason":   r.Reason,
		}
		if r.AI != nil {
			if r.AI.Error != "" {
				entry["ai_error"] = r.AI.Error
			} else {
				entry["ai_fit"] = fmt.Sprintf("%t", r.AI.Fit)
				entry["ai_score"] = fmt.Sprintf("%.2f", r.AI.Score)
				entry["ai_reason"] = r.AI.Reason
			}
		}
		report[key] = append(report[key], entry)
	}
	return report
}

// DumpToTmpFile writes the recommendations as indented JSON to a new temporary file.
func DumpToTmpFile(results []Result) (string, error) {
	file, err := os.CreateTemp("", "recommendations_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := Write(file.Name(), results); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func Write(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
