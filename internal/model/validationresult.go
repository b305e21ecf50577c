package model

import "time"

// ValidationResult is the complete output of one scan: one GateScore per
// gate in Gates order (NOT_APPLICABLE and UNSUPPORTED gates included) plus
// repository-level metadata and rollups.
type ValidationResult struct {
	ProjectName     string
	RootPath        string
	PrimaryLanguage Language
	TotalFiles      int
	TotalLines      int
	Duration        time.Duration
	Timestamp       time.Time

	GateScores []*GateScore

	OverallScore float64
	Passed       int
	Warnings     int
	Failed       int

	CriticalIssues  []string
	Recommendations []string
}

// CountStatuses tallies how many gates in scores have each terminal status,
// for ValidationResult's Passed/Warnings/Failed rollups.
func CountStatuses(scores []*GateScore) (passed, warnings, failed int) {
	for _, s := range scores {
		switch s.Status {
		case StatusPass:
			passed++
		case StatusWarning:
			warnings++
		case StatusFail, StatusFailed:
			failed++
		}
	}
	return
}
