package gatedata

import (
	"strings"

	"github.com/hardgate/scanengine/internal/model"
)

const (
	bonusCap = 15
	totalCap = 30
)

// QualityScore implements the additive quality-bonus vocabulary from spec
// §4.5: each recognized signal contributes a capped bonus, and the sum is
// clamped to totalCap, grounded in codegates'
// BaseGateValidator._assess_implementation_quality.
//
// avoid_logging_secrets is a negative gate: a match is a violation, not
// evidence of good practice, so it takes the inverted scoring from
// codegates' logging_validators.py instead of the additive bonus vocabulary
// — a clean repo (no matches) scores 100, and each violation costs 10
// points.
func QualityScore(gate model.GateKind, matches []*model.Match, techs map[string][]string) float64 {
	if gate == model.GateAvoidLoggingSecrets {
		if len(matches) == 0 {
			return 100
		}
		q := 100 - 10*float64(len(matches))
		if q < 0 {
			return 0
		}
		return q
	}

	if len(matches) == 0 {
		return 0
	}

	var total float64

	if frameworkPresent(gate, techs) {
		total += bonus(10)
	}

	if contextFieldRatio(matches) > 0.3 {
		total += bonus(10)
	}

	if fileSpread(matches) >= 3 {
		total += bonus(10)
	}

	if hasLevelSpread(matches) {
		total += bonus(10)
	}

	if hasLifecycleCoverage(matches) {
		total += bonus(10)
	}

	if total > totalCap {
		total = totalCap
	}
	return total
}

func bonus(v float64) float64 {
	if v > bonusCap {
		return bonusCap
	}
	return v
}

func frameworkPresent(gate model.GateKind, techs map[string][]string) bool {
	switch gate {
	case model.GateStructuredLogs, model.GateErrorLogs, model.GateLogAPICalls, model.GateAuditTrail:
		return len(techs["logging"]) > 0
	case model.GateAutomatedTests:
		return len(techs["testing"]) > 0
	case model.GateRetryLogic, model.GateCircuitBreakers, model.GateTimeouts, model.GateThrottling:
		return len(techs["async"]) > 0 || len(techs["monitoring"]) > 0
	default:
		return false
	}
}

func contextFieldRatio(matches []*model.Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	hits := 0
	for _, m := range matches {
		lower := strings.ToLower(m.LineText)
		if strings.Contains(lower, "correlation_id") || strings.Contains(lower, "request_id") || strings.Contains(lower, "user_id") {
			hits++
		}
	}
	return float64(hits) / float64(len(matches))
}

func fileSpread(matches []*model.Match) int {
	seen := map[string]bool{}
	for _, m := range matches {
		seen[m.RelativePath] = true
	}
	return len(seen)
}

func hasLevelSpread(matches []*model.Match) bool {
	levels := map[string]bool{}
	for _, m := range matches {
		lower := strings.ToLower(m.MatchedText)
		for _, lvl := range []string{"info", "warn", "error", "debug"} {
			if strings.Contains(lower, lvl) {
				levels[lvl] = true
			}
		}
	}
	return len(levels) >= 2
}

func hasLifecycleCoverage(matches []*model.Match) bool {
	stages := map[string]bool{}
	for _, m := range matches {
		lower := strings.ToLower(m.LineText)
		for _, stage := range []string{"start", "complete", "fail", "retry"} {
			if strings.Contains(lower, stage) {
				stages[stage] = true
			}
		}
	}
	return len(stages) >= 2
}
