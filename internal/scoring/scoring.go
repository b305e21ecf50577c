// Package scoring implements the Scorer (C8): per-gate weights, quality
// multipliers, and the final-score / overall-score formulas, translated
// directly from codegates' gate_scorer.py GATE_WEIGHTS and
// QUALITY_MULTIPLIERS tables.
package scoring

import "github.com/hardgate/scanengine/internal/model"

// Weight is the per-gate importance weight from spec §4.8.
var Weight = map[model.GateKind]float64{
	model.GateAvoidLoggingSecrets: 2.0,
	model.GateErrorLogs:           1.8,
	model.GateStructuredLogs:      1.6,
	model.GateAuditTrail:          1.5,
	model.GateAutomatedTests:      1.4,
	model.GateRetryLogic:          1.3,
	model.GateCircuitBreakers:     1.3,
	model.GateTimeouts:            1.2,
	model.GateHTTPCodes:           1.2,
	model.GateCorrelationID:       1.1,
	model.GateLogAPICalls:         1.1,
	model.GateThrottling:          1.0,
	model.GateUIErrors:            1.0,
	model.GateUIErrorTools:        1.0,
	model.GateLogBackgroundJobs:   0.9,
}

// QualityMultiplier buckets a quality_score into the multiplier spec §4.8
// names, rewarding gates with especially high-quality evidence and
// discounting gates scraping by on bare coverage.
func QualityMultiplier(quality float64) float64 {
	switch {
	case quality >= 90:
		return 1.0
	case quality >= 80:
		return 0.9
	case quality >= 70:
		return 0.8
	case quality >= 60:
		return 0.6
	default:
		return 0.4
	}
}

// FinalScore computes base = 0.7*coverage + 0.3*quality, then
// final = min(100, base * weight * quality_multiplier).
func FinalScore(gate model.GateKind, coverage, quality float64) float64 {
	base := 0.7*coverage + 0.3*quality
	w := Weight[gate]
	if w == 0 {
		w = 1.0
	}
	final := base * w * QualityMultiplier(quality)
	if final > 100 {
		return 100
	}
	return final
}

// Overall computes the weighted mean of final scores over applicable gates
// (PASS/WARNING/FAIL/FAILED), using the same weight table. Zero applicable
// gates scores 0.
func Overall(scores []*model.GateScore) float64 {
	var weightedSum, weightSum float64
	for _, s := range scores {
		switch s.Status {
		case model.StatusPass, model.StatusWarning, model.StatusFail, model.StatusFailed:
			w := Weight[s.Gate]
			if w == 0 {
				w = 1.0
			}
			weightedSum += s.FinalScore * w
			weightSum += w
		}
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}
