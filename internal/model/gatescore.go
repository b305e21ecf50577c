package model

// GateScore is the per-gate result aggregated across every language present
// in the scan. It is the unit ValidationResult carries one of per gate, in
// the fixed order of Gates.
type GateScore struct {
	Gate            GateKind
	Expected        int
	Found           int
	Coverage        float64
	QualityScore    float64
	FinalScore      float64
	Status          GateStatus
	Details         []string
	Recommendations []string
	Matches         []*Match
}

// Coverage applies the coverage rule from the data model: a gate with zero
// expected occurrences and zero findings is a perfectly-satisfied negative
// gate (100); zero expected with findings present is penalized ten points
// per finding (used by avoid_logging_secrets, where any hit is a violation);
// otherwise coverage is the found/expected ratio, capped at 100.
func Coverage(expected, found int) float64 {
	switch {
	case expected == 0 && found == 0:
		return 100
	case expected == 0 && found > 0:
		c := 100 - 10*float64(found)
		if c < 0 {
			return 0
		}
		return c
	default:
		c := 100 * float64(found) / float64(expected)
		if c > 100 {
			return 100
		}
		return c
	}
}

// StatusForScore derives PASS/WARNING/FAIL from a final score. It never
// returns NOT_APPLICABLE, FAILED or UNSUPPORTED — those are set by the
// Applicability Engine, the orchestrator's deadline, error and panic
// handling, and the gate factory respectively, all of which take
// precedence over this rule.
func StatusForScore(final float64) GateStatus {
	switch {
	case final >= 80:
		return StatusPass
	case final >= 60:
		return StatusWarning
	default:
		return StatusFail
	}
}
