package model

// GateResult is the per-gate, per-language intermediate result produced by a
// single gate validator invocation, before C8 aggregates it across languages
// into a GateScore.
type GateResult struct {
	Gate            GateKind
	Language        Language
	Expected        int
	Found           int
	QualityScore    float64
	Details         []string
	Recommendations []string
	Technologies    map[string][]string
	Matches         []*Match
}
