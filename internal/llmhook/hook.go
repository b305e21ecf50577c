// Package llmhook implements the LLM Enhancement Hook (C10): a narrow,
// deadline-bounded, side-effect-free contract the orchestrator may call
// after merging a gate's per-language results and before scoring the gate,
// with concrete providers combined via the same
// fallback-chain pattern as qlp-hq-QLP's internal/llm FallbackClient.
package llmhook

import (
	"context"
	"time"

	"github.com/hardgate/scanengine/internal/model"
)

// EnhancementResult is everything a Hook call may contribute. A zero-value
// result (no enhanced score, nil recommendations/details/insights) is
// indistinguishable from "the hook was absent" and the orchestrator applies
// nothing.
type EnhancementResult struct {
	EnhancedQualityScore *float64
	Recommendations      []string
	ExtraDetails         []string
	SecurityInsights     []string
	TechnologyInsights   []string
}

// Hook enhances a gate's base analysis with narrative insight. It MUST be
// side-effect-free on the core data model: the orchestrator, not the hook,
// decides whether and how to apply the returned result.
type Hook interface {
	Enhance(ctx context.Context, gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) (EnhancementResult, error)
}

// NoOp is the default hook: absence is indistinguishable from an empty
// EnhancementResult, satisfying the "hook MUST be optional" requirement.
type NoOp struct{}

func (NoOp) Enhance(context.Context, model.GateKind, model.Language, map[string][]string, []*model.Match, []string) (EnhancementResult, error) {
	return EnhancementResult{}, nil
}

// WithDeadline wraps a Hook so that exceeding budget yields an empty
// EnhancementResult instead of blocking the caller, per the recommended 30s
// per-call time budget in spec §4.10.
func WithDeadline(h Hook, budget time.Duration) Hook {
	return &deadlineHook{inner: h, budget: budget}
}

type deadlineHook struct {
	inner  Hook
	budget time.Duration
}

func (d *deadlineHook) Enhance(ctx context.Context, gate model.GateKind, language model.Language, technologies map[string][]string, matches []*model.Match, baseRecommendations []string) (EnhancementResult, error) {
	budget := d.budget
	if budget <= 0 {
		budget = 30 * time.Second
	}
	cctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	type out struct {
		res EnhancementResult
		err error
	}
	ch := make(chan out, 1)
	go func() {
		res, err := d.inner.Enhance(cctx, gate, language, technologies, matches, baseRecommendations)
		ch <- out{res, err}
	}()

	select {
	case o := <-ch:
		if o.err != nil {
			return EnhancementResult{}, nil
		}
		return o.res, nil
	case <-cctx.Done():
		return EnhancementResult{}, nil
	}
}

// ShouldSkip implements the priority bypass rule: low-priority gates with
// very few matches may skip LLM enhancement entirely.
func ShouldSkip(gate model.GateKind, weight float64, matchCount int) bool {
	return weight < 1.1 && matchCount < 2
}
