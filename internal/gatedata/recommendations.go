package gatedata

import "github.com/hardgate/scanengine/internal/model"

// implementationLevel buckets a gate's coverage into the three tiers spec
// §4.5 names: none, partial, full.
type implementationLevel int

const (
	levelNone implementationLevel = iota
	levelPartial
	levelFull
)

func levelFor(coverage float64) implementationLevel {
	switch {
	case coverage >= 80:
		return levelFull
	case coverage > 0:
		return levelPartial
	default:
		return levelNone
	}
}

var recommendationText = map[model.GateKind]map[implementationLevel]string{
	model.GateStructuredLogs: {
		levelNone:    "Adopt a structured logging library and log key lifecycle events with consistent fields.",
		levelPartial: "Extend structured logging coverage to remaining modules; include correlation fields consistently.",
		levelFull:    "Structured logging coverage looks solid; keep field naming consistent across new modules.",
	},
	model.GateAvoidLoggingSecrets: {
		levelNone:    "No obvious secret-logging violations found; keep reviewing new log statements for credentials.",
		levelPartial: "Remove password/token/secret values from log statements; mask or omit them instead.",
		levelFull:    "Multiple log statements appear to include credentials; audit and redact immediately.",
	},
	model.GateAuditTrail: {
		levelNone:    "Add an audit trail for business-critical state changes (who did what, when).",
		levelPartial: "Extend audit logging to cover remaining business-critical operations.",
		levelFull:    "Audit trail coverage looks adequate across business-critical paths.",
	},
	model.GateCorrelationID: {
		levelNone:    "Propagate a correlation/request id across API boundaries and into logs.",
		levelPartial: "Extend correlation id propagation to the remaining API surface.",
		levelFull:    "Correlation id propagation is present across the API surface.",
	},
	model.GateLogAPICalls: {
		levelNone:    "Log inbound and outbound API calls with method, path, and status.",
		levelPartial: "Extend API call logging to the remaining endpoints/clients.",
		levelFull:    "API call logging coverage looks adequate.",
	},
	model.GateLogBackgroundJobs: {
		levelNone:    "Log background job start/completion/failure with identifying context.",
		levelPartial: "Extend background job logging to the remaining job types.",
		levelFull:    "Background job logging coverage looks adequate.",
	},
	model.GateUIErrors: {
		levelNone:    "Add error boundaries / catch blocks around user-facing UI interactions.",
		levelPartial: "Extend UI error handling coverage to remaining components.",
		levelFull:    "UI error handling coverage looks adequate.",
	},
	model.GateRetryLogic: {
		levelNone:    "Add retry logic (with backoff) around calls to external dependencies.",
		levelPartial: "Extend retry coverage to the remaining external-dependency call sites.",
		levelFull:    "Retry logic coverage over external dependencies looks adequate.",
	},
	model.GateTimeouts: {
		levelNone:    "Set explicit connect/read timeouts on I/O and external calls.",
		levelPartial: "Extend explicit timeout configuration to the remaining I/O call sites.",
		levelFull:    "Timeout configuration coverage looks adequate.",
	},
	model.GateThrottling: {
		levelNone:    "Add rate limiting/throttling to public API endpoints.",
		levelPartial: "Extend throttling coverage to the remaining public endpoints.",
		levelFull:    "Throttling coverage over the API surface looks adequate.",
	},
	model.GateCircuitBreakers: {
		levelNone:    "Add circuit breakers around calls to unreliable downstream services.",
		levelPartial: "Extend circuit breaker coverage to remaining downstream dependencies.",
		levelFull:    "Circuit breaker coverage over downstream dependencies looks adequate.",
	},
	model.GateErrorLogs: {
		levelNone:    "Log exceptions/errors at the point of handling with enough context to diagnose them.",
		levelPartial: "Extend error logging coverage to remaining business-critical paths.",
		levelFull:    "Error logging coverage looks adequate.",
	},
	model.GateHTTPCodes: {
		levelNone:    "Return specific HTTP status codes rather than defaulting to 200/500.",
		levelPartial: "Extend precise HTTP status code usage to the remaining endpoints.",
		levelFull:    "HTTP status code usage looks adequately specific.",
	},
	model.GateUIErrorTools: {
		levelNone:    "Integrate a client-side error monitoring tool (e.g. Sentry) for the UI.",
		levelPartial: "Verify the error monitoring tool is initialized across all UI entry points.",
		levelFull:    "Client-side error monitoring integration looks present.",
	},
	model.GateAutomatedTests: {
		levelNone:    "Add automated tests for core business logic.",
		levelPartial: "Extend automated test coverage to remaining non-test source files.",
		levelFull:    "Automated test coverage looks adequate relative to source size.",
	},
}

// Recommendation returns the fixed recommendation string for this gate at
// the implementation tier the given coverage falls into.
func Recommendation(gate model.GateKind, coverage float64) string {
	tiers, ok := recommendationText[gate]
	if !ok {
		return "Review implementation coverage for this gate."
	}
	level := levelFor(coverage)
	if gate == model.GateAvoidLoggingSecrets {
		// Coverage for this negative gate is 100 minus 10 per violation, and
		// its tiers are keyed by violation count: none, one, or several.
		switch {
		case coverage >= 100:
			level = levelNone
		case coverage >= 90:
			level = levelPartial
		default:
			level = levelFull
		}
	}
	text, ok := tiers[level]
	if !ok {
		return "Review implementation coverage for this gate."
	}
	return text
}
