package model

// GateKind enumerates the fifteen hard gates the engine evaluates.
type GateKind string

const (
	GateStructuredLogs       GateKind = "structured_logs"
	GateAvoidLoggingSecrets  GateKind = "avoid_logging_secrets"
	GateAuditTrail           GateKind = "audit_trail"
	GateCorrelationID        GateKind = "correlation_id"
	GateLogAPICalls          GateKind = "log_api_calls"
	GateLogBackgroundJobs    GateKind = "log_background_jobs"
	GateUIErrors             GateKind = "ui_errors"
	GateRetryLogic           GateKind = "retry_logic"
	GateTimeouts             GateKind = "timeouts"
	GateThrottling           GateKind = "throttling"
	GateCircuitBreakers      GateKind = "circuit_breakers"
	GateErrorLogs            GateKind = "error_logs"
	GateHTTPCodes            GateKind = "http_codes"
	GateUIErrorTools         GateKind = "ui_error_tools"
	GateAutomatedTests       GateKind = "automated_tests"
)

// Gates lists every gate kind in the engine's deterministic iteration order.
// ValidationResult.GateScores is always emitted in this order (spec §5).
var Gates = []GateKind{
	GateStructuredLogs,
	GateAvoidLoggingSecrets,
	GateAuditTrail,
	GateCorrelationID,
	GateLogAPICalls,
	GateLogBackgroundJobs,
	GateUIErrors,
	GateRetryLogic,
	GateTimeouts,
	GateThrottling,
	GateCircuitBreakers,
	GateErrorLogs,
	GateHTTPCodes,
	GateUIErrorTools,
	GateAutomatedTests,
}

// GateStatus is the outcome status of a gate after scoring and applicability
// have been applied.
type GateStatus string

const (
	StatusPass          GateStatus = "PASS"
	StatusWarning       GateStatus = "WARNING"
	StatusFail          GateStatus = "FAIL"
	StatusFailed        GateStatus = "FAILED"
	StatusNotApplicable GateStatus = "NOT_APPLICABLE"
	StatusUnsupported   GateStatus = "UNSUPPORTED"
)

// Severity buckets a piece of evidence by how serious it is.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// PriorityForSeverity returns the 1..10 priority that correlates
// monotonically with the severity bucket, per the Match invariant in spec §3.
func PriorityForSeverity(s Severity) int {
	switch s {
	case SeverityHigh:
		return 9
	case SeverityMedium:
		return 5
	case SeverityLow:
		return 2
	default:
		return 1
	}
}
