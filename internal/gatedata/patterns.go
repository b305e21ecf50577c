package gatedata

import (
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/patternmatch"
)

// Patterns returns the gate-specific pattern set for one language, grounded
// in codegates' per-gate, per-language regex tables (logging_validators.py,
// reliability_validators.py, error_validators.py, testing_validators.py).
// An empty slice means no validator pattern set exists for this
// (gate, language) pair.
func Patterns(gate model.GateKind, lang model.Language) []patternmatch.Pattern {
	byLang, ok := table[gate]
	if !ok {
		return nil
	}
	return byLang[lang]
}

var table = map[model.GateKind]map[model.Language][]patternmatch.Pattern{
	model.GateStructuredLogs: {
		model.LanguagePython: {
			{Name: "python_logging_call", Regex: `logger\.(info|warning|error|debug|critical)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
			{Name: "python_structlog", Regex: `structlog\.get_logger`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
			{Name: "python_json_log_field", Regex: `extra\s*=\s*\{`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
		},
		model.LanguageJava: {
			{Name: "java_slf4j_call", Regex: `log(ger)?\.(info|warn|error|debug)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
			{Name: "java_mdc", Regex: `MDC\.put\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
		},
		model.LanguageJavaScript: {
			{Name: "js_winston_log", Regex: `(winston|logger)\.(info|warn|error|debug)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
		},
		model.LanguageTypeScript: {
			{Name: "ts_logger_call", Regex: `(logger|this\.logger)\.(log|info|warn|error|debug)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
		},
		model.LanguageCSharp: {
			{Name: "csharp_ilogger", Regex: `_logger\.Log(Information|Warning|Error|Debug)\(`, PatternType: "logging", Category: "structured_logs", Severity: model.SeverityLow},
		},
	},
	model.GateAvoidLoggingSecrets: {
		model.LanguagePython: {
			{Name: "py_log_password", Regex: `log(ger)?\.\w+\([^)]*password`, PatternType: "secret_leak", Category: "Credentials", Severity: model.SeverityHigh},
			{Name: "py_log_token", Regex: `log(ger)?\.\w+\([^)]*(token|api_key|secret)`, PatternType: "secret_leak", Category: "API-keys", Severity: model.SeverityHigh},
		},
		model.LanguageJava: {
			{Name: "java_log_password", Regex: `log(ger)?\.\w+\([^)]*password`, PatternType: "secret_leak", Category: "Credentials", Severity: model.SeverityHigh},
			{Name: "java_log_token", Regex: `log(ger)?\.\w+\([^)]*(token|apiKey|secret)`, PatternType: "secret_leak", Category: "API-keys", Severity: model.SeverityHigh},
		},
		model.LanguageJavaScript: {
			{Name: "js_console_password", Regex: `console\.\w+\([^)]*password`, PatternType: "secret_leak", Category: "Credentials", Severity: model.SeverityHigh},
		},
		model.LanguageTypeScript: {
			{Name: "ts_console_secret", Regex: `console\.\w+\([^)]*(token|secret|apiKey)`, PatternType: "secret_leak", Category: "API-keys", Severity: model.SeverityHigh},
		},
		model.LanguageCSharp: {
			{Name: "csharp_log_password", Regex: `_logger\.\w+\([^)]*[Pp]assword`, PatternType: "secret_leak", Category: "Credentials", Severity: model.SeverityHigh},
		},
	},
	model.GateAuditTrail: {
		model.LanguagePython: {{Name: "py_audit_log", Regex: `audit_log|AuditLog|audit_trail`, PatternType: "audit", Category: "audit_trail", Severity: model.SeverityMedium}},
		model.LanguageJava:   {{Name: "java_audit_log", Regex: `AuditLog|audit_log|@Audited`, PatternType: "audit", Category: "audit_trail", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_audit_log", Regex: `auditLog|audit_log`, PatternType: "audit", Category: "audit_trail", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_audit_log", Regex: `auditLog|audit_log`, PatternType: "audit", Category: "audit_trail", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_audit_log", Regex: `AuditLog|AuditTrail`, PatternType: "audit", Category: "audit_trail", Severity: model.SeverityMedium}},
	},
	model.GateCorrelationID: {
		model.LanguagePython:     {{Name: "py_correlation_id", Regex: `correlation_id|request_id|trace_id`, PatternType: "correlation", Category: "correlation_id", Severity: model.SeverityLow}},
		model.LanguageJava:       {{Name: "java_correlation_id", Regex: `correlationId|CorrelationId|X-Correlation-Id`, PatternType: "correlation", Category: "correlation_id", Severity: model.SeverityLow}},
		model.LanguageJavaScript: {{Name: "js_correlation_id", Regex: `correlationId|x-correlation-id`, PatternType: "correlation", Category: "correlation_id", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_correlation_id", Regex: `correlationId|x-correlation-id`, PatternType: "correlation", Category: "correlation_id", Severity: model.SeverityLow}},
		model.LanguageCSharp:     {{Name: "csharp_correlation_id", Regex: `CorrelationId|X-Correlation-Id`, PatternType: "correlation", Category: "correlation_id", Severity: model.SeverityLow}},
	},
	model.GateLogAPICalls: {
		model.LanguagePython:     {{Name: "py_api_log", Regex: `log(ger)?\.\w+\([^)]*(request|response|endpoint)`, PatternType: "logging", Category: "log_api_calls", Severity: model.SeverityLow}},
		model.LanguageJava:       {{Name: "java_api_log", Regex: `log(ger)?\.\w+\([^)]*(request|response)`, PatternType: "logging", Category: "log_api_calls", Severity: model.SeverityLow}},
		model.LanguageJavaScript: {{Name: "js_api_log", Regex: `(logger|console)\.\w+\([^)]*(req|res|request|response)`, PatternType: "logging", Category: "log_api_calls", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_api_log", Regex: `logger\.\w+\([^)]*(req|res|request|response)`, PatternType: "logging", Category: "log_api_calls", Severity: model.SeverityLow}},
		model.LanguageCSharp:     {{Name: "csharp_api_log", Regex: `_logger\.\w+\([^)]*(request|response)`, PatternType: "logging", Category: "log_api_calls", Severity: model.SeverityLow}},
	},
	model.GateLogBackgroundJobs: {
		model.LanguagePython:     {{Name: "py_job_log", Regex: `celery|@task|@shared_task`, PatternType: "background", Category: "log_background_jobs", Severity: model.SeverityLow}},
		model.LanguageJava:       {{Name: "java_job_log", Regex: `@Scheduled|Quartz|JobExecutionContext`, PatternType: "background", Category: "log_background_jobs", Severity: model.SeverityLow}},
		model.LanguageJavaScript: {{Name: "js_job_log", Regex: `bull|bree|node-cron|setInterval`, PatternType: "background", Category: "log_background_jobs", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_job_log", Regex: `@Cron\(|bull|bree`, PatternType: "background", Category: "log_background_jobs", Severity: model.SeverityLow}},
		model.LanguageCSharp:     {{Name: "csharp_job_log", Regex: `IHostedService|BackgroundService|Hangfire`, PatternType: "background", Category: "log_background_jobs", Severity: model.SeverityLow}},
	},
	model.GateUIErrors: {
		model.LanguageJavaScript: {{Name: "js_ui_error", Regex: `componentDidCatch|ErrorBoundary|\.catch\(`, PatternType: "ui_error", Category: "ui_errors", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_ui_error", Regex: `ErrorBoundary|\.catch\(`, PatternType: "ui_error", Category: "ui_errors", Severity: model.SeverityMedium}},
	},
	model.GateRetryLogic: {
		model.LanguagePython:     {{Name: "py_retry", Regex: `@retry|tenacity|backoff\.on_exception`, PatternType: "reliability", Category: "retry_logic", Severity: model.SeverityMedium}},
		model.LanguageJava:       {{Name: "java_retry", Regex: `@Retryable|Resilience4j|RetryTemplate`, PatternType: "reliability", Category: "retry_logic", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_retry", Regex: `retry\(|p-retry|axios-retry`, PatternType: "reliability", Category: "retry_logic", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_retry", Regex: `retry\(|p-retry`, PatternType: "reliability", Category: "retry_logic", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_retry", Regex: `Polly\.Retry|RetryPolicy`, PatternType: "reliability", Category: "retry_logic", Severity: model.SeverityMedium}},
	},
	model.GateTimeouts: {
		model.LanguagePython:     {{Name: "py_timeout", Regex: `timeout\s*=\s*\d`, PatternType: "reliability", Category: "timeouts", Severity: model.SeverityMedium}},
		model.LanguageJava:       {{Name: "java_timeout", Regex: `setConnectTimeout|setReadTimeout|\.timeout\(`, PatternType: "reliability", Category: "timeouts", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_timeout", Regex: `timeout\s*:\s*\d|setTimeout\(`, PatternType: "reliability", Category: "timeouts", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_timeout", Regex: `timeout\s*:\s*\d`, PatternType: "reliability", Category: "timeouts", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_timeout", Regex: `\.Timeout\s*=|CancellationTokenSource\(`, PatternType: "reliability", Category: "timeouts", Severity: model.SeverityMedium}},
	},
	model.GateThrottling: {
		model.LanguagePython:     {{Name: "py_throttle", Regex: `ratelimit|Limiter\(|slowapi`, PatternType: "reliability", Category: "throttling", Severity: model.SeverityMedium}},
		model.LanguageJava:       {{Name: "java_throttle", Regex: `RateLimiter|Bucket4j`, PatternType: "reliability", Category: "throttling", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_throttle", Regex: `express-rate-limit|rateLimit\(`, PatternType: "reliability", Category: "throttling", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_throttle", Regex: `ThrottlerGuard|rateLimit\(`, PatternType: "reliability", Category: "throttling", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_throttle", Regex: `AspNetCoreRateLimit|RateLimiter`, PatternType: "reliability", Category: "throttling", Severity: model.SeverityMedium}},
	},
	model.GateCircuitBreakers: {
		model.LanguagePython:     {{Name: "py_circuit", Regex: `pybreaker|CircuitBreaker\(`, PatternType: "reliability", Category: "circuit_breakers", Severity: model.SeverityMedium}},
		model.LanguageJava:       {{Name: "java_circuit", Regex: `@CircuitBreaker|Hystrix|Resilience4j`, PatternType: "reliability", Category: "circuit_breakers", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_circuit", Regex: `opossum|CircuitBreaker\(`, PatternType: "reliability", Category: "circuit_breakers", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_circuit", Regex: `opossum|CircuitBreaker`, PatternType: "reliability", Category: "circuit_breakers", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_circuit", Regex: `Polly\.CircuitBreaker`, PatternType: "reliability", Category: "circuit_breakers", Severity: model.SeverityMedium}},
	},
	model.GateErrorLogs: {
		model.LanguagePython:     {{Name: "py_error_log", Regex: `log(ger)?\.(error|exception|critical)\(`, PatternType: "logging", Category: "error_logs", Severity: model.SeverityMedium}},
		model.LanguageJava:       {{Name: "java_error_log", Regex: `log(ger)?\.(error)\(`, PatternType: "logging", Category: "error_logs", Severity: model.SeverityMedium}},
		model.LanguageJavaScript: {{Name: "js_error_log", Regex: `(logger|console)\.error\(`, PatternType: "logging", Category: "error_logs", Severity: model.SeverityMedium}},
		model.LanguageTypeScript: {{Name: "ts_error_log", Regex: `logger\.error\(`, PatternType: "logging", Category: "error_logs", Severity: model.SeverityMedium}},
		model.LanguageCSharp:     {{Name: "csharp_error_log", Regex: `_logger\.LogError\(`, PatternType: "logging", Category: "error_logs", Severity: model.SeverityMedium}},
	},
	model.GateHTTPCodes: {
		model.LanguagePython:     {{Name: "py_http_code", Regex: `status_code\s*=\s*\d{3}|HTTPStatus\.\w+`, PatternType: "http", Category: "http_codes", Severity: model.SeverityLow}},
		model.LanguageJava:       {{Name: "java_http_code", Regex: `HttpStatus\.\w+|ResponseEntity\.status\(`, PatternType: "http", Category: "http_codes", Severity: model.SeverityLow}},
		model.LanguageJavaScript: {{Name: "js_http_code", Regex: `res\.status\(\d{3}\)`, PatternType: "http", Category: "http_codes", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_http_code", Regex: `res\.status\(\d{3}\)|@HttpCode\(`, PatternType: "http", Category: "http_codes", Severity: model.SeverityLow}},
		model.LanguageCSharp:     {{Name: "csharp_http_code", Regex: `StatusCode\(\d{3}\)|HttpStatusCode\.\w+`, PatternType: "http", Category: "http_codes", Severity: model.SeverityLow}},
	},
	model.GateUIErrorTools: {
		model.LanguageJavaScript: {{Name: "js_error_tool", Regex: `Sentry\.init|@sentry/|bugsnag`, PatternType: "ui_error_tools", Category: "ui_error_tools", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_error_tool", Regex: `Sentry\.init|@sentry/`, PatternType: "ui_error_tools", Category: "ui_error_tools", Severity: model.SeverityLow}},
	},
	model.GateAutomatedTests: {
		model.LanguagePython:     {{Name: "py_test_func", Regex: `def\s+test_\w+\(|class\s+Test\w+\(`, PatternType: "testing", Category: "automated_tests", Severity: model.SeverityLow}},
		model.LanguageJava:       {{Name: "java_test_annotation", Regex: `@Test\b`, PatternType: "testing", Category: "automated_tests", Severity: model.SeverityLow}},
		model.LanguageJavaScript: {{Name: "js_test_block", Regex: `describe\(|it\(|test\(`, PatternType: "testing", Category: "automated_tests", Severity: model.SeverityLow}},
		model.LanguageTypeScript: {{Name: "ts_test_block", Regex: `describe\(|it\(|test\(`, PatternType: "testing", Category: "automated_tests", Severity: model.SeverityLow}},
		model.LanguageCSharp:     {{Name: "csharp_test_attribute", Regex: `\[Fact\]|\[Test\]|\[TestMethod\]`, PatternType: "testing", Category: "automated_tests", Severity: model.SeverityLow}},
	},
}
