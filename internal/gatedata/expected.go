package gatedata

import "github.com/hardgate/scanengine/internal/model"

// ExpectedCount implements the expected-count heuristic table from spec
// §4.5, grounded in codegates' BaseGateValidator._estimate_expected_count
// and each validator's _calculate_expected_count override. All heuristics
// are bounded >= 1 except avoid_logging_secrets, which is always 0 (a
// negative gate: any finding is a violation, not progress toward a target).
func ExpectedCount(gate model.GateKind, files []model.FileRecord, totalLines int) int {
	fileCount := len(files)

	switch gate {
	case model.GateAvoidLoggingSecrets:
		return 0
	case model.GateStructuredLogs:
		return atLeastOne(fileCount/2 + totalLines/100 + 3*Count(files, "service_files"))
	case model.GateAuditTrail:
		return max(2*Count(files, "business_files"), 5)
	case model.GateCorrelationID:
		return max(Count(files, "web_files"), 3)
	case model.GateLogAPICalls:
		return max(2*Count(files, "api_files"), 5)
	case model.GateLogBackgroundJobs:
		return max(2*Count(files, "job_files"), 3)
	case model.GateUIErrors:
		return max(Count(files, "ui_files")/2, 1)
	case model.GateRetryLogic:
		return atLeastOne(max(2*Count(files, "external_files"), fileCount/3))
	case model.GateTimeouts:
		return atLeastOne(max(2*Count(files, "io_files"), fileCount/4))
	case model.GateThrottling:
		return max(Count(files, "api_files")/3, 1)
	case model.GateCircuitBreakers:
		return max(Count(files, "service_files")/2, 1)
	case model.GateErrorLogs:
		return atLeastOne(max(2*Count(files, "business_files"), fileCount/3))
	case model.GateHTTPCodes:
		return max(3*Count(files, "api_files"), 5)
	case model.GateUIErrorTools:
		return 1
	case model.GateAutomatedTests:
		return atLeastOne(max(2*Count(files, "non_test_source_files"), fileCount/2))
	default:
		return 1
	}
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
