// Package gatedata holds the per-(gate, language) pattern tables,
// expected-count heuristics, quality-bonus rules and recommendation tiers
// that the gate validator skeleton in internal/gates is parameterized by.
// Tables are grounded in codegates' gate_validators/*.py, which keep the
// same kind of per-language regex and classification tables.
package gatedata

import (
	"strings"

	"github.com/hardgate/scanengine/internal/model"
)

// classifier buckets FileRecords by filename keyword, matching the
// classifications spec §4.5 names: business, service, api, io, external,
// job, ui, non_test_source.
type classifier func(path string) bool

var classifiers = map[string]classifier{
	"business_files":        keywordClassifier("controller", "service", "handler", "usecase", "domain"),
	"service_files":         keywordClassifier("service", "server", "daemon"),
	"api_files":             keywordClassifier("controller", "router", "route", "api", "handler", "endpoint"),
	"web_files":             keywordClassifier("controller", "router", "route", "api", "handler", "endpoint", "middleware", "filter"),
	"io_files":              keywordClassifier("client", "repository", "dao", "store", "gateway", "adapter"),
	"external_files":        keywordClassifier("client", "gateway", "adapter", "integration", "connector"),
	"job_files":             keywordClassifier("worker", "job", "task", "scheduler", "cron", "consumer"),
	"ui_files":              func(path string) bool { return hasExt(path, "html", "css", "jsx", "tsx", "vue", "svelte") },
	"non_test_source_files": func(path string) bool { return !isTestFile(path) },
}

func keywordClassifier(keywords ...string) classifier {
	return func(path string) bool {
		lower := strings.ToLower(path)
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

func hasExt(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, e := range exts {
		if strings.HasSuffix(lower, "."+e) {
			return true
		}
	}
	return false
}

func isTestFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "test") || strings.Contains(lower, "spec") || strings.Contains(lower, "_test.")
}

// Count returns how many of the given files the named classification
// matches. Unknown classification names count nothing.
func Count(files []model.FileRecord, classification string) int {
	c, ok := classifiers[classification]
	if !ok {
		return 0
	}
	n := 0
	for _, f := range files {
		if c(f.Path) {
			n++
		}
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
