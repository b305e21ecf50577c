package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/model"
)

// Settings is the typed configuration object injected into a scan, covering
// every option in the option table of spec §6.4.
type Settings struct {
	RootPath string
	Languages []model.Language

	IncludeGlobs []string
	ExcludeGlobs []string

	MaxFileSize int64

	FollowSymlinks bool

	MinCoverageThreshold int
	MinQualityThreshold  int

	ScanDeadline time.Duration
	LLMDeadline  time.Duration

	MaxConcurrentScans int
	PerScanWorkers     int

	CaseSensitivePatterns bool
}

// Default returns the engine's baseline settings before any per-request
// overrides are layered on.
func Default() Settings {
	return Settings{
		MaxFileSize:           5 * 1024 * 1024,
		FollowSymlinks:        false,
		MinCoverageThreshold:  0,
		MinQualityThreshold:   0,
		ScanDeadline:          10 * time.Minute,
		LLMDeadline:           20 * time.Second,
		MaxConcurrentScans:    4,
		PerScanWorkers:        8,
		CaseSensitivePatterns: false,
	}
}

// knownOptions is the exhaustive set of option keys a submit-time overrides
// map is allowed to name. Anything else is rejected per §6.4's "unknown
// options MUST be rejected at submit time" rule.
var knownOptions = map[string]bool{
	"root_path":               true,
	"languages":                true,
	"include_globs":            true,
	"exclude_globs":            true,
	"max_file_size":            true,
	"follow_symlinks":          true,
	"min_coverage_threshold":   true,
	"min_quality_threshold":    true,
	"scan_deadline":            true,
	"llm_deadline":             true,
	"max_concurrent_scans":     true,
	"per_scan_workers":         true,
	"case_sensitive_patterns":  true,
}

// ApplyOverrides layers a submit-time overrides map onto base, rejecting any
// key not in knownOptions. Values are the loosely-typed form a JSON request
// body would decode into (string, []string, bool, float64/int).
func ApplyOverrides(base Settings, overrides map[string]any) (Settings, error) {
	out := base
	for key, raw := range overrides {
		if !knownOptions[key] {
			return Settings{}, fmt.Errorf("%w: unknown option %q", engineerr.ErrInvalidInput, key)
		}
		if err := applyOne(&out, key, raw); err != nil {
			return Settings{}, fmt.Errorf("%w: option %q: %v", engineerr.ErrInvalidInput, key, err)
		}
	}
	return out, nil
}

func applyOne(s *Settings, key string, raw any) error {
	switch key {
	case "root_path":
		v, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string")
		}
		s.RootPath = v
	case "languages":
		langs, err := toStringSlice(raw)
		if err != nil {
			return err
		}
		s.Languages = s.Languages[:0]
		for _, l := range langs {
			s.Languages = append(s.Languages, model.Language(strings.ToLower(l)))
		}
	case "include_globs":
		globs, err := toStringSlice(raw)
		if err != nil {
			return err
		}
		s.IncludeGlobs = globs
	case "exclude_globs":
		globs, err := toStringSlice(raw)
		if err != nil {
			return err
		}
		s.ExcludeGlobs = globs
	case "max_file_size":
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		s.MaxFileSize = n
	case "follow_symlinks":
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool")
		}
		s.FollowSymlinks = v
	case "min_coverage_threshold":
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		s.MinCoverageThreshold = int(n)
	case "min_quality_threshold":
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		s.MinQualityThreshold = int(n)
	case "scan_deadline":
		d, err := toDuration(raw)
		if err != nil {
			return err
		}
		s.ScanDeadline = d
	case "llm_deadline":
		d, err := toDuration(raw)
		if err != nil {
			return err
		}
		s.LLMDeadline = d
	case "max_concurrent_scans":
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		s.MaxConcurrentScans = int(n)
	case "per_scan_workers":
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		s.PerScanWorkers = int(n)
	case "case_sensitive_patterns":
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool")
		}
		s.CaseSensitivePatterns = v
	}
	return nil
}

func toStringSlice(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected array")
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, fmt.Errorf("expected array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func toInt64(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected integer")
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer")
	}
}

func toDuration(raw any) (time.Duration, error) {
	switch v := raw.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("expected duration string")
		}
		return d, nil
	case float64:
		return time.Duration(v) * time.Second, nil
	default:
		return 0, fmt.Errorf("expected duration")
	}
}
