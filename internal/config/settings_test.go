package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/model"
)

func TestApplyOverridesRejectsUnknownKey(t *testing.T) {
	_, err := ApplyOverrides(Default(), map[string]any{"not_a_real_option": true})
	require.Error(t, err)
	assert.ErrorIs(t, err, engineerr.ErrInvalidInput)
}

func TestApplyOverridesTypeCoercion(t *testing.T) {
	overrides := map[string]any{
		"languages":               []any{"Python", "JAVA"},
		"max_file_size":           float64(1024),
		"follow_symlinks":         true,
		"min_coverage_threshold":  float64(70),
		"scan_deadline":           "5m",
		"max_concurrent_scans":    float64(8),
		"case_sensitive_patterns": true,
	}

	settings, err := ApplyOverrides(Default(), overrides)
	require.NoError(t, err)

	assert.Equal(t, []model.Language{model.LanguagePython, model.LanguageJava}, settings.Languages)
	assert.Equal(t, int64(1024), settings.MaxFileSize)
	assert.True(t, settings.FollowSymlinks)
	assert.Equal(t, 70, settings.MinCoverageThreshold)
	assert.Equal(t, 5*time.Minute, settings.ScanDeadline)
	assert.Equal(t, 8, settings.MaxConcurrentScans)
	assert.True(t, settings.CaseSensitivePatterns)
}

func TestApplyOverridesRejectsWrongType(t *testing.T) {
	_, err := ApplyOverrides(Default(), map[string]any{"follow_symlinks": "yes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, engineerr.ErrInvalidInput)
}

func TestApplyOverridesLeavesBaseUntouchedOnError(t *testing.T) {
	base := Default()
	base.MaxConcurrentScans = 4

	_, err := ApplyOverrides(base, map[string]any{"unknown_key": 1})
	require.Error(t, err)
	assert.Equal(t, 4, base.MaxConcurrentScans)
}
