package gatedata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/scoring"
)

func TestQualityScoreAvoidLoggingSecretsCleanRepoIsPerfect(t *testing.T) {
	assert.Equal(t, 100.0, QualityScore(model.GateAvoidLoggingSecrets, nil, nil))
}

func TestQualityScoreAvoidLoggingSecretsPenalizesViolations(t *testing.T) {
	matches := []*model.Match{{}, {}, {}}
	assert.Equal(t, 70.0, QualityScore(model.GateAvoidLoggingSecrets, matches, nil))
}

func TestQualityScoreAvoidLoggingSecretsFloorsAtZero(t *testing.T) {
	matches := make([]*model.Match, 15)
	for i := range matches {
		matches[i] = &model.Match{}
	}
	assert.Equal(t, 0.0, QualityScore(model.GateAvoidLoggingSecrets, matches, nil))
}

func TestQualityScorePositiveGateStillZeroOnNoMatches(t *testing.T) {
	assert.Equal(t, 0.0, QualityScore(model.GateStructuredLogs, nil, nil))
}

// TestCleanRepoPassesAvoidLoggingSecrets locks in spec scenario 1: a clean
// repository (no secret-logging matches) must score a PASS for the negative
// gate, not a FAIL from the additive quality-bonus vocabulary meant for
// positive gates.
func TestCleanRepoPassesAvoidLoggingSecrets(t *testing.T) {
	quality := QualityScore(model.GateAvoidLoggingSecrets, nil, nil)
	coverage := model.Coverage(0, 0)
	final := scoring.FinalScore(model.GateAvoidLoggingSecrets, coverage, quality)

	assert.Equal(t, 100.0, final)
	assert.Equal(t, model.StatusPass, model.StatusForScore(final))
}
