package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	cases := []struct {
		name     string
		expected int
		found    int
		want     float64
	}{
		{"zero expected zero found is fully satisfied", 0, 0, 100},
		{"zero expected with one violation", 0, 1, 90},
		{"zero expected with many violations floors at zero", 0, 50, 0},
		{"found meets expected", 10, 10, 100},
		{"found exceeds expected caps at 100", 10, 20, 100},
		{"partial coverage", 10, 5, 50},
		{"no findings at all", 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Coverage(tc.expected, tc.found))
		})
	}
}

func TestStatusForScore(t *testing.T) {
	assert.Equal(t, StatusPass, StatusForScore(80))
	assert.Equal(t, StatusPass, StatusForScore(95))
	assert.Equal(t, StatusWarning, StatusForScore(60))
	assert.Equal(t, StatusWarning, StatusForScore(79.9))
	assert.Equal(t, StatusFail, StatusForScore(59.9))
	assert.Equal(t, StatusFail, StatusForScore(0))
}

func TestCountStatuses(t *testing.T) {
	scores := []*GateScore{
		{Status: StatusPass},
		{Status: StatusPass},
		{Status: StatusWarning},
		{Status: StatusFail},
		{Status: StatusFailed},
		{Status: StatusNotApplicable},
		{Status: StatusUnsupported},
	}
	passed, warnings, failed := CountStatuses(scores)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warnings)
	assert.Equal(t, 2, failed)
}
