package llmhook

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/model"
)

type fakeHook struct {
	res   EnhancementResult
	err   error
	delay time.Duration
}

func (f fakeHook) Enhance(ctx context.Context, _ model.GateKind, _ model.Language, _ map[string][]string, _ []*model.Match, _ []string) (EnhancementResult, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return EnhancementResult{}, ctx.Err()
		}
	}
	return f.res, f.err
}

func TestNoOpReturnsEmptyResult(t *testing.T) {
	res, err := (NoOp{}).Enhance(context.Background(), model.GateStructuredLogs, model.LanguagePython, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, EnhancementResult{}, res)
}

func TestFallbackReturnsFirstSuccess(t *testing.T) {
	score := 90.0
	f := NewFallback(
		fakeHook{err: errors.New("boom")},
		fakeHook{res: EnhancementResult{EnhancedQualityScore: &score}},
	)
	res, err := f.Enhance(context.Background(), model.GateStructuredLogs, model.LanguagePython, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, res.EnhancedQualityScore)
	assert.Equal(t, 90.0, *res.EnhancedQualityScore)
}

func TestFallbackReturnsLastErrorWhenAllFail(t *testing.T) {
	f := NewFallback(fakeHook{err: errors.New("one")}, fakeHook{err: errors.New("two")})
	_, err := f.Enhance(context.Background(), model.GateStructuredLogs, model.LanguagePython, nil, nil, nil)
	assert.EqualError(t, err, "two")
}

func TestWithDeadlineReturnsEmptyOnTimeout(t *testing.T) {
	h := WithDeadline(fakeHook{delay: 50 * time.Millisecond}, 5*time.Millisecond)
	res, err := h.Enhance(context.Background(), model.GateStructuredLogs, model.LanguagePython, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, EnhancementResult{}, res)
}

func TestWithDeadlinePassesThroughFastResult(t *testing.T) {
	score := 75.0
	h := WithDeadline(fakeHook{res: EnhancementResult{EnhancedQualityScore: &score}}, time.Second)
	res, err := h.Enhance(context.Background(), model.GateStructuredLogs, model.LanguagePython, nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, res.EnhancedQualityScore)
	assert.Equal(t, 75.0, *res.EnhancedQualityScore)
}

func TestShouldSkipLowWeightFewMatches(t *testing.T) {
	assert.True(t, ShouldSkip(model.GateStructuredLogs, 1.0, 1))
	assert.False(t, ShouldSkip(model.GateStructuredLogs, 1.0, 2))
	assert.False(t, ShouldSkip(model.GateStructuredLogs, 1.5, 0))
}
