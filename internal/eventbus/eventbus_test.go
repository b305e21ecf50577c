package eventbus

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpPublishDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		NoOp{}.Publish(context.Background(), Event{Type: EventScanCompleted, ScanID: "s-1"})
	})
}

func TestEventMarshalsOmitsZeroScoreAndMessage(t *testing.T) {
	data, err := json.Marshal(Event{Type: EventScanSubmitted, ScanID: "s-1", Timestamp: time.Unix(0, 0)})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "score")
	assert.NotContains(t, decoded, "message")
	assert.Equal(t, "scan.submitted", decoded["type"])
}
