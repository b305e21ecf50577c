package scanservice

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/eventbus"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/reposource"
	"github.com/hardgate/scanengine/internal/scanstore"
)

func writeScanFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.py"),
		[]byte("def handler():\n    logger.info('starting')\n    return\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("flask\n"), 0o644))
	return root
}

func waitForTerminal(t *testing.T, svc *Service, scanID string) *model.ScanRecord {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		rec, err := svc.Status(context.Background(), scanID)
		require.NoError(t, err)
		if rec.IsTerminal() {
			return rec
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("scan did not reach a terminal state in time")
	return nil
}

func TestSubmitRunsToCompletion(t *testing.T) {
	root := writeScanFixture(t)

	svc := New(scanstore.NewMemory(), reposource.Local{}, llmhook.NoOp{}, eventbus.NoOp{}, config.Default())
	scanID, err := svc.Submit(context.Background(), model.ScanInput{RepositoryURL: root}, nil)
	require.NoError(t, err)

	rec := waitForTerminal(t, svc, scanID)
	require.Equal(t, model.ScanCompleted, rec.Status)

	result, err := svc.Result(context.Background(), scanID)
	require.NoError(t, err)
	assert.Equal(t, model.LanguagePython, result.PrimaryLanguage)
}

func TestSubmitRejectsUnknownOverrideKey(t *testing.T) {
	svc := New(scanstore.NewMemory(), reposource.Local{}, llmhook.NoOp{}, eventbus.NoOp{}, config.Default())
	_, err := svc.Submit(context.Background(), model.ScanInput{RepositoryURL: "/tmp"}, map[string]any{"bogus": true})
	assert.Error(t, err)
}

func TestStatusUnknownScanIsNotFound(t *testing.T) {
	svc := New(scanstore.NewMemory(), reposource.Local{}, llmhook.NoOp{}, eventbus.NoOp{}, config.Default())
	_, err := svc.Status(context.Background(), "never-submitted")
	assert.ErrorIs(t, err, ErrNotFound)
}

// slowSource holds the Scan Service's single concurrency slot for delay,
// so a second submission can be deterministically cancelled while still
// queued on the semaphore rather than racing a fast scan to completion.
type slowSource struct {
	delay time.Duration
}

func (s slowSource) Fetch(ctx context.Context, url, _ string, _ string) (string, error) {
	select {
	case <-time.After(s.delay):
		return url, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestCancelMarksQueuedScanFailed(t *testing.T) {
	root := writeScanFixture(t)

	base := config.Default()
	base.MaxConcurrentScans = 1

	svc := New(scanstore.NewMemory(), slowSource{delay: 500 * time.Millisecond}, llmhook.NoOp{}, eventbus.NoOp{}, base)

	firstID, err := svc.Submit(context.Background(), model.ScanInput{RepositoryURL: root}, nil)
	require.NoError(t, err)

	secondID, err := svc.Submit(context.Background(), model.ScanInput{RepositoryURL: root}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), secondID))

	rec, err := svc.Status(context.Background(), secondID)
	require.NoError(t, err)
	assert.Equal(t, model.ScanFailed, rec.Status)
	assert.Equal(t, "cancelled", rec.Message)

	waitForTerminal(t, svc, firstID)
}
