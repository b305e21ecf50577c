package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/eventbus"
	"github.com/hardgate/scanengine/internal/jiraposter"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/reportstore"
	"github.com/hardgate/scanengine/internal/reposource"
	"github.com/hardgate/scanengine/internal/scanservice"
	"github.com/hardgate/scanengine/internal/scanstore"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc := scanservice.New(scanstore.NewMemory(), reposource.Local{}, llmhook.NoOp{}, eventbus.NoOp{}, config.Default())
	reports, err := reportstore.NewFSStore(t.TempDir())
	require.NoError(t, err)
	return NewHandler(svc, reportstore.NewHTMLRenderer(), reports, jiraposter.NoOp{})
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitScanRequiresRepositoryURL(t *testing.T) {
	h := newTestHandler(t)
	body, _ := json.Marshal(map[string]any{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitScanStatusAndReportLifecycle(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "app.py"), []byte("logger.info('hi')\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("flask\n"), 0o644))

	h := newTestHandler(t)

	body, _ := json.Marshal(map[string]any{"repository_url": root})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var submitResp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitResp))
	scanID, ok := submitResp["scan_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, scanID)

	deadline := time.Now().Add(5 * time.Second)
	var status map[string]any
	for time.Now().Before(deadline) {
		statusReq := httptest.NewRequest(http.MethodGet, "/api/v1/scan/"+scanID+"/status", nil)
		statusRec := httptest.NewRecorder()
		h.Router().ServeHTTP(statusRec, statusReq)
		require.Equal(t, http.StatusOK, statusRec.Code)
		require.NoError(t, json.Unmarshal(statusRec.Body.Bytes(), &status))
		if status["status"] == string(model.ScanCompleted) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, string(model.ScanCompleted), status["status"])

	reportReq := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+scanID, nil)
	reportRec := httptest.NewRecorder()
	h.Router().ServeHTTP(reportRec, reportReq)
	assert.Equal(t, http.StatusOK, reportRec.Code)
	assert.Contains(t, reportRec.Body.String(), "<html")
}

func TestScanStatusUnknownIDIs404(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scan/does-not-exist/status", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListGatesReturnsAllFifteen(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gates", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	gates, ok := body["gates"].([]any)
	require.True(t, ok)
	assert.Len(t, gates, len(model.Gates))
}

func TestGateRulesReturnsPatternNamesByLanguage(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gates/"+string(model.GateStructuredLogs)+"/rules", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	rules, ok := body["rules"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rules, "python")
}
