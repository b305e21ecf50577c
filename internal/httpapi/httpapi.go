// Package httpapi wires the Scan Service onto the HTTP surface spec §6.1
// describes, adapted from qlp-hq-QLP's validation_handler.go handler
// layout and cmd/main.go router/middleware assembly.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/hardgate/scanengine/internal/gatedata"
	"github.com/hardgate/scanengine/internal/jiraposter"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/reportstore"
	"github.com/hardgate/scanengine/internal/scanservice"
)

// Handler holds the collaborators the HTTP surface needs beyond the Scan
// Service itself: the report renderer/store and the JIRA poster contract.
type Handler struct {
	scans    *scanservice.Service
	renderer reportstore.Renderer
	reports  reportstore.Store
	jira     jiraposter.Poster
}

func NewHandler(scans *scanservice.Service, renderer reportstore.Renderer, reports reportstore.Store, jira jiraposter.Poster) *Handler {
	if jira == nil {
		jira = jiraposter.NoOp{}
	}
	return &Handler{scans: scans, renderer: renderer, reports: reports, jira: jira}
}

// Router assembles the chi router and middleware stack, following the
// structure of qlp-hq-QLP's services/validation-service/cmd/main.go.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(300 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", h.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", h.submitScan)
		r.Get("/scan/{id}/status", h.scanStatus)
		r.Delete("/scan/{id}", h.cancelScan)
		r.Get("/reports/{id}", h.getReport)
		r.Get("/reports", h.listReports)
		r.Get("/gates", h.listGates)
		r.Get("/gates/{gate}/rules", h.gateRules)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type scanOptionsPayload struct {
	Threshold *int `json:"threshold"`
}

type submitScanRequest struct {
	RepositoryURL string             `json:"repository_url"`
	Branch        string             `json:"branch"`
	GitHubToken   string             `json:"github_token"`
	ScanOptions   scanOptionsPayload `json:"scan_options"`
	JiraOptions   map[string]any     `json:"jira_options"`
	Overrides     map[string]any     `json:"config_overrides"`
}

func (h *Handler) submitScan(w http.ResponseWriter, r *http.Request) {
	var req submitScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body is not valid JSON", r)
		return
	}
	if req.RepositoryURL == "" {
		writeError(w, http.StatusBadRequest, "validation_error", "repository_url is required", r)
		return
	}

	threshold := 0
	if req.ScanOptions.Threshold != nil {
		threshold = *req.ScanOptions.Threshold
	}

	input := model.ScanInput{
		RepositoryURL: req.RepositoryURL,
		Branch:        req.Branch,
		GitHubToken:   req.GitHubToken,
		ScanOptions:   model.ScanOptions{Threshold: threshold},
		JiraOptions:   model.JiraOptions(req.JiraOptions),
	}

	scanID, err := h.scans.Submit(r.Context(), input, req.Overrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error(), r)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"scan_id": scanID,
		"status":  "running",
	})
}

func (h *Handler) scanStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.scans.Status(r.Context(), id)
	if err == scanservice.ErrNotFound {
		writeError(w, http.StatusNotFound, "not_found", "unknown scan id", r)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error(), r)
		return
	}

	resp := map[string]any{
		"scan_id": rec.ScanID,
		"status":  rec.Status,
	}
	if rec.Status == model.ScanCompleted && rec.Result != nil {
		resp["score"] = rec.Result.OverallScore
		resp["gates"] = gateEntries(rec.Result.GateScores)
		resp["recommendations"] = rec.Result.Recommendations
		resp["report_url"] = "/api/v1/reports/" + rec.ScanID
	}
	if rec.Status == model.ScanFailed {
		resp["message"] = rec.Message
	}

	writeJSON(w, http.StatusOK, resp)
}

func gateEntries(scores []*model.GateScore) []map[string]any {
	out := make([]map[string]any, 0, len(scores))
	for _, s := range scores {
		out = append(out, map[string]any{
			"name":          s.Gate,
			"status":        s.Status,
			"score":         s.FinalScore,
			"details":       s.Details,
			"expected":      s.Expected,
			"found":         s.Found,
			"coverage":      s.Coverage,
			"quality_score": s.QualityScore,
		})
	}
	return out
}

func (h *Handler) cancelScan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.scans.Cancel(r.Context(), id); err == scanservice.ErrNotFound {
		writeError(w, http.StatusNotFound, "not_found", "unknown scan id", r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.scans.Status(r.Context(), id)
	if err == scanservice.ErrNotFound {
		writeError(w, http.StatusNotFound, "not_found", "unknown scan id", r)
		return
	}
	if rec.Status != model.ScanCompleted {
		writeError(w, http.StatusBadRequest, "not_ready", "scan has not completed", r)
		return
	}

	content, ok, err := h.reports.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error(), r)
		return
	}
	if !ok {
		if h.renderer == nil {
			writeError(w, http.StatusNotFound, "not_found", "report not persisted", r)
			return
		}
		rendered, err := h.renderer.Render(rec.Result, reportstore.RenderContext{ScanID: id})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error(), r)
			return
		}
		_ = h.reports.Save(r.Context(), id, rendered, rec.Result.OverallScore, string(rec.Status))
		content = rendered
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reports.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error(), r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reports":     summaries,
		"total_count": len(summaries),
	})
}

func (h *Handler) listGates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"gates": model.Gates})
}

func (h *Handler) gateRules(w http.ResponseWriter, r *http.Request) {
	gate := model.GateKind(chi.URLParam(r, "gate"))
	out := map[string]any{}
	for _, lang := range model.Languages {
		patterns := gatedata.Patterns(gate, lang)
		if len(patterns) == 0 {
			continue
		}
		names := make([]string, 0, len(patterns))
		for _, p := range patterns {
			names = append(names, p.Name)
		}
		out[string(lang)] = names
	}
	writeJSON(w, http.StatusOK, map[string]any{"gate": gate, "rules": out})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, errCode, message string, r *http.Request) {
	writeJSON(w, status, map[string]any{
		"error":      errCode,
		"message":    message,
		"request_id": uuid.NewString(),
		"timestamp":  time.Now().UTC(),
	})
}
