// Package reportstore defines the report renderer/persistence contract
// (spec §6.3, §6.5): rendering a ValidationResult to a self-contained
// artifact, and listing/retrieving persisted reports.
package reportstore

import (
	"context"
	"time"

	"github.com/hardgate/scanengine/internal/model"
)

// RenderContext is the optional presentation context a renderer may use
// alongside the ValidationResult; the core passes the result through
// unchanged regardless of what the renderer does with this context.
type RenderContext struct {
	RepositoryURL string
	Branch        string
	ScanID        string
}

// Renderer turns a ValidationResult into a self-contained artifact (HTML by
// convention, per §6.5's hard_gate_report_{scan_id}.html naming). Gate
// categorization for presentation purposes belongs to the renderer, not the
// core.
type Renderer interface {
	Render(result *model.ValidationResult, rc RenderContext) ([]byte, error)
}

// Summary is one entry in the GET /reports listing (§6.1).
type Summary struct {
	ScanID     string
	Filename   string
	FileSize   int64
	CreatedAt  time.Time
	ModifiedAt time.Time
	Score      float64
	Status     string
	ReportURL  string
}

// Store persists rendered report bytes and lists them back out.
type Store interface {
	Save(ctx context.Context, scanID string, content []byte, score float64, status string) error
	Get(ctx context.Context, scanID string) ([]byte, bool, error)
	List(ctx context.Context) ([]Summary, error)
}
