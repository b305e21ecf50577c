package reportstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FSStore is the default Store: reports are written under dir as
// hard_gate_report_{scan_id}.html, matching spec §6.5's persisted-state
// layout. Score/status are tracked in memory alongside the file since the
// HTML artifact itself does not carry them back out structurally.
type FSStore struct {
	dir string

	mu    sync.RWMutex
	meta  map[string]fsMeta
}

type fsMeta struct {
	score  float64
	status string
}

func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &FSStore{dir: dir, meta: map[string]fsMeta{}}, nil
}

func (s *FSStore) filename(scanID string) string {
	return "hard_gate_report_" + scanID + ".html"
}

func (s *FSStore) Save(_ context.Context, scanID string, content []byte, score float64, status string) error {
	path := filepath.Join(s.dir, s.filename(scanID))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	s.mu.Lock()
	s.meta[scanID] = fsMeta{score: score, status: status}
	s.mu.Unlock()
	return nil
}

func (s *FSStore) Get(_ context.Context, scanID string) ([]byte, bool, error) {
	path := filepath.Join(s.dir, s.filename(scanID))
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read report: %w", err)
	}
	return content, true, nil
}

func (s *FSStore) List(_ context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Summary
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "hard_gate_report_") {
			continue
		}
		scanID := strings.TrimSuffix(strings.TrimPrefix(e.Name(), "hard_gate_report_"), ".html")
		info, err := e.Info()
		if err != nil {
			continue
		}
		m := s.meta[scanID]
		out = append(out, Summary{
			ScanID:     scanID,
			Filename:   e.Name(),
			FileSize:   info.Size(),
			CreatedAt:  info.ModTime(),
			ModifiedAt: info.ModTime(),
			Score:      m.score,
			Status:     m.status,
			ReportURL:  "/api/v1/reports/" + scanID,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ModifiedAt.After(out[j].ModifiedAt) })
	return out, nil
}
