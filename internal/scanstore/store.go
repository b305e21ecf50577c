// Package scanstore persists ScanRecords for the Scan Service (C11). The
// default is in-memory; Redis- and Postgres-backed implementations are
// adapted from qlp-hq-QLP's RedisStateManager and database.New. A selected
// persisted backend that cannot connect is an error; there is no fallback
// to the in-memory store.
package scanstore

import (
	"context"
	"sync"

	"github.com/hardgate/scanengine/internal/model"
)

// Store is the Scan Service's exclusive owner of ScanRecords keyed by id.
type Store interface {
	Create(ctx context.Context, rec *model.ScanRecord) error
	Update(ctx context.Context, rec *model.ScanRecord) error
	Get(ctx context.Context, scanID string) (*model.ScanRecord, bool, error)
	List(ctx context.Context) ([]*model.ScanRecord, error)
}

// Memory is the default in-memory Store.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*model.ScanRecord
}

func NewMemory() *Memory {
	return &Memory{records: map[string]*model.ScanRecord{}}
}

func (m *Memory) Create(_ context.Context, rec *model.ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ScanID] = rec
	return nil
}

func (m *Memory) Update(_ context.Context, rec *model.ScanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ScanID] = rec
	return nil
}

func (m *Memory) Get(_ context.Context, scanID string) (*model.ScanRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[scanID]
	return rec, ok, nil
}

func (m *Memory) List(_ context.Context) ([]*model.ScanRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.ScanRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}
