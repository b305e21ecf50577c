// Package scanservice implements the Scan Service (C11): async submit,
// bounded-concurrency execution, and status/result/report retrieval,
// adapted from qlp-hq-QLP's services/validation-service
// internal/engines.ValidationEngine — same semaphore-bounded dispatch and
// in-memory-by-default record map, generalized to scan records instead of
// validation requests.
package scanservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hardgate/scanengine/internal/config"
	"github.com/hardgate/scanengine/internal/engineerr"
	"github.com/hardgate/scanengine/internal/eventbus"
	"github.com/hardgate/scanengine/internal/llmhook"
	"github.com/hardgate/scanengine/internal/logger"
	"github.com/hardgate/scanengine/internal/model"
	"github.com/hardgate/scanengine/internal/orchestrator"
	"github.com/hardgate/scanengine/internal/reposource"
	"github.com/hardgate/scanengine/internal/scanstore"
)

var (
	ErrNotFound = fmt.Errorf("scan not found")
	ErrNotReady = fmt.Errorf("scan not ready")
)

// Service is the Scan Service. At most BaseSettings.MaxConcurrentScans scans
// run concurrently; excess submissions remain pending in FIFO order via the
// semaphore's natural queuing.
type Service struct {
	store  scanstore.Store
	source reposource.Source
	hook   llmhook.Hook
	bus    eventbus.Bus

	base config.Settings

	sem chan struct{}

	mu        sync.Mutex
	cancelled map[string]context.CancelFunc

	log *zap.Logger
}

func New(store scanstore.Store, source reposource.Source, hook llmhook.Hook, bus eventbus.Bus, base config.Settings) *Service {
	if hook == nil {
		hook = llmhook.NoOp{}
	}
	if bus == nil {
		bus = eventbus.NoOp{}
	}
	concurrency := base.MaxConcurrentScans
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		store:     store,
		source:    source,
		hook:      hook,
		bus:       bus,
		base:      base,
		sem:       make(chan struct{}, concurrency),
		cancelled: map[string]context.CancelFunc{},
		log:       logger.WithComponent("scanservice"),
	}
}

// Submit creates a pending ScanRecord and dispatches the work to a
// goroutine, returning immediately with the new scan id.
func (s *Service) Submit(ctx context.Context, input model.ScanInput, overrides map[string]any) (string, error) {
	settings, err := config.ApplyOverrides(s.base, overrides)
	if err != nil {
		return "", err
	}

	scanID := uuid.NewString()

	rec := &model.ScanRecord{
		ScanID:      scanID,
		SubmittedAt: time.Now(),
		Status:      model.ScanPending,
		Message:     "queued",
		Input:       input,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return "", fmt.Errorf("%w: %v", engineerr.ErrInternal, err)
	}

	runCtx, cancel := context.WithTimeout(context.Background(), deadlineOr(settings.ScanDeadline, 10*time.Minute))
	s.mu.Lock()
	s.cancelled[scanID] = cancel
	s.mu.Unlock()

	s.bus.Publish(ctx, eventbus.Event{Type: eventbus.EventScanSubmitted, ScanID: scanID, Timestamp: time.Now()})

	go s.run(runCtx, scanID, input, settings)

	return scanID, nil
}

func deadlineOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

func (s *Service) run(ctx context.Context, scanID string, input model.ScanInput, settings config.Settings) {
	defer func() {
		s.mu.Lock()
		delete(s.cancelled, scanID)
		s.mu.Unlock()
	}()

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	case <-ctx.Done():
		s.fail(context.Background(), scanID, "cancelled")
		return
	}

	rec, ok, err := s.store.Get(ctx, scanID)
	if err != nil || !ok || rec.IsTerminal() {
		return
	}
	rec.Status = model.ScanRunning
	rec.Message = "running"
	_ = s.store.Update(ctx, rec)

	localPath, err := s.source.Fetch(ctx, input.RepositoryURL, input.Branch, input.GitHubToken)
	if err != nil {
		s.fail(ctx, scanID, err.Error())
		return
	}
	settings.RootPath = localPath

	result, err := orchestrator.Run(ctx, settings, s.hook)
	if err != nil {
		if ctx.Err() != nil {
			s.fail(ctx, scanID, "cancelled")
			return
		}
		s.fail(ctx, scanID, err.Error())
		return
	}

	rec, ok, err = s.store.Get(ctx, scanID)
	if err != nil || !ok || rec.IsTerminal() {
		return
	}
	rec.Status = model.ScanCompleted
	rec.Message = "completed"
	rec.Progress = "100"
	rec.Result = result
	_ = s.store.Update(ctx, rec)

	s.bus.Publish(context.Background(), eventbus.Event{
		Type:      eventbus.EventScanCompleted,
		ScanID:    scanID,
		Timestamp: time.Now(),
		Score:     result.OverallScore,
	})
	logger.LogScanMetrics(scanID, result.TotalFiles, time.Since(rec.SubmittedAt).Milliseconds(), result.OverallScore, result.OverallScore >= 80)
}

func (s *Service) fail(ctx context.Context, scanID, message string) {
	rec, ok, err := s.store.Get(ctx, scanID)
	if err != nil || !ok || rec.IsTerminal() {
		return
	}
	rec.Status = model.ScanFailed
	rec.Message = message
	rec.Err = message
	_ = s.store.Update(ctx, rec)

	s.bus.Publish(context.Background(), eventbus.Event{
		Type:      eventbus.EventScanFailed,
		ScanID:    scanID,
		Timestamp: time.Now(),
		Message:   message,
	})
}

// Status returns the current lifecycle state of a scan.
func (s *Service) Status(ctx context.Context, scanID string) (*model.ScanRecord, error) {
	rec, ok, err := s.store.Get(ctx, scanID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engineerr.ErrInternal, err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Result returns the completed ValidationResult, or ErrNotReady if the scan
// has not reached a terminal state.
func (s *Service) Result(ctx context.Context, scanID string) (*model.ValidationResult, error) {
	rec, err := s.Status(ctx, scanID)
	if err != nil {
		return nil, err
	}
	if rec.Status == model.ScanFailed {
		return nil, fmt.Errorf("scan failed: %s", rec.Err)
	}
	if rec.Status != model.ScanCompleted {
		return nil, ErrNotReady
	}
	return rec.Result, nil
}

// List returns every known ScanRecord.
func (s *Service) List(ctx context.Context) ([]*model.ScanRecord, error) {
	return s.store.List(ctx)
}

// Cancel transitions a running scan to failed with message "cancelled",
// discarding any partial result, per spec §4.11's external stop signal.
func (s *Service) Cancel(ctx context.Context, scanID string) error {
	rec, err := s.Status(ctx, scanID)
	if err != nil {
		return err
	}
	if rec.IsTerminal() {
		return nil
	}

	s.fail(ctx, scanID, "cancelled")

	s.mu.Lock()
	cancel, ok := s.cancelled[scanID]
	s.mu.Unlock()
	if ok {
		cancel()
	}
	return nil
}
