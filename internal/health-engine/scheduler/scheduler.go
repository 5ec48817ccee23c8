package scheduler

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/probe"
	"SRM_Health_Automation/internal/health-engine/repository"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// ResultSink receives every result produced by a scheduled tick. Manual
// checks bypass the sink, their results go back to the caller.
type ResultSink func(result model.HealthCheckResult)

type Scheduler interface {
	Configure(intervals map[string]time.Duration)
	Start()
	Stop()
	RunManualCheck(ctx context.Context, module string) (model.HealthCheckResult, error)
	RunManualCheckAll(ctx context.Context) []model.HealthCheckResult
	Intervals() map[string]time.Duration
	SetResultSink(sink ResultSink)
}

type scheduler struct {
	probe           probe.Probe
	resultRepo      repository.ResultRepository
	clock           clockwork.Clock
	logger          *zap.Logger
	defaultInterval time.Duration
	checkTimeout    time.Duration

	mu        sync.Mutex
	intervals map[string]time.Duration
	running   bool
	stopChan  chan struct{}
	wg        sync.WaitGroup

	// sink has its own lock so the module loops never touch s.mu; that lets
	// stopLoopsLocked hold s.mu across the wait without deadlocking.
	sinkMu sync.Mutex
	sink   ResultSink
}

func (s *scheduler) SetResultSink(sink ResultSink) {
	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	s.sink = sink
}

// Configure replaces the per-module schedule. Modules without a valid interval
// fall back to the default. When called while running, the loops are restarted
// so the new intervals apply.
func (s *scheduler) Configure(intervals map[string]time.Duration) {
	s.mu.Lock()
	wasRunning := s.running
	if wasRunning {
		s.stopLoopsLocked()
	}
	next := make(map[string]time.Duration)
	for _, module := range s.probe.Modules() {
		interval := intervals[module]
		if interval <= 0 {
			interval = s.defaultInterval
		}
		next[module] = interval
	}
	s.intervals = next
	if wasRunning {
		s.startLoopsLocked()
	}
	s.mu.Unlock()
}

func (s *scheduler) Intervals() map[string]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	intervals := make(map[string]time.Duration, len(s.intervals))
	for module, interval := range s.intervals {
		intervals[module] = interval
	}
	return intervals
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.logger.Warn("scheduler already running, ignoring start")
		return
	}
	s.startLoopsLocked()
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.stopLoopsLocked()
	s.mu.Unlock()
}

func (s *scheduler) startLoopsLocked() {
	s.stopChan = make(chan struct{})
	s.running = true
	for module, interval := range s.intervals {
		s.wg.Add(1)
		go s.moduleLoop(module, interval, s.stopChan)
	}
	s.logger.Info("scheduler started", zap.Int("modules", len(s.intervals)))
}

// stopLoopsLocked keeps s.mu held across the wait so a concurrent Start or
// Configure cannot slip in and spawn a second set of loops while the first is
// draining.
func (s *scheduler) stopLoopsLocked() {
	close(s.stopChan)
	s.running = false
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *scheduler) moduleLoop(module string, interval time.Duration, stopChan chan struct{}) {
	defer s.wg.Done()
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			ctx, cancel := context.WithTimeout(context.Background(), s.checkTimeout)
			result := s.runCheck(ctx, module)
			cancel()
			s.sinkMu.Lock()
			sink := s.sink
			s.sinkMu.Unlock()
			if sink != nil {
				sink(result)
			}
		case <-stopChan:
			return
		}
	}
}

// runCheck never fails: a probe error becomes a synthetic critical result so
// one failing probe can not stop the scheduling loop.
func (s *scheduler) runCheck(ctx context.Context, module string) model.HealthCheckResult {
	result, err := s.probe.Run(ctx, module)
	if err != nil {
		err = fmt.Errorf("Scheduler.runCheck: %w", err)
		s.logger.Error("health probe failed", zap.Error(err), zap.String("module", module))
		result = model.HealthCheckResult{
			Module:    module,
			Score:     0,
			Status:    model.StatusCritical,
			Errors:    []string{err.Error()},
			Timestamp: s.clock.Now(),
		}
	}
	if saveErr := s.resultRepo.SaveResult(ctx, result); saveErr != nil {
		saveErr = fmt.Errorf("Scheduler.runCheck: %w", saveErr)
		s.logger.Error("failed to persist health check result", zap.Error(saveErr), zap.String("module", module))
	}
	return result
}

func (s *scheduler) RunManualCheck(ctx context.Context, module string) (model.HealthCheckResult, error) {
	s.mu.Lock()
	_, configured := s.intervals[module]
	s.mu.Unlock()
	if !configured {
		return model.HealthCheckResult{}, fmt.Errorf("Scheduler.RunManualCheck: %w", apperrors.ErrModuleNotConfigured)
	}
	return s.runCheck(ctx, module), nil
}

func (s *scheduler) RunManualCheckAll(ctx context.Context) []model.HealthCheckResult {
	s.mu.Lock()
	modules := make([]string, 0, len(s.intervals))
	for module := range s.intervals {
		modules = append(modules, module)
	}
	s.mu.Unlock()
	results := make([]model.HealthCheckResult, 0, len(modules))
	for _, module := range modules {
		results = append(results, s.runCheck(ctx, module))
	}
	return results
}

func NewScheduler(p probe.Probe, resultRepo repository.ResultRepository, clock clockwork.Clock,
	logger *zap.Logger, defaultInterval time.Duration) Scheduler {
	s := &scheduler{
		probe:           p,
		resultRepo:      resultRepo,
		clock:           clock,
		logger:          logger,
		defaultInterval: defaultInterval,
		checkTimeout:    30 * time.Second,
		intervals:       make(map[string]time.Duration),
	}
	s.Configure(nil)
	return s
}
