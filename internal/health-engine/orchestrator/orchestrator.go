package orchestrator

import (
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/monitor"
	"SRM_Health_Automation/internal/health-engine/remediation"
	"SRM_Health_Automation/internal/health-engine/repository"
	"SRM_Health_Automation/internal/health-engine/report"
	"SRM_Health_Automation/internal/health-engine/scheduler"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	weeklyReportSchedule = "0 8 * * 1"
	statusWindow         = 24 * time.Hour
	initialCheckTimeout  = 2 * time.Minute
)

// CheckOutcome bundles a manual check with whatever remediation it triggered.
type CheckOutcome struct {
	Original         model.HealthCheckResult  `json:"original"`
	Remediation      *model.RemediationResult `json:"remediation,omitempty"`
	AfterRemediation *model.HealthCheckResult `json:"after_remediation,omitempty"`
}

// Orchestrator drives the observe, decide, act, re-observe loop. It owns the
// scheduler, the remediation engine, the performance monitor and the weekly
// report timer.
type Orchestrator interface {
	Start(ctx context.Context) error
	Stop()
	RunManualCheckWithRemediation(ctx context.Context, module string) (CheckOutcome, error)
	RunManualCheckAllWithRemediation(ctx context.Context) []CheckOutcome
	GetSystemStatus(ctx context.Context) (model.SystemStatus, error)
	Running() bool
}

type orchestrator struct {
	scheduler  scheduler.Scheduler
	engine     remediation.Engine
	monitor    monitor.Monitor
	resultRepo repository.ResultRepository
	generator  report.Generator
	clock      clockwork.Clock
	logger     *zap.Logger

	mutex   sync.Mutex
	running bool
	cron    *cron.Cron
}

func (o *orchestrator) Start(ctx context.Context) error {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	if o.running {
		o.logger.Warn("Orchestrator.Start: already running")
		return nil
	}
	if err := o.engine.LoadRules(ctx); err != nil {
		return fmt.Errorf("Orchestrator.Start: %w", err)
	}

	o.scheduler.SetResultSink(o.onScheduledResult)
	o.scheduler.Start()
	o.monitor.Start()

	o.cron = cron.New()
	if _, err := o.cron.AddFunc(weeklyReportSchedule, o.runWeeklyReport); err != nil {
		o.scheduler.Stop()
		o.monitor.Stop()
		return fmt.Errorf("Orchestrator.Start: %w", err)
	}
	o.cron.Start()
	o.running = true
	o.logger.Info("Orchestrator.Start: engine started")

	go o.runInitialCheck()
	return nil
}

func (o *orchestrator) Stop() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	if !o.running {
		o.logger.Warn("Orchestrator.Stop: not running")
		return
	}
	o.cron.Stop()
	o.monitor.Stop()
	o.scheduler.Stop()
	o.running = false
	o.logger.Info("Orchestrator.Stop: engine stopped")
}

func (o *orchestrator) Running() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.running
}

// onScheduledResult feeds the remediation engine and the performance recorder
// with every result the scheduler produces.
func (o *orchestrator) onScheduledResult(result model.HealthCheckResult) {
	ctx, cancel := context.WithTimeout(context.Background(), initialCheckTimeout)
	defer cancel()
	o.monitor.Recorder().RecordHealthCheck(
		time.Duration(result.ExecutionTimeMs)*time.Millisecond,
		result.Status == model.StatusCritical,
	)
	if result.Status == model.StatusHealthy {
		return
	}
	if _, err := o.engine.EvaluateAndRemediate(ctx, result); err != nil {
		o.logger.Error("Orchestrator.onScheduledResult: remediation failed",
			zap.String("module", result.Module), zap.Error(err))
	}
}

// runInitialCheck sweeps every module once at startup so the engine has a
// baseline before the first scheduled ticks fire.
func (o *orchestrator) runInitialCheck() {
	ctx, cancel := context.WithTimeout(context.Background(), initialCheckTimeout)
	defer cancel()
	results := o.scheduler.RunManualCheckAll(ctx)
	for _, result := range results {
		if result.Status != model.StatusCritical {
			continue
		}
		if _, err := o.engine.EvaluateAndRemediate(ctx, result); err != nil {
			o.logger.Error("Orchestrator.runInitialCheck: remediation failed",
				zap.String("module", result.Module), zap.Error(err))
		}
	}
	o.logger.Info("Orchestrator.runInitialCheck: initial sweep finished",
		zap.Int("modules", len(results)))
}

func (o *orchestrator) runWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	path, err := o.generator.GenerateWeeklyReport(ctx)
	if err != nil {
		o.logger.Error("Orchestrator.runWeeklyReport: generation failed", zap.Error(err))
		return
	}
	o.logger.Info("Orchestrator.runWeeklyReport: report written", zap.String("path", path))
}

func (o *orchestrator) RunManualCheckWithRemediation(ctx context.Context, module string) (CheckOutcome, error) {
	result, err := o.scheduler.RunManualCheck(ctx, module)
	if err != nil {
		return CheckOutcome{}, fmt.Errorf("Orchestrator.RunManualCheckWithRemediation: %w", err)
	}
	return o.remediate(ctx, result), nil
}

func (o *orchestrator) RunManualCheckAllWithRemediation(ctx context.Context) []CheckOutcome {
	results := o.scheduler.RunManualCheckAll(ctx)
	outcomes := make([]CheckOutcome, 0, len(results))
	for _, result := range results {
		outcomes = append(outcomes, o.remediate(ctx, result))
	}
	return outcomes
}

func (o *orchestrator) remediate(ctx context.Context, result model.HealthCheckResult) CheckOutcome {
	outcome := CheckOutcome{Original: result}
	if result.Status == model.StatusHealthy {
		return outcome
	}
	remediated, err := o.engine.EvaluateAndRemediate(ctx, result)
	if err != nil {
		o.logger.Error("Orchestrator.remediate: remediation failed",
			zap.String("module", result.Module), zap.Error(err))
		return outcome
	}
	if remediated == nil {
		return outcome
	}
	outcome.Remediation = remediated
	after, err := o.scheduler.RunManualCheck(ctx, result.Module)
	if err != nil {
		o.logger.Warn("Orchestrator.remediate: post-remediation check failed",
			zap.String("module", result.Module), zap.Error(err))
		return outcome
	}
	outcome.AfterRemediation = &after
	return outcome
}

func (o *orchestrator) GetSystemStatus(ctx context.Context) (model.SystemStatus, error) {
	latest, err := o.resultRepo.GetLatestResultsPerModule(ctx, o.clock.Now().Add(-statusWindow))
	if err != nil {
		return model.SystemStatus{}, fmt.Errorf("Orchestrator.GetSystemStatus: %w", err)
	}
	status := model.SystemStatus{
		Timestamp:          o.clock.Now(),
		Running:            o.Running(),
		Modules:            make(map[string]model.HealthCheckResult, len(latest)),
		StatusCounts:       make(map[model.HealthStatus]int),
		SchedulerIntervals: o.scheduler.Intervals(),
		EnabledRules:       o.engine.EnabledRuleCount(),
	}
	scoreSum := 0
	for _, result := range latest {
		status.Modules[result.Module] = result
		status.StatusCounts[result.Status]++
		scoreSum += result.Score
	}
	if len(latest) > 0 {
		status.AverageScore = float64(scoreSum) / float64(len(latest))
	}
	return status, nil
}

func NewOrchestrator(sched scheduler.Scheduler, engine remediation.Engine, mon monitor.Monitor,
	resultRepo repository.ResultRepository, generator report.Generator,
	clock clockwork.Clock, logger *zap.Logger) Orchestrator {
	return &orchestrator{
		scheduler:  sched,
		engine:     engine,
		monitor:    mon,
		resultRepo: resultRepo,
		generator:  generator,
		clock:      clock,
		logger:     logger,
	}
}
