package monitor

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/notifier"
	"SRM_Health_Automation/internal/health-engine/repository"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Thresholds struct {
	CPUPercent     float64
	MemoryPercent  float64
	ResponseTimeMs float64
	ErrorRate      float64
}

type Config struct {
	Interval     time.Duration
	HistoryLimit int
	Thresholds   Thresholds
}

// DBStatsFunc reports connection pool statistics of the relational store.
type DBStatsFunc func() (sql.DBStats, error)

type MinAvgMax struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

type AggregateStats struct {
	WindowMinutes     int       `json:"window_minutes"`
	Samples           int       `json:"samples"`
	CPU               MinAvgMax `json:"cpu"`
	Memory            MinAvgMax `json:"memory"`
	AvgResponseTimeMs float64   `json:"avg_response_time_ms"`
	TotalRequests     int       `json:"total_requests"`
	AvgErrorRate      float64   `json:"avg_error_rate"`
}

// Monitor samples performance metrics on a fixed interval, keeps a bounded
// in-memory history and raises threshold alerts. The in-memory history is
// authoritative, persistence is best effort.
type Monitor interface {
	Start()
	Stop()
	Collect(ctx context.Context) (model.PerformanceMetricsSnapshot, error)
	History() []model.PerformanceMetricsSnapshot
	GetAggregateStats(minutes int) (AggregateStats, error)
	UpdateConfig(cfg Config)
	Recorder() *Recorder
}

type performanceMonitor struct {
	metricsRepo repository.MetricsRepository
	sender      notifier.Sender
	recorder    *Recorder
	dbStats     DBStatsFunc
	clock       clockwork.Clock
	logger      *zap.Logger

	mu       sync.Mutex
	cfg      Config
	history  []model.PerformanceMetricsSnapshot
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func (m *performanceMonitor) Recorder() *Recorder {
	return m.recorder
}

func (m *performanceMonitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		m.logger.Warn("performance monitor already running, ignoring start")
		return
	}
	m.running = true
	m.stopChan = make(chan struct{})
	stopChan := m.stopChan
	interval := m.cfg.Interval
	m.mu.Unlock()

	m.wg.Add(1)
	go m.loop(interval, stopChan)
	m.logger.Info("performance monitor started", zap.Duration("interval", interval))
}

func (m *performanceMonitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	close(m.stopChan)
	m.mu.Unlock()
	m.wg.Wait()
	m.logger.Info("performance monitor stopped")
}

func (m *performanceMonitor) loop(interval time.Duration, stopChan chan struct{}) {
	defer m.wg.Done()
	// One sample immediately, then on the timer.
	m.sample()
	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.Chan():
			m.sample()
		case <-stopChan:
			return
		}
	}
}

func (m *performanceMonitor) sample() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	snapshot, err := m.Collect(ctx)
	if err != nil {
		m.logger.Error("metrics collection failed, sample skipped", zap.Error(fmt.Errorf("Monitor.sample: %w", err)))
		return
	}
	m.append(snapshot)
	m.checkAlerts(ctx, snapshot)
	if saveErr := m.metricsRepo.SaveSnapshot(ctx, snapshot); saveErr != nil {
		m.logger.Warn("failed to persist metrics snapshot", zap.Error(fmt.Errorf("Monitor.sample: %w", saveErr)))
	}
}

// Collect gathers all metric groups. A failing sub-collector does not prevent
// the others, partial snapshots are acceptable; only total failure is an
// error.
func (m *performanceMonitor) Collect(ctx context.Context) (model.PerformanceMetricsSnapshot, error) {
	snapshot := model.PerformanceMetricsSnapshot{
		Timestamp: m.clock.Now(),
	}
	failures := 0

	cpu, err := collectCPU()
	if err != nil {
		failures++
		m.logger.Warn("cpu collection failed", zap.Error(err))
	} else {
		snapshot.CPU = cpu
	}

	memory, err := collectMemory()
	if err != nil {
		failures++
		m.logger.Warn("memory collection failed", zap.Error(err))
	} else {
		snapshot.Memory = memory
	}

	stats, err := m.dbStats()
	if err != nil {
		failures++
		m.logger.Warn("database stats collection failed", zap.Error(err))
	} else {
		queryTime, slowQueries := m.recorder.QueryStats(15 * time.Minute)
		snapshot.Database = model.DatabaseMetrics{
			ActiveConnections: stats.InUse,
			QueryTimeMs:       queryTime,
			SlowQueries:       slowQueries,
		}
	}

	responseTime, perMinute, errorRate := m.recorder.APIStats(15 * time.Minute)
	snapshot.API = model.APIMetrics{
		ResponseTimeMs:    responseTime,
		RequestsPerMinute: perMinute,
		ErrorRate:         errorRate,
	}

	avgExecution, perHour, failureRate := m.recorder.CheckStats(time.Hour)
	snapshot.HealthChecks = model.HealthCheckMetrics{
		AverageExecutionTimeMs: avgExecution,
		ChecksPerHour:          perHour,
		FailureRate:            failureRate,
	}

	if failures == 3 {
		return snapshot, fmt.Errorf("Monitor.Collect: all system collectors failed")
	}
	return snapshot, nil
}

func (m *performanceMonitor) append(snapshot model.PerformanceMetricsSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, snapshot)
	// Strict FIFO eviction once the configured capacity is exceeded.
	if limit := m.cfg.HistoryLimit; limit > 0 && len(m.history) > limit {
		m.history = m.history[len(m.history)-limit:]
	}
}

func (m *performanceMonitor) History() []model.PerformanceMetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := make([]model.PerformanceMetricsSnapshot, len(m.history))
	copy(history, m.history)
	return history
}

// checkAlerts compares a snapshot against the thresholds and reports every
// breach as one batch, not one alert per metric.
func (m *performanceMonitor) checkAlerts(ctx context.Context, snapshot model.PerformanceMetricsSnapshot) {
	m.mu.Lock()
	thresholds := m.cfg.Thresholds
	m.mu.Unlock()

	var breaches []string
	if thresholds.CPUPercent > 0 && snapshot.CPU.Usage > thresholds.CPUPercent {
		breaches = append(breaches, fmt.Sprintf("cpu %.1f%% > %.1f%%", snapshot.CPU.Usage, thresholds.CPUPercent))
	}
	if thresholds.MemoryPercent > 0 && snapshot.Memory.Percentage > thresholds.MemoryPercent {
		breaches = append(breaches, fmt.Sprintf("memory %.1f%% > %.1f%%", snapshot.Memory.Percentage, thresholds.MemoryPercent))
	}
	if thresholds.ResponseTimeMs > 0 && snapshot.API.ResponseTimeMs > thresholds.ResponseTimeMs {
		breaches = append(breaches, fmt.Sprintf("response time %.0fms > %.0fms", snapshot.API.ResponseTimeMs, thresholds.ResponseTimeMs))
	}
	if thresholds.ErrorRate > 0 && snapshot.API.ErrorRate > thresholds.ErrorRate {
		breaches = append(breaches, fmt.Sprintf("error rate %.3f > %.3f", snapshot.API.ErrorRate, thresholds.ErrorRate))
	}
	if len(breaches) == 0 {
		return
	}
	m.logger.Warn("performance thresholds breached", zap.Strings("breaches", breaches))
	m.sender.SendToUser(ctx, notifier.Notification{
		UserID:   "operators",
		Type:     "performance_alert",
		Title:    "Performance thresholds breached",
		Message:  strings.Join(breaches, "; "),
		Priority: notifier.PriorityNormal,
		Channels: []string{notifier.ChannelPush},
	})
}

func (m *performanceMonitor) GetAggregateStats(minutes int) (AggregateStats, error) {
	m.mu.Lock()
	history := make([]model.PerformanceMetricsSnapshot, len(m.history))
	copy(history, m.history)
	interval := m.cfg.Interval
	m.mu.Unlock()

	cutoff := m.clock.Now().Add(-time.Duration(minutes) * time.Minute)
	var window []model.PerformanceMetricsSnapshot
	for _, s := range history {
		if s.Timestamp.After(cutoff) {
			window = append(window, s)
		}
	}
	if len(window) == 0 {
		return AggregateStats{}, fmt.Errorf("Monitor.GetAggregateStats: %w", apperrors.ErrNoData)
	}

	stats := AggregateStats{
		WindowMinutes: minutes,
		Samples:       len(window),
		CPU:           MinAvgMax{Min: window[0].CPU.Usage, Max: window[0].CPU.Usage},
		Memory:        MinAvgMax{Min: window[0].Memory.Percentage, Max: window[0].Memory.Percentage},
	}
	var cpuSum, memSum, respSum, errSum, reqSum float64
	for _, s := range window {
		cpuSum += s.CPU.Usage
		memSum += s.Memory.Percentage
		respSum += s.API.ResponseTimeMs
		errSum += s.API.ErrorRate
		reqSum += s.API.RequestsPerMinute
		if s.CPU.Usage < stats.CPU.Min {
			stats.CPU.Min = s.CPU.Usage
		}
		if s.CPU.Usage > stats.CPU.Max {
			stats.CPU.Max = s.CPU.Usage
		}
		if s.Memory.Percentage < stats.Memory.Min {
			stats.Memory.Min = s.Memory.Percentage
		}
		if s.Memory.Percentage > stats.Memory.Max {
			stats.Memory.Max = s.Memory.Percentage
		}
	}
	n := float64(len(window))
	stats.CPU.Avg = cpuSum / n
	stats.Memory.Avg = memSum / n
	stats.AvgResponseTimeMs = respSum / n
	stats.AvgErrorRate = errSum / n
	stats.TotalRequests = int(reqSum * interval.Minutes())
	return stats, nil
}

// UpdateConfig merges the non-zero fields into the current configuration and
// restarts the sampling loop when running so timing changes apply atomically.
func (m *performanceMonitor) UpdateConfig(cfg Config) {
	m.mu.Lock()
	if cfg.Interval > 0 {
		m.cfg.Interval = cfg.Interval
	}
	if cfg.HistoryLimit > 0 {
		m.cfg.HistoryLimit = cfg.HistoryLimit
	}
	if cfg.Thresholds.CPUPercent > 0 {
		m.cfg.Thresholds.CPUPercent = cfg.Thresholds.CPUPercent
	}
	if cfg.Thresholds.MemoryPercent > 0 {
		m.cfg.Thresholds.MemoryPercent = cfg.Thresholds.MemoryPercent
	}
	if cfg.Thresholds.ResponseTimeMs > 0 {
		m.cfg.Thresholds.ResponseTimeMs = cfg.Thresholds.ResponseTimeMs
	}
	if cfg.Thresholds.ErrorRate > 0 {
		m.cfg.Thresholds.ErrorRate = cfg.Thresholds.ErrorRate
	}
	wasRunning := m.running
	m.mu.Unlock()
	if wasRunning {
		m.Stop()
		m.Start()
	}
}

func NewMonitor(metricsRepo repository.MetricsRepository, sender notifier.Sender, recorder *Recorder,
	dbStats DBStatsFunc, clock clockwork.Clock, logger *zap.Logger, cfg Config) Monitor {
	return &performanceMonitor{
		metricsRepo: metricsRepo,
		sender:      sender,
		recorder:    recorder,
		dbStats:     dbStats,
		clock:       clock,
		logger:      logger,
		cfg:         cfg,
	}
}
