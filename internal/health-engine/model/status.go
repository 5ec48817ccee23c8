package model

import "time"

// SystemStatus is the aggregate view returned by the orchestrator.
type SystemStatus struct {
	Timestamp          time.Time                    `json:"timestamp"`
	Running            bool                         `json:"running"`
	Modules            map[string]HealthCheckResult `json:"modules"`
	StatusCounts       map[HealthStatus]int         `json:"status_counts"`
	AverageScore       float64                      `json:"average_score"`
	SchedulerIntervals map[string]time.Duration     `json:"scheduler_intervals"`
	EnabledRules       int                          `json:"enabled_rules"`
}
