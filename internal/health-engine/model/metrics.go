package model

import "time"

type CPUMetrics struct {
	Usage float64 `json:"usage"`
	Load  float64 `json:"load"`
}

type MemoryMetrics struct {
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Percentage float64 `json:"percentage"`
}

type DatabaseMetrics struct {
	ActiveConnections int     `json:"active_connections"`
	QueryTimeMs       float64 `json:"query_time_ms"`
	SlowQueries       int     `json:"slow_queries"`
}

type APIMetrics struct {
	ResponseTimeMs    float64 `json:"response_time_ms"`
	RequestsPerMinute float64 `json:"requests_per_minute"`
	ErrorRate         float64 `json:"error_rate"`
}

type HealthCheckMetrics struct {
	AverageExecutionTimeMs float64 `json:"average_execution_time_ms"`
	ChecksPerHour          int     `json:"checks_per_hour"`
	FailureRate            float64 `json:"failure_rate"`
}

// PerformanceMetricsSnapshot is one sample of the monitor. The in-memory
// history is authoritative, persisted copies are best effort.
type PerformanceMetricsSnapshot struct {
	Timestamp    time.Time          `json:"timestamp"`
	CPU          CPUMetrics         `json:"cpu"`
	Memory       MemoryMetrics      `json:"memory"`
	Database     DatabaseMetrics    `json:"database"`
	API          APIMetrics         `json:"api"`
	HealthChecks HealthCheckMetrics `json:"health_checks"`
}
