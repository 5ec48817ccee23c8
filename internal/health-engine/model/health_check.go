package model

import "time"

type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusWarning  HealthStatus = "warning"
	StatusCritical HealthStatus = "critical"
)

const (
	CheckStatusPass = "pass"
	CheckStatusFail = "fail"
)

// CheckResult is one sub-check reported by a module's health endpoint.
type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// HealthCheckResult is produced by a probe and never mutated afterwards.
// Status is derived from Score by the probe, the engine does not recompute it.
type HealthCheckResult struct {
	Module          string        `json:"module"`
	Score           int           `json:"score"`
	Status          HealthStatus  `json:"status"`
	Errors          []string      `json:"errors"`
	Warnings        []string      `json:"warnings"`
	Checks          []CheckResult `json:"checks"`
	ExecutionTimeMs int64         `json:"execution_time_ms"`
	Timestamp       time.Time     `json:"timestamp"`
}

// FailedCheck reports whether the named sub-check is present with status fail.
func (r HealthCheckResult) FailedCheck(name string) bool {
	for _, c := range r.Checks {
		if c.Name == name && c.Status == CheckStatusFail {
			return true
		}
	}
	return false
}
