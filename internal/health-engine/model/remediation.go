package model

import (
	"strings"
	"time"
)

type ActionType string

const (
	ActionRestartService  ActionType = "restart_service"
	ActionClearCache      ActionType = "clear_cache"
	ActionRunScript       ActionType = "run_script"
	ActionDatabaseCleanup ActionType = "database_cleanup"
	ActionNotifyOnly      ActionType = "notify_only"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionRestartService, ActionClearCache, ActionRunScript, ActionDatabaseCleanup, ActionNotifyOnly:
		return true
	}
	return false
}

type RemediationAction struct {
	Type        ActionType `json:"type"`
	Target      string     `json:"target,omitempty"`
	Script      string     `json:"script,omitempty"`
	Description string     `json:"description"`
}

// RuleCondition is a conjunction: every configured predicate must hold.
// A condition with no predicates configured never matches.
type RuleCondition struct {
	ScoreBelow      *int   `json:"score_below,omitempty"`
	ErrorContains   string `json:"error_contains,omitempty"`
	WarningContains string `json:"warning_contains,omitempty"`
	CheckFailed     string `json:"check_failed,omitempty"`
}

func (c RuleCondition) Empty() bool {
	return c.ScoreBelow == nil && c.ErrorContains == "" && c.WarningContains == "" && c.CheckFailed == ""
}

// Matches evaluates the conjunction against a result. Substring predicates are
// case-insensitive.
func (c RuleCondition) Matches(r HealthCheckResult) bool {
	if c.Empty() {
		return false
	}
	if c.ScoreBelow != nil && r.Score >= *c.ScoreBelow {
		return false
	}
	if c.ErrorContains != "" && !containsFold(r.Errors, c.ErrorContains) {
		return false
	}
	if c.WarningContains != "" && !containsFold(r.Warnings, c.WarningContains) {
		return false
	}
	if c.CheckFailed != "" && !r.FailedCheck(c.CheckFailed) {
		return false
	}
	return true
}

func containsFold(values []string, substring string) bool {
	substring = strings.ToLower(substring)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), substring) {
			return true
		}
	}
	return false
}

type RemediationRule struct {
	ID              string              `gorm:"primaryKey" json:"id"`
	Module          string              `json:"module"`
	Condition       RuleCondition       `gorm:"serializer:json" json:"condition"`
	Actions         []RemediationAction `gorm:"serializer:json" json:"actions"`
	Enabled         bool                `json:"enabled"`
	MaxAttempts     int                 `json:"max_attempts"`
	CooldownMinutes int                 `json:"cooldown_minutes"`
	NotifyOnSuccess bool                `json:"notify_on_success"`
	NotifyOnFailure bool                `json:"notify_on_failure"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func (r RemediationRule) CooldownWindow() time.Duration {
	return time.Duration(r.CooldownMinutes) * time.Minute
}

type RemediationOutcome string

const (
	OutcomeSuccess RemediationOutcome = "success"
	OutcomeFailure RemediationOutcome = "failure"
	// OutcomeUnknown marks an attempt whose re-verification could not be
	// obtained. Success is recorded optimistically but operators can tell
	// the two apart.
	OutcomeUnknown RemediationOutcome = "unknown"
)

type RemediationResult struct {
	ID                string             `gorm:"primaryKey" json:"id"`
	RuleID            string             `json:"rule_id"`
	Module            string             `json:"module"`
	Timestamp         time.Time          `json:"timestamp"`
	Success           bool               `json:"success"`
	Outcome           RemediationOutcome `json:"outcome"`
	ActionsExecuted   []string           `gorm:"serializer:json" json:"actions_executed"`
	Error             string             `json:"error,omitempty"`
	HealthScoreBefore int                `json:"health_score_before"`
	HealthScoreAfter  *int               `json:"health_score_after,omitempty"`
}
