package remediation

import "SRM_Health_Automation/internal/health-engine/model"

func intPtr(v int) *int { return &v }

// DefaultRules is the built-in rule set seeded when the configuration store
// is empty or unreadable.
func DefaultRules() []model.RemediationRule {
	return []model.RemediationRule{
		{
			ID:     "auth-jwt-fix",
			Module: "auth-system",
			Condition: model.RuleCondition{
				ErrorContains: "JWT verification failed",
			},
			Actions: []model.RemediationAction{
				{Type: model.ActionClearCache, Target: "jwt_keys", Description: "Clear cached JWT signing keys"},
				{Type: model.ActionRestartService, Target: "auth", Description: "Restart auth service"},
			},
			Enabled:         true,
			MaxAttempts:     3,
			CooldownMinutes: 15,
			NotifyOnSuccess: true,
			NotifyOnFailure: true,
		},
		{
			ID:     "database-slow-queries",
			Module: "database-health",
			Condition: model.RuleCondition{
				ScoreBelow:  intPtr(60),
				CheckFailed: "query_performance",
			},
			Actions: []model.RemediationAction{
				{Type: model.ActionDatabaseCleanup, Target: "remediation_results", Description: "Purge stale remediation audit rows"},
				{Type: model.ActionNotifyOnly, Description: "Flag slow queries for review"},
			},
			Enabled:         true,
			MaxAttempts:     2,
			CooldownMinutes: 60,
			NotifyOnFailure: true,
		},
		{
			ID:     "session-cache-flush",
			Module: "cache-layer",
			Condition: model.RuleCondition{
				ScoreBelow:    intPtr(50),
				ErrorContains: "redis",
			},
			Actions: []model.RemediationAction{
				{Type: model.ActionClearCache, Target: "sessions", Description: "Flush session cache namespace"},
			},
			Enabled:         true,
			MaxAttempts:     3,
			CooldownMinutes: 30,
			NotifyOnFailure: true,
		},
		{
			ID:     "whatsapp-bridge-restart",
			Module: "whatsapp-integration",
			Condition: model.RuleCondition{
				ScoreBelow: intPtr(50),
			},
			Actions: []model.RemediationAction{
				{Type: model.ActionRestartService, Target: "whatsapp-bridge", Description: "Restart WhatsApp bridge"},
			},
			Enabled:         true,
			MaxAttempts:     2,
			CooldownMinutes: 20,
			NotifyOnSuccess: true,
			NotifyOnFailure: true,
		},
	}
}
