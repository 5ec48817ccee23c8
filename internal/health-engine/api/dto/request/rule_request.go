package request

type RuleConditionRequest struct {
	ScoreBelow      *int   `json:"score_below" binding:"omitempty,gte=0,lte=100"`
	ErrorContains   string `json:"error_contains"`
	WarningContains string `json:"warning_contains"`
	CheckFailed     string `json:"check_failed"`
}

type RuleActionRequest struct {
	Type        string `json:"type" binding:"required"`
	Target      string `json:"target"`
	Script      string `json:"script"`
	Description string `json:"description"`
}

type RuleRequest struct {
	ID              string               `json:"id" binding:"required"`
	Module          string               `json:"module" binding:"required"`
	Condition       RuleConditionRequest `json:"condition" binding:"required"`
	Actions         []RuleActionRequest  `json:"actions" binding:"required,min=1,dive"`
	Enabled         *bool                `json:"enabled" binding:"required"`
	MaxAttempts     *int                 `json:"max_attempts" binding:"required,gte=1"`
	CooldownMinutes *int                 `json:"cooldown_minutes" binding:"required,gte=0"`
	NotifyOnSuccess bool                 `json:"notify_on_success"`
	NotifyOnFailure bool                 `json:"notify_on_failure"`
}

type UpdateRuleRequest struct {
	Module          string               `json:"module" binding:"required"`
	Condition       RuleConditionRequest `json:"condition" binding:"required"`
	Actions         []RuleActionRequest  `json:"actions" binding:"required,min=1,dive"`
	Enabled         *bool                `json:"enabled" binding:"required"`
	MaxAttempts     *int                 `json:"max_attempts" binding:"required,gte=1"`
	CooldownMinutes *int                 `json:"cooldown_minutes" binding:"required,gte=0"`
	NotifyOnSuccess bool                 `json:"notify_on_success"`
	NotifyOnFailure bool                 `json:"notify_on_failure"`
}
