package remediation

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/notifier"
	"SRM_Health_Automation/internal/health-engine/probe"
	"SRM_Health_Automation/internal/health-engine/repository"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Engine decides whether to act on a health result and, if so, acts safely
// and reports. Rules live in a repository; the engine keeps an in-memory
// working copy that administrative operations mutate directly.
type Engine interface {
	LoadRules(ctx context.Context) error
	EvaluateAndRemediate(ctx context.Context, result model.HealthCheckResult) (*model.RemediationResult, error)
	Rules() []model.RemediationRule
	AddRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error)
	UpdateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error)
	DeleteRule(ctx context.Context, id string) error
	SetRuleEnabled(ctx context.Context, id string, enabled bool) (model.RemediationRule, error)
	EnabledRuleCount() int
}

type engine struct {
	ruleRepo        repository.RuleRepository
	remediationRepo repository.RemediationResultRepository
	probe           probe.Probe
	executor        ActionExecutor
	sender          notifier.Sender
	clock           clockwork.Clock
	logger          *zap.Logger
	settleDelay     time.Duration

	mu    sync.Mutex
	rules []model.RemediationRule
	// attempts holds one timestamp per recorded attempt per rule id. Kept in
	// memory only: a process restart resets remediation throttling.
	attempts  map[string][]time.Time
	ruleLocks map[string]*sync.Mutex
}

// LoadRules replaces the working copy from the repository. An empty or
// unreadable store falls back to the built-in default rule set and persists
// it, so the system is never left without remediation capability.
func (e *engine) LoadRules(ctx context.Context) error {
	rules, err := e.ruleRepo.ListRules(ctx)
	if err != nil || len(rules) == 0 {
		if err != nil {
			e.logger.Warn("failed to load remediation rules, seeding defaults",
				zap.Error(fmt.Errorf("Engine.LoadRules: %w", err)))
		}
		rules = DefaultRules()
		for _, rule := range rules {
			if _, createErr := e.ruleRepo.CreateRule(ctx, rule); createErr != nil &&
				!errors.Is(createErr, apperrors.ErrRuleAlreadyExists) {
				e.logger.Error("failed to persist default rule",
					zap.Error(fmt.Errorf("Engine.LoadRules: %w", createErr)), zap.String("rule_id", rule.ID))
			}
		}
	}
	e.mu.Lock()
	e.rules = rules
	e.mu.Unlock()
	e.logger.Info("remediation rules loaded", zap.Int("count", len(rules)))
	return nil
}

// matchRules returns the enabled rules for the result's module whose whole
// condition holds, in configuration order. That order is the trial order.
func (e *engine) matchRules(result model.HealthCheckResult) []model.RemediationRule {
	e.mu.Lock()
	defer e.mu.Unlock()
	var matched []model.RemediationRule
	for _, rule := range e.rules {
		if !rule.Enabled || rule.Module != result.Module {
			continue
		}
		if rule.Condition.Matches(result) {
			matched = append(matched, rule)
		}
	}
	return matched
}

func (e *engine) EvaluateAndRemediate(ctx context.Context, result model.HealthCheckResult) (*model.RemediationResult, error) {
	matched := e.matchRules(result)
	if len(matched) == 0 {
		return nil, nil
	}
	for _, rule := range matched {
		attempt, attempted := e.attemptRule(ctx, rule, result)
		if !attempted {
			continue
		}
		if attempt.Success {
			// Short-circuit: the first successful rule settles the result.
			return attempt, nil
		}
	}
	return nil, nil
}

// attemptRule runs one rule end to end under the rule's lock. The second
// return value is false when the rule was skipped on cooldown.
func (e *engine) attemptRule(ctx context.Context, rule model.RemediationRule, result model.HealthCheckResult) (*model.RemediationResult, bool) {
	lock := e.lockFor(rule.ID)
	lock.Lock()
	defer lock.Unlock()

	now := e.clock.Now()
	if !e.recordAttempt(rule, now) {
		e.logger.Info("rule skipped on cooldown",
			zap.String("rule_id", rule.ID), zap.String("module", rule.Module),
			zap.Int("max_attempts", rule.MaxAttempts), zap.Int("cooldown_minutes", rule.CooldownMinutes))
		return nil, false
	}

	attempt := &model.RemediationResult{
		ID:                uuid.NewString(),
		RuleID:            rule.ID,
		Module:            rule.Module,
		Timestamp:         now,
		HealthScoreBefore: result.Score,
	}

	// Execute in declared order. The first failure aborts the rest of the
	// rule's actions.
	for _, action := range rule.Actions {
		if err := e.executeAction(ctx, action); err != nil {
			attempt.Success = false
			attempt.Outcome = model.OutcomeFailure
			attempt.Error = err.Error()
			e.logger.Error("remediation action failed, aborting rule",
				zap.Error(err), zap.String("rule_id", rule.ID), zap.String("action", action.Description))
			break
		}
		attempt.ActionsExecuted = append(attempt.ActionsExecuted, action.Description)
	}

	if attempt.Error == "" {
		e.verify(ctx, rule, result, attempt)
	}

	e.notify(ctx, rule, attempt)
	if err := e.remediationRepo.SaveResult(ctx, *attempt); err != nil {
		e.logger.Error("failed to persist remediation result",
			zap.Error(fmt.Errorf("Engine.attemptRule: %w", err)), zap.String("rule_id", rule.ID))
	}
	return attempt, true
}

// recordAttempt prunes the rule's attempt history to the cooldown window and,
// if the rule is still under its limit, records a new attempt immediately so
// a crash mid-execution still counts toward the limit.
func (e *engine) recordAttempt(rule model.RemediationRule, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	cutoff := now.Add(-rule.CooldownWindow())
	var recent []time.Time
	for _, t := range e.attempts[rule.ID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) >= rule.MaxAttempts {
		e.attempts[rule.ID] = recent
		return false
	}
	e.attempts[rule.ID] = append(recent, now)
	return true
}

// executeAction converts anything the executor does wrong, panics included,
// into a plain error.
func (e *engine) executeAction(ctx context.Context, action model.RemediationAction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Engine.executeAction %q panicked: %v", action.Type, r)
		}
	}()
	return e.executor.Execute(ctx, action)
}

// verify waits for the settle delay and re-probes the module. If the re-check
// is unobtainable the attempt is optimistically marked successful but its
// outcome stays unknown so operators can tell the two apart.
func (e *engine) verify(ctx context.Context, rule model.RemediationRule, before model.HealthCheckResult, attempt *model.RemediationResult) {
	e.clock.Sleep(e.settleDelay)
	after, err := e.probe.Run(ctx, rule.Module)
	if err != nil {
		e.logger.Warn("could not verify remediation, assuming success",
			zap.Error(fmt.Errorf("Engine.verify: %w", err)), zap.String("rule_id", rule.ID))
		attempt.Success = true
		attempt.Outcome = model.OutcomeUnknown
		return
	}
	attempt.HealthScoreAfter = &after.Score
	attempt.Success = after.Score > before.Score
	if attempt.Success {
		attempt.Outcome = model.OutcomeSuccess
	} else {
		attempt.Outcome = model.OutcomeFailure
		attempt.Error = fmt.Sprintf("health score did not improve: %d -> %d", before.Score, after.Score)
	}
}

func (e *engine) notify(ctx context.Context, rule model.RemediationRule, attempt *model.RemediationResult) {
	if attempt.Success && !rule.NotifyOnSuccess {
		return
	}
	if !attempt.Success && !rule.NotifyOnFailure {
		return
	}
	n := notifier.Notification{
		UserID:   "operators",
		Type:     "auto_remediation",
		Priority: notifier.PriorityNormal,
		Channels: []string{notifier.ChannelPush},
		Data: map[string]interface{}{
			"rule_id":          rule.ID,
			"module":           rule.Module,
			"outcome":          string(attempt.Outcome),
			"actions_executed": attempt.ActionsExecuted,
		},
	}
	switch {
	case attempt.Outcome == model.OutcomeUnknown:
		n.Title = fmt.Sprintf("Remediation unverified for %s", rule.Module)
		n.Message = fmt.Sprintf("Rule %s executed all actions but the re-check could not be obtained.", rule.ID)
	case attempt.Success:
		n.Title = fmt.Sprintf("Remediation succeeded for %s", rule.Module)
		n.Message = fmt.Sprintf("Rule %s repaired module %s.", rule.ID, rule.Module)
	default:
		n.Title = fmt.Sprintf("Remediation failed for %s", rule.Module)
		n.Message = fmt.Sprintf("Rule %s failed: %s. Manual intervention may be required.", rule.ID, attempt.Error)
		n.Priority = notifier.PriorityCritical
		n.Channels = append(n.Channels, notifier.ChannelEmail)
	}
	e.sender.SendToUser(ctx, n)
}

func (e *engine) lockFor(ruleID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.ruleLocks[ruleID]
	if !ok {
		lock = &sync.Mutex{}
		e.ruleLocks[ruleID] = lock
	}
	return lock
}

func (e *engine) Rules() []model.RemediationRule {
	e.mu.Lock()
	defer e.mu.Unlock()
	rules := make([]model.RemediationRule, len(e.rules))
	copy(rules, e.rules)
	return rules
}

func (e *engine) EnabledRuleCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, rule := range e.rules {
		if rule.Enabled {
			count++
		}
	}
	return count
}

func (e *engine) AddRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if err := validateRule(rule); err != nil {
		return model.RemediationRule{}, fmt.Errorf("Engine.AddRule: %w", err)
	}
	created, err := e.ruleRepo.CreateRule(ctx, rule)
	if err != nil {
		return model.RemediationRule{}, fmt.Errorf("Engine.AddRule: %w", err)
	}
	e.mu.Lock()
	e.rules = append(e.rules, created)
	e.mu.Unlock()
	return created, nil
}

func (e *engine) UpdateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	if err := validateRule(rule); err != nil {
		return model.RemediationRule{}, fmt.Errorf("Engine.UpdateRule: %w", err)
	}
	updated, err := e.ruleRepo.UpdateRule(ctx, rule)
	if err != nil {
		return model.RemediationRule{}, fmt.Errorf("Engine.UpdateRule: %w", err)
	}
	e.mu.Lock()
	for i := range e.rules {
		if e.rules[i].ID == updated.ID {
			e.rules[i] = updated
			break
		}
	}
	e.mu.Unlock()
	return updated, nil
}

func (e *engine) DeleteRule(ctx context.Context, id string) error {
	if err := e.ruleRepo.DeleteRuleById(ctx, id); err != nil {
		return fmt.Errorf("Engine.DeleteRule: %w", err)
	}
	e.mu.Lock()
	for i := range e.rules {
		if e.rules[i].ID == id {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			break
		}
	}
	delete(e.attempts, id)
	e.mu.Unlock()
	return nil
}

func (e *engine) SetRuleEnabled(ctx context.Context, id string, enabled bool) (model.RemediationRule, error) {
	e.mu.Lock()
	var current *model.RemediationRule
	for i := range e.rules {
		if e.rules[i].ID == id {
			current = &e.rules[i]
			break
		}
	}
	if current == nil {
		e.mu.Unlock()
		return model.RemediationRule{}, fmt.Errorf("Engine.SetRuleEnabled: %w", apperrors.ErrRuleNotFound)
	}
	rule := *current
	e.mu.Unlock()
	rule.Enabled = enabled
	return e.UpdateRule(ctx, rule)
}

func validateRule(rule model.RemediationRule) error {
	if rule.Module == "" {
		return fmt.Errorf("%w: module is required", apperrors.ErrInvalidRule)
	}
	if rule.Condition.Empty() {
		// An empty conjunction never matches, storing such a rule would only
		// create dead configuration.
		return fmt.Errorf("%w: at least one condition predicate is required", apperrors.ErrInvalidRule)
	}
	if len(rule.Actions) == 0 {
		return fmt.Errorf("%w: at least one action is required", apperrors.ErrInvalidRule)
	}
	for _, action := range rule.Actions {
		if !action.Type.Valid() {
			return fmt.Errorf("%w: unknown action type %q", apperrors.ErrInvalidRule, action.Type)
		}
	}
	if rule.MaxAttempts <= 0 {
		return fmt.Errorf("%w: max_attempts must be positive", apperrors.ErrInvalidRule)
	}
	if rule.CooldownMinutes <= 0 {
		return fmt.Errorf("%w: cooldown_minutes must be positive", apperrors.ErrInvalidRule)
	}
	return nil
}

func NewEngine(ruleRepo repository.RuleRepository, remediationRepo repository.RemediationResultRepository,
	p probe.Probe, executor ActionExecutor, sender notifier.Sender, clock clockwork.Clock,
	logger *zap.Logger, settleDelay time.Duration) Engine {
	return &engine{
		ruleRepo:        ruleRepo,
		remediationRepo: remediationRepo,
		probe:           p,
		executor:        executor,
		sender:          sender,
		clock:           clock,
		logger:          logger,
		settleDelay:     settleDelay,
		attempts:        make(map[string][]time.Time),
		ruleLocks:       make(map[string]*sync.Mutex),
	}
}
