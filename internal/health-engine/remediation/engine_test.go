package remediation

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	mocknotifier "SRM_Health_Automation/internal/health-engine/mocks/notifier"
	mockprobe "SRM_Health_Automation/internal/health-engine/mocks/probe"
	mockremediation "SRM_Health_Automation/internal/health-engine/mocks/remediation"
	mockrepository "SRM_Health_Automation/internal/health-engine/mocks/repository"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/notifier"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type engineMocks struct {
	ruleRepo        *mockrepository.MockRuleRepository
	remediationRepo *mockrepository.MockRemediationResultRepository
	probe           *mockprobe.MockProbe
	executor        *mockremediation.MockActionExecutor
	sender          *mocknotifier.MockSender
	clock           clockwork.FakeClock
}

func newTestEngine(t *testing.T) (Engine, engineMocks) {
	ctrl := gomock.NewController(t)
	m := engineMocks{
		ruleRepo:        mockrepository.NewMockRuleRepository(ctrl),
		remediationRepo: mockrepository.NewMockRemediationResultRepository(ctrl),
		probe:           mockprobe.NewMockProbe(ctrl),
		executor:        mockremediation.NewMockActionExecutor(ctrl),
		sender:          mocknotifier.NewMockSender(ctrl),
		clock:           clockwork.NewFakeClock(),
	}
	e := NewEngine(m.ruleRepo, m.remediationRepo, m.probe, m.executor, m.sender, m.clock, zap.NewNop(), 0)
	return e, m
}

func loadRules(t *testing.T, e Engine, m engineMocks, rules []model.RemediationRule) {
	m.ruleRepo.EXPECT().ListRules(gomock.Any()).Return(rules, nil)
	require.NoError(t, e.LoadRules(context.Background()))
}

func jwtRule() model.RemediationRule {
	return model.RemediationRule{
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
	}
}

func jwtFailure() model.HealthCheckResult {
	return model.HealthCheckResult{
		Module: "auth-system",
		Score:  40,
		Status: model.StatusCritical,
		Errors: []string{"JWT verification failed: key mismatch"},
	}
}

func TestEngine_EvaluateAndRemediate_Success(t *testing.T) {
	e, m := newTestEngine(t)
	loadRules(t, e, m, []model.RemediationRule{jwtRule()})
	ctx := context.Background()

	gomock.InOrder(
		m.executor.EXPECT().Execute(gomock.Any(), jwtRule().Actions[0]).Return(nil),
		m.executor.EXPECT().Execute(gomock.Any(), jwtRule().Actions[1]).Return(nil),
	)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{Module: "auth-system", Score: 95, Status: model.StatusHealthy}, nil)
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)

	attempt, err := e.EvaluateAndRemediate(ctx, jwtFailure())

	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.True(t, attempt.Success)
	assert.Equal(t, model.OutcomeSuccess, attempt.Outcome)
	assert.Equal(t, "auth-jwt-fix", attempt.RuleID)
	assert.Equal(t, 40, attempt.HealthScoreBefore)
	require.NotNil(t, attempt.HealthScoreAfter)
	assert.Equal(t, 95, *attempt.HealthScoreAfter)
	assert.Equal(t, []string{"Clear cached JWT signing keys", "Restart auth service"}, attempt.ActionsExecuted)
}

func TestEngine_EvaluateAndRemediate_NoMatchingRule(t *testing.T) {
	e, m := newTestEngine(t)
	loadRules(t, e, m, []model.RemediationRule{jwtRule()})

	result := model.HealthCheckResult{
		Module: "auth-system",
		Score:  40,
		Status: model.StatusCritical,
		Errors: []string{"connection pool exhausted"},
	}
	attempt, err := e.EvaluateAndRemediate(context.Background(), result)

	require.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestEngine_EvaluateAndRemediate_DisabledRuleIgnored(t *testing.T) {
	e, m := newTestEngine(t)
	rule := jwtRule()
	rule.Enabled = false
	loadRules(t, e, m, []model.RemediationRule{rule})

	attempt, err := e.EvaluateAndRemediate(context.Background(), jwtFailure())

	require.NoError(t, err)
	assert.Nil(t, attempt)
}

func TestEngine_EvaluateAndRemediate_FailFast(t *testing.T) {
	e, m := newTestEngine(t)
	rule := jwtRule()
	rule.NotifyOnFailure = true
	loadRules(t, e, m, []model.RemediationRule{rule})

	// The first action fails, so the second action must never run.
	m.executor.EXPECT().Execute(gomock.Any(), rule.Actions[0]).Return(errors.New("redis unreachable"))
	m.sender.EXPECT().SendToUser(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n notifier.Notification) {
		assert.Equal(t, notifier.PriorityCritical, n.Priority)
		assert.Contains(t, n.Channels, notifier.ChannelEmail)
	})
	var saved model.RemediationResult
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.RemediationResult) error {
			saved = r
			return nil
		})

	attempt, err := e.EvaluateAndRemediate(context.Background(), jwtFailure())

	require.NoError(t, err)
	assert.Nil(t, attempt)
	assert.False(t, saved.Success)
	assert.Equal(t, model.OutcomeFailure, saved.Outcome)
	assert.Empty(t, saved.ActionsExecuted)
	assert.Contains(t, saved.Error, "redis unreachable")
}

func TestEngine_EvaluateAndRemediate_Cooldown(t *testing.T) {
	e, m := newTestEngine(t)
	rule := jwtRule()
	rule.MaxAttempts = 1
	loadRules(t, e, m, []model.RemediationRule{rule})
	ctx := context.Background()

	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{Module: "auth-system", Score: 90}, nil)
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)

	first, err := e.EvaluateAndRemediate(ctx, jwtFailure())
	require.NoError(t, err)
	require.NotNil(t, first)

	// Still inside the cooldown window: the rule is skipped entirely and no
	// action runs.
	second, err := e.EvaluateAndRemediate(ctx, jwtFailure())
	require.NoError(t, err)
	assert.Nil(t, second)

	// Past the window the rule is eligible again.
	m.clock.Advance(16 * time.Minute)
	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{Module: "auth-system", Score: 90}, nil)
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)

	third, err := e.EvaluateAndRemediate(ctx, jwtFailure())
	require.NoError(t, err)
	assert.NotNil(t, third)
}

func TestEngine_EvaluateAndRemediate_ShortCircuit(t *testing.T) {
	e, m := newTestEngine(t)
	first := jwtRule()
	second := jwtRule()
	second.ID = "auth-jwt-fallback"
	second.Actions = []model.RemediationAction{
		{Type: model.ActionRunScript, Script: "rotate_keys.sh", Description: "Rotate signing keys"},
	}
	loadRules(t, e, m, []model.RemediationRule{first, second})

	// First rule succeeds, so the second matching rule must never be tried.
	m.executor.EXPECT().Execute(gomock.Any(), first.Actions[0]).Return(nil)
	m.executor.EXPECT().Execute(gomock.Any(), first.Actions[1]).Return(nil)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{Module: "auth-system", Score: 88}, nil)
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)

	attempt, err := e.EvaluateAndRemediate(context.Background(), jwtFailure())

	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, "auth-jwt-fix", attempt.RuleID)
}

func TestEngine_EvaluateAndRemediate_UnverifiableRecheck(t *testing.T) {
	e, m := newTestEngine(t)
	loadRules(t, e, m, []model.RemediationRule{jwtRule()})

	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{}, errors.New("connection refused"))
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).Return(nil)

	attempt, err := e.EvaluateAndRemediate(context.Background(), jwtFailure())

	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.True(t, attempt.Success)
	assert.Equal(t, model.OutcomeUnknown, attempt.Outcome)
	assert.Nil(t, attempt.HealthScoreAfter)
}

func TestEngine_EvaluateAndRemediate_NoImprovement(t *testing.T) {
	e, m := newTestEngine(t)
	loadRules(t, e, m, []model.RemediationRule{jwtRule()})

	m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.probe.EXPECT().Run(gomock.Any(), "auth-system").
		Return(model.HealthCheckResult{Module: "auth-system", Score: 40}, nil)
	var saved model.RemediationResult
	m.remediationRepo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.RemediationResult) error {
			saved = r
			return nil
		})

	attempt, err := e.EvaluateAndRemediate(context.Background(), jwtFailure())

	require.NoError(t, err)
	assert.Nil(t, attempt)
	assert.False(t, saved.Success)
	assert.Equal(t, model.OutcomeFailure, saved.Outcome)
	assert.Contains(t, saved.Error, "health score did not improve")
}

func TestEngine_LoadRules_SeedsDefaultsOnEmptyStore(t *testing.T) {
	e, m := newTestEngine(t)

	m.ruleRepo.EXPECT().ListRules(gomock.Any()).Return(nil, nil)
	m.ruleRepo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
		Return(model.RemediationRule{}, nil).Times(len(DefaultRules()))

	require.NoError(t, e.LoadRules(context.Background()))
	assert.Len(t, e.Rules(), len(DefaultRules()))
}

func TestEngine_AddRule(t *testing.T) {
	testCases := []struct {
		name        string
		rule        model.RemediationRule
		setupMocks  func(m engineMocks)
		expectedErr error
	}{
		{
			name: "Success",
			rule: jwtRule(),
			setupMocks: func(m engineMocks) {
				m.ruleRepo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(jwtRule(), nil)
			},
		},
		{
			name: "Error, Unknown action type",
			rule: func() model.RemediationRule {
				r := jwtRule()
				r.Actions = []model.RemediationAction{{Type: "reboot_universe"}}
				return r
			}(),
			setupMocks:  func(m engineMocks) {},
			expectedErr: apperrors.ErrInvalidRule,
		},
		{
			name: "Error, No actions",
			rule: func() model.RemediationRule {
				r := jwtRule()
				r.Actions = nil
				return r
			}(),
			setupMocks:  func(m engineMocks) {},
			expectedErr: apperrors.ErrInvalidRule,
		},
		{
			name: "Error, No condition predicates",
			rule: func() model.RemediationRule {
				r := jwtRule()
				r.Condition = model.RuleCondition{}
				return r
			}(),
			setupMocks:  func(m engineMocks) {},
			expectedErr: apperrors.ErrInvalidRule,
		},
		{
			name: "Error, Duplicate id",
			rule: jwtRule(),
			setupMocks: func(m engineMocks) {
				m.ruleRepo.EXPECT().CreateRule(gomock.Any(), gomock.Any()).
					Return(model.RemediationRule{}, apperrors.ErrRuleAlreadyExists)
			},
			expectedErr: apperrors.ErrRuleAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestEngine(t)
			tc.setupMocks(m)

			_, err := e.AddRule(context.Background(), tc.rule)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEngine_SetRuleEnabled(t *testing.T) {
	e, m := newTestEngine(t)
	loadRules(t, e, m, []model.RemediationRule{jwtRule()})

	disabled := jwtRule()
	disabled.Enabled = false
	m.ruleRepo.EXPECT().UpdateRule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
			// The disabled flag must reach the store, not just the working copy.
			assert.False(t, rule.Enabled)
			return disabled, nil
		})

	rule, err := e.SetRuleEnabled(context.Background(), "auth-jwt-fix", false)
	require.NoError(t, err)
	assert.False(t, rule.Enabled)
	assert.Equal(t, 0, e.EnabledRuleCount())

	_, err = e.SetRuleEnabled(context.Background(), "missing", false)
	assert.ErrorIs(t, err, apperrors.ErrRuleNotFound)
}
