package repository

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RuleRepository is the configuration store for remediation rules. The engine
// loads rules at startup and keeps a working copy, this repository is the
// durable source of truth.
type RuleRepository interface {
	CreateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error)
	UpdateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error)
	DeleteRuleById(ctx context.Context, id string) error
	GetRuleById(ctx context.Context, id string) (model.RemediationRule, error)
	ListRules(ctx context.Context) ([]model.RemediationRule, error)
}

type ruleRepository struct {
	db *gorm.DB
}

func (r *ruleRepository) CreateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	result := r.db.WithContext(ctx).Create(&rule)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return rule, fmt.Errorf("RuleRepository.CreateRule: %w", apperrors.ErrRuleAlreadyExists)
		}
		return rule, fmt.Errorf("RuleRepository.CreateRule: %w", result.Error)
	}
	return rule, nil
}

func (r *ruleRepository) UpdateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	var updated model.RemediationRule
	// Select the mutable columns explicitly: a struct update would skip
	// zero-valued fields, silently dropping enabled=false or a cleared
	// predicate from the statement.
	result := r.db.WithContext(ctx).Model(&updated).Clauses(clause.Returning{}).Where("id = ?", rule.ID).
		Select("module", "condition", "actions", "enabled", "max_attempts",
			"cooldown_minutes", "notify_on_success", "notify_on_failure").
		Updates(rule)
	if result.Error != nil {
		return updated, fmt.Errorf("RuleRepository.UpdateRule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return updated, fmt.Errorf("RuleRepository.UpdateRule: %w", apperrors.ErrRuleNotFound)
	}
	return updated, nil
}

func (r *ruleRepository) DeleteRuleById(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RemediationRule{})
	if result.Error != nil {
		return fmt.Errorf("RuleRepository.DeleteRuleById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("RuleRepository.DeleteRuleById: %w", apperrors.ErrRuleNotFound)
	}
	return nil
}

func (r *ruleRepository) GetRuleById(ctx context.Context, id string) (model.RemediationRule, error) {
	var rule model.RemediationRule
	result := r.db.WithContext(ctx).First(&rule, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return rule, fmt.Errorf("RuleRepository.GetRuleById: %w", apperrors.ErrRuleNotFound)
		}
		return rule, fmt.Errorf("RuleRepository.GetRuleById: %w", result.Error)
	}
	return rule, nil
}

func (r *ruleRepository) ListRules(ctx context.Context) ([]model.RemediationRule, error) {
	var rules []model.RemediationRule
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&rules)
	if result.Error != nil {
		return nil, fmt.Errorf("RuleRepository.ListRules: %w", result.Error)
	}
	return rules, nil
}

func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{
		db: db,
	}
}
