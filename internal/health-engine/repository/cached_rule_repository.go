package repository

import (
	"SRM_Health_Automation/internal/health-engine/model"
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ruleListCacheKey = "remediation_rules:all"

// cachedRuleRepository decorates a RuleRepository with a redis cache on the
// list path. Mutations invalidate the cached list before delegating.
type cachedRuleRepository struct {
	redis    *redis.Client
	repo     RuleRepository
	cacheTTL time.Duration
}

func (c *cachedRuleRepository) ListRules(ctx context.Context) ([]model.RemediationRule, error) {
	data, err := c.redis.Get(ctx, ruleListCacheKey).Bytes()
	if err == nil {
		var rules []model.RemediationRule
		if decodeErr := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&rules); decodeErr == nil {
			return rules, nil
		}
	}
	rules, err := c.repo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("cachedRuleRepository.ListRules: %w", err)
	}
	var buf bytes.Buffer
	if encodeErr := gob.NewEncoder(&buf).Encode(rules); encodeErr == nil {
		c.redis.Set(ctx, ruleListCacheKey, buf.Bytes(), c.cacheTTL)
	}
	return rules, nil
}

func (c *cachedRuleRepository) CreateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	if err := c.redis.Del(ctx, ruleListCacheKey).Err(); err != nil {
		return model.RemediationRule{}, fmt.Errorf("cachedRuleRepository.CreateRule: %w", err)
	}
	return c.repo.CreateRule(ctx, rule)
}

func (c *cachedRuleRepository) UpdateRule(ctx context.Context, rule model.RemediationRule) (model.RemediationRule, error) {
	if err := c.redis.Del(ctx, ruleListCacheKey).Err(); err != nil {
		return model.RemediationRule{}, fmt.Errorf("cachedRuleRepository.UpdateRule: %w", err)
	}
	return c.repo.UpdateRule(ctx, rule)
}

func (c *cachedRuleRepository) DeleteRuleById(ctx context.Context, id string) error {
	if err := c.redis.Del(ctx, ruleListCacheKey).Err(); err != nil {
		return fmt.Errorf("cachedRuleRepository.DeleteRuleById: %w", err)
	}
	return c.repo.DeleteRuleById(ctx, id)
}

func (c *cachedRuleRepository) GetRuleById(ctx context.Context, id string) (model.RemediationRule, error) {
	return c.repo.GetRuleById(ctx, id)
}

func NewCachedRuleRepository(redisClient *redis.Client, repo RuleRepository, cacheTTL time.Duration) RuleRepository {
	return &cachedRuleRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
