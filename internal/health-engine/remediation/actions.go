package remediation

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/repository"
	"SRM_Health_Automation/pkg/infra"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ActionExecutor runs a single remediation action. A returned error means the
// action failed, the engine aborts the rest of the rule's actions.
type ActionExecutor interface {
	Execute(ctx context.Context, action model.RemediationAction) error
}

type ExecutorConfig struct {
	ScriptsDir      string
	ScriptTimeout   time.Duration
	KnownServices   []string
	CacheNamespaces []string
	CleanupTargets  map[string]time.Duration
}

type actionExecutor struct {
	kafka           infra.KafkaWriter
	redis           *redis.Client
	remediationRepo repository.RemediationResultRepository
	logger          *zap.Logger

	scriptsDir      string
	scriptTimeout   time.Duration
	knownServices   map[string]struct{}
	cacheNamespaces map[string]struct{}
	cleanupTargets  map[string]time.Duration
}

func (e *actionExecutor) Execute(ctx context.Context, action model.RemediationAction) error {
	switch action.Type {
	case model.ActionRestartService:
		return e.restartService(ctx, action.Target)
	case model.ActionClearCache:
		return e.clearCache(ctx, action.Target)
	case model.ActionRunScript:
		return e.runScript(ctx, action.Script)
	case model.ActionDatabaseCleanup:
		return e.databaseCleanup(ctx, action.Target)
	case model.ActionNotifyOnly:
		// Exists purely to trigger the rule's notification.
		return nil
	default:
		return fmt.Errorf("ActionExecutor.Execute: unsupported action type %q", action.Type)
	}
}

type restartCommand struct {
	Action      string    `json:"action"`
	Service     string    `json:"service"`
	RequestedAt time.Time `json:"requested_at"`
}

func (e *actionExecutor) restartService(ctx context.Context, service string) error {
	if _, ok := e.knownServices[service]; !ok {
		return fmt.Errorf("ActionExecutor.restartService %q: %w", service, apperrors.ErrUnknownService)
	}
	b, err := json.Marshal(restartCommand{
		Action:      "restart",
		Service:     service,
		RequestedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("ActionExecutor.restartService: %w", err)
	}
	err = e.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(service),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("ActionExecutor.restartService: %w", err)
	}
	e.logger.Info("dispatched restart command", zap.String("service", service))
	return nil
}

func (e *actionExecutor) clearCache(ctx context.Context, namespace string) error {
	if _, ok := e.cacheNamespaces[namespace]; !ok {
		return fmt.Errorf("ActionExecutor.clearCache %q: %w", namespace, apperrors.ErrUnknownCacheNamespace)
	}
	pattern := fmt.Sprintf("cache:%s:*", namespace)
	var cursor uint64
	var removed int
	for {
		keys, next, err := e.redis.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("ActionExecutor.clearCache: %w", err)
		}
		if len(keys) > 0 {
			if err = e.redis.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("ActionExecutor.clearCache: %w", err)
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	e.logger.Info("cleared cache namespace", zap.String("namespace", namespace), zap.Int("keys_removed", removed))
	return nil
}

func (e *actionExecutor) runScript(ctx context.Context, script string) error {
	path := filepath.Join(e.scriptsDir, filepath.Clean("/"+script))
	if !strings.HasPrefix(path, filepath.Clean(e.scriptsDir)+string(filepath.Separator)) {
		return fmt.Errorf("ActionExecutor.runScript: script path %q escapes scripts dir", script)
	}
	runCtx, cancel := context.WithTimeout(ctx, e.scriptTimeout)
	defer cancel()
	cmd := exec.CommandContext(runCtx, path)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	// Stderr output alone is not a failure, scripts are allowed to complain.
	if stderr.Len() > 0 {
		e.logger.Warn("remediation script wrote to stderr",
			zap.String("script", script), zap.String("stderr", stderr.String()))
	}
	if err != nil {
		return fmt.Errorf("ActionExecutor.runScript %q: %w", script, err)
	}
	e.logger.Info("remediation script completed", zap.String("script", script))
	return nil
}

func (e *actionExecutor) databaseCleanup(ctx context.Context, target string) error {
	retention, ok := e.cleanupTargets[target]
	if !ok {
		return fmt.Errorf("ActionExecutor.databaseCleanup %q: %w", target, apperrors.ErrUnknownCleanupTarget)
	}
	removed, err := e.remediationRepo.DeleteResultsOlderThan(ctx, time.Now().Add(-retention))
	if err != nil {
		return fmt.Errorf("ActionExecutor.databaseCleanup: %w", err)
	}
	e.logger.Info("database cleanup completed", zap.String("target", target), zap.Int64("rows_removed", removed))
	return nil
}

func NewActionExecutor(kafkaWriter infra.KafkaWriter, redisClient *redis.Client,
	remediationRepo repository.RemediationResultRepository, logger *zap.Logger, cfg ExecutorConfig) ActionExecutor {
	services := make(map[string]struct{}, len(cfg.KnownServices))
	for _, s := range cfg.KnownServices {
		services[s] = struct{}{}
	}
	namespaces := make(map[string]struct{}, len(cfg.CacheNamespaces))
	for _, n := range cfg.CacheNamespaces {
		namespaces[n] = struct{}{}
	}
	targets := cfg.CleanupTargets
	if targets == nil {
		targets = map[string]time.Duration{
			"remediation_results": 90 * 24 * time.Hour,
		}
	}
	return &actionExecutor{
		kafka:           kafkaWriter,
		redis:           redisClient,
		remediationRepo: remediationRepo,
		logger:          logger,
		scriptsDir:      cfg.ScriptsDir,
		scriptTimeout:   cfg.ScriptTimeout,
		knownServices:   services,
		cacheNamespaces: namespaces,
		cleanupTargets:  targets,
	}
}
