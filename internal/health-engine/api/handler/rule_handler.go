package handler

import (
	"SRM_Health_Automation/internal/health-engine/api/dto/request"
	"SRM_Health_Automation/internal/health-engine/api/dto/response"
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/remediation"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type RuleHandler interface {
	CreateRule() gin.HandlerFunc
	UpdateRule() gin.HandlerFunc
	DeleteRule() gin.HandlerFunc
	GetRules() gin.HandlerFunc
	EnableRule() gin.HandlerFunc
	DisableRule() gin.HandlerFunc
}

type ruleHandler struct {
	logger *zap.Logger
	engine remediation.Engine
}

func (*ruleHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s elements", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func ruleFromRequest(id string, module string, condition request.RuleConditionRequest,
	actions []request.RuleActionRequest, enabled bool, maxAttempts int, cooldownMinutes int,
	notifyOnSuccess bool, notifyOnFailure bool) model.RemediationRule {
	rule := model.RemediationRule{
		ID:     id,
		Module: module,
		Condition: model.RuleCondition{
			ScoreBelow:      condition.ScoreBelow,
			ErrorContains:   condition.ErrorContains,
			WarningContains: condition.WarningContains,
			CheckFailed:     condition.CheckFailed,
		},
		Enabled:         enabled,
		MaxAttempts:     maxAttempts,
		CooldownMinutes: cooldownMinutes,
		NotifyOnSuccess: notifyOnSuccess,
		NotifyOnFailure: notifyOnFailure,
	}
	for _, action := range actions {
		rule.Actions = append(rule.Actions, model.RemediationAction{
			Type:        model.ActionType(action.Type),
			Target:      action.Target,
			Script:      action.Script,
			Description: action.Description,
		})
	}
	return rule
}

func (h *ruleHandler) CreateRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		rule := ruleFromRequest(req.ID, req.Module, req.Condition, req.Actions,
			*req.Enabled, *req.MaxAttempts, *req.CooldownMinutes, req.NotifyOnSuccess, req.NotifyOnFailure)
		created, err := h.engine.AddRule(c, rule)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidRule):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: err.Error(),
				})
			case errors.Is(err, apperrors.ErrRuleAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Rule already exists",
				})
			default:
				err = fmt.Errorf("RuleHandler.CreateRule: %w", err)
				h.loggingError(c, err, "failed to create rule", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func (h *ruleHandler) UpdateRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateRuleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: h.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		id := c.Param("id")
		rule := ruleFromRequest(id, req.Module, req.Condition, req.Actions,
			*req.Enabled, *req.MaxAttempts, *req.CooldownMinutes, req.NotifyOnSuccess, req.NotifyOnFailure)
		updated, err := h.engine.UpdateRule(c, rule)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidRule):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: err.Error(),
				})
			case errors.Is(err, apperrors.ErrRuleNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Rule not found",
				})
			default:
				err = fmt.Errorf("RuleHandler.UpdateRule: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to update rule %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func (h *ruleHandler) DeleteRule() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.engine.DeleteRule(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrRuleNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Rule not found",
				})
			default:
				err = fmt.Errorf("RuleHandler.DeleteRule: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to delete rule %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Rule deleted",
		})
	}
}

func (h *ruleHandler) GetRules() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.engine.Rules())
	}
}

func (h *ruleHandler) EnableRule() gin.HandlerFunc {
	return h.setEnabled(true)
}

func (h *ruleHandler) DisableRule() gin.HandlerFunc {
	return h.setEnabled(false)
}

func (h *ruleHandler) setEnabled(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		rule, err := h.engine.SetRuleEnabled(c, id, enabled)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrRuleNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Rule not found",
				})
			default:
				err = fmt.Errorf("RuleHandler.setEnabled: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to toggle rule %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, rule)
	}
}

func (h *ruleHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	userId := c.GetHeader("X-User-Id")
	if userId != "" {
		data = append(data, zap.String("user_id", userId))
	}
	h.logger.Log(logLevel, errDescription, data...)
}

func NewRuleHandler(logger *zap.Logger, engine remediation.Engine) RuleHandler {
	return &ruleHandler{
		logger: logger,
		engine: engine,
	}
}
