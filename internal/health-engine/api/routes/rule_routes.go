package routes

import (
	"SRM_Health_Automation/internal/health-engine/api/handler"
	"SRM_Health_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeRulesRead   = "rules:read"
	ScopeRulesCreate = "rules:create"
	ScopeRulesUpdate = "rules:update"
	ScopeRulesDelete = "rules:delete"
)

func AddRuleRoutes(r *gin.Engine, handler handler.RuleHandler, m middleware.AuthMiddleware) {
	ruleRoutes := r.Group("/rules")
	ruleRoutes.POST("", m.CheckUserPermission(ScopeRulesCreate), handler.CreateRule())
	ruleRoutes.GET("", m.CheckUserPermission(ScopeRulesRead), handler.GetRules())
	ruleRoutes.PATCH("/:id", m.CheckUserPermission(ScopeRulesUpdate), handler.UpdateRule())
	ruleRoutes.DELETE("/:id", m.CheckUserPermission(ScopeRulesDelete), handler.DeleteRule())
	ruleRoutes.POST("/:id/enable", m.CheckUserPermission(ScopeRulesUpdate), handler.EnableRule())
	ruleRoutes.POST("/:id/disable", m.CheckUserPermission(ScopeRulesUpdate), handler.DisableRule())
}
