package routes

import (
	"SRM_Health_Automation/internal/health-engine/api/handler"
	"SRM_Health_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeChecksRun    = "checks:run"
	ScopeStatusRead   = "status:read"
	ScopeConfigUpdate = "config:update"
	ScopeReportsRead  = "reports:read"
)

func AddEngineRoutes(r *gin.Engine, handler handler.EngineHandler, m middleware.AuthMiddleware) {
	r.POST("/checks", m.CheckUserPermission(ScopeChecksRun), handler.RunCheck())
	r.GET("/status", m.CheckUserPermission(ScopeStatusRead), handler.GetSystemStatus())

	metricRoutes := r.Group("/metrics")
	metricRoutes.GET("/history", m.CheckUserPermission(ScopeStatusRead), handler.GetMetricsHistory())
	metricRoutes.GET("/stats", m.CheckUserPermission(ScopeStatusRead), handler.GetAggregateStats())

	r.PATCH("/scheduler/intervals", m.CheckUserPermission(ScopeConfigUpdate), handler.UpdateSchedulerIntervals())
	r.PATCH("/monitor/thresholds", m.CheckUserPermission(ScopeConfigUpdate), handler.UpdateMonitorThresholds())

	reportRoutes := r.Group("/reports")
	reportRoutes.GET("/export", m.CheckUserPermission(ScopeReportsRead), handler.ExportReport())
	reportRoutes.POST("", m.CheckUserPermission(ScopeReportsRead), handler.SendReport())
}
