package handler

import (
	"SRM_Health_Automation/internal/health-engine/api/dto/request"
	"SRM_Health_Automation/internal/health-engine/api/dto/response"
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/monitor"
	"SRM_Health_Automation/internal/health-engine/orchestrator"
	"SRM_Health_Automation/internal/health-engine/report"
	"SRM_Health_Automation/internal/health-engine/scheduler"
	"SRM_Health_Automation/pkg/mail"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type EngineHandler interface {
	RunCheck() gin.HandlerFunc
	GetSystemStatus() gin.HandlerFunc
	GetMetricsHistory() gin.HandlerFunc
	GetAggregateStats() gin.HandlerFunc
	UpdateSchedulerIntervals() gin.HandlerFunc
	UpdateMonitorThresholds() gin.HandlerFunc
	ExportReport() gin.HandlerFunc
	SendReport() gin.HandlerFunc
}

type engineHandler struct {
	logger       *zap.Logger
	orchestrator orchestrator.Orchestrator
	scheduler    scheduler.Scheduler
	monitor      monitor.Monitor
	generator    report.Generator
	mailSender   mail.Sender
}

func (*engineHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s elements", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// RunCheck runs a manual health check, remediates when the result warrants it
// and returns the before and after picture. An empty module sweeps every
// configured module.
func (h *engineHandler) RunCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		if req.Module == "" {
			outcomes := h.orchestrator.RunManualCheckAllWithRemediation(c)
			c.JSON(http.StatusOK, outcomes)
			return
		}
		outcome, err := h.orchestrator.RunManualCheckWithRemediation(c, req.Module)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrModuleNotConfigured):
				c.JSON(http.StatusNotFound, response.Response{
					Message: fmt.Sprintf("Module %s is not configured", req.Module),
				})
			default:
				err = fmt.Errorf("EngineHandler.RunCheck: %w", err)
				h.loggingError(c, err, fmt.Sprintf("failed to check module %s", req.Module), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

func (h *engineHandler) GetSystemStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := h.orchestrator.GetSystemStatus(c)
		if err != nil {
			err = fmt.Errorf("EngineHandler.GetSystemStatus: %w", err)
			h.loggingError(c, err, "failed to get system status", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, status)
	}
}

func (h *engineHandler) GetMetricsHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.monitor.History())
	}
}

func (h *engineHandler) GetAggregateStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		minutes := c.DefaultQuery("minutes", "60")
		m, err := strconv.Atoi(minutes)
		if err != nil || m <= 0 {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Minutes must be a positive integer",
			})
			return
		}
		stats, err := h.monitor.GetAggregateStats(m)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNoData):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "No metrics collected in the requested window",
				})
			default:
				err = fmt.Errorf("EngineHandler.GetAggregateStats: %w", err)
				h.loggingError(c, err, "failed to aggregate metrics", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func (h *engineHandler) UpdateSchedulerIntervals() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.IntervalsRequest
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
		intervals := make(map[string]time.Duration, len(req.Intervals))
		for module, seconds := range req.Intervals {
			if seconds < 0 {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Intervals must not be negative",
				})
				return
			}
			intervals[module] = time.Duration(seconds) * time.Second
		}
		h.scheduler.Configure(intervals)
		c.JSON(http.StatusOK, response.Response{
			Message: "Scheduler intervals updated",
		})
	}
}

func (h *engineHandler) UpdateMonitorThresholds() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ThresholdsRequest
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
		var thresholds monitor.Thresholds
		if req.CPUPercent != nil {
			thresholds.CPUPercent = *req.CPUPercent
		}
		if req.MemoryPercent != nil {
			thresholds.MemoryPercent = *req.MemoryPercent
		}
		if req.ResponseTimeMs != nil {
			thresholds.ResponseTimeMs = *req.ResponseTimeMs
		}
		if req.ErrorRate != nil {
			thresholds.ErrorRate = *req.ErrorRate
		}
		h.monitor.UpdateConfig(monitor.Config{Thresholds: thresholds})
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitor thresholds updated",
		})
	}
}

func (h *engineHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	startDate := c.Query("start_date")
	startTime, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid start date",
		})
		return time.Time{}, time.Time{}, false
	}
	endDate := c.Query("end_date")
	endTime, err := time.Parse("2006-01-02", endDate)
	if err != nil || endTime.Before(startTime) {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid end date",
		})
		return time.Time{}, time.Time{}, false
	}
	return startTime, endTime.AddDate(0, 0, 1), true
}

func (h *engineHandler) ExportReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime, endTime, ok := h.parseRange(c)
		if !ok {
			return
		}
		path, err := h.generator.GenerateReport(c, startTime, endTime)
		if err != nil {
			err = fmt.Errorf("EngineHandler.ExportReport: %w", err)
			h.loggingError(c, err, "failed to export report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.FileAttachment(path, filepath.Base(path))
	}
}

func (h *engineHandler) SendReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
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
		startTime, _ := time.Parse("2006-01-02", req.StartDate)
		endTime, _ := time.Parse("2006-01-02", req.EndDate)
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		path, err := h.generator.GenerateReport(c, startTime, endTime.AddDate(0, 0, 1))
		if err != nil {
			err = fmt.Errorf("EngineHandler.SendReport: %w", err)
			h.loggingError(c, err, "failed to generate report", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := os.Open(path)
		if err != nil {
			err = fmt.Errorf("EngineHandler.SendReport: %w", err)
			h.loggingError(c, err, "failed to open report file", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		subject := fmt.Sprintf("Health report %s to %s", req.StartDate, req.EndDate)
		body := fmt.Sprintf("Attached is the health and remediation report from %s to %s.", req.StartDate, req.EndDate)
		err = h.mailSender.SendMail([]string{req.Email}, subject, "", body, []mail.Attachment{
			{Name: filepath.Base(path), Content: file},
		})
		if err != nil {
			err = fmt.Errorf("EngineHandler.SendReport: %w", err)
			h.loggingError(c, err, "failed to send report mail", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func (h *engineHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
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

func NewEngineHandler(logger *zap.Logger, o orchestrator.Orchestrator, s scheduler.Scheduler,
	m monitor.Monitor, generator report.Generator, mailSender mail.Sender) EngineHandler {
	return &engineHandler{
		logger:       logger,
		orchestrator: o,
		scheduler:    s,
		monitor:      m,
		generator:    generator,
		mailSender:   mailSender,
	}
}
