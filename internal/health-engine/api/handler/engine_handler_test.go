package handler

import (
	"SRM_Health_Automation/internal/health-engine/api/dto/request"
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	mockmonitor "SRM_Health_Automation/internal/health-engine/mocks/monitor"
	mockorchestrator "SRM_Health_Automation/internal/health-engine/mocks/orchestrator"
	mockreport "SRM_Health_Automation/internal/health-engine/mocks/report"
	mockscheduler "SRM_Health_Automation/internal/health-engine/mocks/scheduler"
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/monitor"
	"SRM_Health_Automation/internal/health-engine/orchestrator"
	"SRM_Health_Automation/pkg/mail"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type engineHandlerMocks struct {
	orchestrator *mockorchestrator.MockOrchestrator
	scheduler    *mockscheduler.MockScheduler
	monitor      *mockmonitor.MockMonitor
	generator    *mockreport.MockGenerator
	mailSender   *mail.MockSender
}

func newTestEngineHandler(t *testing.T) (EngineHandler, engineHandlerMocks) {
	ctrl := gomock.NewController(t)
	m := engineHandlerMocks{
		orchestrator: mockorchestrator.NewMockOrchestrator(ctrl),
		scheduler:    mockscheduler.NewMockScheduler(ctrl),
		monitor:      mockmonitor.NewMockMonitor(ctrl),
		generator:    mockreport.NewMockGenerator(ctrl),
		mailSender:   mail.NewMockSender(ctrl),
	}
	h := NewEngineHandler(zap.NewNop(), m.orchestrator, m.scheduler, m.monitor, m.generator, m.mailSender)
	return h, m
}

func TestEngineHandler_RunCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	outcome := orchestrator.CheckOutcome{
		Original: model.HealthCheckResult{Module: "auth-system", Score: 40, Status: model.StatusCritical},
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(m engineHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Single module check",
			body: request.CheckRequest{Module: "auth-system"},
			setupMocks: func(m engineHandlerMocks) {
				m.orchestrator.EXPECT().RunManualCheckWithRemediation(gomock.Any(), "auth-system").
					Return(outcome, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"module":"auth-system"`,
		},
		{
			name: "Success Empty module sweeps everything",
			body: request.CheckRequest{},
			setupMocks: func(m engineHandlerMocks) {
				m.orchestrator.EXPECT().RunManualCheckAllWithRemediation(gomock.Any()).
					Return([]orchestrator.CheckOutcome{outcome})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"module":"auth-system"`,
		},
		{
			name: "Error Module not configured",
			body: request.CheckRequest{Module: "billing"},
			setupMocks: func(m engineHandlerMocks) {
				m.orchestrator.EXPECT().RunManualCheckWithRemediation(gomock.Any(), "billing").
					Return(orchestrator.CheckOutcome{}, apperrors.ErrModuleNotConfigured)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Module billing is not configured"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"module": "auth"`,
			setupMocks:     func(m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name: "Error Internal server error",
			body: request.CheckRequest{Module: "auth-system"},
			setupMocks: func(m engineHandlerMocks) {
				m.orchestrator.EXPECT().RunManualCheckWithRemediation(gomock.Any(), "auth-system").
					Return(orchestrator.CheckOutcome{}, errors.New("probe exploded"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestEngineHandler(t)
			tc.setupMocks(m)

			var reqBody io.Reader
			if bodyStr, ok := tc.body.(string); ok {
				reqBody = strings.NewReader(bodyStr)
			} else {
				jsonBody, _ := json.Marshal(tc.body)
				reqBody = bytes.NewReader(jsonBody)
			}

			w, c := setupTestContext(t, http.MethodPost, "/checks", reqBody)
			c.Request.Header.Set("Content-Type", "application/json")

			h.RunCheck()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestEngineHandler_GetSystemStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success", func(t *testing.T) {
		h, m := newTestEngineHandler(t)
		m.orchestrator.EXPECT().GetSystemStatus(gomock.Any()).Return(model.SystemStatus{
			Running:      true,
			AverageScore: 85.5,
			EnabledRules: 4,
		}, nil)

		w, c := setupTestContext(t, http.MethodGet, "/status", nil)

		h.GetSystemStatus()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"average_score":85.5`)
	})

	t.Run("Error Internal server error", func(t *testing.T) {
		h, m := newTestEngineHandler(t)
		m.orchestrator.EXPECT().GetSystemStatus(gomock.Any()).
			Return(model.SystemStatus{}, errors.New("search unavailable"))

		w, c := setupTestContext(t, http.MethodGet, "/status", nil)

		h.GetSystemStatus()(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEngineHandler_GetMetricsHistory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, m := newTestEngineHandler(t)
	m.monitor.EXPECT().History().Return([]model.PerformanceMetricsSnapshot{
		{CPU: model.CPUMetrics{Usage: 42.5}},
	})

	w, c := setupTestContext(t, http.MethodGet, "/metrics/history", nil)

	h.GetMetricsHistory()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"usage":42.5`)
}

func TestEngineHandler_GetAggregateStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(m engineHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Default window",
			url:  "/metrics/stats",
			setupMocks: func(m engineHandlerMocks) {
				m.monitor.EXPECT().GetAggregateStats(60).Return(monitor.AggregateStats{
					WindowMinutes: 60,
					Samples:       12,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"samples":12`,
		},
		{
			name: "Success Explicit window",
			url:  "/metrics/stats?minutes=15",
			setupMocks: func(m engineHandlerMocks) {
				m.monitor.EXPECT().GetAggregateStats(15).Return(monitor.AggregateStats{
					WindowMinutes: 15,
					Samples:       3,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"window_minutes":15`,
		},
		{
			name:           "Error Invalid minutes",
			url:            "/metrics/stats?minutes=abc",
			setupMocks:     func(m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Minutes must be a positive integer"`,
		},
		{
			name:           "Error Negative minutes",
			url:            "/metrics/stats?minutes=-5",
			setupMocks:     func(m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Minutes must be a positive integer"`,
		},
		{
			name: "Error No data in window",
			url:  "/metrics/stats?minutes=5",
			setupMocks: func(m engineHandlerMocks) {
				m.monitor.EXPECT().GetAggregateStats(5).
					Return(monitor.AggregateStats{}, apperrors.ErrNoData)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"No metrics collected in the requested window"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestEngineHandler(t)
			tc.setupMocks(m)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)

			h.GetAggregateStats()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestEngineHandler_UpdateSchedulerIntervals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(m engineHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Intervals converted to durations",
			body: request.IntervalsRequest{Intervals: map[string]int{"auth-system": 60, "api-gateway": 300}},
			setupMocks: func(m engineHandlerMocks) {
				m.scheduler.EXPECT().Configure(map[string]time.Duration{
					"auth-system": time.Minute,
					"api-gateway": 5 * time.Minute,
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Scheduler intervals updated"`,
		},
		{
			name:           "Error Missing intervals",
			body:           request.IntervalsRequest{},
			setupMocks:     func(m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Intervals field is required"`,
		},
		{
			name:           "Error Negative interval",
			body:           request.IntervalsRequest{Intervals: map[string]int{"auth-system": -10}},
			setupMocks:     func(m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Intervals must not be negative"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestEngineHandler(t)
			tc.setupMocks(m)

			jsonBody, _ := json.Marshal(tc.body)
			w, c := setupTestContext(t, http.MethodPatch, "/scheduler/intervals", bytes.NewReader(jsonBody))
			c.Request.Header.Set("Content-Type", "application/json")

			h.UpdateSchedulerIntervals()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestEngineHandler_UpdateMonitorThresholds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cpu := 90.0
	errorRate := 0.1

	h, m := newTestEngineHandler(t)
	m.monitor.EXPECT().UpdateConfig(monitor.Config{
		Thresholds: monitor.Thresholds{CPUPercent: 90, ErrorRate: 0.1},
	})

	jsonBody, _ := json.Marshal(request.ThresholdsRequest{CPUPercent: &cpu, ErrorRate: &errorRate})
	w, c := setupTestContext(t, http.MethodPatch, "/monitor/thresholds", bytes.NewReader(jsonBody))
	c.Request.Header.Set("Content-Type", "application/json")

	h.UpdateMonitorThresholds()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Monitor thresholds updated"`)
}

func TestEngineHandler_ExportReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		url            string
		setupMocks     func(t *testing.T, m engineHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Report streamed as attachment",
			url:  "/reports/export?start_date=2025-03-10&end_date=2025-03-11",
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
				path := filepath.Join(t.TempDir(), "health-report.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("spreadsheet"), 0o644))
				start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
				end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
				m.generator.EXPECT().GenerateReport(gomock.Any(), start, end).Return(path, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "spreadsheet",
		},
		{
			name:           "Error Missing start date",
			url:            "/reports/export?end_date=2025-03-11",
			setupMocks:     func(t *testing.T, m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid start date"`,
		},
		{
			name:           "Error End date before start date",
			url:            "/reports/export?start_date=2025-03-11&end_date=2025-03-10",
			setupMocks:     func(t *testing.T, m engineHandlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid end date"`,
		},
		{
			name: "Error Generation failure",
			url:  "/reports/export?start_date=2025-03-10&end_date=2025-03-11",
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
				m.generator.EXPECT().GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestEngineHandler(t)
			tc.setupMocks(t, m)

			w, c := setupTestContext(t, http.MethodGet, tc.url, nil)

			h.ExportReport()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestEngineHandler_SendReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validReq := request.ReportRequest{
		StartDate: "2025-03-10",
		EndDate:   "2025-03-11",
		Email:     "ops@example.com",
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(t *testing.T, m engineHandlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Report generated and mailed",
			body: validReq,
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
				path := filepath.Join(t.TempDir(), "health-report.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("spreadsheet"), 0o644))
				start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
				end := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
				gomock.InOrder(
					m.generator.EXPECT().GenerateReport(gomock.Any(), start, end).Return(path, nil),
					m.mailSender.EXPECT().SendMail([]string{"ops@example.com"},
						"Health report 2025-03-10 to 2025-03-11", "", gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Report sent successfully"`,
		},
		{
			name: "Error Missing email",
			body: request.ReportRequest{StartDate: "2025-03-10", EndDate: "2025-03-11"},
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Email field is required"`,
		},
		{
			name: "Error Invalid date format",
			body: request.ReportRequest{StartDate: "10-03-2025", EndDate: "2025-03-11", Email: "ops@example.com"},
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The StartDate field is not a valid datetime, use YYYY-MM-DD format"`,
		},
		{
			name: "Error End date before start date",
			body: request.ReportRequest{StartDate: "2025-03-11", EndDate: "2025-03-10", Email: "ops@example.com"},
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid end date"`,
		},
		{
			name: "Error Mail delivery failure",
			body: validReq,
			setupMocks: func(t *testing.T, m engineHandlerMocks) {
				path := filepath.Join(t.TempDir(), "health-report.xlsx")
				require.NoError(t, os.WriteFile(path, []byte("spreadsheet"), 0o644))
				m.generator.EXPECT().GenerateReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(path, nil)
				m.mailSender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newTestEngineHandler(t)
			tc.setupMocks(t, m)

			jsonBody, _ := json.Marshal(tc.body)
			w, c := setupTestContext(t, http.MethodPost, "/reports", bytes.NewReader(jsonBody))
			c.Request.Header.Set("Content-Type", "application/json")

			h.SendReport()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}
