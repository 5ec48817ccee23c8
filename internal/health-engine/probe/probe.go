package probe

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
)

// Probe runs one health check against a named module and returns the
// structured result. Failures to reach the module at all are returned as an
// error, callers decide how to degrade.
type Probe interface {
	Run(ctx context.Context, module string) (model.HealthCheckResult, error)
	Modules() []string
}

type httpProbe struct {
	client         *http.Client
	endpoints      map[string]string
	maxRetries     int
	initialBackoff time.Duration
	clock          clockwork.Clock
}

// moduleReport is the body a module's health endpoint replies with.
type moduleReport struct {
	Checks   []model.CheckResult `json:"checks"`
	Errors   []string            `json:"errors"`
	Warnings []string            `json:"warnings"`
}

func (p *httpProbe) Modules() []string {
	modules := make([]string, 0, len(p.endpoints))
	for m := range p.endpoints {
		modules = append(modules, m)
	}
	return modules
}

func (p *httpProbe) Run(ctx context.Context, module string) (model.HealthCheckResult, error) {
	endpoint, ok := p.endpoints[module]
	if !ok {
		return model.HealthCheckResult{}, fmt.Errorf("HttpProbe.Run: %w", apperrors.ErrModuleNotConfigured)
	}
	start := time.Now()
	resp, err := p.get(ctx, endpoint)
	if err != nil {
		return model.HealthCheckResult{}, fmt.Errorf("HttpProbe.Run %s: %w", module, err)
	}
	defer resp.Body.Close()

	result := model.HealthCheckResult{
		Module:    module,
		Timestamp: time.Now(),
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var report moduleReport
		if decodeErr := json.NewDecoder(resp.Body).Decode(&report); decodeErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("malformed health response: %v", decodeErr))
		} else {
			result.Checks = report.Checks
			result.Errors = report.Errors
			result.Warnings = report.Warnings
		}
	} else if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		result.Errors = append(result.Errors, fmt.Sprintf("health endpoint misconfigured, status %d", resp.StatusCode))
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("health endpoint returned status %d", resp.StatusCode))
	}
	result.Score = scoreOf(result)
	result.Status = statusOf(result.Score)
	result.ExecutionTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

func (p *httpProbe) get(ctx context.Context, endpoint string) (*http.Response, error) {
	backoff := p.initialBackoff
	var err error
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		var resp *http.Response
		resp, err = p.client.Do(req)
		if err != nil {
			if errors.Is(err, syscall.ECONNREFUSED) {
				break
			}
			p.clock.Sleep(backoff)
			backoff *= 2
			continue
		}
		return resp, nil
	}
	return nil, err
}

// scoreOf derives the 0-100 score from the raw report: each failed check costs
// 20 points, each error 15, each warning 5.
func scoreOf(r model.HealthCheckResult) int {
	score := 100
	for _, c := range r.Checks {
		if c.Status == model.CheckStatusFail {
			score -= 20
		}
	}
	score -= 15 * len(r.Errors)
	score -= 5 * len(r.Warnings)
	if score < 0 {
		score = 0
	}
	return score
}

func statusOf(score int) model.HealthStatus {
	switch {
	case score >= 80:
		return model.StatusHealthy
	case score >= 50:
		return model.StatusWarning
	default:
		return model.StatusCritical
	}
}

func NewHTTPProbe(endpoints map[string]string, maxRetries int, requestTimeout time.Duration,
	initialBackoff time.Duration, clock clockwork.Clock) Probe {
	// The retry loop needs at least one attempt or get would return neither a
	// response nor an error.
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &httpProbe{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		endpoints:      endpoints,
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
		clock:          clock,
	}
}
