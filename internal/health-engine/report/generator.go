package report

import (
	"SRM_Health_Automation/internal/health-engine/model"
	"SRM_Health_Automation/internal/health-engine/repository"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/xuri/excelize/v2"
)

// Generator turns historical results into a human-readable spreadsheet and
// returns the document path.
type Generator interface {
	GenerateReport(ctx context.Context, start time.Time, end time.Time) (string, error)
	GenerateWeeklyReport(ctx context.Context) (string, error)
}

type generator struct {
	resultRepo      repository.ResultRepository
	remediationRepo repository.RemediationResultRepository
	clock           clockwork.Clock
	dir             string
}

func (g *generator) GenerateWeeklyReport(ctx context.Context) (string, error) {
	end := g.clock.Now()
	path, err := g.GenerateReport(ctx, end.Add(-7*24*time.Hour), end)
	if err != nil {
		return "", fmt.Errorf("Generator.GenerateWeeklyReport: %w", err)
	}
	return path, nil
}

func (g *generator) GenerateReport(ctx context.Context, start time.Time, end time.Time) (string, error) {
	results, err := g.resultRepo.GetResultsInRange(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}
	remediations, err := g.remediationRepo.GetResultsInRange(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err = g.writeSummarySheet(f, results, remediations); err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}
	if err = g.writeChecksSheet(f, results); err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}
	if err = g.writeRemediationSheet(f, remediations); err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}

	if err = os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}
	path := filepath.Join(g.dir, fmt.Sprintf("health-report-%s-%s.xlsx",
		start.Format("20060102"), end.Format("20060102")))
	if err = f.SaveAs(path); err != nil {
		return "", fmt.Errorf("Generator.GenerateReport: %w", err)
	}
	return path, nil
}

type moduleSummary struct {
	module    string
	count     int
	scoreSum  int
	criticals int
	warnings  int
}

func (g *generator) writeSummarySheet(f *excelize.File, results []model.HealthCheckResult, remediations []model.RemediationResult) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	summaries := make(map[string]*moduleSummary)
	var order []string
	for _, r := range results {
		s, ok := summaries[r.Module]
		if !ok {
			s = &moduleSummary{module: r.Module}
			summaries[r.Module] = s
			order = append(order, r.Module)
		}
		s.count++
		s.scoreSum += r.Score
		switch r.Status {
		case model.StatusCritical:
			s.criticals++
		case model.StatusWarning:
			s.warnings++
		}
	}
	headers := []interface{}{"Module", "Checks", "Average Score", "Warnings", "Criticals"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	row := 2
	for _, module := range order {
		s := summaries[module]
		avg := float64(s.scoreSum) / float64(s.count)
		values := []interface{}{s.module, s.count, avg, s.warnings, s.criticals}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		row++
	}
	row++
	succeeded := 0
	for _, r := range remediations {
		if r.Success {
			succeeded++
		}
	}
	footer := []interface{}{"Remediation attempts", len(remediations), "succeeded", succeeded}
	return f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &footer)
}

func (g *generator) writeChecksSheet(f *excelize.File, results []model.HealthCheckResult) error {
	const sheet = "Health Checks"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []interface{}{"Timestamp", "Module", "Status", "Score", "Execution Time (ms)", "Errors"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, r := range results {
		values := []interface{}{
			r.Timestamp.Format(time.RFC3339),
			r.Module,
			string(r.Status),
			r.Score,
			r.ExecutionTimeMs,
			strings.Join(r.Errors, "; "),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) writeRemediationSheet(f *excelize.File, remediations []model.RemediationResult) error {
	const sheet = "Remediation Log"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []interface{}{"Timestamp", "Rule", "Module", "Outcome", "Actions Executed", "Score Before", "Score After", "Error"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, r := range remediations {
		after := ""
		if r.HealthScoreAfter != nil {
			after = fmt.Sprintf("%d", *r.HealthScoreAfter)
		}
		values := []interface{}{
			r.Timestamp.Format(time.RFC3339),
			r.RuleID,
			r.Module,
			string(r.Outcome),
			strings.Join(r.ActionsExecuted, "; "),
			r.HealthScoreBefore,
			after,
			r.Error,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}
	return nil
}

func NewGenerator(resultRepo repository.ResultRepository, remediationRepo repository.RemediationResultRepository,
	clock clockwork.Clock, dir string) Generator {
	return &generator{
		resultRepo:      resultRepo,
		remediationRepo: remediationRepo,
		clock:           clock,
		dir:             dir,
	}
}
