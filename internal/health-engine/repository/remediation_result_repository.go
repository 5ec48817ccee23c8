package repository

import (
	"SRM_Health_Automation/internal/health-engine/model"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// RemediationResultRepository is the append-only audit store of remediation
// attempts.
type RemediationResultRepository interface {
	SaveResult(ctx context.Context, result model.RemediationResult) error
	GetResultsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.RemediationResult, error)
	DeleteResultsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type remediationResultRepository struct {
	db *gorm.DB
}

func (r *remediationResultRepository) SaveResult(ctx context.Context, result model.RemediationResult) error {
	res := r.db.WithContext(ctx).Create(&result)
	if res.Error != nil {
		return fmt.Errorf("RemediationResultRepository.SaveResult: %w", res.Error)
	}
	return nil
}

func (r *remediationResultRepository) GetResultsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.RemediationResult, error) {
	var results []model.RemediationResult
	res := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp asc").
		Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("RemediationResultRepository.GetResultsInRange: %w", res.Error)
	}
	return results, nil
}

// DeleteResultsOlderThan backs the database_cleanup remediation action,
// bounded by the caller's retention cutoff.
func (r *remediationResultRepository) DeleteResultsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&model.RemediationResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("RemediationResultRepository.DeleteResultsOlderThan: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func NewRemediationResultRepository(db *gorm.DB) RemediationResultRepository {
	return &remediationResultRepository{
		db: db,
	}
}
