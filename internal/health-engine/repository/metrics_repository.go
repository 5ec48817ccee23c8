package repository

import (
	apperrors "SRM_Health_Automation/internal/health-engine/errors"
	"SRM_Health_Automation/internal/health-engine/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
)

// MetricsRepository persists monitor snapshots for durability. Writes are best
// effort, the monitor's in-memory history stays authoritative.
type MetricsRepository interface {
	SaveSnapshot(ctx context.Context, snapshot model.PerformanceMetricsSnapshot) error
	GetSnapshotsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.PerformanceMetricsSnapshot, error)
}

const esMetricsIndexName = "performance_metrics"

type metricsRepository struct {
	es *elasticsearch.Client
}

func (m *metricsRepository) SaveSnapshot(ctx context.Context, snapshot model.PerformanceMetricsSnapshot) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(snapshot); err != nil {
		return fmt.Errorf("MetricsRepository.SaveSnapshot encode: %w", err)
	}
	res, err := m.es.Index(esMetricsIndexName, &buf, m.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("MetricsRepository.SaveSnapshot: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("MetricsRepository.SaveSnapshot decode err response: %w", err)
		}
		return fmt.Errorf("MetricsRepository.SaveSnapshot: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

type esMetricsRangeResponse struct {
	Hits struct {
		Hits []struct {
			Source model.PerformanceMetricsSnapshot `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (m *metricsRepository) GetSnapshotsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.PerformanceMetricsSnapshot, error) {
	query := map[string]interface{}{
		"size": 10000,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": start,
					"lt":  end,
				},
			},
		},
		"sort": []map[string]interface{}{
			{
				"timestamp": map[string]interface{}{
					"order": "asc",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("MetricsRepository.GetSnapshotsInRange encode query: %w", err)
	}
	res, err := m.es.Search(
		m.es.Search.WithContext(ctx),
		m.es.Search.WithIndex(esMetricsIndexName),
		m.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("MetricsRepository.GetSnapshotsInRange: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("MetricsRepository.GetSnapshotsInRange decode err response: %w", err)
		}
		return nil, fmt.Errorf("MetricsRepository.GetSnapshotsInRange: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var rangeRes esMetricsRangeResponse
	if err = json.NewDecoder(res.Body).Decode(&rangeRes); err != nil {
		return nil, fmt.Errorf("MetricsRepository.GetSnapshotsInRange decode response: %w", err)
	}
	snapshots := make([]model.PerformanceMetricsSnapshot, 0, len(rangeRes.Hits.Hits))
	for _, hit := range rangeRes.Hits.Hits {
		snapshots = append(snapshots, hit.Source)
	}
	return snapshots, nil
}

func NewMetricsRepository(esClient *elasticsearch.Client) MetricsRepository {
	return &metricsRepository{
		es: esClient,
	}
}
