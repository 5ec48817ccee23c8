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

// ResultRepository is the append-only store of health check results.
type ResultRepository interface {
	SaveResult(ctx context.Context, result model.HealthCheckResult) error
	GetLatestResultsPerModule(ctx context.Context, since time.Time) ([]model.HealthCheckResult, error)
	GetResultsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.HealthCheckResult, error)
}

const esHealthCheckIndexName = "health_check_results"

type resultRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

func (r *resultRepository) SaveResult(ctx context.Context, result model.HealthCheckResult) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		return fmt.Errorf("ResultRepository.SaveResult encode: %w", err)
	}
	res, err := r.es.Index(esHealthCheckIndexName, &buf, r.es.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ResultRepository.SaveResult: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("ResultRepository.SaveResult decode err response: %w", err)
		}
		return fmt.Errorf("ResultRepository.SaveResult: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

type esLatestPerModuleResponse struct {
	Aggregations struct {
		Modules struct {
			Buckets []struct {
				Key         string `json:"key"`
				LatestCheck struct {
					Hits struct {
						Hits []struct {
							Source model.HealthCheckResult `json:"_source"`
						} `json:"hits"`
					} `json:"hits"`
				} `json:"latest_check"`
			} `json:"buckets"`
		} `json:"modules"`
	} `json:"aggregations"`
}

func (r *resultRepository) GetLatestResultsPerModule(ctx context.Context, since time.Time) ([]model.HealthCheckResult, error) {
	query := map[string]interface{}{
		"size": 0,
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": since,
				},
			},
		},
		"aggs": map[string]interface{}{
			"modules": map[string]interface{}{
				"terms": map[string]interface{}{
					"field": "module",
					"size":  1000,
				},
				"aggs": map[string]interface{}{
					"latest_check": map[string]interface{}{
						"top_hits": map[string]interface{}{
							"size": 1,
							"sort": []map[string]interface{}{
								{
									"timestamp": map[string]interface{}{
										"order": "desc",
									},
								},
							},
						},
					},
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("ResultRepository.GetLatestResultsPerModule encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esHealthCheckIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("ResultRepository.GetLatestResultsPerModule: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("ResultRepository.GetLatestResultsPerModule decode err response: %w", err)
		}
		return nil, fmt.Errorf("ResultRepository.GetLatestResultsPerModule: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var latest esLatestPerModuleResponse
	if err = json.NewDecoder(res.Body).Decode(&latest); err != nil {
		return nil, fmt.Errorf("ResultRepository.GetLatestResultsPerModule decode response: %w", err)
	}
	var results []model.HealthCheckResult
	for _, bucket := range latest.Aggregations.Modules.Buckets {
		if len(bucket.LatestCheck.Hits.Hits) > 0 {
			results = append(results, bucket.LatestCheck.Hits.Hits[0].Source)
		}
	}
	return results, nil
}

type esRangeResponse struct {
	Hits struct {
		Hits []struct {
			Source model.HealthCheckResult `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *resultRepository) GetResultsInRange(ctx context.Context, start time.Time, end time.Time) ([]model.HealthCheckResult, error) {
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
		return nil, fmt.Errorf("ResultRepository.GetResultsInRange encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esHealthCheckIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("ResultRepository.GetResultsInRange: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("ResultRepository.GetResultsInRange decode err response: %w", err)
		}
		return nil, fmt.Errorf("ResultRepository.GetResultsInRange: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var rangeRes esRangeResponse
	if err = json.NewDecoder(res.Body).Decode(&rangeRes); err != nil {
		return nil, fmt.Errorf("ResultRepository.GetResultsInRange decode response: %w", err)
	}
	results := make([]model.HealthCheckResult, 0, len(rangeRes.Hits.Hits))
	for _, hit := range rangeRes.Hits.Hits {
		results = append(results, hit.Source)
	}
	return results, nil
}

func NewResultRepository(esClient *elasticsearch.Client) ResultRepository {
	return &resultRepository{
		es: esClient,
	}
}
