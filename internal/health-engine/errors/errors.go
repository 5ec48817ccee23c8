package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrRuleNotFound          = errors.New("remediation rule not found")
	ErrInvalidRule           = errors.New("invalid remediation rule")
	ErrRuleAlreadyExists     = errors.New("remediation rule already exists")
	ErrModuleNotConfigured   = errors.New("module is not configured for probing")
	ErrUnknownService        = errors.New("unknown service name")
	ErrUnknownCacheNamespace = errors.New("unknown cache namespace")
	ErrUnknownCleanupTarget  = errors.New("unknown cleanup target")
	ErrNoData                = errors.New("no metrics in the requested window")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
