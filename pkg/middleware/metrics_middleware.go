package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIRecorder receives one sample per served request.
type APIRecorder interface {
	RecordAPIRequest(duration time.Duration, isError bool)
}

func RecordAPIMetrics(recorder APIRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		recorder.RecordAPIRequest(time.Since(start), c.Writer.Status() >= http.StatusInternalServerError)
	}
}
