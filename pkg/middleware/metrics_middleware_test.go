package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAPIRecorder struct {
	durations []time.Duration
	errors    []bool
}

func (r *fakeAPIRecorder) RecordAPIRequest(duration time.Duration, isError bool) {
	r.durations = append(r.durations, duration)
	r.errors = append(r.errors, isError)
}

func TestRecordAPIMetrics(t *testing.T) {
	testCases := []struct {
		name            string
		handlerStatus   int
		expectedIsError bool
	}{
		{
			name:            "success response is not an error",
			handlerStatus:   http.StatusOK,
			expectedIsError: false,
		},
		{
			name:            "client error is not an error",
			handlerStatus:   http.StatusNotFound,
			expectedIsError: false,
		},
		{
			name:            "server error is recorded as error",
			handlerStatus:   http.StatusInternalServerError,
			expectedIsError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)

			recorder := &fakeAPIRecorder{}
			r := gin.New()
			r.Use(RecordAPIMetrics(recorder))
			r.GET("/test", func(c *gin.Context) {
				c.Status(tc.handlerStatus)
			})

			req := httptest.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.handlerStatus, w.Code)
			assert.Len(t, recorder.durations, 1)
			assert.GreaterOrEqual(t, recorder.durations[0], time.Duration(0))
			assert.Equal(t, []bool{tc.expectedIsError}, recorder.errors)
		})
	}
}
