package monitor

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type apiSample struct {
	at       time.Time
	duration time.Duration
	isError  bool
}

type checkSample struct {
	at       time.Time
	duration time.Duration
	failed   bool
}

type querySample struct {
	at       time.Time
	duration time.Duration
	slow     bool
}

// Recorder accumulates rolling samples fed by the API middleware, the
// scheduler and the repositories. Samples older than the retention window are
// pruned on write.
type Recorder struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	retention time.Duration
	api       []apiSample
	checks    []checkSample
	queries   []querySample
}

func NewRecorder(clock clockwork.Clock) *Recorder {
	return &Recorder{
		clock:     clock,
		retention: time.Hour,
	}
}

func (r *Recorder) RecordAPIRequest(duration time.Duration, isError bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.api = append(pruneAPI(r.api, r.cutoff()), apiSample{at: r.clock.Now(), duration: duration, isError: isError})
}

func (r *Recorder) RecordHealthCheck(duration time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(pruneChecks(r.checks, r.cutoff()), checkSample{at: r.clock.Now(), duration: duration, failed: failed})
}

func (r *Recorder) RecordQuery(duration time.Duration, slow bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(pruneQueries(r.queries, r.cutoff()), querySample{at: r.clock.Now(), duration: duration, slow: slow})
}

func (r *Recorder) cutoff() time.Time {
	return r.clock.Now().Add(-r.retention)
}

// APIStats returns average response time in ms, requests per minute and error
// rate over the trailing window.
func (r *Recorder) APIStats(window time.Duration) (float64, float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.clock.Now().Add(-window)
	var total time.Duration
	var count, errCount int
	for _, s := range r.api {
		if s.at.After(cutoff) {
			total += s.duration
			count++
			if s.isError {
				errCount++
			}
		}
	}
	if count == 0 {
		return 0, 0, 0
	}
	avgMs := float64(total.Milliseconds()) / float64(count)
	perMinute := float64(count) / window.Minutes()
	errorRate := float64(errCount) / float64(count)
	return avgMs, perMinute, errorRate
}

// CheckStats returns average execution time in ms, checks per hour and
// failure rate over the trailing window.
func (r *Recorder) CheckStats(window time.Duration) (float64, int, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.clock.Now().Add(-window)
	var total time.Duration
	var count, failed int
	for _, s := range r.checks {
		if s.at.After(cutoff) {
			total += s.duration
			count++
			if s.failed {
				failed++
			}
		}
	}
	if count == 0 {
		return 0, 0, 0
	}
	avgMs := float64(total.Milliseconds()) / float64(count)
	perHour := int(float64(count) / window.Hours())
	failureRate := float64(failed) / float64(count)
	return avgMs, perHour, failureRate
}

// QueryStats returns average query time in ms and the slow query count over
// the trailing window.
func (r *Recorder) QueryStats(window time.Duration) (float64, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.clock.Now().Add(-window)
	var total time.Duration
	var count, slow int
	for _, s := range r.queries {
		if s.at.After(cutoff) {
			total += s.duration
			count++
			if s.slow {
				slow++
			}
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(total.Milliseconds()) / float64(count), slow
}

func pruneAPI(samples []apiSample, cutoff time.Time) []apiSample {
	i := 0
	for i < len(samples) && !samples[i].at.After(cutoff) {
		i++
	}
	return samples[i:]
}

func pruneChecks(samples []checkSample, cutoff time.Time) []checkSample {
	i := 0
	for i < len(samples) && !samples[i].at.After(cutoff) {
		i++
	}
	return samples[i:]
}

func pruneQueries(samples []querySample, cutoff time.Time) []querySample {
	i := 0
	for i < len(samples) && !samples[i].at.After(cutoff) {
		i++
	}
	return samples[i:]
}
