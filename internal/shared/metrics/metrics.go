package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	pipelineRunsTotal        atomic.Uint64
	pipelineFailedTotal      atomic.Uint64
	providerFailuresTotal    atomic.Uint64
	hintFallbacksTotal       atomic.Uint64
	availabilitySwapsTotal   atomic.Uint64
	learnerRunsTotal         atomic.Uint64
	learnerUsersUpdatedTotal atomic.Uint64

	pipelineDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncPipelineRun increments the pipeline run counter.
func IncPipelineRun() {
	pipelineRunsTotal.Add(1)
}

// IncPipelineFailed increments the terminal pipeline failure counter.
func IncPipelineFailed() {
	pipelineFailedTotal.Add(1)
}

// IncProviderFailure increments the per-provider failure counter.
func IncProviderFailure() {
	providerFailuresTotal.Add(1)
}

// IncHintFallback increments the chronological-fallback counter.
func IncHintFallback() {
	hintFallbacksTotal.Add(1)
}

// IncAvailabilitySwap increments the backup replacement counter.
func IncAvailabilitySwap() {
	availabilitySwapsTotal.Add(1)
}

// IncLearnerRun increments the weight learner run counter.
func IncLearnerRun() {
	learnerRunsTotal.Add(1)
}

// AddLearnerUsersUpdated adds to the count of users whose weights were upserted.
func AddLearnerUsersUpdated(n uint64) {
	learnerUsersUpdatedTotal.Add(n)
}

// ObservePipelineDurationMs records a pipeline run duration in milliseconds.
func ObservePipelineDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pipelineDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "pipeline_runs_total", "Total recommendation pipeline runs", pipelineRunsTotal.Load())
	writeCounter(&buf, "pipeline_failed_total", "Total pipeline runs ending in a terminal error", pipelineFailedTotal.Load())
	writeCounter(&buf, "provider_failures_total", "Total source provider call failures", providerFailuresTotal.Load())
	writeCounter(&buf, "hint_fallbacks_total", "Total hint retrievals served by the chronological fallback", hintFallbacksTotal.Load())
	writeCounter(&buf, "availability_swaps_total", "Total unavailable picks replaced from the backup pool", availabilitySwapsTotal.Load())
	writeCounter(&buf, "learner_runs_total", "Total feedback weight learner runs", learnerRunsTotal.Load())
	writeCounter(&buf, "learner_users_updated_total", "Total users whose preference weights were upserted", learnerUsersUpdatedTotal.Load())
	writeHistogram(&buf, "pipeline_duration_ms", "Pipeline run duration in milliseconds", pipelineDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
