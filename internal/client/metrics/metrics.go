// Package metrics counts backend calls per operation and outcome.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

// Metrics keeps its own registry so several clients in one process, and
// tests, never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "moodscreen_api_requests_total",
			Help: "Backend calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moodscreen_api_request_duration_seconds",
			Help:    "Backend call latency by operation",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Step returns a ResponseStep recording every exchange. It never fails.
func (m *Metrics) Step() api.ResponseStep {
	return func(ctx context.Context, ex *api.Exchange) error {
		m.requests.WithLabelValues(ex.Operation, outcome(ex.Err)).Inc()
		m.duration.WithLabelValues(ex.Operation).Observe(ex.Duration.Seconds())
		return nil
	}
}

func outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var he *api.HTTPError
	if errors.As(err, &he) {
		return OutcomeHTTPError
	}
	return OutcomeTransportError
}

// WriteSummary prints one line per counter series and per histogram,
// sorted, in a form readable at the prompt.
func (m *Metrics) WriteSummary(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			series := mf.GetName() + "{" + strings.Join(labels, ",") + "}"

			if c := metric.GetCounter(); c != nil {
				lines = append(lines, fmt.Sprintf("%s %g", series, c.GetValue()))
			}
			if h := metric.GetHistogram(); h != nil {
				lines = append(lines, fmt.Sprintf("%s count=%d sum=%.3fs", series, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}

	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "no backend calls yet")
		return err
	}

	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
