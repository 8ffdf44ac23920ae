// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package disneyapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Failure outcomes recorded on the failures counter.
const (
	outcomeTransport = "transport"
	outcomeStatus    = "status"
	outcomeMalformed = "malformed"
)

// Metrics instruments calls to the character API.
type Metrics struct {
	PageRequests prometheus.Counter
	PageFailures *prometheus.CounterVec
	Records      prometheus.Counter
	Latency      prometheus.Histogram
}

// NewMetrics registers the client metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PageRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "toondex_upstream_page_requests_total",
			Help: "Total number of character page requests sent to the API",
		}),
		PageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "toondex_upstream_page_failures_total",
			Help: "Total number of failed character page requests",
		}, []string{"outcome"}),
		Records: factory.NewCounter(prometheus.CounterOpts{
			Name: "toondex_upstream_records_total",
			Help: "Total number of character records received",
		}),
		Latency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "toondex_upstream_request_duration_seconds",
			Help:    "Duration of character page requests",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) observe(elapsed time.Duration) {
	m.PageRequests.Inc()
	m.Latency.Observe(elapsed.Seconds())
}

func (m *Metrics) fail(outcome string) {
	m.PageFailures.WithLabelValues(outcome).Inc()
}

func (m *Metrics) succeed(records int) {
	m.Records.Add(float64(records))
}
