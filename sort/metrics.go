package main

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var caseLabels = []string{"algorithm", "distribution", "direction"}

// sortMetrics 스윕 동안의 측정값을 프로메테우스 형식으로 모아둔다.
// nil이면 아무것도 기록하지 않는다.
type sortMetrics struct {
	registry    *prometheus.Registry
	runSeconds  *prometheus.HistogramVec
	avgSeconds  *prometheus.GaugeVec
	arrayLength prometheus.Gauge
}

func newSortMetrics(n int) *sortMetrics {
	m := &sortMetrics{
		registry: prometheus.NewRegistry(),
		runSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortbench",
			Name:      "run_seconds",
			Help:      "Elapsed time of a single sort run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, caseLabels),
		avgSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sortbench",
			Name:      "average_seconds",
			Help:      "Average elapsed time over the runs of one case.",
		}, caseLabels),
		arrayLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sortbench",
			Name:      "array_length",
			Help:      "Number of elements sorted per run.",
		}),
	}
	m.registry.MustRegister(m.runSeconds, m.avgSeconds, m.arrayLength)
	m.arrayLength.Set(float64(n))
	return m
}

func (m *sortMetrics) observeRun(c Measurement, seconds float64) {
	if m == nil {
		return
	}
	m.runSeconds.WithLabelValues(c.Algorithm, c.Distribution, c.Direction).Observe(seconds)
}

func (m *sortMetrics) setAverage(c Measurement) {
	if m == nil {
		return
	}
	m.avgSeconds.WithLabelValues(c.Algorithm, c.Distribution, c.Direction).Set(c.Average)
}

// writeTextfile node_exporter textfile 수집기용 파일로 저장
func (m *sortMetrics) writeTextfile(path string) error {
	return errors.Wrap(prometheus.WriteToTextfile(path, m.registry), "write metrics textfile")
}
