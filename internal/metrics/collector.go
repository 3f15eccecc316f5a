// Package metrics exports detected CPU capabilities to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-simd/cpu"
)

const namespace = "algosimd"

var (
	featureDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "cpu", "feature_enabled"),
		"Whether a CPU capability was detected (1) or not (0).",
		[]string{"feature"}, nil,
	)
	detectCallsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "cpu", "detect_calls_total"),
		"Number of times capability detection has run in this process.",
		nil, nil,
	)
	levelDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "cpu", "simd_level"),
		"Best SIMD level supported by the CPU, as a label on a constant 1.",
		[]string{"level"}, nil,
	)
)

// FeatureCollector reports capabilities from the cpu package. Collecting
// triggers detection if nothing has queried the cache yet.
type FeatureCollector struct{}

// NewFeatureCollector returns a collector ready for registration.
func NewFeatureCollector() *FeatureCollector {
	return &FeatureCollector{}
}

// Describe implements prometheus.Collector.
func (c *FeatureCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- featureDesc
	ch <- detectCallsDesc
	ch <- levelDesc
}

// Collect implements prometheus.Collector.
func (c *FeatureCollector) Collect(ch chan<- prometheus.Metric) {
	for _, f := range cpu.AllFeatures() {
		v := 0.0
		if cpu.IsFeatureDetected(f) {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(featureDesc, prometheus.GaugeValue, v, f.String())
	}
	ch <- prometheus.MustNewConstMetric(levelDesc, prometheus.GaugeValue, 1,
		cpu.BestLevel(cpu.DetectFeatures()).String())
	ch <- prometheus.MustNewConstMetric(detectCallsDesc, prometheus.CounterValue,
		float64(cpu.DetectCalls()))
}
