package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds render histograms.
type Metrics struct {
	renderDuration *prometheus.HistogramVec
	renderPages    prometheus.Histogram
}

// NewMetrics creates and registers render metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_render_duration_seconds",
				Help:    "Time spent laying out and serializing a resume PDF.",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"outcome"},
		),
		renderPages: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resume_render_pages",
				Help:    "Number of pages in rendered resumes.",
				Buckets: []float64{1, 2, 3, 4, 5, 8, 13},
			},
		),
	}

	for _, c := range []prometheus.Collector{m.renderDuration, m.renderPages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(start time.Time, pages int, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.renderDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	if err == nil {
		m.renderPages.Observe(float64(pages))
	}
}
