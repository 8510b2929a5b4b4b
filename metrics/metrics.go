// seehuhn.de/go/fractal - golden spiral fractals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package metrics exports the activity of a fractal engine as Prometheus
// metrics.
package metrics

import (
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"seehuhn.de/go/fractal"
)

// Recorder collects engine metrics in its own registry.
type Recorder struct {
	reg *prometheus.Registry

	nodes    *prometheus.CounterVec
	draws    prometheus.Counter
	duration prometheus.Histogram
	size     prometheus.Gauge
	depth    prometheus.Gauge
}

// New creates a recorder.  All metric names start with "fractal_".
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		nodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fractal_node_events_total",
				Help: "Number of nodes entered, updated and removed by reconciliation",
			},
			[]string{"event", "role"},
		),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fractal_draws_total",
			Help: "Number of completed draw passes",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fractal_draw_duration_seconds",
			Help:    "Duration of draw passes",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fractal_tree_nodes",
			Help: "Number of nodes in the tree after the last draw",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fractal_depth",
			Help: "Depth of the last draw",
		}),
	}
	r.reg.MustRegister(r.nodes, r.draws, r.duration, r.size, r.depth)
	return r
}

// Hooks returns engine hooks which update the metrics of r.
func (r *Recorder) Hooks() fractal.Hooks {
	count := func(e fractal.Event) {
		r.nodes.WithLabelValues(string(e.Kind), string(e.Role)).Inc()
	}
	return fractal.Hooks{
		OnEnter:  count,
		OnUpdate: count,
		OnExit:   count,
		OnDraw: func(s fractal.DrawStats) {
			r.draws.Inc()
			r.duration.Observe(s.Elapsed.Seconds())
			r.size.Set(float64(s.Nodes))
			r.depth.Set(float64(s.Depth))
		},
	}
}

// Registry returns the registry holding the metrics of r.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Handler serves the metrics of r over HTTP.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// WriteText writes the current metrics in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
