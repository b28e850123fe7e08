// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package slackbot

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/render"
)

const metricsNamespace = "roadmin"

// metrics are the bot counters.
type metrics struct {
	registry *prometheus.Registry

	outcomes   *prometheus.CounterVec
	strategies *prometheus.CounterVec
	faults     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "command_outcomes_total",
			Help:      "Number of processed commands by command and outcome status.",
		}, []string{"command", "status"}),
		strategies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "render_strategy_total",
			Help:      "Number of rendered entries by presentation strategy.",
		}, []string{"strategy"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "command_faults_total",
			Help:      "Number of commands that failed with a fault, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "command_duration_seconds",
			Help:      "Command processing time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.outcomes,
		m.strategies,
		m.faults,
		m.duration,
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) outcome(command string, out *lookup.Outcome) {
	m.outcomes.WithLabelValues(command, out.Status.String()).Inc()
	if out.Plan != nil {
		m.strategies.WithLabelValues(out.Plan.Strategy.String()).Inc()
	}
}

// Fault kinds.
const (
	faultTransport = "transport"
	faultOverflow  = "size_overflow"
	faultDelivery  = "delivery"
	faultPanic     = "panic"
	faultOther     = "other"
)

func (m *metrics) fault(kind string) {
	m.faults.WithLabelValues(kind).Inc()
}

// faultKind classifies the pipeline error.
func faultKind(err error) string {
	var te *lookup.TransportError
	switch {
	case errors.As(err, &te):
		return faultTransport
	case errors.Is(err, render.ErrSizeOverflow):
		return faultOverflow
	}
	return faultOther
}
