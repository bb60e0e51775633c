// Package fwmetrics exposes Prometheus counters for folder creation.
package fwmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fw"

// Metrics implements fwfolder.Observer.
type Metrics struct {
	created          *prometheus.CounterVec
	failed           *prometheus.CounterVec
	workflowsStarted *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "folders_created_total",
			Help:      "Folders created or found already present, by operation.",
		}, []string{"operation"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "folder_errors_total",
			Help:      "Folder creations that failed, by operation.",
		}, []string{"operation"}),
		workflowsStarted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflows_started_total",
			Help:      "Workflows started through the REST API, by kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) FolderCreated(op, _ string) {
	m.created.WithLabelValues(op).Inc()
}

func (m *Metrics) FolderFailed(op, _ string, _ error) {
	m.failed.WithLabelValues(op).Inc()
}

func (m *Metrics) WorkflowStarted(kind string) {
	m.workflowsStarted.WithLabelValues(kind).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
