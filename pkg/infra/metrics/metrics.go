package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

const namespace = "octoclass"

// Metrics holds counters of provisioning and reconciliation. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sagaRuns      *prometheus.CounterVec
	compensations *prometheus.CounterVec
	issuesCreated *prometheus.CounterVec
	reconcileRuns *prometheus.CounterVec
	jobs          *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sagaRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provision",
				Name:      "runs_total",
				Help:      "Total number of provisioning runs by final state",
			},
			[]string{"state"},
		),
		compensations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provision",
				Name:      "compensations_total",
				Help:      "Total number of repository deletions run as compensation",
			},
			[]string{"result"},
		),
		issuesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "issues_created_total",
				Help:      "Total number of issues created by source",
			},
			[]string{"source"},
		),
		reconcileRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "reconcile",
				Name:      "runs_total",
				Help:      "Total number of issue reconciliation runs by result",
			},
			[]string{"result"},
		),
		jobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "queue",
				Name:      "jobs_total",
				Help:      "Total number of settled reconciliation jobs by state",
			},
			[]string{"state"},
		),
	}

	m.registry.MustRegister(
		m,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (x *Metrics) Describe(descs chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(x, descs)
}

func (x *Metrics) Collect(metrics chan<- prometheus.Metric) {
	x.sagaRuns.Collect(metrics)
	x.compensations.Collect(metrics)
	x.issuesCreated.Collect(metrics)
	x.reconcileRuns.Collect(metrics)
	x.jobs.Collect(metrics)
}

// Handler serves the registry in Prometheus exposition format
func (x *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(x.registry, promhttp.HandlerOpts{Registry: x.registry})
}

// Source of created issues
const (
	IssueSourceSpec     = "spec"
	IssueSourceTemplate = "template"
)

func (x *Metrics) SagaFinished(state types.SagaState) {
	if x == nil {
		return
	}
	x.sagaRuns.WithLabelValues(string(state)).Inc()
}

func (x *Metrics) Compensated(err error) {
	if x == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	x.compensations.WithLabelValues(result).Inc()
}

func (x *Metrics) IssueCreated(source string) {
	if x == nil {
		return
	}
	x.issuesCreated.WithLabelValues(source).Inc()
}

func (x *Metrics) ReconcileFinished(err error) {
	if x == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	x.reconcileRuns.WithLabelValues(result).Inc()
}

func (x *Metrics) JobSettled(state types.JobState) {
	if x == nil {
		return
	}
	x.jobs.WithLabelValues(string(state)).Inc()
}
