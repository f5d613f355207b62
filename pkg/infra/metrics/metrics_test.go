package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.SagaFinished(types.SagaStateIssuesOpened)
	m.SagaFinished(types.SagaStateRolledBack)
	m.Compensated(nil)
	m.Compensated(errors.New("failed"))
	m.IssueCreated(metrics.IssueSourceTemplate)
	m.ReconcileFinished(nil)
	m.JobSettled(types.JobStateDead)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp := gt.R1(srv.Client().Get(srv.URL)).NoError(t)
	defer resp.Body.Close()
	body := string(gt.R1(io.ReadAll(resp.Body)).NoError(t))

	for _, line := range []string{
		`octoclass_provision_runs_total{state="issues_opened"} 1`,
		`octoclass_provision_runs_total{state="rolled_back"} 1`,
		`octoclass_provision_compensations_total{result="failure"} 1`,
		`octoclass_provision_compensations_total{result="success"} 1`,
		`octoclass_issues_created_total{source="template"} 1`,
		`octoclass_reconcile_runs_total{result="success"} 1`,
		`octoclass_queue_jobs_total{state="dead"} 1`,
	} {
		gt.True(t, strings.Contains(body, line))
	}
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	m.SagaFinished(types.SagaStateFailed)
	m.Compensated(nil)
	m.IssueCreated(metrics.IssueSourceSpec)
	m.ReconcileFinished(nil)
	m.JobSettled(types.JobStateCompleted)
}
