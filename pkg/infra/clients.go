package infra

import (
	"github.com/secmon-lab/octoclass/pkg/domain/interfaces"
	"github.com/secmon-lab/octoclass/pkg/infra/metrics"
)

type Clients struct {
	github    interfaces.GitHub
	bqClient  interfaces.BigQuery
	classroom interfaces.ClassroomRepository
	jobQueue  interfaces.JobQueue
	metrics   *metrics.Metrics
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Classroom() interfaces.ClassroomRepository {
	return x.classroom
}
func (x *Clients) JobQueue() interfaces.JobQueue {
	return x.jobQueue
}

// Metrics may return nil. A nil *metrics.Metrics records nothing.
func (x *Clients) Metrics() *metrics.Metrics {
	return x.metrics
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithClassroomRepository(repo interfaces.ClassroomRepository) Option {
	return func(x *Clients) {
		x.classroom = repo
	}
}

func WithJobQueue(queue interfaces.JobQueue) Option {
	return func(x *Clients) {
		x.jobQueue = queue
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(x *Clients) {
		x.metrics = m
	}
}
