package bq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/infra/bq"
	"github.com/secmon-lab/octoclass/pkg/utils/testutil"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestClient(t *testing.T, prefix string, options ...option.ClientOption) (*bq.Client, types.BQTableID) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID")
	projectID, datasetID := envs[0], envs[1]

	tblName := types.BQTableID(time.Now().Format(prefix + "_20060102_150405"))
	client := gt.R1(bq.New(context.Background(), types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName, options...)).NoError(t)
	return client, tblName
}

func TestInsertProvisionLog(t *testing.T) {
	client, tblName := newTestClient(t, "provision_log_test")
	ctx := context.Background()

	log := model.ProvisionLog{
		ID:            types.NewAuditID(),
		AssignmentID:  "a1",
		RepoID:        12345,
		RepoName:      "hw1-alice",
		PrincipalKind: string(types.PrincipalKindUser),
		Principal:     "alice",
		FinalState:    types.SagaStateIssuesOpened,
		Timestamp:     time.Now(),
	}
	schema := gt.R1(bqs.Infer(log)).NoError(t)

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	gt.V(t, md).Equal(nil)

	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, model.NewProvisionLogRecord(&log)))
}

func TestImpersonation(t *testing.T) {
	serviceAccount := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")
	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	client, tblName := newTestClient(t, "impersonation_test", option.WithTokenSource(ts))

	msg := struct {
		Msg string
	}{
		Msg: "Hello, BigQuery: " + time.Now().String(),
	}
	schema := gt.R1(bqs.Infer(msg)).NoError(t)

	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))
	gt.NoError(t, client.Insert(ctx, schema, msg))
}

func TestSchemaUpdateAndInsert(t *testing.T) {
	client, tblName := newTestClient(t, "schema_update_test")
	ctx := context.Background()

	initial := bigquery.Schema{
		{Name: "id", Type: bigquery.StringFieldType},
	}
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: initial,
	}))

	md := gt.R1(client.GetMetadata(ctx)).NoError(t)
	updated := bigquery.Schema{
		{Name: "id", Type: bigquery.StringFieldType},
		{Name: "new_field", Type: bigquery.StringFieldType},
	}
	gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{Schema: updated}, md.ETag))

	data := struct {
		ID       string `json:"id"`
		NewField string `json:"new_field"`
	}{ID: "x", NewField: "y"}
	gt.NoError(t, client.Insert(ctx, updated, data))
}

func TestProtoFieldJSONName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps valid names",
			input: "repo_name",
			want:  "repo_name",
		},
		{
			name:  "renames invalid names",
			input: "ruby-advisory-db",
			want:  "col_cnVieS1hZHZpc29yeS1kYg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, bq.ProtoFieldJSONName(tc.input)).Equal(tc.want)
		})
	}
}

func TestSanitizeProtoJSON(t *testing.T) {
	raw := []byte(`{"labels":{"good-first-issue":3,"bug":2},"rows":[{"a-b":1}]}`)
	sanitized := gt.R1(bq.SanitizeProtoJSON(raw)).NoError(t)

	dec := json.NewDecoder(bytes.NewReader(sanitized))
	dec.UseNumber()
	payload := map[string]any{}
	gt.NoError(t, dec.Decode(&payload))

	labels, ok := payload["labels"].(map[string]any)
	gt.True(t, ok)
	_, renamed := labels[bq.ProtoFieldJSONName("good-first-issue")]
	gt.True(t, renamed)
	_, original := labels["good-first-issue"]
	gt.False(t, original)
	_, kept := labels["bug"]
	gt.True(t, kept)

	rows, ok := payload["rows"].([]any)
	gt.True(t, ok)
	row, ok := rows[0].(map[string]any)
	gt.True(t, ok)
	_, nested := row[bq.ProtoFieldJSONName("a-b")]
	gt.True(t, nested)
}

func TestIsSchemaNotFoundError(t *testing.T) {
	const msg = "Input schema has more fields than BigQuery schema, extra fields: 'field1'"

	t.Run("gRPC InvalidArgument with schema mismatch message", func(t *testing.T) {
		gt.True(t, bq.IsSchemaNotFoundError(status.Error(codes.InvalidArgument, msg)))
	})

	t.Run("wrapped by goerr", func(t *testing.T) {
		err := goerr.Wrap(goerr.Wrap(status.Error(codes.InvalidArgument, msg), "level 1"), "level 2")
		gt.True(t, bq.IsSchemaNotFoundError(err))
	})

	t.Run("InvalidArgument with different message", func(t *testing.T) {
		gt.False(t, bq.IsSchemaNotFoundError(status.Error(codes.InvalidArgument, "Invalid request parameters")))
	})

	t.Run("different gRPC code", func(t *testing.T) {
		gt.False(t, bq.IsSchemaNotFoundError(status.Error(codes.PermissionDenied, msg)))
	})

	t.Run("non-gRPC error", func(t *testing.T) {
		gt.False(t, bq.IsSchemaNotFoundError(errors.New("some other error")))
	})

	t.Run("nil", func(t *testing.T) {
		gt.False(t, bq.IsSchemaNotFoundError(nil))
	})
}
