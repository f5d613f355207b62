package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/controller/server"
	"github.com/secmon-lab/octoclass/pkg/domain/mock"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
)

const testSecret = types.GitHubAppSecret("test-secret")

const repositoryCreatedPayload = `{
  "action": "created",
  "repository": {"id": 900, "name": "hw1-alice", "full_name": "classroom-org/hw1-alice"},
  "installation": {"id": 20}
}`

func newWebhookRequest(t *testing.T, eventType, body string, secret types.GitHubAppSecret) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook/github/app", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	req.Header.Set("X-GitHub-Delivery", "72d3162e-cc78-11e3-81ab-4c9367dc0958")
	if secret != "" {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(body))
		req.Header.Set("X-Hub-Signature-256", "sha256="+hex.EncodeToString(mac.Sum(nil)))
	}
	return req
}

func newEventMock() *mock.UseCaseMock {
	return &mock.UseCaseMock{
		HandleRepositoryEventFunc: func(ctx context.Context, event *model.RepositoryEvent) error {
			return nil
		},
	}
}

func TestGitHubAppWebhook(t *testing.T) {
	t.Run("repository created event is accepted", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc, server.WithGitHubSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", repositoryCreatedPayload, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		calls := uc.HandleRepositoryEventCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Event.RepoID).Equal(types.GitHubRepoID(900))
		gt.V(t, calls[0].Event.FullName).Equal("classroom-org/hw1-alice")
		gt.V(t, calls[0].Event.InstallID).Equal(types.GitHubAppInstallID(20))
	})

	t.Run("other repository actions are ignored", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc, server.WithGitHubSecret(testSecret))
		body := `{"action":"deleted","repository":{"id":900}}`

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", body, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, uc.HandleRepositoryEventCalls()).Length(0)
	})

	t.Run("ping event is ignored", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc, server.WithGitHubSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "ping", `{"zen":"Keep it logically awesome."}`, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, uc.HandleRepositoryEventCalls()).Length(0)
	})

	t.Run("invalid signature is rejected", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc, server.WithGitHubSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", repositoryCreatedPayload, "wrong-secret"))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
		gt.A(t, uc.HandleRepositoryEventCalls()).Length(0)
	})

	t.Run("missing signature is rejected when secret is set", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc, server.WithGitHubSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", repositoryCreatedPayload, ""))

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("signature is not required without secret", func(t *testing.T) {
		uc := newEventMock()
		srv := server.New(uc)

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", repositoryCreatedPayload, ""))

		gt.V(t, rec.Code).Equal(http.StatusAccepted)
		gt.A(t, uc.HandleRepositoryEventCalls()).Length(1)
	})

	t.Run("usecase failure", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			HandleRepositoryEventFunc: func(ctx context.Context, event *model.RepositoryEvent) error {
				return errors.New("queue is closed")
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(testSecret))

		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, newWebhookRequest(t, "repository", repositoryCreatedPayload, testSecret))

		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestGitHubEventToRepositoryEvent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		event := &github.RepositoryEvent{
			Action: github.String("created"),
			Repo: &github.Repository{
				ID:       github.Int64(123),
				FullName: github.String("org/repo"),
			},
			Installation: &github.Installation{ID: github.Int64(456)},
		}

		result := server.GitHubEventToRepositoryEventForTest(event)
		gt.True(t, result != nil)
		gt.V(t, result.Action).Equal(model.RepositoryEventActionCreated)
		gt.V(t, result.RepoID).Equal(types.GitHubRepoID(123))
		gt.V(t, result.InstallID).Equal(types.GitHubAppInstallID(456))
	})

	t.Run("renamed", func(t *testing.T) {
		event := &github.RepositoryEvent{Action: github.String("renamed")}
		gt.True(t, server.GitHubEventToRepositoryEventForTest(event) == nil)
	})

	t.Run("push event", func(t *testing.T) {
		gt.True(t, server.GitHubEventToRepositoryEventForTest(&github.PushEvent{}) == nil)
	})

	t.Run("installation event", func(t *testing.T) {
		gt.True(t, server.GitHubEventToRepositoryEventForTest(&github.InstallationEvent{}) == nil)
	})
}
