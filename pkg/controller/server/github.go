package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

// validateGitHubAppEvent validates the payload signature when key is set and parses the
// webhook. It returns nil if the event is not a repository creation.
func validateGitHubAppEvent(r *http.Request, key types.GitHubAppSecret) (*model.RepositoryEvent, error) {
	payload, err := github.ValidatePayload(r, []byte(key))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook", goerr.V("type", github.WebHookType(r)))
	}

	logging.From(r.Context()).Info("Received GitHub App event",
		slog.String("type", github.WebHookType(r)),
		slog.String("delivery", github.DeliveryID(r)),
	)

	return githubEventToRepositoryEvent(event), nil
}

func githubEventToRepositoryEvent(event any) *model.RepositoryEvent {
	switch ev := event.(type) {
	case *github.RepositoryEvent:
		if ev.GetAction() != model.RepositoryEventActionCreated {
			logging.Default().Debug("ignore repository event", slog.String("action", ev.GetAction()))
			return nil
		}

		return &model.RepositoryEvent{
			Action:    ev.GetAction(),
			RepoID:    types.GitHubRepoID(ev.GetRepo().GetID()),
			FullName:  ev.GetRepo().GetFullName(),
			InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		}

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return nil // ignore

	default:
		logging.Default().Warn("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return nil
	}
}
