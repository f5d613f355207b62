package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/octoclass/pkg/domain/model"
	"github.com/secmon-lab/octoclass/pkg/domain/types"
	"github.com/secmon-lab/octoclass/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		gt.NoError(t, logging.Configure("json", "info", "stdout"))
	})

	t.Run("text format", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "debug", "-"))
	})

	t.Run("append to log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "octoclass.log")
		gt.NoError(t, os.WriteFile(path, []byte("previous\n"), 0600))

		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("provisioned", slog.String("repo", "hw1-alice"))

		data := gt.R1(os.ReadFile(path)).NoError(t)
		gt.True(t, strings.HasPrefix(string(data), "previous\n"))
		gt.True(t, strings.Contains(string(data), "hw1-alice"))

		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	t.Run("invalid format", func(t *testing.T) {
		gt.Error(t, logging.Configure("yaml", "info", "stdout"))
	})

	t.Run("invalid level", func(t *testing.T) {
		gt.Error(t, logging.Configure("json", "trace", "stdout"))
	})
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, want := range testCases {
		t.Run(input, func(t *testing.T) {
			gt.V(t, gt.R1(logging.ParseLevel(input)).NoError(t)).Equal(want)
		})
	}
}

func TestSecretsAreMasked(t *testing.T) {
	var buf bytes.Buffer
	handler := gt.R1(logging.NewHandler(&buf, "json", slog.LevelInfo)).NoError(t)
	logger := slog.New(handler)

	logger.Info("credential",
		slog.Any("cred", &model.Credential{InstallID: 20, Token: "ghp_creator_token"}),
		slog.Any("secret", types.GitHubAppSecret("webhook-secret")),
	)

	out := buf.String()
	gt.False(t, strings.Contains(out, "ghp_creator_token"))
	gt.False(t, strings.Contains(out, "webhook-secret"))

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.V(t, entry["msg"]).Equal("credential")
}
