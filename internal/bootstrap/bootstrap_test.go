package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"demoapps/config"
	"demoapps/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepLogger(t *testing.T) {
	t.Helper()
	prevLog, prevSugar := logger.Log, logger.Sugar
	t.Cleanup(func() { logger.Log, logger.Sugar = prevLog, prevSugar })
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCommandServesWithConfig(t *testing.T) {
	keepLogger(t)
	t.Setenv("GIN_MODE", "test")
	t.Setenv("COUNT_FILE", "")
	require.NoError(t, os.Unsetenv("COUNT_FILE"))
	envFile := writeEnv(t, "COUNT_FILE=/srv/hits.txt\n")

	for _, args := range [][]string{
		{"--env-file", envFile},
		{"serve", "--env-file", envFile},
	} {
		var got *config.Config
		root := NewRootCommand("counter", "test", func(_ context.Context, cfg *config.Config) error {
			got = cfg
			return nil
		})
		root.SetArgs(args)
		root.SetOut(&bytes.Buffer{})

		require.NoError(t, root.ExecuteContext(context.Background()), "args %v", args)
		require.NotNil(t, got, "args %v", args)
		assert.Equal(t, "/srv/hits.txt", got.CountFile)
	}
}

func TestRootCommandRejectsUnknownGinMode(t *testing.T) {
	keepLogger(t)
	t.Setenv("GIN_MODE", "turbo")

	called := false
	root := NewRootCommand("blog", "test", func(context.Context, *config.Config) error {
		called = true
		return nil
	})
	root.SetArgs([]string{"--env-file", writeEnv(t, "")})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.ExecuteContext(context.Background()))
	assert.False(t, called)
}
