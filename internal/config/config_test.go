package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 10, cfg.Quiz.QuestionLimit)
	assert.Equal(t, int64(0), cfg.Quiz.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join("/tmp/state", "musclequiz", "musclequiz.log"), cfg.Log.File)
}

func TestLoad_File(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "quiz.yaml")
	body := "env: production\nquiz:\n  question_limit: 5\n  seed: 99\nlog:\n  file: \"-\"\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5, cfg.Quiz.QuestionLimit)
	assert.Equal(t, int64(99), cfg.Quiz.Seed)
	assert.Equal(t, "-", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MUSCLEQUIZ_QUIZ_SEED", "1234")
	t.Setenv("MUSCLEQUIZ_QUIZ_QUESTION_LIMIT", "3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Quiz.Seed)
	assert.Equal(t, 3, cfg.Quiz.QuestionLimit)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MUSCLEQUIZ_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MUSCLEQUIZ_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidLimit(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MUSCLEQUIZ_QUIZ_QUESTION_LIMIT", "0")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidQuestionLimit)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
