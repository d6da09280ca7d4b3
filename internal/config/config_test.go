package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `prompt: "> "
no_color: true
greeting: false
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.True(t, cfg.NoColor)
	assert.False(t, cfg.Greeting)
}

func TestLoad_MinimalYAML_KeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "no_color: true\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Greeting)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "{{invalid")

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithEnv_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadWithEnv(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadWithEnv_EnvFileOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `prompt: "yaml "` + "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFileName),
		[]byte("NINJAFILES_PROMPT=\"env \"\nNINJAFILES_NO_COLOR=true\n"), 0644))

	cfg, err := LoadWithEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "env ", cfg.Prompt)
	assert.True(t, cfg.NoColor)
}

func TestLoadWithEnv_ProcessEnvWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFileName),
		[]byte("NINJAFILES_PROMPT=\"file \"\n"), 0644))
	t.Setenv(envPrompt, "proc ")

	cfg, err := LoadWithEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, "proc ", cfg.Prompt)
}

func TestLoadWithEnv_InvalidBoolOverrideIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envNoColor, "definitely")

	cfg, err := LoadWithEnv(dir)
	require.NoError(t, err)
	assert.False(t, cfg.NoColor)
}
