package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAt_CreatesDefaultFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".replydesk")

	require.NoError(t, InitializeAt(dir))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://localhost:5000")
	assert.Equal(t, filepath.Join(dir, "keybinds.json"), KeybindsFile)
}

func TestInitializeAt_KeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: http://example.test\n"), FilePermissions))

	require.NoError(t, InitializeAt(dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "server:\n  url: http://example.test\n", string(data))
}

func TestLoad_FileValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))
	path := filepath.Join(dir, "custom.yaml")
	content := "server:\n  url: https://assistant.example.com/\n  timeout: 5\nauth:\n  username: admin\n"
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))

	s, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://assistant.example.com", s.Server.URL)
	assert.Equal(t, 5, s.Server.Timeout)
	assert.True(t, s.Auth.HasCredentials())
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, LogFile, s.Log.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))
	t.Setenv("REPLYDESK_SERVER_URL", "http://env.example.com")

	s, err := Load(NewViper(), ConfigFile)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com", s.Server.URL)
}

func TestLoad_RejectsBadURL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitializeAt(dir))
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: localhost:5000\n"), FilePermissions))

	_, err := Load(NewViper(), path)
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	require.NoError(t, InitializeAt(t.TempDir()))

	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
