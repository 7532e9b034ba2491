package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(LoadOptions{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7777", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Empty(t, cfg.RealtimeURL)
	assert.Equal(t, 20, cfg.FeedPageSize)
	assert.False(t, cfg.FeedRemoveOnAction)
	assert.Equal(t, 5*time.Minute, cfg.AuthTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, BackendChain, cfg.CredentialsBackend)
	assert.Equal(t, filepath.Join(home, ".techsillies", "credentials"), cfg.CredentialsDir)
	assert.Equal(t, filepath.Join(home, ".techsillies", "session.toml"), cfg.Viper.GetString(KeySessionPath))
	assert.Equal(t, filepath.Join(home, ".techsillies", "config.toml"), cfg.ConfigFile)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".techsillies")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
base_url = "https://api.techsillies.dev/"
timeout = "5s"

[feed]
page_size = 10
remove_on_action = true

[session]
persist = ["user", "feed"]

[credentials]
backend = "file"
`), 0o600))

	cfg, err := Load(LoadOptions{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "https://api.techsillies.dev", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 10, cfg.FeedPageSize)
	assert.True(t, cfg.FeedRemoveOnAction)
	assert.Equal(t, []string{"user", "feed"}, cfg.Viper.GetStringSlice(KeySessionPersist))
	assert.Equal(t, BackendFile, cfg.CredentialsBackend)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".techsillies")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api]\nbase_url = \"https://file.example.com\"\n"), 0o600))

	t.Setenv("TSL_API_BASE_URL", "https://env.example.com")
	t.Setenv("TSL_LOG_LEVEL", "debug")

	cfg, err := Load(LoadOptions{Home: home})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotEnvFromWorkDir(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte("TSL_FEED_PAGE_SIZE=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TSL_FEED_PAGE_SIZE") })

	cfg, err := Load(LoadOptions{Home: home, WorkDir: work})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.FeedPageSize)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(t.TempDir(), "alt.toml")
	require.NoError(t, os.WriteFile(path, []byte("[auth]\nlisten = \"127.0.0.1:1455\"\n"), 0o600))

	cfg, err := Load(LoadOptions{Home: home, ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1455", cfg.AuthListen)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "base url scheme", env: map[string]string{"TSL_API_BASE_URL": "ftp://example.com"}, wantErr: "api.base_url must be an http(s) URL"},
		{name: "realtime scheme", env: map[string]string{"TSL_REALTIME_URL": "http://example.com/ws"}, wantErr: "realtime.url must be a ws(s) URL"},
		{name: "page size", env: map[string]string{"TSL_FEED_PAGE_SIZE": "0"}, wantErr: "feed.page_size must be positive"},
		{name: "backend", env: map[string]string{"TSL_CREDENTIALS_BACKEND": "keychain"}, wantErr: `unsupported credentials.backend "keychain"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(LoadOptions{Home: t.TempDir()})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".techsillies")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api\n"), 0o600))

	_, err := Load(LoadOptions{Home: home})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
