package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderUsesDefaults verifies that building with no layers
// yields the built-in defaults.
func TestBuild_EmptyBuilderUsesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultMaxOpenConns, cfg.Storage.DB.MaxOpenConns)
	assert.False(t, cfg.App.SanitizeHTML)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that a later non-zero field overrides an
// earlier one while zero fields leave earlier values intact.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "env", TokenSignKey: "env_key"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
	assert.Equal(t, "env_key", cfg.App.TokenSignKey)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{PasswordHashCost: 99}})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_AppendsLayer(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_ISSUER": "env_issuer"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env_issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "bogus"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b = b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b = b.withJSON()
	assert.Error(t, b.err)
}

// TestBuilder_PriorityOrder verifies env < flags < json < (defaults fill gaps).
func TestBuilder_PriorityOrder(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json_issuer"},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_ISSUER":        "env_issuer",
		"APP_TOKEN_SIGN_KEY":      "env_key",
		"SERVER_ADDRESS":          "127.0.0.1:7000",
		"STORAGE_DB_DATABASE_URI": "sqlite:///tmp/env.db",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-a", "127.0.0.1:7001", "-c", jsonPath}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "env_key", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite:///tmp/env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}
