package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Empty(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_MergePriority(t *testing.T) {
	// earlier sources win: env beats flags beats json, matching the order
	// GetStructuredConfig appends them.
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App: App{TokenSignKey: "from-env", TokenIssuer: "env-issuer"},
		},
		&StructuredConfig{
			App:    App{TokenSignKey: "from-flags", TokenDuration: time.Hour},
			Server: Server{HTTPAddress: "flags:8080"},
		},
		&StructuredConfig{
			Server:  Server{HTTPAddress: "json:9090", RequestTimeout: 30 * time.Second},
			Storage: Storage{DB: DB{Driver: "sqlite3", DSN: "datebook.db"}},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "flags:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
}

func TestBuild_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "boom")
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "key-without-issuer"},
	})

	_, err := b.build()

	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestWithEnv_ReadsVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-key", b.configs[0].App.TokenSignKey)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"http_address": "json:7070"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json:7070", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}
